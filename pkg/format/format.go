// Package format holds the display formatting shared by every portal view.
// Values formatted here are presentation-only and are never parsed back.
package format

import (
	"fmt"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var rupiahPrinter = message.NewPrinter(language.Indonesian)

// Indonesian month abbreviations, January first.
var monthAbbrev = [12]string{
	"Jan", "Feb", "Mar", "Apr", "Mei", "Jun",
	"Jul", "Agu", "Sep", "Okt", "Nov", "Des",
}

// Currency renders an amount as Indonesian Rupiah with dot-grouped
// thousands and no decimals: Currency(1500000) == "Rp1.500.000".
func Currency(amount float64) string {
	return "Rp" + rupiahPrinter.Sprintf("%d", int64(amount))
}

// Date renders a timestamp as D-Mon-YY with Indonesian month
// abbreviations: 2024-03-05 becomes "5-Mar-24".
func Date(t time.Time) string {
	return fmt.Sprintf("%d-%s-%02d", t.Day(), monthAbbrev[t.Month()-1], t.Year()%100)
}

// DateShort renders a timestamp as DD/MM/YYYY.
func DateShort(t time.Time) string {
	return t.Format("02/01/2006")
}

// ParseAnyDate accepts the timestamp shapes the backend emits: RFC3339
// with or without fractional seconds, and bare calendar dates.
func ParseAnyDate(raw string) (time.Time, error) {
	layouts := []string{
		time.RFC3339Nano,
		time.RFC3339,
		"2006-01-02",
	}
	var lastErr error
	for _, layout := range layouts {
		t, err := time.Parse(layout, raw)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
