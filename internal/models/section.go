package models

import "fmt"

// Section identifies one admin portal section. The set is closed; render
// dispatch must handle every value so an unhandled new section fails loudly
// instead of falling through a string comparison.
type Section string

const (
	SectionPayment     Section = "payment"
	SectionInvoice     Section = "invoice"
	SectionOutstanding Section = "outstanding"
	SectionSaving      Section = "saving"
	SectionInfaq       Section = "infaq"
	SectionStamp       Section = "stamp"
	SectionOpenAs      Section = "openas"
	SectionSetor       Section = "setor"
)

// AllSections lists every admin section in display order.
func AllSections() []Section {
	return []Section{
		SectionPayment,
		SectionInvoice,
		SectionOutstanding,
		SectionSaving,
		SectionInfaq,
		SectionStamp,
		SectionOpenAs,
		SectionSetor,
	}
}

// Label returns the navigation label for the section.
func (s Section) Label() string {
	switch s {
	case SectionPayment:
		return "Payment"
	case SectionInvoice:
		return "Invoice"
	case SectionOutstanding:
		return "Standing"
	case SectionSaving:
		return "Saving"
	case SectionInfaq:
		return "Infaq"
	case SectionStamp:
		return "Stamp"
	case SectionOpenAs:
		return "OAS"
	case SectionSetor:
		return "IS Ctrl"
	}
	panic(fmt.Sprintf("unhandled section %q", string(s)))
}

// Valid reports whether s names a known section.
func (s Section) Valid() bool {
	for _, known := range AllSections() {
		if s == known {
			return true
		}
	}
	return false
}
