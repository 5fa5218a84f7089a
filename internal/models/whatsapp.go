package models

// WhatsAppTask is one credential-distribution task: a deep link that sends
// a student's login stamp to a parent's phone. Whether it was actually
// sent is tracked portal-side only (see internal/sentlog).
type WhatsAppTask struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Phone  string `json:"phone"`
	Key    string `json:"key"`
	WALink string `json:"wa_link"`
	No     int    `json:"no"`
}
