package models

// OrgFinancialInfo is the organization's receiving account shown to
// parents when confirming payments.
type OrgFinancialInfo struct {
	Ent  string `json:"ent"`
	Num  string `json:"num"`
	Name string `json:"name"`
	Img  string `json:"img"`
}

// InsuranceInfo describes the group insurance policy covering students.
type InsuranceInfo struct {
	Beneficiary string   `json:"beneficiary"`
	Ent         string   `json:"ent"`
	Type        string   `json:"type"`
	Num         string   `json:"num"`
	Image       string   `json:"image"`
	Benefit     []string `json:"benefit"`
}
