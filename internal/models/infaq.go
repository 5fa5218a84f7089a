package models

// Infaq is one entry in the append-only charity ledger.
type Infaq struct {
	ID          string  `json:"id"`
	StudentName string  `json:"kindyStudentName"`
	Amount      float64 `json:"amount"`
	Reference   *string `json:"reference"`
	Date        string  `json:"date"`
	No          int     `json:"no"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
}

// StudentInfaqSummary is the admin per-student infaq aggregate.
// LastContribution is nil for students who never contributed.
type StudentInfaqSummary struct {
	ID                string  `json:"id"`
	Name              string  `json:"name"`
	TotalInfaq        float64 `json:"totalInfaq"`
	ContributionCount int     `json:"contributionCount"`
	LastContribution  *string `json:"lastContribution"`
	No                int     `json:"no"`
}
