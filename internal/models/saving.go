package models

// Saving transaction types and statuses.
const (
	SavingTypeSave     = "SAVE"
	SavingTypeWithdraw = "WITHDRAW"

	SavingStatusSuccess = "SUCCESS"
	SavingStatusRequest = "REQUEST"
	SavingStatusFail    = "FAIL"
)

// Saving is one savings-ledger entry. Withdrawals start in REQUEST status
// and flip to SUCCESS or FAIL once the backend processes them.
type Saving struct {
	ID          string  `json:"id"`
	StudentName string  `json:"kindyStudentName"`
	Amount      float64 `json:"amount"`
	Type        string  `json:"type"`
	Status      string  `json:"status"`
	Reference   *string `json:"reference"`
	Date        string  `json:"date"`
	No          int     `json:"no"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
}

// StudentSavingSummary is the admin per-student savings aggregate.
// LastTransaction is nil for students who never saved.
type StudentSavingSummary struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	TotalSaving      float64 `json:"totalSaving"`
	TransactionCount int     `json:"transactionCount"`
	LastTransaction  *string `json:"lastTransaction"`
	No               int     `json:"no"`
}
