package models

// Setor destination types: straight to the bank or through an amil.
const (
	SetorTypeBank = "bank"
	SetorTypeAmil = "amil"
)

// Setor records an operator depositing collected cash.
type Setor struct {
	ID        string  `json:"id"`
	Amount    float64 `json:"amount"`
	Type      string  `json:"type"`
	No        int     `json:"no"`
	CreatedAt string  `json:"createdAt"`
	UpdatedAt string  `json:"updatedAt"`
}

// SetorDelta reconciles deposits against collections: delta is the amount
// collected but not yet deposited.
type SetorDelta struct {
	TotalCollected float64 `json:"totalCollected"`
	TotalSetor     float64 `json:"totalSetor"`
	Delta          float64 `json:"delta"`
}

// CreateSetorRequest records a new deposit.
type CreateSetorRequest struct {
	Amount float64 `json:"amount" validate:"required,gt=0"`
	Type   string  `json:"type" validate:"required,oneof=bank amil"`
}
