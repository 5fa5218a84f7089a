package models

// Payment is an independent payment record. It may optionally reference an
// invoice, reducing that invoice's outstanding balance on the backend side.
type Payment struct {
	ID          string  `json:"id"`
	StudentName string  `json:"kindyStudentName"`
	Amount      float64 `json:"amount"`
	Date        string  `json:"date"`
	Reference   string  `json:"reference"`
	No          int     `json:"no"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
}

// CreatePaymentRequest is the admin add-payment payload.
type CreatePaymentRequest struct {
	StudentID string  `json:"student_id" validate:"required"`
	Amount    float64 `json:"amount" validate:"required"`
	Date      string  `json:"date" validate:"required"`
	Reference string  `json:"reference" validate:"required"`
	InvoiceID *string `json:"invoice_id,omitempty"`
}

// UpdatePaymentRequest is the admin edit-payment payload.
type UpdatePaymentRequest struct {
	Amount    float64 `json:"amount" validate:"required"`
	Date      string  `json:"date" validate:"required"`
	Reference string  `json:"reference" validate:"required"`
	InvoiceID *string `json:"invoice_id,omitempty"`
}
