package models

// Invoice statuses as issued by the backend.
const (
	InvoiceStatusIssued  = "issued"
	InvoiceStatusPaid    = "paid"
	InvoiceStatusPartial = "partial"
	InvoiceStatusOverdue = "overdue"
)

// Invoice is displayed verbatim: amount, paid and outstanding are computed
// by the backend and never recomputed here.
type Invoice struct {
	ID          string  `json:"id"`
	StudentName string  `json:"kindyStudentName"`
	Name        string  `json:"name"`
	AmountFull  float64 `json:"amountFull"`
	Discount    float64 `json:"discount"`
	Amount      float64 `json:"amount"`
	Paid        float64 `json:"paid"`
	Outstanding float64 `json:"outstanding"`
	StartDate   string  `json:"startDate"`
	DueDate     string  `json:"dueDate"`
	Status      string  `json:"status"`
	No          int     `json:"no"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
}

// CreateInvoiceRequest is the admin add-invoice payload.
type CreateInvoiceRequest struct {
	StudentID string  `json:"student_id" validate:"required"`
	Name      string  `json:"name" validate:"required"`
	Amount    float64 `json:"amount" validate:"required"`
	Discount  float64 `json:"discount"`
	StartDate string  `json:"start_date" validate:"required"`
	DueDate   string  `json:"due_date" validate:"required"`
}

// UpdateInvoiceRequest is the admin edit-invoice payload. The backend
// expects the due date under end_date on update.
type UpdateInvoiceRequest struct {
	Name      string  `json:"name" validate:"required"`
	Amount    float64 `json:"amount" validate:"required"`
	Discount  float64 `json:"discount"`
	StartDate string  `json:"start_date" validate:"required"`
	EndDate   string  `json:"end_date" validate:"required"`
}
