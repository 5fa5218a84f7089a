package models

// UnpaidInvoiceRef names an unpaid invoice inside an outstanding summary.
type UnpaidInvoiceRef struct {
	Name        string  `json:"name"`
	Outstanding float64 `json:"outstanding"`
}

// StudentOutstanding aggregates a student's invoiced versus paid totals.
// Outstanding is positive when the student owes money and negative when
// the student has overpaid; per-invoice outstanding never goes negative on
// the backend, the aggregate can.
type StudentOutstanding struct {
	ID                 string             `json:"id"`
	Name               string             `json:"name"`
	TotalInvoice       float64            `json:"totalInvoice"`
	TotalPayment       float64            `json:"totalPayment"`
	Outstanding        float64            `json:"outstanding"`
	InvoiceCount       int                `json:"invoiceCount"`
	PaymentCount       int                `json:"paymentCount"`
	No                 int                `json:"no"`
	UnpaidInvoiceCount int                `json:"unpaidInvoiceCount,omitempty"`
	UnpaidInvoices     []UnpaidInvoiceRef `json:"unpaidInvoice,omitempty"`
}
