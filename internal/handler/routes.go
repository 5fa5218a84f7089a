package handler

import (
	"github.com/gin-gonic/gin"
)

// Handlers bundles every portal handler for route registration.
type Handlers struct {
	Gate        *GateHandler
	Navigation  *NavigationHandler
	Payment     *PaymentHandler
	Invoice     *InvoiceHandler
	Outstanding *OutstandingHandler
	Saving      *SavingHandler
	Infaq       *InfaqHandler
	Setor       *SetorHandler
	Stamp       *StampHandler
	OpenAs      *OpenAsHandler
	Student     *StudentHandler
	Export      *ExportHandler

	ExportsEnabled bool
}

// Register mounts the portal API. Authorization is not decided here: every
// data route forwards the caller's cookies and lets the backend answer
// 401/403, which the view layer turns into gates and hidden sections.
func Register(r gin.IRouter, h Handlers) {
	api := r.Group("/api")

	admin := api.Group("/admin")
	{
		admin.GET("/gate", h.Gate.AdminGate)
		admin.POST("/login", h.Gate.AdminLogin)
		admin.GET("/nav", h.Navigation.Sections)

		admin.GET("/payments", h.Payment.List)
		admin.GET("/payments/students", h.Payment.Students)
		admin.GET("/payments/students/:studentId/unpaid", h.Payment.UnpaidInvoices)
		admin.POST("/payments", h.Payment.BeginCreate)
		admin.PUT("/payments/:id", h.Payment.BeginUpdate)
		admin.POST("/payments/flows/:flowId/confirm", h.Payment.Confirm)
		admin.DELETE("/payments/flows/:flowId", h.Payment.Cancel)
		admin.DELETE("/payments/:id", h.Payment.Delete)

		admin.GET("/invoices", h.Invoice.List)
		admin.GET("/invoices/students", h.Invoice.Students)
		admin.POST("/invoices", h.Invoice.BeginCreate)
		admin.PUT("/invoices/:id", h.Invoice.BeginUpdate)
		admin.POST("/invoices/flows/:flowId/confirm", h.Invoice.Confirm)
		admin.DELETE("/invoices/flows/:flowId", h.Invoice.Cancel)
		admin.DELETE("/invoices/:id", h.Invoice.Delete)

		admin.GET("/outstanding", h.Outstanding.List)
		admin.GET("/savings", h.Saving.List)
		admin.GET("/infaq", h.Infaq.List)

		admin.GET("/setor", h.Setor.View)
		admin.POST("/setor", h.Setor.BeginCreate)
		admin.POST("/setor/flows/:flowId/confirm", h.Setor.Confirm)
		admin.DELETE("/setor/flows/:flowId", h.Setor.Cancel)

		admin.GET("/stamp", h.Stamp.List)
		admin.POST("/stamp/:id/sent", h.Stamp.MarkSent)
		admin.DELETE("/stamp/sent", h.Stamp.ClearSent)

		admin.GET("/openas", h.OpenAs.List)

		if h.ExportsEnabled {
			admin.GET("/exports/payments.csv", h.Export.PaymentsCSV)
			admin.GET("/exports/outstanding.pdf", h.Export.OutstandingPDF)
		}
	}

	student := api.Group("/student")
	{
		student.GET("/gate", h.Gate.StudentGate)
		student.GET("/overview", h.Student.Overview)
		student.GET("/profile", h.Student.Profile)
		student.PATCH("/profile/fin", h.Student.UpdateFinancialInfo)
		student.PATCH("/profile/lang", h.Student.ChangeLanguage)
		student.GET("/fullday", h.Student.FullDay)
		student.PATCH("/fullday", h.Student.ToggleFullDay)
		student.GET("/savings", h.Student.Savings)
		student.POST("/savings/withdraw", h.Student.Withdraw)
		student.GET("/invoices", h.Student.Invoices)
		student.GET("/payments", h.Student.Payments)
		student.GET("/infaq", h.Student.Infaq)
		student.GET("/insurance", h.Student.Insurance)
		student.POST("/confirm", h.Student.ConfirmPayment)
	}
}
