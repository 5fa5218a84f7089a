package models

// Student is the student record as served by the backend. The portal never
// derives identity or lifecycle from it; fields are displayed verbatim and
// mutated only through the dedicated PATCH endpoints.
type Student struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Phone        *string `json:"phone"`
	Lang         string  `json:"lang"`
	FinEnt       *string `json:"finEnt"`
	FinNum       *string `json:"finNum"`
	FinName      *string `json:"finName"`
	NISN         *string `json:"nisn"`
	Gender       *string `json:"gender"`
	InsuranceNum *int64  `json:"insuranceNum"`
	CreatedAt    string  `json:"createdAt"`
	UpdatedAt    string  `json:"updatedAt"`
	OpenAs       string  `json:"openas,omitempty"`

	Enrollments   []Enrollment   `json:"KindyEnrollment,omitempty"`
	OneTimeFees   []OneTimeFee   `json:"KindyStudentOneTimeFee,omitempty"`
	RecurringFees []RecurringFee `json:"KindyStudentRecurringFee,omitempty"`
}

// Enrollment ties a student to a kindy group for a school year.
type Enrollment struct {
	ID        string `json:"id"`
	GroupID   string `json:"kindyGroupId"`
	GroupName string `json:"groupName,omitempty"`
	YearName  string `json:"kindyYearName,omitempty"`
}

// OneTimeFee is a single-shot fee schedule assigned to a student.
type OneTimeFee struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Discount  float64 `json:"discount"`
	Amount    float64 `json:"amount"`
	StartDate string  `json:"startDate,omitempty"`
	DueDate   string  `json:"dueDate,omitempty"`
}

// RecurringFee is a monthly fee schedule assigned to a student. The Full
// Day program shows up here; enrollment is detected by fee name.
type RecurringFee struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Discount float64 `json:"discount"`
	Amount   float64 `json:"amount"`
}

// StudentStats is the per-student financial summary. Outstanding is
// positive when the student owes money.
type StudentStats struct {
	Outstanding float64 `json:"outstanding"`
	Credit      float64 `json:"credit"`
	Saving      float64 `json:"saving"`
	Infaq       float64 `json:"infaq"`
}

// FullDayInfo carries the monthly cutoff day for Full Day changes.
type FullDayInfo struct {
	Date int `json:"date"`
}

// FinancialInfoRequest updates a student's receiving bank account.
type FinancialInfoRequest struct {
	Ent  string `json:"ent" validate:"required"`
	Num  string `json:"num" validate:"required"`
	Name string `json:"name" validate:"required"`
}

// LanguageRequest switches the student's portal language.
type LanguageRequest struct {
	Lang string `json:"lang" validate:"required,oneof=EN ID"`
}

// FullDayRequest joins or leaves the Full Day program.
type FullDayRequest struct {
	IsJoin bool `json:"is_join"`
}

// WithdrawRequest asks the backend to pay out savings. The request stays in
// REQUEST status until the backend confirms the transfer.
type WithdrawRequest struct {
	Amount float64 `json:"amount" validate:"required,gt=0"`
}
