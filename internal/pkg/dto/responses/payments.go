package responses

import "time"

type CasePayments struct {
	CaseTitle string         `json:"case_title,omitempty"`
	Months    []PaymentMonth `json:"months"`
}

type PaymentMonth struct {
	Month    string    `json:"month"`
	Payments []Payment `json:"payments"`
	Total    float64   `json:"total"`
}

type Payment struct {
	Reference     string     `json:"reference"`
	Status        string     `json:"status"`
	Amount        float64    `json:"amount"`
	Description   string     `json:"description,omitempty"`
	DueDate       *time.Time `json:"due_date,omitempty"`
	PaymentDate   *time.Time `json:"payment_date,omitempty"`
	StoppedDate   *time.Time `json:"stopped_date,omitempty"`
	PeriodFrom    *time.Time `json:"period_from,omitempty"`
	PeriodTo      *time.Time `json:"period_to,omitempty"`
	Payee         string     `json:"payee,omitempty"`
	AccountNumber string     `json:"account_number,omitempty"`
	PaymentMethod string     `json:"payment_method,omitempty"`
	CaseTitle     string     `json:"case_title,omitempty"`
}

type PaymentOverview struct {
	Upcoming []Payment `json:"upcoming"`
	Paid     []Payment `json:"paid"`
}
