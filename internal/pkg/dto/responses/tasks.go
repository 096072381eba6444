package responses

import "time"

type TaskGroup struct {
	Deadline *time.Time `json:"deadline,omitempty"`
	Tasks    []Task     `json:"tasks"`
}

type Task struct {
	ID         string     `json:"id"`
	Title      string     `json:"title"`
	ExtraInfo  string     `json:"extra_info,omitempty"`
	Deadline   *time.Time `json:"deadline,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	FromPortal bool       `json:"from_portal"`
}

type ConditionResponse struct {
	Reference     string    `json:"reference"`
	Title         string    `json:"title,omitempty"`
	Description   string    `json:"description,omitempty"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	LastChangedAt time.Time `json:"last_changed_at"`
	PaymentRefs   []string  `json:"payment_refs,omitempty"`
}

type DocumentationRequirementResponse struct {
	ID          string     `json:"id"`
	Title       string     `json:"title,omitempty"`
	Description string     `json:"description,omitempty"`
	Status      string     `json:"status"`
	Deadline    *time.Time `json:"deadline,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	PaymentRefs []string   `json:"payment_refs,omitempty"`
}
