package models

type ServiceCall struct {
	ID                int64   `json:"id" db:"id"`
	CustomerID        *int64  `json:"customer_id" db:"customer_id"`
	Area              string  `json:"area" db:"area"`
	IssueDescription  string  `json:"issue_description" db:"issue_description"`
	Status            string  `json:"status" db:"status"`
	Priority          string  `json:"priority" db:"priority"`
	TechnicianName    string  `json:"technician_name" db:"technician_name"`
	ScheduledDate     *string `json:"scheduled_date" db:"scheduled_date"`
	ResolutionDetails string  `json:"resolution_details" db:"resolution_details"`
	ServiceCharge     float64 `json:"service_charge" db:"service_charge"`
	CreatedAt         string  `json:"created_at" db:"created_at"`

	// Joined customer fields; null when the customer was deleted.
	CustomerName *string `json:"customer_name" db:"customer_name"`
	PhoneNo      *string `json:"phone_no" db:"phone_no"`

	// Only populated on single-record fetch.
	CustomerAddress *string `json:"address,omitempty" db:"address"`
	CustomerEmail   *string `json:"email,omitempty" db:"email"`
}

type ServiceCallInput struct {
	ID                int64   `json:"id"`
	CustomerID        *int64  `json:"customerId"`
	Area              *string `json:"area"`
	IssueDescription  *string `json:"issue_description"`
	Status            string  `json:"status"`
	Priority          string  `json:"priority"`
	TechnicianName    string  `json:"technician_name"`
	ScheduledDate     *string `json:"scheduledDate"`
	ResolutionDetails string  `json:"resolution_details"`
	ServiceCharge     float64 `json:"service_charge"`
}

const (
	StatusOpen      = "Open"
	StatusCompleted = "Completed"
	StatusClosed    = "Closed"

	PriorityMedium = "Medium"
)
