package models

type AmcRecord struct {
	ID             int64   `json:"id" db:"id"`
	CustomerID     int64   `json:"customer_id" db:"customer_id"`
	StartDate      string  `json:"start_date" db:"start_date"`
	EndDate        string  `json:"end_date" db:"end_date"`
	Amount         float64 `json:"amount" db:"amount"`
	MachineDetails *string `json:"machine_details" db:"machine_details"`
	Status         string  `json:"status" db:"status"`
	Notes          *string `json:"notes" db:"notes"`
	CreatedAt      string  `json:"created_at" db:"created_at"`

	CustomerName *string `json:"customer_name" db:"customer_name"`
	PhoneNo      *string `json:"phone_no" db:"phone_no"`
}

type AmcRecordInput struct {
	ID             int64   `json:"id"`
	CustomerID     int64   `json:"customerId"`
	StartDate      string  `json:"start_date"`
	EndDate        string  `json:"end_date"`
	Amount         float64 `json:"amount"`
	MachineDetails *string `json:"machine_details"`
	Status         string  `json:"status"`
	Notes          *string `json:"notes"`
}

// AmcFilter selects AMC records by status. ExpiringSoon takes precedence:
// it constrains to Active contracts ending within the next 30 days.
type AmcFilter struct {
	Status       string
	ExpiringSoon bool
}

const (
	AmcStatusActive  = "Active"
	AmcStatusExpired = "Expired"
)
