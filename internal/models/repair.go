package models

type RepairRecord struct {
	ID                 int64   `json:"id" db:"id"`
	CustomerID         int64   `json:"customer_id" db:"customer_id"`
	MachineDescription *string `json:"machine_description" db:"machine_description"`
	RepairDescription  *string `json:"repair_description" db:"repair_description"`
	RepairDate         *string `json:"repair_date" db:"repair_date"`
	AmountCharged      float64 `json:"amount_charged" db:"amount_charged"`
	CreatedAt          string  `json:"created_at" db:"created_at"`

	CustomerName *string `json:"customer_name" db:"customer_name"`
	PhoneNo      *string `json:"phone_no" db:"phone_no"`

	// Legacy aliases kept for older builds of the mobile client, which
	// read machine/details/amount/date instead of the column names.
	Machine *string `json:"machine"`
	Details *string `json:"details"`
	Amount  float64 `json:"amount"`
	Date    *string `json:"date"`
}

// ApplyAliases copies the column-named fields into the legacy alias fields.
func (r *RepairRecord) ApplyAliases() {
	r.Machine = r.MachineDescription
	r.Details = r.RepairDescription
	r.Amount = r.AmountCharged
	r.Date = r.RepairDate
}

type RepairRecordInput struct {
	ID                 int64   `json:"id"`
	CustomerID         int64   `json:"customerId"`
	MachineDescription *string `json:"machine_description"`
	RepairDescription  *string `json:"repair_description"`
	RepairDate         *string `json:"repair_date"`
	AmountCharged      float64 `json:"amount_charged"`
}

// RepairFilter bounds the repair list by repair_date; both bounds are
// inclusive and either may be empty.
type RepairFilter struct {
	StartDate string
	EndDate   string
}
