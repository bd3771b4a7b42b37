package models

type Customer struct {
	ID        int64   `json:"id" db:"id"`
	Name      string  `json:"customer_name" db:"customer_name"`
	Phone     *string `json:"phone_no" db:"phone_no"`
	Area      *string `json:"area" db:"area"`
	Address   *string `json:"address" db:"address"`
	Email     *string `json:"email" db:"email"`
	Company   *string `json:"company_name" db:"company_name"`
	CreatedAt string  `json:"created_at" db:"created_at"`
}

// CustomerInput is the request body shape used by the mobile client,
// which sends short field names (name, phone, company) rather than the
// column names the API returns.
type CustomerInput struct {
	ID      int64   `json:"id"`
	Name    string  `json:"name" binding:"required"`
	Phone   *string `json:"phone"`
	Area    *string `json:"area"`
	Address *string `json:"address"`
	Email   *string `json:"email"`
	Company *string `json:"company"`
}
