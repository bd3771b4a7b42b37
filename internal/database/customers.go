package database

import (
	"servicetrack/internal/models"
)

// ListCustomers returns every customer ordered by id.
func (db *DB) ListCustomers() ([]models.Customer, error) {
	rows, err := db.Query(`
		SELECT id, customer_name, phone_no, area, address, email, company_name, created_at
		FROM customers
		ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	customers := []models.Customer{}
	for rows.Next() {
		var c models.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.Phone, &c.Area, &c.Address, &c.Email, &c.Company, &c.CreatedAt); err != nil {
			return nil, err
		}
		customers = append(customers, c)
	}

	return customers, rows.Err()
}

// AddCustomer inserts a customer and returns the new id.
func (db *DB) AddCustomer(c models.CustomerInput) (int64, error) {
	res, err := db.Exec(`
		INSERT INTO customers (customer_name, phone_no, area, address, email, company_name)
		VALUES (?, ?, ?, ?, ?, ?)`,
		c.Name, c.Phone, c.Area, c.Address, c.Email, c.Company)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// UpdateCustomer updates all customer fields by id and returns the number
// of affected rows; 0 means no such customer.
func (db *DB) UpdateCustomer(c models.CustomerInput) (int64, error) {
	res, err := db.Exec(`
		UPDATE customers
		SET customer_name = ?, phone_no = ?, area = ?, address = ?, email = ?, company_name = ?
		WHERE id = ?`,
		c.Name, c.Phone, c.Area, c.Address, c.Email, c.Company, c.ID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// DeleteCustomer removes a customer. Repair and AMC records cascade with
// it; service calls keep their rows with a nulled customer reference.
func (db *DB) DeleteCustomer(id int64) (int64, error) {
	res, err := db.Exec(`DELETE FROM customers WHERE id = ?`, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
