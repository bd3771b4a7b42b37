package database

import (
	"database/sql"
	"time"

	"servicetrack/internal/models"
)

const serviceCallColumns = `
	sc.id, sc.customer_id, COALESCE(sc.area, ''), COALESCE(sc.issue_description, ''),
	COALESCE(sc.status, ''), COALESCE(sc.priority, ''), COALESCE(sc.technician_name, ''),
	sc.scheduled_date, COALESCE(sc.resolution_details, ''), COALESCE(sc.service_charge, 0),
	sc.created_at, c.customer_name, c.phone_no`

func scanServiceCall(rows *sql.Rows) (models.ServiceCall, error) {
	var sc models.ServiceCall
	err := rows.Scan(
		&sc.ID, &sc.CustomerID, &sc.Area, &sc.IssueDescription,
		&sc.Status, &sc.Priority, &sc.TechnicianName,
		&sc.ScheduledDate, &sc.ResolutionDetails, &sc.ServiceCharge,
		&sc.CreatedAt, &sc.CustomerName, &sc.PhoneNo,
	)
	return sc, err
}

// ListServiceCalls returns every service call, newest first, with the
// owning customer's name and phone joined in.
func (db *DB) ListServiceCalls() ([]models.ServiceCall, error) {
	rows, err := db.Query(`
		SELECT ` + serviceCallColumns + `
		FROM service_calls sc
		LEFT JOIN customers c ON sc.customer_id = c.id
		ORDER BY sc.created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	calls := []models.ServiceCall{}
	for rows.Next() {
		sc, err := scanServiceCall(rows)
		if err != nil {
			return nil, err
		}
		calls = append(calls, sc)
	}

	return calls, rows.Err()
}

// GetServiceCall fetches one call by id; the joined customer fields also
// include address and email. Returns nil when the call does not exist.
func (db *DB) GetServiceCall(id int64) (*models.ServiceCall, error) {
	var sc models.ServiceCall
	err := db.QueryRow(`
		SELECT `+serviceCallColumns+`, c.address, c.email
		FROM service_calls sc
		LEFT JOIN customers c ON sc.customer_id = c.id
		WHERE sc.id = ?`, id).Scan(
		&sc.ID, &sc.CustomerID, &sc.Area, &sc.IssueDescription,
		&sc.Status, &sc.Priority, &sc.TechnicianName,
		&sc.ScheduledDate, &sc.ResolutionDetails, &sc.ServiceCharge,
		&sc.CreatedAt, &sc.CustomerName, &sc.PhoneNo,
		&sc.CustomerAddress, &sc.CustomerEmail,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &sc, nil
}

// AddServiceCall inserts a call and returns the new id. Missing status and
// priority fall back to Open/Medium, matching the column defaults.
func (db *DB) AddServiceCall(sc models.ServiceCallInput) (int64, error) {
	status := sc.Status
	if status == "" {
		status = models.StatusOpen
	}
	priority := sc.Priority
	if priority == "" {
		priority = models.PriorityMedium
	}

	res, err := db.Exec(`
		INSERT INTO service_calls
			(customer_id, area, issue_description, status, priority,
			 technician_name, scheduled_date, resolution_details, service_charge)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		sc.CustomerID, sc.Area, sc.IssueDescription, status, priority,
		sc.TechnicianName, sc.ScheduledDate, sc.ResolutionDetails, sc.ServiceCharge)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// UpdateServiceCall overwrites all fields of a call by id.
func (db *DB) UpdateServiceCall(sc models.ServiceCallInput) (int64, error) {
	res, err := db.Exec(`
		UPDATE service_calls
		SET customer_id = ?, area = ?, issue_description = ?, status = ?, priority = ?,
		    technician_name = ?, scheduled_date = ?, resolution_details = ?, service_charge = ?
		WHERE id = ?`,
		sc.CustomerID, sc.Area, sc.IssueDescription, sc.Status, sc.Priority,
		sc.TechnicianName, sc.ScheduledDate, sc.ResolutionDetails, sc.ServiceCharge, sc.ID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// UpdateServiceCallStatus moves a call to a new status with its resolution
// notes; the usual transition for closing out a visit.
func (db *DB) UpdateServiceCallStatus(id int64, status, resolution string) (int64, error) {
	res, err := db.Exec(`
		UPDATE service_calls SET status = ?, resolution_details = ? WHERE id = ?`,
		status, resolution, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (db *DB) DeleteServiceCall(id int64) (int64, error) {
	res, err := db.Exec(`DELETE FROM service_calls WHERE id = ?`, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// PendingCallsToday returns calls scheduled for the current date that are
// not in a terminal status, soonest first.
func (db *DB) PendingCallsToday() ([]models.ServiceCall, error) {
	today := time.Now().Format(dateLayout)

	rows, err := db.Query(`
		SELECT `+serviceCallColumns+`
		FROM service_calls sc
		LEFT JOIN customers c ON sc.customer_id = c.id
		WHERE sc.status NOT IN (?, ?) AND DATE(sc.scheduled_date) = ?
		ORDER BY sc.scheduled_date ASC`,
		models.StatusCompleted, models.StatusClosed, today)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	calls := []models.ServiceCall{}
	for rows.Next() {
		sc, err := scanServiceCall(rows)
		if err != nil {
			return nil, err
		}
		calls = append(calls, sc)
	}

	return calls, rows.Err()
}
