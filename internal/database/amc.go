package database

import (
	"time"

	sq "github.com/Masterminds/squirrel"

	"servicetrack/internal/models"
)

const dateLayout = "2006-01-02"

// expiringSoonDays is the lookahead window for contracts about to lapse,
// inclusive of today.
const expiringSoonDays = 30

// expiryWindow returns the inclusive [today, today+30d] date bounds.
func expiryWindow(now time.Time) (from, to string) {
	return now.Format(dateLayout), now.AddDate(0, 0, expiringSoonDays).Format(dateLayout)
}

// ListAmcRecords returns AMC contracts joined with the owning customer,
// soonest expiry first. ExpiringSoon takes precedence over the plain
// status filter: only Active contracts ending within the window match.
func (db *DB) ListAmcRecords(f models.AmcFilter) ([]models.AmcRecord, error) {
	b := sq.Select(
		"amc.id", "amc.customer_id", "amc.start_date", "amc.end_date",
		"COALESCE(amc.amount, 0)", "amc.machine_details", "COALESCE(amc.status, '')",
		"amc.notes", "amc.created_at", "c.customer_name", "c.phone_no",
	).
		From("amc_records amc").
		LeftJoin("customers c ON amc.customer_id = c.id")

	if f.ExpiringSoon {
		from, to := expiryWindow(time.Now())
		b = b.Where(sq.Eq{"amc.status": models.AmcStatusActive}).
			Where(sq.GtOrEq{"amc.end_date": from}).
			Where(sq.LtOrEq{"amc.end_date": to})
	} else if f.Status != "" {
		b = b.Where(sq.Eq{"amc.status": f.Status})
	}

	query, args, err := b.OrderBy("amc.end_date ASC").ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []models.AmcRecord{}
	for rows.Next() {
		var r models.AmcRecord
		if err := rows.Scan(
			&r.ID, &r.CustomerID, &r.StartDate, &r.EndDate,
			&r.Amount, &r.MachineDetails, &r.Status,
			&r.Notes, &r.CreatedAt, &r.CustomerName, &r.PhoneNo,
		); err != nil {
			return nil, err
		}
		records = append(records, r)
	}

	return records, rows.Err()
}

// AddAmcRecord inserts a contract and returns the new id. An empty status
// becomes Active, matching the column default.
func (db *DB) AddAmcRecord(r models.AmcRecordInput) (int64, error) {
	status := r.Status
	if status == "" {
		status = models.AmcStatusActive
	}

	res, err := db.Exec(`
		INSERT INTO amc_records
			(customer_id, start_date, end_date, amount, machine_details, status, notes)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.CustomerID, r.StartDate, r.EndDate, r.Amount, r.MachineDetails, status, r.Notes)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (db *DB) UpdateAmcRecord(r models.AmcRecordInput) (int64, error) {
	res, err := db.Exec(`
		UPDATE amc_records
		SET customer_id = ?, start_date = ?, end_date = ?, amount = ?,
		    machine_details = ?, status = ?, notes = ?
		WHERE id = ?`,
		r.CustomerID, r.StartDate, r.EndDate, r.Amount, r.MachineDetails, r.Status, r.Notes, r.ID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (db *DB) DeleteAmcRecord(id int64) (int64, error) {
	res, err := db.Exec(`DELETE FROM amc_records WHERE id = ?`, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// ExpireOverdueAmcs flips Active contracts whose end date has passed to
// Expired. Runs at startup and on the daily schedule, never on the read
// path. Returns how many rows were flipped.
func (db *DB) ExpireOverdueAmcs(now time.Time) (int64, error) {
	res, err := db.Exec(`
		UPDATE amc_records SET status = ? WHERE end_date < ? AND status = ?`,
		models.AmcStatusExpired, now.Format(dateLayout), models.AmcStatusActive)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
