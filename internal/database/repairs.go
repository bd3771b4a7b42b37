package database

import (
	sq "github.com/Masterminds/squirrel"

	"servicetrack/internal/models"
)

// ListRepairRecords returns repair records joined with the owning
// customer, optionally bounded by repair date (inclusive on both ends),
// most recent repair first.
func (db *DB) ListRepairRecords(f models.RepairFilter) ([]models.RepairRecord, error) {
	b := sq.Select(
		"rr.id", "rr.customer_id", "rr.machine_description", "rr.repair_description",
		"rr.repair_date", "COALESCE(rr.amount_charged, 0)", "rr.created_at",
		"c.customer_name", "c.phone_no",
	).
		From("repair_records rr").
		LeftJoin("customers c ON rr.customer_id = c.id")

	if f.StartDate != "" {
		b = b.Where(sq.GtOrEq{"rr.repair_date": f.StartDate})
	}
	if f.EndDate != "" {
		b = b.Where(sq.LtOrEq{"rr.repair_date": f.EndDate})
	}

	query, args, err := b.OrderBy("rr.repair_date DESC").ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []models.RepairRecord{}
	for rows.Next() {
		var r models.RepairRecord
		if err := rows.Scan(
			&r.ID, &r.CustomerID, &r.MachineDescription, &r.RepairDescription,
			&r.RepairDate, &r.AmountCharged, &r.CreatedAt,
			&r.CustomerName, &r.PhoneNo,
		); err != nil {
			return nil, err
		}
		r.ApplyAliases()
		records = append(records, r)
	}

	return records, rows.Err()
}

// AddRepairRecord inserts a repair record and returns the new id.
func (db *DB) AddRepairRecord(r models.RepairRecordInput) (int64, error) {
	res, err := db.Exec(`
		INSERT INTO repair_records
			(customer_id, machine_description, repair_description, repair_date, amount_charged)
		VALUES (?, ?, ?, ?, ?)`,
		r.CustomerID, r.MachineDescription, r.RepairDescription, r.RepairDate, r.AmountCharged)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (db *DB) UpdateRepairRecord(r models.RepairRecordInput) (int64, error) {
	res, err := db.Exec(`
		UPDATE repair_records
		SET customer_id = ?, machine_description = ?, repair_description = ?,
		    repair_date = ?, amount_charged = ?
		WHERE id = ?`,
		r.CustomerID, r.MachineDescription, r.RepairDescription, r.RepairDate, r.AmountCharged, r.ID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (db *DB) DeleteRepairRecord(id int64) (int64, error) {
	res, err := db.Exec(`DELETE FROM repair_records WHERE id = ?`, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
