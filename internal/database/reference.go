package database

import (
	"servicetrack/internal/models"
)

// Reference master data: areas, products, and the common issue and
// resolution lists the mobile client uses for autocomplete.

func (db *DB) ListAreas() ([]models.Area, error) {
	rows, err := db.Query(`SELECT id, name FROM areas ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	areas := []models.Area{}
	for rows.Next() {
		var a models.Area
		if err := rows.Scan(&a.ID, &a.Name); err != nil {
			return nil, err
		}
		areas = append(areas, a)
	}
	return areas, rows.Err()
}

func (db *DB) AddArea(name string) (int64, error) {
	res, err := db.Exec(`INSERT INTO areas (name) VALUES (?)`, name)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (db *DB) DeleteArea(id int64) (int64, error) {
	res, err := db.Exec(`DELETE FROM areas WHERE id = ?`, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (db *DB) ListProducts() ([]models.Product, error) {
	rows, err := db.Query(`
		SELECT id, COALESCE(name, ''), COALESCE(price, 0) FROM products ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		var p models.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Price); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (db *DB) AddProduct(name string, price float64) (int64, error) {
	res, err := db.Exec(`INSERT INTO products (name, price) VALUES (?, ?)`, name, price)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (db *DB) DeleteProduct(id int64) (int64, error) {
	res, err := db.Exec(`DELETE FROM products WHERE id = ?`, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (db *DB) ListCommonIssues() ([]models.CommonIssue, error) {
	rows, err := db.Query(`SELECT id, issue_text FROM common_issues`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	issues := []models.CommonIssue{}
	for rows.Next() {
		var i models.CommonIssue
		if err := rows.Scan(&i.ID, &i.IssueText); err != nil {
			return nil, err
		}
		issues = append(issues, i)
	}
	return issues, rows.Err()
}

func (db *DB) AddCommonIssue(text string) (int64, error) {
	res, err := db.Exec(`INSERT INTO common_issues (issue_text) VALUES (?)`, text)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (db *DB) DeleteCommonIssue(id int64) (int64, error) {
	res, err := db.Exec(`DELETE FROM common_issues WHERE id = ?`, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (db *DB) ListCommonResolutions() ([]models.CommonResolution, error) {
	rows, err := db.Query(`SELECT id, resolution_text FROM common_resolutions`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	resolutions := []models.CommonResolution{}
	for rows.Next() {
		var r models.CommonResolution
		if err := rows.Scan(&r.ID, &r.ResolutionText); err != nil {
			return nil, err
		}
		resolutions = append(resolutions, r)
	}
	return resolutions, rows.Err()
}

func (db *DB) AddCommonResolution(text string) (int64, error) {
	res, err := db.Exec(`INSERT INTO common_resolutions (resolution_text) VALUES (?)`, text)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (db *DB) DeleteCommonResolution(id int64) (int64, error) {
	res, err := db.Exec(`DELETE FROM common_resolutions WHERE id = ?`, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
