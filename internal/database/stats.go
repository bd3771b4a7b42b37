package database

import (
	"time"

	"servicetrack/internal/models"
)

const monthLayout = "2006-01"

// trendMonths is how many calendar months the activity trend covers,
// current month included.
const trendMonths = 6

// DashboardStats aggregates the headline counts shown on the home screen.
func (db *DB) DashboardStats() (*models.DashboardStats, error) {
	var stats models.DashboardStats
	from, to := expiryWindow(time.Now())

	counts := []struct {
		query string
		args  []any
		dest  *int
	}{
		{`SELECT COUNT(*) FROM customers`, nil, &stats.TotalCustomers},
		{`SELECT COUNT(*) FROM service_calls`, nil, &stats.TotalServiceCalls},
		{`SELECT COUNT(*) FROM repair_records`, nil, &stats.TotalRepairs},
		{`SELECT COUNT(*) FROM amc_records WHERE status = ?`,
			[]any{models.AmcStatusActive}, &stats.ActiveAMCs},
		{`SELECT COUNT(*) FROM amc_records WHERE status = ? AND end_date >= ? AND end_date <= ?`,
			[]any{models.AmcStatusActive, from, to}, &stats.ExpiringAmcsCount},
	}

	for _, c := range counts {
		if err := db.QueryRow(c.query, c.args...).Scan(c.dest); err != nil {
			return nil, err
		}
	}

	return &stats, nil
}

// MonthlyStats reports service call and repair activity for the last six
// calendar months, oldest first. Quiet months report zero rather than
// being absent.
func (db *DB) MonthlyStats() ([]models.MonthlyStat, error) {
	now := time.Now()
	months := monthWindow(now, trendMonths)
	windowStart := firstOfMonth(now, trendMonths-1)

	calls, err := db.countByMonth(
		`SELECT DATE_FORMAT(created_at, '%Y-%m'), COUNT(*)
		 FROM service_calls WHERE created_at >= ? GROUP BY 1`, windowStart)
	if err != nil {
		return nil, err
	}

	repairs, err := db.countByMonth(
		`SELECT DATE_FORMAT(repair_date, '%Y-%m'), COUNT(*)
		 FROM repair_records WHERE repair_date >= ? GROUP BY 1`, windowStart)
	if err != nil {
		return nil, err
	}

	return mergeMonthly(months, calls, repairs), nil
}

func (db *DB) countByMonth(query, since string) (map[string]int, error) {
	rows, err := db.Query(query, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var month string
		var n int
		if err := rows.Scan(&month, &n); err != nil {
			return nil, err
		}
		counts[month] = n
	}

	return counts, rows.Err()
}

// monthWindow lists the last n calendar months ascending, ending with the
// month containing now.
func monthWindow(now time.Time, n int) []string {
	months := make([]string, 0, n)
	for i := n - 1; i >= 0; i-- {
		m := time.Date(now.Year(), now.Month()-time.Month(i), 1, 0, 0, 0, 0, now.Location())
		months = append(months, m.Format(monthLayout))
	}
	return months
}

// firstOfMonth returns the first day of the month monthsBack before now.
func firstOfMonth(now time.Time, monthsBack int) string {
	m := time.Date(now.Year(), now.Month()-time.Month(monthsBack), 1, 0, 0, 0, 0, now.Location())
	return m.Format(dateLayout)
}

func mergeMonthly(months []string, calls, repairs map[string]int) []models.MonthlyStat {
	stats := make([]models.MonthlyStat, 0, len(months))
	for _, m := range months {
		stats = append(stats, models.MonthlyStat{
			Month:         m,
			ServiceCalls:  calls[m],
			RepairRecords: repairs[m],
		})
	}
	return stats
}
