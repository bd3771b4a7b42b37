package database

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMonthWindow(t *testing.T) {
	now := time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)

	months := monthWindow(now, 6)

	assert.Equal(t, []string{
		"2025-10", "2025-11", "2025-12", "2026-01", "2026-02", "2026-03",
	}, months)
}

func TestMonthWindowYearBoundary(t *testing.T) {
	now := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)

	months := monthWindow(now, 6)

	assert.Len(t, months, 6)
	assert.Equal(t, "2025-08", months[0])
	assert.Equal(t, "2026-01", months[5])
}

func TestFirstOfMonth(t *testing.T) {
	now := time.Date(2026, time.March, 31, 23, 59, 0, 0, time.UTC)

	assert.Equal(t, "2025-10-01", firstOfMonth(now, 5))
	assert.Equal(t, "2026-03-01", firstOfMonth(now, 0))
}

func TestMergeMonthlyZeroFills(t *testing.T) {
	months := []string{"2026-01", "2026-02", "2026-03"}
	calls := map[string]int{"2026-01": 4}
	repairs := map[string]int{"2026-03": 2}

	stats := mergeMonthly(months, calls, repairs)

	assert.Len(t, stats, 3)
	assert.Equal(t, 4, stats[0].ServiceCalls)
	assert.Equal(t, 0, stats[0].RepairRecords)
	assert.Equal(t, 0, stats[1].ServiceCalls)
	assert.Equal(t, 0, stats[1].RepairRecords)
	assert.Equal(t, 2, stats[2].RepairRecords)
	assert.Equal(t, "2026-02", stats[1].Month)
}

func TestExpiryWindow(t *testing.T) {
	now := time.Date(2026, time.January, 31, 10, 0, 0, 0, time.UTC)

	from, to := expiryWindow(now)

	assert.Equal(t, "2026-01-31", from)
	assert.Equal(t, "2026-03-02", to)
}
