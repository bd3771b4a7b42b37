package database

import (
	"database/sql"
	"log"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"servicetrack/internal/models"
)

// Integration tests run against a real MySQL database when
// SERVICETRACK_TEST_DSN is set, e.g.
//
//	SERVICETRACK_TEST_DSN="root:root@tcp(localhost:3306)/servicetrack_test" go test ./...
//
// and are skipped otherwise.
var testDB *DB

func TestMain(m *testing.M) {
	if dsn := os.Getenv("SERVICETRACK_TEST_DSN"); dsn != "" {
		conn, err := sql.Open("mysql", dsn)
		if err != nil {
			log.Fatalf("failed to open test database: %v", err)
		}
		testDB = &DB{conn}
		if err := testDB.Initialize(); err != nil {
			log.Fatalf("failed to initialize test schema: %v", err)
		}
	}

	code := m.Run()
	if testDB != nil {
		testDB.Close()
	}
	os.Exit(code)
}

func requireTestDB(t *testing.T) *DB {
	t.Helper()
	if testDB == nil {
		t.Skip("SERVICETRACK_TEST_DSN not set, skipping database integration test")
	}
	resetTables(t)
	return testDB
}

func resetTables(t *testing.T) {
	t.Helper()
	for _, table := range []string{
		"service_calls", "repair_records", "amc_records", "customers",
		"settings", "areas", "products", "common_issues", "common_resolutions", "users",
	} {
		_, err := testDB.Exec("DELETE FROM " + table)
		require.NoError(t, err)
	}
}

func strPtr(s string) *string { return &s }

func seedCustomer(t *testing.T, db *DB, name string) int64 {
	t.Helper()
	id, err := db.AddCustomer(models.CustomerInput{Name: name, Phone: strPtr("555-0100")})
	require.NoError(t, err)
	return id
}

func TestCustomerRoundTrip(t *testing.T) {
	db := requireTestDB(t)

	id, err := db.AddCustomer(models.CustomerInput{
		Name:    "Acme Traders",
		Phone:   strPtr("555-1"),
		Area:    strPtr("North"),
		Address: strPtr("12 Market Road"),
		Email:   strPtr("acme@example.com"),
		Company: strPtr("Acme"),
	})
	require.NoError(t, err)
	assert.Greater(t, id, int64(0))

	customers, err := db.ListCustomers()
	require.NoError(t, err)
	require.Len(t, customers, 1)

	c := customers[0]
	assert.Equal(t, id, c.ID)
	assert.Equal(t, "Acme Traders", c.Name)
	assert.Equal(t, "555-1", *c.Phone)
	assert.Equal(t, "North", *c.Area)
	assert.Equal(t, "12 Market Road", *c.Address)
	assert.Equal(t, "acme@example.com", *c.Email)
	assert.Equal(t, "Acme", *c.Company)
	assert.NotEmpty(t, c.CreatedAt)
}

func TestUpdateMissingCustomerIsNoOp(t *testing.T) {
	db := requireTestDB(t)

	n, err := db.UpdateCustomer(models.CustomerInput{ID: 9999, Name: "Ghost"})
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)

	n, err = db.DeleteCustomer(9999)
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)
}

func TestDeleteCustomerDependents(t *testing.T) {
	db := requireTestDB(t)
	today := time.Now().Format(dateLayout)

	custID := seedCustomer(t, db, "Dependent Co")

	callID, err := db.AddServiceCall(models.ServiceCallInput{
		CustomerID:       &custID,
		Area:             strPtr("North"),
		IssueDescription: strPtr("No power"),
	})
	require.NoError(t, err)

	_, err = db.AddRepairRecord(models.RepairRecordInput{
		CustomerID: custID,
		RepairDate: strPtr(today),
	})
	require.NoError(t, err)

	_, err = db.AddAmcRecord(models.AmcRecordInput{
		CustomerID: custID,
		StartDate:  today,
		EndDate:    today,
	})
	require.NoError(t, err)

	n, err := db.DeleteCustomer(custID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	// The service call survives with a nulled customer reference.
	call, err := db.GetServiceCall(callID)
	require.NoError(t, err)
	require.NotNil(t, call)
	assert.Nil(t, call.CustomerID)
	assert.Nil(t, call.CustomerName)
	assert.Nil(t, call.PhoneNo)

	// Repair and AMC records cascade away.
	repairs, err := db.ListRepairRecords(models.RepairFilter{})
	require.NoError(t, err)
	assert.Empty(t, repairs)

	amcs, err := db.ListAmcRecords(models.AmcFilter{})
	require.NoError(t, err)
	assert.Empty(t, amcs)
}

func TestServiceCallDefaultsAndStatus(t *testing.T) {
	db := requireTestDB(t)
	custID := seedCustomer(t, db, "Defaults Co")

	id, err := db.AddServiceCall(models.ServiceCallInput{
		CustomerID:       &custID,
		Area:             strPtr("North"),
		IssueDescription: strPtr("No power"),
	})
	require.NoError(t, err)

	call, err := db.GetServiceCall(id)
	require.NoError(t, err)
	require.NotNil(t, call)
	assert.Equal(t, models.StatusOpen, call.Status)
	assert.Equal(t, models.PriorityMedium, call.Priority)
	assert.Equal(t, "Defaults Co", *call.CustomerName)

	n, err := db.UpdateServiceCallStatus(id, models.StatusCompleted, "Replaced fuse")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	call, err = db.GetServiceCall(id)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, call.Status)
	assert.Equal(t, "Replaced fuse", call.ResolutionDetails)
}

func TestPendingCallsToday(t *testing.T) {
	db := requireTestDB(t)
	custID := seedCustomer(t, db, "Pending Co")
	today := time.Now().Format(dateLayout)

	openID, err := db.AddServiceCall(models.ServiceCallInput{
		CustomerID:    &custID,
		ScheduledDate: strPtr(today + " 09:00:00"),
	})
	require.NoError(t, err)

	_, err = db.AddServiceCall(models.ServiceCallInput{
		CustomerID:    &custID,
		Status:        models.StatusCompleted,
		ScheduledDate: strPtr(today + " 11:00:00"),
	})
	require.NoError(t, err)

	tomorrow := time.Now().AddDate(0, 0, 1).Format(dateLayout)
	_, err = db.AddServiceCall(models.ServiceCallInput{
		CustomerID:    &custID,
		ScheduledDate: strPtr(tomorrow + " 09:00:00"),
	})
	require.NoError(t, err)

	pending, err := db.PendingCallsToday()
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, openID, pending[0].ID)

	// Closing the remaining call empties today's pending list.
	_, err = db.UpdateServiceCallStatus(openID, models.StatusClosed, "")
	require.NoError(t, err)

	pending, err = db.PendingCallsToday()
	require.NoError(t, err)
	assert.Empty(t, pending)
}

func TestRepairDateFilter(t *testing.T) {
	db := requireTestDB(t)
	custID := seedCustomer(t, db, "Repairs Co")

	for _, date := range []string{"2026-01-10", "2026-02-10", "2026-03-10"} {
		_, err := db.AddRepairRecord(models.RepairRecordInput{
			CustomerID: custID,
			RepairDate: strPtr(date),
		})
		require.NoError(t, err)
	}

	// Inclusive on both ends.
	records, err := db.ListRepairRecords(models.RepairFilter{
		StartDate: "2026-01-10",
		EndDate:   "2026-02-10",
	})
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "2026-02-10", *records[0].RepairDate)
	assert.Equal(t, "2026-01-10", *records[1].RepairDate)

	// Alias fields mirror the column values.
	assert.Equal(t, records[0].RepairDate, records[0].Date)
	assert.Equal(t, records[0].AmountCharged, records[0].Amount)

	records, err = db.ListRepairRecords(models.RepairFilter{StartDate: "2026-03-01"})
	require.NoError(t, err)
	assert.Len(t, records, 1)

	records, err = db.ListRepairRecords(models.RepairFilter{})
	require.NoError(t, err)
	assert.Len(t, records, 3)
}

func TestAmcSweep(t *testing.T) {
	db := requireTestDB(t)
	custID := seedCustomer(t, db, "AMC Co")
	now := time.Now()

	overdueID, err := db.AddAmcRecord(models.AmcRecordInput{
		CustomerID: custID,
		StartDate:  now.AddDate(-1, 0, 0).Format(dateLayout),
		EndDate:    now.AddDate(0, 0, -1).Format(dateLayout),
	})
	require.NoError(t, err)

	currentID, err := db.AddAmcRecord(models.AmcRecordInput{
		CustomerID: custID,
		StartDate:  now.Format(dateLayout),
		EndDate:    now.AddDate(0, 0, 10).Format(dateLayout),
	})
	require.NoError(t, err)

	// Nothing flips before the sweep runs.
	statuses := amcStatusByID(t, db)
	assert.Equal(t, models.AmcStatusActive, statuses[overdueID])
	assert.Equal(t, models.AmcStatusActive, statuses[currentID])

	n, err := db.ExpireOverdueAmcs(now)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	statuses = amcStatusByID(t, db)
	assert.Equal(t, models.AmcStatusExpired, statuses[overdueID])
	assert.Equal(t, models.AmcStatusActive, statuses[currentID])

	// Re-running is harmless.
	n, err = db.ExpireOverdueAmcs(now)
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)
}

func amcStatusByID(t *testing.T, db *DB) map[int64]string {
	t.Helper()
	records, err := db.ListAmcRecords(models.AmcFilter{})
	require.NoError(t, err)
	statuses := make(map[int64]string, len(records))
	for _, r := range records {
		statuses[r.ID] = r.Status
	}
	return statuses
}

func TestAmcExpiringSoonFilter(t *testing.T) {
	db := requireTestDB(t)
	custID := seedCustomer(t, db, "Expiry Co")
	now := time.Now()

	add := func(endOffsetDays int, status string) int64 {
		id, err := db.AddAmcRecord(models.AmcRecordInput{
			CustomerID: custID,
			StartDate:  now.AddDate(0, -6, 0).Format(dateLayout),
			EndDate:    now.AddDate(0, 0, endOffsetDays).Format(dateLayout),
			Status:     status,
		})
		require.NoError(t, err)
		return id
	}

	onBoundary := add(30, models.AmcStatusActive)
	within := add(10, models.AmcStatusActive)
	endsToday := add(0, models.AmcStatusActive)
	tooFar := add(31, models.AmcStatusActive)
	expired := add(5, models.AmcStatusExpired)

	records, err := db.ListAmcRecords(models.AmcFilter{ExpiringSoon: true})
	require.NoError(t, err)

	ids := make([]int64, 0, len(records))
	for _, r := range records {
		ids = append(ids, r.ID)
	}
	assert.ElementsMatch(t, []int64{onBoundary, within, endsToday}, ids)
	assert.NotContains(t, ids, tooFar)
	assert.NotContains(t, ids, expired)

	// ExpiringSoon wins over a conflicting status filter.
	records, err = db.ListAmcRecords(models.AmcFilter{Status: models.AmcStatusExpired, ExpiringSoon: true})
	require.NoError(t, err)
	assert.Len(t, records, 3)

	// Plain status filter still works on its own.
	records, err = db.ListAmcRecords(models.AmcFilter{Status: models.AmcStatusExpired})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, expired, records[0].ID)
}

func TestDashboardStats(t *testing.T) {
	db := requireTestDB(t)
	custID := seedCustomer(t, db, "Stats Co")
	now := time.Now()

	_, err := db.AddServiceCall(models.ServiceCallInput{CustomerID: &custID})
	require.NoError(t, err)
	_, err = db.AddRepairRecord(models.RepairRecordInput{CustomerID: custID, RepairDate: strPtr(now.Format(dateLayout))})
	require.NoError(t, err)

	// One active far out, one active expiring soon, one expired.
	for _, amc := range []models.AmcRecordInput{
		{CustomerID: custID, StartDate: now.Format(dateLayout), EndDate: now.AddDate(1, 0, 0).Format(dateLayout)},
		{CustomerID: custID, StartDate: now.Format(dateLayout), EndDate: now.AddDate(0, 0, 15).Format(dateLayout)},
		{CustomerID: custID, StartDate: now.Format(dateLayout), EndDate: now.AddDate(0, 0, 20).Format(dateLayout), Status: models.AmcStatusExpired},
	} {
		_, err = db.AddAmcRecord(amc)
		require.NoError(t, err)
	}

	stats, err := db.DashboardStats()
	require.NoError(t, err)

	assert.Equal(t, 1, stats.TotalCustomers)
	assert.Equal(t, 1, stats.TotalServiceCalls)
	assert.Equal(t, 1, stats.TotalRepairs)
	assert.Equal(t, 2, stats.ActiveAMCs)
	assert.Equal(t, 1, stats.ExpiringAmcsCount)
	assert.LessOrEqual(t, stats.ExpiringAmcsCount, stats.ActiveAMCs)
}

func TestMonthlyStats(t *testing.T) {
	db := requireTestDB(t)
	custID := seedCustomer(t, db, "Trend Co")
	now := time.Now()

	_, err := db.AddServiceCall(models.ServiceCallInput{CustomerID: &custID})
	require.NoError(t, err)
	_, err = db.AddRepairRecord(models.RepairRecordInput{
		CustomerID: custID,
		RepairDate: strPtr(now.Format(dateLayout)),
	})
	require.NoError(t, err)

	stats, err := db.MonthlyStats()
	require.NoError(t, err)

	require.Len(t, stats, 6)
	for i := 1; i < len(stats); i++ {
		assert.Less(t, stats[i-1].Month, stats[i].Month)
	}

	current := stats[5]
	assert.Equal(t, now.Format(monthLayout), current.Month)
	assert.Equal(t, 1, current.ServiceCalls)
	assert.Equal(t, 1, current.RepairRecords)

	// Quiet months are present with zeros, not absent.
	assert.Equal(t, 0, stats[0].ServiceCalls)
	assert.Equal(t, 0, stats[0].RepairRecords)
}

func TestSettingsUpsert(t *testing.T) {
	db := requireTestDB(t)

	require.NoError(t, db.SaveSetting("companyName", "Acme Services"))
	require.NoError(t, db.SaveSetting("companyPhone", "555-0100"))
	require.NoError(t, db.SaveSetting("companyName", "Acme Services Pvt Ltd"))

	settings, err := db.AllSettings()
	require.NoError(t, err)

	assert.Len(t, settings, 2)
	assert.Equal(t, "Acme Services Pvt Ltd", settings["companyName"])
	assert.Equal(t, "555-0100", settings["companyPhone"])
}

func TestSeedDefaultUser(t *testing.T) {
	db := requireTestDB(t)

	require.NoError(t, db.SeedDefaultUser())

	user, err := db.GetUser("admin", "admin")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, models.DefaultRole, user.Role)

	// Seeding again must not duplicate or reset anything.
	require.NoError(t, db.SeedDefaultUser())
	var count int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM users").Scan(&count))
	assert.Equal(t, 1, count)
}

func TestChangePassword(t *testing.T) {
	db := requireTestDB(t)
	require.NoError(t, db.SeedDefaultUser())

	// Wrong old password: no mutation, specific error.
	err := db.ChangePassword("admin", "wrong", "newpass")
	assert.ErrorIs(t, err, ErrIncorrectPassword)

	user, err := db.GetUser("admin", "admin")
	require.NoError(t, err)
	assert.NotNil(t, user)

	// Correct old password: new works, old stops working.
	require.NoError(t, db.ChangePassword("admin", "admin", "newpass"))

	user, err = db.GetUser("admin", "newpass")
	require.NoError(t, err)
	assert.NotNil(t, user)

	user, err = db.GetUser("admin", "admin")
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestReferenceLists(t *testing.T) {
	db := requireTestDB(t)

	id, err := db.AddArea("North")
	require.NoError(t, err)
	_, err = db.AddArea("East")
	require.NoError(t, err)

	areas, err := db.ListAreas()
	require.NoError(t, err)
	require.Len(t, areas, 2)
	assert.Equal(t, "East", areas[0].Name)
	assert.Equal(t, "North", areas[1].Name)

	n, err := db.DeleteArea(id)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	pid, err := db.AddProduct("Water Pump", 4500)
	require.NoError(t, err)
	products, err := db.ListProducts()
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, pid, products[0].ID)
	assert.Equal(t, 4500.0, products[0].Price)

	_, err = db.AddCommonIssue("No power")
	require.NoError(t, err)
	issues, err := db.ListCommonIssues()
	require.NoError(t, err)
	assert.Len(t, issues, 1)

	_, err = db.AddCommonResolution("Replaced fuse")
	require.NoError(t, err)
	resolutions, err := db.ListCommonResolutions()
	require.NoError(t, err)
	assert.Len(t, resolutions, 1)
}
