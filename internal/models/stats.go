package models

type DashboardStats struct {
	TotalCustomers    int `json:"totalCustomers"`
	TotalServiceCalls int `json:"totalServiceCalls"`
	TotalRepairs      int `json:"totalRepairs"`
	ActiveAMCs        int `json:"activeAMCs"`
	ExpiringAmcsCount int `json:"expiringAmcsCount"`
}

// MonthlyStat is one month of activity. Month is formatted YYYY-MM.
type MonthlyStat struct {
	Month         string `json:"month"`
	ServiceCalls  int    `json:"serviceCalls"`
	RepairRecords int    `json:"repairRecords"`
}
