package dto

// BranchStats is the per-branch placement breakdown
type BranchStats struct {
	BranchID       int64  `json:"branch_id"`
	BranchName     string `json:"branch_name"`
	TotalStudents  int    `json:"total_students"`
	PlacedStudents int    `json:"placed_students"`
	PlacementRate  int    `json:"placement_rate"`
}

// StatusCount is one slice of the application status breakdown.
// Percentages are rounded per status and may not sum to exactly 100.
type StatusCount struct {
	Status     string `json:"status"`
	Count      int    `json:"count"`
	Percentage int    `json:"percentage"`
}

// DashboardStats aggregates the coordinator dashboard numbers.
// Derived from scratch on every read; never authoritative state.
type DashboardStats struct {
	TotalStudents     int           `json:"total_students"`
	TotalDrives       int           `json:"total_drives"`
	TotalCompanies    int           `json:"total_companies"`
	TotalApplications int           `json:"total_applications"`
	PlacedStudents    int           `json:"placed_students"`
	PlacementRate     int           `json:"placement_rate"`
	AveragePackage    float64       `json:"average_package"`
	BranchStats       []BranchStats `json:"branch_stats"`
	StatusBreakdown   []StatusCount `json:"status_breakdown"`
}
