package domain

// Report is the aggregate view behind GET /api/reports.
type Report struct {
	Users          int `json:"users"`
	PendingTasks   int `json:"pendingTasks"`
	CompletedTasks int `json:"completedTasks"`
	Notifications  int `json:"notifications"`
}

// AdminStats is the aggregate view behind GET /api/admin/stats.
type AdminStats struct {
	TotalUsers     int `json:"totalUsers"`
	PendingTasks   int `json:"pendingTasks"`
	TotalClasses   int `json:"totalClasses"`
	CompletedTasks int `json:"completedTasks"`
	TotalReports   int `json:"totalReports"`
}
