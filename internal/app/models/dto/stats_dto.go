package dto

// ActivityEntry is one line of the dashboard's recent-activity feed
type ActivityEntry struct {
	Name       string `json:"name"`
	Department string `json:"department"`
	Status     string `json:"status"`
	Time       string `json:"time"`
	Date       string `json:"date"`
}

// DepartmentCount is one slice of the department distribution
type DepartmentCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// StatsResponse is the dashboard summary payload
type StatsResponse struct {
	TotalEmployees  int64             `json:"total_employees"`
	PresentToday    int               `json:"present_today"`
	AbsentToday     int               `json:"absent_today"`
	RecentActivity  []ActivityEntry   `json:"recent_activity"`
	DepartmentStats []DepartmentCount `json:"department_stats"`
}
