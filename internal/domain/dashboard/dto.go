package dashboard

type DashboardResponse struct {
	Month                     string  `json:"month"`
	TotalEmployees            int64   `json:"total_employees"`
	OpenSessions              int64   `json:"open_sessions"`
	PendingLeaveRequests      int64   `json:"pending_leave_requests"`
	PendingResignationRequest int64   `json:"pending_resignation_requests"`
	HoursThisMonth            float64 `json:"hours_this_month"`
	WithdrawnThisMonth        int     `json:"withdrawn_this_month"`
}
