package request

import "quicklink/models"

const recentRequestCount = 5

// DashboardStats computes the admin dashboard rollup from current state.
func (s *DefaultService) DashboardStats() DashboardStats {
	requests := s.Store.Requests()

	stats := DashboardStats{TotalRequests: len(requests)}
	for _, req := range requests {
		switch req.Status {
		case models.RequestStatusPending:
			stats.Pending++
		case models.RequestStatusInProgress:
			stats.InProgress++
		case models.RequestStatusCompleted:
			stats.Completed++
		case models.RequestStatusCancelled:
			stats.Cancelled++
		}
	}
	for _, emp := range s.Store.Employees() {
		if emp.Status == models.EmployeeStatusActive {
			stats.ActiveEmployees++
		}
	}
	for _, p := range s.Store.Products() {
		if p.Stock > 0 {
			stats.ProductsInStock++
		}
	}

	recent := requests
	if len(recent) > recentRequestCount {
		recent = recent[:recentRequestCount]
	}
	stats.RecentRequests = recent
	return stats
}
