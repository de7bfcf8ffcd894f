package request

import (
	"errors"

	"quicklink/models"
	"quicklink/services/notification"
	"quicklink/store"
)

var (
	ErrRequestNotFound  = errors.New("request not found")
	ErrEmployeeNotFound = errors.New("employee not found")
)

// Query narrows the request list the way the admin requests screen does.
// Empty or "all" fields match everything.
type Query struct {
	Search  string // matched case-insensitively against id, title and customer name
	Status  string
	Kind    string
	Payment string
}

// DashboardStats is the payload behind the admin dashboard cards.
type DashboardStats struct {
	TotalRequests   int              `json:"totalRequests"`
	Pending         int              `json:"pending"`
	InProgress      int              `json:"inProgress"`
	Completed       int              `json:"completed"`
	Cancelled       int              `json:"cancelled"`
	ActiveEmployees int              `json:"activeEmployees"`
	ProductsInStock int              `json:"productsInStock"`
	RecentRequests  []models.Request `json:"recentRequests"`
}

// Service covers the request lifecycle: submission, tracking, status and
// payment changes, assignment, filtering, export and the dashboard rollup.
type Service interface {
	Submit(draft models.RequestDraft) (models.Request, error)
	Track(phone, email string) []models.Request
	Get(id string) (models.Request, error)
	UpdateStatus(id string, status models.RequestStatus) (models.Request, error)
	Assign(requestID, employeeID string) (models.Request, error)
	ClaimPayment(id string) (models.Request, error)
	ReviewPayment(id string, status models.PaymentStatus) (models.Request, error)
	Filter(q Query) []models.Request
	ExportCSV(ids []string) ([]byte, error)
	DashboardStats() DashboardStats
}

// DefaultService is the production implementation.
type DefaultService struct {
	Store    *store.Store
	Notifier notification.Service
}
