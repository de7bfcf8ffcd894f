package request

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quicklink/models"
	"quicklink/services/notification"
	"quicklink/store"
)

// recordingNotifier captures notices for assertions.
type recordingNotifier struct {
	assignments []models.Request
	payments    []models.Request
}

func (n *recordingNotifier) NotifyAssignment(req models.Request)     { n.assignments = append(n.assignments, req) }
func (n *recordingNotifier) NotifyPaymentClaimed(req models.Request) { n.payments = append(n.payments, req) }
func (n *recordingNotifier) Recent(int) []notification.Event         { return nil }

func newTestService() (*DefaultService, *recordingNotifier) {
	notifier := &recordingNotifier{}
	return &DefaultService{
		Store:    store.New(store.DefaultSeed()),
		Notifier: notifier,
	}, notifier
}

func validDraft() models.RequestDraft {
	return models.RequestDraft{
		Kind:           models.RequestKindService,
		Title:          "Laundry pickup",
		Description:    "Two bags, same-day",
		CustomerName:   "Alice",
		CustomerPhone:  "0799999999",
		CustomerEmail:  "alice@email.com",
		DatePreference: "2025-02-01",
		TimePreference: "10:00",
	}
}

func TestSubmitValidation(t *testing.T) {
	svc, _ := newTestService()

	tests := []struct {
		name    string
		mutate  func(*models.RequestDraft)
		wantErr string
	}{
		{"valid", func(d *models.RequestDraft) {}, ""},
		{"missing kind", func(d *models.RequestDraft) { d.Kind = "" }, "invalid request type"},
		{"unknown kind", func(d *models.RequestDraft) { d.Kind = "errand" }, "invalid request type"},
		{"blank title", func(d *models.RequestDraft) { d.Title = "  " }, "title is required"},
		{"blank name", func(d *models.RequestDraft) { d.CustomerName = "" }, "customer name is required"},
		{"blank phone", func(d *models.RequestDraft) { d.CustomerPhone = " " }, "customer phone is required"},
		{"blank email", func(d *models.RequestDraft) { d.CustomerEmail = "" }, "customer email is required"},
		{"negative budget", func(d *models.RequestDraft) { b := -1.0; d.Budget = &b }, "budget must be non-negative"},
		{"bad payment status", func(d *models.RequestDraft) { d.PaymentStatus = "settled" }, "invalid payment status"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft := validDraft()
			tt.mutate(&draft)

			req, err := svc.Submit(draft)
			if tt.wantErr == "" {
				require.NoError(t, err)
				assert.NotEmpty(t, req.ID)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestTrackMatchesPhoneOrEmail(t *testing.T) {
	svc, _ := newTestService()

	byPhone := svc.Track("0712345678", "")
	require.Len(t, byPhone, 1)
	assert.Equal(t, "ER-2025-001", byPhone[0].ID)

	byEmail := svc.Track("", "JANE@email.com")
	require.Len(t, byEmail, 1)
	assert.Equal(t, "ER-2025-002", byEmail[0].ID)

	assert.Empty(t, svc.Track("", ""))
	assert.Empty(t, svc.Track("0700000000", "nobody@email.com"))
}

func TestAssignNotifies(t *testing.T) {
	svc, notifier := newTestService()

	req, err := svc.Assign("ER-2025-002", "2")
	require.NoError(t, err)
	assert.Equal(t, "Mary Agent", req.AssignedEmployee)
	require.Len(t, notifier.assignments, 1)
	assert.Equal(t, "ER-2025-002", notifier.assignments[0].ID)
}

func TestAssignUnknownIDs(t *testing.T) {
	svc, notifier := newTestService()

	_, err := svc.Assign("ER-2025-002", "42")
	assert.ErrorIs(t, err, ErrEmployeeNotFound)

	_, err = svc.Assign("ER-2025-999", "2")
	assert.ErrorIs(t, err, ErrRequestNotFound)

	assert.Empty(t, notifier.assignments, "failed assignments must not notify")
}

func TestClaimPayment(t *testing.T) {
	svc, notifier := newTestService()

	req, err := svc.ClaimPayment("ER-2025-002")
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusPaid, req.PaymentStatus)
	require.Len(t, notifier.payments, 1)

	// Second claim is rejected: the payment is no longer pending.
	_, err = svc.ClaimPayment("ER-2025-002")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already paid")

	_, err = svc.ClaimPayment("ER-2025-999")
	assert.ErrorIs(t, err, ErrRequestNotFound)
}

func TestReviewPayment(t *testing.T) {
	svc, _ := newTestService()

	req, err := svc.ReviewPayment("ER-2025-001", models.PaymentStatusVerified)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusVerified, req.PaymentStatus)

	_, err = svc.ReviewPayment("ER-2025-001", models.PaymentStatusPending)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "verified or rejected")
}

func TestFilter(t *testing.T) {
	svc, _ := newTestService()

	tests := []struct {
		name    string
		query   Query
		wantIDs []string
	}{
		{"no filters", Query{}, []string{"ER-2025-001", "ER-2025-002"}},
		{"all keywords", Query{Status: "all", Kind: "all", Payment: "all"}, []string{"ER-2025-001", "ER-2025-002"}},
		{"search by title", Query{Search: "taxi"}, []string{"ER-2025-001"}},
		{"search by id", Query{Search: "er-2025-002"}, []string{"ER-2025-002"}},
		{"search by customer", Query{Search: "jane"}, []string{"ER-2025-002"}},
		{"status filter", Query{Status: "in-progress"}, []string{"ER-2025-001"}},
		{"kind filter", Query{Kind: "product"}, []string{"ER-2025-002"}},
		{"payment filter", Query{Payment: "paid"}, []string{"ER-2025-001"}},
		{"combined, no match", Query{Search: "taxi", Kind: "product"}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ids []string
			for _, req := range svc.Filter(tt.query) {
				ids = append(ids, req.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestExportCSV(t *testing.T) {
	svc, _ := newTestService()

	data, err := svc.ExportCSV([]string{"ER-2025-001", "ER-2025-999"})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2, "header plus one matched row")
	assert.Equal(t, "Request ID,Customer Name,Service,Status,Date,Phone,Email", lines[0])
	assert.Equal(t, "ER-2025-001,John Doe,Taxi Ride to Airport,in-progress,2025-01-20,0712345678,john@email.com", lines[1])
}

func TestDashboardStats(t *testing.T) {
	svc, _ := newTestService()

	stats := svc.DashboardStats()
	assert.Equal(t, 2, stats.TotalRequests)
	assert.Equal(t, 1, stats.Pending)
	assert.Equal(t, 1, stats.InProgress)
	assert.Equal(t, 0, stats.Completed)
	assert.Equal(t, 0, stats.Cancelled)
	assert.Equal(t, 4, stats.ActiveEmployees)
	assert.Equal(t, 8, stats.ProductsInStock)
	require.Len(t, stats.RecentRequests, 2)

	// Recent is capped at five, newest first.
	for i := 0; i < 6; i++ {
		_, err := svc.Submit(validDraft())
		require.NoError(t, err)
	}
	stats = svc.DashboardStats()
	assert.Equal(t, 8, stats.TotalRequests)
	require.Len(t, stats.RecentRequests, 5)
	assert.Equal(t, "ER-2025-008", stats.RecentRequests[0].ID)
}
