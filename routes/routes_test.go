package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"quicklink/handlers"
	"quicklink/models"
	"quicklink/services/employee"
	"quicklink/services/marketplace"
	"quicklink/services/notification"
	"quicklink/services/request"
	"quicklink/store"
)

func newTestRouter() (*gin.Engine, *store.Store) {
	gin.SetMode(gin.TestMode)

	st := store.New(store.DefaultSeed())
	logger := zap.NewNop()
	notifier := notification.NewDefaultService(logger)
	requestService := &request.DefaultService{Store: st, Notifier: notifier}
	marketplaceService := &marketplace.DefaultService{Store: st, Requests: requestService}
	employeeService := &employee.DefaultService{Store: st}

	hb := &handlers.Bundle{
		Requests:    handlers.NewRequestHandler(requestService, logger),
		Marketplace: handlers.NewMarketplaceHandler(marketplaceService, logger),
		Employees:   handlers.NewEmployeeHandler(employeeService, logger),
		Admin:       handlers.NewAdminHandler(requestService, notifier, st),
		Contact:     handlers.NewContactHandler(),
		Health:      handlers.NewHealthHandler(st),
	}

	r := gin.New()
	RegisterRoutes(r, st, hb)
	return r, st
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSubmitAndTrackRequest(t *testing.T) {
	r, _ := newTestRouter()

	w := doJSON(t, r, http.MethodPost, "/api/requests", models.RequestDraft{
		Kind:           models.RequestKindService,
		Title:          "Grocery run",
		Description:    "Weekly shop",
		CustomerName:   "Alice",
		CustomerPhone:  "0799999999",
		CustomerEmail:  "alice@email.com",
		DatePreference: "2025-02-01",
		TimePreference: "10:00",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created models.Request
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, "ER-2025-003", created.ID)

	w = doJSON(t, r, http.MethodGet, "/api/requests?phone=0799999999", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var tracked []models.Request
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &tracked))
	require.Len(t, tracked, 1)
	assert.Equal(t, created.ID, tracked[0].ID)

	w = doJSON(t, r, http.MethodGet, "/api/requests", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code, "tracking needs a phone or email")
}

func TestSubmitRequestRejectsIncompleteCustomer(t *testing.T) {
	r, _ := newTestRouter()

	w := doJSON(t, r, http.MethodPost, "/api/requests", models.RequestDraft{
		Kind:  models.RequestKindService,
		Title: "No customer block",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAdminGate(t *testing.T) {
	r, st := newTestRouter()

	w := doJSON(t, r, http.MethodGet, "/api/admin/requests", nil)
	assert.Equal(t, http.StatusForbidden, w.Code, "admin surface is closed by default")

	w = doJSON(t, r, http.MethodPost, "/api/admin/mode", map[string]bool{"enabled": true})
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, st.AdminMode())

	w = doJSON(t, r, http.MethodGet, "/api/admin/requests", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func enableAdmin(t *testing.T, r *gin.Engine) {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/admin/mode", map[string]bool{"enabled": true})
	require.Equal(t, http.StatusOK, w.Code)
}

func TestAssignOverHTTP(t *testing.T) {
	r, _ := newTestRouter()
	enableAdmin(t, r)

	w := doJSON(t, r, http.MethodPost, "/api/admin/requests/ER-2025-002/assign", map[string]string{"employeeId": "2"})
	require.Equal(t, http.StatusOK, w.Code)

	var req models.Request
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &req))
	assert.Equal(t, models.RequestStatusAssigned, req.Status)
	assert.Equal(t, "Mary Agent", req.AssignedEmployee)

	// The assignment shows up in the notification feed.
	w = doJSON(t, r, http.MethodGet, "/api/admin/notifications", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var events []notification.Event
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &events))
	require.Len(t, events, 1)
	assert.Equal(t, "ER-2025-002", events[0].RequestID)

	w = doJSON(t, r, http.MethodPost, "/api/admin/requests/ER-2025-002/assign", map[string]string{"employeeId": "42"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateStatusUnknownID(t *testing.T) {
	r, _ := newTestRouter()
	enableAdmin(t, r)

	w := doJSON(t, r, http.MethodPut, "/api/admin/requests/ER-2025-999/status", map[string]string{"status": "completed"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, http.MethodPut, "/api/admin/requests/ER-2025-001/status", map[string]string{"status": "done"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCartMergeOverHTTP(t *testing.T) {
	r, _ := newTestRouter()

	w := doJSON(t, r, http.MethodPost, "/api/cart/items", map[string]any{"id": "1", "type": "product", "quantity": 1})
	require.Equal(t, http.StatusOK, w.Code)
	w = doJSON(t, r, http.MethodPost, "/api/cart/items", map[string]any{"id": "1", "type": "product", "quantity": 2})
	require.Equal(t, http.StatusOK, w.Code)

	var cart []models.CartItem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cart))
	require.Len(t, cart, 1)
	assert.Equal(t, 3, cart[0].Quantity)

	w = doJSON(t, r, http.MethodDelete, "/api/cart/items/1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cart))
	assert.Empty(t, cart)
}

func TestCheckoutOverHTTP(t *testing.T) {
	r, _ := newTestRouter()

	w := doJSON(t, r, http.MethodPost, "/api/cart/items", map[string]any{"id": "2", "type": "food", "quantity": 2})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/cart/checkout", marketplace.CheckoutInput{
		CustomerName:    "Alice",
		CustomerPhone:   "0799999999",
		CustomerEmail:   "alice@email.com",
		DropoffLocation: "Kilimani",
		DatePreference:  "2025-02-01",
		TimePreference:  "12:00",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created []models.Request
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.Len(t, created, 1)
	assert.Equal(t, models.RequestKindFood, created[0].Kind)

	w = doJSON(t, r, http.MethodGet, "/api/cart", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())
}

func TestExportDownload(t *testing.T) {
	r, _ := newTestRouter()
	enableAdmin(t, r)

	w := doJSON(t, r, http.MethodPost, "/api/admin/export", map[string][]string{"ids": {"ER-2025-001"}})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "requests_export.csv")
	assert.Contains(t, w.Body.String(), "ER-2025-001,John Doe")
}

func TestCatalogEndpoints(t *testing.T) {
	r, _ := newTestRouter()

	w := doJSON(t, r, http.MethodGet, "/api/services", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var services []models.Service
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &services))
	assert.Len(t, services, 9)

	w = doJSON(t, r, http.MethodGet, "/api/products?featured=true", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var products []models.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &products))
	assert.Len(t, products, 3)

	w = doJSON(t, r, http.MethodGet, "/api/food?available=true", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var food []models.FoodItem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &food))
	assert.Len(t, food, 6)
}

func TestEmployeeEndpoints(t *testing.T) {
	r, _ := newTestRouter()
	enableAdmin(t, r)

	w := doJSON(t, r, http.MethodPost, "/api/admin/employees", models.EmployeeDraft{
		Name:  "New Rider",
		Email: "new@quicklink.com",
		Phone: "0745678901",
		Role:  models.EmployeeRoleRider,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var emp models.Employee
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &emp))
	assert.Equal(t, "5", emp.ID)
	assert.Equal(t, 5.0, emp.Rating)

	w = doJSON(t, r, http.MethodPut, "/api/admin/employees/99", map[string]string{"name": "Ghost"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSelectedRequestState(t *testing.T) {
	r, st := newTestRouter()
	enableAdmin(t, r)

	w := doJSON(t, r, http.MethodPut, "/api/admin/selected-request", map[string]string{"id": "ER-2025-001"})
	require.Equal(t, http.StatusNoContent, w.Code)

	req, ok := st.SelectedRequest()
	require.True(t, ok)
	assert.Equal(t, "ER-2025-001", req.ID)

	w = doJSON(t, r, http.MethodPut, "/api/admin/selected-request", map[string]string{"id": "ER-2025-999"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHealthRoute(t *testing.T) {
	r, _ := newTestRouter()

	w := doJSON(t, r, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
	assert.Contains(t, w.Body.String(), `"requests":2`)
}
