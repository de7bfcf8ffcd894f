package store

import (
	"fmt"

	"quicklink/models"
)

// Request ids keep the customer-facing "ER-2025-NNN" numbering.
const requestIDPrefix = "ER-2025"

// AddRequest creates a request from a draft. The store assigns the id, sets
// status pending, defaults the payment status and stamps both timestamps.
// The new request is prepended so the most recent one is always first.
func (s *Store) AddRequest(draft models.RequestDraft) models.Request {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.requestSeq++
	now := s.now()
	req := models.Request{
		ID:              fmt.Sprintf("%s-%03d", requestIDPrefix, s.requestSeq),
		Kind:            draft.Kind,
		Title:           draft.Title,
		Description:     draft.Description,
		Status:          models.RequestStatusPending,
		CustomerName:    draft.CustomerName,
		CustomerPhone:   draft.CustomerPhone,
		CustomerEmail:   draft.CustomerEmail,
		PickupLocation:  draft.PickupLocation,
		DropoffLocation: draft.DropoffLocation,
		DatePreference:  draft.DatePreference,
		TimePreference:  draft.TimePreference,
		Budget:          draft.Budget,
		Notes:           draft.Notes,
		CreatedAt:       now,
		UpdatedAt:       now,
		PaymentStatus:   draft.PaymentStatus,
	}
	if req.PaymentStatus == "" {
		req.PaymentStatus = models.PaymentStatusPending
	}
	s.requests = append([]models.Request{req}, s.requests...)
	return req
}

// Requests returns a snapshot of all requests, newest first.
func (s *Store) Requests() []models.Request {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return snapshot(s.requests)
}

// Request returns the request with the given id.
func (s *Store) Request(id string) (models.Request, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.requests {
		if s.requests[i].ID == id {
			return s.requests[i], true
		}
	}
	return models.Request{}, false
}

// UpdateRequestStatus replaces the status of the matching request and
// refreshes its updatedAt. Unknown ids leave the collection untouched.
// No ordering is enforced between statuses; any status may follow any other.
func (s *Store) UpdateRequestStatus(id string, status models.RequestStatus) (models.Request, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.requests {
		if s.requests[i].ID == id {
			s.requests[i].Status = status
			s.requests[i].UpdatedAt = s.now()
			return s.requests[i], true
		}
	}
	return models.Request{}, false
}

// UpdateRequestPayment replaces the payment status of the matching request
// and refreshes its updatedAt. Unknown ids leave the collection untouched.
func (s *Store) UpdateRequestPayment(id string, status models.PaymentStatus) (models.Request, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.requests {
		if s.requests[i].ID == id {
			s.requests[i].PaymentStatus = status
			s.requests[i].UpdatedAt = s.now()
			return s.requests[i], true
		}
	}
	return models.Request{}, false
}

// AssignEmployee puts the employee's current name on the request, moves the
// request to assigned and refreshes updatedAt. The name is a snapshot taken
// at call time: renaming the employee later does not rewrite past
// assignments. If either id is unknown nothing changes.
func (s *Store) AssignEmployee(requestID, employeeID string) (models.Request, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var name string
	for i := range s.employees {
		if s.employees[i].ID == employeeID {
			name = s.employees[i].Name
			break
		}
	}
	if name == "" {
		return models.Request{}, false
	}
	for i := range s.requests {
		if s.requests[i].ID == requestID {
			s.requests[i].AssignedEmployee = name
			s.requests[i].Status = models.RequestStatusAssigned
			s.requests[i].UpdatedAt = s.now()
			return s.requests[i], true
		}
	}
	return models.Request{}, false
}
