package request

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"quicklink/models"
	"quicklink/utils"
)

// Submit validates a draft and hands it to the store. The customer block is
// required here because the submitting forms are the only other guard.
func (s *DefaultService) Submit(draft models.RequestDraft) (models.Request, error) {
	if !draft.Kind.Valid() {
		return models.Request{}, fmt.Errorf("invalid request type %q", draft.Kind)
	}
	if strings.TrimSpace(draft.Title) == "" {
		return models.Request{}, fmt.Errorf("title is required")
	}
	if strings.TrimSpace(draft.CustomerName) == "" {
		return models.Request{}, fmt.Errorf("customer name is required")
	}
	if strings.TrimSpace(draft.CustomerPhone) == "" {
		return models.Request{}, fmt.Errorf("customer phone is required")
	}
	if strings.TrimSpace(draft.CustomerEmail) == "" {
		return models.Request{}, fmt.Errorf("customer email is required")
	}
	if draft.Budget != nil && *draft.Budget < 0 {
		return models.Request{}, fmt.Errorf("budget must be non-negative")
	}
	if draft.PaymentStatus != "" && !draft.PaymentStatus.Valid() {
		return models.Request{}, fmt.Errorf("invalid payment status %q", draft.PaymentStatus)
	}

	req := s.Store.AddRequest(draft)
	utils.GetLogger().Info("request submitted",
		zap.String("requestID", req.ID),
		zap.String("type", string(req.Kind)),
	)
	return req, nil
}

// Track returns the requests matching the customer's phone or email, newest
// first. Both parameters are optional; a blank query matches nothing.
func (s *DefaultService) Track(phone, email string) []models.Request {
	phone = strings.TrimSpace(phone)
	email = strings.TrimSpace(strings.ToLower(email))
	if phone == "" && email == "" {
		return nil
	}

	var out []models.Request
	for _, req := range s.Store.Requests() {
		if phone != "" && req.CustomerPhone == phone {
			out = append(out, req)
			continue
		}
		if email != "" && strings.ToLower(req.CustomerEmail) == email {
			out = append(out, req)
		}
	}
	return out
}

// Get returns a single request by id.
func (s *DefaultService) Get(id string) (models.Request, error) {
	req, ok := s.Store.Request(id)
	if !ok {
		return models.Request{}, ErrRequestNotFound
	}
	return req, nil
}

// UpdateStatus moves a request to the given status. Any status may follow
// any other; only unknown values are rejected.
func (s *DefaultService) UpdateStatus(id string, status models.RequestStatus) (models.Request, error) {
	if !status.Valid() {
		return models.Request{}, fmt.Errorf("invalid status %q", status)
	}
	req, ok := s.Store.UpdateRequestStatus(id, status)
	if !ok {
		return models.Request{}, ErrRequestNotFound
	}
	return req, nil
}

// Assign puts an employee on a request and emits the confirmation notice.
func (s *DefaultService) Assign(requestID, employeeID string) (models.Request, error) {
	if _, ok := s.Store.Employee(employeeID); !ok {
		return models.Request{}, ErrEmployeeNotFound
	}
	req, ok := s.Store.AssignEmployee(requestID, employeeID)
	if !ok {
		return models.Request{}, ErrRequestNotFound
	}
	s.Notifier.NotifyAssignment(req)
	return req, nil
}

// ClaimPayment is the customer's "Mark as Paid" action. It only applies to
// requests still awaiting payment; verification stays with the admin.
func (s *DefaultService) ClaimPayment(id string) (models.Request, error) {
	req, err := s.Get(id)
	if err != nil {
		return models.Request{}, err
	}
	if req.PaymentStatus != models.PaymentStatusPending {
		return models.Request{}, fmt.Errorf("payment already %s", req.PaymentStatus)
	}
	req, ok := s.Store.UpdateRequestPayment(id, models.PaymentStatusPaid)
	if !ok {
		return models.Request{}, ErrRequestNotFound
	}
	s.Notifier.NotifyPaymentClaimed(req)
	return req, nil
}

// ReviewPayment is the admin's verdict on a claimed payment.
func (s *DefaultService) ReviewPayment(id string, status models.PaymentStatus) (models.Request, error) {
	if status != models.PaymentStatusVerified && status != models.PaymentStatusRejected {
		return models.Request{}, fmt.Errorf("review status must be verified or rejected, got %q", status)
	}
	req, ok := s.Store.UpdateRequestPayment(id, status)
	if !ok {
		return models.Request{}, ErrRequestNotFound
	}
	return req, nil
}
