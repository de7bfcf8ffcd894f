// Package notification delivers user-visible confirmations for store
// mutations. There is no push channel; events are logged and kept in memory
// for the admin screens to poll.
package notification

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"quicklink/models"
)

// Event is one recorded notice.
type Event struct {
	ID        string    `json:"id"`
	RequestID string    `json:"requestId"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

// Service emits confirmations after request mutations.
type Service interface {
	// NotifyAssignment fires after an employee is put on a request.
	NotifyAssignment(req models.Request)
	// NotifyPaymentClaimed fires after a customer marks a request as paid.
	NotifyPaymentClaimed(req models.Request)
	// Recent returns up to limit of the latest events, newest first.
	Recent(limit int) []Event
}

const maxEvents = 100

// DefaultService is the production implementation.
type DefaultService struct {
	Logger *zap.Logger

	mu     sync.Mutex
	events []Event
}

// NewDefaultService creates a DefaultService logging through the given logger.
func NewDefaultService(logger *zap.Logger) *DefaultService {
	return &DefaultService{Logger: logger}
}

func (s *DefaultService) record(requestID, message string) {
	s.Logger.Info("notification",
		zap.String("requestID", requestID),
		zap.String("message", message),
	)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, Event{
		ID:        uuid.New().String(),
		RequestID: requestID,
		Message:   message,
		CreatedAt: time.Now(),
	})
	if len(s.events) > maxEvents {
		s.events = s.events[len(s.events)-maxEvents:]
	}
}

// NotifyAssignment records the assignment confirmation shown to the admin.
func (s *DefaultService) NotifyAssignment(req models.Request) {
	s.record(req.ID, fmt.Sprintf("Task assigned to %s! They will receive the job details instantly.", req.AssignedEmployee))
}

// NotifyPaymentClaimed records that a customer flagged a request as paid.
func (s *DefaultService) NotifyPaymentClaimed(req models.Request) {
	s.record(req.ID, fmt.Sprintf("Payment submitted for %s. Awaiting verification.", req.ID))
}

// Recent returns up to limit of the latest events, newest first.
func (s *DefaultService) Recent(limit int) []Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	if limit <= 0 || limit > len(s.events) {
		limit = len(s.events)
	}
	out := make([]Event, 0, limit)
	for i := len(s.events) - 1; i >= len(s.events)-limit; i-- {
		out = append(out, s.events[i])
	}
	return out
}

// Noop discards all notices. Used by tests.
type Noop struct{}

func (Noop) NotifyAssignment(models.Request)     {}
func (Noop) NotifyPaymentClaimed(models.Request) {}
func (Noop) Recent(int) []Event                  { return nil }
