package models

import "time"

// Request is a customer-submitted service, product or food order tracked
// through its status lifecycle.
type Request struct {
	ID               string        `json:"id"`   // store-generated, "ER-2025-NNN"
	Kind             RequestKind   `json:"type"` // fixed at creation
	Title            string        `json:"title"`
	Description      string        `json:"description"`
	Status           RequestStatus `json:"status"`
	CustomerName     string        `json:"customerName"`
	CustomerPhone    string        `json:"customerPhone"`
	CustomerEmail    string        `json:"customerEmail"`
	PickupLocation   string        `json:"pickupLocation,omitempty"`
	DropoffLocation  string        `json:"dropoffLocation,omitempty"`
	DatePreference   string        `json:"datePreference"` // "YYYY-MM-DD"
	TimePreference   string        `json:"timePreference"` // "HH:MM"
	Budget           *float64      `json:"budget,omitempty"`
	AssignedEmployee string        `json:"assignedEmployee,omitempty"` // name snapshot, not a reference
	CreatedAt        time.Time     `json:"createdAt"`
	UpdatedAt        time.Time     `json:"updatedAt"`
	Notes            string        `json:"notes,omitempty"`
	PaymentStatus    PaymentStatus `json:"paymentStatus"`
}

// RequestDraft carries the caller-supplied fields of a new request. The store
// fills in id, status, timestamps and defaults the payment status.
type RequestDraft struct {
	Kind            RequestKind   `json:"type"`
	Title           string        `json:"title"`
	Description     string        `json:"description"`
	CustomerName    string        `json:"customerName"`
	CustomerPhone   string        `json:"customerPhone"`
	CustomerEmail   string        `json:"customerEmail"`
	PickupLocation  string        `json:"pickupLocation,omitempty"`
	DropoffLocation string        `json:"dropoffLocation,omitempty"`
	DatePreference  string        `json:"datePreference"`
	TimePreference  string        `json:"timePreference"`
	Budget          *float64      `json:"budget,omitempty"`
	Notes           string        `json:"notes,omitempty"`
	PaymentStatus   PaymentStatus `json:"paymentStatus,omitempty"`
}
