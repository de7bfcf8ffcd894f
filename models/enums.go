package models

// RequestKind enum
type RequestKind string

const (
	RequestKindService RequestKind = "service"
	RequestKindProduct RequestKind = "product"
	RequestKindFood    RequestKind = "food"
)

func (k RequestKind) Valid() bool {
	switch k {
	case RequestKindService, RequestKindProduct, RequestKindFood:
		return true
	}
	return false
}

// RequestStatus enum
type RequestStatus string

const (
	RequestStatusPending    RequestStatus = "pending"
	RequestStatusAssigned   RequestStatus = "assigned"
	RequestStatusInProgress RequestStatus = "in-progress"
	RequestStatusCompleted  RequestStatus = "completed"
	RequestStatusCancelled  RequestStatus = "cancelled"
)

func (s RequestStatus) Valid() bool {
	switch s {
	case RequestStatusPending, RequestStatusAssigned, RequestStatusInProgress,
		RequestStatusCompleted, RequestStatusCancelled:
		return true
	}
	return false
}

// PaymentStatus enum
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusVerified PaymentStatus = "verified"
	PaymentStatusRejected PaymentStatus = "rejected"
)

func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusPaid, PaymentStatusVerified, PaymentStatusRejected:
		return true
	}
	return false
}

// EmployeeRole enum
type EmployeeRole string

const (
	EmployeeRoleAdmin           EmployeeRole = "admin"
	EmployeeRoleDispatcher      EmployeeRole = "dispatcher"
	EmployeeRoleRider           EmployeeRole = "rider"
	EmployeeRoleDriver          EmployeeRole = "driver"
	EmployeeRoleServiceProvider EmployeeRole = "service-provider"
)

func (r EmployeeRole) Valid() bool {
	switch r {
	case EmployeeRoleAdmin, EmployeeRoleDispatcher, EmployeeRoleRider,
		EmployeeRoleDriver, EmployeeRoleServiceProvider:
		return true
	}
	return false
}

// EmployeeStatus enum
type EmployeeStatus string

const (
	EmployeeStatusActive   EmployeeStatus = "active"
	EmployeeStatusInactive EmployeeStatus = "inactive"
)

func (s EmployeeStatus) Valid() bool {
	return s == EmployeeStatusActive || s == EmployeeStatusInactive
}

// CartKind enum — what collection a cart line was taken from.
type CartKind string

const (
	CartKindProduct CartKind = "product"
	CartKindFood    CartKind = "food"
)

func (k CartKind) Valid() bool {
	return k == CartKindProduct || k == CartKindFood
}
