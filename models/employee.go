package models

// Employee is a member of the field/dispatch team jobs get assigned to.
type Employee struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	Email         string         `json:"email"`
	Phone         string         `json:"phone"`
	Role          EmployeeRole   `json:"role"`
	Status        EmployeeStatus `json:"status"`
	CompletedJobs int            `json:"completedJobs"`
	Rating        float64        `json:"rating"`
}

// EmployeeDraft carries the caller-supplied fields of a new employee.
// New employees start with zero completed jobs and a 5.0 rating.
type EmployeeDraft struct {
	Name   string         `json:"name"`
	Email  string         `json:"email"`
	Phone  string         `json:"phone"`
	Role   EmployeeRole   `json:"role"`
	Status EmployeeStatus `json:"status"`
}

// EmployeeUpdate is a partial update; nil fields are left untouched.
type EmployeeUpdate struct {
	Name          *string         `json:"name,omitempty"`
	Email         *string         `json:"email,omitempty"`
	Phone         *string         `json:"phone,omitempty"`
	Role          *EmployeeRole   `json:"role,omitempty"`
	Status        *EmployeeStatus `json:"status,omitempty"`
	CompletedJobs *int            `json:"completedJobs,omitempty"`
	Rating        *float64        `json:"rating,omitempty"`
}
