package store

import (
	"strconv"

	"quicklink/models"
)

// AddEmployee creates an employee from a draft. New employees start with
// zero completed jobs and a 5.0 rating.
func (s *Store) AddEmployee(draft models.EmployeeDraft) models.Employee {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.employeeSeq++
	emp := models.Employee{
		ID:            strconv.Itoa(s.employeeSeq),
		Name:          draft.Name,
		Email:         draft.Email,
		Phone:         draft.Phone,
		Role:          draft.Role,
		Status:        draft.Status,
		CompletedJobs: 0,
		Rating:        5.0,
	}
	s.employees = append(s.employees, emp)
	return emp
}

// Employees returns a snapshot of all employees in insertion order.
func (s *Store) Employees() []models.Employee {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return snapshot(s.employees)
}

// Employee returns the employee with the given id.
func (s *Store) Employee(id string) (models.Employee, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.employees {
		if s.employees[i].ID == id {
			return s.employees[i], true
		}
	}
	return models.Employee{}, false
}

// UpdateEmployee merges the non-nil fields of the update into the matching
// employee. Unknown ids leave the collection untouched.
func (s *Store) UpdateEmployee(id string, update models.EmployeeUpdate) (models.Employee, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.employees {
		if s.employees[i].ID != id {
			continue
		}
		emp := &s.employees[i]
		if update.Name != nil {
			emp.Name = *update.Name
		}
		if update.Email != nil {
			emp.Email = *update.Email
		}
		if update.Phone != nil {
			emp.Phone = *update.Phone
		}
		if update.Role != nil {
			emp.Role = *update.Role
		}
		if update.Status != nil {
			emp.Status = *update.Status
		}
		if update.CompletedJobs != nil {
			emp.CompletedJobs = *update.CompletedJobs
		}
		if update.Rating != nil {
			emp.Rating = *update.Rating
		}
		return *emp, true
	}
	return models.Employee{}, false
}
