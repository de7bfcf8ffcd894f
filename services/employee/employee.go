// Package employee manages the staff roster behind the admin employee screen.
package employee

import (
	"errors"
	"fmt"
	"strings"

	"quicklink/models"
	"quicklink/store"
)

var ErrEmployeeNotFound = errors.New("employee not found")

// Service covers roster reads, onboarding and partial updates.
type Service interface {
	List() []models.Employee
	Get(id string) (models.Employee, error)
	Add(draft models.EmployeeDraft) (models.Employee, error)
	Update(id string, update models.EmployeeUpdate) (models.Employee, error)
}

// DefaultService is the production implementation.
type DefaultService struct {
	Store *store.Store
}

// List returns all employees in insertion order.
func (s *DefaultService) List() []models.Employee {
	return s.Store.Employees()
}

// Get returns a single employee by id.
func (s *DefaultService) Get(id string) (models.Employee, error) {
	emp, ok := s.Store.Employee(id)
	if !ok {
		return models.Employee{}, ErrEmployeeNotFound
	}
	return emp, nil
}

// Add validates and onboards a new employee.
func (s *DefaultService) Add(draft models.EmployeeDraft) (models.Employee, error) {
	if strings.TrimSpace(draft.Name) == "" {
		return models.Employee{}, fmt.Errorf("name is required")
	}
	if !draft.Role.Valid() {
		return models.Employee{}, fmt.Errorf("invalid role %q", draft.Role)
	}
	if draft.Status == "" {
		draft.Status = models.EmployeeStatusActive
	}
	if !draft.Status.Valid() {
		return models.Employee{}, fmt.Errorf("invalid status %q", draft.Status)
	}
	return s.Store.AddEmployee(draft), nil
}

// Update applies a partial update to an employee. Assignments made before a
// rename keep the old name; they carry a snapshot, not a reference.
func (s *DefaultService) Update(id string, update models.EmployeeUpdate) (models.Employee, error) {
	if update.Role != nil && !update.Role.Valid() {
		return models.Employee{}, fmt.Errorf("invalid role %q", *update.Role)
	}
	if update.Status != nil && !update.Status.Valid() {
		return models.Employee{}, fmt.Errorf("invalid status %q", *update.Status)
	}
	emp, ok := s.Store.UpdateEmployee(id, update)
	if !ok {
		return models.Employee{}, ErrEmployeeNotFound
	}
	return emp, nil
}
