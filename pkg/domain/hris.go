package domain

import "time"

// Employee is the serialized view of a hired person sent to an HRIS.
type Employee struct {
	ID           string    `json:"id"           validate:"required"`
	FirstName    string    `json:"firstName"    validate:"required"`
	LastName     string    `json:"lastName"     validate:"required"`
	Email        string    `json:"email"        validate:"required,email"`
	JobTitle     string    `json:"jobTitle"`
	DepartmentID string    `json:"departmentId"`
	ManagerID    string    `json:"managerId"`
	Location     string    `json:"location"`
	StartDate    time.Time `json:"startDate"`
	Status       string    `json:"status"`
}

// Department is the serialized view of an organizational unit.
type Department struct {
	ID        string `json:"id"        validate:"required"`
	Name      string `json:"name"      validate:"required"`
	ParentID  string `json:"parentId"`
	ManagerID string `json:"managerId"`
}
