package domain

import "time"

// ProjectStatus represents the lifecycle state of a construction project.
type ProjectStatus string

const (
	StatusPlanned   ProjectStatus = "PLANNED"
	StatusActive    ProjectStatus = "ACTIVE"
	StatusCompleted ProjectStatus = "COMPLETED"
	StatusOnHold    ProjectStatus = "ON_HOLD"
	StatusCancelled ProjectStatus = "CANCELLED"
)

// Valid reports whether s is one of the known project statuses.
func (s ProjectStatus) Valid() bool {
	switch s {
	case StatusPlanned, StatusActive, StatusCompleted, StatusOnHold, StatusCancelled:
		return true
	}
	return false
}

// Project is a construction project that daily reports are filed against.
// ReportCount and LastReportAt are activity rollups maintained asynchronously
// when reports are created.
type Project struct {
	ID           int64         `json:"id" bson:"_id"`
	Name         string        `json:"name" bson:"name"`
	Description  string        `json:"description,omitempty" bson:"description,omitempty"`
	StartDate    time.Time     `json:"start_date" bson:"start_date"`
	EndDate      *time.Time    `json:"end_date,omitempty" bson:"end_date,omitempty"`
	Budget       float64       `json:"budget,omitempty" bson:"budget,omitempty"`
	Location     string        `json:"location,omitempty" bson:"location,omitempty"`
	Status       ProjectStatus `json:"status" bson:"status"`
	CreatedByID  int64         `json:"created_by_id" bson:"created_by_id"`
	ReportCount  int64         `json:"report_count" bson:"report_count"`
	LastReportAt *time.Time    `json:"last_report_at,omitempty" bson:"last_report_at,omitempty"`
	CreatedAt    time.Time     `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at" bson:"updated_at"`
}
