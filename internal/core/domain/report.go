package domain

import "time"

// DailyReport is a dated record of site activity tied to a project (a DPR).
type DailyReport struct {
	ID              int64     `json:"id" bson:"_id"`
	ProjectID       int64     `json:"project_id" bson:"project_id"`
	UserID          int64     `json:"user_id" bson:"user_id"`
	Date            time.Time `json:"date" bson:"date"`
	WorkDescription string    `json:"work_description" bson:"work_description"`
	Weather         string    `json:"weather,omitempty" bson:"weather,omitempty"`
	WorkerCount     int       `json:"worker_count" bson:"worker_count"`
	Challenges      string    `json:"challenges,omitempty" bson:"challenges,omitempty"`
	MaterialsUsed   string    `json:"materials_used,omitempty" bson:"materials_used,omitempty"`
	EquipmentUsed   string    `json:"equipment_used,omitempty" bson:"equipment_used,omitempty"`
	SafetyIncidents string    `json:"safety_incidents,omitempty" bson:"safety_incidents,omitempty"`
	NextDayPlan     string    `json:"next_day_plan,omitempty" bson:"next_day_plan,omitempty"`
	CreatedAt       time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt       time.Time `json:"updated_at" bson:"updated_at"`
}
