package models

import "time"

// TimeLayout is the storage and wire format for task timestamps: UTC at
// second precision with an explicit +00:00 offset. Timestamps are stored as
// text in exactly this form so responses round-trip byte for byte.
const TimeLayout = "2006-01-02T15:04:05+00:00"

// UTCNow returns the current UTC time truncated to whole seconds.
func UTCNow() string {
	return time.Now().UTC().Truncate(time.Second).Format(TimeLayout)
}

type Task struct {
	ID          uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Title       string  `gorm:"not null" json:"title"`
	Description *string `json:"description"`
	Completed   bool    `gorm:"not null;default:false" json:"completed"`
	CreatedAt   string  `gorm:"not null" json:"created_at"`
	UpdatedAt   string  `gorm:"not null" json:"updated_at"`
}

// TaskCreate is the request body for creating a task. Description is a
// pointer because an absent description is distinct from an empty one.
type TaskCreate struct {
	Title       string  `json:"title" binding:"required,max=200"`
	Description *string `json:"description" binding:"omitempty,max=2000"`
	Completed   bool    `json:"completed"`
}

// TaskReplace is the request body for fully replacing a task. Completed is a
// pointer so a missing field fails binding rather than defaulting to false.
type TaskReplace struct {
	Title       string  `json:"title" binding:"required,max=200"`
	Description *string `json:"description" binding:"omitempty,max=2000"`
	Completed   *bool   `json:"completed" binding:"required"`
}

// TaskCompletion is the request body for the completion endpoint.
type TaskCompletion struct {
	Completed *bool `json:"completed" binding:"required"`
}

type TaskListResponse struct {
	Tasks []Task `json:"tasks"`
}

// TaskCompletionResponse wraps the updated task under a named key. The
// completion endpoint returns this wrapper while replace returns the task
// bare; the asymmetry is part of the wire contract and must not be unified.
type TaskCompletionResponse struct {
	Task Task `json:"task"`
}
