package broker

import (
	"encoding/json"
	"log"

	"github.com/kavia-common/simple-to-do-list-311518-311527/models"
)

type EventType string

// Standardized event types in format: <resource>.<action>. Event types
// double as NATS subjects.
const (
	TaskCreated EventType = "task.created"
	TaskUpdated EventType = "task.updated"
	TaskDeleted EventType = "task.deleted"
)

// PublishTaskEvent emits a task lifecycle event after a successful mutation.
// Eventing is best effort and never fails the operation that triggered it.
func PublishTaskEvent(event EventType, task models.Task) {
	payload, err := json.Marshal(map[string]interface{}{
		"event":      string(event),
		"task_id":    task.ID,
		"completed":  task.Completed,
		"updated_at": task.UpdatedAt,
	})
	if err != nil {
		log.Printf("Failed to encode %s event: %v", event, err)
		return
	}

	PublishMessage(string(event), payload)
}
