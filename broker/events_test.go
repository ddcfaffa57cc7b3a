package broker

import (
	"testing"

	"github.com/kavia-common/simple-to-do-list-311518-311527/models"
)

func TestEventTypes(t *testing.T) {
	cases := map[EventType]string{
		TaskCreated: "task.created",
		TaskUpdated: "task.updated",
		TaskDeleted: "task.deleted",
	}
	for event, subject := range cases {
		if string(event) != subject {
			t.Errorf("expected subject %s, got %s", subject, event)
		}
	}
}

func TestPublishTaskEvent_NoProducer(t *testing.T) {
	// Without a broker connection eventing is a silent no-op; it must
	// never panic or block the calling operation.
	task := models.Task{ID: 1, Title: "Test Task", Completed: true}
	PublishTaskEvent(TaskCreated, task)
	PublishTaskEvent(TaskDeleted, task)
}
