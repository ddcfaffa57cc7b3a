package models

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestUTCNow(t *testing.T) {
	now := UTCNow()

	assert.True(t, strings.HasSuffix(now, "+00:00"))

	parsed, err := time.Parse(TimeLayout, now)
	assert.NoError(t, err)
	assert.Zero(t, parsed.Nanosecond(), "timestamps carry second precision only")
}

func TestTaskJSON_NullDescription(t *testing.T) {
	task := Task{
		ID:        1,
		Title:     "Buy milk",
		CreatedAt: "2024-01-15T10:30:00+00:00",
		UpdatedAt: "2024-01-15T10:30:00+00:00",
	}

	data, err := json.Marshal(task)
	assert.NoError(t, err)
	assert.Contains(t, string(data), `"description":null`)

	empty := ""
	task.Description = &empty
	data, err = json.Marshal(task)
	assert.NoError(t, err)
	assert.Contains(t, string(data), `"description":""`)
}
