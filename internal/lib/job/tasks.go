package job

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
)

// Task type names stored in Redis; the mux routes on them.
const (
	TaskStorageDelete = "storage:delete"
	TaskRecordChanged = "email:record_changed"
)

// StorageDeletePayload lists public URLs of files to remove.
type StorageDeletePayload struct {
	URLs []string `json:"urls"`
}

// RecordChangedPayload is one admin notification.
type RecordChangedPayload struct {
	To         []string  `json:"to"`
	Entity     string    `json:"entity"`
	Action     string    `json:"action"`
	RecordID   int64     `json:"record_id"`
	RecordName string    `json:"record_name"`
	OccurredAt time.Time `json:"occurred_at"`
}

// NewStorageDeleteTask builds a cleanup task. Object stores are flaky
// enough that it gets more retries than an email.
func NewStorageDeleteTask(urls []string) (*asynq.Task, error) {
	payload, err := json.Marshal(StorageDeletePayload{URLs: urls})
	if err != nil {
		return nil, err
	}

	return asynq.NewTask(
		TaskStorageDelete,
		payload,
		asynq.MaxRetry(10),
		asynq.Queue(QueueLow),
		asynq.Timeout(time.Minute),
	), nil
}

// NewRecordChangedTask builds a notification task.
func NewRecordChangedTask(p RecordChangedPayload) (*asynq.Task, error) {
	payload, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}

	return asynq.NewTask(
		TaskRecordChanged,
		payload,
		asynq.MaxRetry(3),
		asynq.Queue(QueueDefault),
		asynq.Timeout(30*time.Second),
	), nil
}
