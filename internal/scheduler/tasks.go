// Package scheduler moves notification delivery onto asynq so SMTP failures
// are retried off the request path.
package scheduler

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

const TaskNotificationDeliver = "notification.deliver"

type NotificationDeliverPayload struct {
	OutboxID string `json:"outboxId"`
}

func NewNotificationDeliverTask(payload NotificationDeliverPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskNotificationDeliver, data), nil
}

func ParseNotificationDeliverPayload(task *asynq.Task) (NotificationDeliverPayload, error) {
	var payload NotificationDeliverPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return NotificationDeliverPayload{}, err
	}
	return payload, nil
}
