package scheduler

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

const TaskLeadsRescore = "leads.rescore"

// LeadsRescorePayload identifies the scope of a queued rescore run. An empty
// OwnerID means all leads.
type LeadsRescorePayload struct {
	OwnerID string `json:"ownerId,omitempty"`
}

func NewLeadsRescoreTask(payload LeadsRescorePayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskLeadsRescore, data), nil
}

func ParseLeadsRescorePayload(task *asynq.Task) (LeadsRescorePayload, error) {
	var payload LeadsRescorePayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return LeadsRescorePayload{}, err
	}
	return payload, nil
}
