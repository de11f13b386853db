package job

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
)

const (
	// TaskInquiryConfirmation is the job type name stored in Redis.
	TaskInquiryConfirmation = "email:inquiry_confirmation"
)

// InquiryConfirmationPayload is serialized into the task.
type InquiryConfirmationPayload struct {
	Reference   string `json:"reference"`
	To          string `json:"to"`
	Name        string `json:"name"`
	Destination string `json:"destination,omitempty"`
}

// NewInquiryConfirmationTask builds the task: up to 3 retries on the
// "default" queue, killed after 30 seconds. The reference doubles as the
// task ID so a resubmitted enqueue is rejected by the broker.
func NewInquiryConfirmationTask(p InquiryConfirmationPayload) (*asynq.Task, error) {
	payload, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}

	return asynq.NewTask(
		TaskInquiryConfirmation,
		payload,
		asynq.MaxRetry(3),
		asynq.Queue("default"),
		asynq.Timeout(30*time.Second),
		asynq.TaskID(p.Reference),
	), nil
}
