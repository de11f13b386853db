package job

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
)

// handleInquiryConfirmationTask sends the confirmation e-mail. Returning an
// error makes Asynq mark the task failed and schedule a retry; malformed
// payloads are skipped since retrying can't fix them.
func (j *JobService) handleInquiryConfirmationTask(ctx context.Context, t *asynq.Task) error {
	var p InquiryConfirmationPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return fmt.Errorf("failed to unmarshal inquiry confirmation payload: %v: %w", err, asynq.SkipRetry)
	}

	logger := j.logger.With().
		Str("type", TaskInquiryConfirmation).
		Str("reference", p.Reference).
		Logger()

	logger.Info().Msg("processing inquiry confirmation task")

	if err := j.mailer.SendInquiryConfirmation(p.To, p.Name, p.Destination, p.Reference); err != nil {
		logger.Error().Err(err).Msg("failed to send inquiry confirmation")
		return err
	}

	logger.Info().Msg("sent inquiry confirmation")
	return nil
}
