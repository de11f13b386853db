package job

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sentMail struct {
	to, name, destination, reference string
}

type fakeMailer struct {
	sent []sentMail
	err  error
}

func (f *fakeMailer) SendInquiryConfirmation(to, name, destination, reference string) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, sentMail{to, name, destination, reference})
	return nil
}

func newTestJobService(mailer Mailer) *JobService {
	logger := zerolog.Nop()
	return &JobService{mailer: mailer, logger: &logger}
}

func TestNewInquiryConfirmationTask(t *testing.T) {
	task, err := NewInquiryConfirmationTask(InquiryConfirmationPayload{
		Reference: "ref-1",
		To:        "ana@example.com",
		Name:      "Ana",
	})
	require.NoError(t, err)

	assert.Equal(t, TaskInquiryConfirmation, task.Type())

	var decoded InquiryConfirmationPayload
	require.NoError(t, json.Unmarshal(task.Payload(), &decoded))
	assert.Equal(t, "ana@example.com", decoded.To)
	assert.Empty(t, decoded.Destination)
}

func TestHandleInquiryConfirmationTask_SendsMail(t *testing.T) {
	mailer := &fakeMailer{}
	j := newTestJobService(mailer)

	task, err := NewInquiryConfirmationTask(InquiryConfirmationPayload{
		Reference:   "ref-1",
		To:          "ana@example.com",
		Name:        "Ana",
		Destination: "Lisbon",
	})
	require.NoError(t, err)

	require.NoError(t, j.Handler().ProcessTask(context.Background(), task))
	require.Len(t, mailer.sent, 1)
	assert.Equal(t, sentMail{"ana@example.com", "Ana", "Lisbon", "ref-1"}, mailer.sent[0])
}

func TestHandleInquiryConfirmationTask_MailerErrorIsRetried(t *testing.T) {
	j := newTestJobService(&fakeMailer{err: errors.New("resend down")})

	task, err := NewInquiryConfirmationTask(InquiryConfirmationPayload{Reference: "ref-1", To: "ana@example.com"})
	require.NoError(t, err)

	err = j.handleInquiryConfirmationTask(context.Background(), task)
	require.Error(t, err)
	assert.False(t, errors.Is(err, asynq.SkipRetry))
}

func TestHandleInquiryConfirmationTask_BadPayloadSkipsRetry(t *testing.T) {
	j := newTestJobService(&fakeMailer{})

	err := j.handleInquiryConfirmationTask(context.Background(), asynq.NewTask(TaskInquiryConfirmation, []byte("{")))
	require.Error(t, err)
	assert.True(t, errors.Is(err, asynq.SkipRetry))
}
