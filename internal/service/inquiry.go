package service

import (
	"context"

	"github.com/deppfellow/vamoose/internal/errs"
	"github.com/deppfellow/vamoose/internal/lib/job"
	"github.com/deppfellow/vamoose/internal/model"
	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"
)

// Enqueuer is the part of *asynq.Client the inquiry flow needs.
type Enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// InquiryService accepts contact requests and hands the confirmation
// e-mail to the job queue.
type InquiryService struct {
	queue Enqueuer
	newID func() string
}

// NewInquiryService constructs an InquiryService enqueueing into queue.
func NewInquiryService(queue Enqueuer) *InquiryService {
	return &InquiryService{
		queue: queue,
		newID: uuid.NewString,
	}
}

// Submit enqueues a confirmation for req and returns its reference.
//
// A broker failure surfaces as 503 so clients retry; the cause is logged
// on the request logger carried by ctx.
func (s *InquiryService) Submit(ctx context.Context, req *model.InquiryRequest) (*model.InquiryReceipt, error) {
	logger := zerolog.Ctx(ctx)
	reference := s.newID()

	task, err := job.NewInquiryConfirmationTask(job.InquiryConfirmationPayload{
		Reference:   reference,
		To:          req.Email,
		Name:        req.Name,
		Destination: req.Destination,
	})
	if err != nil {
		return nil, err
	}

	info, err := s.queue.EnqueueContext(ctx, task)
	if err != nil {
		logger.Error().
			Err(err).
			Str("reference", reference).
			Msg("failed to enqueue inquiry confirmation")
		return nil, errs.NewServiceUnavailableError("Inquiries are temporarily unavailable")
	}

	logger.Info().
		Str("reference", reference).
		Str("task_id", info.ID).
		Str("queue", info.Queue).
		Msg("inquiry accepted")

	return &model.InquiryReceipt{
		ID:     reference,
		Status: model.InquiryStatusQueued,
	}, nil
}
