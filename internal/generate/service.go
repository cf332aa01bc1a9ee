// Package generate implements the exam-question generation pipeline:
// submission, reference resolution, prompt building, the completion call,
// normalization, and review of the resulting question sets.
package generate

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/examgenius/exam-platform/internal/curriculum"
)

// RequestStore persists generation request records.
type RequestStore interface {
	CreateRequest(ctx context.Context, req Request) error
	GetRequest(ctx context.Context, id string) (Request, error)
	UpdateProgress(ctx context.Context, id, status string, progressPct int) error
	MarkFailed(ctx context.Context, id, errMsg string) error
	// MarkComplete writes status, progress 100 and the set id in one
	// statement so a poller never sees complete without a set id.
	MarkComplete(ctx context.Context, id, setID string) error
}

// SetStore persists question sets.
type SetStore interface {
	CreateSet(ctx context.Context, set QuestionSet) error
	GetSet(ctx context.Context, id string) (QuestionSet, error)
	ReplaceQuestions(ctx context.Context, id string, questions []Question, updatedAt time.Time) error
	ListSetsByOwner(ctx context.Context, ownerID string) ([]QuestionSet, error)
}

// Completer is the chat-completion boundary (implemented by Client).
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// ReferenceResolver resolves a document id to reference text.
type ReferenceResolver interface {
	Resolve(ctx context.Context, ownerID, documentID string, sel curriculum.Selection) (string, error)
}

// StatusCache absorbs poll traffic between persisted writes (implemented
// by the Redis-backed cache). A nil result with nil error is a miss.
type StatusCache interface {
	Get(ctx context.Context, requestID string) (*Request, error)
	Set(ctx context.Context, req Request) error
}

// StatusNotifier pushes request transitions to connected listeners.
type StatusNotifier interface {
	NotifyStatus(req Request)
}

type job struct {
	requestID string
	ownerID   string
	form      FormData
}

// Service orchestrates the generation pipeline and guards ownership of
// requests and sets.
type Service struct {
	catalog   *curriculum.Catalog
	resolver  ReferenceResolver
	completer Completer
	requests  RequestStore
	sets      SetStore
	cache     StatusCache
	notifier  StatusNotifier
	queue     chan job
	logger    zerolog.Logger
}

type ServiceOptions struct {
	QueueSize int
}

func NewService(
	catalog *curriculum.Catalog,
	resolver ReferenceResolver,
	completer Completer,
	requests RequestStore,
	sets SetStore,
	cache StatusCache,
	notifier StatusNotifier,
	logger zerolog.Logger,
	opts ServiceOptions,
) *Service {
	size := opts.QueueSize
	if size <= 0 {
		size = 64
	}
	return &Service{
		catalog:   catalog,
		resolver:  resolver,
		completer: completer,
		requests:  requests,
		sets:      sets,
		cache:     cache,
		notifier:  notifier,
		queue:     make(chan job, size),
		logger:    logger.With().Str("component", "generate_service").Logger(),
	}
}

// Queue exposes the job channel for workers.
func (s *Service) Queue() <-chan job { return s.queue }

// Submit validates the form, records a pending request and enqueues it
// for background processing. It returns the request id immediately; the
// caller polls for progress.
func (s *Service) Submit(ctx context.Context, ownerID string, form FormData) (string, error) {
	if ownerID == "" {
		return "", ErrAuthRequired
	}
	if err := ValidateForm(s.catalog, form); err != nil {
		return "", err
	}

	now := time.Now().UTC()
	req := Request{
		ID:        "req_" + uuid.NewString(),
		OwnerID:   ownerID,
		Status:    StatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.requests.CreateRequest(ctx, req); err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}

	select {
	case s.queue <- job{requestID: req.ID, ownerID: ownerID, form: form}:
	default:
		s.fail(context.Background(), req.ID, "generation pipeline is at capacity, try again shortly")
		return "", fmt.Errorf("generation queue full")
	}

	requestsSubmitted.Inc()
	s.logger.Info().Str("request_id", req.ID).Str("document_id", form.DocumentID).Msg("request accepted")
	return req.ID, nil
}

// Status returns the current state of a request, read through the cache.
func (s *Service) Status(ctx context.Context, ownerID, requestID string) (Request, error) {
	if ownerID == "" {
		return Request{}, ErrAuthRequired
	}
	if cached, err := s.cache.Get(ctx, requestID); err == nil && cached != nil {
		if cached.OwnerID != ownerID {
			return Request{}, ErrForbidden
		}
		return *cached, nil
	}
	req, err := s.requests.GetRequest(ctx, requestID)
	if err != nil {
		return Request{}, err
	}
	if req.OwnerID != ownerID {
		return Request{}, ErrForbidden
	}
	_ = s.cache.Set(ctx, req)
	return req, nil
}

// QuestionSet returns a stored set after an ownership check.
func (s *Service) QuestionSet(ctx context.Context, ownerID, setID string) (QuestionSet, error) {
	if ownerID == "" {
		return QuestionSet{}, ErrAuthRequired
	}
	set, err := s.sets.GetSet(ctx, setID)
	if err != nil {
		return QuestionSet{}, err
	}
	if set.OwnerID != ownerID {
		return QuestionSet{}, ErrForbidden
	}
	return set, nil
}

// SaveQuestionSet replaces a set's questions wholesale. Edits go through
// the same shape validation as generated output, so an edit can never
// corrupt a previously valid set.
func (s *Service) SaveQuestionSet(ctx context.Context, ownerID, setID string, questions []Question) error {
	if ownerID == "" {
		return ErrAuthRequired
	}
	set, err := s.sets.GetSet(ctx, setID)
	if err != nil {
		return err
	}
	if set.OwnerID != ownerID {
		return ErrForbidden
	}
	if err := ValidateQuestions(questions); err != nil {
		return err
	}
	return s.sets.ReplaceQuestions(ctx, setID, questions, time.Now().UTC())
}

// ListSets returns all sets owned by the caller.
func (s *Service) ListSets(ctx context.Context, ownerID string) ([]QuestionSet, error) {
	if ownerID == "" {
		return nil, ErrAuthRequired
	}
	return s.sets.ListSetsByOwner(ctx, ownerID)
}

// process runs one request through the pipeline. Any step failure moves
// the request to failed with the step's error message; states never move
// backwards.
func (s *Service) process(ctx context.Context, j job) {
	logger := s.logger.With().Str("request_id", j.requestID).Logger()

	started := time.Now()
	defer func() { generationDuration.Observe(time.Since(started).Seconds()) }()

	s.advance(ctx, j.requestID, StatusInProgress, progressStarted)

	referenceText, err := s.resolver.Resolve(ctx, j.ownerID, j.form.DocumentID, j.form.Selection)
	if err != nil {
		logger.Warn().Err(err).Msg("reference resolution failed")
		s.fail(ctx, j.requestID, "could not read the teacher manual content")
		return
	}
	s.advance(ctx, j.requestID, StatusInProgress, progressReference)

	detail := s.catalog.Describe(j.form.Selection)
	prompt := BuildPrompt(referenceText, j.form.Selection, detail, j.form.QuestionTypes, j.form.AdditionalNotes)
	s.advance(ctx, j.requestID, StatusInProgress, progressPrompt)

	content, err := s.completer.Complete(ctx, prompt)
	if err != nil {
		logger.Error().Err(err).Msg("completion call failed")
		s.fail(ctx, j.requestID, err.Error())
		return
	}

	questions, err := NormalizeQuestions(content)
	if err != nil {
		logger.Error().Err(err).Msg("normalization failed")
		s.fail(ctx, j.requestID, err.Error())
		return
	}
	s.advance(ctx, j.requestID, StatusInProgress, progressGenerated)

	now := time.Now().UTC()
	set := QuestionSet{
		ID:        "set_" + uuid.NewString(),
		OwnerID:   j.ownerID,
		Questions: questions,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.sets.CreateSet(ctx, set); err != nil {
		logger.Error().Err(err).Msg("persist question set failed")
		s.fail(ctx, j.requestID, "could not store the generated question set")
		return
	}
	if err := s.requests.MarkComplete(ctx, j.requestID, set.ID); err != nil {
		logger.Error().Err(err).Msg("mark complete failed")
		s.fail(ctx, j.requestID, "could not finalize the request")
		return
	}
	s.publish(ctx, j.requestID)
	requestsCompleted.Inc()
	logger.Info().Str("set_id", set.ID).Int("questions", len(questions)).Msg("request complete")
}

func (s *Service) advance(ctx context.Context, requestID, status string, progressPct int) {
	if err := s.requests.UpdateProgress(ctx, requestID, status, progressPct); err != nil {
		s.logger.Error().Err(err).Str("request_id", requestID).Msg("progress update failed")
		return
	}
	s.publish(ctx, requestID)
}

func (s *Service) fail(ctx context.Context, requestID, msg string) {
	requestsFailed.Inc()
	if err := s.requests.MarkFailed(ctx, requestID, msg); err != nil {
		s.logger.Error().Err(err).Str("request_id", requestID).Msg("mark failed failed")
		return
	}
	s.publish(ctx, requestID)
}

// publish refreshes the cache and notifies listeners with the persisted
// record, so every observer sees the same state the store holds.
func (s *Service) publish(ctx context.Context, requestID string) {
	req, err := s.requests.GetRequest(ctx, requestID)
	if err != nil {
		return
	}
	_ = s.cache.Set(ctx, req)
	if s.notifier != nil {
		s.notifier.NotifyStatus(req)
	}
}
