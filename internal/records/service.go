package records

import (
	"context"

	"go.uber.org/zap"
)

const (
	opGet    = "get"
	opList   = "list"
	opSearch = "search"
	opCreate = "create"
	opUpdate = "update"
	opDelete = "delete"
)

type options struct {
	messages *Messages
	metrics  *Metrics
	logger   *zap.Logger
}

type Option func(*options)

// WithMessages overrides the default message table.
func WithMessages(messages Messages) Option {
	return func(o *options) {
		o.messages = &messages
	}
}

func WithMetrics(metrics *Metrics) Option {
	return func(o *options) {
		o.metrics = metrics
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// Service translates storage outcomes of one entity type into envelopes.
// It keeps no state of its own between calls.
type Service[K comparable, T any, D any] struct {
	entity   string
	store    Store[K, T, D]
	validate Validator[D]
	messages Messages

	metrics *Metrics
	logger  *zap.Logger
}

func NewService[K comparable, T any, D any](
	entity string,
	store Store[K, T, D],
	validate Validator[D],
	opts ...Option,
) *Service[K, T, D] {
	o := options{
		messages: nil,
		metrics:  nil,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	messages := DefaultMessages(entity)
	if o.messages != nil {
		messages = *o.messages
	}
	if validate == nil {
		validate = NoValidation[D]
	}

	return &Service[K, T, D]{
		entity:   entity,
		store:    store,
		validate: validate,
		messages: messages,

		metrics: o.metrics,
		logger:  o.logger,
	}
}

// Entity returns the entity name the service was built for.
func (s *Service[K, T, D]) Entity() string {
	return s.entity
}

// Get returns the record with the given id.
func (s *Service[K, T, D]) Get(ctx context.Context, id K) Envelope {
	s.logger.Debug("getting record", zap.Any("id", id))

	outcome := s.store.FindByID(ctx, id)

	var env Envelope
	switch value, ok := outcome.Value(); {
	case ok:
		env = Single(s.messages.Succeeded, value)
	case outcome.IsAbsent():
		env = Fail(KindNotFound, s.messages.NotFound)
	default:
		env = s.failure()
	}

	return s.finish(opGet, env)
}

// List returns every record. No records is a success with zero rows.
func (s *Service[K, T, D]) List(ctx context.Context) Envelope {
	s.logger.Debug("listing records")

	return s.finish(opList, s.collection(s.store.FindAll(ctx)))
}

// Search returns the records matching term. An empty term behaves as List.
func (s *Service[K, T, D]) Search(ctx context.Context, term string) Envelope {
	s.logger.Debug("searching records", zap.String("term", term))

	return s.finish(opSearch, s.collection(s.store.FindBySearch(ctx, term)))
}

// Create validates the draft and persists it. A rejected draft never reaches
// the store.
func (s *Service[K, T, D]) Create(ctx context.Context, draft D) Envelope {
	if err := s.validate(draft); err != nil {
		if IsValidationError(err) {
			s.logger.Debug("draft rejected", zap.String("reason", err.Error()))
			return s.finish(opCreate, Fail(KindInvalid, err.Error()))
		}

		s.logger.Error("failed to validate draft", zap.Error(err))
		return s.finish(opCreate, s.failure())
	}

	s.logger.Debug("creating record")

	outcome := s.store.Create(ctx, draft)
	if saved, ok := outcome.Value(); ok {
		return s.finish(opCreate, Single(s.messages.Created, saved))
	}

	return s.finish(opCreate, s.failure())
}

// Update override-merges patch into the record with the given id.
func (s *Service[K, T, D]) Update(ctx context.Context, id K, patch D) Envelope {
	s.logger.Debug("updating record", zap.Any("id", id))

	outcome := s.store.Update(ctx, id, patch)

	var env Envelope
	switch merged, ok := outcome.Value(); {
	case ok:
		env = Single(s.messages.Updated, merged)
	case outcome.IsAbsent():
		env = Fail(KindNotFound, s.messages.NotFound)
	default:
		env = s.failure()
	}

	return s.finish(opUpdate, env)
}

// Delete removes the record with the given id. A missing id and a storage
// error produce the same envelope.
func (s *Service[K, T, D]) Delete(ctx context.Context, id K) Envelope {
	s.logger.Debug("deleting record", zap.Any("id", id))

	outcome := s.store.DeleteByID(ctx, id)

	var env Envelope
	switch removed, ok := outcome.Value(); {
	case ok && removed:
		env = Done(s.messages.Deleted)
	case ok:
		env = s.failure()
		env.Kind = KindNotFound
	default:
		env = s.failure()
	}

	return s.finish(opDelete, env)
}

func (s *Service[K, T, D]) collection(outcome Outcome[[]T]) Envelope {
	if values, ok := outcome.Value(); ok {
		return Many(s.messages.Succeeded, values)
	}

	// a collection query never distinguishes absence from failure
	return s.failure()
}

func (s *Service[K, T, D]) failure() Envelope {
	return Fail(KindFailure, s.messages.Failure)
}

func (s *Service[K, T, D]) finish(operation string, env Envelope) Envelope {
	s.metrics.observe(s.entity, operation, env)
	return env
}
