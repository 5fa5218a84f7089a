// Package formflow models the two-step mutation pattern shared by the
// payment, invoice and setor forms: collect input, show a read-only
// confirmation summary, then submit. A flow advances
// Editing -> Confirming -> Submitting -> Done | Error; editing happens in
// the browser, so a flow enters the store at Confirming once its payload
// passes required-field validation. Validation failure never creates a
// flow and never reaches the network.
package formflow

import (
	"context"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	appErrors "github.com/noah-isme/kindy-portal/pkg/errors"
)

// State names one position in the flow machine.
type State string

const (
	StateEditing    State = "editing"
	StateConfirming State = "confirming"
	StateSubmitting State = "submitting"
	StateDone       State = "done"
	StateError      State = "error"
)

// Flow is one pending mutation.
type Flow[T any] struct {
	ID        string    `json:"id"`
	State     State     `json:"state"`
	Payload   T         `json:"payload"`
	Message   string    `json:"message,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Store holds pending flows for one payload type. Flows that are never
// confirmed expire after the TTL.
type Store[T any] struct {
	mu       sync.Mutex
	flows    map[string]*Flow[T]
	ttl      time.Duration
	validate *validator.Validate
	now      func() time.Time
}

// NewStore constructs a Store.
func NewStore[T any](ttl time.Duration, validate *validator.Validate) *Store[T] {
	if validate == nil {
		validate = validator.New()
	}
	return &Store[T]{
		flows:    make(map[string]*Flow[T]),
		ttl:      ttl,
		validate: validate,
		now:      time.Now,
	}
}

// Begin validates the payload and, if valid, stores a flow awaiting
// confirmation. Missing required fields block the flow entirely.
func (s *Store[T]) Begin(payload T) (*Flow[T], error) {
	if err := s.validate.Struct(payload); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "please fill in all required fields")
	}

	flow := &Flow[T]{
		ID:        uuid.NewString(),
		State:     StateConfirming,
		Payload:   payload,
		CreatedAt: s.now(),
	}

	s.mu.Lock()
	s.sweepLocked()
	s.flows[flow.ID] = flow
	s.mu.Unlock()

	return flow, nil
}

// Get returns a pending flow.
func (s *Store[T]) Get(id string) (*Flow[T], bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sweepLocked()
	flow, ok := s.flows[id]
	return flow, ok
}

// Confirm runs the submission for a confirmed flow. The flow moves through
// Submitting into Done or Error; either way it leaves the store, so a
// second confirm of the same flow is rejected rather than re-submitted.
func (s *Store[T]) Confirm(ctx context.Context, id string, submit func(ctx context.Context, payload T) error) (*Flow[T], error) {
	s.mu.Lock()
	flow, ok := s.flows[id]
	if !ok || flow.State != StateConfirming {
		s.mu.Unlock()
		return nil, appErrors.Clone(appErrors.ErrNotFound, "no pending form to confirm")
	}
	flow.State = StateSubmitting
	delete(s.flows, id)
	s.mu.Unlock()

	if err := submit(ctx, flow.Payload); err != nil {
		flow.State = StateError
		flow.Message = appErrors.FromError(err).Message
		return flow, err
	}

	flow.State = StateDone
	return flow, nil
}

// Cancel drops a pending flow.
func (s *Store[T]) Cancel(id string) {
	s.mu.Lock()
	delete(s.flows, id)
	s.mu.Unlock()
}

func (s *Store[T]) sweepLocked() {
	if s.ttl <= 0 {
		return
	}
	cutoff := s.now().Add(-s.ttl)
	for id, flow := range s.flows {
		if flow.CreatedAt.Before(cutoff) {
			delete(s.flows, id)
		}
	}
}
