package forms

import (
	"context"
	"errors"

	"github.com/sivadev/folio/internal/errs"
)

// State is the submission lifecycle of one form instance.
type State int

const (
	StateIdle State = iota
	StateSubmitting
	StateSuccess
	StateError
)

// GateMessage is shown when submit is attempted while the gate is
// unverified. No network call is made in that case.
const GateMessage = "Please verify yourself in the CAPTCHA"

const (
	defaultSuccessText  = "Submitted successfully."
	defaultFallbackText = "Something went wrong. Please try again."
)

// SendFunc performs the actual network call for a submission. values holds
// the validated field values; token is the gate's current CAPTCHA token.
type SendFunc func(ctx context.Context, values map[string]string, token string) error

// Submitter orchestrates one form's submissions: validation, gate check,
// network call, outcome display and reset. One Submitter per form instance;
// it is driven from a single goroutine (the event loop of the UI).
type Submitter struct {
	schema Schema
	gate   *Gate
	send   SendFunc

	onSuccess    func()
	successText  string
	fallbackText string

	state  State
	notice string
}

type SubmitterOption func(*Submitter)

// WithOnSuccess registers a completion callback invoked after a successful
// submission, e.g. to re-fetch the comment list.
func WithOnSuccess(fn func()) SubmitterOption {
	return func(s *Submitter) { s.onSuccess = fn }
}

// WithSuccessText overrides the success notice.
func WithSuccessText(text string) SubmitterOption {
	return func(s *Submitter) { s.successText = text }
}

// WithFallbackText overrides the generic retry prompt shown when a failure
// carries no usable message.
func WithFallbackText(text string) SubmitterOption {
	return func(s *Submitter) { s.fallbackText = text }
}

// NewSubmitter creates a submitter bound to a schema, a gate and a send
// function.
func NewSubmitter(schema Schema, gate *Gate, send SendFunc, opts ...SubmitterOption) *Submitter {
	s := &Submitter{
		schema:       schema,
		gate:         gate,
		send:         send,
		successText:  defaultSuccessText,
		fallbackText: defaultFallbackText,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// State returns the current submission state.
func (s *Submitter) State() State {
	return s.state
}

// Notice returns the current success or error display message, or "".
func (s *Submitter) Notice() string {
	return s.notice
}

// Submitting reports whether a submission is in flight.
func (s *Submitter) Submitting() bool {
	return s.state == StateSubmitting
}

// Gate returns the submitter's CAPTCHA gate.
func (s *Submitter) Gate() *Gate {
	return s.gate
}

// Schema returns the submitter's validation schema.
func (s *Submitter) Schema() Schema {
	return s.schema
}

// CanSubmit is the aggregate submit-enabled predicate: every field valid,
// no submission in flight, and the gate verified.
func (s *Submitter) CanSubmit(values map[string]string) bool {
	return s.state != StateSubmitting &&
		s.gate.Verified() &&
		s.schema.Validate(values).Valid()
}

// Begin guards and starts a submission attempt. Any prior outcome message
// is cleared first. On a gate miss the gate notice is set, no network call
// is made, and the state stays idle.
//
// Begin/Finish exist as a pair so an event-loop UI can run the network call
// between them as an asynchronous command.
func (s *Submitter) Begin(values map[string]string) error {
	if s.state == StateSubmitting {
		return errs.Input("a submission is already in flight")
	}

	s.state = StateIdle
	s.notice = ""

	res := s.schema.Validate(values)
	if !res.Valid() {
		for _, f := range s.schema.Fields() {
			if msg := res.Message(f.Name); msg != "" {
				return errs.Validation(msg)
			}
		}
		return errs.Validation("invalid form values")
	}

	if !s.gate.Verified() {
		s.notice = GateMessage
		return errs.Gate(GateMessage)
	}

	s.state = StateSubmitting
	return nil
}

// Do performs the bound network call. Call only after a successful Begin.
func (s *Submitter) Do(ctx context.Context, values map[string]string) error {
	return s.send(ctx, values, s.gate.Token())
}

// Finish transitions out of submitting. On success the gate is reset for a
// fresh widget and the completion callback runs. On failure the entered
// values and the gate token are left untouched so the user can retry.
func (s *Submitter) Finish(err error) {
	if s.state != StateSubmitting {
		return
	}

	if err == nil {
		s.state = StateSuccess
		s.notice = s.successText
		s.gate.Reset()
		if s.onSuccess != nil {
			s.onSuccess()
		}
		return
	}

	s.state = StateError
	s.notice = s.displayMessage(err)
}

// Submit runs a whole submission synchronously: guard, network call,
// outcome. On success the field values are cleared in place.
func (s *Submitter) Submit(ctx context.Context, values map[string]string) error {
	if err := s.Begin(values); err != nil {
		return err
	}

	err := s.Do(ctx, values)
	s.Finish(err)
	if err != nil {
		return err
	}

	for _, f := range s.schema.Fields() {
		values[f.Name] = ""
	}
	return nil
}

// displayMessage extracts what to show for a failed submission: the
// normalized error's message, then the error's own text, then the generic
// retry prompt.
func (s *Submitter) displayMessage(err error) string {
	var e *errs.Error
	if errors.As(err, &e) && e.Message != "" {
		return e.Message
	}
	if msg := err.Error(); msg != "" {
		return msg
	}
	return s.fallbackText
}
