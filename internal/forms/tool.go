package forms

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/schynno0/studio/internal/validation"
)

// client-side state of one lab tool. Begin, Invoke and Complete split a
// submission so an event loop can run the call off its own goroutine;
// Submit runs all three for synchronous callers.
type Tool[In, Out any] struct {
	name     string
	runner   Runner[In, Out]
	messages Messages
	timeout  time.Duration

	mu           sync.Mutex
	state        State
	result       *Out
	fieldErrors  validation.Errors
	notification *Notification
	seq          uint64
}

type Option func(*options)

type options struct {
	timeout time.Duration
}

// bounds each runner call; zero disables the bound
func WithTimeout(d time.Duration) Option {
	return func(o *options) {
		o.timeout = d
	}
}

func NewTool[In, Out any](name string, runner Runner[In, Out], messages Messages, opts ...Option) *Tool[In, Out] {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	return &Tool[In, Out]{
		name:     name,
		runner:   runner,
		messages: messages,
		timeout:  o.timeout,
		state:    StateIdle,
	}
}

func (t *Tool[In, Out]) Name() string {
	return t.name
}

// validates in and enters the loading state. returns ErrBusy while a
// submission is in flight, or validation.Errors when a field is invalid;
// in both cases the runner must not be called.
func (t *Tool[In, Out]) Begin(in In) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.state == StateLoading {
		return ErrBusy
	}

	if err := validation.Validate(&in); err != nil {
		if fields, ok := validation.AsErrors(err); ok {
			t.fieldErrors = fields
		}
		return err
	}

	t.fieldErrors = nil
	t.result = nil
	t.state = StateLoading

	return nil
}

// runs the tool once. call only after a successful Begin.
func (t *Tool[In, Out]) Invoke(ctx context.Context, in In) (*Out, error) {
	if t.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, t.timeout)
		defer cancel()
	}

	out, err := t.runner.Run(ctx, in)
	if err == nil && out == nil {
		err = errors.New("no output returned")
	}

	return out, err
}

// leaves the loading state and records the outcome of Invoke
func (t *Tool[In, Out]) Complete(out *Out, err error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.seq++

	if err != nil {
		t.state = StateFailed
		t.result = nil

		if fields, ok := validation.AsErrors(err); ok {
			t.fieldErrors = fields
		}

		t.notification = &Notification{
			Title:       "Error",
			Description: t.failureDescription(err),
			Variant:     VariantDestructive,
			Seq:         t.seq,
		}

		return
	}

	t.state = StateSucceeded
	t.result = out
	t.fieldErrors = nil
	t.notification = &Notification{
		Title:       t.messages.SuccessTitle,
		Description: t.messages.SuccessDescription,
		Variant:     VariantDefault,
		Seq:         t.seq,
	}
}

func (t *Tool[In, Out]) failureDescription(err error) string {
	description := fmt.Sprintf("%s Please try again.", t.messages.FailurePrefix)

	if detail := strings.TrimSpace(err.Error()); detail != "" {
		description += " " + detail
	}

	return description
}

// validates, runs and records one submission
func (t *Tool[In, Out]) Submit(ctx context.Context, in In) error {
	if err := t.Begin(in); err != nil {
		return err
	}

	out, err := t.Invoke(ctx, in)
	t.Complete(out, err)

	return err
}

// raises a notification outside of a submission, e.g. after copying a result
func (t *Tool[In, Out]) Notify(n Notification) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.seq++
	n.Seq = t.seq
	t.notification = &n
}

// drops the notification if it is still the one numbered seq
func (t *Tool[In, Out]) Dismiss(seq uint64) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.notification != nil && t.notification.Seq == seq {
		t.notification = nil
	}
}

func (t *Tool[In, Out]) Snapshot() Snapshot[Out] {
	t.mu.Lock()
	defer t.mu.Unlock()

	snap := Snapshot[Out]{
		State:  t.state,
		Result: t.result,
	}

	if len(t.fieldErrors) > 0 {
		snap.FieldErrors = append(validation.Errors(nil), t.fieldErrors...)
	}

	if t.notification != nil {
		n := *t.notification
		snap.Notification = &n
	}

	return snap
}
