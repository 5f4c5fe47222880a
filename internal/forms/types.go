package forms

import (
	"errors"

	"github.com/schynno0/studio/internal/flows"
	"github.com/schynno0/studio/internal/validation"
)

// returned by Begin while a submission is in flight
var ErrBusy = errors.New("a submission is already in progress")

type State string

const (
	StateIdle      State = "idle"
	StateLoading   State = "loading"
	StateSucceeded State = "succeeded"
	StateFailed    State = "failed"
)

// visual treatment of a notification
type Variant string

const (
	VariantDefault     Variant = "default"
	VariantDestructive Variant = "destructive"
)

// a transient message shown after a submission
type Notification struct {
	Title       string
	Description string
	Variant     Variant
	// increases with every notification a tool raises
	Seq uint64
}

// presentation tier of a badge
type Tier string

const (
	TierDefault     Tier = "default"
	TierSecondary   Tier = "secondary"
	TierDestructive Tier = "destructive"
	TierOutline     Tier = "outline"
)

// texts a tool shows when a submission finishes
type Messages struct {
	SuccessTitle       string
	SuccessDescription string
	// first sentence of the failure description, e.g. "Failed to grade resume."
	FailurePrefix string
}

// copy of a tool's state for rendering
type Snapshot[Out any] struct {
	State        State
	Result       *Out
	FieldErrors  validation.Errors
	Notification *Notification
}

func (s Snapshot[Out]) Loading() bool {
	return s.State == StateLoading
}

// the message shown under a field, empty when the field is valid
func (s Snapshot[Out]) FieldError(field string) string {
	return s.FieldErrors.For(field)
}

// anything that runs a tool: an in-process flow or the REST client
type Runner[In, Out any] interface {
	flows.Runner[In, Out]
}
