package futures

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

const Namespace = "futures"

var (
	ErrInvalidConfig     = errors.New(Namespace + ": invalid configuration")
	ErrPoolNotConfigured = errors.New(Namespace + ": pool size has to be configured before first use")
	ErrPoolShutDown      = errors.New(Namespace + ": pool has been shut down")
	ErrTaskPanicked      = errors.New(Namespace + ": task execution panicked")
)

// TaskMetaError exposes correlation metadata for a task failure. Task errors
// are wrapped into a TaskMetaError only when the owning Manager has error
// tagging enabled.
type TaskMetaError interface {
	error
	Unwrap() error
	HandleID() (uuid.UUID, bool)
	ItemIndex() (int, bool)
}

type taggedError struct {
	err   error
	id    uuid.UUID
	index int
}

func newTaggedError(err error, id uuid.UUID, index int) error {
	if err == nil {
		return nil
	}
	return &taggedError{err: err, id: id, index: index}
}

func (e *taggedError) Error() string { return e.err.Error() }
func (e *taggedError) Unwrap() error { return e.err }

func (e *taggedError) HandleID() (uuid.UUID, bool) { return e.id, true }
func (e *taggedError) ItemIndex() (int, bool)      { return e.index, true }

func (e *taggedError) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			_, _ = fmt.Fprintf(s, "task(index=%d,id=%s): %+v", e.index, e.id, e.err)
			return
		}
		fallthrough
	case 's':
		_, _ = fmt.Fprint(s, e.Error())
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", e.Error())
	}
}

// ExtractHandleID returns the handle ID attached to err, if any error in its
// chain carries task metadata.
func ExtractHandleID(err error) (uuid.UUID, bool) {
	var meta TaskMetaError
	if errors.As(err, &meta) {
		return meta.HandleID()
	}
	return uuid.UUID{}, false
}

// ExtractItemIndex returns the originating item index attached to err, if
// any error in its chain carries task metadata.
func ExtractItemIndex(err error) (int, bool) {
	var meta TaskMetaError
	if errors.As(err, &meta) {
		return meta.ItemIndex()
	}
	return 0, false
}
