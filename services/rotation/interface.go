package rotation

import (
	"errors"

	"padoo/models"
)

var (
	// ErrQueueNotFound is returned when no queue document exists for the date.
	ErrQueueNotFound = errors.New("rotation queue not found")
	// ErrStaffNotInQueue is returned when the staff id is absent from the
	// date's queue.
	ErrStaffNotInQueue = errors.New("staff not in rotation queue")
	// ErrIndexOutOfRange is returned for reorder indices outside the list.
	ErrIndexOutOfRange = errors.New("queue index out of range")
)

// Service is the rotation engine: per-date queue creation, serve accounting,
// and operator reordering. All mutations replace the queue document whole, so
// staff_list and current_index never persist out of sync.
type Service interface {
	// InitQueue builds the date's queue from the on-duty roster. Idempotent:
	// an existing queue is returned untouched. With nobody on duty it returns
	// an empty, unpersisted queue rather than an error.
	InitQueue(date string) (*models.RotationQueue, error)
	// GetQueue returns the date's queue or ErrQueueNotFound.
	GetQueue(date string) (*models.RotationQueue, error)
	// ServeCustomer records a served customer for the staff member. A
	// clock-in (named request) only bumps the entry's counters; a
	// rotation-serve also moves the entry to the tail and, when the served
	// entry was the one up next, advances the pointer.
	ServeCustomer(date, staffID string, clockIn bool) (*models.RotationQueue, error)
	// MoveEntry splices the entry at fromIndex to toIndex. The pointer stays
	// a raw index; an operator move may leave it at a different technician,
	// which is the intended override behavior.
	MoveEntry(date string, fromIndex, toIndex int) (*models.RotationQueue, error)
}
