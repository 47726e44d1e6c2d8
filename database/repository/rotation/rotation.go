package rotationRepo

import (
	"padoo/models"
)

// RotationRepository defines data access for per-date rotation queues.
//
// Every mutation goes through Replace as a whole-document write. The store
// gives last-write-wins semantics only; the design assumes a single
// interactive operator per date, and concurrent writers for the same date can
// lose updates in that window.
type RotationRepository interface {
	// GetByDate returns the queue for the date, or (nil, nil) when no queue
	// document exists yet.
	GetByDate(date string) (*models.RotationQueue, error)
	Insert(queue *models.RotationQueue) error
	// Replace swaps the whole queue document for queue.Date.
	Replace(queue *models.RotationQueue) error
}
