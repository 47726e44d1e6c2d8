package models

import "time"

// RotationEntry is one technician's slot in a day's serving order. Identity
// fields are a snapshot taken at queue creation; later profile edits do not
// flow back into existing queues.
type RotationEntry struct {
	StaffID        string     `bson:"staff_id" json:"staffId"`
	Name           string     `bson:"name" json:"name"`
	Avatar         string     `bson:"avatar,omitempty" json:"avatar,omitempty"`
	Phone          string     `bson:"phone,omitempty" json:"phone,omitempty"`
	Gender         string     `bson:"gender,omitempty" json:"gender,omitempty"`
	Shift          Shift      `bson:"shift" json:"shift"`
	Priority       int        `bson:"priority" json:"priority"`
	OrderCount     int        `bson:"order_count" json:"orderCount"`
	LastServedTime *time.Time `bson:"last_served_time,omitempty" json:"lastServedTime,omitempty"`
	Position       int        `bson:"position" json:"position"`
}

// RotationQueue is the per-date serving order. StaffList order is the serving
// order; Position mirrors each entry's index and must be re-derived after any
// mutation of the list.
type RotationQueue struct {
	ID           string          `bson:"id" json:"id"`
	Date         string          `bson:"date" json:"date"`
	StaffList    []RotationEntry `bson:"staff_list" json:"staffList"`
	CurrentIndex int             `bson:"current_index" json:"currentIndex"`
	CreatedAt    time.Time       `bson:"created_at" json:"createdAt"`
	UpdatedAt    time.Time       `bson:"updated_at" json:"updatedAt"`
}

// Reindex restores the Position invariant after a splice or reorder.
func (q *RotationQueue) Reindex() {
	for i := range q.StaffList {
		q.StaffList[i].Position = i
	}
}

// EntryIndex returns the index of the entry for staffID, or -1.
func (q *RotationQueue) EntryIndex(staffID string) int {
	for i := range q.StaffList {
		if q.StaffList[i].StaffID == staffID {
			return i
		}
	}
	return -1
}
