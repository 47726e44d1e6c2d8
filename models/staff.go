package models

// Staff status values.
const (
	StaffStatusActive   = "active"
	StaffStatusInactive = "inactive"
)

// Staff represents a technician profile.
type Staff struct {
	ID     string `bson:"id" json:"id"`
	Name   string `bson:"name" json:"name"`
	Avatar string `bson:"avatar,omitempty" json:"avatar,omitempty"`
	Phone  string `bson:"phone,omitempty" json:"phone,omitempty"`
	Gender string `bson:"gender,omitempty" json:"gender,omitempty"`
	Status string `bson:"status" json:"status"`
}
