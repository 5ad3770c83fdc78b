package models

import "time"

// Lead lifecycle statuses.
const (
	LeadPending   = "pending"
	LeadConfirmed = "confirmed"
	LeadCancelled = "cancelled"
)

var LeadStatuses = []string{LeadPending, LeadConfirmed, LeadCancelled}

// LeadData is what the public contact form submits.
type LeadData struct {
	Name         string `bson:"name" json:"name"`
	Email        string `bson:"email" json:"email"`
	Phone        string `bson:"phone" json:"phone"`
	TourInterest string `bson:"tourInterest" json:"tourInterest"`
	TravelDates  string `bson:"travelDates" json:"travelDates"`
	GroupSize    string `bson:"groupSize" json:"groupSize"`
	Message      string `bson:"message" json:"message"`
}

// BookingLead is the locally retained record of a submitted inquiry.
type BookingLead struct {
	ID        string    `bson:"leadid" json:"id"`
	LeadData  `bson:",inline"`
	Timestamp time.Time `bson:"timestamp" json:"timestamp"`
	Status    string    `bson:"status" json:"status"`
}

// LeadFormConfig maps logical lead fields to external form entry ids.
// Persisted as a single keyed record alongside the lead log.
type LeadFormConfig struct {
	Endpoint string            `bson:"endpoint" json:"endpoint"`
	FieldMap map[string]string `bson:"fieldMap" json:"fieldMap"`
}
