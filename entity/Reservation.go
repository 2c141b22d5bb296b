package entity

import "time"

type Reservation struct {
	ID    string `gorm:"primaryKey;size:64" json:"id"`
	Token string `gorm:"uniqueIndex;size:32;not null" json:"token"`

	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`

	Date      string `gorm:"size:10" json:"date"` // YYYY-MM-DD
	Time      string `gorm:"size:5" json:"time"`  // HH:mm
	PartySize int    `json:"partySize"`
	Notes     string `json:"notes,omitempty"`

	Status    ReservationStatus `gorm:"size:20" json:"status"`
	CreatedAt time.Time         `json:"createdAt"`
}
