package entity

type ReservationStatus string

// Only Requested is ever produced; the rest are reserved for a future booking desk.
const (
	ReservationRequested ReservationStatus = "requested"
	ReservationConfirmed ReservationStatus = "confirmed"
	ReservationSeated    ReservationStatus = "seated"
	ReservationCancelled ReservationStatus = "cancelled"
)
