package booking

type Availability string

const (
	AvailabilityUnknown     Availability = "unknown"
	AvailabilityAvailable   Availability = "available"
	AvailabilityUnavailable Availability = "unavailable"
)

func (a Availability) String() string {
	return string(a)
}

type ReservationStatus string

const (
	ReservationPending    ReservationStatus = "pendiente"
	ReservationConfirmed  ReservationStatus = "confirmada"
	ReservationInProgress ReservationStatus = "en-curso"
	ReservationCompleted  ReservationStatus = "completada"
	ReservationCanceled   ReservationStatus = "cancelada"
)

func (s ReservationStatus) String() string {
	return string(s)
}

func (s ReservationStatus) IsValid() bool {
	switch s {
	case ReservationPending, ReservationConfirmed, ReservationInProgress, ReservationCompleted, ReservationCanceled:
		return true
	default:
		return false
	}
}

// Cancelable reports whether the guest may still cancel before check-in.
func (s ReservationStatus) Cancelable() bool {
	return s == ReservationPending || s == ReservationConfirmed
}
