package enum

// AppointmentStatus represents the lifecycle state of an appointment
type AppointmentStatus string

const (
	AppointmentScheduled AppointmentStatus = "scheduled"
	AppointmentConfirmed AppointmentStatus = "confirmed"
	AppointmentCompleted AppointmentStatus = "completed"
	AppointmentCancelled AppointmentStatus = "cancelled"
	AppointmentNoShow    AppointmentStatus = "noshow"
)

// IsValid checks if the appointment status is a known value
func (s AppointmentStatus) IsValid() bool {
	switch s {
	case AppointmentScheduled, AppointmentConfirmed, AppointmentCompleted,
		AppointmentCancelled, AppointmentNoShow:
		return true
	}
	return false
}

// IsTerminal reports whether no further transitions are allowed from this status
func (s AppointmentStatus) IsTerminal() bool {
	switch s {
	case AppointmentCompleted, AppointmentCancelled, AppointmentNoShow:
		return true
	}
	return false
}

// CanTransitionTo validates a status change against the appointment state machine:
// scheduled -> confirmed -> completed, with cancelled/noshow reachable from any
// non-terminal state. Terminal states are frozen.
func (s AppointmentStatus) CanTransitionTo(next AppointmentStatus) bool {
	if s.IsTerminal() || !next.IsValid() || next == s {
		return false
	}
	switch next {
	case AppointmentConfirmed:
		return s == AppointmentScheduled
	case AppointmentCompleted:
		return s == AppointmentScheduled || s == AppointmentConfirmed
	case AppointmentCancelled, AppointmentNoShow:
		return true
	}
	return false
}
