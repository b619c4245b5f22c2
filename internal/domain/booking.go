package domain

import (
	"time"

	"github.com/m04kA/TennisCourt-BookingService/pkg/types"
)

// Booking represents a court reservation.
// A freshly created booking is a temporary hold: Paid is false and
// ReservedUntil is set. Payment confirmation flips it to Paid and clears
// ReservedUntil. An unpaid booking whose ReservedUntil has passed is logically
// free and never blocks a new reservation, whether or not the row was swept.
type Booking struct {
	ID            int64
	Date          time.Time        // calendar date of the slot
	StartTime     types.TimeString // slot start, "HH:MM"
	Name          string
	Phone         string
	Email         string
	Paid          bool
	ReservedUntil *time.Time // nil once paid, expired-and-swept, or never held

	CreatedAt time.Time
}

// IsHeldAt returns true if the booking is an unexpired temporary hold at the given instant
func (b *Booking) IsHeldAt(now time.Time) bool {
	return !b.Paid && b.ReservedUntil != nil && b.ReservedUntil.After(now)
}

// IsActiveAt returns true if the booking blocks its slot at the given instant:
// either paid, or held with an unexpired ReservedUntil
func (b *Booking) IsActiveAt(now time.Time) bool {
	return b.Paid || b.IsHeldAt(now)
}

// IsExpiredAt returns true for an unpaid hold whose reservation window has lapsed
func (b *Booking) IsExpiredAt(now time.Time) bool {
	return !b.Paid && b.ReservedUntil != nil && !b.ReservedUntil.After(now)
}
