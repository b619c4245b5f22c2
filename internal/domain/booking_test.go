package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/TennisCourt-BookingService/pkg/ptr"
)

func TestBooking_IsActiveAt(t *testing.T) {
	now := time.Date(2026, 4, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		booking Booking
		want    bool
	}{
		{
			name:    "paid booking is always active",
			booking: Booking{Paid: true},
			want:    true,
		},
		{
			name:    "unexpired hold is active",
			booking: Booking{Paid: false, ReservedUntil: ptr.Ptr(now.Add(5 * time.Minute))},
			want:    true,
		},
		{
			name:    "expired hold is not active",
			booking: Booking{Paid: false, ReservedUntil: ptr.Ptr(now.Add(-time.Second))},
			want:    false,
		},
		{
			name:    "hold expiring exactly now is not active",
			booking: Booking{Paid: false, ReservedUntil: ptr.Ptr(now)},
			want:    false,
		},
		{
			name:    "unpaid without hold is not active",
			booking: Booking{Paid: false, ReservedUntil: nil},
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.booking.IsActiveAt(now))
		})
	}
}

func TestBooking_IsExpiredAt(t *testing.T) {
	now := time.Date(2026, 4, 15, 12, 0, 0, 0, time.UTC)

	expired := Booking{Paid: false, ReservedUntil: ptr.Ptr(now.Add(-time.Minute))}
	assert.True(t, expired.IsExpiredAt(now))

	held := Booking{Paid: false, ReservedUntil: ptr.Ptr(now.Add(time.Minute))}
	assert.False(t, held.IsExpiredAt(now))

	// Оплаченное бронирование не бывает просроченным
	paid := Booking{Paid: true, ReservedUntil: nil}
	assert.False(t, paid.IsExpiredAt(now))
}
