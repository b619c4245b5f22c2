package domain

// Default booking configuration values
const (
	DefaultHoldMinutes = 10 // время жизни временной брони до оплаты
	DefaultSlotMinutes = 60
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
