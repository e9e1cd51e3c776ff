package domain

// Time format constants
const (
	TimeFormat        = "15:04"                   // HH:MM
	DisplayTimeFormat = "03:04 PM"                // 10:00 AM
	DateFormat        = "2006-01-02"              // YYYY-MM-DD
	APIDateFormat     = "02/01/2006"              // DD/MM/YYYY, remote availability endpoints
	LongDateFormat    = "Monday, January 2, 2006" // Thursday, April 24, 2025
)

// Booking defaults
const (
	DefaultBillSuccessDisplaySeconds = 3
	ContactPhoneDigits               = 10
)
