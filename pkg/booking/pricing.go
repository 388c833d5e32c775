package booking

import (
	"errors"
	"time"
)

const secondsPerDay = 24 * 60 * 60

// Nights returns the number of nights between check-in and check-out, rounded
// up so partial days count as a full night.
func Nights(checkIn int64, checkOut int64) (int64, error) {
	if checkOut <= checkIn {
		return 0, errors.New("check-out must be after check-in")
	}
	diff := checkOut - checkIn
	nights := diff / secondsPerDay
	if diff%secondsPerDay != 0 {
		nights++
	}
	return nights, nil
}

// TotalPrice computes the stay price server-side, clients never supply it.
func TotalPrice(pricePerNight float64, checkIn int64, checkOut int64) (float64, error) {
	nights, err := Nights(checkIn, checkOut)
	if err != nil {
		return 0, err
	}
	return pricePerNight * float64(nights), nil
}

// StayOverlaps reports whether two stays share at least one night.
func StayOverlaps(aCheckIn, aCheckOut, bCheckIn, bCheckOut int64) bool {
	return aCheckIn < bCheckOut && bCheckIn < aCheckOut
}

// IsPastDate reports whether the check-in moment already passed.
func IsPastDate(checkIn int64, now time.Time) bool {
	return checkIn < now.Unix()
}
