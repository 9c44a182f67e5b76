package timeutil

import (
	"time"
)

// Shop is the shop-local timezone. All calendar-day arithmetic (dashboard
// "today", calendar buckets) uses this zone, never the server's.
var Shop = time.Local

// Init sets the shop timezone by name (e.g. "Europe/London"). Unknown names
// leave the current zone in place and return the error.
func Init(name string) error {
	if name == "" {
		return nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return err
	}
	Shop = loc
	return nil
}

// Now returns the current time in the shop timezone.
func Now() time.Time {
	return time.Now().In(Shop)
}

// SameDay reports whether a and b fall on the same shop-local calendar day.
func SameDay(a, b time.Time) bool {
	a, b = a.In(Shop), b.In(Shop)
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// StartOfDay returns 00:00:00 shop time for the day containing t.
func StartOfDay(t time.Time) time.Time {
	t = t.In(Shop)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, Shop)
}

// Day returns the shop-local midnight for the given calendar date.
func Day(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, Shop)
}

// Common layouts for display formatting
const (
	DateLayout     = "2006-01-02"
	DateTimeLayout = "2006-01-02 15:04:05"
	DisplayLayout  = "02 Jan 2006, 03:04 PM"
)
