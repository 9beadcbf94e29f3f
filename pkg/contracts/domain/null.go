package domain

import "time"

// NullString is a text cell that may be absent
type NullString struct {
	String string
	Valid  bool
}

// NullInt is an integer cell that may be absent
type NullInt struct {
	Int   int
	Valid bool
}

// NullTime is a calendar date that may be absent or unparseable
type NullTime struct {
	Time  time.Time
	Valid bool
}

// Str returns a valid NullString
func Str(s string) NullString {
	return NullString{String: s, Valid: true}
}

// Int returns a valid NullInt
func Int(i int) NullInt {
	return NullInt{Int: i, Valid: true}
}

// Date returns a valid NullTime
func Date(t time.Time) NullTime {
	return NullTime{Time: t, Valid: true}
}
