package api

import "time"

// UnixTime is a timestamp expressed as Unix seconds, the resolution used everywhere on
// the Shipstatic wire. It marshals as a plain JSON number.
type UnixTime int64

// UnixTimeFromTime converts a time.Time to UnixTime, truncating to seconds.
func UnixTimeFromTime(t time.Time) UnixTime {
	return UnixTime(t.Unix())
}

// Time converts the value to a time.Time in UTC.
func (u UnixTime) Time() time.Time {
	return time.Unix(int64(u), 0).UTC()
}

// IsDefined is true if the value is nonzero. The wire omits undefined timestamps rather
// than sending zero.
func (u UnixTime) IsDefined() bool {
	return u != 0
}
