package typeops

import "time"

const (
	secondsPerDay   = 24 * 60 * 60
	microsPerSecond = 1_000_000
)

func microsToTime(micros int64) time.Time {
	seconds := micros / microsPerSecond
	frac := micros % microsPerSecond
	if frac < 0 {
		seconds--
		frac += microsPerSecond
	}
	return time.Unix(seconds, frac*1_000).UTC()
}

// DayToHumanString renders epoch days as an ISO calendar day,
// for example 17486 -> "2017-11-16".
func DayToHumanString(days int32) string {
	return time.Unix(int64(days)*secondsPerDay, 0).UTC().Format("2006-01-02")
}

// MicrosToHumanTime renders microseconds from midnight as an ISO
// time of day. The fractional part is only printed when non-zero.
func MicrosToHumanTime(micros int64) string {
	t := microsToTime(micros)
	if micros%microsPerSecond == 0 {
		return t.Format("15:04:05")
	}
	return t.Format("15:04:05.000000")
}

// MicrosToHumanTimestamp renders epoch microseconds as an ISO
// timestamp without a zone offset.
func MicrosToHumanTimestamp(micros int64) string {
	t := microsToTime(micros)
	if micros%microsPerSecond == 0 {
		return t.Format("2006-01-02T15:04:05")
	}
	return t.Format("2006-01-02T15:04:05.000000")
}

// MicrosToHumanTimestamptz renders epoch microseconds as an ISO
// timestamp with an explicit "+00:00" offset, never "Z".
func MicrosToHumanTimestamptz(micros int64) string {
	return MicrosToHumanTimestamp(micros) + "+00:00"
}
