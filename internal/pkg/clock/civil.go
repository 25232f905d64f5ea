package clock

import "time"

const (
	TargetZoneName   = "IST"
	TargetZoneOffset = 5*60*60 + 30*60 // UTC+05:30

	DateLayout      = "2006-01-02"
	TimeOfDayLayout = "15:04:05"
)

// TargetZone is the civil zone the business operates in. It is a fixed
// offset so results never depend on the host's tz database or local zone.
var TargetZone = time.FixedZone(TargetZoneName, TargetZoneOffset)

func ToTargetZone(t time.Time) time.Time {
	return t.In(TargetZone)
}

// TimeOfDay returns HH:MM:SS of t in the target zone.
func TimeOfDay(t time.Time) string {
	return ToTargetZone(t).Format(TimeOfDayLayout)
}

// CivilDate returns YYYY-MM-DD of t in the target zone.
func CivilDate(t time.Time) string {
	return ToTargetZone(t).Format(DateLayout)
}
