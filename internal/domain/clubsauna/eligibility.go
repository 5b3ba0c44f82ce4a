package clubsauna

import "time"

type Season string

const (
	SeasonNone     Season = ""
	SeasonHigh     Season = "high"
	SeasonShoulder Season = "shoulder"
)

type Eligibility struct {
	Eligible bool
	Season   Season
}

// IsEligibleDate tells whether a club sauna session runs on date.
// June to August every day, May and September on Fridays and Saturdays only.
// Month and weekday are read in date's own location.
func IsEligibleDate(date time.Time) Eligibility {
	switch date.Month() {
	case time.June, time.July, time.August:
		return Eligibility{Eligible: true, Season: SeasonHigh}
	case time.May, time.September:
		if wd := date.Weekday(); wd == time.Friday || wd == time.Saturday {
			return Eligibility{Eligible: true, Season: SeasonShoulder}
		}
	}
	return Eligibility{}
}

// SessionName is the display name of an automatically scheduled session.
func (e Eligibility) SessionName() string {
	return "Club sauna (" + string(e.Season) + " season)"
}
