package common

import "time"

const isoDate = "2006-01-02"

// FormatDate renders an ISO date the way the pages show it,
// en-GB style: "2 January 2006". Unparseable input passes through
// unchanged rather than erroring a whole page render.
func FormatDate(date string) string {
	t, err := time.Parse(isoDate, date)
	if err != nil {
		return date
	}
	return t.Format("2 January 2006")
}

// ParseDate validates a YYYY-MM-DD route parameter.
func ParseDate(date string) (time.Time, error) {
	return time.Parse(isoDate, date)
}
