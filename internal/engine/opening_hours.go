package engine

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// OpeningWindow is one parsed opening-hours interval. AlwaysOpen windows have
// no day or time bounds.
type OpeningWindow struct {
	AlwaysOpen bool
	Days       []time.Weekday
	Open       int // minutes since midnight
	Close      int
}

var hoursPattern = regexp.MustCompile(`(?i)^\s*([a-z ,\-]*?)\s*(\d{1,2}):(\d{2})\s*-\s*(\d{1,2}):(\d{2})\s*$`)

var weekdayAbbrevs = map[string]time.Weekday{
	"mon": time.Monday, "tue": time.Tuesday, "wed": time.Wednesday,
	"thu": time.Thursday, "fri": time.Friday, "sat": time.Saturday,
	"sun": time.Sunday,
}

var allWeekdays = []time.Weekday{
	time.Monday, time.Tuesday, time.Wednesday, time.Thursday,
	time.Friday, time.Saturday, time.Sunday,
}

// ParseOpeningHours parses strings like "daily 09:00-18:00",
// "mon-fri 10:00-19:00" or "24/7" on a best-effort basis. Formats it does not
// recognize yield no windows; scheduling never enforces these either way.
func ParseOpeningHours(raw string) []OpeningWindow {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	lower := strings.ToLower(raw)
	if lower == "24/7" || strings.Contains(lower, "round the clock") || strings.Contains(lower, "always open") {
		return []OpeningWindow{{AlwaysOpen: true}}
	}

	m := hoursPattern.FindStringSubmatch(raw)
	if m == nil {
		return nil
	}

	openH, _ := strconv.Atoi(m[2])
	openM, _ := strconv.Atoi(m[3])
	closeH, _ := strconv.Atoi(m[4])
	closeM, _ := strconv.Atoi(m[5])
	if openH > 23 || closeH > 24 || openM > 59 || closeM > 59 {
		return nil
	}

	window := OpeningWindow{
		Open:  openH*60 + openM,
		Close: closeH*60 + closeM,
	}

	dayPart := strings.ToLower(strings.TrimSpace(m[1]))
	switch {
	case dayPart == "" || dayPart == "daily" || dayPart == "every day":
		window.Days = allWeekdays
	default:
		window.Days = parseDayList(dayPart)
		if len(window.Days) == 0 {
			return nil
		}
	}

	return []OpeningWindow{window}
}

func parseDayList(part string) []time.Weekday {
	var days []time.Weekday

	for _, chunk := range strings.Split(part, ",") {
		chunk = strings.TrimSpace(chunk)
		if from, to, ok := strings.Cut(chunk, "-"); ok {
			start, okFrom := weekdayAbbrevs[abbrev(from)]
			end, okTo := weekdayAbbrevs[abbrev(to)]
			if !okFrom || !okTo {
				continue
			}
			for d := start; ; d = (d + 1) % 7 {
				days = append(days, d)
				if d == end {
					break
				}
			}
			continue
		}
		if d, ok := weekdayAbbrevs[abbrev(chunk)]; ok {
			days = append(days, d)
		}
	}

	return days
}

func abbrev(day string) string {
	day = strings.TrimSpace(day)
	if len(day) > 3 {
		day = day[:3]
	}
	return day
}
