package engine

import (
	"fmt"
	"strings"
	"time"

	"wayfare/pkg/utils"
)

const (
	dayStartHour     = 9
	maxSnippetLength = 120
)

// TripFrame is the framing data the renderer needs beyond the schedule
// itself.
type TripFrame struct {
	Destinations []string
	StartDate    time.Time
	TripDays     int
	TotalCost    Money
}

// VisitEntry is one rendered stop within a day.
type VisitEntry struct {
	CandidateIndex int       `json:"-"`
	ArrivalTime    string    `json:"arrival_time"`
	Arrival        time.Time `json:"-"`
	POIName        string    `json:"poi_name"`
	ActivityName   string    `json:"activity_name,omitempty"`
	Snippet        string    `json:"snippet,omitempty"`
}

// DayBlock is one rendered itinerary day.
type DayBlock struct {
	Day     int          `json:"day"`
	Date    time.Time    `json:"date"`
	Weekday string       `json:"weekday"`
	Free    bool         `json:"free"`
	Visits  []VisitEntry `json:"visits"`
}

// BuildDayBlocks walks the schedule and simulates each day's clock: start at
// 09:00, advance by travel time to record the arrival, then by the visit
// duration. Day boundaries come from the assignment itself. Pure function;
// formatting happens separately in FormatItinerary.
func BuildDayBlocks(
	candidates []Candidate,
	assignment Assignment,
	frame TripFrame,
	speedKmH float64,
) ([]DayBlock, error) {
	if frame.StartDate.IsZero() || frame.TripDays < 1 {
		return nil, utils.ErrInvalidInput
	}

	blocks := make([]DayBlock, 0, frame.TripDays)

	for day := 1; day <= frame.TripDays; day++ {
		date := frame.StartDate.AddDate(0, 0, day-1)
		block := DayBlock{
			Day:     day,
			Date:    date,
			Weekday: date.Weekday().String(),
		}

		indices := assignment.Days[day]
		if len(indices) == 0 {
			block.Free = true
			blocks = append(blocks, block)
			continue
		}

		clock := time.Date(date.Year(), date.Month(), date.Day(), dayStartHour, 0, 0, 0, date.Location())
		prev := -1

		for _, idx := range indices {
			cand := candidates[idx]

			if prev >= 0 {
				km := Haversine(
					candidates[prev].Latitude, candidates[prev].Longitude,
					cand.Latitude, cand.Longitude,
				)
				clock = clock.Add(hoursToDuration(TravelTime(km, speedKmH)))
			}

			block.Visits = append(block.Visits, VisitEntry{
				CandidateIndex: idx,
				ArrivalTime:    clock.Format("15:04"),
				Arrival:        clock,
				POIName:        cand.Name,
				ActivityName:   cand.ActivityName,
				Snippet:        descriptionSnippet(cand),
			})

			clock = clock.Add(hoursToDuration(cand.VisitHours))
			prev = idx
		}

		blocks = append(blocks, block)
	}

	return blocks, nil
}

// FormatItinerary renders the day blocks as the user-facing itinerary text:
// a header, one block per day (free days included), a note for POIs that did
// not fit, a total-cost line and a trip-length line.
func FormatItinerary(blocks []DayBlock, frame TripFrame, unplaced int) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Itinerary for a trip to %s (%d days):\n",
		strings.Join(frame.Destinations, ", "), frame.TripDays)

	scheduled := 0
	for _, block := range blocks {
		scheduled += len(block.Visits)
	}

	if scheduled == 0 {
		b.WriteString("\nNo places are scheduled on this itinerary.\n")
	}

	for _, block := range blocks {
		if block.Free {
			fmt.Fprintf(&b, "\nDay %d (%s): free day, nothing scheduled.\n", block.Day, block.Weekday)
			continue
		}

		fmt.Fprintf(&b, "\nDay %d (%s):\n", block.Day, block.Weekday)
		for _, visit := range block.Visits {
			fmt.Fprintf(&b, "- %s %s", visit.ArrivalTime, visit.POIName)
			if visit.ActivityName != "" {
				fmt.Fprintf(&b, " (activity: %s)", visit.ActivityName)
			}
			b.WriteString("\n")
			if visit.Snippet != "" {
				fmt.Fprintf(&b, "    (%s)\n", visit.Snippet)
			}
		}
	}

	if unplaced > 0 {
		fmt.Fprintf(&b, "\n%d place(s) did not fit into the %d-day trip.\n", unplaced, frame.TripDays)
	}

	fmt.Fprintf(&b, "\nEstimated total cost: %.2f %s\n", frame.TotalCost.Amount, frame.TotalCost.Currency)
	fmt.Fprintf(&b, "Total duration: %d days.\n", frame.TripDays)

	return b.String()
}

// descriptionSnippet takes the first sentence of the most specific available
// description, truncated to maxSnippetLength characters. The activity
// description wins over the location description.
func descriptionSnippet(cand Candidate) string {
	description := cand.Description
	if cand.ActivityDescription != "" {
		description = cand.ActivityDescription
	}
	if description == "" {
		return ""
	}

	snippet, _, _ := strings.Cut(description, ".")
	snippet = strings.TrimSpace(snippet)
	if snippet == "" {
		return ""
	}
	snippet += "."

	// Truncate by runes, not bytes: descriptions are often Cyrillic.
	if runes := []rune(snippet); len(runes) > maxSnippetLength {
		snippet = string(runes[:maxSnippetLength]) + "..."
	}

	return snippet
}

func hoursToDuration(hours float64) time.Duration {
	return time.Duration(hours * float64(time.Hour))
}
