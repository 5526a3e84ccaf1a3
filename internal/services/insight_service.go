package services

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// TripInsights is what the provider extracts from a free-text trip query.
type TripInsights struct {
	Destinations []string
	Interests    []string
	TravelStyle  string
	DurationDays int
}

// TextInsightProvider turns free text into interest tags, a travel style and
// trip framing hints. Constructed once at startup and injected; there is no
// ambient model state.
type TextInsightProvider interface {
	ExtractInsights(text string) TripInsights
}

type keywordInsightProvider struct {
	locationPatterns []*regexp.Regexp
	dayPattern       *regexp.Regexp
}

func NewKeywordInsightProvider() TextInsightProvider {
	return &keywordInsightProvider{
		locationPatterns: []*regexp.Regexp{
			regexp.MustCompile(`to\s+([a-z][a-z\s]+?)(?:\s+in|\s+for|\s+during|\s+with|\s+\d|[,.]|$)`),
			regexp.MustCompile(`in\s+([a-z][a-z\s]+?)(?:\s+for|\s+during|\s+with|\s+\d|[,.]|$)`),
			regexp.MustCompile(`visit\s+([a-z][a-z\s]+?)(?:\s+in|\s+for|\s+during|\s+with|\s+\d|[,.]|$)`),
			regexp.MustCompile(`around\s+([a-z][a-z\s]+?)(?:\s+in|\s+for|\s+during|\s+with|\s+\d|[,.]|$)`),
		},
		dayPattern: regexp.MustCompile(`(\d{1,2})[\s-]*(?:days?|nights?)`),
	}
}

// Interest keywords mapped to the candidate categories they should match.
var interestKeywords = map[string]string{
	"museum":       "museum",
	"museums":      "museum",
	"gallery":      "art",
	"art":          "art",
	"park":         "park",
	"parks":        "park",
	"nature":       "nature",
	"hiking":       "hiking",
	"trekking":     "hiking",
	"beach":        "beach",
	"beaches":      "beach",
	"food":         "food",
	"restaurant":   "restaurant",
	"dining":       "restaurant",
	"cafe":         "cafe",
	"coffee":       "cafe",
	"shopping":     "shopping",
	"market":       "shopping",
	"nightlife":    "nightlife",
	"bars":         "nightlife",
	"clubs":        "nightlife",
	"history":      "history",
	"historical":   "history",
	"culture":      "culture",
	"cultural":     "culture",
	"religion":     "religion",
	"temple":       "religion",
	"church":       "religion",
	"wine":         "wine",
	"tasting":      "tasting",
	"sport":        "sport",
	"sports":       "sport",
	"music":        "music",
	"photography":  "photography",
	"animals":      "animals",
	"zoo":          "animals",
	"relax":        "relax",
	"spa":          "relax",
	"architecture": "architecture",
}

// Checked in order; the first hit wins.
var styleKeywords = []struct {
	keyword string
	style   string
}{
	{"adventure", "active"},
	{"active", "active"},
	{"hiking", "active"},
	{"luxury", "luxury"},
	{"budget", "budget"},
	{"cheap", "budget"},
	{"relax", "relaxed"},
	{"slow", "relaxed"},
	{"calm", "relaxed"},
	{"culture", "cultural"},
	{"museum", "cultural"},
	{"history", "cultural"},
}

func (p *keywordInsightProvider) ExtractInsights(text string) TripInsights {
	lower := strings.ToLower(text)
	insights := TripInsights{
		Destinations: p.extractDestinations(lower),
		Interests:    extractInterests(lower),
		TravelStyle:  extractStyle(lower),
		DurationDays: p.extractDayCount(lower),
	}
	return insights
}

func (p *keywordInsightProvider) extractDestinations(lower string) []string {
	seen := make(map[string]bool)
	var destinations []string

	for _, pattern := range p.locationPatterns {
		for _, match := range pattern.FindAllStringSubmatch(lower, -1) {
			if len(match) < 2 {
				continue
			}
			location := strings.TrimSpace(match[1])
			if len(location) > 2 && len(location) < 50 && !seen[location] {
				seen[location] = true
				destinations = append(destinations, location)
			}
		}
	}

	return destinations
}

func extractInterests(lower string) []string {
	seen := make(map[string]bool)
	var interests []string

	for keyword, tag := range interestKeywords {
		if strings.Contains(lower, keyword) && !seen[tag] {
			seen[tag] = true
			interests = append(interests, tag)
		}
	}

	sort.Strings(interests)
	return interests
}

func extractStyle(lower string) string {
	for _, entry := range styleKeywords {
		if strings.Contains(lower, entry.keyword) {
			return entry.style
		}
	}
	return ""
}

func (p *keywordInsightProvider) extractDayCount(lower string) int {
	if m := p.dayPattern.FindStringSubmatch(lower); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil && n > 0 {
			return n
		}
	}

	writtenNumbers := map[string]int{
		"one": 1, "two": 2, "three": 3, "four": 4, "five": 5,
		"six": 6, "seven": 7, "eight": 8, "nine": 9, "ten": 10,
	}
	for word, num := range writtenNumbers {
		if strings.Contains(lower, word+" day") {
			return num
		}
	}

	if strings.Contains(lower, "weekend") {
		return 2
	}
	if strings.Contains(lower, "week") {
		return 7
	}

	return 0
}
