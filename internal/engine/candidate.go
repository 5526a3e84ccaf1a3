package engine

import (
	"errors"
	"sort"
	"strings"

	"wayfare/internal/currency"
	"wayfare/pkg/utils"
)

// Scoring weights for candidate ranking.
const (
	InterestWeight = 1.0
	RatingWeight   = 0.5
	CostWeight     = 0.2
)

const defaultVisitHours = 1.5

// Typical visit durations per category, in hours.
var visitDurationsByType = map[string]float64{
	"museum":       2.0,
	"park":         1.5,
	"restaurant":   1.5,
	"cafe":         1.0,
	"attraction":   1.0,
	"tour":         2.5,
	"activity":     1.5,
	"shopping":     1.5,
	"nightlife":    3.0,
	"religion":     1.0,
	"architecture": 0.5,
	"art":          2.0,
	"nature":       2.0,
	"animals":      2.0,
	"photography":  1.5,
	"beach":        3.0,
	"relax":        2.0,
	"sport":        2.0,
	"music":        2.5,
	"culture":      2.0,
	"wine":         3.0,
	"tasting":      1.5,
	"hiking":       4.0,
	"food":         1.5,
	"history":      1.5,
}

// VisitDurationForType looks up the typical visit length for a POI category.
func VisitDurationForType(poiType string) float64 {
	if hours, ok := visitDurationsByType[strings.ToLower(strings.TrimSpace(poiType))]; ok {
		return hours
	}
	return defaultVisitHours
}

// Money is an amount tagged with an ISO-ish currency code.
type Money struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

// RawPOI is one schedulable record as supplied by the POI repository.
type RawPOI struct {
	ID           string
	Name         string
	Type         string
	Latitude     float64
	Longitude    float64
	Rating       *float64
	Cost         *Money
	Description  string
	OpeningHours string

	// Optional activity tied to this location. Rendering prefers the
	// activity's name and description when present.
	ActivityName        string
	ActivityDescription string
}

// Candidate is a scored, cost-normalized POI eligible for scheduling.
// Immutable for the duration of one run.
type Candidate struct {
	ID        string
	Name      string
	Type      string
	Latitude  float64
	Longitude float64

	Score      float64
	VisitHours float64

	// CostRef is the cost converted to the reference currency. When the
	// conversion rate is missing the native amount is kept instead and
	// CostConverted is false.
	CostRef       float64
	CostNative    *Money
	CostConverted bool

	Rating       float64
	OpeningHours []OpeningWindow

	Description         string
	ActivityName        string
	ActivityDescription string
}

// BuildCandidatePool scores and cost-normalizes the raw POI records, then
// keeps the strongest candidates up to the pool cap for the trip length.
//
// score = InterestWeight*interestMatch + RatingWeight*normRating - CostWeight*normCost
//
// Rating and cost are normalized to [0,1] across the pool. Ordering is fully
// deterministic: score desc, cost asc, name asc, id asc.
func BuildCandidatePool(
	pois []RawPOI,
	interests []string,
	tripDays int,
	conv currency.Converter,
) ([]Candidate, error) {
	if len(pois) == 0 {
		return nil, utils.ErrNoSuitableCandidates
	}

	interestSet := make(map[string]struct{}, len(interests))
	for _, tag := range interests {
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag != "" {
			interestSet[tag] = struct{}{}
		}
	}

	candidates := make([]Candidate, 0, len(pois))
	maxRating := 0.0
	maxCost := 0.0

	for _, poi := range pois {
		cand := Candidate{
			ID:                  poi.ID,
			Name:                poi.Name,
			Type:                poi.Type,
			Latitude:            poi.Latitude,
			Longitude:           poi.Longitude,
			VisitHours:          VisitDurationForType(poi.Type),
			OpeningHours:        ParseOpeningHours(poi.OpeningHours),
			Description:         poi.Description,
			ActivityName:        poi.ActivityName,
			ActivityDescription: poi.ActivityDescription,
		}

		if poi.Rating != nil {
			cand.Rating = *poi.Rating
		}

		if poi.Cost != nil && poi.Cost.Amount > 0 {
			cand.CostNative = poi.Cost
			converted, err := conv.Convert(poi.Cost.Amount, poi.Cost.Currency, currency.ReferenceCurrency)
			if err == nil {
				cand.CostRef = converted
				cand.CostConverted = true
			} else if errors.Is(err, currency.ErrRateUnavailable) {
				cand.CostRef = poi.Cost.Amount
			} else {
				return nil, err
			}
		} else {
			cand.CostConverted = true
		}

		if cand.Rating > maxRating {
			maxRating = cand.Rating
		}
		if cand.CostRef > maxCost {
			maxCost = cand.CostRef
		}

		candidates = append(candidates, cand)
	}

	for i := range candidates {
		match := interestMatch(&candidates[i], interestSet)

		normRating := 0.0
		if maxRating > 0 {
			normRating = candidates[i].Rating / maxRating
		}
		normCost := 0.0
		if maxCost > 0 {
			normCost = candidates[i].CostRef / maxCost
		}

		candidates[i].Score = InterestWeight*match + RatingWeight*normRating - CostWeight*normCost
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		if a.CostRef != b.CostRef {
			return a.CostRef < b.CostRef
		}
		if a.Name != b.Name {
			return a.Name < b.Name
		}
		return a.ID < b.ID
	})

	limit := poolCap(tripDays)
	if len(candidates) > limit {
		candidates = candidates[:limit]
	}

	return candidates, nil
}

// interestMatch counts overlap between the requester's interest tags and the
// candidate's category and name keywords.
func interestMatch(cand *Candidate, interests map[string]struct{}) float64 {
	if len(interests) == 0 {
		return 0
	}

	match := 0.0
	poiType := strings.ToLower(cand.Type)
	if _, ok := interests[poiType]; ok && poiType != "" {
		match++
	}

	haystack := strings.ToLower(cand.Name + " " + cand.Description + " " + cand.ActivityName)
	for tag := range interests {
		if tag == poiType {
			continue
		}
		if strings.Contains(haystack, tag) {
			match++
		}
	}

	return match
}

// Candidate pools are capped so the O(days x candidates^2) scheduler stays
// cheap: roughly eight slots per trip day, never fewer than ten.
func poolCap(tripDays int) int {
	limit := tripDays * 8
	if limit < 10 {
		limit = 10
	}
	return limit
}
