package engine

import (
	"errors"
	"log"
	"time"

	"wayfare/internal/currency"
	"wayfare/pkg/utils"
)

// Request carries everything one scheduling run needs. All collaborator data
// (POI records, interests, rates) is supplied up front; the engine performs
// no I/O of its own.
type Request struct {
	POIs         []RawPOI
	Destinations []string
	TripDays     int
	Budget       *Money
	Interests    []string
	TravelStyle  string
	StartDate    time.Time
}

// Result is the in-memory outcome of one run, ready for a caller to persist.
type Result struct {
	Candidates []Candidate
	Schedule   Assignment
	DayBlocks  []DayBlock
	Text       string
	TotalCost  Money

	// ConversionNote is set when a currency rate was missing and a
	// documented fallback was applied. Never fatal.
	ConversionNote string
}

// Engine is the itinerary scheduling core: candidate scoring, travel-time
// estimation, greedy day assignment and rendering. Side-effect free; safe
// for concurrent use across independent requests.
type Engine struct {
	converter currency.Converter
	speedKmH  float64
	capacity  DayCapacity
}

func New(converter currency.Converter) *Engine {
	return &Engine{
		converter: converter,
		speedKmH:  DefaultTravelSpeedKmH,
		capacity:  DefaultDayCapacity(),
	}
}

// GenerateItinerary runs the full pipeline: pool -> matrix -> scheduler ->
// renderer.
func (e *Engine) GenerateItinerary(req Request) (*Result, error) {
	if req.TripDays < 1 || req.StartDate.IsZero() {
		return nil, utils.ErrInvalidInput
	}
	if len(req.POIs) == 0 {
		return nil, utils.ErrNoSuitableCandidates
	}

	candidates, err := BuildCandidatePool(req.POIs, req.Interests, req.TripDays, e.converter)
	if err != nil {
		return nil, err
	}

	result := &Result{}

	budgetRef, note, err := e.budgetInReference(req.Budget)
	if err != nil {
		return nil, err
	}
	if note != "" {
		result.ConversionNote = note
	}

	matrix := BuildTravelTimeMatrix(candidates, e.speedKmH)

	assignment, err := Schedule(candidates, matrix, req.TripDays, budgetRef, e.capacity)
	if err != nil {
		return nil, err
	}

	totalCost, costNote := e.totalCost(candidates, assignment, req.Budget)
	if costNote != "" && result.ConversionNote == "" {
		result.ConversionNote = costNote
	}

	frame := TripFrame{
		Destinations: req.Destinations,
		StartDate:    req.StartDate,
		TripDays:     req.TripDays,
		TotalCost:    totalCost,
	}

	blocks, err := BuildDayBlocks(candidates, assignment, frame, e.speedKmH)
	if err != nil {
		return nil, err
	}

	result.Candidates = candidates
	result.Schedule = assignment
	result.DayBlocks = blocks
	result.Text = FormatItinerary(blocks, frame, len(assignment.Unplaced))
	result.TotalCost = totalCost

	return result, nil
}

// budgetInReference converts the user budget to the reference currency.
// A missing rate disables the budget cap instead of failing the run; any
// other converter error is propagated.
func (e *Engine) budgetInReference(budget *Money) (*float64, string, error) {
	if budget == nil {
		return nil, "", nil
	}

	converted, err := e.converter.Convert(budget.Amount, budget.Currency, currency.ReferenceCurrency)
	if err != nil {
		if errors.Is(err, currency.ErrRateUnavailable) {
			log.Printf("engine: no %s->%s rate, treating budget as unlimited",
				budget.Currency, currency.ReferenceCurrency)
			return nil, "budget currency rate unavailable; budget not enforced", nil
		}
		return nil, "", err
	}

	return &converted, "", nil
}

// totalCost sums the scheduled candidates in the reference currency and
// converts the sum back to the requester's currency. A missing rate keeps
// the native amount and label.
func (e *Engine) totalCost(candidates []Candidate, assignment Assignment, budget *Money) (Money, string) {
	totalRef := 0.0
	for _, indices := range assignment.Days {
		for _, idx := range indices {
			totalRef += candidates[idx].CostRef
		}
	}

	target := currency.ReferenceCurrency
	if budget != nil && budget.Currency != "" {
		target = budget.Currency
	}

	converted, err := e.converter.Convert(totalRef, currency.ReferenceCurrency, target)
	if err != nil {
		log.Printf("engine: no %s->%s rate, reporting total in %s",
			currency.ReferenceCurrency, target, currency.ReferenceCurrency)
		return Money{Amount: totalRef, Currency: currency.ReferenceCurrency},
			"total cost rate unavailable; reported in " + currency.ReferenceCurrency
	}

	return Money{Amount: converted, Currency: target}, ""
}
