package engine

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wayfare/internal/currency"
	"wayfare/pkg/utils"
)

func testEngine() *Engine {
	return New(currency.NewFixedRateConverter())
}

func testRequest(pois []RawPOI, days int) Request {
	return Request{
		POIs:         pois,
		Destinations: []string{"Porto"},
		TripDays:     days,
		StartDate:    time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC),
	}
}

func TestGenerateItineraryValidation(t *testing.T) {
	pois := []RawPOI{{ID: "a", Name: "Spot", Type: "park"}}

	_, err := testEngine().GenerateItinerary(testRequest(pois, 0))
	assert.ErrorIs(t, err, utils.ErrInvalidInput)

	req := testRequest(pois, 2)
	req.StartDate = time.Time{}
	_, err = testEngine().GenerateItinerary(req)
	assert.ErrorIs(t, err, utils.ErrInvalidInput)

	_, err = testEngine().GenerateItinerary(testRequest(nil, 2))
	assert.ErrorIs(t, err, utils.ErrNoSuitableCandidates)
}

func TestGenerateItinerarySingleFreePOI(t *testing.T) {
	pois := []RawPOI{
		{ID: "a", Name: "Harbor Walk", Type: "park", Rating: floatPtr(5.0)},
	}

	result, err := testEngine().GenerateItinerary(testRequest(pois, 1))
	require.NoError(t, err)

	assert.Equal(t, []int{0}, result.Schedule.Days[1])
	assert.Empty(t, result.Schedule.Unplaced)
	assert.Contains(t, result.Text, "- 09:00 Harbor Walk")
	assert.Equal(t, 0.0, result.TotalCost.Amount)
	assert.Empty(t, result.ConversionNote)
}

func TestGenerateItineraryBudgetInUserCurrency(t *testing.T) {
	// 10 USD converts to 900 RUB; the two 500 RUB stops cannot both fit.
	pois := []RawPOI{
		{ID: "a", Name: "Gallery", Type: "art", Rating: floatPtr(5.0), Cost: &Money{Amount: 500, Currency: "RUB"}},
		{ID: "b", Name: "Boat Tour", Type: "tour", Rating: floatPtr(4.0), Cost: &Money{Amount: 500, Currency: "RUB"}},
	}

	req := testRequest(pois, 2)
	req.Budget = &Money{Amount: 10, Currency: "USD"}

	result, err := testEngine().GenerateItinerary(req)
	require.NoError(t, err)

	assert.Equal(t, 1, result.Schedule.TotalPlaced())
	assert.Len(t, result.Schedule.Unplaced, 1)

	// Total cost reported back in the budget currency.
	assert.Equal(t, "USD", result.TotalCost.Currency)
	assert.InDelta(t, 500.0/90.0, result.TotalCost.Amount, 1e-9)
	assert.Contains(t, result.Text, "1 place(s) did not fit into the 2-day trip.")
}

func TestGenerateItineraryUnknownBudgetCurrency(t *testing.T) {
	pois := []RawPOI{
		{ID: "a", Name: "Gallery", Type: "art", Cost: &Money{Amount: 500, Currency: "RUB"}},
		{ID: "b", Name: "Boat Tour", Type: "tour", Cost: &Money{Amount: 500, Currency: "RUB"}},
	}

	req := testRequest(pois, 1)
	req.Budget = &Money{Amount: 1, Currency: "JPY"}

	result, err := testEngine().GenerateItinerary(req)
	require.NoError(t, err)

	// Budget unenforceable: both stops scheduled, fallback noted, total
	// reported in the reference currency.
	assert.Equal(t, 2, result.Schedule.TotalPlaced())
	assert.Equal(t, "budget currency rate unavailable; budget not enforced", result.ConversionNote)
	assert.Equal(t, "RUB", result.TotalCost.Currency)
	assert.InDelta(t, 1000, result.TotalCost.Amount, 1e-9)
}

type failingConverter struct {
	err error
}

func (f failingConverter) Convert(amount float64, from, to string) (float64, error) {
	return 0, f.err
}

func TestGenerateItineraryConverterFailurePropagates(t *testing.T) {
	// Errors other than a missing rate must surface, not silently
	// disable the budget.
	convErr := errors.New("rate backend unreachable")
	planner := New(failingConverter{err: convErr})

	pois := []RawPOI{{ID: "a", Name: "Harbor Walk", Type: "park"}}
	req := testRequest(pois, 1)
	req.Budget = &Money{Amount: 100, Currency: "USD"}

	_, err := planner.GenerateItinerary(req)
	assert.ErrorIs(t, err, convErr)
}

func TestGenerateItineraryZeroBudget(t *testing.T) {
	pois := []RawPOI{
		{ID: "a", Name: "Gallery", Type: "art", Cost: &Money{Amount: 500, Currency: "RUB"}},
	}

	req := testRequest(pois, 1)
	req.Budget = &Money{Amount: 0, Currency: "RUB"}

	_, err := testEngine().GenerateItinerary(req)
	assert.ErrorIs(t, err, utils.ErrGenerationFailed)
}

func TestGenerateItineraryFreeDaysRendered(t *testing.T) {
	pois := []RawPOI{
		{ID: "a", Name: "Old Town Walk", Type: "park", Rating: floatPtr(4.5)},
	}

	result, err := testEngine().GenerateItinerary(testRequest(pois, 3))
	require.NoError(t, err)

	require.Len(t, result.DayBlocks, 3)
	assert.True(t, result.DayBlocks[1].Free)
	assert.True(t, result.DayBlocks[2].Free)
	assert.Contains(t, result.Text, "Day 2 (Tuesday): free day, nothing scheduled.")
	assert.Contains(t, result.Text, "Total duration: 3 days.")
}

func TestGenerateItineraryDeterministic(t *testing.T) {
	pois := []RawPOI{
		{ID: "c", Name: "Charlie", Type: "museum", Rating: floatPtr(4.0), Latitude: 0.01},
		{ID: "a", Name: "Alpha", Type: "museum", Rating: floatPtr(4.0), Latitude: 0.02},
		{ID: "b", Name: "Bravo", Type: "park", Rating: floatPtr(3.0), Latitude: 0.03},
	}

	req := testRequest(pois, 2)
	req.Interests = []string{"museum"}

	first, err := testEngine().GenerateItinerary(req)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		again, err := testEngine().GenerateItinerary(req)
		require.NoError(t, err)
		assert.Equal(t, first.Text, again.Text)
		assert.Equal(t, first.Schedule.Days, again.Schedule.Days)
	}
}
