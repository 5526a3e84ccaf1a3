package engine

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wayfare/internal/currency"
	"wayfare/pkg/utils"
)

func floatPtr(v float64) *float64 { return &v }

func TestVisitDurationForType(t *testing.T) {
	assert.Equal(t, 2.0, VisitDurationForType("museum"))
	assert.Equal(t, 2.0, VisitDurationForType("  Museum "))
	assert.Equal(t, 4.0, VisitDurationForType("hiking"))
	assert.Equal(t, 1.5, VisitDurationForType("planetarium"))
	assert.Equal(t, 1.5, VisitDurationForType(""))
}

func TestBuildCandidatePoolEmptyInput(t *testing.T) {
	conv := currency.NewFixedRateConverter()

	_, err := BuildCandidatePool(nil, nil, 3, conv)
	assert.ErrorIs(t, err, utils.ErrNoSuitableCandidates)
}

func TestBuildCandidatePoolScoring(t *testing.T) {
	conv := currency.NewFixedRateConverter()

	pois := []RawPOI{
		{
			ID:     "a",
			Name:   "City Museum",
			Type:   "museum",
			Rating: floatPtr(5.0),
		},
		{
			ID:     "b",
			Name:   "Overpriced Lounge",
			Type:   "nightlife",
			Rating: floatPtr(2.5),
			Cost:   &Money{Amount: 1000, Currency: "RUB"},
		},
	}

	candidates, err := BuildCandidatePool(pois, []string{"museum"}, 1, conv)
	require.NoError(t, err)
	require.Len(t, candidates, 2)

	// Interest match 1 + full rating: 1.0 + 0.5.
	assert.Equal(t, "a", candidates[0].ID)
	assert.InDelta(t, 1.5, candidates[0].Score, 1e-9)

	// No interest match, half rating, full cost penalty: 0.25 - 0.2.
	assert.Equal(t, "b", candidates[1].ID)
	assert.InDelta(t, 0.05, candidates[1].Score, 1e-9)
}

func TestBuildCandidatePoolInterestMatchesNameAndDescription(t *testing.T) {
	conv := currency.NewFixedRateConverter()

	pois := []RawPOI{
		{ID: "a", Name: "Riverside Walk", Type: "park", Description: "Great for photography lovers."},
		{ID: "b", Name: "Old Mill", Type: "attraction"},
	}

	candidates, err := BuildCandidatePool(pois, []string{"photography", "park"}, 1, conv)
	require.NoError(t, err)
	require.Len(t, candidates, 2)

	// Type match plus a description keyword match.
	assert.Equal(t, "a", candidates[0].ID)
	assert.InDelta(t, 2.0, candidates[0].Score, 1e-9)
	assert.InDelta(t, 0.0, candidates[1].Score, 1e-9)
}

func TestBuildCandidatePoolCostConversion(t *testing.T) {
	conv := currency.NewFixedRateConverter()

	pois := []RawPOI{
		{ID: "usd", Name: "Dollar Tour", Type: "tour", Cost: &Money{Amount: 10, Currency: "USD"}},
		{ID: "rub", Name: "Ruble Tour", Type: "tour", Cost: &Money{Amount: 450, Currency: "RUB"}},
		{ID: "free", Name: "Free Walk", Type: "park"},
	}

	candidates, err := BuildCandidatePool(pois, nil, 1, conv)
	require.NoError(t, err)
	require.Len(t, candidates, 3)

	byID := make(map[string]Candidate, len(candidates))
	for _, cand := range candidates {
		byID[cand.ID] = cand
	}

	assert.InDelta(t, 900, byID["usd"].CostRef, 1e-9)
	assert.True(t, byID["usd"].CostConverted)
	assert.InDelta(t, 450, byID["rub"].CostRef, 1e-9)
	assert.Equal(t, 0.0, byID["free"].CostRef)
	assert.True(t, byID["free"].CostConverted)
}

func TestBuildCandidatePoolUnknownCurrencyKeepsNativeAmount(t *testing.T) {
	conv := currency.NewFixedRateConverter()

	pois := []RawPOI{
		{ID: "a", Name: "Mystery Ride", Type: "attraction", Cost: &Money{Amount: 300, Currency: "XYZ"}},
	}

	candidates, err := BuildCandidatePool(pois, nil, 1, conv)
	require.NoError(t, err)
	require.Len(t, candidates, 1)

	assert.InDelta(t, 300, candidates[0].CostRef, 1e-9)
	assert.False(t, candidates[0].CostConverted)
	require.NotNil(t, candidates[0].CostNative)
	assert.Equal(t, "XYZ", candidates[0].CostNative.Currency)
}

func TestBuildCandidatePoolDeterministicTieBreak(t *testing.T) {
	conv := currency.NewFixedRateConverter()

	// All identical scores; ordering must fall through cost, then name.
	pois := []RawPOI{
		{ID: "3", Name: "Bravo", Type: "park", Cost: &Money{Amount: 100, Currency: "RUB"}},
		{ID: "1", Name: "Alpha", Type: "park", Cost: &Money{Amount: 100, Currency: "RUB"}},
		{ID: "2", Name: "Alpha", Type: "park", Cost: &Money{Amount: 50, Currency: "RUB"}},
	}

	candidates, err := BuildCandidatePool(pois, nil, 1, conv)
	require.NoError(t, err)
	require.Len(t, candidates, 3)

	assert.Equal(t, "2", candidates[0].ID)
	assert.Equal(t, "1", candidates[1].ID)
	assert.Equal(t, "3", candidates[2].ID)
}

func TestBuildCandidatePoolCap(t *testing.T) {
	conv := currency.NewFixedRateConverter()

	pois := make([]RawPOI, 0, 30)
	for i := 0; i < 30; i++ {
		pois = append(pois, RawPOI{
			ID:     fmt.Sprintf("poi-%02d", i),
			Name:   fmt.Sprintf("Spot %02d", i),
			Type:   "attraction",
			Rating: floatPtr(float64(i % 5)),
		})
	}

	oneDay, err := BuildCandidatePool(pois, nil, 1, conv)
	require.NoError(t, err)
	assert.Len(t, oneDay, 10) // floor of ten even for short trips

	twoDays, err := BuildCandidatePool(pois, nil, 2, conv)
	require.NoError(t, err)
	assert.Len(t, twoDays, 16)

	// Cap keeps the strongest candidates: everything kept must score at
	// least as high as everything dropped.
	all, err := BuildCandidatePool(pois, nil, 10, conv)
	require.NoError(t, err)
	require.Len(t, all, 30)
	assert.GreaterOrEqual(t, twoDays[15].Score, all[16].Score)
}
