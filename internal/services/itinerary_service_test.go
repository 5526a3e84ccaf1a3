package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wayfare/internal/currency"
	"wayfare/internal/engine"
	"wayfare/internal/models/db_models"
	"wayfare/internal/models/request_models"
	"wayfare/pkg/utils"
)

type fakePOIRepo struct {
	pois       []db_models.POI
	activities []db_models.Activity
	single     *db_models.POI
	activity   *db_models.Activity
	err        error
	deleted    []uuid.UUID
}

func (f *fakePOIRepo) CreatePoi(ctx context.Context, poi *db_models.POI) (uuid.UUID, error) {
	if f.err != nil {
		return uuid.Nil, f.err
	}
	poi.ID = uuid.New()
	f.pois = append(f.pois, *poi)
	return poi.ID, nil
}

func (f *fakePOIRepo) UpdatePoi(ctx context.Context, poi *db_models.POI) error { return f.err }

func (f *fakePOIRepo) Delete(ctx context.Context, id uuid.UUID) error {
	f.deleted = append(f.deleted, id)
	return f.err
}

func (f *fakePOIRepo) GetByID(ctx context.Context, id string) (*db_models.POI, error) {
	return f.single, f.err
}

func (f *fakePOIRepo) List(ctx context.Context, page, pageSize int) ([]db_models.POI, error) {
	return f.pois, f.err
}

func (f *fakePOIRepo) ListByDestinations(ctx context.Context, destinations []string) ([]db_models.POI, error) {
	return f.pois, f.err
}

func (f *fakePOIRepo) ListByTypes(ctx context.Context, types []string, limit int) ([]db_models.POI, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []db_models.POI
	for _, poi := range f.pois {
		if len(out) >= limit {
			break
		}
		if matchesAnyType(poi.Type, types) {
			out = append(out, poi)
		}
	}
	return out, nil
}

func (f *fakePOIRepo) GetActivityByID(ctx context.Context, id string) (*db_models.Activity, error) {
	return f.activity, f.err
}

func (f *fakePOIRepo) ListActivitiesByTypes(ctx context.Context, types []string, limit int) ([]db_models.Activity, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []db_models.Activity
	for _, activity := range f.activities {
		if len(out) >= limit {
			break
		}
		if matchesAnyType(activity.Type, types) {
			out = append(out, activity)
		}
	}
	return out, nil
}

func matchesAnyType(poiType string, types []string) bool {
	for _, t := range types {
		if t != "" && strings.Contains(strings.ToLower(poiType), strings.ToLower(t)) {
			return true
		}
	}
	return false
}

type fakeItineraryRepo struct {
	saved       *db_models.Itinerary
	saveErr     error
	stored      *db_models.Itinerary
	listed      []db_models.Itinerary
	lookupErr   error
	savedID     uuid.UUID
	saveCalled  bool
}

func (f *fakeItineraryRepo) Save(ctx context.Context, itinerary *db_models.Itinerary) (uuid.UUID, error) {
	f.saveCalled = true
	if f.saveErr != nil {
		return uuid.Nil, f.saveErr
	}
	f.saved = itinerary
	if f.savedID == uuid.Nil {
		f.savedID = uuid.New()
	}
	return f.savedID, nil
}

func (f *fakeItineraryRepo) GetByID(ctx context.Context, id string) (*db_models.Itinerary, error) {
	return f.stored, f.lookupErr
}

func (f *fakeItineraryRepo) ListByUserID(ctx context.Context, userID string, page, pageSize int) ([]db_models.Itinerary, error) {
	return f.listed, f.lookupErr
}

func testPOI(name, poiType string, rating float64) db_models.POI {
	return db_models.POI{
		BaseModel: db_models.BaseModel{ID: uuid.New()},
		Name:      name,
		City:      "Paris",
		Country:   "France",
		Type:      poiType,
		Rating:    &rating,
	}
}

func newTestService(poiRepo *fakePOIRepo, itineraryRepo *fakeItineraryRepo) ItineraryServiceInterface {
	planner := engine.New(currency.NewFixedRateConverter())
	return NewItineraryService(poiRepo, itineraryRepo, NewKeywordInsightProvider(), planner)
}

func validRequest() request_models.GenerateItineraryRequest {
	return request_models.GenerateItineraryRequest{
		Destinations: []string{"Paris"},
		StartDate:    "2026-09-07",
		DurationDays: 2,
	}
}

func TestGenerateItinerarySavesResult(t *testing.T) {
	poiRepo := &fakePOIRepo{pois: []db_models.POI{testPOI("Louvre", "museum", 4.8)}}
	itineraryRepo := &fakeItineraryRepo{}
	svc := newTestService(poiRepo, itineraryRepo)

	response, err := svc.GenerateItinerary(context.Background(), uuid.New().String(), validRequest())
	require.NoError(t, err)

	assert.True(t, response.Saved)
	assert.NotEmpty(t, response.ID)
	assert.Contains(t, response.Text, "Louvre")
	require.Len(t, response.Days, 2)

	require.NotNil(t, itineraryRepo.saved)
	assert.Equal(t, 2, itineraryRepo.saved.DurationDays)
	require.Len(t, itineraryRepo.saved.Days, 2)
	require.Len(t, itineraryRepo.saved.Days[0].Visits, 1)
	assert.Equal(t, "Louvre", itineraryRepo.saved.Days[0].Visits[0].POIName)
	assert.Equal(t, poiRepo.pois[0].ID, itineraryRepo.saved.Days[0].Visits[0].POIID)
	assert.True(t, itineraryRepo.saved.Days[1].IsFree)
}

func TestGenerateItinerarySaveFailureKeepsResult(t *testing.T) {
	poiRepo := &fakePOIRepo{pois: []db_models.POI{testPOI("Louvre", "museum", 4.8)}}
	itineraryRepo := &fakeItineraryRepo{saveErr: errors.New("connection refused")}
	svc := newTestService(poiRepo, itineraryRepo)

	response, err := svc.GenerateItinerary(context.Background(), uuid.New().String(), validRequest())
	require.NoError(t, err)

	assert.True(t, itineraryRepo.saveCalled)
	assert.False(t, response.Saved)
	assert.Empty(t, response.ID)
	assert.Contains(t, response.Text, "Louvre")
}

func TestGenerateItineraryQueryFillsGaps(t *testing.T) {
	poiRepo := &fakePOIRepo{pois: []db_models.POI{testPOI("Louvre", "museum", 4.8)}}
	itineraryRepo := &fakeItineraryRepo{}
	svc := newTestService(poiRepo, itineraryRepo)

	req := request_models.GenerateItineraryRequest{
		StartDate: "2026-09-07",
		Query:     "3 days in paris with museums",
	}

	response, err := svc.GenerateItinerary(context.Background(), uuid.New().String(), req)
	require.NoError(t, err)

	assert.Equal(t, 3, response.DurationDays)
	assert.Equal(t, []string{"paris"}, response.Destinations)
	assert.Len(t, response.Days, 3)
}

func TestGenerateItineraryExplicitFieldsWin(t *testing.T) {
	poiRepo := &fakePOIRepo{pois: []db_models.POI{testPOI("Louvre", "museum", 4.8)}}
	itineraryRepo := &fakeItineraryRepo{}
	svc := newTestService(poiRepo, itineraryRepo)

	req := validRequest()
	req.DurationDays = 5
	req.Query = "3 days in rome"

	response, err := svc.GenerateItinerary(context.Background(), uuid.New().String(), req)
	require.NoError(t, err)

	assert.Equal(t, 5, response.DurationDays)
	assert.Equal(t, []string{"Paris"}, response.Destinations)
}

func TestGenerateItineraryValidation(t *testing.T) {
	poiRepo := &fakePOIRepo{pois: []db_models.POI{testPOI("Louvre", "museum", 4.8)}}
	svc := newTestService(poiRepo, &fakeItineraryRepo{})
	userID := uuid.New().String()

	req := validRequest()
	req.Destinations = nil
	_, err := svc.GenerateItinerary(context.Background(), userID, req)
	assert.ErrorIs(t, err, utils.ErrInvalidInput)

	req = validRequest()
	req.DurationDays = 0
	_, err = svc.GenerateItinerary(context.Background(), userID, req)
	assert.ErrorIs(t, err, utils.ErrInvalidInput)

	req = validRequest()
	req.StartDate = "next monday"
	_, err = svc.GenerateItinerary(context.Background(), userID, req)
	assert.ErrorIs(t, err, utils.ErrInvalidInput)
}

func TestGenerateItineraryNoLocations(t *testing.T) {
	svc := newTestService(&fakePOIRepo{}, &fakeItineraryRepo{})

	_, err := svc.GenerateItinerary(context.Background(), uuid.New().String(), validRequest())
	assert.ErrorIs(t, err, utils.ErrNoLocationsFound)
}

func TestGenerateItineraryRepoError(t *testing.T) {
	poiRepo := &fakePOIRepo{err: errors.New("connection refused")}
	svc := newTestService(poiRepo, &fakeItineraryRepo{})

	_, err := svc.GenerateItinerary(context.Background(), uuid.New().String(), validRequest())
	assert.ErrorIs(t, err, utils.ErrDatabaseError)
}

func TestGetItineraryByID(t *testing.T) {
	stored := &db_models.Itinerary{BaseModel: db_models.BaseModel{ID: uuid.New()}}
	itineraryRepo := &fakeItineraryRepo{stored: stored}
	svc := newTestService(&fakePOIRepo{}, itineraryRepo)

	got, err := svc.GetItineraryByID(context.Background(), stored.ID.String())
	require.NoError(t, err)
	assert.Equal(t, stored.ID, got.ID)

	itineraryRepo.stored = nil
	_, err = svc.GetItineraryByID(context.Background(), uuid.New().String())
	assert.ErrorIs(t, err, utils.ErrItineraryNotFound)

	itineraryRepo.lookupErr = errors.New("connection refused")
	_, err = svc.GetItineraryByID(context.Background(), uuid.New().String())
	assert.ErrorIs(t, err, utils.ErrDatabaseError)
}

func TestListItinerariesByUser(t *testing.T) {
	itineraryRepo := &fakeItineraryRepo{
		listed: []db_models.Itinerary{
			{
				BaseModel:         db_models.BaseModel{ID: uuid.New()},
				Destinations:      []string{"Paris"},
				DurationDays:      3,
				TotalCost:         120.5,
				TotalCostCurrency: "EUR",
			},
		},
	}
	svc := newTestService(&fakePOIRepo{}, itineraryRepo)

	summaries, err := svc.ListItinerariesByUser(context.Background(), uuid.New().String(), 1, 10)
	require.NoError(t, err)
	require.Len(t, summaries, 1)

	assert.Equal(t, []string{"Paris"}, summaries[0].Destinations)
	assert.Equal(t, 3, summaries[0].DurationDays)
	assert.Equal(t, 120.5, summaries[0].TotalCost)
	assert.Equal(t, "EUR", summaries[0].Currency)
}
