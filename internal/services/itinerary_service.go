package services

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"wayfare/internal/engine"
	"wayfare/internal/models/db_models"
	"wayfare/internal/models/request_models"
	"wayfare/internal/models/response_models"
	"wayfare/internal/repositories"
	"wayfare/pkg/utils"
)

type ItineraryServiceInterface interface {
	GenerateItinerary(ctx context.Context, userID string, req request_models.GenerateItineraryRequest) (*response_models.ItineraryResponse, error)
	GetItineraryByID(ctx context.Context, itineraryID string) (*db_models.Itinerary, error)
	ListItinerariesByUser(ctx context.Context, userID string, page, pageSize int) ([]response_models.ItinerarySummary, error)
}

type ItineraryService struct {
	poiRepo       repositories.POIRepository
	itineraryRepo repositories.ItineraryRepository
	insights      TextInsightProvider
	engine        *engine.Engine
}

func NewItineraryService(
	poiRepo repositories.POIRepository,
	itineraryRepo repositories.ItineraryRepository,
	insights TextInsightProvider,
	planner *engine.Engine,
) ItineraryServiceInterface {
	return &ItineraryService{
		poiRepo:       poiRepo,
		itineraryRepo: itineraryRepo,
		insights:      insights,
		engine:        planner,
	}
}

// GenerateItinerary resolves candidate POIs for the requested destinations,
// runs the scheduling engine and persists the result. A failed save does not
// discard the generated itinerary; the response carries saved=false instead.
func (s *ItineraryService) GenerateItinerary(
	ctx context.Context,
	userID string,
	req request_models.GenerateItineraryRequest,
) (*response_models.ItineraryResponse, error) {

	req = s.applyInsights(req)

	if len(req.Destinations) == 0 || req.DurationDays < 1 {
		return nil, utils.ErrInvalidInput
	}
	startDate := utils.ParseTripDate(req.StartDate)
	if startDate.IsZero() {
		return nil, utils.ErrInvalidInput
	}

	pois, err := s.poiRepo.ListByDestinations(ctx, req.Destinations)
	if err != nil {
		log.Printf("Error loading POIs for %v: %v", req.Destinations, err)
		return nil, utils.ErrDatabaseError
	}
	if len(pois) == 0 {
		return nil, utils.ErrNoLocationsFound
	}

	engineReq := engine.Request{
		POIs:         toRawPOIs(pois),
		Destinations: req.Destinations,
		TripDays:     req.DurationDays,
		Interests:    req.Interests,
		TravelStyle:  req.TravelStyle,
		StartDate:    startDate,
	}
	if req.Budget != nil {
		engineReq.Budget = &engine.Money{Amount: *req.Budget, Currency: req.BudgetCurrency}
	}

	result, err := s.engine.GenerateItinerary(engineReq)
	if err != nil {
		return nil, err
	}

	response := &response_models.ItineraryResponse{
		Destinations:   req.Destinations,
		StartDate:      req.StartDate,
		DurationDays:   req.DurationDays,
		Days:           result.DayBlocks,
		Text:           result.Text,
		TotalCost:      result.TotalCost,
		ConversionNote: result.ConversionNote,
	}

	record := buildItineraryRecord(userID, req, startDate, result)
	savedID, err := s.itineraryRepo.Save(ctx, record)
	if err != nil {
		// The generated itinerary stays usable even when the save fails.
		log.Printf("Error saving itinerary: %v", err)
		return response, nil
	}

	response.ID = savedID.String()
	response.Saved = true
	return response, nil
}

func (s *ItineraryService) GetItineraryByID(ctx context.Context, itineraryID string) (*db_models.Itinerary, error) {
	itinerary, err := s.itineraryRepo.GetByID(ctx, itineraryID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if itinerary == nil {
		return nil, utils.ErrItineraryNotFound
	}
	return itinerary, nil
}

func (s *ItineraryService) ListItinerariesByUser(ctx context.Context, userID string, page, pageSize int) ([]response_models.ItinerarySummary, error) {
	itineraries, err := s.itineraryRepo.ListByUserID(ctx, userID, page, pageSize)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.ItinerarySummary, 0, len(itineraries))
	for _, itinerary := range itineraries {
		out = append(out, response_models.ItinerarySummary{
			ID:           itinerary.ID.String(),
			Destinations: itinerary.Destinations,
			StartDate:    utils.FormatTripDate(itinerary.StartDate),
			DurationDays: itinerary.DurationDays,
			TotalCost:    itinerary.TotalCost,
			Currency:     itinerary.TotalCostCurrency,
		})
	}
	return out, nil
}

// applyInsights fills gaps in a structured request from the free-text query,
// if one was given. Explicit fields always win.
func (s *ItineraryService) applyInsights(req request_models.GenerateItineraryRequest) request_models.GenerateItineraryRequest {
	if req.Query == "" {
		return req
	}

	insights := s.insights.ExtractInsights(req.Query)
	if len(req.Destinations) == 0 {
		req.Destinations = insights.Destinations
	}
	if len(req.Interests) == 0 {
		req.Interests = insights.Interests
	}
	if req.TravelStyle == "" {
		req.TravelStyle = insights.TravelStyle
	}
	if req.DurationDays == 0 && insights.DurationDays > 0 {
		req.DurationDays = insights.DurationDays
	}

	return req
}

func toRawPOIs(pois []db_models.POI) []engine.RawPOI {
	raw := make([]engine.RawPOI, 0, len(pois))
	for _, poi := range pois {
		record := engine.RawPOI{
			ID:           poi.ID.String(),
			Name:         poi.Name,
			Type:         poi.Type,
			Latitude:     poi.Latitude,
			Longitude:    poi.Longitude,
			Rating:       poi.Rating,
			Description:  poi.Description,
			OpeningHours: poi.OpeningHours,
		}

		if poi.Cost != nil {
			record.Cost = &engine.Money{Amount: *poi.Cost, Currency: poi.CostCurrency}
		}

		if len(poi.Activities) > 0 {
			record.ActivityName = poi.Activities[0].Name
			record.ActivityDescription = poi.Activities[0].Description
		}

		raw = append(raw, record)
	}
	return raw
}

func buildItineraryRecord(
	userID string,
	req request_models.GenerateItineraryRequest,
	startDate time.Time,
	result *engine.Result,
) *db_models.Itinerary {

	record := &db_models.Itinerary{
		Destinations:      req.Destinations,
		Interests:         req.Interests,
		TravelStyle:       req.TravelStyle,
		StartDate:         startDate,
		EndDate:           startDate.AddDate(0, 0, req.DurationDays-1),
		DurationDays:      req.DurationDays,
		TotalCost:         result.TotalCost.Amount,
		TotalCostCurrency: result.TotalCost.Currency,
		RenderedText:      result.Text,
	}

	if parsed, err := uuid.Parse(userID); err == nil {
		record.UserID = parsed
	}

	for _, block := range result.DayBlocks {
		day := db_models.ItineraryDay{
			DayNumber: block.Day,
			Date:      block.Date,
			IsFree:    block.Free,
		}
		for order, visit := range block.Visits {
			dayVisit := db_models.ItineraryVisit{
				VisitOrder:   order,
				ArrivalTime:  visit.ArrivalTime,
				POIName:      visit.POIName,
				ActivityName: visit.ActivityName,
			}
			if poiID, err := uuid.Parse(result.Candidates[visit.CandidateIndex].ID); err == nil {
				dayVisit.POIID = poiID
			}
			day.Visits = append(day.Visits, dayVisit)
		}
		record.Days = append(record.Days, day)
	}

	return record
}
