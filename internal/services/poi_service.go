package services

import (
	"context"
	"log"

	"github.com/google/uuid"

	"wayfare/internal/models/db_models"
	"wayfare/internal/models/request_models"
	"wayfare/internal/models/response_models"
	"wayfare/internal/repositories"
	"wayfare/pkg/utils"
)

type POIServiceInterface interface {
	GetPOIById(ctx context.Context, id string) (response_models.POI, error)
	SearchByDestination(ctx context.Context, destinations []string) ([]response_models.POI, error)
	CreatePoi(ctx context.Context, req request_models.CreatePoiRequest) error
	UpdatePoi(ctx context.Context, req request_models.UpdatePoiRequest) error
	DeletePoi(ctx context.Context, id uuid.UUID) error
	ListPois(ctx context.Context, page, pageSize int) ([]response_models.POI, error)
}

type PoiService struct {
	poiRepository repositories.POIRepository
}

func NewPOIService(poiRepository repositories.POIRepository) POIServiceInterface {
	return &PoiService{
		poiRepository: poiRepository,
	}
}

func (p *PoiService) GetPOIById(ctx context.Context, id string) (response_models.POI, error) {
	poi, err := p.poiRepository.GetByID(ctx, id)
	if err != nil {
		return response_models.POI{}, utils.ErrDatabaseError
	}
	if poi == nil {
		return response_models.POI{}, utils.ErrPOINotFound
	}
	return toPOIResponse(*poi), nil
}

func (p *PoiService) SearchByDestination(ctx context.Context, destinations []string) ([]response_models.POI, error) {
	pois, err := p.poiRepository.ListByDestinations(ctx, destinations)
	if err != nil {
		log.Printf("Error searching POIs: %v", err)
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.POI, 0, len(pois))
	for _, poi := range pois {
		out = append(out, toPOIResponse(poi))
	}
	return out, nil
}

func (p *PoiService) CreatePoi(ctx context.Context, req request_models.CreatePoiRequest) error {
	newPOI := &db_models.POI{
		Name:         req.Name,
		City:         req.City,
		Country:      req.Country,
		Type:         req.Type,
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
		Rating:       req.Rating,
		Cost:         req.Cost,
		CostCurrency: req.CostCurrency,
		Description:  req.Description,
		OpeningHours: req.OpeningHours,
	}

	if _, err := p.poiRepository.CreatePoi(ctx, newPOI); err != nil {
		log.Printf("Error creating POI: %v", err)
		return utils.ErrDatabaseError
	}
	return nil
}

func (p *PoiService) UpdatePoi(ctx context.Context, req request_models.UpdatePoiRequest) error {
	existingPOI, err := p.poiRepository.GetByID(ctx, req.ID.String())
	if err != nil {
		log.Printf("Error fetching POI: %v", err)
		return utils.ErrDatabaseError
	}
	if existingPOI == nil {
		return utils.ErrPOINotFound
	}

	existingPOI.Name = req.Name
	existingPOI.City = req.City
	existingPOI.Country = req.Country
	existingPOI.Type = req.Type
	existingPOI.Latitude = req.Latitude
	existingPOI.Longitude = req.Longitude
	existingPOI.Rating = req.Rating
	existingPOI.Cost = req.Cost
	existingPOI.CostCurrency = req.CostCurrency
	existingPOI.Description = req.Description
	existingPOI.OpeningHours = req.OpeningHours

	if err := p.poiRepository.UpdatePoi(ctx, existingPOI); err != nil {
		log.Printf("Error updating POI: %v", err)
		return utils.ErrDatabaseError
	}
	return nil
}

func (p *PoiService) DeletePoi(ctx context.Context, id uuid.UUID) error {
	existingPOI, err := p.poiRepository.GetByID(ctx, id.String())
	if err != nil {
		log.Printf("Error fetching POI: %v", err)
		return utils.ErrDatabaseError
	}
	if existingPOI == nil {
		return utils.ErrPOINotFound
	}

	if err := p.poiRepository.Delete(ctx, id); err != nil {
		log.Printf("Error deleting POI: %v", err)
		return utils.ErrDatabaseError
	}
	return nil
}

func (p *PoiService) ListPois(ctx context.Context, page, pageSize int) ([]response_models.POI, error) {
	pois, err := p.poiRepository.List(ctx, page, pageSize)
	if err != nil {
		log.Printf("Error listing POIs: %v", err)
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.POI, 0, len(pois))
	for _, poi := range pois {
		out = append(out, toPOIResponse(poi))
	}
	return out, nil
}

func toPOIResponse(poi db_models.POI) response_models.POI {
	return response_models.POI{
		ID:           poi.ID.String(),
		Name:         poi.Name,
		City:         poi.City,
		Country:      poi.Country,
		Type:         poi.Type,
		Latitude:     poi.Latitude,
		Longitude:    poi.Longitude,
		Rating:       poi.Rating,
		Cost:         poi.Cost,
		CostCurrency: poi.CostCurrency,
		Description:  poi.Description,
		OpeningHours: poi.OpeningHours,
	}
}
