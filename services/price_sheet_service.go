// services/price_sheet_service.go
package services

import (
	"errors"
	"log"
	"time"

	"cotizapro-backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FlatPriceSheetLine is one display-ready row of a price sheet. The exposed
// id is the service id; sheet entries are not independently addressable.
// Name, description and category stay null when the referenced service no
// longer exists in the catalog.
type FlatPriceSheetLine struct {
	ID          uuid.UUID `json:"id"`
	Name        *string   `json:"name"`
	Description *string   `json:"description"`
	Category    *string   `json:"category"`
	Price       float64   `json:"price"`
}

// FlatPriceSheetView joins a stored price sheet against the catalog.
type FlatPriceSheetView struct {
	ID          uuid.UUID            `json:"id"`
	Name        string               `json:"name"`
	Description string               `json:"description"`
	Active      bool                 `json:"active"`
	Services    []FlatPriceSheetLine `json:"services"`
	LastUpdated time.Time            `json:"lastUpdated"`
}

type PriceSheetService struct {
	db *gorm.DB
}

func NewPriceSheetService(db *gorm.DB) *PriceSheetService {
	return &PriceSheetService{db: db}
}

// BuildView produces the flat, read-optimized projection of a price sheet.
func (s *PriceSheetService) BuildView(id uuid.UUID) (*FlatPriceSheetView, error) {
	var sheet models.PriceSheet
	if err := s.db.First(&sheet, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "price sheet", ID: id.String()}
		}
		return nil, err
	}

	serviceIDs := make([]uuid.UUID, 0, len(sheet.Services))
	for _, item := range sheet.Services {
		serviceIDs = append(serviceIDs, item.ServiceID)
	}

	var catalog []models.Service
	if len(serviceIDs) > 0 {
		if err := s.db.Preload("Category").Where("id IN ?", serviceIDs).Find(&catalog).Error; err != nil {
			return nil, err
		}
	}

	byID := make(map[uuid.UUID]*models.Service, len(catalog))
	for i := range catalog {
		byID[catalog[i].ID] = &catalog[i]
	}

	return &FlatPriceSheetView{
		ID:          sheet.ID,
		Name:        sheet.Name,
		Description: sheet.Description,
		Active:      sheet.IsActive,
		Services:    buildFlatLines(sheet.ID, sheet.Services, byID),
		LastUpdated: sheet.LastUpdated,
	}, nil
}

// buildFlatLines joins sheet items against the loaded catalog services. The
// join is best effort: a vanished service keeps its line with null joined
// fields instead of being dropped.
func buildFlatLines(sheetID uuid.UUID, items []models.PriceSheetItem, byID map[uuid.UUID]*models.Service) []FlatPriceSheetLine {
	lines := make([]FlatPriceSheetLine, 0, len(items))
	for _, item := range items {
		line := FlatPriceSheetLine{
			ID:    item.ServiceID,
			Price: item.Price,
		}
		if service, ok := byID[item.ServiceID]; ok {
			line.Name = &service.Name
			line.Description = &service.Description
			if service.Category.Name != "" {
				line.Category = &service.Category.Name
			}
		} else {
			log.Printf("Price sheet %s references missing service %s", sheetID, item.ServiceID)
		}
		lines = append(lines, line)
	}
	return lines
}

// CountExistingServices reports how many of the given service ids are present
// in the catalog. Used to reject sheets referencing unknown services.
func (s *PriceSheetService) CountExistingServices(ids []uuid.UUID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	var count int64
	err := s.db.Model(&models.Service{}).Where("id IN ?", ids).Count(&count).Error
	return count, err
}
