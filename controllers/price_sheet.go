// controllers/price_sheet.go
package controllers

import (
	"errors"
	"net/http"

	"cotizapro-backend/config"
	"cotizapro-backend/models"
	"cotizapro-backend/services"
	"cotizapro-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PriceSheetItemInput defines one service entry of a price sheet
type PriceSheetItemInput struct {
	ServiceID uuid.UUID `json:"id" binding:"required"`
	Price     float64   `json:"price" binding:"min=0"`
}

// PriceSheetInput defines the expected JSON structure for creating or
// updating a price sheet
type PriceSheetInput struct {
	Name        string                `json:"name" binding:"required,min=2"`
	Description string                `json:"description" binding:"required,min=10"`
	Services    []PriceSheetItemInput `json:"services" binding:"required,min=1"`
}

func priceSheetItems(inputs []PriceSheetItemInput) (models.PriceSheetItemList, []uuid.UUID) {
	items := make(models.PriceSheetItemList, 0, len(inputs))
	ids := make([]uuid.UUID, 0, len(inputs))
	for _, in := range inputs {
		items = append(items, models.PriceSheetItem{ServiceID: in.ServiceID, Price: in.Price})
		ids = append(ids, in.ServiceID)
	}
	return items, ids
}

// CreatePriceSheet creates a new price sheet after checking every referenced
// service exists
func CreatePriceSheet(c *gin.Context) {
	var input PriceSheetInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	items, ids := priceSheetItems(input.Services)

	count, err := services.NewPriceSheetService(config.DB).CountExistingServices(ids)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}
	if count != int64(len(ids)) {
		utils.RespondWithError(c, http.StatusBadRequest, "One or more services do not exist")
		return
	}

	sheet := models.PriceSheet{
		Name:        input.Name,
		Description: input.Description,
		Services:    items,
		IsActive:    true,
	}

	if err := config.DB.Create(&sheet).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create price sheet")
		return
	}

	utils.RespondWithData(c, http.StatusCreated, gin.H{"priceSheet": sheet})
}

// GetPriceSheets lists active price sheets without their service entries
func GetPriceSheets(c *gin.Context) {
	var sheets []models.PriceSheet
	if err := config.DB.
		Select("id", "name", "description", "is_active", "last_updated", "created_at", "updated_at").
		Where("is_active = ?", true).
		Find(&sheets).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve price sheets")
		return
	}

	utils.RespondWithData(c, http.StatusOK, gin.H{"priceSheets": sheets})
}

// GetPriceSheet returns the flat, display-ready projection of a price sheet
func GetPriceSheet(c *gin.Context) {
	sheetUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid price sheet ID format")
		return
	}

	view, err := services.NewPriceSheetService(config.DB).BuildView(sheetUUID)
	if err != nil {
		respondWithServiceError(c, err)
		return
	}

	utils.RespondWithData(c, http.StatusOK, gin.H{"priceSheet": view})
}

// UpdatePriceSheet replaces a price sheet's fields and service entries
func UpdatePriceSheet(c *gin.Context) {
	sheetUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid price sheet ID format")
		return
	}

	var input PriceSheetInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	items, ids := priceSheetItems(input.Services)

	count, err := services.NewPriceSheetService(config.DB).CountExistingServices(ids)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}
	if count != int64(len(ids)) {
		utils.RespondWithError(c, http.StatusBadRequest, "One or more services do not exist")
		return
	}

	var sheet models.PriceSheet
	if err := config.DB.First(&sheet, "id = ?", sheetUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Price sheet not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	sheet.Name = input.Name
	sheet.Description = input.Description
	sheet.Services = items

	if err := config.DB.Save(&sheet).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update price sheet")
		return
	}

	utils.RespondWithData(c, http.StatusOK, gin.H{"priceSheet": sheet})
}

// DeletePriceSheet removes a price sheet
func DeletePriceSheet(c *gin.Context) {
	sheetUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid price sheet ID format")
		return
	}

	result := config.DB.Where("id = ?", sheetUUID).Delete(&models.PriceSheet{})
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete price sheet")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Price sheet not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Price sheet deleted successfully"})
}
