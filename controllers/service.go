// controllers/service.go
package controllers

import (
	"errors"
	"net/http"
	"time"

	"cotizapro-backend/config"
	"cotizapro-backend/models"
	"cotizapro-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateServiceInput defines the expected JSON structure for creating a service
type CreateServiceInput struct {
	Name        string            `json:"name" binding:"required,min=2"`
	CategoryID  uuid.UUID         `json:"category" binding:"required"`
	Location    string            `json:"location" binding:"required"`
	BasePrice   float64           `json:"basePrice" binding:"min=0"`
	Description string            `json:"description" binding:"required,min=10"`
	Duration    int               `json:"duration" binding:"min=0"` // in minutes
	Materials   []models.Material `json:"materials"`
}

// UpdateServiceInput defines the expected JSON structure for updating a service
type UpdateServiceInput struct {
	Name        *string            `json:"name" binding:"omitempty,min=2"`
	CategoryID  *uuid.UUID         `json:"category"`
	Location    *string            `json:"location"`
	BasePrice   *float64           `json:"basePrice" binding:"omitempty,min=0"`
	Description *string            `json:"description" binding:"omitempty,min=10"`
	Duration    *int               `json:"duration" binding:"omitempty,min=0"`
	Materials   *[]models.Material `json:"materials"`
	IsActive    *bool              `json:"active"`
}

// CreatePriceTierInput defines the expected JSON structure for creating a price tier
type CreatePriceTierInput struct {
	Duration    string              `json:"duration" binding:"required"`
	PriceRanges []models.PriceRange `json:"priceRanges" binding:"required,min=1"`
	ActiveFrom  *time.Time          `json:"activeFrom"`
	ActiveTo    *time.Time          `json:"activeTo"`
}

// CreateService creates a new service in the catalog
func CreateService(c *gin.Context) {
	var input CreateServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	// Validate the category exists
	var category models.Category
	if err := config.DB.First(&category, "id = ?", input.CategoryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusBadRequest, "Category not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	service := models.Service{
		Name:        input.Name,
		CategoryID:  input.CategoryID,
		Location:    input.Location,
		BasePrice:   input.BasePrice,
		Description: input.Description,
		Duration:    input.Duration,
		Materials:   input.Materials,
		IsActive:    true,
	}
	if service.Duration == 0 {
		service.Duration = 60
	}
	if service.Materials == nil {
		service.Materials = models.MaterialList{}
	}

	if err := config.DB.Create(&service).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create service")
		return
	}

	utils.RespondWithData(c, http.StatusCreated, gin.H{"service": service})
}

// GetServices retrieves all services with their category
func GetServices(c *gin.Context) {
	var services []models.Service
	if err := config.DB.Preload("Category").Find(&services).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve services")
		return
	}

	utils.RespondWithData(c, http.StatusOK, gin.H{"services": services})
}

// GetService retrieves a specific service by ID
func GetService(c *gin.Context) {
	serviceUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid service ID format")
		return
	}

	var service models.Service
	if err := config.DB.Preload("Category").First(&service, "id = ?", serviceUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	utils.RespondWithData(c, http.StatusOK, gin.H{"service": service})
}

// UpdateService updates an existing service
func UpdateService(c *gin.Context) {
	serviceUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid service ID format")
		return
	}

	var input UpdateServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var service models.Service
	if err := config.DB.First(&service, "id = ?", serviceUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Name != nil {
		service.Name = *input.Name
	}
	if input.CategoryID != nil {
		var category models.Category
		if err := config.DB.First(&category, "id = ?", *input.CategoryID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				utils.RespondWithError(c, http.StatusBadRequest, "Category not found")
			} else {
				utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
			}
			return
		}
		service.CategoryID = *input.CategoryID
	}
	if input.Location != nil {
		service.Location = *input.Location
	}
	if input.BasePrice != nil {
		service.BasePrice = *input.BasePrice
	}
	if input.Description != nil {
		service.Description = *input.Description
	}
	if input.Duration != nil {
		service.Duration = *input.Duration
	}
	if input.Materials != nil {
		service.Materials = *input.Materials
	}
	if input.IsActive != nil {
		service.IsActive = *input.IsActive
	}

	if err := config.DB.Save(&service).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update service")
		return
	}

	utils.RespondWithData(c, http.StatusOK, gin.H{"service": service})
}

// DeleteService removes a service from the catalog
func DeleteService(c *gin.Context) {
	serviceUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid service ID format")
		return
	}

	result := config.DB.Where("id = ?", serviceUUID).Delete(&models.Service{})
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete service")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Service deleted successfully"})
}

// CreatePriceTier attaches a new tiered pricing schedule to a service. The
// previous current tier, if any, is deactivated in the same transaction so
// at most one tier stays active per service.
func CreatePriceTier(c *gin.Context) {
	serviceUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid service ID format")
		return
	}

	var input CreatePriceTierInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if !models.IsValidTierDuration(input.Duration) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid duration label")
		return
	}
	if err := models.ValidatePriceRanges(input.PriceRanges); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid price ranges: "+err.Error())
		return
	}

	var service models.Service
	if err := config.DB.First(&service, "id = ?", serviceUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	activeFrom := time.Now()
	if input.ActiveFrom != nil {
		activeFrom = *input.ActiveFrom
	}

	tier := models.PriceTier{
		ServiceID:   service.ID,
		Duration:    input.Duration,
		PriceRanges: input.PriceRanges,
		ActiveFrom:  activeFrom,
		ActiveTo:    input.ActiveTo,
		IsActive:    true,
	}

	tx := config.DB.Begin()
	if tx.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to start transaction")
		return
	}
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := tx.Model(&models.PriceTier{}).
		Where("service_id = ? AND is_active = true", service.ID).
		Update("is_active", false).Error; err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to deactivate previous tier")
		return
	}

	if err := tx.Create(&tier).Error; err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create price tier")
		return
	}

	tx.Commit()

	utils.RespondWithData(c, http.StatusCreated, gin.H{"priceTier": tier})
}

// GetPriceTiers lists all tiers for a service, current first
func GetPriceTiers(c *gin.Context) {
	serviceUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid service ID format")
		return
	}

	var tiers []models.PriceTier
	if err := config.DB.Where("service_id = ?", serviceUUID).
		Order("is_active DESC, active_from DESC").
		Find(&tiers).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve price tiers")
		return
	}

	utils.RespondWithData(c, http.StatusOK, gin.H{"priceTiers": tiers})
}
