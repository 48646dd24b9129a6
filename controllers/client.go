// controllers/client.go
package controllers

import (
	"errors"
	"net/http"

	"cotizapro-backend/config"
	"cotizapro-backend/models"
	"cotizapro-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateClientInput defines the expected JSON structure for creating a client
type CreateClientInput struct {
	Name             string                `json:"name" binding:"required,min=2"`
	Email            string                `json:"email" binding:"required,email"`
	Phone            string                `json:"phone"`
	Address          string                `json:"address"`
	Notes            string                `json:"notes"`
	HasCustomPricing bool                  `json:"customPricing"`
	CustomPrices     models.CustomPriceMap `json:"customPrices"`
}

// UpdateClientInput defines the expected JSON structure for updating a client.
// CustomPrices replaces the whole override map when provided.
type UpdateClientInput struct {
	Name             *string                `json:"name" binding:"omitempty,min=2"`
	Email            *string                `json:"email" binding:"omitempty,email"`
	Phone            *string                `json:"phone"`
	Address          *string                `json:"address"`
	Notes            *string                `json:"notes"`
	HasCustomPricing *bool                  `json:"customPricing"`
	CustomPrices     *models.CustomPriceMap `json:"customPrices"`
	IsActive         *bool                  `json:"active"`
}

// CreateClient creates a new client
func CreateClient(c *gin.Context) {
	var input CreateClientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	client := models.Client{
		Name:             input.Name,
		Email:            input.Email,
		Phone:            input.Phone,
		Address:          input.Address,
		Notes:            input.Notes,
		HasCustomPricing: input.HasCustomPricing,
		CustomPricing:    input.CustomPrices,
		IsActive:         true,
	}
	if client.CustomPricing == nil {
		client.CustomPricing = models.CustomPriceMap{}
	}

	if err := config.DB.Create(&client).Error; err != nil {
		utils.RespondWithError(c, http.StatusConflict, "Failed to create client, email may already exist")
		return
	}

	utils.RespondWithData(c, http.StatusCreated, gin.H{"client": client})
}

// GetClients retrieves all active clients
func GetClients(c *gin.Context) {
	var clients []models.Client
	if err := config.DB.Where("is_active = ?", true).Find(&clients).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve clients")
		return
	}

	utils.RespondWithData(c, http.StatusOK, gin.H{"clients": clients})
}

// GetClient retrieves a specific client by ID
func GetClient(c *gin.Context) {
	clientUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid client ID format")
		return
	}

	var client models.Client
	if err := config.DB.First(&client, "id = ?", clientUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Client not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	utils.RespondWithData(c, http.StatusOK, gin.H{"client": client})
}

// UpdateClient updates an existing client
func UpdateClient(c *gin.Context) {
	clientUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid client ID format")
		return
	}

	var input UpdateClientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var client models.Client
	if err := config.DB.First(&client, "id = ?", clientUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Client not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Name != nil {
		client.Name = *input.Name
	}
	if input.Email != nil {
		client.Email = *input.Email
	}
	if input.Phone != nil {
		client.Phone = *input.Phone
	}
	if input.Address != nil {
		client.Address = *input.Address
	}
	if input.Notes != nil {
		client.Notes = *input.Notes
	}
	if input.HasCustomPricing != nil {
		client.HasCustomPricing = *input.HasCustomPricing
	}
	if input.CustomPrices != nil {
		client.CustomPricing = *input.CustomPrices
	}
	if input.IsActive != nil {
		client.IsActive = *input.IsActive
	}

	if err := config.DB.Save(&client).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update client")
		return
	}

	utils.RespondWithData(c, http.StatusOK, gin.H{"client": client})
}
