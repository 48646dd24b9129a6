// controllers/quote.go
package controllers

import (
	"errors"
	"net/http"

	"cotizapro-backend/config"
	"cotizapro-backend/services"
	"cotizapro-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// QuoteLineItemInput defines one requested service line
type QuoteLineItemInput struct {
	ServiceID uuid.UUID `json:"service" binding:"required"`
	Quantity  int       `json:"quantity" binding:"required,min=1"`
	Discount  float64   `json:"discount" binding:"min=0,max=100"`
}

// CreateQuoteInput defines the expected JSON structure for creating a quote
type CreateQuoteInput struct {
	ClientID uuid.UUID            `json:"customerId" binding:"required"`
	Services []QuoteLineItemInput `json:"services" binding:"required,min=1"`
	Notes    string               `json:"notes"`
}

// UpdateQuoteStatusInput defines the expected JSON structure for a status change
type UpdateQuoteStatusInput struct {
	Status string `json:"status" binding:"required"`
}

// ProcessEmailQuoteInput defines the expected JSON structure for email intake
type ProcessEmailQuoteInput struct {
	Subject      string `json:"subject" binding:"required"`
	Sender       string `json:"sender" binding:"required,email"`
	OriginalHTML string `json:"originalHtml" binding:"required"`
}

func respondWithServiceError(c *gin.Context, err error) {
	var notFound *services.NotFoundError
	var constraint *services.ConstraintError
	switch {
	case errors.As(err, &notFound):
		utils.RespondWithError(c, http.StatusNotFound, notFound.Error())
	case errors.As(err, &constraint):
		utils.RespondWithError(c, http.StatusBadRequest, constraint.Error())
	case errors.Is(err, services.ErrAmbiguousTier):
		utils.RespondWithError(c, http.StatusConflict, err.Error())
	default:
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
	}
}

// CreateQuote prices the requested lines and persists a new quote
func CreateQuote(c *gin.Context) {
	var input CreateQuoteInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	lines := make([]services.QuoteLineInput, 0, len(input.Services))
	for _, item := range input.Services {
		lines = append(lines, services.QuoteLineInput{
			ServiceID:       item.ServiceID,
			Quantity:        item.Quantity,
			DiscountPercent: item.Discount,
		})
	}

	quote, err := services.NewQuoteService(config.DB).CreateQuote(input.ClientID, lines, input.Notes)
	if err != nil {
		respondWithServiceError(c, err)
		return
	}

	utils.RespondWithData(c, http.StatusCreated, gin.H{"quote": quote})
}

// GetQuotes retrieves all quotes with their line items
func GetQuotes(c *gin.Context) {
	quotes, err := services.NewQuoteService(config.DB).ListQuotes()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve quotes")
		return
	}

	utils.RespondWithData(c, http.StatusOK, gin.H{"quotes": quotes})
}

// GetQuote retrieves a specific quote by ID
func GetQuote(c *gin.Context) {
	quoteUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid quote ID format")
		return
	}

	quote, err := services.NewQuoteService(config.DB).GetQuoteByID(quoteUUID)
	if err != nil {
		respondWithServiceError(c, err)
		return
	}

	utils.RespondWithData(c, http.StatusOK, gin.H{"quote": quote})
}

// UpdateQuoteStatus moves a quote to a new status
func UpdateQuoteStatus(c *gin.Context) {
	quoteUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid quote ID format")
		return
	}

	var input UpdateQuoteStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	quote, err := services.NewQuoteService(config.DB).UpdateQuoteStatus(quoteUUID, input.Status)
	if err != nil {
		respondWithServiceError(c, err)
		return
	}

	utils.RespondWithData(c, http.StatusOK, gin.H{"quote": quote})
}

// ProcessEmailQuote records an inbound email and creates a preliminary quote
// when service candidates are detected in it
func ProcessEmailQuote(c *gin.Context) {
	var input ProcessEmailQuoteInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	emailQuote, err := services.NewEmailQuoteService(config.DB).Process(
		input.Subject, input.Sender, input.OriginalHTML)
	if err != nil {
		respondWithServiceError(c, err)
		return
	}

	utils.RespondWithData(c, http.StatusCreated, gin.H{"emailQuote": emailQuote})
}
