package services

import (
	"testing"

	"cotizapro-backend/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildFlatLinesJoinsServiceAndCategory(t *testing.T) {
	service := models.Service{
		ID:          uuid.New(),
		Name:        "City Tour",
		Description: "Guided walk through the old town",
		Category:    models.Category{Name: "Tours"},
	}
	items := []models.PriceSheetItem{
		{ServiceID: service.ID, Price: 120},
	}
	byID := map[uuid.UUID]*models.Service{service.ID: &service}

	lines := buildFlatLines(uuid.New(), items, byID)

	require.Len(t, lines, 1)
	assert.Equal(t, service.ID, lines[0].ID)
	require.NotNil(t, lines[0].Name)
	assert.Equal(t, "City Tour", *lines[0].Name)
	require.NotNil(t, lines[0].Description)
	assert.Equal(t, "Guided walk through the old town", *lines[0].Description)
	require.NotNil(t, lines[0].Category)
	assert.Equal(t, "Tours", *lines[0].Category)
	assert.Equal(t, 120.0, lines[0].Price)
}

func TestBuildFlatLinesKeepsLineForMissingService(t *testing.T) {
	missingID := uuid.New()
	items := []models.PriceSheetItem{
		{ServiceID: missingID, Price: 80},
	}

	lines := buildFlatLines(uuid.New(), items, map[uuid.UUID]*models.Service{})

	require.Len(t, lines, 1)
	assert.Equal(t, missingID, lines[0].ID)
	assert.Nil(t, lines[0].Name)
	assert.Nil(t, lines[0].Description)
	assert.Nil(t, lines[0].Category)
	assert.Equal(t, 80.0, lines[0].Price)
}

func TestBuildFlatLinesPreservesSheetOrder(t *testing.T) {
	a := models.Service{ID: uuid.New(), Name: "A", Description: "First service", Category: models.Category{Name: "Tours"}}
	b := models.Service{ID: uuid.New(), Name: "B", Description: "Second service", Category: models.Category{Name: "Events"}}
	items := []models.PriceSheetItem{
		{ServiceID: b.ID, Price: 2},
		{ServiceID: a.ID, Price: 1},
	}
	byID := map[uuid.UUID]*models.Service{a.ID: &a, b.ID: &b}

	lines := buildFlatLines(uuid.New(), items, byID)

	require.Len(t, lines, 2)
	assert.Equal(t, b.ID, lines[0].ID)
	assert.Equal(t, a.ID, lines[1].ID)
}
