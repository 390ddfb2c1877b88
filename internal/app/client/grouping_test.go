package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupProductsBySpace(t *testing.T) {
	products := []Product{
		{ID: "1", Name: "Drill", Box: "Garage"},
		{ID: "2", Name: "Skis", Box: "garage "},
		{ID: "3", Name: "Milk", Box: "Fridge"},
	}

	grouped := GroupProductsBySpace(products)

	// Разные написания метки попадают в одну группу
	require.Len(t, grouped["garage"], 2)
	assert.Equal(t, "Drill", grouped["garage"][0].Name)
	assert.Equal(t, "Skis", grouped["garage"][1].Name)
	require.Len(t, grouped["fridge"], 1)
}

func TestGroupProductsBySpace_Empty(t *testing.T) {
	grouped := GroupProductsBySpace(nil)
	assert.Empty(t, grouped)
}

func TestFilterSpacesWithProducts(t *testing.T) {
	spaces := []Space{
		{ID: "garage"},
		{ID: "fridge"},
		{ID: "attic"},
	}
	grouped := GroupProductsBySpace([]Product{
		{Name: "Drill", Box: "Garage"},
	})

	filtered := FilterSpacesWithProducts(spaces, grouped)

	require.Len(t, filtered, 1)
	assert.Equal(t, "garage", filtered[0].ID)
}

func TestFilterSpacesWithProducts_PreservesOrder(t *testing.T) {
	spaces := []Space{
		{ID: "attic"},
		{ID: "garage"},
		{ID: "fridge"},
	}
	grouped := map[string][]Product{
		"fridge": {{Name: "Milk"}},
		"attic":  {{Name: "Lamp"}},
	}

	filtered := FilterSpacesWithProducts(spaces, grouped)

	require.Len(t, filtered, 2)
	assert.Equal(t, "attic", filtered[0].ID)
	assert.Equal(t, "fridge", filtered[1].ID)
}
