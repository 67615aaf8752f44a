package menus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campbell/tigerdine/internal/types"
)

func recipe(id int, name string) types.RawMenuRecipe {
	return types.RawMenuRecipe{
		ComponentID:          id,
		ComponentName:        name,
		EnglishAlternateName: "",
		Calories:             "0",
	}
}

func menuResponse(recipes ...types.RawMenuRecipe) *types.RawMenuResponse {
	return &types.RawMenuResponse{
		Result: []types.RawMenuDay{{AllMenuRecipes: recipes}},
	}
}

func TestParse_EmptyResult(t *testing.T) {
	items := Parse(&types.RawMenuResponse{})
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestParse_DeduplicatesByComponentID(t *testing.T) {
	// FD MealPlanner sometimes includes the exact same item twice.
	items := Parse(menuResponse(
		recipe(1, "Pizza"),
		recipe(1, "Pizza"),
		recipe(2, "Salad"),
	))
	require.Len(t, items, 2)
	assert.Equal(t, 1, items[0].ID)
	assert.Equal(t, 2, items[1].ID)
}

func TestParse_AlternateNamePreferred(t *testing.T) {
	r := recipe(1, "PIZZA_CHEESE_SLICE ")
	r.EnglishAlternateName = " Cheese Pizza "
	items := Parse(menuResponse(r))

	require.Len(t, items, 1)
	assert.Equal(t, "Cheese Pizza", items[0].Name)
	assert.Equal(t, "PIZZA_CHEESE_SLICE ", items[0].ExactName)
}

func TestParse_ComponentNameFallback(t *testing.T) {
	items := Parse(menuResponse(recipe(1, " Garden Salad ")))
	require.Len(t, items, 1)
	assert.Equal(t, "Garden Salad", items[0].Name)
}

func TestParse_AllergensSplit(t *testing.T) {
	r := recipe(1, "Pad Thai")
	r.AllergenName = "Peanuts,Soy"
	items := Parse(menuResponse(r))

	require.Len(t, items, 1)
	assert.Equal(t, []string{"Peanuts", "Soy"}, items[0].Allergens)
}

func TestParse_VeganDropsRedundantVegetarian(t *testing.T) {
	r := recipe(1, "Tofu Bowl")
	r.RecipeProductDietaryName = "Vegan, Vegetarian"
	items := Parse(menuResponse(r))

	require.Len(t, items, 1)
	assert.Equal(t, []string{"Vegan"}, items[0].DietaryMarkers)
}

func TestParse_VeganWithoutVegetarian(t *testing.T) {
	r := recipe(1, "Fruit Cup")
	r.RecipeProductDietaryName = "Vegan"
	items := Parse(menuResponse(r))

	require.Len(t, items, 1)
	assert.Equal(t, []string{"Vegan"}, items[0].DietaryMarkers)
}

func TestParse_CaloriesRounded(t *testing.T) {
	r := recipe(1, "Burrito")
	r.Calories = "512.6"
	items := Parse(menuResponse(r))

	require.Len(t, items, 1)
	assert.Equal(t, 513, items[0].Calories)
}

func TestParse_NutritionFactsOrder(t *testing.T) {
	r := recipe(1, "Goldfish")
	r.Fat = "5"
	r.FatUOM = "g"
	r.Protein = "3.5"
	r.ProteinUOM = "g"
	items := Parse(menuResponse(r))

	require.Len(t, items, 1)
	facts := items[0].Nutrition
	require.Len(t, facts, 13)
	assert.Equal(t, "Total Fat", facts[0].Type)
	assert.Equal(t, 5.0, facts[0].Amount)
	assert.Equal(t, "Protein", facts[8].Type)
	assert.Equal(t, 3.5, facts[8].Amount)
	assert.Equal(t, "Vitamin C", facts[12].Type)
}
