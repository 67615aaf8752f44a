// Package menus normalizes the FD MealPlanner meals payload into a
// deduplicated list of menu items.
package menus

import (
	"math"
	"strconv"
	"strings"

	"github.com/campbell/tigerdine/internal/types"
)

// Parse flattens one day's menu response into menu items. The request layer
// only ever asks for a single day, so only the first result entry carries
// recipes. FD MealPlanner sometimes includes the exact same item more than
// once; duplicates are dropped by component ID, first occurrence wins.
func Parse(resp *types.RawMenuResponse) []types.MenuItem {
	items := []types.MenuItem{}
	if len(resp.Result) == 0 {
		return items
	}

	seen := make(map[int]bool)
	for _, recipe := range resp.Result[0].AllMenuRecipes {
		if seen[recipe.ComponentID] {
			continue
		}
		seen[recipe.ComponentID] = true
		items = append(items, normalizeRecipe(recipe))
	}
	return items
}

func normalizeRecipe(recipe types.RawMenuRecipe) types.MenuItem {
	// englishAlternateName holds the proper name of the item but is blank
	// for some items; componentName is the less friendly fallback.
	name := strings.TrimSpace(recipe.EnglishAlternateName)
	if name == "" {
		name = strings.TrimSpace(recipe.ComponentName)
	}

	var allergens []string
	if recipe.AllergenName != "" {
		allergens = strings.Split(recipe.AllergenName, ",")
	}

	// Dietary markers arrive as a comma list (Vegan, Vegetarian, Pork,
	// Beef). "Vegetarian" is dropped when "Vegan" is also present since
	// it's redundant.
	var markers []string
	if recipe.RecipeProductDietaryName != "" {
		for _, m := range strings.Split(recipe.RecipeProductDietaryName, ",") {
			markers = append(markers, strings.TrimSpace(m))
		}
		if containsMarker(markers, "Vegan") {
			markers = removeMarker(markers, "Vegetarian")
		}
	}

	return types.MenuItem{
		ID:             recipe.ComponentID,
		Name:           name,
		ExactName:      recipe.ComponentName,
		Category:       recipe.Category,
		Allergens:      allergens,
		Calories:       roundedInt(recipe.Calories),
		Nutrition:      nutritionFacts(recipe),
		DietaryMarkers: markers,
		Ingredients:    recipe.IngredientStatement,
		Price:          recipe.SellingPrice,
		ServingSize:    recipe.ProductMeasuringSize,
		ServingUnit:    recipe.ProductMeasuringSizeUnit,
	}
}

// nutritionFacts collects the nutrition entries in standard facts-panel
// order.
func nutritionFacts(r types.RawMenuRecipe) []types.NutritionalEntry {
	return []types.NutritionalEntry{
		{Type: "Total Fat", Amount: parseAmount(r.Fat), Unit: r.FatUOM},
		{Type: "Saturated Fat", Amount: parseAmount(r.SaturatedFat), Unit: r.SaturatedFatUOM},
		{Type: "Trans Fat", Amount: parseAmount(r.TransFattyAcid), Unit: r.TransFattyAcidUOM},
		{Type: "Cholesterol", Amount: parseAmount(r.Cholesterol), Unit: r.CholesterolUOM},
		{Type: "Sodium", Amount: parseAmount(r.Sodium), Unit: r.SodiumUOM},
		{Type: "Total Carbohydrates", Amount: parseAmount(r.Carbohydrates), Unit: r.CarbohydratesUOM},
		{Type: "Dietary Fiber", Amount: parseAmount(r.DietaryFiber), Unit: r.DietaryFiberUOM},
		{Type: "Total Sugars", Amount: parseAmount(r.TotalSugars), Unit: r.TotalSugarsUOM},
		{Type: "Protein", Amount: parseAmount(r.Protein), Unit: r.ProteinUOM},
		{Type: "Calcium", Amount: parseAmount(r.Calcium), Unit: r.CalciumUOM},
		{Type: "Iron", Amount: parseAmount(r.Iron), Unit: r.IronUOM},
		{Type: "Vitamin A", Amount: parseAmount(r.VitaminA), Unit: r.VitaminAUOM},
		{Type: "Vitamin C", Amount: parseAmount(r.VitaminC), Unit: r.VitaminCUOM},
	}
}

func parseAmount(s string) float64 {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}

func roundedInt(s string) int {
	return int(math.Round(parseAmount(s)))
}

func containsMarker(markers []string, want string) bool {
	for _, m := range markers {
		if m == want {
			return true
		}
	}
	return false
}

func removeMarker(markers []string, drop string) []string {
	out := markers[:0]
	for _, m := range markers {
		if m != drop {
			out = append(out, m)
		}
	}
	return out
}
