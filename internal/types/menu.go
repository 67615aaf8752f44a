package types

// RawMenuRecipe is a single menu item as served by the FD MealPlanner meals
// API. Nearly every numeric field arrives as a string.
type RawMenuRecipe struct {
	ComponentName            string  `json:"componentName"`
	ComponentID              int     `json:"componentId"`
	EnglishAlternateName     string  `json:"englishAlternateName"`
	Category                 string  `json:"category"`
	AllergenName             string  `json:"allergenName"`
	Calories                 string  `json:"calories"`
	Carbohydrates            string  `json:"carbohydrates"`
	CarbohydratesUOM         string  `json:"carbohydratesUOM"`
	DietaryFiber             string  `json:"dietaryFiber"`
	DietaryFiberUOM          string  `json:"dietaryFiberUOM"`
	Fat                      string  `json:"fat"`
	FatUOM                   string  `json:"fatUOM"`
	Protein                  string  `json:"protein"`
	ProteinUOM               string  `json:"proteinUOM"`
	SaturatedFat             string  `json:"saturatedFat"`
	SaturatedFatUOM          string  `json:"saturatedFatUOM"`
	TransFattyAcid           string  `json:"transFattyAcid"`
	TransFattyAcidUOM        string  `json:"transFattyAcidUOM"`
	Calcium                  string  `json:"calcium"`
	CalciumUOM               string  `json:"calciumUOM"`
	Cholesterol              string  `json:"cholesterol"`
	CholesterolUOM           string  `json:"cholesterolUOM"`
	Iron                     string  `json:"iron"`
	IronUOM                  string  `json:"ironUOM"`
	Sodium                   string  `json:"sodium"`
	SodiumUOM                string  `json:"sodiumUOM"`
	VitaminA                 string  `json:"vitaminA"`
	VitaminAUOM              string  `json:"vitaminAUOM"`
	VitaminC                 string  `json:"vitaminC"`
	VitaminCUOM              string  `json:"vitaminCUOM"`
	TotalSugars              string  `json:"totalSugars"`
	TotalSugarsUOM           string  `json:"totalSugarsUOM"`
	RecipeProductDietaryName string  `json:"recipeProductDietaryName"`
	IngredientStatement      string  `json:"ingredientStatement"`
	SellingPrice             float64 `json:"sellingPrice"`
	ProductMeasuringSize     int     `json:"productMeasuringSize"`
	ProductMeasuringSizeUnit string  `json:"productMeasuringSizeUnit"`
}

// RawMenuDay is one day's menu for a location and meal period.
type RawMenuDay struct {
	MenuID         int             `json:"menuId"`
	MenuForDate    string          `json:"menuForDate"`
	AccountID      int             `json:"accountId"`
	MealPeriodID   int             `json:"mealPeriodId"`
	AllMenuRecipes []RawMenuRecipe `json:"allMenuRecipes,omitempty"`
}

// RawMenuResponse is the top-level shape of the FD MealPlanner meals payload.
type RawMenuResponse struct {
	ResponseStatus string       `json:"responseStatus,omitempty"`
	Result         []RawMenuDay `json:"result"`
}

// NutritionalEntry is a single row of a menu item's nutrition facts.
type NutritionalEntry struct {
	Type   string  `json:"type"`
	Amount float64 `json:"amount"`
	Unit   string  `json:"unit"`
}

// MenuItem is a menu item stripped down and reorganized from the raw recipe
// record into a shape that is actually usable.
type MenuItem struct {
	ID             int                `json:"id"`
	Name           string             `json:"name"`
	ExactName      string             `json:"exact_name"`
	Category       string             `json:"category"`
	Allergens      []string           `json:"allergens"`
	Calories       int                `json:"calories"`
	Nutrition      []NutritionalEntry `json:"nutrition"`
	DietaryMarkers []string           `json:"dietary_markers"`
	Ingredients    string             `json:"ingredients"`
	Price          float64            `json:"price"`
	ServingSize    int                `json:"serving_size"`
	ServingUnit    string             `json:"serving_unit"`
}
