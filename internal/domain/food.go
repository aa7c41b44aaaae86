package domain

// FoodCategory groups foods for an animal-based diet.
type FoodCategory string

const (
	CategoryMeat  FoodCategory = "meat"
	CategoryOrgan FoodCategory = "organ"
	CategoryFish  FoodCategory = "fish"
	CategoryEggs  FoodCategory = "eggs"
	CategoryDairy FoodCategory = "dairy"
	CategoryFruit FoodCategory = "fruit"
	CategoryHoney FoodCategory = "honey"
	CategoryOther FoodCategory = "other"
)

// FoodItem describes a single food and its nutrients per serving.
type FoodItem struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Category    FoodCategory   `json:"category"`
	ServingSize float64        `json:"serving_size"`
	ServingUnit string         `json:"serving_unit"`
	Macros      Macronutrients `json:"macros"`
	Micros      Micronutrients `json:"micros"`
}

// Macronutrients per serving.
type Macronutrients struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Fat      float64 `json:"fat"`
	Carbs    float64 `json:"carbs"`
	Fiber    float64 `json:"fiber"`
	Sugar    float64 `json:"sugar"`
}

// Micronutrients per serving, focused on animal-based diet priorities.
type Micronutrients struct {
	VitaminA   float64 `json:"vitamin_a,omitempty"`
	VitaminB12 float64 `json:"vitamin_b12,omitempty"`
	VitaminC   float64 `json:"vitamin_c,omitempty"`
	VitaminD   float64 `json:"vitamin_d,omitempty"`
	VitaminK   float64 `json:"vitamin_k,omitempty"`
	Calcium    float64 `json:"calcium,omitempty"`
	Copper     float64 `json:"copper,omitempty"`
	Iron       float64 `json:"iron,omitempty"`
	Magnesium  float64 `json:"magnesium,omitempty"`
	Potassium  float64 `json:"potassium,omitempty"`
	Selenium   float64 `json:"selenium,omitempty"`
	Sodium     float64 `json:"sodium,omitempty"`
	Zinc       float64 `json:"zinc,omitempty"`
	Choline    float64 `json:"choline,omitempty"`
	DHA        float64 `json:"dha,omitempty"`
	EPA        float64 `json:"epa,omitempty"`
}
