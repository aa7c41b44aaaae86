package domain

import "time"

// Profile is the per-user record keyed by the normalized phone identity.
type Profile struct {
	UserID    string           `json:"id" dynamodbav:"user_id"`
	Phone     string           `json:"phone" dynamodbav:"phone"`
	CreatedAt time.Time        `json:"created" dynamodbav:"created_at,unixtime"`
	UpdatedAt time.Time        `json:"updated" dynamodbav:"updated_at,unixtime"`
	Targets   *NutrientTargets `json:"targets,omitempty" dynamodbav:"targets"`
}

// NutrientTargets holds daily min/max targets.
type NutrientTargets struct {
	Macros MacroTargets `json:"macros" dynamodbav:"macros"`
	Micros MicroTargets `json:"micros" dynamodbav:"micros"`
}

type MacroTargets struct {
	Calories Range `json:"calories" dynamodbav:"calories"`
	Protein  Range `json:"protein" dynamodbav:"protein"`
	Fat      Range `json:"fat" dynamodbav:"fat"`
	Carbs    Range `json:"carbs" dynamodbav:"carbs"`
}

type MicroTargets struct {
	VitaminA   Range `json:"vitamin_a" dynamodbav:"vitamin_a"`
	VitaminB12 Range `json:"vitamin_b12" dynamodbav:"vitamin_b12"`
	VitaminC   Range `json:"vitamin_c" dynamodbav:"vitamin_c"`
	VitaminD   Range `json:"vitamin_d" dynamodbav:"vitamin_d"`
	VitaminK   Range `json:"vitamin_k" dynamodbav:"vitamin_k"`
	Calcium    Range `json:"calcium" dynamodbav:"calcium"`
	Iron       Range `json:"iron" dynamodbav:"iron"`
	Magnesium  Range `json:"magnesium" dynamodbav:"magnesium"`
	Potassium  Range `json:"potassium" dynamodbav:"potassium"`
	Sodium     Range `json:"sodium" dynamodbav:"sodium"`
	Zinc       Range `json:"zinc" dynamodbav:"zinc"`
}

// Range is an inclusive daily target interval.
type Range struct {
	Min float64 `json:"min" dynamodbav:"min"`
	Max float64 `json:"max" dynamodbav:"max"`
}
