package food

import "github.com/abmacros/server/internal/domain"

// Catalog is the static food database. Content curation lives outside this
// service; the seed below covers the staples of an animal-based diet.
type Catalog struct {
	items []domain.FoodItem
}

func NewCatalog() *Catalog {
	return &Catalog{items: seedFoods}
}

// List returns all foods in the catalog.
func (c *Catalog) List() []domain.FoodItem {
	out := make([]domain.FoodItem, len(c.items))
	copy(out, c.items)
	return out
}

// Get returns the food with the given id, or false when unknown.
func (c *Catalog) Get(foodID string) (domain.FoodItem, bool) {
	for _, f := range c.items {
		if f.ID == foodID {
			return f, true
		}
	}
	return domain.FoodItem{}, false
}

var seedFoods = []domain.FoodItem{
	{
		ID:          "beef-ribeye",
		Name:        "Beef Ribeye Steak",
		Category:    domain.CategoryMeat,
		ServingSize: 100,
		ServingUnit: "g",
		Macros:      domain.Macronutrients{Calories: 291, Protein: 24, Fat: 22},
		Micros:      domain.Micronutrients{Iron: 2.1, Zinc: 4.6, VitaminB12: 2.5},
	},
	{
		ID:          "eggs",
		Name:        "Eggs (Whole)",
		Category:    domain.CategoryEggs,
		ServingSize: 50,
		ServingUnit: "g",
		Macros:      domain.Macronutrients{Calories: 72, Protein: 6.3, Fat: 5, Carbs: 0.4, Sugar: 0.4},
		Micros:      domain.Micronutrients{VitaminA: 98, VitaminB12: 0.6, Choline: 147},
	},
	{
		ID:          "beef-liver",
		Name:        "Beef Liver",
		Category:    domain.CategoryOrgan,
		ServingSize: 100,
		ServingUnit: "g",
		Macros:      domain.Macronutrients{Calories: 135, Protein: 20.4, Fat: 3.6, Carbs: 3.9},
		Micros:      domain.Micronutrients{VitaminA: 16899, VitaminB12: 59.3, Iron: 4.9, Copper: 9.8, Choline: 333},
	},
	{
		ID:          "salmon",
		Name:        "Atlantic Salmon",
		Category:    domain.CategoryFish,
		ServingSize: 100,
		ServingUnit: "g",
		Macros:      domain.Macronutrients{Calories: 208, Protein: 20.4, Fat: 13.4},
		Micros:      domain.Micronutrients{VitaminD: 11, Selenium: 36.5, DHA: 1.1, EPA: 0.9},
	},
	{
		ID:          "raw-honey",
		Name:        "Raw Honey",
		Category:    domain.CategoryHoney,
		ServingSize: 21,
		ServingUnit: "g",
		Macros:      domain.Macronutrients{Calories: 64, Carbs: 17.3, Sugar: 17.2},
	},
}
