package models

import "strconv"

type Appetizer struct {
	Dish
	ServingStyle   ServingStyle `json:"serving_style"`
	SpicinessLevel int          `json:"spiciness_level"`
	Vegetarian     bool         `json:"vegetarian"`
}

func (a *Appetizer) Kind() DishKind { return KindAppetizer }

func (a *Appetizer) Equals(other MenuDish) bool {
	o, ok := other.(*Appetizer)
	if !ok {
		return false
	}
	return a.equalsBase(&o.Dish) &&
		a.ServingStyle == o.ServingStyle &&
		a.SpicinessLevel == o.SpicinessLevel &&
		a.Vegetarian == o.Vegetarian
}

// ApplyDietaryAccommodations adjusts the appetizer in place:
//   - vegetarian: marks the dish vegetarian and substitutes non-vegetarian
//     ingredients, first with "Beans", then "Mushrooms", dropping the rest
//   - low_sodium: reduces spiciness by 2, floored at 0
//   - gluten_free: removes gluten-containing ingredients outright
func (a *Appetizer) ApplyDietaryAccommodations(request DietaryRequest) {
	if request.Vegetarian {
		a.Vegetarian = true
		a.Ingredients = substituteIngredients(a.Ingredients, nonVegetarianIngredients, "Beans", "Mushrooms")
	}
	if request.LowSodium {
		a.SpicinessLevel -= 2
		if a.SpicinessLevel < 0 {
			a.SpicinessLevel = 0
		}
	}
	if request.GlutenFree {
		a.Ingredients = substituteIngredients(a.Ingredients, glutenIngredients)
	}
}

func (a *Appetizer) DisplayFields() []Field {
	return []Field{
		{Label: "Serving Style", Value: a.ServingStyle.Label()},
		{Label: "Spiciness Level", Value: strconv.Itoa(a.SpicinessLevel)},
		{Label: "Vegetarian", Value: yesNo(a.Vegetarian)},
	}
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
