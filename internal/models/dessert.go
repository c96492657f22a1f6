package models

import "strconv"

type Dessert struct {
	Dish
	FlavorProfile  FlavorProfile `json:"flavor_profile"`
	SweetnessLevel int           `json:"sweetness_level"`
	ContainsNuts   bool          `json:"contains_nuts"`
}

func (d *Dessert) Kind() DishKind { return KindDessert }

func (d *Dessert) Equals(other MenuDish) bool {
	o, ok := other.(*Dessert)
	if !ok {
		return false
	}
	return d.equalsBase(&o.Dish) &&
		d.FlavorProfile == o.FlavorProfile &&
		d.SweetnessLevel == o.SweetnessLevel &&
		d.ContainsNuts == o.ContainsNuts
}

// ApplyDietaryAccommodations adjusts the dessert in place:
//   - nut_free: clears the contains-nuts flag and removes nut ingredients
//   - low_sugar: reduces sweetness by 3, floored at 0
//   - vegan: substitutes dairy and egg ingredients, first with "Almond Milk",
//     then "Flax Egg", dropping the rest; applied after the nut removal when
//     both flags are set
func (d *Dessert) ApplyDietaryAccommodations(request DietaryRequest) {
	if request.NutFree {
		d.ContainsNuts = false
		d.Ingredients = substituteIngredients(d.Ingredients, nutIngredients)
	}
	if request.LowSugar {
		d.SweetnessLevel -= 3
		if d.SweetnessLevel < 0 {
			d.SweetnessLevel = 0
		}
	}
	if request.Vegan {
		d.Ingredients = substituteIngredients(d.Ingredients, dairyAndEggIngredients, "Almond Milk", "Flax Egg")
	}
}

func (d *Dessert) DisplayFields() []Field {
	return []Field{
		{Label: "Flavor Profile", Value: d.FlavorProfile.Label()},
		{Label: "Sweetness Level", Value: strconv.Itoa(d.SweetnessLevel)},
		{Label: "Contains Nuts", Value: yesNo(d.ContainsNuts)},
	}
}
