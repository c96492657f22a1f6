package models

import "fmt"

// SideDish accompanies a main course.
type SideDish struct {
	Name     string           `json:"name"`
	Category SideDishCategory `json:"category"`
}

type MainCourse struct {
	Dish
	CookingMethod CookingMethod `json:"cooking_method"`
	ProteinType   string        `json:"protein_type"`
	SideDishes    []SideDish    `json:"side_dishes"`
	GlutenFree    bool          `json:"gluten_free"`
}

func (m *MainCourse) Kind() DishKind { return KindMainCourse }

// AddSideDish appends a side dish to the main course.
func (m *MainCourse) AddSideDish(side SideDish) {
	m.SideDishes = append(m.SideDishes, side)
}

func (m *MainCourse) Equals(other MenuDish) bool {
	o, ok := other.(*MainCourse)
	if !ok {
		return false
	}
	if !m.equalsBase(&o.Dish) ||
		m.CookingMethod != o.CookingMethod ||
		m.ProteinType != o.ProteinType ||
		m.GlutenFree != o.GlutenFree ||
		len(m.SideDishes) != len(o.SideDishes) {
		return false
	}
	for i := range m.SideDishes {
		if m.SideDishes[i] != o.SideDishes[i] {
			return false
		}
	}
	return true
}

// Side dish categories dropped by a gluten-free request.
var glutenSideCategories = map[SideDishCategory]bool{
	SideGrain:    true,
	SidePasta:    true,
	SideBread:    true,
	SideStarches: true,
}

// ApplyDietaryAccommodations adjusts the main course in place:
//   - vegetarian: protein becomes "Tofu"; non-vegetarian ingredients are
//     substituted first with "Beans", then "Mushrooms", dropping the rest
//   - vegan: protein becomes "Tofu"; dairy and egg ingredients are removed
//     outright (the vegetarian replacements above are never dairy, so the
//     result does not depend on whether vegetarian ran in the same call)
//   - gluten_free: marks the dish gluten-free and drops side dishes in
//     gluten-containing categories
func (m *MainCourse) ApplyDietaryAccommodations(request DietaryRequest) {
	if request.Vegetarian {
		m.ProteinType = "Tofu"
		m.Ingredients = substituteIngredients(m.Ingredients, nonVegetarianIngredients, "Beans", "Mushrooms")
	}
	if request.Vegan {
		m.ProteinType = "Tofu"
		m.Ingredients = substituteIngredients(m.Ingredients, dairyAndEggIngredients)
	}
	if request.GlutenFree {
		m.GlutenFree = true
		kept := make([]SideDish, 0, len(m.SideDishes))
		for _, side := range m.SideDishes {
			if !glutenSideCategories[side.Category] {
				kept = append(kept, side)
			}
		}
		m.SideDishes = kept
	}
}

func (m *MainCourse) DisplayFields() []Field {
	sides := "None"
	if len(m.SideDishes) > 0 {
		sides = ""
		for i, side := range m.SideDishes {
			if i > 0 {
				sides += "\n"
			}
			sides += fmt.Sprintf("%s (Category: %s)", side.Name, side.Category.Label())
		}
	}
	return []Field{
		{Label: "Cooking Method", Value: m.CookingMethod.Label()},
		{Label: "Protein Type", Value: m.ProteinType},
		{Label: "Side Dishes", Value: sides},
		{Label: "Gluten-Free", Value: yesNo(m.GlutenFree)},
	}
}
