package models

import "fmt"

// DietaryRequest is a set of independent accommodation flags. Any subset
// may be set at once; each dish variant reacts only to the flags it
// understands.
type DietaryRequest struct {
	Vegetarian bool `json:"vegetarian"`
	Vegan      bool `json:"vegan"`
	GlutenFree bool `json:"gluten_free"`
	NutFree    bool `json:"nut_free"`
	LowSodium  bool `json:"low_sodium"`
	LowSugar   bool `json:"low_sugar"`
}

// Any reports whether at least one flag is set.
func (r DietaryRequest) Any() bool {
	return r.Vegetarian || r.Vegan || r.GlutenFree || r.NutFree || r.LowSodium || r.LowSugar
}

func (r DietaryRequest) String() string {
	return fmt.Sprintf("vegetarian=%t vegan=%t gluten_free=%t nut_free=%t low_sodium=%t low_sugar=%t",
		r.Vegetarian, r.Vegan, r.GlutenFree, r.NutFree, r.LowSodium, r.LowSugar)
}

// Ingredient groups targeted by the accommodation rules.
var (
	nonVegetarianIngredients = []string{"Meat", "Chicken", "Fish", "Beef", "Pork", "Lamb", "Shrimp", "Bacon"}
	glutenIngredients        = []string{"Wheat", "Flour", "Bread", "Pasta", "Barley", "Rye", "Oats", "Crust"}
	nutIngredients           = []string{"Almonds", "Walnuts", "Pecans", "Hazelnuts", "Peanuts", "Cashews", "Pistachios"}
	dairyAndEggIngredients   = []string{"Milk", "Eggs", "Cheese", "Butter", "Cream", "Yogurt"}
)

// substituteIngredients rewrites an ingredient list using bounded ordered
// substitution: ingredients matching a banned name consume the replacement
// names in order, one per match; once every replacement has been used,
// further matches are dropped. Everything else passes through unchanged,
// preserving relative order. With no replacements this is plain removal.
func substituteIngredients(ingredients, banned []string, replacements ...string) []string {
	out := make([]string, 0, len(ingredients))
	next := 0
	for _, ingredient := range ingredients {
		if !containsString(banned, ingredient) {
			out = append(out, ingredient)
			continue
		}
		if next < len(replacements) {
			out = append(out, replacements[next])
			next++
		}
	}
	return out
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
