package models

type DishKind string

const (
	KindAppetizer  DishKind = "APPETIZER"
	KindMainCourse DishKind = "MAINCOURSE"
	KindDessert    DishKind = "DESSERT"
)

// Dish holds the attributes shared by every dish variant.
type Dish struct {
	Name        string      `json:"name"`
	Ingredients []string    `json:"ingredients"`
	PrepTime    int         `json:"prep_time"` // Preparation time in minutes
	Price       float64     `json:"price"`
	Cuisine     CuisineType `json:"cuisine_type"`
}

// Field is one labelled value supplied to the display collaborator.
type Field struct {
	Label string
	Value string
}

// MenuDish is the closed set of dish variants held by the kitchen.
// Equality is full attribute equality, so two dishes with identical
// attributes are interchangeable multiset members.
type MenuDish interface {
	Base() *Dish
	Kind() DishKind
	Equals(other MenuDish) bool

	// ApplyDietaryAccommodations mutates the dish in place. Each flag the
	// variant understands is applied independently, in a fixed order.
	ApplyDietaryAccommodations(request DietaryRequest)

	// DisplayFields returns the variant-specific fields, in display order,
	// that follow the shared base fields.
	DisplayFields() []Field
}

func (d *Dish) Base() *Dish { return d }

func (d *Dish) equalsBase(other *Dish) bool {
	if d.Name != other.Name ||
		d.PrepTime != other.PrepTime ||
		d.Price != other.Price ||
		d.Cuisine != other.Cuisine {
		return false
	}
	return equalStrings(d.Ingredients, other.Ingredients)
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Elaborate reports whether the dish counts as elaborate: at least five
// ingredients and at least sixty minutes of preparation.
func (d *Dish) Elaborate() bool {
	return len(d.Ingredients) >= 5 && d.PrepTime >= 60
}
