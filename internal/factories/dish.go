package factories

import (
	"math/rand"

	"github.com/chrisdamba/kitchenboard/internal/models"
	"github.com/jaswdr/faker"
)

var fake = faker.New()

// DishFactory builds randomized dishes for demo and load-testing sessions.
type DishFactory struct{}

var dishNames = map[models.CuisineType][]string{
	models.CuisineItalian:  {"Margherita Pizza", "Spaghetti Carbonara", "Lasagna", "Tiramisu"},
	models.CuisineMexican:  {"Tacos", "Burrito", "Guacamole", "Quesadilla"},
	models.CuisineChinese:  {"Kung Pao Chicken", "Fried Rice", "Dumplings", "Mapo Tofu"},
	models.CuisineIndian:   {"Chicken Tikka Masala", "Vegetable Curry", "Naan Bread", "Biryani"},
	models.CuisineAmerican: {"Cheeseburger", "Hot Dog", "BBQ Ribs", "Apple Pie"},
	models.CuisineFrench:   {"Coq au Vin", "Beef Bourguignon", "Ratatouille", "Crème Brûlée"},
	models.CuisineOther:    {"Special of the Day", "Chef's Choice", "Seasonal Plate"},
}

func (df *DishFactory) CreateDish() models.MenuDish {
	base := df.createBase()
	switch rand.Intn(3) {
	case 0:
		return &models.Appetizer{
			Dish:           base,
			ServingStyle:   randomServingStyle(),
			SpicinessLevel: fake.IntBetween(0, 10),
			Vegetarian:     fake.Bool(),
		}
	case 1:
		return &models.MainCourse{
			Dish:          base,
			CookingMethod: randomCookingMethod(),
			ProteinType:   randomProtein(),
			SideDishes:    randomSideDishes(),
			GlutenFree:    fake.Bool(),
		}
	default:
		return &models.Dessert{
			Dish:           base,
			FlavorProfile:  randomFlavorProfile(),
			SweetnessLevel: fake.IntBetween(0, 10),
			ContainsNuts:   fake.Bool(),
		}
	}
}

func (df *DishFactory) createBase() models.Dish {
	cuisine := models.AllCuisines[rand.Intn(len(models.AllCuisines))]
	names := dishNames[cuisine]
	return models.Dish{
		Name:        names[rand.Intn(len(names))],
		Ingredients: generateRandomIngredients(),
		PrepTime:    fake.IntBetween(5, 90),
		Price:       fake.Float64(2, 5, 50),
		Cuisine:     cuisine,
	}
}

func generateRandomIngredients() []string {
	allIngredients := []string{"Chicken", "Beef", "Pork", "Fish", "Tofu", "Cheese", "Tomato", "Lettuce", "Onion", "Garlic", "Bread", "Rice", "Pasta", "Eggs", "Milk"}
	ingredientCount := rand.Intn(5) + 2 // 2 to 6 ingredients
	ingredients := make([]string, ingredientCount)
	for i := 0; i < ingredientCount; i++ {
		ingredients[i] = allIngredients[rand.Intn(len(allIngredients))]
	}
	return ingredients
}

func randomServingStyle() models.ServingStyle {
	styles := []models.ServingStyle{models.ServingPlated, models.ServingFamilyStyle, models.ServingBuffet}
	return styles[rand.Intn(len(styles))]
}

func randomCookingMethod() models.CookingMethod {
	methods := []models.CookingMethod{models.CookGrilled, models.CookBaked, models.CookBoiled, models.CookFried, models.CookSteamed, models.CookRaw}
	return methods[rand.Intn(len(methods))]
}

func randomFlavorProfile() models.FlavorProfile {
	flavors := []models.FlavorProfile{models.FlavorSweet, models.FlavorBitter, models.FlavorSour, models.FlavorSalty, models.FlavorUmami}
	return flavors[rand.Intn(len(flavors))]
}

func randomProtein() string {
	proteins := []string{"Chicken", "Beef", "Fish", "Pork", "Tofu", "Lamb"}
	return proteins[rand.Intn(len(proteins))]
}

func randomSideDishes() []models.SideDish {
	options := []models.SideDish{
		{Name: "Rice Pilaf", Category: models.SideGrain},
		{Name: "Penne", Category: models.SidePasta},
		{Name: "Lentils", Category: models.SideLegume},
		{Name: "Garlic Bread", Category: models.SideBread},
		{Name: "Garden Salad", Category: models.SideSalad},
		{Name: "Tomato Soup", Category: models.SideSoup},
		{Name: "Mashed Potatoes", Category: models.SideStarches},
		{Name: "Steamed Broccoli", Category: models.SideVegetable},
	}
	count := rand.Intn(3) // 0 to 2 sides
	sides := make([]models.SideDish, count)
	for i := 0; i < count; i++ {
		sides[i] = options[rand.Intn(len(options))]
	}
	return sides
}
