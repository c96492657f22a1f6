package kitchen

import (
	"testing"

	"github.com/chrisdamba/kitchenboard/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func appetizer(name string, prepTime int, cuisine models.CuisineType, ingredients ...string) *models.Appetizer {
	return &models.Appetizer{
		Dish: models.Dish{
			Name:        name,
			Ingredients: ingredients,
			PrepTime:    prepTime,
			Price:       9.99,
			Cuisine:     cuisine,
		},
		ServingStyle:   models.ServingPlated,
		SpicinessLevel: 3,
	}
}

func sumPrepTimes(dishes []models.MenuDish) int {
	sum := 0
	for _, d := range dishes {
		sum += d.Base().PrepTime
	}
	return sum
}

func countElaborate(dishes []models.MenuDish) int {
	count := 0
	for _, d := range dishes {
		if d.Base().Elaborate() {
			count++
		}
	}
	return count
}

func TestPlaceOrderTracksAggregates(t *testing.T) {
	k := New(10)
	require.True(t, k.PlaceOrder(appetizer("Bruschetta", 15, models.CuisineItalian, "Bread", "Tomato")))
	require.True(t, k.PlaceOrder(appetizer("Feast", 75, models.CuisineFrench, "Beef", "Onion", "Garlic", "Butter", "Cream")))

	assert.Equal(t, 2, k.Size())
	assert.Equal(t, 90, k.PrepTimeSum())
	assert.Equal(t, 1, k.ElaborateDishCount())
}

func TestPlaceOrderAtCapacity(t *testing.T) {
	k := New(1)
	require.True(t, k.PlaceOrder(appetizer("A", 10, models.CuisineOther, "Rice")))
	assert.False(t, k.PlaceOrder(appetizer("B", 20, models.CuisineOther, "Rice")))
	assert.Equal(t, 1, k.Size())
	assert.Equal(t, 10, k.PrepTimeSum())
}

func TestServeDish(t *testing.T) {
	k := New(10)
	require.True(t, k.PlaceOrder(appetizer("Bruschetta", 15, models.CuisineItalian, "Bread", "Tomato")))
	require.True(t, k.PlaceOrder(appetizer("Feast", 75, models.CuisineFrench, "Beef", "Onion", "Garlic", "Butter", "Cream")))

	// equality is structural, so a separately constructed equal dish serves
	assert.True(t, k.ServeDish(appetizer("Feast", 75, models.CuisineFrench, "Beef", "Onion", "Garlic", "Butter", "Cream")))
	assert.Equal(t, 1, k.Size())
	assert.Equal(t, 15, k.PrepTimeSum())
	assert.Equal(t, 0, k.ElaborateDishCount())

	// non-members fail without mutation
	assert.False(t, k.ServeDish(appetizer("Gone", 5, models.CuisineOther, "Rice")))
	assert.Equal(t, 1, k.Size())
	assert.Equal(t, 15, k.PrepTimeSum())
}

func TestServeDishEmptyKitchen(t *testing.T) {
	k := New(5)
	assert.False(t, k.ServeDish(appetizer("A", 10, models.CuisineOther, "Rice")))
}

func TestServeDuplicateRemovesOne(t *testing.T) {
	k := New(5)
	dish := func() *models.Appetizer { return appetizer("Twin", 30, models.CuisineChinese, "Rice", "Garlic") }
	require.True(t, k.PlaceOrder(dish()))
	require.True(t, k.PlaceOrder(dish()))
	assert.Equal(t, 60, k.PrepTimeSum())

	assert.True(t, k.ServeDish(dish()))
	assert.Equal(t, 1, k.Size())
	assert.Equal(t, 30, k.PrepTimeSum())
}

func TestAggregatesHoldAcrossSequences(t *testing.T) {
	k := New(20)
	dishes := []models.MenuDish{
		appetizer("A", 10, models.CuisineItalian, "Bread", "Tomato"),
		appetizer("B", 60, models.CuisineMexican, "Beef", "Onion", "Garlic", "Cheese", "Cream"),
		appetizer("C", 45, models.CuisineItalian, "Rice"),
		appetizer("D", 90, models.CuisineFrench, "Milk", "Eggs", "Flour", "Butter", "Cream", "Sugar"),
	}
	for _, d := range dishes {
		require.True(t, k.PlaceOrder(d))
		assert.Equal(t, sumPrepTimes(k.Dishes()), k.PrepTimeSum())
		assert.Equal(t, countElaborate(k.Dishes()), k.ElaborateDishCount())
	}
	for _, d := range []models.MenuDish{dishes[1], dishes[3], dishes[0]} {
		require.True(t, k.ServeDish(d))
		assert.Equal(t, sumPrepTimes(k.Dishes()), k.PrepTimeSum())
		assert.Equal(t, countElaborate(k.Dishes()), k.ElaborateDishCount())
	}
}

func TestRoundTripToEmpty(t *testing.T) {
	k := New(10)
	dishes := []models.MenuDish{
		appetizer("A", 10, models.CuisineItalian, "Bread"),
		appetizer("B", 60, models.CuisineMexican, "Beef", "Onion", "Garlic", "Cheese", "Cream"),
		appetizer("C", 45, models.CuisineChinese, "Rice"),
	}
	for _, d := range dishes {
		require.True(t, k.PlaceOrder(d))
	}
	// serve in a different order than added
	require.True(t, k.ServeDish(dishes[2]))
	require.True(t, k.ServeDish(dishes[0]))
	require.True(t, k.ServeDish(dishes[1]))

	assert.True(t, k.IsEmpty())
	assert.Equal(t, 0, k.PrepTimeSum())
	assert.Equal(t, 0, k.ElaborateDishCount())
}

func TestAvgPrepTime(t *testing.T) {
	k := New(10)
	assert.Equal(t, 0, k.AvgPrepTime())

	for i, prep := range []int{10, 20, 33} {
		require.True(t, k.PlaceOrder(appetizer(string(rune('A'+i)), prep, models.CuisineOther, "Rice")))
	}
	// round(63/3) = 21
	assert.Equal(t, 21, k.AvgPrepTime())
}

func TestAvgPrepTimeRoundsHalfUp(t *testing.T) {
	k := New(10)
	require.True(t, k.PlaceOrder(appetizer("A", 10, models.CuisineOther, "Rice")))
	require.True(t, k.PlaceOrder(appetizer("B", 15, models.CuisineOther, "Rice")))
	// 12.5 rounds away from zero, not truncated
	assert.Equal(t, 13, k.AvgPrepTime())
}

func TestElaboratePercentage(t *testing.T) {
	k := New(10)
	assert.Equal(t, 0.0, k.ElaboratePercentage())

	elaborate := func(name string) *models.Appetizer {
		return appetizer(name, 60, models.CuisineOther, "A", "B", "C", "D", "E")
	}
	require.True(t, k.PlaceOrder(elaborate("E1")))
	require.True(t, k.PlaceOrder(elaborate("E2")))
	for i := 0; i < 6; i++ {
		require.True(t, k.PlaceOrder(appetizer(string(rune('a'+i)), 10, models.CuisineOther, "Rice")))
	}
	assert.Equal(t, 25.0, k.ElaboratePercentage())

	k2 := New(10)
	require.True(t, k2.PlaceOrder(elaborate("E1")))
	require.True(t, k2.PlaceOrder(appetizer("x", 10, models.CuisineOther, "Rice")))
	require.True(t, k2.PlaceOrder(appetizer("y", 10, models.CuisineOther, "Rice")))
	// round(1/3*10000)/100 = 33.33
	assert.Equal(t, 33.33, k2.ElaboratePercentage())
}

func TestTallyCuisine(t *testing.T) {
	k := New(10)
	require.True(t, k.PlaceOrder(appetizer("A", 10, models.CuisineItalian, "Rice")))
	require.True(t, k.PlaceOrder(appetizer("B", 10, models.CuisineItalian, "Rice")))
	require.True(t, k.PlaceOrder(appetizer("C", 10, models.CuisineMexican, "Rice")))

	assert.Equal(t, 2, k.TallyCuisine(models.CuisineItalian))
	assert.Equal(t, 1, k.TallyCuisine(models.CuisineMexican))
	assert.Equal(t, 0, k.TallyCuisine(models.CuisineFrench))
}

func TestReleaseDishesBelowPrepTime(t *testing.T) {
	k := New(10)
	require.True(t, k.PlaceOrder(appetizer("A", 10, models.CuisineOther, "Rice")))
	require.True(t, k.PlaceOrder(appetizer("B", 45, models.CuisineOther, "Rice")))
	require.True(t, k.PlaceOrder(appetizer("C", 20, models.CuisineOther, "Rice")))

	assert.Equal(t, 2, k.ReleaseDishesBelowPrepTime(30))
	assert.Equal(t, 1, k.Size())
	assert.Equal(t, 45, k.PrepTimeSum())

	// threshold is strict
	assert.Equal(t, 0, k.ReleaseDishesBelowPrepTime(45))
	assert.Equal(t, 1, k.ReleaseDishesBelowPrepTime(46))
	assert.True(t, k.IsEmpty())
}

func TestReleaseDishesByCuisine(t *testing.T) {
	k := New(10)
	require.True(t, k.PlaceOrder(appetizer("A", 10, models.CuisineItalian, "Rice")))
	require.True(t, k.PlaceOrder(appetizer("B", 20, models.CuisineMexican, "Rice")))
	require.True(t, k.PlaceOrder(appetizer("C", 30, models.CuisineItalian, "Rice")))

	assert.Equal(t, 2, k.ReleaseDishesByCuisine(models.CuisineItalian))
	assert.Equal(t, 1, k.Size())
	assert.Equal(t, 20, k.PrepTimeSum())
	assert.Equal(t, 0, k.ReleaseDishesByCuisine(models.CuisineItalian))
}

func TestDietaryAdjustmentAppliesToAllDishes(t *testing.T) {
	k := New(10)
	require.True(t, k.PlaceOrder(appetizer("A", 10, models.CuisineOther, "Meat", "Rice")))
	require.True(t, k.PlaceOrder(appetizer("B", 20, models.CuisineOther, "Chicken", "Bread")))

	k.DietaryAdjustment(models.DietaryRequest{Vegetarian: true})
	for _, d := range k.Dishes() {
		a := d.(*models.Appetizer)
		assert.True(t, a.Vegetarian)
		assert.Equal(t, "Beans", a.Ingredients[0])
	}
}

func TestDietaryAdjustmentUpdatesElaborateCount(t *testing.T) {
	k := New(10)
	// elaborate until the gluten removal drops it to four ingredients
	require.True(t, k.PlaceOrder(appetizer("A", 60, models.CuisineOther, "Flour", "Sugar", "Eggs", "Milk", "Vanilla")))
	require.Equal(t, 1, k.ElaborateDishCount())

	k.DietaryAdjustment(models.DietaryRequest{GlutenFree: true})
	assert.Equal(t, 0, k.ElaborateDishCount())
	assert.Equal(t, 60, k.PrepTimeSum())
	assert.Equal(t, 0.0, k.ElaboratePercentage())
}

func TestReport(t *testing.T) {
	k := New(10)
	require.True(t, k.PlaceOrder(appetizer("A", 10, models.CuisineItalian, "Rice")))
	require.True(t, k.PlaceOrder(appetizer("B", 20, models.CuisineOther, "Rice")))

	report := k.Report()
	assert.Len(t, report.CuisineCounts, len(models.AllCuisines))
	assert.Equal(t, 1, report.CuisineCounts[models.CuisineItalian])
	assert.Equal(t, 1, report.CuisineCounts[models.CuisineOther])
	assert.Equal(t, 0, report.CuisineCounts[models.CuisineFrench])
	assert.Equal(t, 15, report.AvgPrepTime)
	assert.Equal(t, 0.0, report.ElaboratePercentage)
}
