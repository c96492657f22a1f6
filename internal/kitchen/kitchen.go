package kitchen

import (
	"math"

	"github.com/chrisdamba/kitchenboard/internal/models"
)

// Kitchen is the order board: a bag of dishes plus running aggregates that
// are maintained incrementally on every successful mutation, never derived
// lazily from the collection.
type Kitchen struct {
	dishes         *Bag[models.MenuDish]
	totalPrepTime  int
	elaborateCount int
}

func New(capacity int) *Kitchen {
	return &Kitchen{
		dishes: NewBag(capacity, func(a, b models.MenuDish) bool {
			return a.Equals(b)
		}),
	}
}

// PlaceOrder adds a dish to the board. It returns false when the board is
// at capacity, in which case nothing changes.
func (k *Kitchen) PlaceOrder(dish models.MenuDish) bool {
	if !k.dishes.Add(dish) {
		return false
	}
	k.totalPrepTime += dish.Base().PrepTime
	if dish.Base().Elaborate() {
		k.elaborateCount++
	}
	return true
}

// ServeDish removes one dish equal to the given one and releases it. It
// returns false if no such dish is held; no partial mutation occurs.
func (k *Kitchen) ServeDish(dish models.MenuDish) bool {
	if k.dishes.IsEmpty() {
		return false
	}
	// Locate the held occurrence so the aggregates are adjusted from the
	// member's own attributes, not the caller's copy.
	var held models.MenuDish
	found := false
	for _, d := range k.dishes.Items() {
		if d.Equals(dish) {
			held = d
			found = true
			break
		}
	}
	if !found {
		return false
	}
	k.dishes.Remove(held)
	k.totalPrepTime -= held.Base().PrepTime
	if held.Base().Elaborate() {
		k.elaborateCount--
	}
	return true
}

// DietaryAdjustment applies the request to every held dish. A transform can
// shrink an ingredient list below the elaborate threshold, so the elaborate
// count is adjusted per dish from its before/after state. Prep time is not
// touched by any accommodation.
func (k *Kitchen) DietaryAdjustment(request models.DietaryRequest) {
	for _, dish := range k.dishes.Items() {
		wasElaborate := dish.Base().Elaborate()
		dish.ApplyDietaryAccommodations(request)
		if wasElaborate != dish.Base().Elaborate() {
			if wasElaborate {
				k.elaborateCount--
			} else {
				k.elaborateCount++
			}
		}
	}
}

func (k *Kitchen) Size() int     { return k.dishes.Size() }
func (k *Kitchen) IsEmpty() bool { return k.dishes.IsEmpty() }
func (k *Kitchen) IsFull() bool  { return k.dishes.IsFull() }

// Dishes returns the held dishes in storage order (unspecified).
func (k *Kitchen) Dishes() []models.MenuDish {
	return k.dishes.Items()
}

// PrepTimeSum returns the total preparation time of all held dishes.
func (k *Kitchen) PrepTimeSum() int {
	if k.dishes.IsEmpty() {
		return 0
	}
	return k.totalPrepTime
}

// AvgPrepTime returns the average preparation time in minutes, rounded to
// the nearest integer. An empty board averages 0.
func (k *Kitchen) AvgPrepTime() int {
	if k.dishes.IsEmpty() {
		return 0
	}
	return int(math.Round(float64(k.totalPrepTime) / float64(k.dishes.Size())))
}

// ElaborateDishCount returns the number of held elaborate dishes.
func (k *Kitchen) ElaborateDishCount() int {
	if k.dishes.IsEmpty() {
		return 0
	}
	return k.elaborateCount
}

// ElaboratePercentage returns the share of elaborate dishes as a two-decimal
// percentage. An empty board reports 0.
func (k *Kitchen) ElaboratePercentage() float64 {
	if k.dishes.IsEmpty() || k.elaborateCount == 0 {
		return 0
	}
	return math.Round(float64(k.elaborateCount)/float64(k.dishes.Size())*10000) / 100
}

// TallyCuisine counts held dishes of the given cuisine by linear scan.
func (k *Kitchen) TallyCuisine(cuisine models.CuisineType) int {
	count := 0
	for _, dish := range k.dishes.Items() {
		if dish.Base().Cuisine == cuisine {
			count++
		}
	}
	return count
}

// ReleaseDishesBelowPrepTime serves every dish with preparation time
// strictly below threshold and returns how many were served. Targets are
// snapshotted first because removal reorders the underlying storage.
func (k *Kitchen) ReleaseDishesBelowPrepTime(threshold int) int {
	return k.releaseMatching(func(d models.MenuDish) bool {
		return d.Base().PrepTime < threshold
	})
}

// ReleaseDishesByCuisine serves every dish of the given cuisine and returns
// how many were served.
func (k *Kitchen) ReleaseDishesByCuisine(cuisine models.CuisineType) int {
	return k.releaseMatching(func(d models.MenuDish) bool {
		return d.Base().Cuisine == cuisine
	})
}

func (k *Kitchen) releaseMatching(match func(models.MenuDish) bool) int {
	var targets []models.MenuDish
	for _, dish := range k.dishes.Items() {
		if match(dish) {
			targets = append(targets, dish)
		}
	}
	count := 0
	for _, dish := range targets {
		if k.ServeDish(dish) {
			count++
		}
	}
	return count
}

// Report captures the board's aggregate statistics.
type Report struct {
	CuisineCounts       map[models.CuisineType]int `json:"cuisine_counts"`
	AvgPrepTime         int                        `json:"avg_prep_time"`
	ElaboratePercentage float64                    `json:"elaborate_percentage"`
}

func (k *Kitchen) Report() Report {
	counts := make(map[models.CuisineType]int, len(models.AllCuisines))
	for _, cuisine := range models.AllCuisines {
		counts[cuisine] = k.TallyCuisine(cuisine)
	}
	return Report{
		CuisineCounts:       counts,
		AvgPrepTime:         k.AvgPrepTime(),
		ElaboratePercentage: k.ElaboratePercentage(),
	}
}
