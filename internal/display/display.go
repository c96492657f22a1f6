// Package display renders dishes and kitchen reports as text. Formatting
// lives here, outside the core; the core only supplies the field data.
package display

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/chrisdamba/kitchenboard/internal/kitchen"
	"github.com/chrisdamba/kitchenboard/internal/models"
)

// RenderDish writes one dish in the board's fixed field order: the shared
// base fields followed by the variant-specific ones.
func RenderDish(w io.Writer, dish models.MenuDish) {
	base := dish.Base()
	fmt.Fprintf(w, "Dish Name: %s\n", base.Name)
	fmt.Fprintf(w, "Ingredients: %s\n", strings.Join(base.Ingredients, ", "))
	fmt.Fprintf(w, "Preparation Time: %d minutes\n", base.PrepTime)
	fmt.Fprintf(w, "Price: $%.2f\n", base.Price)
	fmt.Fprintf(w, "Cuisine Type: %s\n", base.Cuisine)
	for _, field := range dish.DisplayFields() {
		fmt.Fprintf(w, "%s: %s\n", field.Label, field.Value)
	}
}

// RenderMenu writes every dish with a blank line in between.
func RenderMenu(w io.Writer, dishes []models.MenuDish) {
	for _, dish := range dishes {
		RenderDish(w, dish)
		fmt.Fprintln(w)
	}
}

// RenderReport writes the per-cuisine tallies, average prep time and
// elaborate-dish percentage.
func RenderReport(w io.Writer, report kitchen.Report) {
	for _, cuisine := range models.AllCuisines {
		fmt.Fprintf(w, "%s: %d\n", cuisine, report.CuisineCounts[cuisine])
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "AVERAGE PREP TIME: %d\n", report.AvgPrepTime)
	fmt.Fprintf(w, "ELABORATE DISHES: %s%%\n", strconv.FormatFloat(report.ElaboratePercentage, 'f', -1, 64))
}
