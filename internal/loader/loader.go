// Package loader reads delimited menu files into dish records. Rows the
// loader cannot make sense of are skipped individually; a bad row never
// aborts the batch.
package loader

import (
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/chrisdamba/kitchenboard/internal/models"
	"github.com/schollz/progressbar/v3"
)

// Stats reports the outcome of one bulk load.
type Stats struct {
	Loaded  int
	Skipped int
}

// LoadMenu reads a menu file and returns one dish per valid row. The first
// line is a header. Row format:
//
//	TYPE,name,ing;ing;...,prep_time,price,CUISINE,attr;attr;attr
func LoadMenu(path string, showProgress bool) ([]models.MenuDish, Stats, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, Stats{}, fmt.Errorf("failed to open menu file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1 // row validation happens per record
	records, err := reader.ReadAll()
	if err != nil {
		return nil, Stats{}, fmt.Errorf("failed to read menu file: %w", err)
	}
	if len(records) > 0 {
		records = records[1:] // header
	}

	var bar *progressbar.ProgressBar
	if showProgress {
		bar = progressbar.Default(int64(len(records)), "loading menu")
	}

	var dishes []models.MenuDish
	var stats Stats
	for _, record := range records {
		if bar != nil {
			bar.Add(1)
		}
		dish, err := ParseRow(record)
		if err != nil {
			log.Printf("skipping menu row: %v", err)
			stats.Skipped++
			continue
		}
		dishes = append(dishes, dish)
		stats.Loaded++
	}
	return dishes, stats, nil
}

// ParseRow builds a single dish from one row of raw fields.
func ParseRow(fields []string) (models.MenuDish, error) {
	if len(fields) < 7 {
		return nil, fmt.Errorf("expected 7 fields, got %d", len(fields))
	}

	prepTime, err := strconv.Atoi(strings.TrimSpace(fields[3]))
	if err != nil {
		return nil, fmt.Errorf("bad prep time %q: %w", fields[3], err)
	}
	price, err := strconv.ParseFloat(strings.TrimSpace(fields[4]), 64)
	if err != nil {
		return nil, fmt.Errorf("bad price %q: %w", fields[4], err)
	}

	base := models.Dish{
		Name:        fields[1],
		Ingredients: splitList(fields[2]),
		PrepTime:    prepTime,
		Price:       price,
		Cuisine:     models.ParseCuisineType(fields[5]),
	}

	attrs := splitList(fields[6])
	if len(attrs) < 3 {
		return nil, fmt.Errorf("expected 3 variant attributes, got %d", len(attrs))
	}

	switch models.DishKind(fields[0]) {
	case models.KindAppetizer:
		spiciness, err := strconv.Atoi(attrs[1])
		if err != nil {
			return nil, fmt.Errorf("bad spiciness level %q: %w", attrs[1], err)
		}
		return &models.Appetizer{
			Dish:           base,
			ServingStyle:   models.ParseServingStyle(attrs[0]),
			SpicinessLevel: spiciness,
			Vegetarian:     attrs[2] == "true",
		}, nil
	case models.KindMainCourse:
		return &models.MainCourse{
			Dish:          base,
			CookingMethod: models.ParseCookingMethod(attrs[0]),
			ProteinType:   attrs[1],
			GlutenFree:    attrs[2] == "true",
		}, nil
	case models.KindDessert:
		sweetness, err := strconv.Atoi(attrs[1])
		if err != nil {
			return nil, fmt.Errorf("bad sweetness level %q: %w", attrs[1], err)
		}
		return &models.Dessert{
			Dish:           base,
			FlavorProfile:  models.ParseFlavorProfile(attrs[0]),
			SweetnessLevel: sweetness,
			ContainsNuts:   attrs[2] == "true",
		}, nil
	}
	return nil, fmt.Errorf("unknown dish type %q", fields[0])
}

// splitList splits a semicolon-separated field. An empty field yields no
// entries, and a single trailing separator is tolerated.
func splitList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ";")
	if len(parts) > 0 && parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}
	return parts
}
