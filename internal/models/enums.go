package models

// Enum values are stored in their canonical uppercase form, matching the
// menu file format and the report output. Label() returns the display form.

type CuisineType string

const (
	CuisineItalian  CuisineType = "ITALIAN"
	CuisineMexican  CuisineType = "MEXICAN"
	CuisineChinese  CuisineType = "CHINESE"
	CuisineIndian   CuisineType = "INDIAN"
	CuisineAmerican CuisineType = "AMERICAN"
	CuisineFrench   CuisineType = "FRENCH"
	CuisineOther    CuisineType = "OTHER"
)

// AllCuisines lists every cuisine in report order.
var AllCuisines = []CuisineType{
	CuisineItalian,
	CuisineMexican,
	CuisineChinese,
	CuisineIndian,
	CuisineAmerican,
	CuisineFrench,
	CuisineOther,
}

// ParseCuisineType maps a raw string to a cuisine type. Unknown strings
// map to CuisineOther rather than failing.
func ParseCuisineType(s string) CuisineType {
	switch s {
	case "ITALIAN":
		return CuisineItalian
	case "MEXICAN":
		return CuisineMexican
	case "CHINESE":
		return CuisineChinese
	case "INDIAN":
		return CuisineIndian
	case "AMERICAN":
		return CuisineAmerican
	case "FRENCH":
		return CuisineFrench
	}
	return CuisineOther
}

type ServingStyle string

const (
	ServingPlated      ServingStyle = "PLATED"
	ServingFamilyStyle ServingStyle = "FAMILY_STYLE"
	ServingBuffet      ServingStyle = "BUFFET"
)

// ParseServingStyle defaults to ServingPlated for unknown strings.
func ParseServingStyle(s string) ServingStyle {
	switch s {
	case "BUFFET":
		return ServingBuffet
	case "FAMILY_STYLE":
		return ServingFamilyStyle
	}
	return ServingPlated
}

func (s ServingStyle) Label() string {
	switch s {
	case ServingFamilyStyle:
		return "Family Style"
	case ServingBuffet:
		return "Buffet"
	}
	return "Plated"
}

type CookingMethod string

const (
	CookGrilled CookingMethod = "GRILLED"
	CookBaked   CookingMethod = "BAKED"
	CookBoiled  CookingMethod = "BOILED"
	CookFried   CookingMethod = "FRIED"
	CookSteamed CookingMethod = "STEAMED"
	CookRaw     CookingMethod = "RAW"
)

// ParseCookingMethod defaults to CookGrilled for unknown strings.
func ParseCookingMethod(s string) CookingMethod {
	switch s {
	case "BAKED":
		return CookBaked
	case "BOILED":
		return CookBoiled
	case "FRIED":
		return CookFried
	case "STEAMED":
		return CookSteamed
	case "RAW":
		return CookRaw
	}
	return CookGrilled
}

func (c CookingMethod) Label() string {
	switch c {
	case CookBaked:
		return "Baked"
	case CookBoiled:
		return "Boiled"
	case CookFried:
		return "Fried"
	case CookSteamed:
		return "Steamed"
	case CookRaw:
		return "Raw"
	}
	return "Grilled"
}

type FlavorProfile string

const (
	FlavorSweet  FlavorProfile = "SWEET"
	FlavorBitter FlavorProfile = "BITTER"
	FlavorSour   FlavorProfile = "SOUR"
	FlavorSalty  FlavorProfile = "SALTY"
	FlavorUmami  FlavorProfile = "UMAMI"
)

// ParseFlavorProfile defaults to FlavorSweet for unknown strings.
func ParseFlavorProfile(s string) FlavorProfile {
	switch s {
	case "BITTER":
		return FlavorBitter
	case "SOUR":
		return FlavorSour
	case "SALTY":
		return FlavorSalty
	case "UMAMI":
		return FlavorUmami
	}
	return FlavorSweet
}

func (f FlavorProfile) Label() string {
	switch f {
	case FlavorBitter:
		return "Bitter"
	case FlavorSour:
		return "Sour"
	case FlavorSalty:
		return "Salty"
	case FlavorUmami:
		return "Umami"
	}
	return "Sweet"
}

type SideDishCategory string

const (
	SideGrain     SideDishCategory = "GRAIN"
	SidePasta     SideDishCategory = "PASTA"
	SideLegume    SideDishCategory = "LEGUME"
	SideBread     SideDishCategory = "BREAD"
	SideSalad     SideDishCategory = "SALAD"
	SideSoup      SideDishCategory = "SOUP"
	SideStarches  SideDishCategory = "STARCHES"
	SideVegetable SideDishCategory = "VEGETABLE"
)

// ParseSideDishCategory defaults to SideVegetable for unknown strings.
func ParseSideDishCategory(s string) SideDishCategory {
	switch s {
	case "GRAIN":
		return SideGrain
	case "PASTA":
		return SidePasta
	case "LEGUME":
		return SideLegume
	case "BREAD":
		return SideBread
	case "SALAD":
		return SideSalad
	case "SOUP":
		return SideSoup
	case "STARCHES":
		return SideStarches
	}
	return SideVegetable
}

func (c SideDishCategory) Label() string {
	switch c {
	case SideGrain:
		return "Grain"
	case SidePasta:
		return "Pasta"
	case SideLegume:
		return "Legume"
	case SideBread:
		return "Bread"
	case SideSalad:
		return "Salad"
	case SideSoup:
		return "Soup"
	case SideStarches:
		return "Starches"
	}
	return "Vegetable"
}
