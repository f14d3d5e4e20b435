package services

import "thorned-magnolia/models"

// Base price per shirt style. Styles outside the table fall back to the
// regular t-shirt price rather than erroring.
var basePrices = map[string]float64{
	"regular":    20,
	"vneck":      20,
	"sweatshirt": 25,
}

const defaultBasePrice = 20

// Flat rates that replace the base price when printing front and back.
const (
	bothSidesTShirtPrice     = 25
	bothSidesSweatshirtPrice = 30
)

// Extra cost per size, added after the base/print resolution. Sizes outside
// the table contribute nothing.
var sizePremiums = map[string]float64{
	"2XL": 2,
	"3XL": 4,
	"4XL": 6,
	"5XL": 8,
}

// Quote computes the total price for a custom order. Pure arithmetic over
// the tables above: total = (base + size premium) * quantity, where a
// "both" print location replaces the style's base with a flat rate.
func Quote(style, printLocation, size string, quantity int) float64 {
	base, ok := basePrices[style]
	if !ok {
		base = defaultBasePrice
	}

	if printLocation == "both" {
		if style == "sweatshirt" {
			base = bothSidesSweatshirtPrice
		} else {
			base = bothSidesTShirtPrice
		}
	}

	return (base + sizePremiums[size]) * float64(quantity)
}

// Static lookup tables served by the utility endpoints. Size extra costs
// are derived from the pricing premiums so the two can never drift apart.

func AvailableFonts() []models.Font {
	return []models.Font{
		{ID: "serif", Name: "Classic Serif", Preview: "Your Text Here"},
		{ID: "script", Name: "Elegant Script", Preview: "Your Text Here"},
		{ID: "modern", Name: "Modern Sans", Preview: "YOUR TEXT HERE"},
		{ID: "handwritten", Name: "Handwritten", Preview: "Your Text Here"},
		{ID: "bold", Name: "Bold Impact", Preview: "YOUR TEXT HERE"},
	}
}

func AvailableSizes() []models.SizeOption {
	return []models.SizeOption{
		{ID: "S", Name: "Small", ExtraCost: sizePremiums["S"]},
		{ID: "M", Name: "Medium", ExtraCost: sizePremiums["M"]},
		{ID: "L", Name: "Large", ExtraCost: sizePremiums["L"]},
		{ID: "XL", Name: "Extra Large", ExtraCost: sizePremiums["XL"]},
		{ID: "2XL", Name: "2X Large", ExtraCost: sizePremiums["2XL"]},
		{ID: "3XL", Name: "3X Large", ExtraCost: sizePremiums["3XL"]},
		{ID: "4XL", Name: "4X Large", ExtraCost: sizePremiums["4XL"]},
		{ID: "5XL", Name: "5X Large", ExtraCost: sizePremiums["5XL"]},
	}
}

func AvailableColors() []string {
	return []string{
		"White", "Black", "Navy", "Gray", "Heather Gray", "Red", "Royal Blue",
		"Forest Green", "Purple", "Maroon", "Pink", "Light Blue", "Yellow",
		"Orange", "Brown", "Sage", "Mauve", "Rose Gold", "Burnt Orange",
	}
}

func AvailableShirtStyles() []models.ShirtStyle {
	return []models.ShirtStyle{
		{ID: "regular", Name: "Regular T-Shirt", BasePrice: basePrices["regular"]},
		{ID: "vneck", Name: "V-Neck T-Shirt", BasePrice: basePrices["vneck"]},
		{ID: "sweatshirt", Name: "Sweatshirt", BasePrice: basePrices["sweatshirt"]},
	}
}
