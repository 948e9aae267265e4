// Package category assigns a spending category to a transaction
// description via an ordered list of keyword rules.
package category

import "strings"

// Category labels.
const (
	FoodDining     = "Food & Dining"
	Transportation = "Transportation"
	Entertainment  = "Entertainment"
	Shopping       = "Shopping"
	Utilities      = "Utilities"
	Rent           = "Rent"

	// DefaultLabel is returned when no rule matches.
	DefaultLabel = "Others"
)

// Rule maps a keyword to a category label.
type Rule struct {
	Keyword string
	Label   string
}

// rules is evaluated top to bottom; the first keyword found in the
// description wins, so the order here is part of the contract.
var rules = []Rule{
	{"swiggy", FoodDining},
	{"zomato", FoodDining},
	{"uber", Transportation},
	{"ola", Transportation},
	{"netflix", Entertainment},
	{"prime", Entertainment},
	{"amazon", Shopping},
	{"flipkart", Shopping},
	{"bazaar", Shopping},
	{"mart", Shopping},
	{"electricity", Utilities},
	{"water", Utilities},
	{"bill", Utilities},
	{"rent", Rent},
}

// Detect returns the category label for a transaction description.
// Matching is case-insensitive substring, first rule wins; descriptions
// matching no rule get DefaultLabel. Pure function, deterministic.
func Detect(description string) string {
	text := strings.ToLower(description)
	for _, r := range rules {
		if strings.Contains(text, r.Keyword) {
			return r.Label
		}
	}
	return DefaultLabel
}

// Labels returns the closed set of valid category labels, DefaultLabel included.
func Labels() []string {
	return []string{
		FoodDining,
		Transportation,
		Entertainment,
		Shopping,
		Utilities,
		Rent,
		DefaultLabel,
	}
}

// Valid reports whether label is a member of the closed label set.
func Valid(label string) bool {
	for _, l := range Labels() {
		if l == label {
			return true
		}
	}
	return false
}
