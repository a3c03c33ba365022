package journal

import (
	"slices"
)

// catalog maps an activity category to the lines an entry may draw from it.
// It is never mutated after init.
var catalog = map[string][]string{
	"Gratitude": {
		"😘 Grateful for my morning cup of coffee",
		"😘 Grateful for living in a safe city",
		"😘 Grateful for my family",
		"😘 Grateful for feeling the wind while running",
		"😘 Grateful for eating a sorbet",
	},
	"Sport": {
		"🏃 Run 10km",
		"🏃 Long Run",
		"🏋️ Exercise using Kettlebells",
		"🚴 Bike during one hour",
		"🏊 Swimming pool",
	},
	"Meditation": {
		"🧘 Meditate",
		"🧘 Yoga",
	},
	"Work": {
		"🏢 Meeting",
		"✍️ Completed design doc",
		"💻 Finished MR",
		"🍽️ Restaurant",
	},
	"Family": {
		"🌴 Park",
		"🛝 Played with kids",
		"📺 Watched a great movie",
		"🍿 Cinema",
	},
	"Hobbies": {
		"✍️ Wrote a blog post",
		"📚 Read a book",
		"🎶 Played music",
	},
}

// Categories returns every catalog category in sorted order.
func Categories() []string {
	keys := make([]string, 0, len(catalog))
	for k := range catalog {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// HasCategory reports whether the catalog knows the given category.
func HasCategory(category string) bool {
	_, ok := catalog[category]
	return ok
}

// Activities returns a copy of the lines of a category, or nil if unknown.
func Activities(category string) []string {
	return slices.Clone(catalog[category])
}
