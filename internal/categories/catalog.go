// Package categories resolves the built-in category catalog and a
// profile's own categories and preferences into the effective category
// list that every loader and mutation works with.
package categories

// Definition is a built-in category. The catalog is compiled into the
// binary and passed to Resolve explicitly so that tests can use
// synthetic catalogs.
type Definition struct {
	Code        string // Short unique code, e.g. "EX"
	Label       string // Display name
	Icon        string // Display glyph
	HasDuration bool   // Whether a duration applies to entries of this category
	SortOrder   int    // Default ordering hint
}

// Catalog is the built-in category catalog.
var Catalog = []Definition{
	{Code: "EX", Label: "Exercise", Icon: "💪", HasDuration: true, SortOrder: 1},
	{Code: "BK", Label: "Reading", Icon: "📚", HasDuration: true, SortOrder: 2},
	{Code: "ML", Label: "Meal", Icon: "🍽️", HasDuration: false, SortOrder: 3},
	{Code: "EM", Label: "Emotion", Icon: "🙂", HasDuration: false, SortOrder: 4},
	{Code: "ST", Label: "Study", Icon: "✏️", HasDuration: true, SortOrder: 5},
	{Code: "WK", Label: "Work", Icon: "💼", HasDuration: true, SortOrder: 6},
	{Code: "HB", Label: "Hobby", Icon: "🎨", HasDuration: true, SortOrder: 7},
	{Code: "SL", Label: "Sleep", Icon: "😴", HasDuration: true, SortOrder: 8},
	{Code: "RT", Label: "Rest", Icon: "☕", HasDuration: true, SortOrder: 9},
	{Code: "MD", Label: "Meditation", Icon: "🧘", HasDuration: true, SortOrder: 10},
}

// InCatalog reports whether a code is a built-in category code.
func InCatalog(catalog []Definition, code string) bool {
	for _, definition := range catalog {
		if definition.Code == code {
			return true
		}
	}

	return false
}
