package categories

import "sort"

// Sort order used when a category does not specify one. Customs default
// after built-ins.
const (
	defaultSortOrderBuiltin = 999
	defaultSortOrderCustom  = 1000
)

// Override is a category a profile defined itself.
type Override struct {
	Code      string
	Label     string
	Icon      string
	Color     string
	IsActive  bool
	SortOrder int
}

// Preference overrides the active state of a built-in category for one
// profile. A missing preference means the built-in category is active.
type Preference struct {
	Code     string
	IsActive bool
}

// Effective is the resolved per-profile view of a single category. It is
// recomputed on every request and never persisted.
type Effective struct {
	Code        string `json:"code" example:"EX"`
	Label       string `json:"label" example:"Exercise"`
	Icon        string `json:"icon" example:"💪"`
	Color       string `json:"color" example:"#4caf50"`
	IsCustom    bool   `json:"isCustom" example:"false"`
	IsActive    bool   `json:"isActive" example:"true"`
	HasDuration bool   `json:"hasDuration" example:"true"`
	SortOrder   int    `json:"sortOrder" example:"1"`
}

// Resolve merges the built-in catalog with a profile's own categories and
// preferences into the ordered, deduplicated effective category list.
//
// An active custom category supersedes a built-in category with the same
// code. An inactive custom category does not suppress its built-in
// counterpart. Preferences referencing codes that are not in the catalog
// are ignored.
//
// Resolve is a pure function: identical inputs yield identical output.
func Resolve(catalog []Definition, overrides []Override, preferences []Preference) []Effective {
	active := make(map[string]bool, len(preferences))
	for _, preference := range preferences {
		active[preference.Code] = preference.IsActive
	}

	result := make([]Effective, 0, len(catalog)+len(overrides))

	for _, definition := range catalog {
		isActive, ok := active[definition.Code]
		if !ok {
			isActive = true
		}

		result = append(result, Effective{
			Code:        definition.Code,
			Label:       definition.Label,
			Icon:        definition.Icon,
			IsCustom:    false,
			IsActive:    isActive,
			HasDuration: definition.HasDuration,
			SortOrder:   definition.SortOrder,
		})
	}

	for _, override := range overrides {
		if override.IsActive {
			// The active custom definition supersedes the built-in entry
			for i, entry := range result {
				if !entry.IsCustom && entry.Code == override.Code {
					result = append(result[:i], result[i+1:]...)
					break
				}
			}
		}

		// Keeping the list free of duplicate codes wins over carrying an
		// inactive custom entry next to its built-in counterpart
		if containsCode(result, override.Code) {
			continue
		}

		result = append(result, Effective{
			Code:        override.Code,
			Label:       override.Label,
			Icon:        override.Icon,
			Color:       override.Color,
			IsCustom:    true,
			IsActive:    override.IsActive,
			HasDuration: true,
			SortOrder:   override.SortOrder,
		})
	}

	sort.SliceStable(result, func(i, j int) bool {
		a, b := result[i], result[j]

		if a.IsActive != b.IsActive {
			return a.IsActive
		}

		if a.IsCustom != b.IsCustom {
			return a.IsCustom
		}

		return effectiveSortOrder(a) < effectiveSortOrder(b)
	})

	return result
}

// IsValidActiveCode reports whether a code references an active effective
// category. It is the sole gate before any mutation referencing a
// category code; empty codes are always invalid.
func IsValidActiveCode(code string, list []Effective) bool {
	if code == "" {
		return false
	}

	for _, entry := range list {
		if entry.Code == code && entry.IsActive {
			return true
		}
	}

	return false
}

// FilterActive returns only the active entries, preserving order.
func FilterActive(list []Effective) []Effective {
	result := make([]Effective, 0, len(list))
	for _, entry := range list {
		if entry.IsActive {
			result = append(result, entry)
		}
	}

	return result
}

func containsCode(list []Effective, code string) bool {
	for _, entry := range list {
		if entry.Code == code {
			return true
		}
	}

	return false
}

func effectiveSortOrder(entry Effective) int {
	if entry.SortOrder != 0 {
		return entry.SortOrder
	}

	if entry.IsCustom {
		return defaultSortOrderCustom
	}

	return defaultSortOrderBuiltin
}
