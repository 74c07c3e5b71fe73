package talent

import "strings"

// Filter applies the category pill and, when advanced is set, the advanced
// filter tier. Filtering only: input order is preserved, nothing is
// re-sorted. Category and advanced constraints combine with AND.
func Filter(list []Talent, category Category, advanced bool, f AdvancedFilters) []Talent {
	out := make([]Talent, 0, len(list))

	for _, t := range list {
		if !matchesCategory(t, category) {
			continue
		}
		if advanced && !matchesAdvanced(t, f) {
			continue
		}
		out = append(out, t)
	}

	return out
}

func matchesCategory(t Talent, category Category) bool {
	switch category {
	case CategoryMale:
		return t.Gender == "Male" && t.Age >= kidsAgeCutoff
	case CategoryFemale:
		return t.Gender == "Female" && t.Age >= kidsAgeCutoff
	case CategoryKids:
		return t.Age < kidsAgeCutoff
	default: // All or unset
		return true
	}
}

func matchesAdvanced(t Talent, f AdvancedFilters) bool {
	if f.Location != "" &&
		!strings.Contains(strings.ToLower(t.Location), strings.ToLower(f.Location)) {
		return false
	}

	// Age bounds are inclusive; both apply only when a range is given
	if f.MaxAge > 0 && (t.Age < f.MinAge || t.Age > f.MaxAge) {
		return false
	}
	if f.MaxAge == 0 && f.MinAge > 0 && t.Age < f.MinAge {
		return false
	}

	if f.Gender != "" && f.Gender != "All" && t.Gender != f.Gender {
		return false
	}

	// Zero min-height means unconstrained
	if f.MinHeightCm > 0 && t.HeightCm < f.MinHeightCm {
		return false
	}

	return true
}
