package places

// worshipTypes are the upstream tags that resolve to Temple. Houses of
// worship take precedence over every generic tourist tag.
var worshipTypes = map[string]struct{}{
	"hindu_temple":     {},
	"church":           {},
	"mosque":           {},
	"place_of_worship": {},
}

// CategoryFor maps an upstream type-tag set to a category. It is total: any
// input, including an empty one, resolves to exactly one category. Priority
// when several tags match: worship > museum > monument > park.
func CategoryFor(types []string) Category {
	hasType := make(map[string]struct{}, len(types))
	for _, t := range types {
		if _, ok := worshipTypes[t]; ok {
			return CategoryTemple
		}
		hasType[t] = struct{}{}
	}
	if _, ok := hasType["museum"]; ok {
		return CategoryMuseum
	}
	if _, ok := hasType["monument"]; ok {
		return CategoryMonument
	}
	if _, ok := hasType["park"]; ok {
		return CategoryPark
	}
	return CategoryTouristSpot
}
