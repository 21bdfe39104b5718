package models

// TagVocabulary is the static tag taxonomy. Categories and their allowed tags
// are fixed configuration, not user data.
var TagVocabulary = map[string][]string{
	"cuisine": {
		"american", "bbq", "chinese", "french", "indian", "italian",
		"japanese", "korean", "mediterranean", "mexican", "thai", "vietnamese",
	},
	"price": {"$", "$$", "$$$", "$$$$"},
	"vibe": {
		"casual", "cozy", "date night", "family friendly", "late night",
		"outdoor seating", "takeout", "trendy",
	},
	"dietary": {"gluten free", "halal", "kosher", "vegan", "vegetarian"},
}

// ValidTag reports whether tag is part of the vocabulary for category.
func ValidTag(category, tag string) bool {
	tags, ok := TagVocabulary[category]
	if !ok {
		return false
	}
	for _, t := range tags {
		if t == tag {
			return true
		}
	}
	return false
}
