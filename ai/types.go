package ai

// DefaultCategories is the default label set for note classification.
// The last entry is the fallback for texts that fit no other label.
var DefaultCategories = []string{
	"life",
	"food",
	"technology",
	"current-events",
	"travel",
	"entertainment",
	"learning",
	"business",
	"other",
}
