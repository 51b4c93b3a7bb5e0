package scoring

// Category is one of the five ordered health bands, lowest first.
type Category int

const (
	CategoryCritical Category = iota
	CategoryWeak
	CategoryModerate
	CategoryGood
	CategoryExcellent
)

// Categories lists every band from lowest to highest.
var Categories = []Category{CategoryCritical, CategoryWeak, CategoryModerate, CategoryGood, CategoryExcellent}

var categoryNames = [...]string{"critical", "weak", "moderate", "good", "excellent"}

var zoneLabels = [...]string{"Danger Zone", "At Risk", "Developing", "Solid", "Mastered"}

// String renders the persisted category vocabulary.
func (c Category) String() string {
	if c < CategoryCritical || c > CategoryExcellent {
		return categoryNames[CategoryCritical]
	}
	return categoryNames[c]
}

// Label renders the display zone vocabulary.
func (c Category) Label() string {
	if c < CategoryCritical || c > CategoryExcellent {
		return zoneLabels[CategoryCritical]
	}
	return zoneLabels[c]
}

// ParseCategory maps a persisted category back to its band. Unknown values are critical.
func ParseCategory(s string) Category {
	for i, name := range categoryNames {
		if name == s {
			return Category(i)
		}
	}
	return CategoryCritical
}

type band struct {
	min      int
	category Category
}

// zoneTable is the single source of truth for both vocabularies.
func zoneTable(c Cutpoints) []band {
	return []band{
		{c.Excellent, CategoryExcellent},
		{c.Good, CategoryGood},
		{c.Moderate, CategoryModerate},
		{c.Weak, CategoryWeak},
	}
}

// Classify returns the first band whose minimum the score reaches.
func (t Tuning) Classify(score int) Category {
	for _, b := range zoneTable(t.Cutpoints) {
		if score >= b.min {
			return b.category
		}
	}
	return CategoryCritical
}

// ClassifyFloat classifies an averaged score, rounding first.
func (t Tuning) ClassifyFloat(score float64) Category {
	return t.Classify(roundInt(score))
}
