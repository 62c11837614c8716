package models

// Category classifies a design pattern by the kind of problem it addresses.
type Category string

const (
	CategoryBehavioral Category = "behavioral"
	CategoryStructural Category = "structural"
	CategoryCreational Category = "creational"
)

// PatternID identifies a pattern in the catalog.
type PatternID string

const (
	PatternStrategy      PatternID = "strategy"
	PatternObserver      PatternID = "observer"
	PatternDecorator     PatternID = "decorator"
	PatternFactoryMethod PatternID = "factory-method"
	PatternSingleton     PatternID = "singleton"
)

// Pattern is a catalog entry: everything the notebook records about one
// design pattern, including the card content shown by `pb show` and the
// name of the runnable demo.
type Pattern struct {
	ID           PatternID `yaml:"id"`
	Name         string    `yaml:"name"`
	Category     Category  `yaml:"category"`
	Aliases      []string  `yaml:"aliases,omitempty"`
	Intent       string    `yaml:"intent"`
	Problem      string    `yaml:"problem"`
	Solution     string    `yaml:"solution"`
	Participants []string  `yaml:"participants"`
	KeyPoints    []string  `yaml:"key_points"`
	DemoName     string    `yaml:"demo"`
}

// Matches reports whether id refers to this pattern, either by its
// canonical ID or one of its aliases.
func (p Pattern) Matches(id string) bool {
	if string(p.ID) == id {
		return true
	}
	for _, a := range p.Aliases {
		if a == id {
			return true
		}
	}
	return false
}
