// Package core contains the business logic of patternbook: the pattern
// catalog, demo runner, quiz engine, progress tracking, review planning,
// and configuration.
package core

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/hferraz/patternbook/pkg/models"
	"github.com/hferraz/patternbook/pkg/patterns/decorator"
	"github.com/hferraz/patternbook/pkg/patterns/factory"
	"github.com/hferraz/patternbook/pkg/patterns/observer"
	"github.com/hferraz/patternbook/pkg/patterns/singleton"
	"github.com/hferraz/patternbook/pkg/patterns/strategy"
)

// Catalog defines the interface for looking up the built-in pattern entries.
type Catalog interface {
	Get(id string) (*models.Pattern, error)
	All() []models.Pattern
	ByCategory(category models.Category) []models.Pattern
	Search(query string) []models.Pattern
	DemoFunc(id models.PatternID) (func(io.Writer), error)
}

type staticCatalog struct {
	patterns []models.Pattern
	demos    map[models.PatternID]func(io.Writer)
}

// NewCatalog creates the catalog of built-in patterns and their demos.
func NewCatalog() Catalog {
	return &staticCatalog{
		patterns: builtinPatterns(),
		demos: map[models.PatternID]func(io.Writer){
			models.PatternStrategy:      strategy.Demo,
			models.PatternObserver:      observer.Demo,
			models.PatternDecorator:     decorator.Demo,
			models.PatternFactoryMethod: factory.Demo,
			models.PatternSingleton:     singleton.Demo,
		},
	}
}

// Get returns the pattern whose ID or alias matches id.
func (c *staticCatalog) Get(id string) (*models.Pattern, error) {
	id = strings.ToLower(strings.TrimSpace(id))
	for _, p := range c.patterns {
		if p.Matches(id) {
			entry := p
			return &entry, nil
		}
	}
	return nil, fmt.Errorf("pattern %q not found (try 'pb list')", id)
}

// All returns every pattern, sorted by category then name.
func (c *staticCatalog) All() []models.Pattern {
	result := make([]models.Pattern, len(c.patterns))
	copy(result, c.patterns)
	sort.Slice(result, func(i, j int) bool {
		if result[i].Category != result[j].Category {
			return result[i].Category < result[j].Category
		}
		return result[i].Name < result[j].Name
	})
	return result
}

// ByCategory returns the patterns in the given category.
func (c *staticCatalog) ByCategory(category models.Category) []models.Pattern {
	var result []models.Pattern
	for _, p := range c.All() {
		if p.Category == category {
			result = append(result, p)
		}
	}
	return result
}

// Search matches the query case-insensitively against pattern names,
// intents, key points, and participants.
func (c *staticCatalog) Search(query string) []models.Pattern {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}

	var result []models.Pattern
	for _, p := range c.All() {
		if patternMatches(p, q) {
			result = append(result, p)
		}
	}
	return result
}

func patternMatches(p models.Pattern, q string) bool {
	haystacks := []string{string(p.ID), p.Name, p.Intent, p.Problem, p.Solution}
	haystacks = append(haystacks, p.KeyPoints...)
	haystacks = append(haystacks, p.Participants...)
	for _, h := range haystacks {
		if strings.Contains(strings.ToLower(h), q) {
			return true
		}
	}
	return false
}

// DemoFunc returns the runnable demo for a pattern ID.
func (c *staticCatalog) DemoFunc(id models.PatternID) (func(io.Writer), error) {
	demo, ok := c.demos[id]
	if !ok {
		return nil, fmt.Errorf("no demo registered for pattern %q", id)
	}
	return demo, nil
}

func builtinPatterns() []models.Pattern {
	return []models.Pattern{
		{
			ID:       models.PatternStrategy,
			Name:     "Strategy",
			Category: models.CategoryBehavioral,
			Intent:   "Encapsulate interchangeable behaviors behind a common interface and compose them into a context object rather than inheriting them.",
			Problem:  "Duck subclasses inherited fly and quack, so every new duck kind either got wrong behavior or overrode it everywhere. Behavior changes rippled through the hierarchy.",
			Solution: "Pull fly and quack out into behavior interfaces. A duck holds one implementation of each and delegates; behaviors can be swapped at runtime without touching the duck.",
			Participants: []string{
				"FlyBehavior / QuackBehavior (strategy interfaces)",
				"FlyWithWings, FlyNoWay, Quack, Squeak, MuteQuack (concrete strategies)",
				"Duck (context delegating to its behaviors)",
			},
			KeyPoints: []string{
				"Favor composition over inheritance",
				"Program to an interface, not an implementation",
				"Behaviors are swappable at runtime via setters",
			},
			DemoName: "duck simulator",
		},
		{
			ID:       models.PatternObserver,
			Name:     "Observer",
			Category: models.CategoryBehavioral,
			Intent:   "Define a one-to-many relationship so that when one object changes state, all its dependents are notified automatically.",
			Problem:  "Multiple weather displays need fresh measurements, but the station must not know display details or grow a new method per display.",
			Solution: "Displays register with the WeatherData subject through an Observer interface. On every measurement change the subject pushes the new state to all registered observers.",
			Participants: []string{
				"Subject (Register / Remove / NotifyAll)",
				"WeatherData (concrete subject holding measurements)",
				"Observer (Update)",
				"CurrentConditions, Statistics, Forecast, HeatIndex displays",
			},
			KeyPoints: []string{
				"Subjects and observers are loosely coupled",
				"Observers can come and go at runtime",
				"Notification order is registration order",
			},
			DemoName: "weather station",
		},
		{
			ID:       models.PatternDecorator,
			Name:     "Decorator",
			Category: models.CategoryStructural,
			Intent:   "Attach additional responsibilities to an object dynamically by wrapping it, keeping the same interface as the wrapped component.",
			Problem:  "Pricing every beverage-plus-condiments combination as its own class explodes combinatorially, and a milk price change touches dozens of classes.",
			Solution: "Condiments are decorators implementing Beverage and holding a Beverage. Cost and description delegate inward and add their own contribution, so wrappers stack freely.",
			Participants: []string{
				"Beverage (component interface)",
				"Espresso, HouseBlend, DarkRoast, Decaf (concrete components)",
				"Mocha, Soy, Whip, SteamedMilk (decorators)",
			},
			KeyPoints: []string{
				"Decorators are transparent to callers",
				"Wrapping composes: any depth, any order",
				"Size-aware pricing shows decorators can inspect the wrapped object",
			},
			DemoName: "coffee shop",
		},
		{
			ID:       models.PatternFactoryMethod,
			Name:     "Factory Method",
			Category: models.CategoryCreational,
			Aliases:  []string{"factory"},
			Intent:   "Define an interface for creating an object, but let subtypes decide which concrete type to instantiate, decoupling creation from use.",
			Problem:  "The pizza-ordering sequence is identical everywhere, but each regional store makes different pizzas; instantiating concrete pizzas inline couples the sequence to every variety.",
			Solution: "OrderPizza drives the shared lifecycle against a PizzaStore interface whose CreatePizza factory method each regional store supplies.",
			Participants: []string{
				"PizzaStore (creator interface with the CreatePizza factory method)",
				"NYPizzaStore, ChicagoPizzaStore (concrete creators)",
				"Pizza (product interface)",
			},
			KeyPoints: []string{
				"The creator's lifecycle code never names a concrete product",
				"Contrast with the simple factory, which centralizes rather than defers creation",
				"Unknown styles surface as errors, not nil products",
			},
			DemoName: "pizza store",
		},
		{
			ID:       models.PatternSingleton,
			Name:     "Singleton",
			Category: models.CategoryCreational,
			Intent:   "Ensure a type has exactly one instance and provide a global point of access to it.",
			Problem:  "A factory has one chocolate boiler; two code paths each constructing their own boiler would double-fill the real machine.",
			Solution: "A package-level accessor lazily creates the single boiler on first use. In Go, sync.Once gives the lazy, race-free initialization that double-checked locking approximates elsewhere.",
			Participants: []string{
				"ChocolateBoiler (the single shared instance)",
				"GetBoiler (lazy accessor guarded by sync.Once)",
			},
			KeyPoints: []string{
				"sync.Once replaces double-checked locking",
				"The instance's own methods still need their own locking",
				"Global access makes testing harder; a reset hook keeps tests honest",
			},
			DemoName: "chocolate boiler",
		},
	}
}
