// Package factory implements the pizza store: the factory-method pattern
// (regional stores deciding which pizza to create) alongside the simpler
// standalone-factory variant the notebook contrasts it with.
package factory

import (
	"fmt"
	"strings"
)

// Pizza is the product interface. Prepare through Box return transcript
// lines describing each lifecycle step.
type Pizza interface {
	Name() string
	Prepare() string
	Bake() string
	Cut() string
	Box() string
}

// pizza is the shared product implementation; regional pizzas differ only
// in their data.
type pizza struct {
	name     string
	dough    string
	sauce    string
	toppings []string

	// squareCut marks Chicago-style pizzas, which are cut into squares.
	squareCut bool
}

func (p *pizza) Name() string { return p.name }

func (p *pizza) Prepare() string {
	lines := []string{
		"Preparing " + p.name,
		"Tossing " + p.dough,
		"Adding " + p.sauce,
		"Adding toppings: " + strings.Join(p.toppings, ", "),
	}
	return strings.Join(lines, "\n")
}

func (p *pizza) Bake() string { return "Bake for 25 minutes at 350" }

func (p *pizza) Cut() string {
	if p.squareCut {
		return "Cutting the pizza into square slices"
	}
	return "Cutting the pizza into diagonal slices"
}

func (p *pizza) Box() string { return "Place pizza in official " + p.name + " box" }

// Style names a pizza variety a store can make.
type Style string

const (
	StyleCheese    Style = "cheese"
	StyleVeggie    Style = "veggie"
	StyleClam      Style = "clam"
	StylePepperoni Style = "pepperoni"
)

// ErrUnknownStyle is returned when a store cannot make the requested style.
var ErrUnknownStyle = fmt.Errorf("unknown pizza style")
