// Package decorator implements the coffee shop: condiment decorators that
// wrap any beverage, layering cost and description without subclassing.
package decorator

// Size of a beverage. Some condiments charge by size.
type Size int

const (
	Tall Size = iota
	Grande
	Venti
)

func (s Size) String() string {
	switch s {
	case Tall:
		return "Tall"
	case Grande:
		return "Grande"
	case Venti:
		return "Venti"
	default:
		return "Unknown"
	}
}

// Beverage is the component interface both base drinks and condiment
// decorators satisfy.
type Beverage interface {
	Description() string
	Cost() float64
	Size() Size
}

// base is the common implementation of the concrete drinks.
type base struct {
	description string
	cost        float64
	size        Size
}

func (b base) Description() string { return b.description }
func (b base) Cost() float64       { return b.cost }
func (b base) Size() Size          { return b.size }

// NewEspresso returns a plain espresso.
func NewEspresso(size Size) Beverage {
	return base{description: "Espresso", cost: 1.99, size: size}
}

// NewHouseBlend returns the house blend coffee.
func NewHouseBlend(size Size) Beverage {
	return base{description: "House Blend Coffee", cost: 0.89, size: size}
}

// NewDarkRoast returns a dark roast coffee.
func NewDarkRoast(size Size) Beverage {
	return base{description: "Dark Roast Coffee", cost: 0.99, size: size}
}

// NewDecaf returns a decaf coffee.
func NewDecaf(size Size) Beverage {
	return base{description: "Decaf Coffee", cost: 1.05, size: size}
}
