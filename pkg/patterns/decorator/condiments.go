package decorator

// condiment is the decorator base: it wraps a Beverage and delegates Size
// to the wrapped drink so stacked condiments see the original size.
type condiment struct {
	wrapped Beverage
	name    string
	price   float64
}

func (c condiment) Description() string { return c.wrapped.Description() + ", " + c.name }
func (c condiment) Cost() float64       { return c.wrapped.Cost() + c.price }
func (c condiment) Size() Size          { return c.wrapped.Size() }

// WithMocha wraps a beverage with mocha.
func WithMocha(b Beverage) Beverage {
	return condiment{wrapped: b, name: "Mocha", price: 0.20}
}

// WithWhip wraps a beverage with whipped cream.
func WithWhip(b Beverage) Beverage {
	return condiment{wrapped: b, name: "Whip", price: 0.10}
}

// WithSteamedMilk wraps a beverage with steamed milk.
func WithSteamedMilk(b Beverage) Beverage {
	return condiment{wrapped: b, name: "Steamed Milk", price: 0.10}
}

// WithSoy wraps a beverage with soy. Soy is priced by the size of the
// drink it ends up on.
func WithSoy(b Beverage) Beverage {
	return soy{wrapped: b}
}

type soy struct {
	wrapped Beverage
}

func (s soy) Description() string { return s.wrapped.Description() + ", Soy" }
func (s soy) Size() Size          { return s.wrapped.Size() }

func (s soy) Cost() float64 {
	return s.wrapped.Cost() + SoyPrice(s.wrapped.Size())
}

// SoyPrice returns the soy surcharge for a given size. Exposed so tests
// and the demo can state expected totals without duplicating the table.
func SoyPrice(size Size) float64 {
	switch size {
	case Grande:
		return 0.20
	case Venti:
		return 0.25
	default:
		return 0.15
	}
}
