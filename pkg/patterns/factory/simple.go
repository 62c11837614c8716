package factory

import "fmt"

// SimplePizzaFactory is the simple-factory variant: creation pulled out
// into a standalone object rather than deferred to store subtypes. Kept
// in the notebook as the stepping stone toward the factory method.
type SimplePizzaFactory struct{}

// Create makes a generic pizza of the given style.
func (SimplePizzaFactory) Create(style Style) (Pizza, error) {
	switch style {
	case StyleCheese:
		return &pizza{
			name:     "Cheese Pizza",
			dough:    "Regular Crust",
			sauce:    "Tomato Sauce",
			toppings: []string{"Mozzarella Cheese"},
		}, nil
	case StylePepperoni:
		return &pizza{
			name:     "Pepperoni Pizza",
			dough:    "Regular Crust",
			sauce:    "Tomato Sauce",
			toppings: []string{"Mozzarella Cheese", "Pepperoni"},
		}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownStyle, style)
	}
}
