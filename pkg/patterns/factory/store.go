package factory

import (
	"fmt"
	"io"
)

// PizzaStore drives the ordering lifecycle. CreatePizza is the factory
// method: each regional store supplies its own, and OrderPizza never
// knows which concrete pizza it is working with.
type PizzaStore interface {
	CreatePizza(style Style) (Pizza, error)
	Region() string
}

// OrderPizza runs the shared ordering sequence against any store, writing
// the lifecycle transcript to w. The created pizza is returned so the
// caller can inspect what the store decided to make.
func OrderPizza(store PizzaStore, style Style, w io.Writer) (Pizza, error) {
	p, err := store.CreatePizza(style)
	if err != nil {
		return nil, fmt.Errorf("creating %s pizza at %s store: %w", style, store.Region(), err)
	}

	fmt.Fprintln(w, p.Prepare())
	fmt.Fprintln(w, p.Bake())
	fmt.Fprintln(w, p.Cut())
	fmt.Fprintln(w, p.Box())
	return p, nil
}

// NYPizzaStore makes thin-crust pizzas with marinara sauce.
type NYPizzaStore struct{}

func (NYPizzaStore) Region() string { return "NY" }

func (NYPizzaStore) CreatePizza(style Style) (Pizza, error) {
	switch style {
	case StyleCheese:
		return &pizza{
			name:     "NY Style Sauce and Cheese Pizza",
			dough:    "Thin Crust Dough",
			sauce:    "Marinara Sauce",
			toppings: []string{"Grated Reggiano Cheese"},
		}, nil
	case StyleVeggie:
		return &pizza{
			name:     "NY Style Veggie Pizza",
			dough:    "Thin Crust Dough",
			sauce:    "Marinara Sauce",
			toppings: []string{"Grated Reggiano Cheese", "Garlic", "Onion", "Mushrooms", "Red Pepper"},
		}, nil
	case StyleClam:
		return &pizza{
			name:     "NY Style Clam Pizza",
			dough:    "Thin Crust Dough",
			sauce:    "Marinara Sauce",
			toppings: []string{"Grated Reggiano Cheese", "Fresh Clams from Long Island Sound"},
		}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownStyle, style)
	}
}

// ChicagoPizzaStore makes deep-dish pizzas cut into squares.
type ChicagoPizzaStore struct{}

func (ChicagoPizzaStore) Region() string { return "Chicago" }

func (ChicagoPizzaStore) CreatePizza(style Style) (Pizza, error) {
	switch style {
	case StyleCheese:
		return &pizza{
			name:      "Chicago Style Deep Dish Cheese Pizza",
			dough:     "Extra Thick Crust Dough",
			sauce:     "Plum Tomato Sauce",
			toppings:  []string{"Shredded Mozzarella Cheese"},
			squareCut: true,
		}, nil
	case StyleVeggie:
		return &pizza{
			name:      "Chicago Style Veggie Pizza",
			dough:     "Extra Thick Crust Dough",
			sauce:     "Plum Tomato Sauce",
			toppings:  []string{"Shredded Mozzarella Cheese", "Black Olives", "Spinach", "Eggplant"},
			squareCut: true,
		}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownStyle, style)
	}
}
