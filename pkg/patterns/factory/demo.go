package factory

import (
	"fmt"
	"io"
)

// Demo orders the same style from two regional stores: the shared
// OrderPizza sequence runs both times, but each store's factory method
// decides what actually gets made.
func Demo(w io.Writer) {
	stores := []PizzaStore{NYPizzaStore{}, ChicagoPizzaStore{}}

	for _, store := range stores {
		p, err := OrderPizza(store, StyleCheese, w)
		if err != nil {
			fmt.Fprintf(w, "order failed: %v\n", err)
			continue
		}
		fmt.Fprintf(w, "Ethan ordered a %s from the %s store\n\n", p.Name(), store.Region())
	}
}
