package factory

import (
	"errors"
	"io"
	"strings"
	"testing"
)

func TestNYStore_MakesNYStylePizza(t *testing.T) {
	var buf strings.Builder
	p, err := OrderPizza(NYPizzaStore{}, StyleCheese, &buf)
	if err != nil {
		t.Fatalf("OrderPizza failed: %v", err)
	}

	if got := p.Name(); got != "NY Style Sauce and Cheese Pizza" {
		t.Errorf("Name() = %q", got)
	}

	out := buf.String()
	for _, want := range []string{
		"Tossing Thin Crust Dough",
		"Adding Marinara Sauce",
		"Cutting the pizza into diagonal slices",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("order transcript missing %q:\n%s", want, out)
		}
	}
}

func TestChicagoStore_CutsIntoSquares(t *testing.T) {
	var buf strings.Builder
	p, err := OrderPizza(ChicagoPizzaStore{}, StyleCheese, &buf)
	if err != nil {
		t.Fatalf("OrderPizza failed: %v", err)
	}

	if got := p.Name(); got != "Chicago Style Deep Dish Cheese Pizza" {
		t.Errorf("Name() = %q", got)
	}
	if !strings.Contains(buf.String(), "Cutting the pizza into square slices") {
		t.Errorf("Chicago pizza should be square cut:\n%s", buf.String())
	}
}

func TestOrderPizza_UnknownStyle(t *testing.T) {
	_, err := OrderPizza(ChicagoPizzaStore{}, StyleClam, io.Discard)
	if err == nil {
		t.Fatal("expected error for a style the Chicago store cannot make")
	}
	if !errors.Is(err, ErrUnknownStyle) {
		t.Errorf("error = %v, want ErrUnknownStyle", err)
	}
}

func TestOrderPizza_LifecycleOrder(t *testing.T) {
	var buf strings.Builder
	if _, err := OrderPizza(NYPizzaStore{}, StyleVeggie, &buf); err != nil {
		t.Fatalf("OrderPizza failed: %v", err)
	}

	out := buf.String()
	steps := []string{"Preparing", "Bake for", "Cutting", "Place pizza in"}
	last := -1
	for _, step := range steps {
		idx := strings.Index(out, step)
		if idx < 0 {
			t.Fatalf("transcript missing step %q:\n%s", step, out)
		}
		if idx < last {
			t.Errorf("step %q appears out of order", step)
		}
		last = idx
	}
}

func TestSimpleFactory(t *testing.T) {
	f := SimplePizzaFactory{}

	p, err := f.Create(StylePepperoni)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if got := p.Name(); got != "Pepperoni Pizza" {
		t.Errorf("Name() = %q", got)
	}

	if _, err := f.Create(StyleClam); !errors.Is(err, ErrUnknownStyle) {
		t.Errorf("Create(clam) error = %v, want ErrUnknownStyle", err)
	}
}

func TestDemo_OrdersFromBothStores(t *testing.T) {
	var buf strings.Builder
	Demo(&buf)

	out := buf.String()
	for _, want := range []string{
		"Ethan ordered a NY Style Sauce and Cheese Pizza from the NY store",
		"Ethan ordered a Chicago Style Deep Dish Cheese Pizza from the Chicago store",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("demo transcript missing %q:\n%s", want, out)
		}
	}
}
