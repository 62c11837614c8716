package strategy

import (
	"fmt"
	"io"
)

// Demo runs the duck simulator and writes its transcript to w: a mallard
// performs its built-in behaviors, then a model duck gains rocket-powered
// flight at runtime.
func Demo(w io.Writer) {
	mallard := NewMallardDuck()
	fmt.Fprintln(w, mallard.Display())
	fmt.Fprintln(w, mallard.PerformQuack())
	fmt.Fprintln(w, mallard.PerformFly())

	model := NewModelDuck()
	fmt.Fprintln(w, model.Display())
	fmt.Fprintln(w, model.PerformFly())
	model.SetFlyBehavior(FlyRocketPowered{})
	fmt.Fprintln(w, model.PerformFly())
}
