package strategy

// Duck is the context: it delegates flying and quacking to composed
// behavior values instead of hard-coding them per duck kind.
type Duck struct {
	name  string
	fly   FlyBehavior
	quack QuackBehavior
}

// NewDuck creates a duck with the given display name and behaviors.
// Nil behaviors are replaced with FlyNoWay and MuteQuack so a duck can
// always perform.
func NewDuck(name string, fly FlyBehavior, quack QuackBehavior) *Duck {
	if fly == nil {
		fly = FlyNoWay{}
	}
	if quack == nil {
		quack = MuteQuack{}
	}
	return &Duck{name: name, fly: fly, quack: quack}
}

// NewMallardDuck creates a mallard: flies with wings, quacks.
func NewMallardDuck() *Duck {
	return NewDuck("mallard duck", FlyWithWings{}, Quack{})
}

// NewModelDuck creates a model duck: grounded until given a new fly behavior.
func NewModelDuck() *Duck {
	return NewDuck("model duck", FlyNoWay{}, Quack{})
}

// NewRubberDuck creates a rubber duck: can't fly, squeaks.
func NewRubberDuck() *Duck {
	return NewDuck("rubber duck", FlyNoWay{}, Squeak{})
}

// NewDecoyDuck creates a wooden decoy: can't fly, makes no sound.
func NewDecoyDuck() *Duck {
	return NewDuck("decoy duck", FlyNoWay{}, MuteQuack{})
}

// PerformFly delegates to the current fly behavior.
func (d *Duck) PerformFly() string { return d.fly.Fly() }

// PerformQuack delegates to the current quack behavior.
func (d *Duck) PerformQuack() string { return d.quack.Quack() }

// Swim is shared by all ducks regardless of behavior.
func (d *Duck) Swim() string { return "All ducks float, even decoys!" }

// Display identifies the duck.
func (d *Duck) Display() string { return "I'm a " + d.name }

// SetFlyBehavior swaps the fly behavior at runtime. Nil is ignored so the
// duck never loses the ability to perform.
func (d *Duck) SetFlyBehavior(fb FlyBehavior) {
	if fb != nil {
		d.fly = fb
	}
}

// SetQuackBehavior swaps the quack behavior at runtime. Nil is ignored.
func (d *Duck) SetQuackBehavior(qb QuackBehavior) {
	if qb != nil {
		d.quack = qb
	}
}
