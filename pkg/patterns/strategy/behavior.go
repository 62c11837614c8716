// Package strategy implements the duck simulator: interchangeable fly and
// quack behaviors composed into a Duck context, swappable at runtime.
package strategy

// FlyBehavior is the family of interchangeable flying algorithms.
type FlyBehavior interface {
	Fly() string
}

// QuackBehavior is the family of interchangeable quacking algorithms.
type QuackBehavior interface {
	Quack() string
}

// FlyWithWings is the flying behavior of ducks that actually fly.
type FlyWithWings struct{}

func (FlyWithWings) Fly() string { return "I'm flying!!" }

// FlyNoWay is the flying behavior of ducks that cannot fly at all.
type FlyNoWay struct{}

func (FlyNoWay) Fly() string { return "I can't fly" }

// FlyRocketPowered flies with a rocket strapped on. Swapped onto the model
// duck at runtime in the demo.
type FlyRocketPowered struct{}

func (FlyRocketPowered) Fly() string { return "I'm flying with a rocket!" }

// Quack is the ordinary quack.
type Quack struct{}

func (Quack) Quack() string { return "Quack" }

// Squeak is the rubber-duck squeak.
type Squeak struct{}

func (Squeak) Quack() string { return "Squeak" }

// MuteQuack makes no sound.
type MuteQuack struct{}

func (MuteQuack) Quack() string { return "<< Silence >>" }
