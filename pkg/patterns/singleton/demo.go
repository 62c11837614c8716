package singleton

import (
	"fmt"
	"io"
)

// Demo fetches the shared boiler twice, shows both handles are the same
// instance, and runs one batch through the fill/boil/drain cycle.
func Demo(w io.Writer) {
	a := GetBoiler()
	b := GetBoiler()
	fmt.Fprintf(w, "same instance: %v\n", a == b)

	steps := []struct {
		name string
		run  func() error
	}{
		{"fill", a.Fill},
		{"boil", a.Boil},
		{"fill again", a.Fill},
		{"drain", a.Drain},
	}
	for _, s := range steps {
		if err := s.run(); err != nil {
			fmt.Fprintf(w, "%s: rejected (%v)\n", s.name, err)
		} else {
			fmt.Fprintf(w, "%s: ok\n", s.name)
		}
	}
	fmt.Fprintf(w, "batches completed: %d\n", a.Batches())
}
