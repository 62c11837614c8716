package decorator

import (
	"fmt"
	"io"
)

// Demo orders three drinks of increasing decoration and prints the bill.
func Demo(w io.Writer) {
	espresso := NewEspresso(Tall)
	fmt.Fprintf(w, "%s $%.2f\n", espresso.Description(), espresso.Cost())

	darkRoast := WithWhip(WithMocha(WithMocha(NewDarkRoast(Grande))))
	fmt.Fprintf(w, "%s $%.2f\n", darkRoast.Description(), darkRoast.Cost())

	houseBlend := WithWhip(WithMocha(WithSoy(NewHouseBlend(Venti))))
	fmt.Fprintf(w, "%s $%.2f\n", houseBlend.Description(), houseBlend.Cost())
}
