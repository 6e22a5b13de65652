package a

import (
	"github.com/spatialmodel/units/quantity"
	"github.com/spatialmodel/units/tag"
)

type myDim struct{}

func (myDim) Dims() [7]int { return [7]int{} }

func f() {
	l := quantity.New[tag.Length](1.0)
	t := quantity.New[tag.Time](1.0)
	m := quantity.New[tag.Mass](1.0)

	_ = quantity.Rebind[tag.Length](quantity.Div(quantity.Mul(l, t), t))
	_ = quantity.Rebind[tag.Velocity](quantity.Div(l, t))
	_ = quantity.Rebind[tag.Mul[tag.Time, tag.Length]](quantity.Mul(l, t))
	_ = quantity.Rebind[tag.Dimensionless](quantity.Mul(t, quantity.New[tag.Frequency](1.0)))
	_ = quantity.Rebind[tag.Force](quantity.Mul(m, quantity.New[tag.Div[tag.Length, tag.Square[tag.Time]]](1.0)))

	_ = quantity.Rebind[tag.Mass](l)                            // want `Rebind: cannot rebind \[m\] to \[kg\]`
	_ = (quantity.Rebind[tag.Area, float64, tag.Mul[tag.Length, tag.Time]])(quantity.Mul(l, t)) // want `Rebind: cannot rebind \[s m\] to \[m\^2\]`
	_, _ = quantity.TryRebind[tag.Velocity](quantity.Mul(l, t)) // want `TryRebind: cannot rebind \[s m\] to \[m s\^-1\]`
	_ = quantity.Rebind[tag.Acceleration](quantity.Div(l, t))   // want `cannot rebind \[m s\^-1\] to \[m s\^-2\]`

	_ = quantity.Rebind[myDim](l)

	toMass := quantity.Rebind[tag.Mass, float64, tag.Length] // want `Rebind: cannot rebind \[m\] to \[kg\]`
	_ = toMass(l)
	toLength := quantity.Rebind[tag.Length, float64, tag.Div[tag.Mul[tag.Length, tag.Time], tag.Time]]
	_ = toLength(quantity.Div(quantity.Mul(l, t), t))

	var toTime func(quantity.Quantity[float64, tag.Length]) quantity.Quantity[float64, tag.Time] = quantity.Rebind // want `Rebind: cannot rebind \[m\] to \[s\]`
	_ = toTime(l)
}

func g[D tag.Dim](q quantity.Quantity[float64, D]) quantity.Quantity[float64, tag.Length] {
	return quantity.Rebind[tag.Length](q)
}
