package quantity

import "github.com/spatialmodel/units/tag"

type Quantity[S any, T tag.Dim] struct{ v S }

func New[T tag.Dim, S any](v S) Quantity[S, T] { return Quantity[S, T]{v: v} }

func Mul[S any, A, B tag.Dim](a Quantity[S, A], b Quantity[S, B]) Quantity[S, tag.Mul[A, B]] {
	return Quantity[S, tag.Mul[A, B]]{v: a.v}
}

func Div[S any, A, B tag.Dim](a Quantity[S, A], b Quantity[S, B]) Quantity[S, tag.Div[A, B]] {
	return Quantity[S, tag.Div[A, B]]{v: a.v}
}

func Rebind[To tag.Dim, S any, From tag.Dim](q Quantity[S, From]) Quantity[S, To] {
	return Quantity[S, To]{v: q.v}
}

func TryRebind[To tag.Dim, S any, From tag.Dim](q Quantity[S, From]) (Quantity[S, To], error) {
	return Quantity[S, To]{v: q.v}, nil
}
