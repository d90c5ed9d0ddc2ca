package memo

// Callback cells memoize a function value while handing the call site a
// wrapper whose identity never changes. The wrapper forwards arguments and
// return value to whichever function is currently memoized, so downstream
// code keyed on function identity stays stable across recomputes.
//
// Calling the wrapper before the first Memoize is a programmer error and
// panics on the nil function.

type CallbackI0O1[O1 any] struct {
	cell    *Cell[func() O1]
	wrapper func() O1
}

func NewCallbackI0O1[O1 any](opts ...Option) *CallbackI0O1[O1] {
	c := &CallbackI0O1[O1]{cell: New[func() O1](opts...)}
	c.wrapper = func() O1 {
		return c.cell.value()
	}
	return c
}

// Memoize swaps the memoized function when deps changed and returns the
// stable wrapper either way.
func (c *CallbackI0O1[O1]) Memoize(fn func() O1, deps Deps) func() O1 {
	c.cell.Memoize(func() func() O1 { return fn }, deps)
	return c.wrapper
}

type CallbackI1O1[I1, O1 any] struct {
	cell    *Cell[func(I1) O1]
	wrapper func(I1) O1
}

func NewCallbackI1O1[I1, O1 any](opts ...Option) *CallbackI1O1[I1, O1] {
	c := &CallbackI1O1[I1, O1]{cell: New[func(I1) O1](opts...)}
	c.wrapper = func(i1 I1) O1 {
		return c.cell.value(i1)
	}
	return c
}

func (c *CallbackI1O1[I1, O1]) Memoize(fn func(I1) O1, deps Deps) func(I1) O1 {
	c.cell.Memoize(func() func(I1) O1 { return fn }, deps)
	return c.wrapper
}

type CallbackI2O1[I1, I2, O1 any] struct {
	cell    *Cell[func(I1, I2) O1]
	wrapper func(I1, I2) O1
}

func NewCallbackI2O1[I1, I2, O1 any](opts ...Option) *CallbackI2O1[I1, I2, O1] {
	c := &CallbackI2O1[I1, I2, O1]{cell: New[func(I1, I2) O1](opts...)}
	c.wrapper = func(i1 I1, i2 I2) O1 {
		return c.cell.value(i1, i2)
	}
	return c
}

func (c *CallbackI2O1[I1, I2, O1]) Memoize(fn func(I1, I2) O1, deps Deps) func(I1, I2) O1 {
	c.cell.Memoize(func() func(I1, I2) O1 { return fn }, deps)
	return c.wrapper
}

type CallbackI3O1[I1, I2, I3, O1 any] struct {
	cell    *Cell[func(I1, I2, I3) O1]
	wrapper func(I1, I2, I3) O1
}

func NewCallbackI3O1[I1, I2, I3, O1 any](opts ...Option) *CallbackI3O1[I1, I2, I3, O1] {
	c := &CallbackI3O1[I1, I2, I3, O1]{cell: New[func(I1, I2, I3) O1](opts...)}
	c.wrapper = func(i1 I1, i2 I2, i3 I3) O1 {
		return c.cell.value(i1, i2, i3)
	}
	return c
}

func (c *CallbackI3O1[I1, I2, I3, O1]) Memoize(fn func(I1, I2, I3) O1, deps Deps) func(I1, I2, I3) O1 {
	c.cell.Memoize(func() func(I1, I2, I3) O1 { return fn }, deps)
	return c.wrapper
}
