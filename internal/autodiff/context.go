package autodiff

// Context is created by an operation during its forward pass and holds the
// values its backward rule needs.
//
// It lives as long as the node that owns it. The no-grad flag is fixed at
// creation.
type Context[T any] struct {
	noGrad bool
	saved  []T
}

// NewContext creates a context. With noGrad set, SaveForBackward discards
// everything, since no backward call will ever read it.
func NewContext[T any](noGrad bool) *Context[T] {
	return &Context[T]{noGrad: noGrad}
}

// NoGrad reports whether gradient tracking is disabled for this call.
func (c *Context[T]) NoGrad() bool {
	return c.noGrad
}

// SaveForBackward stores values for the backward pass.
// Each call replaces the previous tuple: save everything in one call.
func (c *Context[T]) SaveForBackward(values ...T) {
	if c.noGrad {
		return
	}
	c.saved = append([]T(nil), values...)
}

// SavedValues returns the tuple stored by the last SaveForBackward, in order.
func (c *Context[T]) SavedValues() []T {
	return c.saved
}
