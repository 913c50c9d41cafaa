package filter

// Chain applies an ordered sequence of transforms, threading each output
// into the next transform's input.
//
// The filter list may be replaced or cleared after construction. Those
// mutations are not synchronized: callers must not mutate a Chain while a
// buffer application using it is in flight.
type Chain struct {
	opacity float64
	filters []Transform
}

// NewChain creates a chain over a copy of filters.
func NewChain(filters []Transform, opts ...Option) *Chain {
	c := &Chain{opacity: buildOptions(opts).opacity}
	return c.SetFilters(filters...)
}

// UpdateChannels forces alpha to the chain's opacity, then runs every
// transform in order.
func (c *Chain) UpdateChannels(p Pixel) Pixel {
	p[3] = c.opacity
	for _, f := range c.filters {
		p = f.UpdateChannels(p)
	}
	return p
}

// SetFilters replaces the chain's transforms.
func (c *Chain) SetFilters(filters ...Transform) *Chain {
	c.filters = append([]Transform(nil), filters...)
	return c
}

// Add appends a transform to the end of the chain.
func (c *Chain) Add(f Transform) *Chain {
	c.filters = append(c.filters, f)
	return c
}

// Clear removes all transforms. An empty chain only sets opacity.
func (c *Chain) Clear() *Chain {
	c.filters = nil
	return c
}

// Len returns the number of transforms in the chain.
func (c *Chain) Len() int {
	return len(c.filters)
}

// Filters returns a copy of the chain's transforms.
func (c *Chain) Filters() []Transform {
	return append([]Transform(nil), c.filters...)
}
