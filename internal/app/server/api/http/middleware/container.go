package middleware

import "github.com/danielgtaylor/huma/v2"

// Container accumulates middlewares for one handler and hands them out as a
// single huma.Middlewares slice.
type Container struct {
	mws huma.Middlewares
}

func NewContainer() *Container {
	return &Container{}
}

func (c *Container) Add(mw func(huma.Context, func(huma.Context))) {
	c.mws = append(c.mws, mw)
}

// GetAllAndClear returns the accumulated middlewares and resets the container
// so it can be reused for the next handler.
func (c *Container) GetAllAndClear() huma.Middlewares {
	out := c.mws
	c.mws = nil
	return out
}
