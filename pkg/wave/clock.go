package wave

import "fmt"

// Clock is the scalar simulation time the host loop advances. It is
// monotonically non-decreasing: negative steps are rejected.
type Clock struct {
	t float32
}

// Advance moves time forward by dt seconds. dt must be non-negative.
func (c *Clock) Advance(dt float32) error {
	if dt < 0 {
		return fmt.Errorf("%w: negative time step %v", ErrInvalidParameter, dt)
	}
	c.t += dt
	return nil
}

// Now returns the current simulation time.
func (c *Clock) Now() float32 {
	return c.t
}
