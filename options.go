package cursorvec

// Option configures a CursorVec during creation.
type Option func(*config)

type config struct {
	rotatable bool
}

// WithRotatable sets the wraparound policy: when true, cursor movement
// wraps around sequence bounds instead of clamping at them.
func WithRotatable(rotatable bool) Option {
	return func(c *config) {
		c.rotatable = rotatable
	}
}
