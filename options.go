package objpool

// config collects the optional collaborators shared by New and NewShared.
type config struct {
	onError func(msg string, code int)
	logf    func(string)
}

// Option configures optional pool collaborators.
type Option func(*config)

// WithErrorCallback registers cb for exhaustion and invalid-configuration
// conditions. Each such condition reaches cb exactly once, with a
// human-readable message and one of the Code constants.
//
// Registering a callback changes how those conditions surface: New
// returns (nil, nil) for a bad configuration and Make returns an empty
// handle with a nil error on exhaustion, instead of ErrZeroCapacity,
// ErrSizeOverflow or ErrExhausted. Construction failures from the init
// function are never routed to cb; they always propagate to the caller.
func WithErrorCallback(cb func(msg string, code int)) Option {
	return func(c *config) { c.onError = cb }
}

// WithLogFunc registers a fire-and-forget sink that receives a
// descriptive message on every pool state transition: init, allocation,
// free, construction, destruction and exhaustion. The sink is purely
// observational and is never invoked while the pool lock is held.
func WithLogFunc(fn func(string)) Option {
	return func(c *config) { c.logf = fn }
}
