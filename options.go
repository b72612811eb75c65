package pix

// Option configures a Surface during creation.
// Use functional options to customize Surface behavior.
//
// Example:
//
//	// Default packed buffer target
//	s, err := pix.New(128, 64, 1)
//
//	// Driver glue via callbacks (dependency injection)
//	cb, _ := pix.NewCallback(drv.WritePixel, nil)
//	s, err := pix.New(240, 240, 16, pix.WithTarget(cb))
type Option func(*surfaceOptions)

// surfaceOptions holds optional configuration for Surface creation.
type surfaceOptions struct {
	target     Target
	targetName string
	bufferOpts []BufferOption
	interrupt  func() bool
	vector     VectorRasterizer
}

// WithTarget injects a concrete pixel-output target. The surface takes
// the target as-is and never inspects its type.
func WithTarget(t Target) Option {
	return func(o *surfaceOptions) {
		o.target = t
	}
}

// WithNamedTarget resolves the target through the registry, for driver
// packages that register themselves in init().
func WithNamedTarget(name string) Option {
	return func(o *surfaceOptions) {
		o.targetName = name
	}
}

// WithBufferOptions passes layout options to the default Buffer target.
// Ignored when the target comes from WithTarget or WithNamedTarget.
func WithBufferOptions(opts ...BufferOption) Option {
	return func(o *surfaceOptions) {
		o.bufferOpts = opts
	}
}

// WithInterrupt installs a cancellation predicate. Long text draws poll
// it once per character and abort cleanly when it returns true; pixels
// already drawn stay put. The predicate must not draw on the same
// surface.
func WithInterrupt(fn func() bool) Option {
	return func(o *surfaceOptions) {
		o.interrupt = fn
	}
}

// WithVectorRasterizer installs the external vector glyph rasterizer
// used by VectorFont text. Without one, vector glyphs are skipped.
func WithVectorRasterizer(vr VectorRasterizer) Option {
	return func(o *surfaceOptions) {
		o.vector = vr
	}
}
