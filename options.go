package nle

import (
	"github.com/gogpu/nle/render"
	"github.com/gogpu/nle/shader"
)

// Option configures a Processor.
//
// Example:
//
//	params := render.NewVideoParams(1920, 1080, render.NewRational(1, 30), render.PixelFormatRGBA16F, 2)
//	p := nle.NewProcessor(nle.WithDialect(shader.WGSL), nle.WithVideoParams(params))
type Option func(*processorOptions)

type processorOptions struct {
	backend Backend
	dialect shader.Dialect
	params  render.VideoParams
}

func defaultOptions() processorOptions {
	return processorOptions{
		backend: nil, // resolved per pass through CurrentBackend
		dialect: shader.WGSL,
	}
}

// WithBackend pins the processor to b instead of the registered backend.
func WithBackend(b Backend) Option {
	return func(o *processorOptions) {
		o.backend = b
	}
}

// WithDialect selects the language of generated programs.
// The default is WGSL, the form the native backend compiles.
func WithDialect(d shader.Dialect) Option {
	return func(o *processorOptions) {
		o.dialect = d
	}
}

// WithVideoParams sets the frame geometry passed to the backend.
func WithVideoParams(p render.VideoParams) Option {
	return func(o *processorOptions) {
		o.params = p
	}
}
