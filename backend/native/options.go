package native

// Option configures a Backend.
type Option func(*options)

type options struct {
	cacheCapacity int
	label         string
}

func defaultOptions() options {
	return options{
		cacheCapacity: 0, // cache.DefaultCapacity
		label:         "nle",
	}
}

// WithCacheCapacity sets the per-shard capacity of the shader module cache.
// Evicted modules are destroyed.
func WithCacheCapacity(n int) Option {
	return func(o *options) {
		o.cacheCapacity = n
	}
}

// WithLabel sets the prefix of GPU object debug labels.
func WithLabel(label string) Option {
	return func(o *options) {
		o.label = label
	}
}
