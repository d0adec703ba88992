package arena

// Option applies a configuration option to an [Arena].
type Option func(*Arena) *Arena

// WithCapacity sets the capacity of each region appended to the arena.
// Values less than one select [DefaultCapacity].
func WithCapacity(capacity int) Option {
	return func(a *Arena) *Arena {
		if capacity < 1 {
			capacity = DefaultCapacity
		}

		a.capacity = capacity

		return a
	}
}

// apply applies multiple options to an arena.
func apply(a *Arena, opts ...Option) *Arena {
	for _, opt := range opts {
		a = opt(a)
	}

	return a
}
