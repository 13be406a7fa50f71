package armory

import "time"

// options defines all configuration options for the armory.
type options struct {
	expectedItems uint          // Expected inventory size, for filter sizing
	dedupWindow   time.Duration // How long a quest title blocks reposting
}

// Option is a function that configures the armory options.
type Option func(*options)

// WithExpectedItems sizes the inventory for the given number of items.
func WithExpectedItems(n uint) Option {
	return func(o *options) {
		o.expectedItems = n
	}
}

// WithDedupWindow makes the quest board reject reposts of a title seen
// within the given window. Deduplication is off by default.
func WithDedupWindow(d time.Duration) Option {
	return func(o *options) {
		o.dedupWindow = d
	}
}

// defaultOptions returns the default configuration.
func defaultOptions() options {
	return options{
		expectedItems: 0,
		dedupWindow:   0,
	}
}
