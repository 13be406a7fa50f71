package quest

import "time"

type options struct {
	dedupWindow time.Duration
}

// Option configures a Board.
type Option func(*options)

// WithDedupWindow makes the board reject reposts of a title seen within
// the given window. A zero or negative window disables deduplication,
// which is the default.
func WithDedupWindow(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.dedupWindow = d
		}
	}
}

// defaultOptions returns the default configuration.
func defaultOptions() options {
	return options{
		dedupWindow: 0,
	}
}
