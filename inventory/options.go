package inventory

// options defines the tunables for an Index.
type options struct {
	expectedItems     uint
	falsePositiveRate float64
}

// Option is a function that configures an Index.
type Option func(*options)

// WithExpectedItems sizes the negative-lookup filter for the given number
// of items. Growing past the estimate only raises the filter's false
// positive rate; lookups stay correct. Zero is ignored.
func WithExpectedItems(n uint) Option {
	return func(o *options) {
		if n > 0 {
			o.expectedItems = n
		}
	}
}

// WithFalsePositiveRate sets the target false positive rate of the
// negative-lookup filter. Values outside (0, 1) are ignored.
func WithFalsePositiveRate(p float64) Option {
	return func(o *options) {
		if p > 0 && p < 1 {
			o.falsePositiveRate = p
		}
	}
}

// defaultOptions returns the default configuration.
func defaultOptions() options {
	return options{
		expectedItems:     1024,
		falsePositiveRate: 0.01,
	}
}
