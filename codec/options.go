package codec

// encodeConfig holds the resolved configuration for a single Encode or
// Decode call.
type encodeConfig struct {
	strictKeys bool
	maxDepth   int
}

// defaultMaxDepth bounds recursion on pathological nested documents. It is
// generous enough that no realistic document trips it, matching spec.md
// §9's note that an implementation "may choose to fail fast on pathological
// recursion depth" without being required to.
const defaultMaxDepth = 200

func newEncodeConfig() *encodeConfig {
	return &encodeConfig{maxDepth: defaultMaxDepth}
}

// Option configures a single Encode or Decode call. Unlike a generic
// functional-option type, it is specific to encodeConfig: BDoc has exactly
// one options target, so there is nothing for a type parameter to buy.
type Option func(*encodeConfig)

// applyOptions folds opts into cfg in order.
func applyOptions(cfg *encodeConfig, opts ...Option) {
	for _, opt := range opts {
		opt(cfg)
	}
}

// WithStrictKeys enables strict element-key validation (§4.4): a key
// beginning with '$' or containing '.' fails the encode call. Disabled by
// default, matching the `strict_keys: bool (default false)` recognized
// option in §6.2.
func WithStrictKeys(enabled bool) Option {
	return func(c *encodeConfig) {
		c.strictKeys = enabled
	}
}

// WithMaxDepth overrides the maximum document/array nesting depth Encode
// and Decode will follow before failing with ErrRecursionTooDeep.
func WithMaxDepth(depth int) Option {
	return func(c *encodeConfig) {
		c.maxDepth = depth
	}
}
