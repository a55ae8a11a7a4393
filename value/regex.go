package value

// Regex carries a regular expression pattern and its options as two
// separate byte strings. The codec does not compile or validate either;
// that is left entirely to the caller.
type Regex struct {
	Pattern string
	Options string
}

// Kind implements Value.
func (Regex) Kind() Kind { return KindRegex }

// NewRegex constructs a Regex value.
func NewRegex(pattern, options string) Regex {
	return Regex{Pattern: pattern, Options: options}
}
