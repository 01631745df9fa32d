package constraint

// Limit is a comparison mode: the left-hand value must be at least, at most,
// or exactly the right-hand value.
type Limit string

const (
	AtLeast Limit = "AT_LEAST"
	AtMost  Limit = "AT_MOST"
	Exactly Limit = "EXACTLY"
)

// Limits lists every comparison mode.
var Limits = []Limit{AtLeast, AtMost, Exactly}

// ParseLimit accepts the exact upper-case limit names only.
func ParseLimit(s string) (Limit, error) {
	l := Limit(s)
	if err := l.Validate(); err != nil {
		return "", err
	}
	return l, nil
}

// Validate returns an *Error with CodeUnknownLimit if l is not a known limit.
func (l Limit) Validate() error {
	switch l {
	case AtLeast, AtMost, Exactly:
		return nil
	default:
		return &Error{
			Code:    CodeUnknownLimit,
			Message: "limit " + quote(string(l)) + " must be one of AT_LEAST, AT_MOST, EXACTLY",
		}
	}
}

// Holds reports whether got meets l relative to want. An unknown limit never
// holds; callers that need an error call Validate first.
func (l Limit) Holds(got, want int) bool {
	switch l {
	case AtLeast:
		return got >= want
	case AtMost:
		return got <= want
	case Exactly:
		return got == want
	default:
		return false
	}
}
