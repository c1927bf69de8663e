package domain

const (
	// DefaultPageLimit is used when a caller does not ask for a window size.
	DefaultPageLimit = 25
	// MaxPageLimit caps how many records a single upstream fetch may return.
	MaxPageLimit = 500
)

// Page is the pagination window forwarded to the upstream API. It is built
// once per request and never mutated afterwards.
type Page struct {
	Limit  int
	Offset int
}

// Normalize clamps the window into the range the upstream accepts: an unset
// limit takes the default, explicit limits clamp into [1, MaxPageLimit], and
// negative offsets floor to zero.
func (p Page) Normalize() Page {
	switch {
	case p.Limit == 0:
		p.Limit = DefaultPageLimit
	case p.Limit < 1:
		p.Limit = 1
	case p.Limit > MaxPageLimit:
		p.Limit = MaxPageLimit
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
	return p
}
