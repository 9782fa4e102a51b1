// Package uncontrolled reconciles an optionally owner-supplied value with a
// value held by the widget itself.
//
// A Cell is controlled while its owner supplies a value through Control and
// uncontrolled otherwise. Reads return the owner's value when present and the
// internal fallback when not. Every candidate passed to Set must satisfy the
// cell's validator; rejected candidates are dropped without notification.
package uncontrolled

// Mode reports who owns the value of a Cell for the current read.
type Mode int

const (
	// ModeUncontrolled means the cell holds the value itself.
	ModeUncontrolled Mode = iota
	// ModeControlled means the owner supplies the value on every read.
	ModeControlled
)

// String returns a human-readable name for the mode.
func (m Mode) String() string {
	switch m {
	case ModeControlled:
		return "controlled"
	default:
		return "uncontrolled"
	}
}

// Outcome describes what Set did with a candidate value.
type Outcome int

const (
	// Rejected means the validator refused the candidate. Nothing changed
	// and no notification fired.
	Rejected Outcome = iota
	// Forwarded means the cell is controlled: the change notification fired
	// and the owner is expected to supply the new value.
	Forwarded
	// Stored means the cell is uncontrolled: the candidate replaced the
	// internal value and the change notification fired.
	Stored
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case Forwarded:
		return "forwarded"
	case Stored:
		return "stored"
	default:
		return "rejected"
	}
}

// Accepted reports whether the candidate passed validation.
func (o Outcome) Accepted() bool {
	return o != Rejected
}

// Options configures a Cell at construction time.
type Options[V any] struct {
	// Value is the owner-supplied value. A non-nil Value starts the cell in
	// controlled mode.
	Value *V
	// Default seeds the internal value when it passes validation.
	Default *V
	// Final is the fallback used when Default is absent or invalid, and the
	// value the cell resets to when the owner releases control.
	Final V
	// OnChange is called with every accepted candidate.
	OnChange func(V)
	// Validate guards every candidate. A nil validator accepts everything.
	Validate func(V) bool
}

// Cell holds the state of a single controlled/uncontrolled value. A Cell
// belongs to one widget and is not safe for concurrent use.
type Cell[V any] struct {
	internal V
	external *V
	final    V
	onChange func(V)
	validate func(V) bool
}

// New creates a Cell from opts. It never fails: an invalid Default is
// replaced by Final.
func New[V any](opts Options[V]) *Cell[V] {
	c := &Cell[V]{
		final:    opts.Final,
		onChange: opts.OnChange,
		validate: opts.Validate,
	}

	c.internal = opts.Final
	if opts.Default != nil && c.valid(*opts.Default) {
		c.internal = *opts.Default
	}

	if opts.Value != nil {
		c.Control(*opts.Value)
	}

	return c
}

// Value returns the owner's value when controlled, otherwise the internal one.
func (c *Cell[V]) Value() V {
	if c.external != nil {
		return *c.external
	}
	return c.internal
}

// Mode returns the mode of the cell as of the latest owner update.
func (c *Cell[V]) Mode() Mode {
	if c.external != nil {
		return ModeControlled
	}
	return ModeUncontrolled
}

// Controlled reports whether the owner currently supplies the value.
func (c *Cell[V]) Controlled() bool {
	return c.Mode() == ModeControlled
}

// Set offers a candidate value to the cell.
func (c *Cell[V]) Set(candidate V) Outcome {
	if !c.valid(candidate) {
		return Rejected
	}

	outcome := Forwarded
	if c.external == nil {
		c.internal = candidate
		outcome = Stored
	}

	if c.onChange != nil {
		c.onChange(candidate)
	}
	return outcome
}

// Control supplies the owner's value, switching the cell to controlled mode.
// The value is not validated; the owner is the source of truth.
func (c *Cell[V]) Control(value V) {
	v := value
	c.external = &v
}

// Release withdraws the owner's value. A cell leaving controlled mode resets
// its internal value to Final, matching an owner that cleared its input.
func (c *Cell[V]) Release() {
	if c.external == nil {
		return
	}
	c.external = nil
	c.internal = c.final
}

// Store replaces the internal value without notifying, for owners that
// narrow what is valid after the fact. It reports false and keeps the old
// value when candidate fails validation.
func (c *Cell[V]) Store(candidate V) bool {
	if !c.valid(candidate) {
		return false
	}
	c.internal = candidate
	return true
}

// Sync applies an owner update expressed as an optional value: nil releases
// control, non-nil supplies it.
func (c *Cell[V]) Sync(value *V) {
	if value == nil {
		c.Release()
		return
	}
	c.Control(*value)
}

// Valid reports whether candidate would be accepted by Set.
func (c *Cell[V]) Valid(candidate V) bool {
	return c.valid(candidate)
}

func (c *Cell[V]) valid(candidate V) bool {
	if c.validate == nil {
		return true
	}
	return c.validate(candidate)
}
