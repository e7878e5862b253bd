package table

// Measurement describes a renderable's width requirements as a range:
// Minimum is the narrowest width that displays content without
// truncation, Maximum is the preferred ("natural") width if unlimited
// space is available. Table's own column sizing does not use it and does
// not fit columns to the available width (see calculateWidths).
type Measurement struct {
	Minimum int
	Maximum int
}

// Clamp constrains m to [minWidth, maxWidth], keeping Minimum <= Maximum.
func (m Measurement) Clamp(minWidth, maxWidth int) Measurement {
	lo, hi := m.Minimum, m.Maximum
	if lo < minWidth {
		lo = minWidth
	}
	if hi > maxWidth {
		hi = maxWidth
	}
	if hi < lo {
		hi = lo
	}
	return Measurement{Minimum: lo, Maximum: hi}
}

// Normalize ensures Maximum >= Minimum, raising Maximum if necessary.
func (m Measurement) Normalize() Measurement {
	if m.Maximum < m.Minimum {
		return Measurement{Minimum: m.Minimum, Maximum: m.Minimum}
	}
	return m
}

// Add sums two measurements component-wise, for combining the widths of
// adjacent renderables.
func (m Measurement) Add(other Measurement) Measurement {
	return Measurement{Minimum: m.Minimum + other.Minimum, Maximum: m.Maximum + other.Maximum}
}

// Max returns the component-wise maximum of two measurements, for finding
// the size requirement of the widest of several renderables.
func (m Measurement) Max(other Measurement) Measurement {
	lo, hi := m.Minimum, m.Maximum
	if other.Minimum > lo {
		lo = other.Minimum
	}
	if other.Maximum > hi {
		hi = other.Maximum
	}
	return Measurement{Minimum: lo, Maximum: hi}
}

// Get resolves m to a concrete width given the space available: Maximum if
// it fits, Minimum if even that doesn't fit, otherwise all of available.
func (m Measurement) Get(available int) int {
	if m.Maximum <= available {
		return m.Maximum
	}
	if m.Minimum > available {
		return m.Minimum
	}
	return available
}
