package plot

import "math"

// Scale is a bidirectional mapping between data space and screen space
// along one axis. Compute projects data to screen; Invert recovers the
// data coordinate for a screen position (used by hit-testing).
type Scale interface {
	// Compute maps a data-space coordinate to screen space.
	Compute(v float64) float64

	// ComputeV maps a slice of data-space coordinates to screen space.
	// The result is a new slice of the same length.
	ComputeV(vs []float64) []float64

	// Invert maps a screen-space coordinate back to data space.
	Invert(sv float64) float64

	// InvertV maps a slice of screen-space coordinates back to data space.
	InvertV(svs []float64) []float64
}

// LinearScale maps a data interval onto a screen interval with an affine
// transform. Either interval may be reversed (screen y typically is, since
// pixel y grows downward).
type LinearScale struct {
	sourceStart, sourceEnd float64
	targetStart, targetEnd float64
}

// NewLinearScale creates a linear scale mapping [sourceStart, sourceEnd]
// in data space onto [targetStart, targetEnd] in screen space.
func NewLinearScale(sourceStart, sourceEnd, targetStart, targetEnd float64) *LinearScale {
	return &LinearScale{
		sourceStart: sourceStart,
		sourceEnd:   sourceEnd,
		targetStart: targetStart,
		targetEnd:   targetEnd,
	}
}

// Compute implements Scale.
func (s *LinearScale) Compute(v float64) float64 {
	span := s.sourceEnd - s.sourceStart
	if span == 0 {
		// Degenerate source range: everything lands on the target midpoint.
		return (s.targetStart + s.targetEnd) / 2
	}
	t := (v - s.sourceStart) / span
	return s.targetStart + t*(s.targetEnd-s.targetStart)
}

// ComputeV implements Scale.
func (s *LinearScale) ComputeV(vs []float64) []float64 {
	out := make([]float64, len(vs))
	for i, v := range vs {
		out[i] = s.Compute(v)
	}
	return out
}

// Invert implements Scale.
func (s *LinearScale) Invert(sv float64) float64 {
	span := s.targetEnd - s.targetStart
	if span == 0 {
		return s.sourceStart
	}
	t := (sv - s.targetStart) / span
	return s.sourceStart + t*(s.sourceEnd-s.sourceStart)
}

// InvertV implements Scale.
func (s *LinearScale) InvertV(svs []float64) []float64 {
	out := make([]float64, len(svs))
	for i, sv := range svs {
		out[i] = s.Invert(sv)
	}
	return out
}

// LogScale maps a positive data interval onto a screen interval through a
// base-10 logarithm. Non-positive data coordinates project to NaN and are
// neutralized downstream by the render-time finiteness guard.
type LogScale struct {
	sourceStart, sourceEnd float64
	targetStart, targetEnd float64
}

// NewLogScale creates a log scale mapping [sourceStart, sourceEnd] in data
// space onto [targetStart, targetEnd] in screen space. Both source bounds
// must be positive for the mapping to produce finite results.
func NewLogScale(sourceStart, sourceEnd, targetStart, targetEnd float64) *LogScale {
	return &LogScale{
		sourceStart: sourceStart,
		sourceEnd:   sourceEnd,
		targetStart: targetStart,
		targetEnd:   targetEnd,
	}
}

// Compute implements Scale.
func (s *LogScale) Compute(v float64) float64 {
	logStart := math.Log10(s.sourceStart)
	logEnd := math.Log10(s.sourceEnd)
	span := logEnd - logStart
	if span == 0 || math.IsNaN(span) || math.IsInf(span, 0) {
		return (s.targetStart + s.targetEnd) / 2
	}
	t := (math.Log10(v) - logStart) / span
	return s.targetStart + t*(s.targetEnd-s.targetStart)
}

// ComputeV implements Scale.
func (s *LogScale) ComputeV(vs []float64) []float64 {
	out := make([]float64, len(vs))
	for i, v := range vs {
		out[i] = s.Compute(v)
	}
	return out
}

// Invert implements Scale.
func (s *LogScale) Invert(sv float64) float64 {
	span := s.targetEnd - s.targetStart
	if span == 0 {
		return s.sourceStart
	}
	logStart := math.Log10(s.sourceStart)
	logEnd := math.Log10(s.sourceEnd)
	t := (sv - s.targetStart) / span
	return math.Pow(10, logStart+t*(logEnd-logStart))
}

// InvertV implements Scale.
func (s *LogScale) InvertV(svs []float64) []float64 {
	out := make([]float64, len(svs))
	for i, sv := range svs {
		out[i] = s.Invert(sv)
	}
	return out
}
