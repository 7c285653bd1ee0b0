package sound

import "math"

// pcm16 converts a sample in [-1, 1] to a 16-bit PCM value with linear
// scaling, clamping anything outside the range.
func pcm16(v float64) int16 {
	s := int(v * math.MaxInt16)
	if s > math.MaxInt16 {
		s = math.MaxInt16
	}
	if s < math.MinInt16 {
		s = math.MinInt16
	}
	return int16(s)
}
