package synth

// AReferenceHz is the absolute frequency of the reference tone A4. A note's
// frequency is its pitch ratio multiplied by this reference.
const AReferenceHz = 440.0

// ToneLength is a note duration category. The set is closed; every value maps
// to a fixed number of beats, with dotted variants extending the base length
// by half.
type ToneLength int

const (
	Four ToneLength = iota
	FourDot
	Two
	TwoDot
	Full
	FullDot
	Half
	HalfDot
	Quarter
	QuarterDot
	Octet
)

// Note is one slot of a melody: a pitch expressed relative to AReferenceHz
// and a duration category. Notes are immutable values.
type Note struct {
	Pitch  float64
	Length ToneLength
}

// Beats returns the duration of the length category in beats. The mapping is
// exhaustive over the closed set; a value outside it is a programming error.
func (l ToneLength) Beats() float64 {
	switch l {
	case Four:
		return 4.0
	case FourDot:
		return 6.0
	case Two:
		return 2.0
	case TwoDot:
		return 3.0
	case Full:
		return 1.0
	case FullDot:
		return 1.5
	case Half:
		return 0.5
	case HalfDot:
		return 0.75
	case Quarter:
		return 0.25
	case QuarterDot:
		return 0.25 + 0.0125
	case Octet:
		return 0.0125
	}
	panic("synth: unknown tone length")
}
