package synth

import (
	"errors"
	"math"
	"sort"
)

// ErrEmptyMelody is returned when a melody is constructed without notes.
var ErrEmptyMelody = errors.New("melody must contain at least one note")

// Melody is an ordered sequence of notes. The order of the notes is the
// musical order; index 0 sounds first. A melody is immutable once constructed
// and safe to share read-only between streams.
type Melody struct {
	notes  []Note
	bounds []float64 // cumulative beat boundary after each note
	total  float64
}

// NewMelody builds a melody from the given notes. The beat boundaries are
// precomputed here so that per-sample lookups stay allocation-free.
func NewMelody(notes ...Note) (Melody, error) {
	if len(notes) == 0 {
		return Melody{}, ErrEmptyMelody
	}
	owned := make([]Note, len(notes))
	copy(owned, notes)
	bounds := make([]float64, len(owned))
	sum := 0.0
	for i, n := range owned {
		sum += n.Length.Beats()
		bounds[i] = sum
	}
	return Melody{notes: owned, bounds: bounds, total: sum}, nil
}

// Len returns the number of notes in the melody.
func (m Melody) Len() int { return len(m.notes) }

// TotalBeats returns the length of one full pass of the melody in beats.
func (m Melody) TotalBeats() float64 { return m.total }

// PitchAt resolves the pitch ratio of the note sounding after the given
// number of whole elapsed seconds at the given tempo.
func (m Melody) PitchAt(seconds uint64, bpm int) float64 {
	return m.pitchAtBeat(float64(seconds) * float64(bpm) / 60.0)
}

// PitchAtTime is the fractional-time variant of PitchAt.
func (m Melody) PitchAtTime(seconds float64, bpm int) float64 {
	return m.pitchAtBeat(seconds * float64(bpm) / 60.0)
}

// pitchAtBeat finds the note sounding at the given beat position. The beat is
// reduced modulo the melody's total length, so the melody loops and the
// lookup is total for any non-negative position. A boundary that is reached
// exactly belongs to the note that just ended, so the next note is resolved.
func (m Melody) pitchAtBeat(beat float64) float64 {
	beat = math.Mod(beat, m.total)
	i := sort.Search(len(m.bounds), func(i int) bool { return m.bounds[i] > beat })
	return m.notes[i].Pitch
}
