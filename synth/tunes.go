package synth

import "fmt"

// Tune returns the built-in melody with the given name.
func Tune(name string) (Melody, error) {
	switch name {
	case "", "default":
		return DefaultMelody(), nil
	case "demo":
		return DemoTune(), nil
	}
	return Melody{}, fmt.Errorf("unknown tune %q", name)
}

// DefaultMelody alternates the reference A with the A one octave up, one beat
// each.
func DefaultMelody() Melody {
	return mustMelody(
		Note{Pitch: 1.0, Length: Full},
		Note{Pitch: 2.0, Length: Full},
	)
}

// DemoTune walks an A major arpeggio up and back down, mixing dotted and
// short lengths.
func DemoTune() Melody {
	return mustMelody(
		Note{Pitch: 1.0, Length: Full},
		Note{Pitch: 1.25, Length: Half},
		Note{Pitch: 1.5, Length: HalfDot},
		Note{Pitch: 2.0, Length: FullDot},
		Note{Pitch: 1.5, Length: Half},
		Note{Pitch: 1.25, Length: Quarter},
		Note{Pitch: 1.0, Length: TwoDot},
	)
}

func mustMelody(notes ...Note) Melody {
	m, err := NewMelody(notes...)
	if err != nil {
		panic(err)
	}
	return m
}
