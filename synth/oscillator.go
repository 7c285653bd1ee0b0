package synth

import "math"

// Mode selects how the oscillator keeps time between samples.
type Mode int

const (
	// ModeWrap drives the sine argument directly from a sample clock that
	// wraps once per second of audio. The wave phase restarts at every wrap,
	// which is audible as a once-per-second discontinuity.
	ModeWrap Mode = iota

	// ModePhase accumulates true oscillator phase sample by sample, giving a
	// continuous waveform across note changes and clock wraps.
	ModePhase
)

// melodyClockDiv converts the wrapping sample clock into the whole-second
// value fed to the melody lookup: 1000 clock ticks count as one second of
// melody time. This is a coarse time base, independent of the real sample
// rate, and it restarts whenever the clock wraps. ModePhase uses the exact
// samples/sampleRate conversion instead.
const melodyClockDiv = 1000

// Oscillator turns a melody into a stream of sine samples. It is owned by a
// single output stream and must only be used from that stream's callback; its
// methods never allocate, lock or block.
type Oscillator struct {
	sampleRate float64
	channels   int
	bpm        int
	mode       Mode
	melody     Melody

	sampleClock float64 // wraps every sampleRate ticks
	samples     uint64  // total ticks since construction, never wraps
	phase       float64 // current phase in turns, ModePhase only
}

// NewOscillator creates an oscillator for one output stream. The sample rate
// and channel count come from the negotiated stream configuration; the tempo
// is fixed for the stream's lifetime.
func NewOscillator(melody Melody, sampleRate float64, channels, bpm int, mode Mode) *Oscillator {
	return &Oscillator{
		sampleRate: sampleRate,
		channels:   channels,
		bpm:        bpm,
		mode:       mode,
		melody:     melody,
	}
}

// SampleRate returns the stream sample rate in Hz.
func (o *Oscillator) SampleRate() float64 { return o.sampleRate }

// Channels returns the number of output channels per frame.
func (o *Oscillator) Channels() int { return o.channels }

// Tick advances the sample clock by one output sample.
func (o *Oscillator) Tick() {
	o.sampleClock = math.Mod(o.sampleClock+1, o.sampleRate)
	o.samples++
	if o.mode == ModePhase {
		secs := float64(o.samples) / o.sampleRate
		freq := o.melody.PitchAtTime(secs, o.bpm) * AReferenceHz
		_, o.phase = math.Modf(o.phase + freq/o.sampleRate)
	}
}

// Tone evaluates the sine wave at the current clock position. It is a pure
// function of the oscillator state and mutates nothing.
func (o *Oscillator) Tone() float64 {
	if o.mode == ModePhase {
		return math.Sin(2 * math.Pi * o.phase)
	}
	secs := uint64(o.sampleClock) / melodyClockDiv
	pitch := o.melody.PitchAt(secs, o.bpm)
	return math.Sin(o.sampleClock * pitch * AReferenceHz * 2 * math.Pi / o.sampleRate)
}

// NextSample advances the clock and produces the sample for the next output
// frame. The caller writes the value into every channel of the frame.
func (o *Oscillator) NextSample() float64 {
	o.Tick()
	return o.Tone()
}
