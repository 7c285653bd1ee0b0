package sound

import "context"

// SampleSource produces the audio signal one sample at a time. The player
// calls NextSample once per output frame on its own thread and writes the
// returned value into every channel of the frame.
type SampleSource interface {
	// NextSample advances the source and returns the next sample in [-1, 1]
	NextSample() float64

	// SampleRate returns the sample rate the source was built for, in Hz
	SampleRate() float64

	// Channels returns the number of output channels per frame
	Channels() int
}

// Player defines the interface for audio output backends
type Player interface {
	// Initialize initializes the audio output system
	Initialize() error

	// Terminate terminates the audio output system
	Terminate()

	// PlayStream pulls samples from the source until the context ends
	PlayStream(ctx context.Context, src SampleSource) error
}
