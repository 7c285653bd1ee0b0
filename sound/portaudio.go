package sound

import (
	"context"
	"errors"
	"fmt"

	"github.com/gordonklaus/portaudio"
)

type PortaudioPlayer struct {
	config PlayerConfig
}

type PlayerConfig struct {
	FramesPerBuffer int
}

func NewPortaudioPlayer(config PlayerConfig) *PortaudioPlayer {
	return &PortaudioPlayer{config: config}
}

func GetDefaultConfig() PlayerConfig {
	return PlayerConfig{
		FramesPerBuffer: 1024,
	}
}

func (p *PortaudioPlayer) Initialize() error {
	return portaudio.Initialize()
}

func (p *PortaudioPlayer) Terminate() {
	portaudio.Terminate()
}

// PlayStream opens the default output device and lets its callback pull one
// sample per frame from the source until the context ends. The sample value
// is written into every channel slot of the frame; portaudio converts the
// float32 stream to whatever format the device negotiated.
func (p *PortaudioPlayer) PlayStream(ctx context.Context, src SampleSource) error {
	channels := src.Channels()

	callback := func(out []float32) {
		for frame := 0; frame < len(out); frame += channels {
			v := float32(src.NextSample())
			for c := 0; c < channels; c++ {
				out[frame+c] = v
			}
		}
	}

	stream, err := portaudio.OpenDefaultStream(
		0,
		channels,
		src.SampleRate(),
		p.config.FramesPerBuffer,
		callback,
	)
	if err != nil {
		return fmt.Errorf("failed to open output stream: %w", err)
	}
	defer stream.Close()

	if err := stream.Start(); err != nil {
		return fmt.Errorf("failed to start output stream: %w", err)
	}
	defer stream.Stop()

	<-ctx.Done()
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return nil
	}
	return ctx.Err()
}
