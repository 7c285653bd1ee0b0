package sound

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/ebitengine/oto/v3"
)

// OtoPlayer plays samples through the oto library, which pulls its byte
// stream from an io.Reader instead of invoking a callback.
type OtoPlayer struct {
	otoCtx     *oto.Context
	sampleRate int
	channels   int
}

func NewOtoPlayer(sampleRate, channels int) *OtoPlayer {
	return &OtoPlayer{
		sampleRate: sampleRate,
		channels:   channels,
	}
}

func (p *OtoPlayer) Initialize() error {
	op := &oto.NewContextOptions{
		SampleRate:   p.sampleRate,
		ChannelCount: p.channels,
		Format:       oto.FormatSignedInt16LE,
	}

	ctx, readyChan, err := oto.NewContext(op)
	if err != nil {
		return fmt.Errorf("failed to create oto context: %w", err)
	}
	<-readyChan

	p.otoCtx = ctx
	return nil
}

// Terminate is a no-op: oto contexts have no teardown.
func (p *OtoPlayer) Terminate() {}

func (p *OtoPlayer) PlayStream(ctx context.Context, src SampleSource) error {
	if p.otoCtx == nil {
		return errors.New("oto context not initialized")
	}

	player := p.otoCtx.NewPlayer(&sampleReader{src: src})
	player.Play()

	<-ctx.Done()

	if err := player.Close(); err != nil {
		return fmt.Errorf("failed to close oto player: %w", err)
	}
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return nil
	}
	return ctx.Err()
}

// sampleReader adapts a SampleSource to the byte stream oto pulls from,
// encoding each sample as int16 little endian for every channel of the
// frame. Reads stop at whole-frame boundaries.
type sampleReader struct {
	src SampleSource
}

func (r *sampleReader) Read(b []byte) (int, error) {
	channels := r.src.Channels()
	frameBytes := channels * 2

	n := 0
	for n+frameBytes <= len(b) {
		v := pcm16(r.src.NextSample())
		for c := 0; c < channels; c++ {
			binary.LittleEndian.PutUint16(b[n:], uint16(v))
			n += 2
		}
	}
	return n, nil
}
