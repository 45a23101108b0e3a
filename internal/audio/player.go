package audio

import (
	"bytes"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"

	"github.com/vovakirdan/tui-tiles/internal/tiles"
)

// TonePlayer plays synthesised notes through oto. Playback runs on its own
// goroutine so PlayHit and PlayMiss return immediately.
type TonePlayer struct {
	ctx *oto.Context

	mu     sync.Mutex
	rng    *rand.Rand
	volume float64
	notes  map[float64][]byte // Rendered once per scale note
	miss   []byte
}

var _ tiles.Sound = (*TonePlayer)(nil)

// NewTonePlayer opens the audio device. Only one TonePlayer may exist per
// process; callers fall back to Nop when this fails.
func NewTonePlayer(seed int64) (*TonePlayer, error) {
	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   SampleRate,
		ChannelCount: ChannelCount,
		Format:       oto.FormatSignedInt16LE,
	})
	if err != nil {
		return nil, fmt.Errorf("audio: cannot open output device: %w", err)
	}
	<-ready

	return &TonePlayer{
		ctx:    ctx,
		rng:    rand.New(rand.NewSource(seed)),
		volume: noteVolume,
		notes:  make(map[float64][]byte, len(Scale)),
		miss:   RenderMiss(missVolume),
	}, nil
}

// PlayHit plays a random note of the scale.
func (p *TonePlayer) PlayHit() {
	p.mu.Lock()
	freq := RandomNote(p.rng)
	buf, ok := p.notes[freq]
	if !ok {
		buf = RenderNote(freq, p.volume)
		p.notes[freq] = buf
	}
	p.mu.Unlock()

	p.play(buf)
}

// PlayMiss plays the failure tone.
func (p *TonePlayer) PlayMiss() {
	p.play(p.miss)
}

func (p *TonePlayer) play(buf []byte) {
	go func() {
		player := p.ctx.NewPlayer(bytes.NewReader(buf))
		player.Play()
		for player.IsPlaying() {
			time.Sleep(5 * time.Millisecond)
		}
		_ = player.Close()
	}()
}

// Nop is a silent tiles.Sound. Used for --mute and SSH sessions.
type Nop struct{}

func (Nop) PlayHit()  {}
func (Nop) PlayMiss() {}

var _ tiles.Sound = Nop{}
