// Package audio provides tiles.Sound implementations. TonePlayer synthesises
// short piano-like notes and plays them through the system audio device.
package audio

import (
	"math"
	"math/rand"
	"time"
)

// Output format shared by the synthesiser and the player.
const (
	SampleRate     = 44100
	ChannelCount   = 2
	bytesPerSample = 4 // 16-bit stereo
)

// Scale is the C major scale, C4 to C5, in Hz. Each hit plays one at random.
var Scale = []float64{261.63, 293.66, 329.63, 349.23, 392.00, 440.00, 493.88, 523.25}

// Envelope and voice parameters
const (
	noteAttack   = 20 * time.Millisecond
	noteDecay    = 1500 * time.Millisecond
	noteVolume   = 0.3
	overtoneGain = 0.35
	overtoneCent = 5.0 // Detune of the second harmonic

	missDuration = 500 * time.Millisecond
	missFrom     = 150.0
	missTo       = 50.0
	missVolume   = 0.25
)

// RandomNote picks a note from Scale.
func RandomNote(rng *rand.Rand) float64 {
	return Scale[rng.Intn(len(Scale))]
}

// RenderNote synthesises a plucked note: a triangle fundamental with a
// slightly detuned sine at twice the frequency, a linear attack, and an
// exponential decay.
func RenderNote(freq float64, volume float64) []byte {
	samples := int(float64(SampleRate) * noteDecay.Seconds())
	attack := int(float64(SampleRate) * noteAttack.Seconds())
	overtone := 2 * freq * math.Pow(2, overtoneCent/1200)
	buf := make([]byte, samples*bytesPerSample)

	for i := 0; i < samples; i++ {
		t := float64(i) / SampleRate
		env := math.Exp(-5 * t / noteDecay.Seconds())
		if i < attack {
			env *= float64(i) / float64(attack)
		}
		v := triangle(freq*t) + overtoneGain*math.Sin(2*math.Pi*overtone*t)
		putSample(buf, i, v/(1+overtoneGain)*env*volume)
	}
	return buf
}

// RenderMiss synthesises a falling sawtooth used for wrong taps and timeouts.
func RenderMiss(volume float64) []byte {
	samples := int(float64(SampleRate) * missDuration.Seconds())
	buf := make([]byte, samples*bytesPerSample)
	phase := 0.0

	for i := 0; i < samples; i++ {
		p := float64(i) / float64(samples)
		// Exponential glide from missFrom to missTo.
		freq := missFrom * math.Pow(missTo/missFrom, p)
		phase += freq / SampleRate
		env := 1 - p
		putSample(buf, i, sawtooth(phase)*env*volume)
	}
	return buf
}

// triangle returns a unit triangle wave for a phase measured in cycles.
func triangle(phase float64) float64 {
	f := phase - math.Floor(phase)
	return 4*math.Abs(f-0.5) - 1
}

// sawtooth returns a unit sawtooth wave for a phase measured in cycles.
func sawtooth(phase float64) float64 {
	f := phase - math.Floor(phase)
	return 2*f - 1
}

// putSample writes v, clamped to [-1, 1], to both channels of frame i.
func putSample(buf []byte, i int, v float64) {
	const maxInt16 = 1<<15 - 1
	v = math.Max(-1, math.Min(1, v))
	s := int16(v * maxInt16)
	buf[i*4] = byte(s)
	buf[i*4+1] = byte(s >> 8)
	buf[i*4+2] = byte(s)
	buf[i*4+3] = byte(s >> 8)
}
