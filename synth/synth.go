// Package synth renders the game's sound effects procedurally with beep, so
// the binary ships without audio files.
package synth

import (
	"encoding/binary"
	"math"
	"math/rand"
	"time"

	cfg "github.com/automoto/telegraph/config"
	"github.com/automoto/telegraph/gamemath"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// oscillator generates a raw wave, optionally sweeping its frequency
type oscillator struct {
	freq     float64
	sweepTo  float64
	phase    float64
	duration int
	position int
	wave     cfg.Waveform
	rate     beep.SampleRate
	noise    *rand.Rand
}

// NewOscillator creates a wave generator. A non-zero sweepTo glides the
// frequency linearly over the duration.
func NewOscillator(t cfg.ToneConfig, rate beep.SampleRate, seed int64) beep.Streamer {
	return &oscillator{
		freq:     t.Frequency,
		sweepTo:  t.SweepTo,
		duration: rate.N(seconds(t.Duration)),
		wave:     t.Wave,
		rate:     rate,
		noise:    rand.New(rand.NewSource(seed)),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case cfg.WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case cfg.WaveNoise:
			val = o.noise.Float64()*2 - 1
		}
		samples[i][0] = val
		samples[i][1] = val

		freq := o.freq
		if o.sweepTo > 0 && o.duration > 0 {
			freq += (o.sweepTo - o.freq) * float64(o.position) / float64(o.duration)
		}
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies a linear attack and release to a stream
type envelope struct {
	streamer     beep.Streamer
	position     int
	attack       int
	release      int
	totalSamples int
}

func NewEnvelope(s beep.Streamer, t cfg.ToneConfig, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:     s,
		attack:       rate.N(seconds(t.Attack)),
		release:      rate.N(seconds(t.Release)),
		totalSamples: rate.N(seconds(t.Duration)),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 1.0
		if e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if remaining := e.totalSamples - e.position; e.release > 0 && remaining < e.release {
			vol = math.Min(vol, math.Max(0, float64(remaining)/float64(e.release)))
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s with a linear gain. math.Log2(0) is -Inf, so zero is silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// Build assembles the streamer for a sound and reports its length in samples.
func Build(id cfg.SoundID, rate beep.SampleRate, master float64) (beep.Streamer, int) {
	tones := cfg.Sound.Tones[id]
	if len(tones) == 0 {
		return nil, 0
	}

	layers := make([]beep.Streamer, 0, len(tones))
	total := 0
	for i, t := range tones {
		osc := NewOscillator(t, rate, int64(id)*1000+int64(i))
		layers = append(layers, newVolume(NewEnvelope(osc, t, rate), t.Volume))
		if n := rate.N(seconds(t.Duration)); n > total {
			total = n
		}
	}
	return beep.Take(total, newVolume(beep.Mix(layers...), master)), total
}

// Render drains s into 16-bit little-endian stereo PCM.
func Render(s beep.Streamer, total int) []byte {
	out := make([]byte, 0, total*4)
	buf := make([][2]float64, 512)
	for written := 0; written < total; {
		chunk := buf
		if left := total - written; left < len(chunk) {
			chunk = chunk[:left]
		}
		n, ok := s.Stream(chunk)
		for _, frame := range chunk[:n] {
			out = binary.LittleEndian.AppendUint16(out, uint16(toInt16(frame[0])))
			out = binary.LittleEndian.AppendUint16(out, uint16(toInt16(frame[1])))
		}
		written += n
		if !ok || n == 0 {
			break
		}
	}
	return out
}

// PCM renders sound id at the given sample rate and master volume.
func PCM(id cfg.SoundID, sampleRate int, master float64) []byte {
	s, total := Build(id, beep.SampleRate(sampleRate), master)
	if s == nil {
		return nil
	}
	return Render(s, total)
}

func toInt16(v float64) int16 {
	return int16(gamemath.Clamp(v, -1, 1) * math.MaxInt16)
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
