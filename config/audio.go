package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	SoundDash
)

// Waveform picks the oscillator used to synthesize a sound
type Waveform int

const (
	WaveSine Waveform = iota
	WaveNoise
)

// ToneConfig describes a synthesized sound effect
type ToneConfig struct {
	Wave      Waveform
	Frequency float64 // Hz, start of the sweep
	SweepTo   float64 // Hz, end of the sweep (0 = constant)
	Duration  float64 // seconds
	Attack    float64 // seconds
	Release   float64 // seconds
	Volume    float64 // 0.0 - 1.0
}

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate    int
	DefaultSFXVol float64
}

// SoundConfig maps sound IDs to their synthesis parameters
type SoundConfig struct {
	Tones map[SoundID][]ToneConfig // Layers mixed together
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:    44100,
		DefaultSFXVol: 1.0,
	}

	Sound = SoundConfig{
		Tones: map[SoundID][]ToneConfig{
			SoundDash: {
				{Wave: WaveNoise, Duration: 0.18, Attack: 0.02, Release: 0.12, Volume: 0.35},
				{Wave: WaveSine, Frequency: 520, SweepTo: 180, Duration: 0.16, Attack: 0.005, Release: 0.1, Volume: 0.5},
			},
		},
	}
}
