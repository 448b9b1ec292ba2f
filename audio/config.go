package audio

const defaultSampleRate = 48000

// AudioConfig holds playback volume and rate
type AudioConfig struct {
	SampleRate    int
	MasterVolume  float64
	EffectVolumes [soundTypeCount]float64
}

// DefaultAudioConfig returns the volumes used when nothing is overridden
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		SampleRate:   defaultSampleRate,
		MasterVolume: 0.6,
		EffectVolumes: [soundTypeCount]float64{
			SoundSolved:   0.8,
			SoundComplete: 1.0,
		},
	}
}

// volume is the effective linear gain for a sound, clamped to [0, 1]
func (c *AudioConfig) volume(s SoundType) float64 {
	if s < 0 || s >= soundTypeCount {
		return 0
	}
	v := c.EffectVolumes[s] * c.MasterVolume
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
