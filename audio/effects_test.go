package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// drain streams s to exhaustion, returning the sample count and the peak amplitude
func drain(t *testing.T, s beep.Streamer) (int, float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	total, peak := 0, 0.0
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		for _, smp := range buf[:n] {
			peak = max(peak, smp[0], -smp[0], smp[1], -smp[1])
		}
		total += n
		if !ok || n == 0 {
			return total, peak
		}
	}
	t.Fatal("streamer never drained")
	return 0, 0
}

func TestOscillator_WavesInRange(t *testing.T) {
	rate := beep.SampleRate(44100)
	for _, wave := range []WaveType{WaveSine, WaveSquare, WaveTriangle} {
		osc := NewOscillator(440, 50*time.Millisecond, wave, rate)

		samples := make([][2]float64, 100)
		n, ok := osc.Stream(samples)
		require.True(t, ok)
		require.Equal(t, 100, n)

		for i := 0; i < n; i++ {
			assert.GreaterOrEqual(t, samples[i][0], -1.0)
			assert.LessOrEqual(t, samples[i][0], 1.0)
			assert.Equal(t, samples[i][0], samples[i][1], "mono signal on both channels")
		}
		assert.NoError(t, osc.Err())
	}
}

func TestOscillator_StopsAtDuration(t *testing.T) {
	rate := beep.SampleRate(1000)
	osc := NewOscillator(100, 100*time.Millisecond, WaveSine, rate)

	n, _ := drain(t, osc)
	assert.Equal(t, 100, n)

	n, ok := osc.Stream(make([][2]float64, 10))
	assert.Zero(t, n)
	assert.False(t, ok)
}

func TestEnvelope_RampsAndLength(t *testing.T) {
	rate := beep.SampleRate(1000)
	osc := NewOscillator(0, time.Second, WaveSquare, rate) // constant +1
	env := NewEnvelope(osc, 100*time.Millisecond, 10*time.Millisecond, 10*time.Millisecond, rate)

	samples := make([][2]float64, 200)
	n, ok := env.Stream(samples)
	require.True(t, ok)
	require.Equal(t, 100, n)

	assert.Equal(t, 0.0, samples[0][0], "attack starts silent")
	assert.Equal(t, 1.0, samples[50][0], "sustain at full level")
	assert.Less(t, samples[99][0], 0.2, "release fades out")

	n, ok = env.Stream(samples)
	assert.Zero(t, n)
	assert.False(t, ok)
}

func TestCreateFanfareSound_Length(t *testing.T) {
	cfg := DefaultAudioConfig()
	cfg.SampleRate = 8000
	rate := beep.SampleRate(cfg.SampleRate)

	n, peak := drain(t, CreateFanfareSound(cfg))
	assert.Equal(t, soundLength(SoundComplete, rate), n)
	assert.Greater(t, peak, 0.0)
	assert.LessOrEqual(t, peak, 1.0)
}

func TestCreateChimeSound_Audible(t *testing.T) {
	cfg := DefaultAudioConfig()
	cfg.SampleRate = 8000
	rate := beep.SampleRate(cfg.SampleRate)

	n, peak := drain(t, CreateChimeSound(cfg))
	assert.Greater(t, n, 0)
	assert.LessOrEqual(t, n, soundLength(SoundSolved, rate))
	assert.Greater(t, peak, 0.0)
	assert.LessOrEqual(t, peak, 1.0)
}

func TestEffectVolumeZeroIsSilent(t *testing.T) {
	cfg := DefaultAudioConfig()
	cfg.SampleRate = 8000
	cfg.MasterVolume = 0

	_, peak := drain(t, CreateChimeSound(cfg))
	assert.Zero(t, peak)
}

func TestGetSoundEffect(t *testing.T) {
	cfg := DefaultAudioConfig()
	assert.NotNil(t, GetSoundEffect(SoundSolved, cfg))
	assert.NotNil(t, GetSoundEffect(SoundComplete, cfg))
	assert.Nil(t, GetSoundEffect(SoundType(99), cfg))
	assert.Equal(t, "unknown", SoundType(99).String())
}
