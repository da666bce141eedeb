package synth

import (
	"encoding/binary"
	"math"
	"testing"

	cfg "github.com/automoto/hedgecop/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var blip = cfg.Tone{Name: "blip", Frequency: 440, EndFrequency: 880, Duration: 0.1, Volume: 0.5}

func TestVoiceLengthAndRange(t *testing.T) {
	v := NewVoice(blip, 8000)

	n := 0
	for {
		s, ok := v.Next()
		if !ok {
			break
		}
		require.LessOrEqual(t, math.Abs(s), 0.5+1e-9)
		n++
	}
	assert.Equal(t, 800, n)

	_, ok := v.Next()
	assert.False(t, ok)
}

func TestVoiceStartsAndEndsQuiet(t *testing.T) {
	v := NewVoice(blip, 8000)
	first, _ := v.Next()
	assert.Zero(t, first)

	var last float64
	for {
		s, ok := v.Next()
		if !ok {
			break
		}
		last = s
	}
	assert.Less(t, math.Abs(last), 0.01)
}

func TestStreamReportsEnd(t *testing.T) {
	v := NewVoice(blip, 8000)
	buf := make([][2]float64, 512)

	n, ok := v.Stream(buf)
	assert.Equal(t, 512, n)
	assert.True(t, ok)

	n, ok = v.Stream(buf)
	assert.Equal(t, 288, n)
	assert.True(t, ok)

	n, ok = v.Stream(buf)
	assert.Zero(t, n)
	assert.False(t, ok)
	assert.NoError(t, v.Err())
}

func TestPCM16(t *testing.T) {
	pcm := PCM16(blip, 8000)
	require.Len(t, pcm, 800*4)

	for i := 0; i < len(pcm); i += 4 {
		left := binary.LittleEndian.Uint16(pcm[i:])
		right := binary.LittleEndian.Uint16(pcm[i+2:])
		require.Equal(t, left, right)
	}

	assert.Empty(t, PCM16(cfg.Tone{Duration: 0}, 8000))
	assert.Zero(t, SampleCount(blip, 0))
}

func TestEveryGameSoundRenders(t *testing.T) {
	for id, tone := range cfg.Sound.Tones {
		assert.NotEmpty(t, PCM16(tone, cfg.Audio.SampleRate), id.String())
	}
}
