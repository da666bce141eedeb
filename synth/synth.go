// Package synth renders the game's sound tones as samples. Hosts wrap the
// output in whatever their audio backend expects.
package synth

import (
	"encoding/binary"
	"math"

	cfg "github.com/automoto/hedgecop/config"
)

const attackSeconds = 0.005

// Voice plays one tone from start to end. It satisfies beep.Streamer.
type Voice struct {
	tone  cfg.Tone
	rate  float64
	pos   int
	total int
	phase float64
}

func NewVoice(t cfg.Tone, sampleRate int) *Voice {
	return &Voice{
		tone:  t,
		rate:  float64(sampleRate),
		total: SampleCount(t, sampleRate),
	}
}

// SampleCount is the length of t in samples at sampleRate.
func SampleCount(t cfg.Tone, sampleRate int) int {
	if t.Duration <= 0 || sampleRate <= 0 {
		return 0
	}
	return int(t.Duration * float64(sampleRate))
}

// Next returns the next mono sample in [-Volume, Volume].
func (v *Voice) Next() (float64, bool) {
	if v.pos >= v.total {
		return 0, false
	}
	progress := float64(v.pos) / float64(v.total)
	freq := v.tone.Frequency + (v.tone.EndFrequency-v.tone.Frequency)*progress

	// Half sine, half square: audible on small speakers without clicking.
	s := math.Sin(2 * math.Pi * v.phase)
	sq := 1.0
	if v.phase >= 0.5 {
		sq = -1.0
	}
	sample := (0.5*s + 0.5*sq) * v.envelope() * v.tone.Volume

	v.phase += freq / v.rate
	v.phase -= math.Floor(v.phase)
	v.pos++
	return sample, true
}

func (v *Voice) envelope() float64 {
	t := float64(v.pos) / v.rate
	if t < attackSeconds {
		return t / attackSeconds
	}
	release := 0.3 * float64(v.total)
	if left := float64(v.total - v.pos); left < release {
		return left / release
	}
	return 1
}

func (v *Voice) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		s, more := v.Next()
		if !more {
			return i, i > 0
		}
		samples[i][0] = s
		samples[i][1] = s
	}
	return len(samples), true
}

func (v *Voice) Err() error { return nil }

// PCM16 renders t as interleaved stereo signed 16-bit little endian.
func PCM16(t cfg.Tone, sampleRate int) []byte {
	v := NewVoice(t, sampleRate)
	buf := make([]byte, 0, v.total*4)
	for {
		s, ok := v.Next()
		if !ok {
			return buf
		}
		pcm := uint16(int16(math.Max(-1, math.Min(1, s)) * math.MaxInt16))
		buf = binary.LittleEndian.AppendUint16(buf, pcm)
		buf = binary.LittleEndian.AppendUint16(buf, pcm)
	}
}
