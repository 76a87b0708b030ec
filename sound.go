package main

import (
	"bytes"
	"math"
	"sync"
	"time"

	"github.com/can2049/tetris-tui/internal/tetris"
	"github.com/ebitengine/oto/v3"
)

type SoundEvent int

const (
	SoundLock SoundEvent = iota
	SoundLine1
	SoundLine2
	SoundLine3
	SoundLine4
	SoundRotate
	SoundMove
	SoundDrop
	SoundPause
	SoundGameOver
)

type SoundEngine struct {
	enabled    bool
	sampleRate int
	ctx        *oto.Context
	volume     float64
	mu         sync.RWMutex
}

// NewSoundEngine wraps an output context. A nil context gives a silent engine.
func NewSoundEngine(ctx *oto.Context, sampleRate int, enabled bool) *SoundEngine {
	return &SoundEngine{
		enabled:    enabled && ctx != nil,
		sampleRate: sampleRate,
		ctx:        ctx,
		volume:     0.7,
	}
}

func (s *SoundEngine) SetEnabled(enabled bool) {
	if s == nil {
		return
	}
	s.mu.Lock()
	s.enabled = enabled && s.ctx != nil
	s.mu.Unlock()
}

func (s *SoundEngine) Enabled() bool {
	if s == nil {
		return false
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.enabled
}

func (s *SoundEngine) SetVolume(volume float64) {
	if s == nil {
		return
	}
	s.mu.Lock()
	s.volume = clampVolume(volume)
	s.mu.Unlock()
}

func (s *SoundEngine) Play(event SoundEvent) {
	if s == nil {
		return
	}
	s.mu.RLock()
	ctx := s.ctx
	enabled := s.enabled
	volume := s.volume
	s.mu.RUnlock()
	if !enabled || ctx == nil {
		return
	}
	sequence := tonesForEvent(event)
	if len(sequence) == 0 {
		return
	}
	go func() {
		buffer := renderToneSequence(sequence, s.sampleRate, volume)
		player := ctx.NewPlayer(bytes.NewReader(buffer))
		player.Play()
		for player.IsPlaying() {
			time.Sleep(5 * time.Millisecond)
		}
		_ = player.Close()
	}()
}

// soundEventForLock picks the effect for a piece that just locked.
func soundEventForLock(result tetris.LockResult) (SoundEvent, bool) {
	if !result.Locked {
		return SoundLock, false
	}
	switch {
	case result.Cleared >= 4:
		return SoundLine4, true
	case result.Cleared == 3:
		return SoundLine3, true
	case result.Cleared == 2:
		return SoundLine2, true
	case result.Cleared == 1:
		return SoundLine1, true
	case result.Distance > 0:
		return SoundDrop, true
	default:
		return SoundLock, true
	}
}

type toneSpec struct {
	frequency float64
	duration  time.Duration
	volume    float64
}

func tonesForEvent(event SoundEvent) []toneSpec {
	switch event {
	case SoundLock:
		return []toneSpec{{frequency: 220, duration: 70 * time.Millisecond, volume: 0.3}}
	case SoundLine1:
		return []toneSpec{{frequency: 440, duration: 90 * time.Millisecond, volume: 0.3}}
	case SoundLine2:
		return []toneSpec{
			{frequency: 440, duration: 70 * time.Millisecond, volume: 0.3},
			{frequency: 660, duration: 90 * time.Millisecond, volume: 0.3},
		}
	case SoundLine3:
		return []toneSpec{
			{frequency: 440, duration: 70 * time.Millisecond, volume: 0.3},
			{frequency: 660, duration: 70 * time.Millisecond, volume: 0.3},
			{frequency: 880, duration: 90 * time.Millisecond, volume: 0.3},
		}
	case SoundLine4:
		return []toneSpec{
			{frequency: 660, duration: 80 * time.Millisecond, volume: 0.3},
			{frequency: 880, duration: 80 * time.Millisecond, volume: 0.3},
			{frequency: 990, duration: 120 * time.Millisecond, volume: 0.3},
		}
	case SoundRotate:
		return []toneSpec{{frequency: 520, duration: 40 * time.Millisecond, volume: 0.25}}
	case SoundMove:
		return []toneSpec{{frequency: 380, duration: 25 * time.Millisecond, volume: 0.18}}
	case SoundDrop:
		return []toneSpec{{frequency: 240, duration: 55 * time.Millisecond, volume: 0.22}}
	case SoundPause:
		return []toneSpec{
			{frequency: 520, duration: 40 * time.Millisecond, volume: 0.2},
			{frequency: 390, duration: 60 * time.Millisecond, volume: 0.2},
		}
	case SoundGameOver:
		return []toneSpec{
			{frequency: 330, duration: 120 * time.Millisecond, volume: 0.28},
			{frequency: 247, duration: 120 * time.Millisecond, volume: 0.28},
			{frequency: 180, duration: 220 * time.Millisecond, volume: 0.28},
		}
	default:
		return nil
	}
}

const (
	toneGap        = 10 * time.Millisecond
	bytesPerSample = 4
)

func samplesFor(duration time.Duration, sampleRate int) int {
	return int(float64(sampleRate) * duration.Seconds())
}

// renderToneSequence synthesizes 16-bit stereo little-endian PCM.
func renderToneSequence(sequence []toneSpec, sampleRate int, masterVolume float64) []byte {
	baseVolume := 0.3
	gapSamples := samplesFor(toneGap, sampleRate)
	totalSamples := 0
	for i, tone := range sequence {
		totalSamples += samplesFor(tone.duration, sampleRate)
		if i < len(sequence)-1 {
			totalSamples += gapSamples
		}
	}
	buffer := make([]byte, totalSamples*bytesPerSample)
	index := 0
	for i, tone := range sequence {
		volume := baseVolume
		if tone.volume > 0 {
			volume = tone.volume
		}
		volume *= clampVolume(masterVolume)
		renderTone(buffer, index, tone, sampleRate, volume)
		index += samplesFor(tone.duration, sampleRate) * bytesPerSample
		if i < len(sequence)-1 {
			index += gapSamples * bytesPerSample
		}
	}
	return buffer
}

func renderTone(buffer []byte, start int, tone toneSpec, sampleRate int, volume float64) {
	const maxInt16 = 1<<15 - 1
	samples := samplesFor(tone.duration, sampleRate)
	fadeSamples := int(float64(sampleRate) * 0.003)
	for i := 0; i < samples; i++ {
		env := 1.0
		if fadeSamples > 0 {
			if i < fadeSamples {
				env = float64(i) / float64(fadeSamples)
			} else if i > samples-fadeSamples {
				env = float64(samples-i) / float64(fadeSamples)
			}
			if env < 0 {
				env = 0
			}
		}
		sample := math.Sin(2 * math.Pi * tone.frequency * float64(i) / float64(sampleRate))
		value := int16(sample * volume * env * maxInt16)
		buffer[start+i*4] = byte(value)
		buffer[start+i*4+1] = byte(value >> 8)
		buffer[start+i*4+2] = byte(value)
		buffer[start+i*4+3] = byte(value >> 8)
	}
}

func clampVolume(value float64) float64 {
	if value < 0 {
		return 0
	}
	if value > 1 {
		return 1
	}
	return value
}

func volumeFromPercent(value int) float64 {
	return float64(clampVolumePercent(value)) / 100
}
