package main

import (
	"testing"
	"time"

	"github.com/can2049/tetris-tui/internal/tetris"
	"github.com/stretchr/testify/assert"
)

func TestEveryEventHasTones(t *testing.T) {
	for event := SoundLock; event <= SoundGameOver; event++ {
		assert.NotEmpty(t, tonesForEvent(event), "event %d", event)
	}
	assert.Empty(t, tonesForEvent(SoundEvent(99)))
}

func TestRenderToneSequenceLength(t *testing.T) {
	const rate = 8000
	sequence := []toneSpec{
		{frequency: 440, duration: 100 * time.Millisecond},
		{frequency: 660, duration: 50 * time.Millisecond},
	}
	buffer := renderToneSequence(sequence, rate, 1)
	want := (samplesFor(100*time.Millisecond, rate) + samplesFor(toneGap, rate) + samplesFor(50*time.Millisecond, rate)) * bytesPerSample
	assert.Len(t, buffer, want)

	silent := renderToneSequence(sequence, rate, 0)
	for _, b := range silent {
		if b != 0 {
			t.Fatalf("expected silence at zero volume")
		}
	}
}

func TestSoundEventForLock(t *testing.T) {
	cases := []struct {
		result tetris.LockResult
		want   SoundEvent
		ok     bool
	}{
		{tetris.LockResult{}, SoundLock, false},
		{tetris.LockResult{Locked: true}, SoundLock, true},
		{tetris.LockResult{Locked: true, Distance: 12}, SoundDrop, true},
		{tetris.LockResult{Locked: true, Cleared: 1}, SoundLine1, true},
		{tetris.LockResult{Locked: true, Cleared: 2}, SoundLine2, true},
		{tetris.LockResult{Locked: true, Cleared: 3}, SoundLine3, true},
		{tetris.LockResult{Locked: true, Cleared: 4, Distance: 3}, SoundLine4, true},
	}
	for _, tc := range cases {
		got, ok := soundEventForLock(tc.result)
		assert.Equal(t, tc.ok, ok)
		if ok {
			assert.Equal(t, tc.want, got)
		}
	}
}

func TestSilentEngine(t *testing.T) {
	var nilEngine *SoundEngine
	assert.NotPanics(t, func() {
		nilEngine.SetEnabled(true)
		nilEngine.SetVolume(0.5)
		nilEngine.Play(SoundLock)
	})
	assert.False(t, nilEngine.Enabled())

	engine := NewSoundEngine(nil, audioSampleRate, true)
	assert.False(t, engine.Enabled())
	engine.SetEnabled(true)
	assert.False(t, engine.Enabled())
	assert.NotPanics(t, func() { engine.Play(SoundLine4) })
}

func TestVolumeFromPercent(t *testing.T) {
	assert.InDelta(t, 0.7, volumeFromPercent(70), 1e-9)
	assert.Equal(t, 0.0, volumeFromPercent(-10))
	assert.Equal(t, 1.0, volumeFromPercent(400))
	assert.Equal(t, 1.0, clampVolume(3))
}
