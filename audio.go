package main

import (
	"sync"

	"github.com/ebitengine/oto/v3"
)

const audioSampleRate = 44100

var (
	audioOnce sync.Once
	audioCtx  *oto.Context
	audioErr  error
)

// initAudioContext opens the shared output device once. oto allows a single
// context per process.
func initAudioContext() (*oto.Context, error) {
	audioOnce.Do(func() {
		ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
			SampleRate:   audioSampleRate,
			ChannelCount: 2,
			Format:       oto.FormatSignedInt16LE,
		})
		if err != nil {
			audioErr = err
			return
		}
		<-ready
		audioCtx = ctx
	})
	return audioCtx, audioErr
}
