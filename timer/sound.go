package timer

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/generators"
	"github.com/gopxl/beep/v2/speaker"
)

const (
	sampleRate beep.SampleRate = 44100

	chimeLow   = 523.25 // C5
	chimeHigh  = 1046.5 // C6
	chimeSweep = 100 * time.Millisecond
	chimeTotal = 500 * time.Millisecond
	chimeRise  = 50 * time.Millisecond
	chimePeak  = 0.3
	chimeFloor = 0.001
)

var speakerOnce sync.Once

var errSpeaker error

func initSpeaker() error {
	speakerOnce.Do(func() {
		errSpeaker = speaker.Init(sampleRate, sampleRate.N(time.Second/10))
	})

	return errSpeaker
}

// sweep is a sine wave whose frequency rises exponentially from chimeLow to
// chimeHigh over n samples.
func sweep(n int) beep.Streamer {
	var (
		i     int
		phase float64
	)

	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		if i >= n {
			return 0, false
		}

		filled := 0

		for ; filled < len(samples) && i < n; filled++ {
			freq := chimeLow * math.Pow(chimeHigh/chimeLow, float64(i)/float64(n))
			v := math.Sin(phase)

			samples[filled][0] = v
			samples[filled][1] = v

			phase += 2 * math.Pi * freq / float64(sampleRate)
			i++
		}

		return filled, true
	})
}

// envelope shapes s with a linear attack followed by an exponential decay
// to chimeFloor at the end of the chime. The peak is 1.
func envelope(s beep.Streamer) beep.Streamer {
	rise := sampleRate.N(chimeRise)
	total := sampleRate.N(chimeTotal)
	decay := math.Log(chimeFloor) / float64(total-rise)

	pos := 0

	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		n, ok := s.Stream(samples)

		for i := range samples[:n] {
			var amp float64

			if pos < rise {
				amp = float64(pos) / float64(rise)
			} else {
				amp = math.Exp(decay * float64(pos-rise))
			}

			samples[i][0] *= amp
			samples[i][1] *= amp
			pos++
		}

		return n, ok
	})
}

// chime returns the phase completion sound: a soft bell rising from C5 to
// C6.
func chime() (beep.Streamer, error) {
	tail, err := generators.SineTone(sampleRate, chimeHigh)
	if err != nil {
		return nil, err
	}

	sweepLen := sampleRate.N(chimeSweep)
	tailLen := sampleRate.N(chimeTotal) - sweepLen

	tone := beep.Seq(sweep(sweepLen), beep.Take(tailLen, tail))

	return &effects.Gain{
		Streamer: envelope(tone),
		Gain:     chimePeak - 1,
	}, nil
}

// playChime plays the chime and blocks until it finishes.
func playChime() error {
	if err := initSpeaker(); err != nil {
		return err
	}

	s, err := chime()
	if err != nil {
		return err
	}

	done := make(chan struct{})

	speaker.Play(beep.Seq(s, beep.Callback(func() {
		close(done)
	})))

	select {
	case <-done:
	case <-time.After(2 * chimeTotal):
	}

	return nil
}
