package clock

import "time"

// Clock abstracts time to keep usecases deterministic in tests.
type Clock interface {
	Now() time.Time
}

// Sleeper holds the artificial latency of mock network calls. Sleeps are
// never cancelled: once started they always complete.
type Sleeper interface {
	Sleep(d time.Duration)
}

type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}

func (SystemClock) Sleep(d time.Duration) {
	if d <= 0 {
		return
	}
	time.Sleep(d)
}

// NoSleep skips every delay.
type NoSleep struct{}

func (NoSleep) Sleep(time.Duration) {}
