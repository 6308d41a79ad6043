// Package notification sounds the terminal bell when an evaluation fails.
// It uses the beeep library, which picks the platform's beep mechanism.
package notification

import (
	"sync"

	"github.com/gen2brain/beeep"

	"github.com/zhubert/abacus/internal/logger"
)

var (
	mu     sync.Mutex
	beeper = beeep.Beep
)

// Beep plays the default system beep.
func Beep() error {
	mu.Lock()
	fn := beeper
	mu.Unlock()

	err := fn(beeep.DefaultFreq, beeep.DefaultDuration)
	if err != nil {
		logger.ComponentLogger("Notification").Warn("beep failed", "error", err)
	}
	return err
}

// EvaluationFailed beeps if enabled. It is a no-op otherwise.
func EvaluationFailed(enabled bool) error {
	if !enabled {
		return nil
	}
	return Beep()
}

// SetBeeper replaces the beep function, for tests.
func SetBeeper(fn func(freq float64, duration int) error) {
	mu.Lock()
	defer mu.Unlock()
	beeper = fn
}

// ResetBeeper restores beeep.Beep.
func ResetBeeper() {
	mu.Lock()
	defer mu.Unlock()
	beeper = beeep.Beep
}
