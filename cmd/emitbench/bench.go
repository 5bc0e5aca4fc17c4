package main

import (
	"fmt"
	"log/slog"
	"runtime"
	"time"

	"github.com/jamiealquiza/tachymeter"
	"github.com/pkg/errors"

	"github.com/krew-solutions/signals-light-go/signalslight/lifetime"
	"github.com/krew-solutions/signals-light-go/signalslight/signals"
	"github.com/krew-solutions/signals-light-go/signalslight/slot"
)

type benchConfig struct {
	maxSlots     int
	expiredRatio float64
	iterations   int
}

func (c benchConfig) validate() error {
	if c.maxSlots < 1 {
		return errors.Errorf("max slots must be positive, got %d", c.maxSlots)
	}
	if c.expiredRatio < 0 || c.expiredRatio > 1 {
		return errors.Errorf("expired ratio must be within [0, 1], got %v", c.expiredRatio)
	}
	if c.iterations < 1 {
		return errors.Errorf("iterations must be positive, got %d", c.iterations)
	}
	return nil
}

// slotCounts returns 1, 10, 100, ... up to limit, always ending with limit.
func slotCounts(limit int) []int {
	var counts []int
	for n := 1; n < limit; n *= 10 {
		counts = append(counts, n)
	}
	return append(counts, limit)
}

type fixture struct {
	signal  *signals.SignalImp[int, int]
	lives   []*lifetime.Lifetime
	expired int
}

// newFixture connects n slots, each tracking its own lifetime, and ends an
// evenly spread share of those lifetimes.
func newFixture(n int, expiredRatio float64, logger *slog.Logger) fixture {
	f := fixture{
		signal: signals.NewSignal[int, int](
			signals.WithName(fmt.Sprintf("bench-%d", n)),
			signals.WithLogger(logger),
		),
		lives: make([]*lifetime.Lifetime, n),
	}
	for i := range f.lives {
		f.lives[i] = lifetime.New()
		f.signal.Connect(slot.MustNewSlot(slot.FromFunc(addOne)).Track(f.lives[i]))
	}
	for i, l := range f.lives {
		if int(float64(i+1)*expiredRatio) > int(float64(i)*expiredRatio) {
			l.End()
			f.expired++
		}
	}
	return f
}

func addOne(v int) int {
	return v + 1
}

func (f fixture) measure(iterations int) (*tachymeter.Metrics, error) {
	tach := tachymeter.New(&tachymeter.Config{Size: iterations})
	wallStart := time.Now()
	for i := 0; i < iterations; i++ {
		start := time.Now()
		if _, err := f.signal.Emit(i); err != nil {
			return nil, errors.Wrapf(err, "emit %d", i)
		}
		tach.AddTime(time.Since(start))
	}
	tach.SetWallTime(time.Since(wallStart))
	runtime.KeepAlive(f.lives)
	return tach.Calc(), nil
}
