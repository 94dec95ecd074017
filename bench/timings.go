package bench

import (
	"time"
)

type Timings struct {
	Rounds          uint64
	Total           time.Duration
	AverageDuration time.Duration
	MaxDuration     time.Duration
}

func (t *Timings) update(d time.Duration) {
	const window = 16

	t.Rounds += 1
	t.Total += d
	t.MaxDuration = max(t.MaxDuration, d)

	if t.Rounds <= window/2 {
		t.AverageDuration = t.Total / time.Duration(t.Rounds)
	} else {
		t.AverageDuration = ((window-1)*t.AverageDuration + d) / window
	}
}

// PerOp is the average duration of a single operation in a round of the
// given size.
func (t *Timings) PerOp(iterations int) time.Duration {
	if iterations <= 0 {
		return 0
	}

	return t.AverageDuration / time.Duration(iterations)
}
