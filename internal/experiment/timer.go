package experiment

import (
	"fmt"
	"math"
	"time"

	"github.com/jonboulle/clockwork"
)

// OneShotTimer 记录单个事件的耗时
type OneShotTimer struct {
	clock      clockwork.Clock
	start, end time.Time
}

func NewOneShotTimer(clock clockwork.Clock) *OneShotTimer {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &OneShotTimer{clock: clock}
}

func (t *OneShotTimer) Start() { t.start = t.clock.Now() }
func (t *OneShotTimer) Stop()  { t.end = t.clock.Now() }

func (t *OneShotTimer) Duration() time.Duration { return t.end.Sub(t.start) }

// MultiShotTimer 聚合多次计时并给出统计量（单位秒）
type MultiShotTimer struct {
	timer     *OneShotTimer
	durations []float64
}

func NewMultiShotTimer(clock clockwork.Clock) *MultiShotTimer {
	return &MultiShotTimer{timer: NewOneShotTimer(clock)}
}

func (m *MultiShotTimer) Start() { m.timer.Start() }

func (m *MultiShotTimer) Stop() {
	m.timer.Stop()
	m.durations = append(m.durations, m.timer.Duration().Seconds())
}

func (m *MultiShotTimer) Count() int { return len(m.durations) }

func (m *MultiShotTimer) Sum() float64 {
	sum := 0.0
	for _, d := range m.durations {
		sum += d
	}
	return sum
}

func (m *MultiShotTimer) Sum2() float64 {
	sum := 0.0
	for _, d := range m.durations {
		sum += d * d
	}
	return sum
}

func (m *MultiShotTimer) Mean() float64  { return m.Sum() / float64(m.Count()) }
func (m *MultiShotTimer) Mean2() float64 { return m.Sum2() / float64(m.Count()) }

func (m *MultiShotTimer) Variance() float64 {
	mean := m.Mean()
	return m.Mean2() - mean*mean
}

func (m *MultiShotTimer) StdDev() float64 { return math.Sqrt(m.Variance()) }

func (m *MultiShotTimer) String() string {
	return fmt.Sprintf("count=%d mean=%gs stddev=%gs sum=%gs",
		m.Count(), m.Mean(), m.StdDev(), m.Sum())
}
