package review

import (
	"sync"
	"time"
)

// PollInterval is the wall-clock polling cadence.
const PollInterval = 30 * time.Second

// Poller emits wall-clock instants on a fixed cadence, starting with an
// immediate one. Gate evaluation stays with the consumer so all core
// state remains single-writer.
type Poller struct {
	mu       sync.Mutex
	interval time.Duration
	out      chan time.Time
	stopCh   chan struct{}
	doneCh   chan struct{}
	started  bool
	stopped  bool
}

func NewPoller(interval time.Duration) *Poller {
	if interval <= 0 {
		interval = PollInterval
	}
	return &Poller{
		interval: interval,
		out:      make(chan time.Time, 1),
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

func (p *Poller) C() <-chan time.Time {
	return p.out
}

func (p *Poller) Start() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.started {
		return
	}
	p.started = true
	go p.loop()
}

func (p *Poller) Stop() {
	p.mu.Lock()
	if !p.started || p.stopped {
		p.mu.Unlock()
		return
	}
	p.stopped = true
	close(p.stopCh)
	p.mu.Unlock()
	<-p.doneCh
}

func (p *Poller) loop() {
	defer close(p.doneCh)
	defer close(p.out)

	p.emit(time.Now())
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()
	for {
		select {
		case now := <-ticker.C:
			p.emit(now)
		case <-p.stopCh:
			return
		}
	}
}

// emit never blocks: a poll instant the consumer has not drained yet is
// discarded in favor of the newer one.
func (p *Poller) emit(now time.Time) {
	for {
		select {
		case p.out <- now:
			return
		default:
		}
		select {
		case <-p.out:
		default:
		}
	}
}
