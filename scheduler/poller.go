package scheduler

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lodastack/log"
)

type State int

const (
	Idle State = iota
	Polling
)

func (s State) String() string {
	if s == Polling {
		return "POLLING"
	}
	return "IDLE"
}

// Poller runs a cycle at a fixed interval and on Trigger. Cycles run to
// completion, Stop only ends the schedule.
type Poller struct {
	name         string
	interval     time.Duration
	cycle        func(ctx context.Context)
	singleFlight bool

	mu     sync.Mutex
	done    chan struct{}
	exited  chan struct{}
	opened  bool
	stopped bool

	running int32
	cycles  sync.WaitGroup
}

func NewPoller(name string, interval time.Duration, cycle func(ctx context.Context)) *Poller {
	return &Poller{
		name:     name,
		interval: interval,
		cycle:    cycle,
	}
}

// SetSingleFlight drops ticks and triggers that arrive while a cycle is
// still polling. Off by default, overlapping cycles are allowed.
func (p *Poller) SetSingleFlight(on bool) {
	p.mu.Lock()
	p.singleFlight = on
	p.mu.Unlock()
}

// Start runs one cycle right away and then one per interval.
func (p *Poller) Start() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.opened {
		return
	}
	p.opened = true
	p.stopped = false
	p.done = make(chan struct{})
	p.exited = make(chan struct{})

	p.fire()
	go p.run(p.done, p.exited)
}

func (p *Poller) run(done, exited chan struct{}) {
	defer close(exited)
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			p.mu.Lock()
			// a tick that raced Stop must not poll for a torn down view
			if p.opened {
				p.fire()
			}
			p.mu.Unlock()
		case <-done:
			log.Infof("poller %s exit", p.name)
			return
		}
	}
}

// Stop releases the schedule and waits for the loop to exit. It does not
// cancel a cycle in flight.
func (p *Poller) Stop() {
	p.mu.Lock()
	if !p.opened {
		p.mu.Unlock()
		return
	}
	p.opened = false
	p.stopped = true
	close(p.done)
	exited := p.exited
	p.mu.Unlock()
	<-exited
}

// Trigger runs a cycle now through the same pipeline. It reports false when
// the cycle was dropped by the single-flight guard or the poller was stopped.
// A poller that was never started still runs triggered cycles.
func (p *Poller) Trigger() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.stopped {
		log.Infof("poller %s stopped, drop trigger", p.name)
		return false
	}
	return p.fire()
}

// Wait blocks until no cycle is running.
func (p *Poller) Wait() {
	p.cycles.Wait()
}

func (p *Poller) State() State {
	if atomic.LoadInt32(&p.running) > 0 {
		return Polling
	}
	return Idle
}

func (p *Poller) Running() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.opened
}

// thread unsafe
func (p *Poller) fire() bool {
	if p.singleFlight && atomic.LoadInt32(&p.running) > 0 {
		log.Infof("poller %s busy, drop cycle", p.name)
		return false
	}
	atomic.AddInt32(&p.running, 1)
	p.cycles.Add(1)
	go func() {
		defer p.cycles.Done()
		defer atomic.AddInt32(&p.running, -1)
		p.cycle(context.Background())
	}()
	return true
}
