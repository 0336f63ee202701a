// Package notify keeps transient user notices. Every notice removes itself a
// fixed delay after it was shown.
package notify

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/lodastack/log"
)

type Severity string

const (
	Info    Severity = "info"
	Success Severity = "success"
	Warning Severity = "warning"
	Error   Severity = "error"
)

type Notice struct {
	ID       string    `json:"id"`
	Message  string    `json:"message"`
	Severity Severity  `json:"severity"`
	At       time.Time `json:"at"`
}

type Notifier struct {
	mu      sync.Mutex
	delay   time.Duration
	notices []Notice
	timers  map[string]*time.Timer
	out     io.Writer
	closed  bool
}

func New(delay time.Duration) *Notifier {
	return &Notifier{
		delay:  delay,
		timers: make(map[string]*time.Timer),
	}
}

// SetOutput prints every new notice to w.
func (n *Notifier) SetOutput(w io.Writer) {
	n.mu.Lock()
	n.out = w
	n.mu.Unlock()
}

// Notify shows msg and schedules its removal. Notices stack, nothing is
// de-duplicated.
func (n *Notifier) Notify(msg string, sev Severity) Notice {
	notice := Notice{
		ID:       uuid.NewString(),
		Message:  msg,
		Severity: sev,
		At:       time.Now(),
	}

	if sev == Error {
		log.Errorf("notice: %s", msg)
	} else {
		log.Infof("notice [%s]: %s", sev, msg)
	}

	n.mu.Lock()
	defer n.mu.Unlock()
	if n.closed {
		return notice
	}
	n.notices = append(n.notices, notice)
	n.timers[notice.ID] = time.AfterFunc(n.delay, func() {
		n.remove(notice.ID)
	})
	if n.out != nil {
		fmt.Fprintf(n.out, "[%s] %s\n", sev, msg)
	}
	return notice
}

// Active returns the notices currently shown, oldest first.
func (n *Notifier) Active() []Notice {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]Notice(nil), n.notices...)
}

// Close drops all notices and stops pending removals.
func (n *Notifier) Close() {
	n.mu.Lock()
	defer n.mu.Unlock()
	for id, t := range n.timers {
		t.Stop()
		delete(n.timers, id)
	}
	n.notices = nil
	n.closed = true
}

func (n *Notifier) remove(id string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	delete(n.timers, id)
	for i, notice := range n.notices {
		if notice.ID == id {
			n.notices = append(n.notices[:i], n.notices[i+1:]...)
			return
		}
	}
}
