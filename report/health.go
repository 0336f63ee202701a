package report

import (
	"net/http"
	"sync"
	"time"

	"github.com/lodastack/log"
)

// unit: second
// panel health probe timeout
const DefaultTimeout = 3

// HealthWorker probes the panel health endpoint on its own ticker.
type HealthWorker struct {
	url      string
	interval time.Duration
	reporter *Reporter
	client   *http.Client

	mu      sync.Mutex
	done    chan struct{}
	opened  bool
	stopped bool
}

func NewHealthWorker(url string, interval time.Duration, r *Reporter) *HealthWorker {
	return &HealthWorker{
		url:      url,
		interval: interval,
		reporter: r,
		client: &http.Client{
			Transport: &http.Transport{
				ResponseHeaderTimeout: DefaultTimeout * time.Second,
			},
			Timeout: DefaultTimeout * time.Second,
		},
		done: make(chan struct{}),
	}
}

// Run probes until Stop. A worker stopped before Run never probes.
func (w *HealthWorker) Run() {
	w.mu.Lock()
	if w.opened || w.stopped {
		w.mu.Unlock()
		return
	}
	w.opened = true
	w.mu.Unlock()

	probe := func() {
		fields := w.Probe()
		if !w.reporter.enable {
			return
		}
		if err := w.reporter.Send(HealthMetric, fields); err != nil {
			log.Errorf("report panel health failed: %s", err)
		}
	}

	probe()
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			go probe()
		case <-w.done:
			log.Infof("health worker %s exit", w.url)
			return
		}
	}
}

func (w *HealthWorker) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.stopped {
		return
	}
	w.stopped = true
	w.opened = false
	close(w.done)
}

// Probe checks the panel once: alive is 1 on a 2xx answer.
func (w *HealthWorker) Probe() map[string]float64 {
	fields := make(map[string]float64)
	fields["alive"] = 0
	defer log.Debugf("panel health [%s] : %v", w.url, fields)

	start := time.Now()
	resp, err := w.client.Get(w.url)
	if err != nil {
		log.Errorf("panel health probe failed: %s", err)
		return fields
	}
	resp.Body.Close()
	fields["responseTime"] = time.Since(start).Seconds()
	fields["responseCode"] = float64(resp.StatusCode)
	if resp.StatusCode/100 == 2 {
		fields["alive"] = 1
	}
	return fields
}
