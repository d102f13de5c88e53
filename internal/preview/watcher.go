package preview

import (
	"os"
	"sync"
	"time"
)

// Watcher polls a set of files and reports modification-time changes.
type Watcher struct {
	paths    []string
	interval time.Duration
	onChange func(path string)

	mu         sync.Mutex
	running    bool
	stopCh     chan struct{}
	timestamps map[string]time.Time
}

// NewWatcher creates a watcher for the given paths.
func NewWatcher(paths []string, interval time.Duration, onChange func(path string)) *Watcher {
	if interval == 0 {
		interval = 500 * time.Millisecond
	}
	return &Watcher{
		paths:      paths,
		interval:   interval,
		onChange:   onChange,
		timestamps: make(map[string]time.Time),
	}
}

// Start begins polling in a background goroutine.
func (w *Watcher) Start() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.running || len(w.paths) == 0 {
		return
	}
	w.running = true
	w.stopCh = make(chan struct{})

	// Seed timestamps so startup does not fire a change.
	for _, path := range w.paths {
		if info, err := os.Stat(path); err == nil {
			w.timestamps[path] = info.ModTime()
		}
	}

	go w.loop(w.stopCh)
}

// Stop halts polling.
func (w *Watcher) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.running {
		return
	}
	w.running = false
	close(w.stopCh)
}

func (w *Watcher) loop(stop chan struct{}) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			w.scan()
		}
	}
}

func (w *Watcher) scan() {
	for _, path := range w.paths {
		info, err := os.Stat(path)
		if err != nil {
			continue
		}
		w.mu.Lock()
		last, seen := w.timestamps[path]
		modified := !seen || info.ModTime().After(last)
		if modified {
			w.timestamps[path] = info.ModTime()
		}
		w.mu.Unlock()
		if modified && seen && w.onChange != nil {
			w.onChange(path)
		}
	}
}
