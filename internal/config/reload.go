package config

import (
	"sync"
	"time"

	"github.com/dshills/quill/internal/config/watcher"
)

// Update carries the outcome of a reload: a validated Config, or the
// error that kept the previous one in place.
type Update struct {
	Config *Config
	Err    error
}

// Reloader reloads the configuration file whenever it changes on disk and
// delivers the result on a channel. Only the newest undelivered update is
// kept, so a slow consumer never blocks the watcher.
type Reloader struct {
	path    string
	opts    []LoadOption
	w       *watcher.Watcher
	mu      sync.Mutex
	updates chan Update
}

// NewReloader starts watching path. Rapid successive writes within
// debounce produce a single reload.
func NewReloader(path string, debounce time.Duration, opts ...LoadOption) (*Reloader, error) {
	w, err := watcher.New(watcher.WithDebounce(debounce))
	if err != nil {
		return nil, err
	}
	r := &Reloader{
		path:    path,
		opts:    opts,
		w:       w,
		updates: make(chan Update, 1),
	}
	w.OnChange(func(watcher.Event) { r.reload() })
	if err := w.Watch(path); err != nil {
		_ = w.Close()
		return nil, err
	}
	return r, nil
}

// Updates returns the channel reloads are delivered on.
func (r *Reloader) Updates() <-chan Update {
	return r.updates
}

// Close stops watching.
func (r *Reloader) Close() error {
	return r.w.Close()
}

func (r *Reloader) reload() {
	cfg, err := Load(r.path, r.opts...)
	r.publish(Update{Config: cfg, Err: err})
}

// publish replaces any undelivered update with u.
func (r *Reloader) publish(u Update) {
	r.mu.Lock()
	defer r.mu.Unlock()
	select {
	case <-r.updates:
	default:
	}
	r.updates <- u
}
