package main

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/knadh/koanf/providers/file"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

const watchDebounce = 100 * time.Millisecond

// watcher rebuilds when any followed file changes. Bursts of events within
// watchDebounce collapse into one rebuild, and rebuilds never overlap.
type watcher struct {
	rebuild func() []string

	mu      sync.Mutex
	timer   *time.Timer
	files   map[string]*file.File
	stopped bool

	buildMu sync.Mutex
}

func newWatcher(rebuild func() []string) *watcher {
	return &watcher{rebuild: rebuild, files: make(map[string]*file.File)}
}

// trigger schedules a rebuild, restarting the debounce window.
func (w *watcher) trigger() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.stopped {
		return
	}
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(watchDebounce, w.run)
}

func (w *watcher) run() {
	w.buildMu.Lock()
	defer w.buildMu.Unlock()

	w.follow(w.rebuild())
}

// follow watches exactly paths, starting new watches and dropping ones
// no longer needed. Missing files are skipped until a later rebuild.
func (w *watcher) follow(paths []string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.stopped {
		return
	}

	want := make(map[string]bool, len(paths))
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			continue
		}
		want[abs] = true
	}

	for path, f := range w.files {
		if !want[path] {
			_ = f.Unwatch()
			delete(w.files, path)
		}
	}

	for path := range want {
		if _, ok := w.files[path]; ok {
			continue
		}
		if _, err := os.Stat(path); err != nil {
			continue
		}

		f := file.Provider(path)
		watched := path
		err := f.Watch(func(_ interface{}, err error) {
			if err != nil {
				// The watch goroutine has exited; forget it so the next
				// rebuild starts a fresh one.
				log.Debug().Err(err).Str("file", watched).Msg("watch ended")
				w.forget(watched, f)
			}
			w.trigger()
		})
		if err != nil {
			log.Warn().Err(err).Str("file", path).Msg("cannot watch file")
			continue
		}
		w.files[path] = f
	}
}

func (w *watcher) forget(path string, f *file.File) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.files[path] == f {
		delete(w.files, path)
	}
}

// watched returns the number of files currently followed.
func (w *watcher) watched() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.files)
}

func (w *watcher) stop() {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.stopped = true
	if w.timer != nil {
		w.timer.Stop()
	}
	for path, f := range w.files {
		_ = f.Unwatch()
		delete(w.files, path)
	}
}

// runWatch builds once and then rebuilds on every change to the config file
// or a token file until the command context is cancelled. Build errors are
// reported and the loop keeps running.
func runWatch(cmd *cobra.Command) error {
	ctx := commandContext(cmd)
	configPath := configFilePath(cmd)

	rebuild := func() []string {
		if err := reloadConfig(cmd, ctx); err != nil {
			printError(cmd, err)
			return []string{configPath}
		}
		paths, err := buildOnce(cmd)
		if err != nil {
			printError(cmd, err)
		}
		return append([]string{configPath}, paths...)
	}

	w := newWatcher(rebuild)
	defer w.stop()

	w.run()
	log.Info().Int("files", w.watched()).Msg("watching for changes, press Ctrl+C to stop")

	<-ctx.Done()
	if ctx.Err() == context.Canceled {
		log.Info().Msg("stopped watching")
	}
	return nil
}
