package main

import (
	"bytes"
	"fmt"
	"log/slog"
	"os/exec"
	"strconv"
	"strings"
	"time"
)

// idleWatcher pauses the capturer while the user is away from the keyboard
// and records the inactivity span.
type idleWatcher struct {
	store *store
	capt  *capturer

	ticker *time.Ticker
	done   chan struct{}
}

func newIdleWatcher(st *store, capt *capturer) *idleWatcher {
	return &idleWatcher{store: st, capt: capt}
}

func (w *idleWatcher) start(threshold, captureInterval time.Duration) {
	if w.ticker != nil {
		return
	}

	slog.Info("watching for inactivity", "threshold", threshold)

	w.ticker = time.NewTicker(1 * time.Second)
	w.done = make(chan struct{})

	go func() {
		ticker, done := w.ticker, w.done
		inactive := false
		inactivityID := int64(-1)

		for {
			select {
			case <-ticker.C:
				idle, err := idleTime()
				if err != nil {
					slog.Error("idle time lookup failed", "error", err)
					continue
				}
				switch {
				case idle >= threshold && !inactive:
					inactive = true
					slog.Info("user went inactive")
					if id, err := w.store.StartInactivity(); err != nil {
						slog.Error("recording inactivity start failed", "error", err)
					} else {
						inactivityID = id
					}
					w.capt.stop()
				case idle < threshold && inactive:
					inactive = false
					slog.Info("user is active again")
					if inactivityID != -1 {
						if err := w.store.EndInactivity(inactivityID); err != nil {
							slog.Error("recording inactivity end failed", "error", err)
						}
						inactivityID = -1
					}
					w.capt.start(captureInterval)
				}
			case <-done:
				ticker.Stop()
				return
			}
		}
	}()
}

func (w *idleWatcher) stop() {
	if w.ticker == nil {
		return
	}

	slog.Info("stopping inactivity watcher")

	close(w.done)
	w.ticker = nil
	w.done = nil
}

// idleTime reports how long the X session has been idle.
func idleTime() (time.Duration, error) {
	cmd := exec.Command("xprintidle")
	var out bytes.Buffer
	cmd.Stdout = &out

	if err := cmd.Run(); err != nil {
		return 0, fmt.Errorf("xprintidle: %w", err)
	}

	ms, err := strconv.Atoi(strings.TrimSpace(out.String()))
	if err != nil {
		return 0, fmt.Errorf("parse xprintidle output: %w", err)
	}

	return time.Duration(ms) * time.Millisecond, nil
}
