package main

import (
	"bytes"
	"fmt"
	"image/png"
	"log/slog"
	"os"
	"os/exec"
	"strings"
	"sync"
	"time"

	"github.com/kbinani/screenshot"
)

// capturer periodically saves screenshots of every display and the title of
// the active window. start and stop are called from the UI goroutine and the
// idle watcher, so the ticker state is mutex-guarded.
type capturer struct {
	store *store
	dir   string

	mu     sync.Mutex
	ticker *time.Ticker
	done   chan struct{}
}

func newCapturer(st *store, dir string) *capturer {
	return &capturer{store: st, dir: dir}
}

func (c *capturer) start(interval time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.ticker != nil {
		return
	}

	slog.Info("starting capture scheduler", "interval", interval)

	c.ticker = time.NewTicker(interval)
	c.done = make(chan struct{})

	go func() {
		ticker, done := c.ticker, c.done
		for {
			select {
			case <-ticker.C:
				if err := c.captureDisplays(); err != nil {
					slog.Error("screenshot capture failed", "error", err)
				}
				if err := c.recordActiveWindow(); err != nil {
					slog.Error("active window capture failed", "error", err)
				}
			case <-done:
				ticker.Stop()
				return
			}
		}
	}()
}

func (c *capturer) stop() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.ticker == nil {
		return
	}

	slog.Info("stopping capture scheduler")

	close(c.done)
	c.ticker = nil
	c.done = nil
}

func (c *capturer) captureDisplays() error {
	n := screenshot.NumActiveDisplays()

	for i := 0; i < n; i++ {
		bounds := screenshot.GetDisplayBounds(i)

		img, err := screenshot.CaptureRect(bounds)
		if err != nil {
			return fmt.Errorf("capture display %d: %w", i, err)
		}

		year, month, day := time.Now().Date()
		hour, minute, second := time.Now().Clock()

		// One directory per day, one file per capture and display.
		dir := fmt.Sprintf("%s/%d-%02d-%02d", c.dir, year, month, day)
		if err := os.MkdirAll(dir, os.ModePerm); err != nil {
			return err
		}

		filename := fmt.Sprintf("%s/%02d-%02d-%02d-%d.png", dir, hour, minute, second, i)
		file, err := os.Create(filename)
		if err != nil {
			return err
		}
		if err := png.Encode(file, img); err != nil {
			file.Close()
			return err
		}
		if err := file.Close(); err != nil {
			return err
		}
	}

	return nil
}

func (c *capturer) recordActiveWindow() error {
	cmd := exec.Command("xdotool", "getactivewindow", "getwindowname")
	var out bytes.Buffer
	cmd.Stdout = &out

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("xdotool: %w", err)
	}

	title := strings.TrimSpace(out.String())
	return c.store.SaveWindowTitle(title)
}
