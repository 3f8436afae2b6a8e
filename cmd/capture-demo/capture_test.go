package main

import (
	"sync"
	"testing"
	"time"
)

func TestCapturerConcurrentStartStop(t *testing.T) {
	c := newCapturer(nil, t.TempDir())
	c.start(time.Hour)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.stop()
			c.start(time.Hour)
			c.stop()
		}()
	}
	wg.Wait()

	// A fresh cycle still works after the concurrent teardown.
	c.start(time.Hour)
	c.stop()
}
