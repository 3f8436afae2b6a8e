package main

import (
	"errors"
	"log/slog"
	"os"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	numentry "go-numentry"
)

const (
	prefCaptureInterval = "captureInterval"
	prefIdleThreshold   = "idleThreshold"
)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	demoApp := app.NewWithID("com.github.numentry.capturedemo")
	window := demoApp.NewWindow("Capture Demo")
	window.Resize(fyne.NewSize(300, 300))
	window.SetFixedSize(true)

	prefs := demoApp.Preferences()
	status := widget.NewLabel("")

	intervalField := numentry.NewField(
		prefs.FloatWithFallback(prefCaptureInterval, 60),
		numentry.NewRange(1, 3600),
		numentry.Integer(),
		numentry.WithUnit("s"),
		numentry.WithValidity(func(valid bool) {
			if valid {
				status.SetText("")
			} else {
				status.SetText("capture interval is not a number")
			}
		}),
		numentry.WithOnRejected(func() {
			slog.Warn("capture interval rejected, last valid value restored")
		}),
	)

	thresholdField := numentry.NewField(
		prefs.FloatWithFallback(prefIdleThreshold, 300),
		numentry.NewRange(10, 7200),
		numentry.Integer(),
		numentry.WithUnit("s"),
		numentry.WithValidity(func(valid bool) {
			if valid {
				status.SetText("")
			} else {
				status.SetText("idle threshold is not a number")
			}
		}),
		numentry.WithOnRejected(func() {
			slog.Warn("idle threshold rejected, last valid value restored")
		}),
	)

	var (
		st        *store
		capt      *capturer
		idle      *idleWatcher
		sessionID int64
		started   bool
	)

	var toggle *widget.Button
	toggle = widget.NewButton("Start", func() {
		if started {
			started = false

			toggle.SetText("Start")
			intervalField.Enable()
			thresholdField.Enable()

			if err := st.EndSession(sessionID); err != nil {
				slog.Error("ending session failed", "error", err)
			}
			capt.stop()
			idle.stop()
			return
		}

		interval := time.Duration(intervalField.Value()) * time.Second
		threshold := time.Duration(thresholdField.Value()) * time.Second

		if threshold < interval {
			errDialog := dialog.NewError(errors.New("idle threshold cannot be lower than capture interval"), window)
			errDialog.Resize(fyne.NewSize(280, 100))
			errDialog.Show()
			return
		}

		if st == nil {
			var err error
			st, err = openStore("./capture-demo.db")
			if err != nil {
				dialog.ShowError(err, window)
				return
			}
			capt = newCapturer(st, "screenshots")
			idle = newIdleWatcher(st, capt)
		}

		id, err := st.StartSession()
		if err != nil {
			dialog.ShowError(err, window)
			return
		}
		sessionID = id
		started = true

		toggle.SetText("Stop")
		intervalField.Disable()
		thresholdField.Disable()

		prefs.SetFloat(prefCaptureInterval, intervalField.Value())
		prefs.SetFloat(prefIdleThreshold, thresholdField.Value())

		capt.start(interval)
		idle.start(threshold, interval)
	})

	content := container.New(
		layout.NewPaddedLayout(),
		container.NewVBox(
			container.NewVBox(widget.NewLabel("Capture interval"), intervalField),
			layout.NewSpacer(),
			container.NewVBox(widget.NewLabel("Idle threshold"), thresholdField),
			status,
			container.New(layout.NewPaddedLayout(), toggle),
		),
	)

	window.SetContent(content)
	window.CenterOnScreen()
	window.ShowAndRun()
}
