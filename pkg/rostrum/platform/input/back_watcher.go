// Package input wires hardware input devices into navigation. On handheld
// devices the physical back button is the primary way users leave a page,
// so the watcher translates its key events into back navigation.
package input

import (
	"context"
	"log/slog"
	"time"

	"github.com/holoplot/go-evdev"

	"github.com/rostrum-ui/rostrum/pkg/rostrum/constants"
	"github.com/rostrum-ui/rostrum/pkg/rostrum/internal"
)

// BackWatcher watches an evdev input device and invokes a callback on each
// press of the configured key. The callback runs on the watcher goroutine;
// the embedding application is responsible for handing it off to whatever
// serializes navigation.
type BackWatcher struct {
	dev     *evdev.InputDevice
	keyCode evdev.EvCode
	onBack  func()
	delay   time.Duration
	logger  *slog.Logger

	lastPress time.Time
}

// NewBackWatcher opens the input device at devicePath and prepares to watch
// for keyCode presses.
func NewBackWatcher(devicePath string, keyCode evdev.EvCode, onBack func()) (*BackWatcher, error) {
	dev, err := evdev.Open(devicePath)
	if err != nil {
		return nil, err
	}

	return &BackWatcher{
		dev:     dev,
		keyCode: keyCode,
		onBack:  onBack,
		delay:   constants.DefaultInputDelay,
		logger:  internal.GetInternalLogger(),
	}, nil
}

// Watch blocks reading device events until ctx is cancelled or the device
// read fails. Key releases and repeats are ignored; presses within the
// debounce window of the previous one are dropped.
func (w *BackWatcher) Watch(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		event, err := w.dev.ReadOne()
		if err != nil {
			w.logger.Error("input device read failed", "error", err)
			return err
		}

		if event.Type != evdev.EV_KEY || event.Code != w.keyCode {
			continue
		}
		if event.Value != 1 { // 0 = release, 2 = autorepeat
			continue
		}

		now := time.Now()
		if now.Sub(w.lastPress) < w.delay {
			continue
		}
		w.lastPress = now

		w.onBack()
	}
}

// Close releases the input device.
func (w *BackWatcher) Close() error {
	return w.dev.Close()
}
