package coordinator

import (
	"errors"
	"fmt"
	"time"

	"splashkit/internal/config"
	"splashkit/internal/host"
)

// fakeHost records every call in order and lets tests fire host signals
// by hand.
type fakeHost struct {
	platform string
	events   []string
	windows  map[host.Role]*fakeWindow
	newErr   map[host.Role]error

	ready     []func()
	allClosed []func()
	timers    []fakeTimer
	quits     int
}

type fakeTimer struct {
	d  time.Duration
	fn func()
}

func newFakeHost() *fakeHost {
	return &fakeHost{
		platform: "linux",
		windows:  make(map[host.Role]*fakeWindow),
		newErr:   make(map[host.Role]error),
	}
}

func (h *fakeHost) record(format string, args ...interface{}) {
	h.events = append(h.events, fmt.Sprintf(format, args...))
}

func (h *fakeHost) OnReady(fn func())            { h.ready = append(h.ready, fn) }
func (h *fakeHost) OnAllWindowsClosed(fn func()) { h.allClosed = append(h.allClosed, fn) }
func (h *fakeHost) Platform() string             { return h.platform }

func (h *fakeHost) NewWindow(role host.Role, opts config.Options) (host.Window, error) {
	if err := h.newErr[role]; err != nil {
		return nil, err
	}
	h.record("new:%s", role)
	w := &fakeWindow{host: h, role: role, opts: opts}
	h.windows[role] = w
	return w, nil
}

func (h *fakeHost) AfterFunc(d time.Duration, fn func()) {
	h.record("after:%s", d)
	h.timers = append(h.timers, fakeTimer{d: d, fn: fn})
}

func (h *fakeHost) Quit() {
	h.record("quit")
	h.quits++
}

func (h *fakeHost) fireReady() {
	fns := h.ready
	h.ready = nil
	for _, fn := range fns {
		fn()
	}
}

func (h *fakeHost) fireAllClosed() {
	for _, fn := range h.allClosed {
		fn()
	}
}

func (h *fakeHost) fireTimers() {
	timers := h.timers
	h.timers = nil
	for _, t := range timers {
		t.fn()
	}
}

type fakeWindow struct {
	host *fakeHost
	role host.Role
	opts config.Options

	menuRemoved bool
	loads       []string
	loadDone    func(error)

	contentLoaded func()
	readyToShow   func()

	shows, closes, destroys int
}

func (w *fakeWindow) RemoveMenu() {
	w.menuRemoved = true
	w.host.record("remove-menu:%s", w.role)
}

func (w *fakeWindow) LoadURL(address string, done func(error)) {
	w.loads = append(w.loads, address)
	w.loadDone = done
	w.host.record("load-url:%s:%s", w.role, address)
}

func (w *fakeWindow) LoadFile(ref string, done func(error)) {
	w.loads = append(w.loads, ref)
	w.loadDone = done
	w.host.record("load-file:%s:%s", w.role, ref)
}

func (w *fakeWindow) OnceContentLoaded(fn func()) { w.contentLoaded = fn }
func (w *fakeWindow) OnceReadyToShow(fn func())   { w.readyToShow = fn }

func (w *fakeWindow) Show() {
	w.shows++
	w.host.record("show:%s", w.role)
}

func (w *fakeWindow) Close() {
	w.closes++
	w.host.record("close:%s", w.role)
}

func (w *fakeWindow) Destroy() {
	w.destroys++
	w.host.record("destroy:%s", w.role)
}

// finishLoad simulates the host completing a load: done, then the
// content-loaded and ready-to-show signals.
func (w *fakeWindow) finishLoad(err error) {
	if w.loadDone != nil {
		w.loadDone(err)
	}
	if fn := w.contentLoaded; fn != nil {
		w.contentLoaded = nil
		fn()
	}
	if fn := w.readyToShow; fn != nil {
		w.readyToShow = nil
		fn()
	}
}

var errNoDisplay = errors.New("no display")
