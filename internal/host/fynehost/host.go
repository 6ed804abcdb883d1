// Package fynehost runs the window choreography on a Fyne application.
package fynehost

import (
	"errors"
	"runtime"
	"sync"
	"time"

	"splashkit/internal/config"
	"splashkit/internal/host"
	"splashkit/internal/logger"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
)

const component = "FyneHost"

var errNoDriver = errors.New("fyne driver not available")

// Host adapts a fyne.App to host.Host. Its bookkeeping is touched only on
// the Fyne main goroutine.
type Host struct {
	app    fyne.App
	logger logger.Logger

	started   bool
	ready     []func()
	allClosed []func()
	open      int

	goos string
	// keepAlive is a hidden window held open on darwin. The glfw driver
	// quits once its window list is empty, which would override the
	// stay-alive rule for that platform.
	keepAlive fyne.Window

	quitOnce sync.Once
}

var _ host.Host = (*Host)(nil)

func New(a fyne.App, log logger.Logger) *Host {
	if log == nil {
		log = logger.NopLogger{}
	}
	h := &Host{app: a, logger: log, goos: runtime.GOOS}
	a.Lifecycle().SetOnStarted(h.onStarted)
	return h
}

func (h *Host) onStarted() {
	if h.started {
		return
	}
	h.started = true
	h.logger.Debug(component, "application started", map[string]interface{}{
		"callbacks": len(h.ready),
	})
	fns := h.ready
	h.ready = nil
	for _, fn := range fns {
		fn()
	}
}

func (h *Host) OnReady(fn func()) {
	if h.started {
		fyne.Do(fn)
		return
	}
	h.ready = append(h.ready, fn)
}

func (h *Host) OnAllWindowsClosed(fn func()) {
	h.allClosed = append(h.allClosed, fn)
}

// NewWindow creates a Fyne window. Frameless windows use the desktop
// driver's splash window when available. Fyne has no window positioning,
// so X, Y and Movable are ignored, as are the rendering preferences.
func (h *Host) NewWindow(role host.Role, opts config.Options) (host.Window, error) {
	if h.app.Driver() == nil {
		return nil, errNoDriver
	}

	title := config.String(opts.Title, string(role))
	var fw fyne.Window
	if !config.Bool(opts.Frame, true) {
		if drv, ok := h.app.Driver().(desktop.Driver); ok {
			fw = drv.CreateSplashWindow()
			fw.SetTitle(title)
		}
	}
	if fw == nil {
		fw = h.app.NewWindow(title)
	}

	width, height := config.Int(opts.Width, 0), config.Int(opts.Height, 0)
	if width > 0 && height > 0 {
		fw.Resize(fyne.NewSize(float32(width), float32(height)))
	}
	fw.SetFixedSize(!config.Bool(opts.Resizable, true))
	if config.Bool(opts.Center, false) {
		fw.CenterOnScreen()
	}

	h.holdProcess()

	w := newWindow(h, role, fw)
	fw.SetOnClosed(w.onClosed)
	h.open++

	h.logger.Debug(component, "window created", map[string]interface{}{
		"role":   string(role),
		"title":  title,
		"width":  width,
		"height": height,
		"open":   h.open,
	})

	if config.Bool(opts.Show, false) {
		w.Show()
	}
	return w, nil
}

// holdProcess creates the darwin keep-alive window once. It is never shown
// and never counted as open.
func (h *Host) holdProcess() {
	if h.goos != host.PlatformDarwin || h.keepAlive != nil {
		return
	}
	h.keepAlive = h.app.NewWindow("")
	h.logger.Debug(component, "keep-alive window created", nil)
}

func (h *Host) windowClosed(role host.Role) {
	h.open--
	h.logger.Debug(component, "window closed", map[string]interface{}{
		"role": string(role),
		"open": h.open,
	})
	if h.open > 0 {
		return
	}
	for _, fn := range h.allClosed {
		fn()
	}
}

func (h *Host) AfterFunc(d time.Duration, fn func()) {
	time.AfterFunc(d, func() {
		fyne.Do(fn)
	})
}

func (h *Host) Platform() string {
	return h.goos
}

func (h *Host) Quit() {
	h.quitOnce.Do(func() {
		h.logger.Info(component, "quitting application", nil)
		h.app.Quit()
	})
}
