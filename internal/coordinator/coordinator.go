// Package coordinator sequences the splash and main windows through
// startup and shutdown.
//
// All methods except construction must be called on the host event loop.
package coordinator

import (
	"errors"
	"fmt"

	"splashkit/internal/config"
	"splashkit/internal/host"
	"splashkit/internal/loader"
	"splashkit/internal/logger"
)

const component = "Coordinator"

// ErrAlreadyBuilt is returned when a window is built a second time.
var ErrAlreadyBuilt = errors.New("window already built")

type window struct {
	role   host.Role
	handle host.Window
	state  State
}

// Coordinator owns the splash and main windows.
type Coordinator struct {
	cfg            config.Config
	mainDefaults   config.Options
	splashDefaults config.Options

	host   host.Host
	loader *loader.Loader
	logger logger.Logger

	main   window
	splash window

	started      bool
	splashLoaded bool
	mainReady    bool
	splashFailed bool
	transitioned bool
	stopped      bool
}

// Option configures a Coordinator.
type Option func(*Coordinator)

// WithDefaults replaces the built-in default options the caller's window
// options are merged onto.
func WithDefaults(main, splash config.Options) Option {
	return func(c *Coordinator) {
		c.mainDefaults = main
		c.splashDefaults = splash
	}
}

// New validates cfg and returns a coordinator holding it. cfg is never
// modified.
func New(cfg config.Config, h host.Host, ld *loader.Loader, log logger.Logger, opts ...Option) (*Coordinator, error) {
	if h == nil || ld == nil {
		return nil, fmt.Errorf("%w: coordinator needs a host and a loader", config.ErrInvalidArgument)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Transition == "" {
		cfg.Transition = config.DefaultTransition
	}
	if log == nil {
		log = logger.NopLogger{}
	}

	c := &Coordinator{
		cfg:            cfg,
		mainDefaults:   config.MainDefaults(),
		splashDefaults: config.SplashDefaults(),
		host:           h,
		loader:         ld,
		logger:         log,
		main:           window{role: host.RoleMain},
		splash:         window{role: host.RoleSplash},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Run registers the startup sequence with the host. When the host is
// ready the main window is built, then the splash window.
func (c *Coordinator) Run() {
	if c.started {
		return
	}
	c.started = true

	c.host.OnReady(c.buildWindows)
	c.host.OnAllWindowsClosed(func() {
		if c.host.Platform() == host.PlatformDarwin {
			c.logger.Debug(component, "all windows closed, staying alive", nil)
			return
		}
		c.logger.Info(component, "all windows closed, quitting", nil)
		c.host.Quit()
	})

	c.logger.Info(component, "waiting for host readiness", map[string]interface{}{
		"transition": string(c.cfg.Transition),
	})
}

func (c *Coordinator) buildWindows() {
	if c.stopped {
		return
	}
	if err := c.BuildMainWindow(); err != nil {
		c.logger.Error(component, err, map[string]interface{}{"role": string(host.RoleMain)})
		// Nothing to wait for.
		c.mainReady = true
	}
	if err := c.BuildSplashWindow(); err != nil {
		c.logger.Error(component, err, map[string]interface{}{"role": string(host.RoleSplash)})
		c.skipSplash()
	}
}

// BuildMainWindow creates the main window and starts loading its content.
func (c *Coordinator) BuildMainWindow() error {
	w, err := c.create(&c.main, c.mainDefaults, c.cfg.MainWindow.Options)
	if err != nil {
		return err
	}
	if c.cfg.Transition == config.TransitionHandshake {
		w.OnceReadyToShow(c.onMainReady)
	}
	return c.load(&c.main, c.cfg.MainWindow.ToLoad)
}

// BuildSplashWindow creates the splash window and starts loading its
// content.
func (c *Coordinator) BuildSplashWindow() error {
	w, err := c.create(&c.splash, c.splashDefaults, c.cfg.SplashWindow.Options)
	if err != nil {
		return err
	}
	w.OnceContentLoaded(c.onSplashLoaded)
	return c.load(&c.splash, c.cfg.SplashWindow.ToLoad)
}

func (c *Coordinator) create(win *window, defaults, custom config.Options) (host.Window, error) {
	if win.handle != nil {
		return nil, fmt.Errorf("%s: %w", win.role, ErrAlreadyBuilt)
	}
	opts := config.Merge(defaults, custom)
	w, err := c.host.NewWindow(win.role, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s window: %w", win.role, err)
	}
	win.handle = w
	win.state = Created
	w.RemoveMenu()

	c.logger.Debug(component, "window created", map[string]interface{}{
		"role": string(win.role),
	})
	return w, nil
}

func (c *Coordinator) load(win *window, d config.Descriptor) error {
	if err := c.loader.Load(win.role, win.handle, &d); err != nil {
		return fmt.Errorf("failed to load %s window: %w", win.role, err)
	}
	win.state = ContentLoaded
	return nil
}

func (c *Coordinator) onSplashLoaded() {
	c.splashLoaded = true
	c.logger.Debug(component, "splash content loaded", nil)

	if c.cfg.Transition == config.TransitionDelay {
		c.host.AfterFunc(c.cfg.SettleDelay, c.transition)
		return
	}
	if c.mainReady {
		c.transition()
	}
}

func (c *Coordinator) onMainReady() {
	c.mainReady = true
	c.logger.Debug(component, "main window ready to show", nil)

	if c.splashFailed {
		c.showMain()
		return
	}
	if c.splashLoaded {
		c.transition()
	}
}

// transition shows both windows and destroys the splash.
func (c *Coordinator) transition() {
	if c.transitioned || c.stopped {
		return
	}
	c.transitioned = true

	if c.splash.handle != nil && c.splash.state != Destroyed {
		c.splash.handle.Show()
		c.splash.state = Visible
	}
	c.showMain()
	c.destroySplash()

	c.logger.Info(component, "startup sequence complete", map[string]interface{}{
		"main_state": c.main.state.String(),
	})
}

// skipSplash lets the main window appear without a splash screen.
func (c *Coordinator) skipSplash() {
	c.splashFailed = true
	c.destroySplash()
	if c.cfg.Transition == config.TransitionDelay || c.mainReady {
		c.showMain()
	}
}

func (c *Coordinator) showMain() {
	if c.stopped || c.main.handle == nil || c.main.state == Destroyed || c.main.state == Visible {
		return
	}
	c.main.handle.Show()
	c.main.state = Visible
}

func (c *Coordinator) destroySplash() {
	if c.splash.handle == nil || c.splash.state == Destroyed {
		return
	}
	c.splash.handle.Destroy()
	c.splash.state = Destroyed
}

// Stop closes whichever windows are still open and quits the host. Loads
// still in flight are abandoned with their windows.
func (c *Coordinator) Stop() {
	c.stopped = true
	c.close(&c.main)
	c.close(&c.splash)
	c.logger.Info(component, "quitting", nil)
	c.host.Quit()
}

func (c *Coordinator) close(win *window) {
	if win.handle == nil || win.state == Destroyed {
		return
	}
	win.handle.Close()
	win.state = Destroyed
}

func (c *Coordinator) MainState() State {
	return c.main.state
}

func (c *Coordinator) SplashState() State {
	return c.splash.state
}

// Config returns the configuration the coordinator was built with.
func (c *Coordinator) Config() config.Config {
	return c.cfg
}
