// Package host defines the window-management surface the coordinator drives.
//
// Implementations deliver every callback on a single event loop. Callbacks
// must not be invoked synchronously from inside the method that registers
// them.
package host

import (
	"time"

	"splashkit/internal/config"
)

// Role names a window in logs and in host bookkeeping.
type Role string

const (
	RoleMain   Role = "main"
	RoleSplash Role = "splash"
)

// PlatformDarwin keeps the process alive when its last window closes.
const PlatformDarwin = "darwin"

// Host is the windowing runtime.
type Host interface {
	// OnReady registers fn to run once when the runtime is ready to create
	// windows.
	OnReady(fn func())
	// OnAllWindowsClosed registers fn to run each time the open window
	// count drops to zero.
	OnAllWindowsClosed(fn func())
	// NewWindow creates a window from fully merged options. The window
	// stays hidden unless opts.Show is set.
	NewWindow(role Role, opts config.Options) (Window, error)
	// AfterFunc runs fn on the event loop after d.
	AfterFunc(d time.Duration, fn func())
	Platform() string
	Quit()
}

// Window is a host-managed window.
type Window interface {
	RemoveMenu()
	// LoadURL starts fetching address. done is called on the event loop
	// with the outcome.
	LoadURL(address string, done func(error))
	// LoadFile starts loading a file:// reference.
	LoadFile(ref string, done func(error))
	// OnceContentLoaded registers a one-shot content-finished-loading
	// listener.
	OnceContentLoaded(fn func())
	// OnceReadyToShow registers a one-shot listener for the first render
	// after content has loaded. The Fyne host fires it right after the
	// content-loaded listeners, once the content is set on the window.
	OnceReadyToShow(fn func())
	Show()
	Close()
	Destroy()
}
