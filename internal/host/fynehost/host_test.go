package fynehost

import (
	"testing"

	"splashkit/internal/config"
	"splashkit/internal/host"

	"fyne.io/fyne/v2/test"
)

func TestReadyRunsOnce(t *testing.T) {
	h := New(test.NewTempApp(t), nil)

	var calls []string
	h.OnReady(func() { calls = append(calls, "first") })
	h.OnReady(func() { calls = append(calls, "second") })

	h.onStarted()
	h.onStarted()

	if len(calls) != 2 || calls[0] != "first" || calls[1] != "second" {
		t.Errorf("unexpected ready calls: %v", calls)
	}
}

func TestAllWindowsClosed(t *testing.T) {
	h := New(test.NewTempApp(t), nil)

	var fired int
	h.OnAllWindowsClosed(func() { fired++ })

	main, err := h.NewWindow(host.RoleMain, config.MainDefaults())
	if err != nil {
		t.Fatalf("unexpected error creating main window: %v", err)
	}
	splash, err := h.NewWindow(host.RoleSplash, config.SplashDefaults())
	if err != nil {
		t.Fatalf("unexpected error creating splash window: %v", err)
	}

	splash.Destroy()
	splash.Destroy()
	if fired != 0 {
		t.Fatalf("all-closed fired with main still open")
	}
	if h.open != 1 {
		t.Errorf("unexpected open count: got:%d want:1", h.open)
	}

	main.Close()
	if fired != 1 {
		t.Errorf("unexpected all-closed count: got:%d want:1", fired)
	}
	if h.open != 0 {
		t.Errorf("unexpected open count: got:%d want:0", h.open)
	}
}

func TestFinishAfterClose(t *testing.T) {
	h := New(test.NewTempApp(t), nil)
	w, err := h.NewWindow(host.RoleSplash, config.SplashDefaults())
	if err != nil {
		t.Fatal(err)
	}
	fw := w.(*window)

	var loaded bool
	fw.OnceContentLoaded(func() { loaded = true })
	fw.Close()

	var got error
	fw.finish(resource{name: "splash.md", data: []byte("# hi")}, nil, func(err error) { got = err })
	if got == nil {
		t.Error("expected error for load finishing on a closed window")
	}
	if loaded {
		t.Error("content-loaded fired on a closed window")
	}
}

func TestFinishFiresSignalsOnce(t *testing.T) {
	h := New(test.NewTempApp(t), nil)
	w, err := h.NewWindow(host.RoleMain, config.MainDefaults())
	if err != nil {
		t.Fatal(err)
	}
	fw := w.(*window)

	var order []string
	fw.OnceReadyToShow(func() { order = append(order, "ready") })
	fw.OnceContentLoaded(func() { order = append(order, "loaded") })

	done := func(error) { order = append(order, "done") }
	fw.finish(resource{name: "index.md", data: []byte("# Main")}, nil, done)
	fw.finish(resource{name: "index.md", data: []byte("# Main")}, nil, done)

	want := []string{"done", "loaded", "ready", "done"}
	if len(order) != len(want) {
		t.Fatalf("unexpected signal order: got:%v want:%v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("unexpected signal order: got:%v want:%v", order, want)
		}
	}
}

func TestKeepAliveWindow(t *testing.T) {
	tests := []struct {
		goos      string
		keepAlive bool
	}{
		{goos: host.PlatformDarwin, keepAlive: true},
		{goos: "linux", keepAlive: false},
		{goos: "windows", keepAlive: false},
	}
	for _, tc := range tests {
		t.Run(tc.goos, func(t *testing.T) {
			h := New(test.NewTempApp(t), nil)
			h.goos = tc.goos

			var fired int
			h.OnAllWindowsClosed(func() { fired++ })

			main, err := h.NewWindow(host.RoleMain, config.MainDefaults())
			if err != nil {
				t.Fatal(err)
			}
			splash, err := h.NewWindow(host.RoleSplash, config.SplashDefaults())
			if err != nil {
				t.Fatal(err)
			}
			held := h.keepAlive

			splash.Destroy()
			main.Close()

			if got := held != nil; got != tc.keepAlive {
				t.Errorf("unexpected keep-alive window: got:%t want:%t", got, tc.keepAlive)
			}
			if h.keepAlive != held {
				t.Error("keep-alive window replaced")
			}
			if h.open != 0 {
				t.Errorf("keep-alive window counted as open: %d", h.open)
			}
			if fired != 1 {
				t.Errorf("unexpected all-closed count: got:%d want:1", fired)
			}
			if h.Platform() != tc.goos {
				t.Errorf("unexpected platform: got:%q want:%q", h.Platform(), tc.goos)
			}
		})
	}
}
