package config

// Options holds window presentation settings. Nil fields are unset and fall
// through to whatever they are merged onto.
type Options struct {
	Title     *string `mapstructure:"title"`
	Width     *int    `mapstructure:"width"`
	Height    *int    `mapstructure:"height"`
	X         *int    `mapstructure:"x"`
	Y         *int    `mapstructure:"y"`
	Frame     *bool   `mapstructure:"frame"`
	Show      *bool   `mapstructure:"show"`
	Center    *bool   `mapstructure:"center"`
	Resizable *bool   `mapstructure:"resizable"`
	Movable   *bool   `mapstructure:"movable"`

	Preferences Preferences `mapstructure:"preferences"`
}

// Preferences is the nested block merged field by field.
type Preferences struct {
	ContextIsolation *bool   `mapstructure:"context_isolation"`
	NodeIntegration  *bool   `mapstructure:"node_integration"`
	DevTools         *bool   `mapstructure:"dev_tools"`
	Preload          *string `mapstructure:"preload"`

	// Extra carries keys the typed fields don't know about.
	Extra map[string]any `mapstructure:",remain"`
}

// Ptr returns a pointer to v, for filling Options literals.
func Ptr[T any](v T) *T {
	return &v
}

// MainDefaults are applied to the main window beneath caller options.
func MainDefaults() Options {
	return Options{
		Frame:  Ptr(false),
		Show:   Ptr(false),
		Center: Ptr(true),
	}
}

// SplashDefaults are applied to the splash window beneath caller options.
func SplashDefaults() Options {
	return Options{
		Width:     Ptr(640),
		Height:    Ptr(320),
		Frame:     Ptr(false),
		Resizable: Ptr(false),
		Movable:   Ptr(false),
		Center:    Ptr(true),
		Show:      Ptr(false),
		Preferences: Preferences{
			ContextIsolation: Ptr(false),
		},
	}
}

// Merge lays override on top of base. Set top-level fields in override
// replace those in base; Preferences are merged per field. Neither input is
// modified.
func Merge(base, override Options) Options {
	out := base
	out.Title = pick(base.Title, override.Title)
	out.Width = pick(base.Width, override.Width)
	out.Height = pick(base.Height, override.Height)
	out.X = pick(base.X, override.X)
	out.Y = pick(base.Y, override.Y)
	out.Frame = pick(base.Frame, override.Frame)
	out.Show = pick(base.Show, override.Show)
	out.Center = pick(base.Center, override.Center)
	out.Resizable = pick(base.Resizable, override.Resizable)
	out.Movable = pick(base.Movable, override.Movable)
	out.Preferences = mergePreferences(base.Preferences, override.Preferences)
	return out
}

func mergePreferences(base, override Preferences) Preferences {
	return Preferences{
		ContextIsolation: pick(base.ContextIsolation, override.ContextIsolation),
		NodeIntegration:  pick(base.NodeIntegration, override.NodeIntegration),
		DevTools:         pick(base.DevTools, override.DevTools),
		Preload:          pick(base.Preload, override.Preload),
		Extra:            mergeExtra(base.Extra, override.Extra),
	}
}

func mergeExtra(base, override map[string]any) map[string]any {
	if base == nil && override == nil {
		return nil
	}
	out := make(map[string]any, len(base)+len(override))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range override {
		out[k] = v
	}
	return out
}

func pick[T any](base, override *T) *T {
	if override != nil {
		return override
	}
	return base
}

// Bool dereferences b, returning def when unset.
func Bool(b *bool, def bool) bool {
	if b == nil {
		return def
	}
	return *b
}

// Int dereferences i, returning def when unset.
func Int(i *int, def int) int {
	if i == nil {
		return def
	}
	return *i
}

// String dereferences s, returning def when unset.
func String(s *string, def string) string {
	if s == nil {
		return def
	}
	return *s
}
