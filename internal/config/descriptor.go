package config

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument reports a missing window, descriptor, tag or value.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrUnsupportedScheme reports a descriptor tag other than "url" or "file".
	ErrUnsupportedScheme = errors.New("unsupported load scheme")
)

// Kind tags a content descriptor.
type Kind string

const (
	KindRemote Kind = "url"
	KindLocal  Kind = "file"
)

// Descriptor says what a window loads. Kind selects the payload meaning:
// a network address for KindRemote, a filesystem path for KindLocal.
type Descriptor struct {
	Kind  Kind   `mapstructure:"type"`
	Value string `mapstructure:"value"`
}

func URL(address string) Descriptor {
	return Descriptor{Kind: KindRemote, Value: address}
}

func File(path string) Descriptor {
	return Descriptor{Kind: KindLocal, Value: path}
}

// Address returns the remote address, or "" for a local descriptor.
func (d Descriptor) Address() string {
	if d.Kind != KindRemote {
		return ""
	}
	return d.Value
}

// Path returns the local path, or "" for a remote descriptor.
func (d Descriptor) Path() string {
	if d.Kind != KindLocal {
		return ""
	}
	return d.Value
}

func (d Descriptor) Validate() error {
	if d.Kind == "" || d.Value == "" {
		return fmt.Errorf("%w: descriptor needs both type and value (type=%q value=%q)",
			ErrInvalidArgument, d.Kind, d.Value)
	}
	switch d.Kind {
	case KindRemote, KindLocal:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedScheme, d.Kind)
	}
}

func (d Descriptor) String() string {
	return string(d.Kind) + ":" + d.Value
}
