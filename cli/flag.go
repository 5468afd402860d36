package cli

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/morikuni/failure/v2"
	"github.com/spf13/pflag"
)

const (
	colorAuto   = "auto"
	colorAlways = "always"
	colorNever  = "never"
)

type colorModeFlag struct {
	IsSet bool
	Value string
}

// String implements pflag.Value.
func (s *colorModeFlag) String() string {
	if s.Value == "" {
		return colorAuto
	}
	return s.Value
}

func (s *colorModeFlag) Set(value string) error {
	switch value {
	case colorAuto, colorAlways, colorNever:
	default:
		return failure.New(InvalidColorMode,
			failure.Message("must be one of auto, always, never"),
			failure.Context{"value": value},
		)
	}
	s.Value = value
	s.IsSet = true
	return nil
}

func (s *colorModeFlag) Type() string {
	return "when"
}

// enabled reports whether matches written to w should be highlighted
func (s *colorModeFlag) enabled(w io.Writer) bool {
	switch s.String() {
	case colorAlways:
		return true
	case colorNever:
		return false
	}
	return isTerminal(w)
}

var _ pflag.Value = &colorModeFlag{}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
