package iostreams

import "github.com/mgutz/ansi"

var (
	red    = ansi.ColorFunc("red")
	green  = ansi.ColorFunc("green")
	gray   = ansi.ColorFunc("black+h")
	bold   = ansi.ColorFunc("default+b")
	yellow = ansi.ColorFunc("yellow")
)

func NewColorScheme(enabled bool) *ColorScheme {
	return &ColorScheme{enabled: enabled}
}

type ColorScheme struct {
	enabled bool
}

func (c *ColorScheme) Bold(t string) string {
	if !c.enabled {
		return t
	}
	return bold(t)
}

func (c *ColorScheme) Red(t string) string {
	if !c.enabled {
		return t
	}
	return red(t)
}

func (c *ColorScheme) Green(t string) string {
	if !c.enabled {
		return t
	}
	return green(t)
}

func (c *ColorScheme) Gray(t string) string {
	if !c.enabled {
		return t
	}
	return gray(t)
}

func (c *ColorScheme) Yellow(t string) string {
	if !c.enabled {
		return t
	}
	return yellow(t)
}

func (c *ColorScheme) SuccessIcon() string {
	return c.Green("✓")
}

func (c *ColorScheme) FailureIcon() string {
	return c.Red("X")
}

func (c *ColorScheme) WarningIcon() string {
	return c.Yellow("!")
}
