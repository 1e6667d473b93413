// Package config holds the shell's user tweakable settings, the prompt
// style and the colour palette. Settings come from the environment with an
// optional dotenv file in the user's home directory layered in first, so a
// session started from a bare login still picks them up.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/SirTony/lumi/kernel"
	"github.com/fatih/color"
	"github.com/joho/godotenv"
)

// File is the dotenv file lumi loads from the user's home directory.
const File = ".lumi.env"

// PromptStyle selects how the REPL prompt is drawn.
type PromptStyle int

const (
	// Lumi is the default "$ user@dir>" prompt.
	Lumi PromptStyle = iota

	// Linux mimics a classic "user@host:dir$" prompt.
	Linux

	// Windows mimics a bare "dir>" prompt.
	Windows
)

// ParsePromptStyle maps a LUMI_PROMPT or --prompt value onto a style, the
// empty string selects the default.
func ParsePromptStyle(s string) (PromptStyle, bool) {
	switch strings.ToLower(s) {
	case "", "lumi":
		return Lumi, true
	case "linux":
		return Linux, true
	case "windows":
		return Windows, true
	default:
		return Lumi, false
	}
}

// Palette maps the shell's message classes onto colour styles.
type Palette struct {
	Notice  *color.Color
	Warning *color.Color
	Error   *color.Color
	Dir     *color.Color
	User    *color.Color
	Machine *color.Color
}

// DefaultPalette returns the stock styles.
func DefaultPalette() Palette {
	return Palette{
		Notice:  color.New(color.FgCyan),
		Warning: color.New(color.FgYellow),
		Error:   color.New(color.FgRed),
		Dir:     color.New(color.FgCyan, color.Faint),
		User:    color.New(color.FgGreen),
		Machine: color.New(color.FgYellow, color.Faint),
	}
}

// Config is the shell's resolved configuration.
type Config struct {
	Colors        Palette
	Prompt        PromptStyle
	ColorsEnabled bool
}

// Load resolves the configuration. The dotenv file is loaded into the
// process environment before anything is read from it, which also makes
// any ordinary variables it defines visible to $VAR segments.
func Load() Config {
	if home, err := os.UserHomeDir(); err == nil {
		// The file is optional, a failed load just means defaults
		_ = godotenv.Load(filepath.Join(home, File))
	}

	cfg := Config{
		Colors:        DefaultPalette(),
		ColorsEnabled: kernel.GetColorSupport() != kernel.None,
	}

	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		cfg.ColorsEnabled = false
	}

	if style, ok := ParsePromptStyle(os.Getenv("LUMI_PROMPT")); ok {
		cfg.Prompt = style
	}

	return cfg
}
