// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core

import (
	"strconv"
	"strings"

	"github.com/gobuffalo/envy"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

// Environment keys read by LoadConfiguration
const (
	EnvDebug           = "VKBASE_DEBUG"
	EnvDebugSeverity   = "VKBASE_DEBUG_SEVERITY"
	EnvLayers          = "VKBASE_LAYERS"
	EnvAppName         = "VKBASE_APP_NAME"
	EnvWindowBackend   = "VKBASE_WINDOW_BACKEND"
	EnvWindowTitle     = "VKBASE_WINDOW_TITLE"
	EnvWindowWidth     = "VKBASE_WINDOW_WIDTH"
	EnvWindowHeight    = "VKBASE_WINDOW_HEIGHT"
	EnvWindowResizable = "VKBASE_WINDOW_RESIZABLE"
	EnvPollDelay       = "VKBASE_POLL_DELAY"
	EnvLogLevel        = "VKBASE_LOG_LEVEL"
	EnvLogFormat       = "VKBASE_LOG_FORMAT"
)

// Configuration defines a global application configuration setting
type Configuration struct {
	Application ApplicationInfo
	Instance    InstanceConfiguration
	Window      WindowConfiguration
	Time        TimeConfiguration
	Log         LogConfiguration
}

// InstanceConfiguration is used to configure instance creation
type InstanceConfiguration struct {
	// DebugMode enables validation layers, the debug extension
	// and the debug callback
	DebugMode bool

	// Extensions required by the window system
	Extensions []string

	// Layers requested in debug mode
	Layers []string

	// DebugExtension is enabled in debug mode
	DebugExtension string

	// DebugSeverity selects the reported debug messages,
	// errors and warnings are always reported
	DebugSeverity DebugSeverity
}

// WindowConfiguration is used to configure the window
type WindowConfiguration struct {
	// Backend is the window system, "sdl" or "glfw"
	Backend string

	Title     string
	Width     uint32
	Height    uint32
	Resizable bool
}

// TimeConfiguration is used to configure time services
type TimeConfiguration struct {
	// EventPollDelay is the delay between window event polls
	// in milliseconds
	EventPollDelay int
}

// LogConfiguration is used to configure the logger
type LogConfiguration struct {
	Level  string
	Format string
}

// DefaultConfiguration returns the configuration used when nothing
// is overridden by the environment.
func DefaultConfiguration(catalog Catalog) Configuration {
	return Configuration{
		Application: DefaultApplicationInfo,
		Instance: InstanceConfiguration{
			Layers:         append([]string{}, catalog.Layers...),
			DebugExtension: catalog.DebugExtension,
			DebugSeverity:  DebugSeverityRequired,
		},
		Window: WindowConfiguration{
			Backend: "glfw",
			Title:   "Vulkan",
			Width:   800,
			Height:  600,
		},
		Time: TimeConfiguration{
			EventPollDelay: 10,
		},
		Log: LogConfiguration{
			Level:  "info",
			Format: "text",
		},
	}
}

// LoadConfiguration builds the configuration from the defaults and the
// environment. When envFile is not empty, its variables take precedence
// over the process environment.
func LoadConfiguration(envFile string) (Configuration, error) {
	if envFile != "" {
		vars, err := godotenv.Read(envFile)
		if err != nil {
			return Configuration{}, errors.Wrapf(ErrConfiguration, "env file %s: %s", envFile, err)
		}
		for k, v := range vars {
			envy.Set(k, v)
		}
	}

	catalog, err := LoadCatalog()
	if err != nil {
		return Configuration{}, err
	}
	cfg := DefaultConfiguration(catalog)

	if cfg.Instance.DebugMode, err = envBool(EnvDebug, cfg.Instance.DebugMode); err != nil {
		return Configuration{}, err
	}
	if v := envy.Get(EnvDebugSeverity, ""); v != "" {
		if cfg.Instance.DebugSeverity, err = ParseDebugSeverity(v); err != nil {
			return Configuration{}, err
		}
	}
	if v := envy.Get(EnvLayers, ""); v != "" {
		cfg.Instance.Layers = splitList(v)
	}

	cfg.Application.ApplicationName = envy.Get(EnvAppName, cfg.Application.ApplicationName)

	cfg.Window.Backend = envy.Get(EnvWindowBackend, cfg.Window.Backend)
	cfg.Window.Title = envy.Get(EnvWindowTitle, cfg.Window.Title)
	if cfg.Window.Width, err = envUint32(EnvWindowWidth, cfg.Window.Width); err != nil {
		return Configuration{}, err
	}
	if cfg.Window.Height, err = envUint32(EnvWindowHeight, cfg.Window.Height); err != nil {
		return Configuration{}, err
	}
	if cfg.Window.Resizable, err = envBool(EnvWindowResizable, cfg.Window.Resizable); err != nil {
		return Configuration{}, err
	}

	if v := envy.Get(EnvPollDelay, ""); v != "" {
		delay, err := strconv.Atoi(v)
		if err != nil || delay < 0 {
			return Configuration{}, errors.Wrapf(ErrConfiguration, "%s=%q", EnvPollDelay, v)
		}
		cfg.Time.EventPollDelay = delay
	}

	cfg.Log.Level = envy.Get(EnvLogLevel, cfg.Log.Level)
	cfg.Log.Format = envy.Get(EnvLogFormat, cfg.Log.Format)

	return cfg, cfg.Validate()
}

// Validate checks the values that cannot be checked while parsing
func (c Configuration) Validate() error {
	switch c.Window.Backend {
	case "sdl", "glfw":
	default:
		return errors.Wrapf(ErrConfiguration, "unknown window backend %q", c.Window.Backend)
	}
	if c.Window.Width == 0 || c.Window.Height == 0 {
		return errors.Wrap(ErrConfiguration, "window size must not be zero")
	}
	if c.Instance.DebugMode && len(c.Instance.Layers) == 0 {
		return errors.Wrap(ErrConfiguration, "debug mode without validation layers")
	}
	return nil
}

func envBool(key string, def bool) (bool, error) {
	v := envy.Get(key, "")
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def, errors.Wrapf(ErrConfiguration, "%s=%q", key, v)
	}
	return b, nil
}

func envUint32(key string, def uint32) (uint32, error) {
	v := envy.Get(key, "")
	if v == "" {
		return def, nil
	}
	n, err := strconv.ParseUint(v, 10, 32)
	if err != nil {
		return def, errors.Wrapf(ErrConfiguration, "%s=%q", key, v)
	}
	return uint32(n), nil
}

func splitList(s string) []string {
	var list []string
	for _, field := range strings.Split(s, ",") {
		if field = strings.TrimSpace(field); field != "" {
			list = append(list, field)
		}
	}
	return list
}
