// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package main

import (
	"bufio"
	"fmt"
	"os"
	"runtime"

	"github.com/devblok/vkbase/core"
	"github.com/devblok/vkbase/device"
	"github.com/devblok/vkbase/window"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func init() {
	runtime.LockOSThread()
}

// Command line flags, they take precedence over the environment
var (
	envFile  string
	debug    bool
	backend  string
	logLevel string
	wait     bool
)

var rootCmd = &cobra.Command{
	Use:           "vkbase",
	Short:         "Open a window and bootstrap a Vulkan instance",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfiguration(cmd)
		if err != nil {
			return err
		}
		return run(cfg)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", "", "Load configuration variables from a .env file")
	rootCmd.PersistentFlags().BoolVar(&debug, "vkdbg", false, "Load Vulkan validation layers")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (panic, fatal, error, warn, info, debug, trace)")
	rootCmd.Flags().StringVar(&backend, "backend", "", "Window backend (sdl, glfw)")
	rootCmd.Flags().BoolVar(&wait, "wait", false, "Wait for Enter before exiting")
	rootCmd.AddCommand(infoCmd)
}

// loadConfiguration loads the configuration, applies the flags that were set
// and installs the configured logger.
func loadConfiguration(cmd *cobra.Command) (core.Configuration, error) {
	cfg, err := core.LoadConfiguration(envFile)
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("vkdbg") {
		cfg.Instance.DebugMode = debug
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = logLevel
	}
	if flags.Changed("backend") {
		cfg.Window.Backend = backend
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	logger, err := core.NewLogger(cfg.Log)
	if err != nil {
		return cfg, err
	}
	log.SetOutput(logger.Out)
	log.SetLevel(logger.Level)
	log.SetFormatter(logger.Formatter)
	core.SetLogger(logger)
	return cfg, nil
}

func run(cfg core.Configuration) error {
	log.WithField("backend", cfg.Window.Backend).Info("Initialising window")
	win, err := window.New(cfg.Window)
	if err != nil {
		return err
	}
	defer func() {
		log.Info("Cleaning up")
		win.Destroy()
	}()

	log.Info("Initialising Vulkan")
	api, err := device.NewVulkan(win.ProcAddr())
	if err != nil {
		return err
	}

	instanceCfg := cfg.Instance
	instanceCfg.Extensions = win.RequiredSurfaceExtensions()
	instance, err := core.NewInstance(api, cfg.Application, instanceCfg)
	if err != nil {
		return err
	}
	defer instance.Destroy()

	timeService := core.NewTime(cfg.Time)
	defer timeService.Stop()
	core.Loop(win, timeService)
	return nil
}

func main() {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
	if wait {
		fmt.Println("Press Enter to exit")
		bufio.NewReader(os.Stdin).ReadString('\n')
	}
	if err != nil {
		os.Exit(1)
	}
}
