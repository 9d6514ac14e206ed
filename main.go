// /home/krylon/go/src/github.com/blicero/jadwal/main.go
// -*- mode: go; coding: utf-8; -*-
// Created on 01. 10. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-10-15 23:12:40 krylon>

package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/blicero/jadwal/backend"
	"github.com/blicero/jadwal/common"
	"github.com/blicero/jadwal/config"
)

func main() {
	fmt.Printf("%s %s (built %s)\n",
		common.AppName,
		common.Version,
		common.BuildStamp)

	var (
		err                   error
		daemon                *backend.Daemon
		cfg                   *config.Config
		appDir, addr, cfgPath string
	)

	flag.StringVar(
		&appDir,
		"appdir",
		common.BaseDir,
		"The directory where application-specific files live")

	flag.StringVar(
		&addr,
		"address",
		"",
		"Address to listen on, overrides the settings file")

	flag.StringVar(
		&cfgPath,
		"config",
		"",
		"Path of the settings file (default: jadwal.yaml in the application directory)")

	flag.Parse()

	if err = common.SetBaseDir(appDir); err != nil {
		fmt.Fprintf(
			os.Stderr,
			"Cannot set application directory to %s: %s\n",
			appDir,
			err.Error())
		os.Exit(1)
	} else if cfg, err = config.Load(cfgPath); err != nil {
		fmt.Fprintf(
			os.Stderr,
			"Cannot load settings: %s\n",
			err.Error())
		os.Exit(1)
	} else if err = common.SetMinLogLevel(cfg.LogLevel); err != nil {
		fmt.Fprintf(
			os.Stderr,
			"Cannot set log level to %s: %s\n",
			cfg.LogLevel,
			err.Error())
		os.Exit(1)
	}

	if addr != "" {
		cfg.Address = addr
	}

	if daemon, err = backend.Summon(cfg); err != nil {
		fmt.Fprintf(
			os.Stderr,
			"Failed to initialize backend: %s\n",
			err.Error())
		os.Exit(1)
	}

	var sigQ = make(chan os.Signal, 1)
	var ticker = time.NewTicker(time.Second * 2)

	signal.Notify(sigQ, syscall.SIGINT, syscall.SIGQUIT, syscall.SIGTERM)

	for daemon.IsAlive() {
		select {
		case sig := <-sigQ:
			fmt.Printf("Quitting on signal %s\n", sig)
			if err = daemon.Banish(); err != nil {
				fmt.Fprintf(
					os.Stderr,
					"Error shutting down: %s\n",
					err.Error())
				os.Exit(1)
			}
			os.Exit(0)
		case <-ticker.C:
			continue
		}
	}
}
