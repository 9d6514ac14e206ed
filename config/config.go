// /home/krylon/go/src/github.com/blicero/jadwal/config/config.go
// -*- mode: go; coding: utf-8; -*-
// Created on 11. 10. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-10-14 19:02:30 krylon>

// Package config loads the daemon's settings from a YAML file, a .env
// file and the environment, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/blicero/jadwal/common"
	"github.com/blicero/krylib"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to the names of environment variables that
// override settings, e.g. JADWAL_ADDRESS.
const EnvPrefix = "JADWAL"

// Storage backends
const (
	StorageSQLite = "sqlite"
	StorageBolt   = "bolt"
)

// ErrInvalid is returned for settings that have an unusable value.
var ErrInvalid = errors.New("Invalid setting")

// Config holds the settings of the daemon.
type Config struct {
	Address      string
	Storage      string
	PollInterval time.Duration
	ClassLead    time.Duration
	PersistRead  bool
	LogLevel     string
	StoreName    string
	StoreAddress string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("address", fmt.Sprintf("localhost:%d", common.DefaultPort))
	v.SetDefault("storage", StorageSQLite)
	v.SetDefault("poll_interval", "30s")
	v.SetDefault("class_lead", "5m")
	v.SetDefault("persist_read", false)
	v.SetDefault("log_level", "DEBUG")
	v.SetDefault("store_name", common.AppName)
	v.SetDefault("store_address", "")
} // func setDefaults(v *viper.Viper)

// Default returns the settings used when nothing is configured.
func Default() *Config {
	var v = viper.New()
	setDefaults(v)
	cfg, _ := fromViper(v)
	return cfg
} // func Default() *Config

// Load reads the settings. If path is empty, jadwal.yaml in the base
// directory is used. A missing settings file is not an error.
// A .env file in the base directory is loaded into the environment
// first, without overriding variables that are already set.
func Load(path string) (*Config, error) {
	var (
		err    error
		exists bool
		v      = viper.New()
		envf   = filepath.Join(common.BaseDir, ".env")
	)

	if path == "" {
		path = common.ConfigPath
	}

	if exists, err = krylib.Fexists(envf); err != nil {
		return nil, err
	} else if exists {
		if err = godotenv.Load(envf); err != nil {
			return nil, fmt.Errorf("Cannot load %s: %w", envf, err)
		}
	}

	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if exists, err = krylib.Fexists(path); err != nil {
		return nil, err
	} else if exists {
		v.SetConfigFile(path)
		if err = v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("Cannot read %s: %w", path, err)
		}
	}

	return fromViper(v)
} // func Load(path string) (*Config, error)

func fromViper(v *viper.Viper) (*Config, error) {
	var (
		err error
		cfg = &Config{
			Address:      v.GetString("address"),
			Storage:      strings.ToLower(v.GetString("storage")),
			PersistRead:  v.GetBool("persist_read"),
			LogLevel:     strings.ToUpper(v.GetString("log_level")),
			StoreName:    v.GetString("store_name"),
			StoreAddress: v.GetString("store_address"),
		}
	)

	if cfg.PollInterval, err = duration(v, "poll_interval"); err != nil {
		return nil, err
	} else if cfg.ClassLead, err = duration(v, "class_lead"); err != nil {
		return nil, err
	}

	switch cfg.Storage {
	case StorageSQLite, StorageBolt:
	default:
		return nil, fmt.Errorf("%w: storage %q", ErrInvalid, cfg.Storage)
	}

	if !validLevel(cfg.LogLevel) {
		return nil, fmt.Errorf("%w: log_level %q", ErrInvalid, cfg.LogLevel)
	} else if cfg.PollInterval > time.Minute {
		// The class scan compares wall clock minutes, a longer
		// interval would skip some.
		return nil, fmt.Errorf("%w: poll_interval %s exceeds one minute",
			ErrInvalid,
			cfg.PollInterval)
	}

	return cfg, nil
} // func fromViper(v *viper.Viper) (*Config, error)

func duration(v *viper.Viper, key string) (time.Duration, error) {
	var d, err = time.ParseDuration(v.GetString(key))

	if err != nil {
		return 0, fmt.Errorf("%w: %s: %w", ErrInvalid, key, err)
	} else if d <= 0 {
		return 0, fmt.Errorf("%w: %s must be positive", ErrInvalid, key)
	}

	return d, nil
} // func duration(v *viper.Viper, key string) (time.Duration, error)

func validLevel(lvl string) bool {
	for _, l := range common.LogLevels {
		if string(l) == lvl {
			return true
		}
	}

	return false
} // func validLevel(lvl string) bool
