// /home/krylon/go/src/github.com/blicero/jadwal/common/common.go
// -*- mode: go; coding: utf-8; -*-
// Created on 02. 10. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-10-09 18:44:12 krylon>

// Package common contains constants, variables and functions used
// throughout the application.
package common

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"

	"github.com/blicero/jadwal/logdomain"
	"github.com/blicero/krylib"
	"github.com/hashicorp/logutils"
	uuid "github.com/odeke-em/go-uuid"
)

// Debug indicates whether to emit additional log messages and perform
// additional sanity checks.
const Debug = true

// AppName is the name of the application.
const AppName = "Jadwal"

// Version is the version number to display.
const Version = "0.3.1"

// DefaultPort is the TCP port the daemon listens on by default.
const DefaultPort = 7204

// BuildStamp is the timestamp of when the program was built.
var BuildStamp = "(unknown)"

// TimestampFormat is the format string used to render date+time values.
const (
	TimestampFormat          = "2006-01-02 15:04:05"
	TimestampFormatMinute    = "2006-01-02 15:04"
	TimestampFormatSubSecond = "2006-01-02 15:04:05.0000 MST"
	TimestampFormatDate      = "2006-01-02"
	TimestampFormatTime      = "15:04:05"
	ClockFormat              = "15:04"
)

// LogLevels are the names of the log levels supported by the logger.
var LogLevels = []logutils.LogLevel{
	"TRACE",
	"DEBUG",
	"INFO",
	"WARN",
	"ERROR",
	"CRITICAL",
	"CANTHAPPEN",
	"SILENT",
}

var (
	lvlLock     sync.RWMutex
	minLogLevel logutils.LogLevel = "DEBUG"
)

// BaseDir is the folder where all application-specific files are stored.
// It defaults to $HOME/.jadwal.d
var BaseDir = filepath.Join(os.Getenv("HOME"), ".jadwal.d")

// LogPath is the filename of the log file.
var LogPath = filepath.Join(BaseDir, "jadwal.log")

// DbPath is the filename of the SQLite database.
var DbPath = filepath.Join(BaseDir, "jadwal.db")

// KVPath is the filename of the bbolt key-value store.
var KVPath = filepath.Join(BaseDir, "jadwal.bolt")

// ConfigPath is the default location of the settings file.
var ConfigPath = filepath.Join(BaseDir, "jadwal.yaml")

// SetBaseDir sets the BaseDir and related variables.
func SetBaseDir(path string) error {
	fmt.Printf("Setting BASE_DIR to %s\n", path)

	BaseDir = path
	LogPath = filepath.Join(BaseDir, "jadwal.log")
	DbPath = filepath.Join(BaseDir, "jadwal.db")
	KVPath = filepath.Join(BaseDir, "jadwal.bolt")
	ConfigPath = filepath.Join(BaseDir, "jadwal.yaml")

	if err := InitApp(); err != nil {
		fmt.Printf("Error initializing application environment: %s\n", err.Error())
		return err
	}

	return nil
} // func SetBaseDir(path string) error

// InitApp performs some basic preparations for the application to run.
// Currently, this means creating the BaseDir folder.
func InitApp() error {
	var (
		err    error
		exists bool
	)

	if exists, err = krylib.Fexists(BaseDir); err != nil {
		fmt.Fprintf(os.Stderr,
			"Cannot check if %s exists: %s\n",
			BaseDir,
			err.Error())
		return err
	} else if exists {
		return nil
	} else if err = os.MkdirAll(BaseDir, 0700); err != nil {
		fmt.Fprintf(os.Stderr,
			"Error creating BASE_DIR %s: %s\n",
			BaseDir,
			err.Error())
		return err
	}

	return nil
} // func InitApp() error

// SetMinLogLevel sets the minimum level of messages that loggers created
// afterwards will let through.
func SetMinLogLevel(lvl string) error {
	for _, l := range LogLevels {
		if string(l) == lvl {
			lvlLock.Lock()
			minLogLevel = l
			lvlLock.Unlock()
			return nil
		}
	}

	return fmt.Errorf("Invalid log level %q", lvl)
} // func SetMinLogLevel(lvl string) error

// GetLogger tries to create a named logger instance and return it.
// If the directory to hold the log file does not exist, try to create it.
func GetLogger(dom logdomain.ID) (*log.Logger, error) {
	var err error
	err = InitApp()
	if err != nil {
		return nil, fmt.Errorf("Error initializing application environment: %s", err.Error())
	}

	logName := fmt.Sprintf("%s.%s ",
		AppName,
		dom)

	var logfile *os.File
	logfile, err = os.OpenFile(LogPath, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0600)
	if err != nil {
		msg := fmt.Sprintf("Error opening log file: %s\n", err.Error())
		fmt.Println(msg)
		return nil, err
	}

	writer := io.MultiWriter(os.Stdout, logfile)

	lvlLock.RLock()
	filter := &logutils.LevelFilter{
		Levels:   LogLevels,
		MinLevel: minLogLevel,
		Writer:   writer,
	}
	lvlLock.RUnlock()

	logger := log.New(filter, logName, log.Ldate|log.Ltime|log.Lshortfile)
	return logger, nil
} // func GetLogger(name string) (*log.Logger, error)

// GetUUID returns a randomized UUID
func GetUUID() string {
	return uuid.NewRandom().String()
} // func GetUUID() string
