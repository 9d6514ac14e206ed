// /home/krylon/go/src/github.com/blicero/jadwal/clients/jadwalctl/args.go
// -*- mode: go; coding: utf-8; -*-
// Created on 16. 10. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-10-16 00:52:09 krylon>

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/blicero/jadwal/backend"
	"github.com/blicero/jadwal/objects"
	"github.com/blicero/jadwal/objects/priority"
)

var (
	errArgCount = errors.New("Wrong number of arguments")
	errNoTitle  = errors.New("-title is required")
	errNoDate   = errors.New("-date is required")
	errNoInput  = errors.New("-in is required")
	errBadDay   = errors.New("-day must be one of Senin .. Minggu")
)

// argOutput is where flag sets report parse errors and usage.
var argOutput io.Writer

func newFlagSet(name string) *flag.FlagSet {
	var fs = flag.NewFlagSet(name, flag.ContinueOnError)

	if argOutput != nil {
		fs.SetOutput(argOutput)
	}

	return fs
} // func newFlagSet(name string) *flag.FlagSet

// parseID expects exactly one positional argument.
func parseID(args []string) (string, error) {
	if len(args) != 1 {
		return "", fmt.Errorf("%w: expected one ID, got %d", errArgCount, len(args))
	}

	return args[0], nil
} // func parseID(args []string) (string, error)

// parseNote expects a class ID followed by the text of the note.
func parseNote(args []string) (string, string, error) {
	if len(args) != 2 {
		return "", "", fmt.Errorf("%w: note needs a class ID and the text of the note",
			errArgCount)
	}

	return args[0], args[1], nil
} // func parseNote(args []string) (string, string, error)

// parseClass builds the ScheduleItem described by the arguments of the
// class command.
func parseClass(args []string) (objects.ScheduleItem, error) {
	var (
		err  error
		item objects.ScheduleItem
		fs   = newFlagSet("class")
	)

	fs.StringVar(&item.Title, "title", "", "Name of the class")
	fs.StringVar(&item.Room, "room", "", "Where the class takes place")
	fs.StringVar(&item.Day, "day", "", "Day of the week (Senin .. Minggu)")
	fs.StringVar(&item.StartTime, "start", "", "Start time (HH:MM)")
	fs.StringVar(&item.EndTime, "end", "", "End time (HH:MM)")
	fs.StringVar(&item.Color, "color", "", "Display color")

	if err = fs.Parse(args); err != nil {
		return item, err
	} else if item.Title == "" {
		return item, errNoTitle
	} else if !objects.IsDay(item.Day) {
		return item, fmt.Errorf("%w: %q", errBadDay, item.Day)
	} else if fs.NArg() > 0 {
		return item, fmt.Errorf("%w: unexpected %v", errArgCount, fs.Args())
	}

	return item, nil
} // func parseClass(args []string) (objects.ScheduleItem, error)

// parseTask builds the Assignment described by the arguments of the
// task command. Dates are taken to be in loc.
func parseTask(args []string, loc *time.Location) (objects.Assignment, error) {
	var (
		err                                error
		date, tod, prio, title, subj, desc string
		due                                time.Time
		a                                  objects.Assignment
		fs                                 = newFlagSet("task")
	)

	fs.StringVar(&title, "title", "", "Title of the assignment")
	fs.StringVar(&date, "date", "", "Due date (YYYY-MM-DD)")
	fs.StringVar(&tod, "time", "", "Due time (HH:MM)")
	fs.StringVar(&prio, "priority", "medium", "low, medium or high")
	fs.StringVar(&subj, "subject", "", "The class the assignment is for")
	fs.StringVar(&desc, "description", "", "Details")

	if err = fs.Parse(args); err != nil {
		return a, err
	} else if title == "" {
		return a, errNoTitle
	} else if date == "" {
		return a, errNoDate
	} else if due, err = objects.CombineDue(date, tod, loc); err != nil {
		return a, err
	}

	a = objects.NewAssignment(title, due)
	a.Subject = subj
	a.Description = desc

	if a.Priority, err = priority.Parse(prio); err != nil {
		return a, err
	}

	return a, nil
} // func parseTask(args []string, loc *time.Location) (objects.Assignment, error)

// reportArgs is what the report command needs besides the receipts.
type reportArgs struct {
	in  string
	out string
	pdf bool
	req backend.SalesRequest
}

// parseReport parses the arguments of the report command. The period
// defaults to the day now falls on.
func parseReport(args []string, now time.Time) (reportArgs, error) {
	var (
		err         error
		ra          reportArgs
		from, until string
		fs          = newFlagSet("report")
		today       = now.Format("2006-01-02")
	)

	fs.StringVar(&ra.in, "in", "", "JSON file with the list of receipts")
	fs.StringVar(&ra.out, "out", "", "Where to write the report (default: stdout)")
	fs.StringVar(&ra.req.PeriodLabel, "period", "Hari Ini", "Label of the reporting period")
	fs.StringVar(&from, "from", today, "First day of the period (YYYY-MM-DD)")
	fs.StringVar(&until, "to", today, "Last day of the period (YYYY-MM-DD)")
	fs.BoolVar(&ra.pdf, "pdf", false, "Render a PDF instead of HTML")

	if err = fs.Parse(args); err != nil {
		return ra, err
	} else if ra.in == "" {
		return ra, errNoInput
	} else if ra.req.Start, err = time.ParseInLocation("2006-01-02", from, now.Location()); err != nil {
		return ra, err
	} else if ra.req.End, err = time.ParseInLocation("2006-01-02", until, now.Location()); err != nil {
		return ra, err
	} else if ra.req.End.Before(ra.req.Start) {
		return ra, fmt.Errorf("Period ends (%s) before it starts (%s)", until, from)
	}

	return ra, nil
} // func parseReport(args []string, now time.Time) (reportArgs, error)
