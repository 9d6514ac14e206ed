// /home/krylon/go/src/github.com/blicero/jadwal/clients/jadwalctl/main.go
// -*- mode: go; coding: utf-8; -*-
// Created on 15. 10. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-10-16 01:14:52 krylon>

package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/blicero/jadwal/backend"
	"github.com/blicero/jadwal/clients/clientlib"
	"github.com/blicero/jadwal/common"
	"github.com/blicero/jadwal/objects"
	"github.com/pquerna/ffjson/ffjson"
)

const usage = `Usage: jadwalctl [-address host:port] <command> [arguments]

Commands:
  today                     Show today's classes
  week                      Show the weekly schedule
  class -title -day -start -end [-room] [-color]
  unclass <id>              Delete a class
  tasks [all|pending|completed]
  task -title -date [-time] [-subject] [-priority] [-description]
  toggle <id>               Mark an assignment done or pending
  rmtask <id>               Delete an assignment
  inbox                     Show the notification center
  readall                   Mark all notifications as read
  notes <class-id>          Show the notes attached to a class
  note <class-id> <text>    Attach a note to a class
  stats                     Show the dashboard numbers
  report -in receipts.json [-period] [-from] [-to] [-pdf] [-out]
`

func die(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
} // func die(format string, args ...any)

func main() {
	var (
		err  error
		addr string
		c    *clientlib.Client
	)

	flag.StringVar(
		&addr,
		"address",
		fmt.Sprintf("http://localhost:%d", common.DefaultPort),
		"The address the Jadwal daemon listens on")
	flag.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(1)
	} else if err = common.InitApp(); err != nil {
		die("Cannot initialize application directory: %s", err.Error())
	} else if c, err = clientlib.NewClient(addr); err != nil {
		die("Cannot create client: %s", err.Error())
	}

	var (
		cmd  = flag.Arg(0)
		args = flag.Args()[1:]
	)

	switch cmd {
	case "today":
		err = showToday(c)
	case "week":
		err = showWeek(c)
	case "class":
		err = addClass(c, args)
	case "unclass":
		err = withID(args, c.DeleteSchedule)
	case "tasks":
		err = showTasks(c, args)
	case "task":
		err = addTask(c, args)
	case "toggle":
		err = withID(args, c.ToggleAssignment)
	case "rmtask":
		err = withID(args, c.DeleteAssignment)
	case "inbox":
		err = showInbox(c)
	case "readall":
		err = c.MarkAllRead()
	case "notes":
		err = withID(args, func(id string) error { return showNotes(c, id) })
	case "note":
		var subject, text string
		if subject, text, err = parseNote(args); err == nil {
			_, err = c.AddNote(subject, text)
		}
	case "stats":
		err = showStats(c)
	case "report":
		err = salesReport(c, args)
	default:
		flag.Usage()
		os.Exit(1)
	}

	if err != nil {
		die("%s failed: %s", cmd, err.Error())
	}
} // func main()

func withID(args []string, fn func(string) error) error {
	var id, err = parseID(args)

	if err != nil {
		return err
	}

	return fn(id)
} // func withID(args []string, fn func(string) error) error

func printClass(item *objects.ScheduleItem) {
	fmt.Printf("%s-%s  %-24s %-8s %s\n",
		item.StartTime,
		item.EndTime,
		item.Title,
		item.Room,
		item.ID)
} // func printClass(item *objects.ScheduleItem)

func showToday(c *clientlib.Client) error {
	var (
		err   error
		items []objects.ScheduleItem
	)

	if items, err = c.Today(); err != nil {
		return err
	} else if len(items) == 0 {
		fmt.Println("Tidak ada jadwal hari ini")
		return nil
	}

	for idx := range items {
		printClass(&items[idx])
	}

	return nil
} // func showToday(c *clientlib.Client) error

func showWeek(c *clientlib.Client) error {
	var week, err = c.Week()

	if err != nil {
		return err
	}

	for _, d := range week {
		fmt.Printf("%s:\n", d.Day)
		for idx := range d.Items {
			fmt.Print("  ")
			printClass(&d.Items[idx])
		}
	}

	return nil
} // func showWeek(c *clientlib.Client) error

func addClass(c *clientlib.Client, args []string) error {
	var (
		err  error
		id   string
		item objects.ScheduleItem
	)

	if item, err = parseClass(args); err != nil {
		return err
	} else if id, err = c.SubmitSchedule(&item); err != nil {
		return err
	}

	fmt.Println(id)
	return nil
} // func addClass(c *clientlib.Client, args []string) error

func showTasks(c *clientlib.Client, args []string) error {
	var (
		err    error
		list   []objects.Assignment
		filter = "all"
		now    = time.Now()
	)

	if len(args) > 0 {
		filter = args[0]
	}

	if list, err = c.Assignments(filter); err != nil {
		return err
	}

	for _, a := range list {
		var mark = " "
		if a.Completed {
			mark = "x"
		}

		fmt.Printf("[%s] %s  %-6s %-28s %s (%s)\n",
			mark,
			a.DueDate.Format(common.TimestampFormatMinute),
			a.Priority,
			a.Title,
			a.ID,
			a.Until(now).Round(time.Minute))
	}

	return nil
} // func showTasks(c *clientlib.Client, args []string) error

func addTask(c *clientlib.Client, args []string) error {
	var (
		err error
		id  string
		a   objects.Assignment
	)

	if a, err = parseTask(args, time.Local); err != nil {
		return err
	} else if id, err = c.SubmitAssignment(&a); err != nil {
		return err
	}

	fmt.Println(id)
	return nil
} // func addTask(c *clientlib.Client, args []string) error

func showInbox(c *clientlib.Client) error {
	var (
		err  error
		list *backend.NotificationList
	)

	if list, err = c.GetNotifications(); err != nil {
		return err
	}

	fmt.Printf("%d unread\n", list.Unread)

	for _, n := range list.Items {
		var mark = "*"
		if n.Read {
			mark = " "
		}

		fmt.Printf("%s %-28s %s\n    %s\n",
			mark,
			n.Title,
			n.ID,
			n.Message)
	}

	return nil
} // func showInbox(c *clientlib.Client) error

func showNotes(c *clientlib.Client, subject string) error {
	var notes, err = c.Notes(subject)

	if err != nil {
		return err
	}

	for _, n := range notes {
		fmt.Printf("%s  %s (%d images)\n",
			n.CreatedAt.Format(common.TimestampFormatMinute),
			n.Text,
			len(n.Images))
	}

	return nil
} // func showNotes(c *clientlib.Client, subject string) error

func showStats(c *clientlib.Client) error {
	var dash, err = c.Stats()

	if err != nil {
		return err
	}

	fmt.Printf("Mata kuliah: %d\nTugas aktif: %d\nNotifikasi:  %d\n",
		dash.Classes,
		dash.Pending,
		dash.Unread)
	return nil
} // func showStats(c *clientlib.Client) error

func salesReport(c *clientlib.Client, args []string) error {
	var (
		err error
		buf []byte
		ra  reportArgs
	)

	if ra, err = parseReport(args, time.Now()); err != nil {
		return err
	} else if buf, err = os.ReadFile(ra.in); err != nil {
		return err
	} else if err = ffjson.Unmarshal(buf, &ra.req.Receipts); err != nil {
		return fmt.Errorf("Cannot parse receipts in %s: %w", ra.in, err)
	}

	var w = os.Stdout

	if ra.out != "" {
		if w, err = os.Create(ra.out); err != nil {
			return err
		}
		defer w.Close() // nolint: errcheck
	}

	return c.SalesReport(w, &ra.req, ra.pdf)
} // func salesReport(c *clientlib.Client, args []string) error
