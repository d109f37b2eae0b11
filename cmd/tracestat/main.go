// File: cmd/tracestat/main.go
// Author: momentics <momentics@gmail.com>
//
// tracestat reads `trace-cmd report` output on stdin and prints how long
// each named thread was on a CPU between t_start and t_stop.
//
//	trace-cmd record -e sched_switch ./schedbench SCHED_RR 100 100000 1 2 3
//	trace-cmd report | tracestat 1234.5 1240.5 schedbench

package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/momentics/schedbench/tracestat"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("tracestat", flag.ContinueOnError)
	fs.SetOutput(stderr)
	asJSON := fs.Bool("json", false, "emit a JSON report")
	dbPath := fs.String("db", "", "persist results to this SQLite database")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: tracestat [flags] <t_start> <t_stop> <name>+")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() < 3 {
		fs.Usage()
		return 2
	}
	start, err1 := tracestat.ParseTimestamp(fs.Arg(0))
	stop, err2 := tracestat.ParseTimestamp(fs.Arg(1))
	if err1 != nil || err2 != nil {
		fmt.Fprintf(stderr, "could not parse window %q %q\n", fs.Arg(0), fs.Arg(1))
		return 2
	}

	logger := log.New(stderr, "[tracestat] ", log.LstdFlags)
	capture, err := tracestat.ReadCapture(stdin)
	if err != nil {
		logger.Printf("%v", err)
		return 1
	}
	report, err := tracestat.Analyze(capture, start, stop, fs.Args()[2:])
	if err != nil {
		logger.Printf("%v", err)
		return 1
	}

	if *dbPath != "" {
		store, err := tracestat.OpenStore(*dbPath)
		if err != nil {
			logger.Printf("%v", err)
			return 1
		}
		defer store.Close()
		if err := store.Save(report); err != nil {
			logger.Printf("%v", err)
			return 1
		}
	}

	if *asJSON {
		err = report.WriteJSON(stdout)
	} else {
		err = report.WriteText(stdout)
	}
	if err != nil {
		logger.Printf("write report: %v", err)
		return 1
	}
	return 0
}
