// Command arbin runs online-judge exercises on binary trees.
//
// Usage:
//
//    arbin -problem zurdos [-in datos.txt] [-print] [-trace debug]
//    arbin -list
//
// Input is read from stdin unless -in is given; answers go to stdout.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/npillmayer/arbin/judge"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'arbin.cmd'.
func tracer() tracing.Trace {
	return tracing.Select("arbin.cmd")
}

func main() {
	problem := flag.String("problem", "", "name of the exercise to solve")
	input := flag.String("in", "", "read cases from file instead of stdin")
	echo := flag.Bool("print", false, "print every tree read to stderr")
	level := flag.String("trace", "error", "trace level: error, info or debug")
	list := flag.Bool("list", false, "list available exercises")
	flag.Parse()

	if *list {
		for _, p := range judge.Problems() {
			fmt.Printf("%-12s %s\n", p.Name, p.Description)
		}
		return
	}
	if err := run(*problem, *input, *level, *echo, os.Stdout); err != nil {
		tracer().Errorf(err.Error())
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(name, input, level string, echo bool, out io.Writer) error {
	traceLevel, err := parseTraceLevel(level)
	if err != nil {
		return err
	}
	for _, key := range []string{"arbin.cmd", "arbin.judge", "arbin.bintree"} {
		tracing.Select(key).SetTraceLevel(traceLevel)
	}
	p, err := judge.Lookup(name)
	if err != nil {
		return err
	}
	var in io.Reader = os.Stdin
	if input != "" {
		f, err := os.Open(input)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}
	var opts []judge.Option
	if echo {
		opts = append(opts, judge.Echo(os.Stderr))
	}
	tracer().Infof("running %s", p.Name)
	return p.Solve(in, out, opts...)
}

func parseTraceLevel(s string) (tracing.TraceLevel, error) {
	switch strings.ToLower(s) {
	case "error":
		return tracing.LevelError, nil
	case "info":
		return tracing.LevelInfo, nil
	case "debug":
		return tracing.LevelDebug, nil
	}
	return tracing.LevelError, fmt.Errorf("unknown trace level %q", s)
}
