// Command vecinfo exercises the vector container.
//
// Usage:
//
//	vecinfo [flags] [scenario-filter]
//
// Without -check it appends -n ints to a vector reserved with -hint and
// prints every capacity change, which makes the growth policy visible.
//
// Examples:
//
//	vecinfo -n 100
//	vecinfo -n 1000 -hint 64
//	vecinfo -check
//	vecinfo -check resize/
//	vecinfo -list
package main

import (
	"flag"
	"fmt"
	"math/bits"
	"os"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"github.com/cwbudde/algo-vector/container/vector"
	"github.com/cwbudde/algo-vector/internal/selftest"
)

func main() {
	n := flag.Int("n", 64, "number of elements to append in the growth trace")
	hint := flag.Int("hint", 0, "capacity to reserve before the growth trace")
	check := flag.Bool("check", false, "run the self-test scenarios")
	list := flag.Bool("list", false, "list self-test scenario names")
	logLevel := flag.String("log.level", "info", "log level: debug, info, warn, error")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: vecinfo [flags] [scenario-filter]\n\n")
		fmt.Fprintf(os.Stderr, "Prints the growth trace of a vector or runs its self-test.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  vecinfo -n 1000 -hint 64\n")
		fmt.Fprintf(os.Stderr, "  vecinfo -check resize/\n")
		fmt.Fprintf(os.Stderr, "  vecinfo -list\n")
	}
	flag.Parse()

	logger, err := newLogger(*logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}

	switch {
	case *list:
		for _, s := range selftest.Scenarios() {
			fmt.Println(s.Name)
		}
	case *check:
		rep := selftest.Run(logger, flag.Arg(0))
		fmt.Printf("passed=%d failed=%d\n", rep.Passed, rep.Failed)
		if !rep.OK() {
			os.Exit(1)
		}
	default:
		if *n < 0 {
			level.Error(logger).Log("msg", "invalid element count", "n", *n)
			os.Exit(2)
		}
		printGrowth(*n, *hint)
	}
}

func newLogger(lvl string) (log.Logger, error) {
	var opt level.Option
	switch lvl {
	case "debug":
		opt = level.AllowDebug()
	case "info":
		opt = level.AllowInfo()
	case "warn":
		opt = level.AllowWarn()
	case "error":
		opt = level.AllowError()
	default:
		return nil, fmt.Errorf("unknown log level %q", lvl)
	}
	logger := log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
	logger = level.NewFilter(logger, opt)
	return log.With(logger, "ts", log.DefaultTimestampUTC, "caller", log.DefaultCaller), nil
}

type growthStep struct {
	size     int
	capacity int
}

// growthTrace appends n ints to a vector reserved with hint and records the
// initial shape and every step that changed the capacity.
func growthTrace(n, hint int) []growthStep {
	v := vector.FromHint[int](vector.Reserve(hint))
	steps := []growthStep{{size: v.Len(), capacity: v.Cap()}}
	for i := range n {
		before := v.Cap()
		v.PushBack(i)
		if v.Cap() != before {
			steps = append(steps, growthStep{size: v.Len(), capacity: v.Cap()})
		}
	}
	return steps
}

func printGrowth(n, hint int) {
	elemSize := uint64(bits.UintSize / 8)
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Size\tCapacity\tBacking\tUtilisation\n"); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output header: %v\n", err)
		return
	}
	if _, err := fmt.Fprintf(tw, "----\t--------\t-------\t-----------\n"); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output header: %v\n", err)
		return
	}
	for _, s := range growthTrace(n, hint) {
		util := 0.0
		if s.capacity > 0 {
			util = 100 * float64(s.size) / float64(s.capacity)
		}
		if _, err := fmt.Fprintf(tw, "%d\t%d\t%s\t%.1f%%\n",
			s.size,
			s.capacity,
			humanize.IBytes(uint64(s.capacity)*elemSize),
			util,
		); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output row: %v\n", err)
			return
		}
	}
	if err := tw.Flush(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}
