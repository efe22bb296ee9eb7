// Package selftest runs a scenario suite against the public vector API and
// reports which scenarios hold. It is the consumer behind `vecinfo -check`
// and only uses exported surface.
package selftest

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// Scenario is one named check. Run returns nil when the check holds.
type Scenario struct {
	Name string
	Run  func() error
}

// Failure records a scenario that returned an error or panicked.
type Failure struct {
	Name string
	Err  error
}

// Report summarises a run.
type Report struct {
	Passed   int
	Failed   int
	Failures []Failure
}

// OK reports whether every executed scenario passed.
func (r Report) OK() bool {
	return r.Failed == 0
}

// Run executes the scenarios whose name contains filter (all when filter is
// empty) and logs one line per scenario.
func Run(logger log.Logger, filter string) Report {
	return RunScenarios(logger, Scenarios(), filter)
}

// RunScenarios is Run over an explicit scenario list.
func RunScenarios(logger log.Logger, scenarios []Scenario, filter string) Report {
	if logger == nil {
		logger = log.NewNopLogger()
	}

	var rep Report
	for _, s := range scenarios {
		if filter != "" && !strings.Contains(s.Name, filter) {
			continue
		}
		start := time.Now()
		err := runOne(s)
		took := time.Since(start)
		if err != nil {
			rep.Failed++
			rep.Failures = append(rep.Failures, Failure{Name: s.Name, Err: err})
			level.Error(logger).Log("scenario", s.Name, "status", "fail", "took", took, "err", err)
			continue
		}
		rep.Passed++
		level.Info(logger).Log("scenario", s.Name, "status", "ok", "took", took)
	}
	level.Debug(logger).Log("msg", "self-test finished", "passed", rep.Passed, "failed", rep.Failed)
	return rep
}

func runOne(s Scenario) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return s.Run()
}

func expect(cond bool, format string, args ...any) error {
	if cond {
		return nil
	}
	return fmt.Errorf(format, args...)
}

// all returns the first non-nil error.
func all(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
