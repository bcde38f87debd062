// Package logger is a small levelled logger on top of the standard log package.
// It is silent until a level is set, so libraries can log unconditionally.
package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"regexp"
	"sync"
	"sync/atomic"

	"github.com/cornelk/hashmap"
)

const (
	ERROR   = 1
	INFO    = 2
	VERBOSE = 3
	DEBUG   = 7
)

var (
	mu      sync.RWMutex
	level   int
	limiter int
	filter  *regexp.Regexp
	counter *hashmap.HashMap
	output  = log.New(os.Stderr, "", log.LstdFlags)
)

func init() {
	counter = &hashmap.HashMap{}
}

// SetLevel sets the most verbose level that is printed. Level 0 disables output.
func SetLevel(l int) {
	mu.Lock()
	defer mu.Unlock()
	level = l
}

// Level returns the current level.
func Level() int {
	mu.RLock()
	defer mu.RUnlock()
	return level
}

// SetLimiter limits how many times the same message is printed.
// Zero means no limit. Changing the limit resets the counters.
func SetLimiter(l int) {
	mu.Lock()
	defer mu.Unlock()
	limiter = l
	counter = &hashmap.HashMap{}
}

// SetFilter only lets through messages matching the RE2 pattern.
// An empty pattern removes the filter.
func SetFilter(pattern string) error {
	mu.Lock()
	defer mu.Unlock()
	if pattern == "" {
		filter = nil
		return nil
	}
	// https://github.com/google/re2/wiki/Syntax
	reg, err := regexp.Compile(pattern)
	if err != nil {
		return err
	}
	filter = reg
	return nil
}

// SetOutput redirects the output, mostly for tests.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output.SetOutput(w)
}

func Println(v ...interface{}) {
	if Level() >= INFO {
		output.Println(v...)
	}
}

func Printf(format string, v ...interface{}) {
	printfAtLevel(INFO, format, v...)
}

func Errorf(format string, v ...interface{}) {
	printfAtLevel(ERROR, format, v...)
}

func Verbosef(format string, v ...interface{}) {
	printfAtLevel(VERBOSE, format, v...)
}

func Debugf(format string, v ...interface{}) {
	printfAtLevel(DEBUG, format, v...)
}

func printfAtLevel(l int, format string, v ...interface{}) {
	if Level() < l {
		return
	}
	out := filterOutput(format, v...)
	if out == "" {
		return
	}
	if !limiterAvailable(out) {
		return
	}
	output.Print(out)
}

func limiterAvailable(out string) bool {
	mu.RLock()
	lim, cnt := limiter, counter
	mu.RUnlock()
	if lim == 0 {
		return true
	}
	var i int64
	val, _ := cnt.GetOrInsert(out, &i)
	actual := (val).(*int64)
	return atomic.AddInt64(actual, 1) <= int64(lim)
}

func filterOutput(format string, v ...interface{}) string {
	mu.RLock()
	f := filter
	mu.RUnlock()
	out := fmt.Sprintf(format, v...)
	if f == nil || f.MatchString(out) {
		return out
	}
	return ""
}
