// Package batch evaluates files of expressions, one expression per line.
package batch

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/zephyrtronium/rpncalc"
)

// Result describes the outcome of processing a file.
type Result struct {
	// Success is false if the batch failed as a whole, e.g. because the input
	// could not be read. Lines whose expressions fail to evaluate do not
	// affect Success.
	Success bool
	// Message describes the outcome.
	Message string
	// TotalLines is the number of lines in the input.
	TotalLines int
	// ProcessedLines is the number of lines written to the output.
	ProcessedLines int
}

// Progress receives the percentage of lines completed, from 0 to 100. Calls
// are never concurrent, and percentages never decrease.
type Progress func(percent int)

// Processor evaluates each line of an input file and writes the results to an
// output file.
type Processor struct {
	// Calc evaluates each non-blank line.
	Calc rpncalc.Calculator
	// Workers is the maximum number of lines evaluated concurrently. If it is
	// not positive, GOMAXPROCS is used.
	Workers int
	// Log receives diagnostics. If nil, nothing is logged.
	Log *zap.Logger
}

func (p *Processor) log() *zap.Logger {
	if p.Log == nil {
		return zap.NewNop()
	}
	return p.Log
}

// Process evaluates each line of the file named in and writes one result line
// per input line to the file named out, creating out's directory if needed.
// Blank input lines give blank output lines. Lines are separated by "\n" or
// "\r\n", so input ending with a newline has a final empty line.
//
// If the batch as a whole fails, nothing is written, the Result is
// unsuccessful, and the error describes the failure. Canceling ctx stops
// scheduling further lines and fails the batch.
func (p *Processor) Process(ctx context.Context, in, out string, progress Progress) (Result, error) {
	log := p.log().With(zap.String("input", in), zap.String("output", out))
	fail := func(err error) (Result, error) {
		log.Warn("batch failed", zap.Error(err))
		return Result{Message: err.Error()}, err
	}
	if strings.TrimSpace(in) == "" {
		return fail(errors.New("input file path cannot be empty"))
	}
	if strings.TrimSpace(out) == "" {
		return fail(errors.New("output file path cannot be empty"))
	}
	data, err := os.ReadFile(in)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fail(fmt.Errorf("input file not found: %s: %w", in, err))
		}
		return fail(fmt.Errorf("IO error: %w", err))
	}
	if dir := filepath.Dir(out); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fail(fmt.Errorf("IO error: creating output directory: %w", err))
		}
	}

	lines := SplitLines(string(data))
	results, err := p.evalLines(ctx, lines, progress)
	if err != nil {
		return fail(err)
	}
	if err := writeLines(out, results); err != nil {
		return fail(fmt.Errorf("IO error: %w", err))
	}
	log.Info("batch finished", zap.Int("lines", len(lines)))
	return Result{
		Success:        true,
		Message:        "Successfully processed " + strconv.Itoa(len(lines)) + " line(s)",
		TotalLines:     len(lines),
		ProcessedLines: len(results),
	}, nil
}

// evalLines calculates each line on a bounded pool of workers. Results are
// stored by line index, so they are in input order.
func (p *Processor) evalLines(ctx context.Context, lines []string, progress Progress) ([]string, error) {
	jobs := p.Workers
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	results := make([]string, len(lines))
	var (
		mu   sync.Mutex
		done int
	)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, min(jobs, len(lines))))
	for i, line := range lines {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if strings.TrimSpace(line) != "" {
				results[i] = p.Calc.Calculate(strings.TrimSpace(line))
				p.log().Debug("evaluated line", zap.Int("line", i+1), zap.String("result", results[i]))
			}
			mu.Lock()
			defer mu.Unlock()
			done++
			if progress != nil {
				progress(Percent(done, len(lines)))
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("batch canceled after %d of %d line(s): %w", done, len(lines), err)
	}
	return results, nil
}

// Percent returns round(done/total*100), or 100 if total is zero.
func Percent(done, total int) int {
	if total <= 0 {
		return 100
	}
	return int(math.Round(float64(done) / float64(total) * 100))
}

// SplitLines splits s into lines separated by "\r\n" or "\n". The result has
// one more element than the number of separators.
func SplitLines(s string) []string {
	return strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n")
}

func writeLines(name string, lines []string) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(f)
	for _, line := range lines {
		w.WriteString(line)
		w.WriteByte('\n')
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
