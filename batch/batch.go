// Package batch derives keys for many private keys at once.
//
// The wallet package is pure and has no shared state, so every line is
// derived independently on a pool of goroutines. Results are still written
// in input order.
package batch

import (
	"bufio"
	"context"
	"io"
	"strings"
	"sync"

	"github.com/TualatinX/chainaddr/wallet"
	"github.com/sirupsen/logrus"
)

// Result is the outcome for one input line. Exactly one of Keys and Err is
// set.
type Result struct {
	Line  int          `json:"line"`
	Input string       `json:"input,omitempty"`
	Keys  *wallet.Keys `json:"keys,omitempty"`
	Err   string       `json:"error,omitempty"`

	seq int
}

type Stats struct {
	Total  int
	Failed int
}

type job struct {
	seq   int
	line  int
	input string
}

type Processor struct {
	workers int
	logger  *logrus.Entry
}

// NewProcessor returns a Processor running the given number of workers, at
// least one.
func NewProcessor(workers int, logger *logrus.Entry) *Processor {
	if workers < 1 {
		workers = 1
	}
	return &Processor{workers: workers, logger: logger}
}

// Run derives one private key per line of in and writes a Result per key to
// out. Blank lines and lines starting with # are skipped. A bad key produces
// a failed Result and the batch goes on. Cancelling ctx stops reading; work
// already started is still written before Run returns ctx.Err().
func (p *Processor) Run(ctx context.Context, in io.Reader, out Encoder) (Stats, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	jobs := make(chan job)
	results := make(chan Result)

	var wg sync.WaitGroup
	for i := 0; i < p.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				results <- derive(j)
			}
		}()
	}

	readErr := make(chan error, 1)
	go func() {
		defer close(jobs)
		readErr <- feed(ctx, in, jobs)
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	var (
		stats   Stats
		encErr  error
		next    int
		pending = make(map[int]Result)
	)
	for r := range results {
		pending[r.seq] = r
		for {
			r, ok := pending[next]
			if !ok {
				break
			}
			delete(pending, next)
			next++

			stats.Total++
			if r.Err != "" {
				stats.Failed++
				p.logger.WithFields(logrus.Fields{
					"line":  r.Line,
					"error": r.Err,
				}).Warn("Cannot derive key")
			}

			if encErr == nil {
				if encErr = out.Encode(r); encErr != nil {
					cancel()
				}
			}
		}
	}

	if encErr != nil {
		return stats, encErr
	}
	if err := <-readErr; err != nil {
		return stats, err
	}

	p.logger.WithFields(logrus.Fields{
		"total":   stats.Total,
		"failed":  stats.Failed,
		"workers": p.workers,
	}).Debug("Batch done")

	return stats, nil
}

func feed(ctx context.Context, in io.Reader, jobs chan<- job) error {
	scanner := bufio.NewScanner(in)
	seq := 0
	for line := 1; scanner.Scan(); line++ {
		input := strings.TrimSpace(scanner.Text())
		if input == "" || strings.HasPrefix(input, "#") {
			continue
		}

		select {
		case jobs <- job{seq: seq, line: line, input: input}:
			seq++
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return scanner.Err()
}

func derive(j job) Result {
	r := Result{Line: j.line, seq: j.seq}

	w, err := wallet.NewWallet(j.input)
	if err == nil {
		r.Keys, err = w.Derive()
	}
	if err != nil {
		r.Input = j.input
		r.Err = err.Error()
	}
	return r
}
