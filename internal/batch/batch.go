package batch

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"sync"

	"github.com/alovak/magstripe/magstripe"
	"github.com/alovak/magstripe/reader"
	"github.com/gocarina/gocsv"
	"golang.org/x/exp/slog"
)

// Input is one row of a swipe file.
type Input struct {
	Swipe string `csv:"swipe"`
}

// Row is one decoded (or rejected) swipe. The raw swipe is not echoed back.
type Row struct {
	Idx         int    `csv:"-"`
	ID          string `csv:"id"`
	Account     string `csv:"account"`
	ExpiryMonth string `csv:"expiry_month"`
	ExpiryYear  string `csv:"expiry_year"`
	Name        string `csv:"name"`
	Scheme      string `csv:"scheme"`
	Fingerprint string `csv:"fingerprint"`
	Expired     string `csv:"expired"`
	ErrorKind   string `csv:"error_kind"`
	Error       string `csv:"error"`
}

type Summary struct {
	Total    int
	Decoded  int
	Rejected int
}

// Runner decodes swipe files on a fixed number of workers.
type Runner struct {
	svc     *reader.Service
	workers int
	logger  *slog.Logger
}

func NewRunner(svc *reader.Service, workers int, logger *slog.Logger) *Runner {
	if workers <= 0 {
		workers = 1
	}
	return &Runner{svc: svc, workers: workers, logger: logger}
}

// Run reads a CSV with a swipe column from in and writes one result row per
// input row to out, in input order.
func (r *Runner) Run(ctx context.Context, in io.Reader, out io.Writer) (Summary, error) {
	inputs := []*Input{}
	if err := gocsv.Unmarshal(in, &inputs); err != nil {
		return Summary{}, fmt.Errorf("reading swipes: %w", err)
	}

	swipes := make([]string, len(inputs))
	for i, input := range inputs {
		swipes[i] = input.Swipe
	}

	rows, err := r.Decode(ctx, swipes)
	if err != nil {
		return Summary{}, err
	}

	if err := gocsv.Marshal(rows, out); err != nil {
		return Summary{}, fmt.Errorf("writing results: %w", err)
	}

	sum := Summary{Total: len(rows)}
	for _, row := range rows {
		if row.ErrorKind == "" {
			sum.Decoded++
		} else {
			sum.Rejected++
		}
	}
	r.logger.Info("batch decoded",
		slog.Int("total", sum.Total),
		slog.Int("decoded", sum.Decoded),
		slog.Int("rejected", sum.Rejected),
	)
	return sum, nil
}

type job struct {
	idx   int
	swipe string
}

// Decode decodes swipes concurrently. rows[i] always belongs to swipes[i].
func (r *Runner) Decode(ctx context.Context, swipes []string) ([]*Row, error) {
	jobs := make(chan job, len(swipes))
	rows := make([]*Row, len(swipes))

	var wg sync.WaitGroup
	for i := 0; i < r.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				rows[j.idx] = r.decode(j)
			}
		}()
	}

	// jobs is buffered for every swipe, so sends never block
	var err error
	for idx, s := range swipes {
		if err = ctx.Err(); err != nil {
			break
		}
		jobs <- job{idx: idx, swipe: s}
	}
	close(jobs)
	wg.Wait()

	if err != nil {
		return nil, fmt.Errorf("decoding batch: %w", err)
	}
	return rows, nil
}

func (r *Runner) decode(j job) *Row {
	res, err := r.svc.Decode(j.swipe)
	row := &Row{Idx: j.idx, ID: res.ID}
	if err != nil {
		row.ErrorKind = magstripe.KindOf(err).String()
		row.Error = err.Error()
		return row
	}
	row.Account = res.Account
	row.ExpiryMonth = res.ExpiryMonth
	row.ExpiryYear = res.ExpiryYear
	row.Name = res.Name
	row.Scheme = res.Scheme
	row.Fingerprint = res.Fingerprint
	if res.Expired != nil {
		row.Expired = strconv.FormatBool(*res.Expired)
	}
	return row
}
