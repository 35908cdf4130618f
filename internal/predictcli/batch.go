package predictcli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/okian/footrisk/internal/adapters/predictor"
	"github.com/okian/footrisk/pkg/logger"
	"github.com/spf13/cobra"
)

// Worker configuration constants.
const (
	workerMultiplier        = 2
	workerChannelMultiplier = 2
	resultSuffix            = ".result.json"
)

// BatchStats summarizes a batch run.
type BatchStats struct {
	Submitted  int           `json:"submitted"`
	Successful int           `json:"successful"`
	Failed     int           `json:"failed"`
	Duration   time.Duration `json:"duration_ns"`
}

type batchOptions struct {
	dir       string
	outputDir string
	workers   int
}

func newBatchCommand(opts *globalOptions) *cobra.Command {
	bo := &batchOptions{}
	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Submit every request file in a directory",
		Long: `batch reads every *.json file in --dir as a prediction request, submits them
with --workers concurrent workers and writes each response next to its name in
--output-dir as <name>.result.json.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			stats, err := runBatch(cmd.Context(), opts.client(), bo)
			if err != nil {
				return err
			}
			if err := writeJSON(cmd.OutOrStdout(), stats); err != nil {
				return err
			}
			if stats.Failed > 0 {
				return fmt.Errorf("%d of %d requests failed", stats.Failed, stats.Submitted)
			}
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&bo.dir, "dir", "", "directory of JSON request files")
	f.StringVar(&bo.outputDir, "output-dir", "", "directory for responses (default: --dir)")
	f.IntVar(&bo.workers, "workers", runtime.NumCPU()*workerMultiplier, "number of concurrent workers")
	_ = cmd.MarkFlagRequired("dir")
	return cmd
}

type batchJob struct {
	input  string
	output string
}

// runBatch submits the request files using a fixed pool of workers.
func runBatch(ctx context.Context, client *predictor.Client, bo *batchOptions) (BatchStats, error) {
	start := time.Now()
	log := logger.Named("batch")

	jobs, err := listJobs(bo)
	if err != nil {
		return BatchStats{}, err
	}
	workers := bo.workers
	if workers < 1 {
		workers = 1
	}
	log.Info(ctx, "submitting requests",
		logger.Int("requests", len(jobs)),
		logger.Int("workers", workers))

	var (
		successful int64
		failed     int64
		submitted  int64
	)

	jobChan := make(chan batchJob, workers*workerChannelMultiplier)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range jobChan {
				atomic.AddInt64(&submitted, 1)
				if err := submitJob(ctx, client, job); err != nil {
					atomic.AddInt64(&failed, 1)
					log.Warn(ctx, "request failed", logger.String("file", job.input), logger.Error(err))
					continue
				}
				atomic.AddInt64(&successful, 1)
			}
		}()
	}

	go func() {
		defer close(jobChan)
		for _, job := range jobs {
			select {
			case <-ctx.Done():
				return
			case jobChan <- job:
			}
		}
	}()

	wg.Wait()

	stats := BatchStats{
		Submitted:  int(atomic.LoadInt64(&submitted)),
		Successful: int(atomic.LoadInt64(&successful)),
		Failed:     int(atomic.LoadInt64(&failed)),
		Duration:   time.Since(start),
	}
	log.Info(ctx, "batch completed",
		logger.Int("successful", stats.Successful),
		logger.Int("failed", stats.Failed),
		logger.Duration("duration", stats.Duration))
	return stats, ctx.Err()
}

func submitJob(ctx context.Context, client *predictor.Client, job batchJob) error {
	req, err := readRequest(job.input)
	if err != nil {
		return err
	}
	resp, err := client.Predict(ctx, req)
	if err != nil {
		return err
	}
	return writeJSONFile(nil, job.output, resp)
}

// listJobs returns the request files in bo.dir in name order, skipping
// earlier results.
func listJobs(bo *batchOptions) ([]batchJob, error) {
	entries, err := os.ReadDir(bo.dir)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", bo.dir, err)
	}
	outDir := bo.outputDir
	if outDir == "" {
		outDir = bo.dir
	}
	if err := os.MkdirAll(outDir, directoryPermission); err != nil {
		return nil, fmt.Errorf("create %s: %w", outDir, err)
	}

	var jobs []batchJob
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".json") || strings.HasSuffix(name, resultSuffix) {
			continue
		}
		jobs = append(jobs, batchJob{
			input:  filepath.Join(bo.dir, name),
			output: filepath.Join(outDir, strings.TrimSuffix(name, ".json")+resultSuffix),
		})
	}
	sort.Slice(jobs, func(i, j int) bool { return jobs[i].input < jobs[j].input })
	return jobs, nil
}
