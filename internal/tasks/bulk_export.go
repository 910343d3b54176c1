package tasks

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/senflix/sfx/internal/formatter"
	"github.com/senflix/sfx/internal/shared"
	"golang.org/x/time/rate"
)

// BulkExportOpts contains configuration for bulk search exports.
type BulkExportOpts struct {
	Format     string  // Export format: json, csv, markdown, txt
	OutputDir  string  // Base output directory (default: senflix_export_{epoch})
	NumWorkers int     // Concurrent workers (default: 3)
	RateLimit  float64 // Requests per second (default: 2)
}

// BulkExport re-runs multiple saved queries concurrently with rate limiting
// and progress tracking.
//
// This method implements a worker pool pattern to efficiently export many
// result sets. It respects the server's rate limits, handles partial failures
// gracefully, and generates a manifest file summarizing the export results.
func (e *SearchExporter) BulkExport(
	ctx context.Context,
	prog chan<- ProgressUpdate,
	queries []string,
	opts BulkExportOpts,
) (*BulkExportResult, error) {
	if e.svc == nil {
		return nil, fmt.Errorf("%w: service not initialized", shared.ErrServiceUnavailable)
	}

	if opts.OutputDir == "" {
		opts.OutputDir = fmt.Sprintf("senflix_export_%d", time.Now().Unix())
	}
	if opts.NumWorkers <= 0 {
		opts.NumWorkers = 3
	}
	if opts.NumWorkers > 10 {
		opts.NumWorkers = 10
	}
	if opts.RateLimit <= 0 {
		opts.RateLimit = 2.0
	}

	if err := os.MkdirAll(opts.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	result := &BulkExportResult{
		TotalQueries:    len(queries),
		OutputDirectory: opts.OutputDir,
		Results:         make([]QueryExportResult, 0, len(queries)),
	}

	limiter := rate.NewLimiter(rate.Limit(opts.RateLimit), 1)

	jobs := make(chan QueryExportJob, len(queries))
	results := make(chan QueryExportResult, len(queries))

	var wg sync.WaitGroup
	for i := 0; i < opts.NumWorkers; i++ {
		wg.Add(1)
		go e.exportWorker(ctx, &wg, limiter, jobs, results, opts)
	}

	go func() {
		e.sendProgress(prog, queueQueriesUpdate(len(queries)))
		for i, query := range queries {
			select {
			case <-ctx.Done():
				close(jobs)
				return
			default:
			}

			jobs <- QueryExportJob{Query: query}
			e.sendProgress(prog, runSearchUpdate(i+1, len(queries), query))
		}
		close(jobs)
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	completed := 0
	for res := range results {
		completed++
		result.Results = append(result.Results, res)

		if res.Success {
			result.SuccessfulExports++
			e.sendProgress(prog, exportCompletedUpdate(
				completed,
				len(queries),
				res.Query,
				res.ResultCount,
			))
		} else {
			result.FailedExports++
			e.sendProgress(prog, exportFailedUpdate(
				completed,
				len(queries),
				res.Query,
				res.Error,
			))
		}
	}

	manifestPath := filepath.Join(opts.OutputDir, "export_manifest.json")
	data, err := shared.MarshalJSON(result, true)
	if err != nil {
		return result, fmt.Errorf("export completed but failed to marshal manifest: %w", err)
	}
	if err := os.WriteFile(manifestPath, data, 0644); err != nil {
		return result, fmt.Errorf("export completed but failed to write manifest: %w", err)
	}
	result.ManifestPath = manifestPath
	return result, nil
}

// exportWorker is a worker goroutine that exports queries from the jobs channel.
func (e *SearchExporter) exportWorker(
	ctx context.Context,
	wg *sync.WaitGroup,
	limiter *rate.Limiter,
	jobs <-chan QueryExportJob,
	results chan<- QueryExportResult,
	opts BulkExportOpts,
) {
	defer wg.Done()

	for job := range jobs {
		select {
		case <-ctx.Done():
			return
		default:
		}

		if err := limiter.Wait(ctx); err != nil {
			return
		}

		res := e.exportSingleQuery(ctx, job, opts)
		results <- res
	}
}

// exportSingleQuery runs one query and writes its result set in the requested format.
func (e *SearchExporter) exportSingleQuery(
	ctx context.Context,
	j QueryExportJob,
	opts BulkExportOpts,
) QueryExportResult {
	result := QueryExportResult{
		Query:   j.Query,
		Success: false,
		Files:   []string{},
	}

	movies, err := e.svc.Search(ctx, j.Query)
	if err != nil {
		result.Error = fmt.Errorf("search failed: %w", err)
		result.ErrorText = result.Error.Error()
		return result
	}
	result.ResultCount = len(movies)

	rs := &formatter.ResultSet{Query: j.Query, Movies: movies}
	base := filepath.Join(opts.OutputDir, exportBase(j.Query))

	var path string
	switch opts.Format {
	case "csv":
		path, err = formatter.WriteCSVExport(rs, base+".csv")
	case "markdown", "md":
		path, err = formatter.WriteMarkdownExport(rs, base+".md")
	case "txt", "text":
		path, err = formatter.WriteTextExport(rs, base+".txt")
	case "json":
		fallthrough
	default:
		path, err = formatter.WriteJSONExport(rs, base+".json")
	}

	if err != nil {
		result.Error = fmt.Errorf("%s export failed: %w", opts.Format, err)
		result.ErrorText = result.Error.Error()
		return result
	}

	result.Files = []string{path}
	result.Success = true
	return result
}

// exportBase derives a filesystem-safe filename stem from a query.
func exportBase(query string) string {
	base := shared.NormalizeQuery(query)
	if base == "" {
		return "search"
	}
	return strings.ReplaceAll(base, " ", "_")
}
