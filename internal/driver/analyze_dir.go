package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"
)

// listDocumentFiles returns the sorted *.graphql and *.gql files under dir.
func listDocumentFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if strings.HasSuffix(path, ".graphql") || strings.HasSuffix(path, ".gql") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	// Deterministic order regardless of walk details.
	sort.Strings(files)
	return files, nil
}

// AnalyzeDir runs the pipeline over every document file under dir, up to
// jobs files in parallel (GOMAXPROCS when jobs <= 0). Reports come back in
// path order. Each file is its own batch, so work inside a batch stays
// sequential while files fan out.
func AnalyzeDir(ctx context.Context, dir string, jobs int, opts Options) ([]*FileReport, error) {
	files, err := listDocumentFiles(dir)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, nil
	}

	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// Indexes are unique per goroutine, no mutex needed.
	reports := make([]*FileReport, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			report, err := AnalyzeFile(path, opts)
			if err != nil {
				return err
			}
			reports[i] = report
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}
