package background

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

// WarmPages returns a job that requests each path from handler so the page
// cache holds it before the first visitor arrives.
func WarmPages(handler http.Handler, paths []string) Job {
	return Job{
		Name:    "warm_page_cache",
		Timeout: 30 * time.Second,
		Retries: 2,
		Backoff: 5 * time.Second,
		Run: func(ctx context.Context) error {
			for _, path := range paths {
				if err := ctx.Err(); err != nil {
					return err
				}
				req, err := http.NewRequestWithContext(ctx, http.MethodGet, path, nil)
				if err != nil {
					return fmt.Errorf("build request for %s: %w", path, err)
				}
				req.RemoteAddr = "127.0.0.1:0"

				w := &discardWriter{header: http.Header{}}
				handler.ServeHTTP(w, req)
				if w.status != 0 && w.status != http.StatusOK {
					return fmt.Errorf("warm %s: status %d", path, w.status)
				}
			}
			return nil
		},
	}
}

type discardWriter struct {
	header http.Header
	status int
}

func (w *discardWriter) Header() http.Header { return w.header }

func (w *discardWriter) Write(p []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	return len(p), nil
}

func (w *discardWriter) WriteHeader(status int) {
	if w.status == 0 {
		w.status = status
	}
}
