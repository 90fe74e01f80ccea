package launches

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"time"

	"launchdash.dev/internal/logging"
)

// maxDatasetBytes caps the size of a downloaded dataset.
const maxDatasetBytes = 32 << 20

var httpClient = &http.Client{Timeout: 30 * time.Second}

func rawLaunchData(ctx context.Context, source string, isLocalFile bool, logger *slog.Logger) ([]byte, error) {
	if isLocalFile {
		b, err := os.ReadFile(source)
		if err != nil {
			return nil, fmt.Errorf("error reading local launch data file: %w", err)
		}
		return b, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
	if err != nil {
		return nil, fmt.Errorf("error building launch data request: %w", err)
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error downloading launch data: %w", err)
	}
	defer logging.SafeCloseWithLogging(resp.Body, logger, "launch_data_response_body")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("error downloading launch data: unexpected status %s", resp.Status)
	}

	b, err := io.ReadAll(io.LimitReader(resp.Body, maxDatasetBytes+1))
	if err != nil {
		return nil, fmt.Errorf("error reading launch data: %w", err)
	}
	if len(b) > maxDatasetBytes {
		return nil, fmt.Errorf("launch data exceeds %d bytes", maxDatasetBytes)
	}
	return b, nil
}

func loadLaunchData(ctx context.Context, config Config) (*Table, error) {
	b, err := rawLaunchData(ctx, config.DataURL, config.isLocalFile(), config.logger())
	if err != nil {
		return nil, err
	}

	table, err := ParseCSV(b)
	if err != nil {
		return nil, fmt.Errorf("error parsing launch data from %s: %w", config.DataURL, err)
	}
	return table, nil
}
