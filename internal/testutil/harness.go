package testutil

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vk/langtags/internal/app"
)

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// HarnessResult holds the outcomes of an integration test run.
type HarnessResult struct {
	LogOutput string
	Err       error
	Dir       string
}

// RunApp provides a standardized harness for running integration tests: the
// given files are written into a fresh temporary directory, relative paths in
// cfg are resolved against it, and the real app is run to completion.
func RunApp(t *testing.T, files map[string]string, cfg app.Config) *HarnessResult {
	t.Helper()

	// 1. Create a temporary root directory and write all fixture files into
	//    it. Relative fixture paths naturally create subdirectories.
	tmpDir := t.TempDir()
	for name, content := range files {
		filePath := filepath.Join(tmpDir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(filePath), 0755))
		require.NoError(t, os.WriteFile(filePath, []byte(content), 0644))
	}

	// 2. Anchor the config's relative paths in the temporary directory.
	for _, p := range []*string{&cfg.InputPath, &cfg.OutputPath, &cfg.PipelinePath} {
		if *p != "" && !filepath.IsAbs(*p) {
			*p = filepath.Join(tmpDir, *p)
		}
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "debug"
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}

	appConfig, err := app.NewConfig(cfg)
	require.NoError(t, err)

	// 3. Run the real app against the fixtures, capturing its log output.
	logBuffer := &SafeBuffer{}
	runErr := app.NewApp(logBuffer, appConfig).Run(context.Background())

	return &HarnessResult{
		LogOutput: logBuffer.String(),
		Err:       runErr,
		Dir:       tmpDir,
	}
}

// ReadOutput reads a file below the harness directory and returns its
// contents as a string.
func (r *HarnessResult) ReadOutput(t *testing.T, relPath string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(r.Dir, relPath))
	require.NoError(t, err)
	return string(data)
}
