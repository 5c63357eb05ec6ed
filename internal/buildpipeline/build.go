// Package buildpipeline orchestrates the compilation process.
package buildpipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"fire/internal/driver"
)

// Kindling output file names.
const (
	OutputExt  = ".kindling"
	BundleName = "bundle" + OutputExt
)

// BuildRequest configures output generation for a compilation.
type BuildRequest struct {
	CompileRequest
	// OutputDir receives the Kindling files; created when missing.
	OutputDir string
}

// BuildResult captures build artefacts and timings.
type BuildResult struct {
	OutputPaths []string
	Timings     Timings
	Compile     *driver.Result
}

// Build compiles the source directory and writes Kindling text.
// Bundle mode writes all headers into BundleName, one per line; otherwise
// every header gets its own numbered file.
func Build(ctx context.Context, req *BuildRequest) (BuildResult, error) {
	var result BuildResult
	if req == nil {
		return result, fmt.Errorf("missing build request")
	}
	reqCopy := *req
	req = &reqCopy
	if req.OutputDir == "" {
		req.OutputDir = req.Settings.Output
	}
	if req.OutputDir == "" {
		return result, fmt.Errorf("missing output directory")
	}

	compileRes, err := Compile(ctx, &req.CompileRequest)
	result.Timings = compileRes.Timings
	result.Compile = compileRes.Driver
	if err != nil {
		return result, err
	}

	emitStage(req.Progress, req.Files, StageEmit, StatusWorking, nil, 0)
	start := time.Now()
	paths, err := writeOutputs(req.OutputDir, req.Settings.Bundle, driver.EmitText(compileRes.Driver.Headers))
	if err != nil {
		emitStage(req.Progress, req.Files, StageEmit, StatusError, err, 0)
		return result, err
	}
	result.OutputPaths = paths
	result.Timings.Set(StageEmit, time.Since(start))
	emitStage(req.Progress, req.Files, StageEmit, StatusDone, nil, result.Timings.Duration(StageEmit))
	return result, nil
}

func writeOutputs(dir string, bundle bool, texts []string) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}
	if bundle {
		p := filepath.Join(dir, BundleName)
		var b strings.Builder
		for _, t := range texts {
			b.WriteString(t)
			b.WriteByte('\n')
		}
		if err := os.WriteFile(p, []byte(b.String()), 0o600); err != nil {
			return nil, fmt.Errorf("write %s: %w", p, err)
		}
		return []string{p}, nil
	}
	paths := make([]string, 0, len(texts))
	for i, t := range texts {
		p := filepath.Join(dir, fmt.Sprintf("%03d-%s%s", i, headerSlug(t), OutputExt))
		if err := os.WriteFile(p, []byte(t+"\n"), 0o600); err != nil {
			return nil, fmt.Errorf("write %s: %w", p, err)
		}
		paths = append(paths, p)
	}
	return paths, nil
}

// headerSlug извлекает имя заголовка из `( def "a::b" ...` и делает из него имя файла.
func headerSlug(text string) string {
	start := strings.IndexByte(text, '"')
	if start < 0 {
		return "header"
	}
	end := strings.IndexByte(text[start+1:], '"')
	if end <= 0 {
		return "header"
	}
	name := text[start+1 : start+1+end]
	return strings.ReplaceAll(name, "::", ".")
}
