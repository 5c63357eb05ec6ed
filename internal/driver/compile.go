package driver

import (
	"context"
	"fmt"

	"fire/internal/config"
	"fire/internal/diag"
	"fire/internal/kindling"
	"fire/internal/lower"
	"fire/internal/observ"
	"fire/internal/program"
	"fire/internal/source"
)

// Result is the outcome of compiling a source directory.
type Result struct {
	FileSet *source.FileSet
	Files   []*FileResult
	Program *program.Program
	Headers []kindling.Header
	Bag     *diag.Bag
	Timings observ.Report
}

// Compile parses every file under opts.Root, registers all definitions into
// one program, checks imports and lowers everything to Kindling headers.
//
// Диагностики всех стадий собираются в Result.Bag; ошибка возвращается
// только для отказов ввода/вывода и отмены контекста.
func Compile(ctx context.Context, opts Options, settings config.Settings) (*Result, error) {
	timer := observ.NewTimer()

	stopParse := timer.Start(PhaseParse)
	fs, files, err := ParseDir(ctx, opts)
	if err != nil {
		return nil, err
	}
	cached := 0
	for _, f := range files {
		if f.Cached {
			cached++
		}
	}
	stopParse(fmt.Sprintf("%d files, %d cached", len(files), cached))

	res := &Result{
		FileSet: fs,
		Files:   files,
		Program: program.New(),
		Bag:     diag.NewBag(opts.MaxDiagnostics),
	}
	for _, f := range files {
		res.Bag.Merge(f.Bag)
	}
	fileIdx := newFileIndex(fs, files)
	// одна и та же ошибка (например, неизвестный импорт) не дублируется
	rep := diag.NewDeduper(res.Bag)

	// регистрация строго последовательна, в порядке путей
	endRegister := opts.Observer.begin(PhaseRegister)
	stopRegister := timer.Start(PhaseRegister)
	for _, f := range files {
		if f.AST == nil {
			continue
		}
		for _, err := range res.Program.Register(program.Unit{Location: f.Location, File: f.AST}) {
			rep.Report(fileDiagnostic(fs.Get(f.FileID), err))
		}
	}
	for _, f := range files {
		if f.AST == nil {
			continue
		}
		for _, err := range res.Program.CheckImports(f.AST) {
			rep.Report(fileDiagnostic(fs.Get(f.FileID), err))
		}
	}
	stopRegister(fmt.Sprintf("%d definitions", len(res.Program.Definitions())))
	endRegister()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	endLower := opts.Observer.begin(PhaseLower)
	stopLower := timer.Start(PhaseLower)
	headers, errs := lower.New(res.Program, settings).Program()
	for _, err := range errs {
		rep.Report(fileIdx.diagnostic(err))
	}
	res.Headers = headers
	stopLower(fmt.Sprintf("%d headers", len(headers)))
	endLower()

	res.Bag.Sort()
	res.Timings = timer.Report()
	return res, nil
}

// EmitText renders headers as Kindling text, one header per line.
func EmitText(headers []kindling.Header) []string {
	out := make([]string, 0, len(headers))
	for _, h := range headers {
		out = append(out, kindling.EmitHeader(h))
	}
	return out
}
