package driver

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"fire/internal/ast"
	"fire/internal/diag"
	"fire/internal/lexer"
	"fire/internal/parser"
	"fire/internal/resource"
	"fire/internal/source"
	"fire/internal/token"
)

// ErrNoSources is returned when a directory holds no .fire files.
var ErrNoSources = errors.New("no " + SourceExt + " files found")

// Options configure directory-level compilation.
type Options struct {
	Root           string
	MaxDiagnostics int
	// Jobs limits parallel tokenize/parse workers; <= 0 means GOMAXPROCS.
	Jobs     int
	Cache    *DiskCache
	// Memory sits in front of Cache.
	Memory   *MemoryCache
	Observer PhaseObserver
}

// FileResult is the per-file outcome of ParseDir.
type FileResult struct {
	Path     string
	FileID   source.FileID
	Location resource.Location
	Tokens   []token.Token
	AST      *ast.File
	Bag      *diag.Bag
	// Cached reports that tokens came from the memory or disk cache.
	Cached bool
}

// ParseDir loads every source under opts.Root and parses the files in parallel.
// Files are loaded serially since FileSet is not safe for concurrent Add.
// Results keep the sorted path order regardless of worker scheduling.
func ParseDir(ctx context.Context, opts Options) (*source.FileSet, []*FileResult, error) {
	paths, err := ListSources(opts.Root)
	if err != nil {
		return nil, nil, err
	}
	if len(paths) == 0 {
		return nil, nil, fmt.Errorf("%s: %w", opts.Root, ErrNoSources)
	}

	fs := source.NewFileSetWithBase(opts.Root)
	results := make([]*FileResult, len(paths))

	endLoad := opts.Observer.begin(PhaseLoad)
	for i, path := range paths {
		fileID, err := fs.Load(path)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", path, err)
		}
		results[i] = &FileResult{
			Path:   path,
			FileID: fileID,
			Bag:    diag.NewBag(opts.MaxDiagnostics),
		}
	}
	endLoad()

	endParse := opts.Observer.begin(PhaseParse)
	defer endParse()

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for _, r := range results {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			parseOne(opts, fs.Get(r.FileID), r)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return fs, results, nil
}

func parseOne(opts Options, file *source.File, r *FileResult) {
	loc, err := LocationFor(opts.Root, r.Path)
	if err != nil {
		r.Bag.Add(diag.NewError(diag.ResInvalidPath, fileStart(file), err.Error()))
		return
	}
	r.Location = loc

	toks, ok := tokensOf(opts, file, r)
	if !ok {
		return
	}
	r.Tokens = toks

	astFile, err := parser.ParseFile(loc, toks)
	if err != nil {
		r.Bag.Add(parseDiagnostic(file, err))
		return
	}
	r.AST = astFile
}

// tokensOf достаёт токены из кеша (память, затем диск) или лексит файл и
// кладёт результат в кеш. Ошибки кеша не фатальны: они превращаются в предупреждения.
func tokensOf(opts Options, file *source.File, r *FileResult) ([]token.Token, bool) {
	key := TokenCacheKey(file.Hash)
	if toks, ok := opts.Memory.Get(key); ok {
		r.Cached = true
		return toks, true
	}
	cache := opts.Cache
	if cache != nil {
		var payload DiskPayload
		hit, err := cache.Get(key, &payload)
		if err != nil {
			r.Bag.Add(diag.New(diag.SevWarning, diag.IOCacheFail, fileStart(file), "token cache: "+err.Error()))
		}
		if hit {
			r.Cached = true
			opts.Memory.Add(key, payload.Tokens)
			return payload.Tokens, true
		}
	}

	toks, err := lexer.Tokenize(file.Content)
	if err != nil {
		r.Bag.Add(lexDiagnostic(file, err))
		return nil, false
	}
	opts.Memory.Add(key, toks)
	if cache != nil {
		if err := cache.Put(key, &DiskPayload{Path: file.Path, Tokens: toks}); err != nil {
			r.Bag.Add(diag.New(diag.SevWarning, diag.IOCacheFail, fileStart(file), "token cache: "+err.Error()))
		}
	}
	return toks, true
}

