// Package queryconv provides a go/analysis based analyzer for detecting
// deferred queries that are implicitly evaluated as in-memory sequences.
package queryconv

import (
	"context"
	"errors"
	"flag"
	"go/ast"
	"go/types"
	"iter"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"

	"github.com/mpyw/queryconv/internal/classify"
	"github.com/mpyw/queryconv/internal/config"
	"github.com/mpyw/queryconv/internal/detect"
	"github.com/mpyw/queryconv/internal/directives/ignore"
	"github.com/mpyw/queryconv/internal/semantic"
)

// Flags for the analyzer.
var (
	configPath    string
	queryable     string
	enumerable    string
	materializers string
	workers       int
)

func init() {
	Analyzer.Flags.StringVar(&configPath, "config", "",
		"path to a TOML config file (keys: queryable, enumerable, materializers, workers)")
	Analyzer.Flags.StringVar(&queryable, "queryable", "",
		"deferred query type (e.g., "+config.DefaultQueryable+")")
	Analyzer.Flags.StringVar(&enumerable, "enumerable", "",
		"in-memory sequence type (e.g., "+config.DefaultEnumerable+")")
	Analyzer.Flags.StringVar(&materializers, "materializers", "",
		"comma-separated method names that explicitly materialize a query (default ToList,AsEnumerable)")
	Analyzer.Flags.IntVar(&workers, "workers", 0,
		"number of files checked concurrently (default 1)")
}

// Analyzer is the main analyzer for queryconv.
var Analyzer = &analysis.Analyzer{
	Name:     detect.DefaultRule.ID,
	Doc:      "checks that deferred queries are not implicitly converted to in-memory sequences",
	Requires: []*analysis.Analyzer{inspect.Analyzer},
	Run:      run,
	Flags:    flag.FlagSet{},
}

var ErrNoInspector = errors.New("inspector analyzer result not found")

func run(pass *analysis.Pass) (any, error) {
	insp, ok := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	if !ok {
		return nil, ErrNoInspector
	}

	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	model := semantic.New(pass.Pkg, pass.TypesInfo)

	queryableShape, err := model.Shape(cfg.Queryable)
	if err != nil {
		return nil, err
	}
	enumerableShape, err := model.Shape(cfg.Enumerable)
	if err != nil {
		return nil, err
	}

	files, ignoreMaps := buildFiles(pass)

	// Packages that cannot reach both shapes cannot contain the conversion.
	if queryableShape != nil && enumerableShape != nil {
		detector := detect.New(
			detect.DefaultRule,
			classify.New(queryableShape, enumerableShape),
			model,
			cfg.Materializers,
			types.RelativeTo(pass.Pkg),
		)

		if err := report(pass, insp, detector, files, ignoreMaps, cfg.Workers); err != nil {
			return nil, err
		}
	}

	reportUnusedIgnores(pass, ignoreMaps)

	return nil, nil
}

// report runs the detector and reports diagnostics not suppressed by ignore directives.
func report(
	pass *analysis.Pass,
	insp *inspector.Inspector,
	detector *detect.Detector,
	files []*ast.File,
	ignoreMaps map[string]ignore.Map,
	workers int,
) error {
	diags, err := collect(pass, insp, detector, files, workers)
	if err != nil {
		return err
	}

	for diag := range diags {
		position := pass.Fset.Position(diag.Pos)
		if ignoreMap, ok := ignoreMaps[position.Filename]; ok && ignoreMap.ShouldIgnore(position.Line) {
			continue
		}

		pass.Report(analysis.Diagnostic{
			Pos:      diag.Pos,
			End:      diag.End,
			Category: diag.Rule.ID,
			Message:  diag.Message(),
		})
	}

	return nil
}

// loadConfig merges the config file and the flags.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return config.Config{}, err
	}

	cfg = cfg.Apply(config.Overrides{
		Queryable:     queryable,
		Enumerable:    enumerable,
		Materializers: materializers,
		Workers:       workers,
	})

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}

	return cfg, nil
}

// buildFiles returns the files to analyze and their ignore maps.
// Generated files are always skipped.
func buildFiles(pass *analysis.Pass) ([]*ast.File, map[string]ignore.Map) {
	var files []*ast.File
	ignoreMaps := make(map[string]ignore.Map)

	for _, file := range pass.Files {
		if ast.IsGenerated(file) {
			continue
		}

		filename := pass.Fset.Position(file.Pos()).Filename
		files = append(files, file)
		ignoreMaps[filename] = ignore.Build(pass.Fset, file)
	}

	return files, ignoreMaps
}

// collect runs the detector sequentially over the inspector's call
// expressions, or concurrently per file when more than one worker is
// configured.
func collect(
	pass *analysis.Pass,
	insp *inspector.Inspector,
	detector *detect.Detector,
	files []*ast.File,
	workers int,
) (iter.Seq[detect.Diagnostic], error) {
	if workers <= 1 {
		return detector.Detect(analyzedCalls(pass, insp, files)), nil
	}

	diags, err := detector.DetectFiles(context.Background(), files, workers)
	if err != nil {
		return nil, err
	}

	return func(yield func(detect.Diagnostic) bool) {
		for _, diag := range diags {
			if !yield(diag) {
				return
			}
		}
	}, nil
}

// analyzedCalls yields call expressions in files, in source order.
func analyzedCalls(pass *analysis.Pass, insp *inspector.Inspector, files []*ast.File) iter.Seq[*ast.CallExpr] {
	analyzed := make(map[string]bool, len(files))
	for _, file := range files {
		analyzed[pass.Fset.Position(file.Pos()).Filename] = true
	}

	return func(yield func(*ast.CallExpr) bool) {
		for call := range inspector.All[*ast.CallExpr](insp) {
			if !analyzed[pass.Fset.Position(call.Pos()).Filename] {
				continue
			}
			if !yield(call) {
				return
			}
		}
	}
}

// reportUnusedIgnores reports any ignore directives that were not used.
func reportUnusedIgnores(pass *analysis.Pass, ignoreMaps map[string]ignore.Map) {
	for _, file := range pass.Files {
		ignoreMap, ok := ignoreMaps[pass.Fset.Position(file.Pos()).Filename]
		if !ok {
			continue
		}
		for _, pos := range ignoreMap.Unused() {
			pass.Reportf(pos, "unused queryconv:ignore directive")
		}
	}
}
