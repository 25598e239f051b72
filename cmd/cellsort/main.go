// Package main provides cellsort, which sorts CSV rows with a comparator
// list.
//
//	cellsort [-header] 'B=date;A=number-reversed' < in.csv > out.csv
//
// Column references index the CSV columns, so A is the first field. Empty
// fields are blank cells and sort last. Conversion settings come from the
// environment, see package config.
package main

import (
	"encoding/csv"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/mP1/walkingkooka-spreadsheet-sub024/compare"
	"github.com/mP1/walkingkooka-spreadsheet-sub024/convert"
	"github.com/mP1/walkingkooka-spreadsheet-sub024/internal/config"
	"github.com/mP1/walkingkooka-spreadsheet-sub024/internal/diagnostic"
	"github.com/mP1/walkingkooka-spreadsheet-sub024/internal/logging"
	"github.com/mP1/walkingkooka-spreadsheet-sub024/plugin"
	"github.com/mP1/walkingkooka-spreadsheet-sub024/reference"
	"github.com/mP1/walkingkooka-spreadsheet-sub024/value"
)

var errUsage = errors.New("usage: cellsort [-header] COMPARATORS < in.csv > out.csv")

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	if err := run(cfg, logger, os.Args[1:], os.Stdin, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *zap.Logger, args []string, in io.Reader, out io.Writer) error {
	flags := flag.NewFlagSet("cellsort", flag.ContinueOnError)
	flags.SetOutput(io.Discard)
	header := flags.Bool("header", false, "keep the first row in place")

	if err := flags.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", errUsage, err)
	}

	if flags.NArg() != 1 {
		return errUsage
	}

	logger.Debug("configuration loaded", zap.String("config", cfg.String()))

	ctx, err := newContext(cfg, logger)
	if err != nil {
		return err
	}

	comparators, aliasDiagnostics, err := comparatorProvider(cfg, logger)
	if err != nil {
		return err
	}

	if err := report(logger, convert.Matrix().Verify(), aliasDiagnostics); err != nil {
		return err
	}

	list, err := compare.ParseSpecList(flags.Arg(0))
	if err != nil {
		return err
	}

	if list[0].Axis() != reference.AxisColumn {
		return fmt.Errorf("rows are sorted by columns, got %s", list[0].Reference)
	}

	compiled, err := list.Compile(comparators, ctx)
	if err != nil {
		var unknown *plugin.UnknownNameError
		if errors.As(err, &unknown) {
			return errors.New(unknown.Hint())
		}

		return err
	}

	r := csv.NewReader(in)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return fmt.Errorf("failed to read csv: %w", err)
	}

	body := records
	if *header && len(records) > 0 {
		body = records[1:]
	}

	compare.SortRows(body, compiled, cellAt, ctx)

	logger.Info("sorted rows",
		zap.Int("rows", len(body)),
		zap.Stringer("comparators", list),
	)

	w := csv.NewWriter(out)
	if err := w.WriteAll(records); err != nil {
		return fmt.Errorf("failed to write csv: %w", err)
	}

	return nil
}

func newContext(cfg *config.Config, logger *zap.Logger) (compare.Context, error) {
	base, err := cfg.Context(logger)
	if err != nil {
		return nil, err
	}

	selector, err := cfg.ConverterSelector()
	if err != nil {
		return nil, err
	}

	converter, err := convert.Provider().Resolve(selector, base)
	if err != nil {
		return nil, fmt.Errorf("CONVERTER: %w", err)
	}

	return compare.NewContext(base, converter), nil
}

func comparatorProvider(
	cfg *config.Config,
	logger *zap.Logger,
) (plugin.Provider[compare.Comparator], diagnostic.Diagnostics, error) {
	if cfg.AliasesFile == "" {
		return compare.Provider(), diagnostic.Diagnostics{}, nil
	}

	aliases, err := plugin.LoadAliases(cfg.AliasesFile)
	if err != nil {
		return nil, diagnostic.Diagnostics{}, err
	}

	set, err := plugin.NewAliasSet[compare.Comparator](compare.Provider(), aliases...)
	if err != nil {
		return nil, diagnostic.Diagnostics{}, err
	}

	logger.Info("aliases loaded", zap.String("file", cfg.AliasesFile), zap.Int("aliases", len(aliases)))

	return set, set.Verify(), nil
}

// report merges startup diagnostics, logs them and fails when any of them is
// an error.
func report(logger *zap.Logger, sources ...diagnostic.Diagnostics) error {
	var all diagnostic.Diagnostics
	for _, d := range sources {
		all.Merge(d)
	}

	for _, info := range all.Infos {
		logger.Debug("diagnostic", zap.Stringer("diagnostic", info))
	}

	for _, w := range all.Warnings {
		logger.Warn("diagnostic", zap.Stringer("diagnostic", w))
	}

	if all.HasErrors() {
		return fmt.Errorf("startup checks failed: %w", all.Error())
	}

	return nil
}

// cellAt treats an empty or absent field as a blank cell.
func cellAt(record []string, ref reference.ColumnOrRow) *value.Cell {
	i := ref.Index()
	if i >= len(record) || record[i] == "" {
		return nil
	}

	return value.NewCell(reference.NewCell(i, 0), record[i])
}
