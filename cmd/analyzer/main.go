// Command analyzer runs one airdrop farm analysis over a directory of
// exchange position exports and writes the CSV reports plus an optional xlsx
// workbook.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/OvictorVieira/exchange.airdrop.analyzer/internal/analyzer"
	"github.com/OvictorVieira/exchange.airdrop.analyzer/internal/config"
	"github.com/OvictorVieira/exchange.airdrop.analyzer/internal/exchange"
	"github.com/OvictorVieira/exchange.airdrop.analyzer/internal/exporter"
	"github.com/OvictorVieira/exchange.airdrop.analyzer/internal/files"
	"github.com/OvictorVieira/exchange.airdrop.analyzer/internal/infrastructure"
	"github.com/OvictorVieira/exchange.airdrop.analyzer/internal/pipeline"
	"github.com/OvictorVieira/exchange.airdrop.analyzer/pkg/contracts"
	"github.com/OvictorVieira/exchange.airdrop.analyzer/pkg/contracts/domain"
)

func main() {
	configPath := flag.String("config", "", "path to config file (defaults to config.yaml if present)")
	exchangeID := flag.String("exchange", "", "exchange adapter to use (defaults to configured exchange)")
	inDir := flag.String("in", "", "input directory with .csv exports (defaults to configured input dir)")
	outDir := flag.String("out", "", "output directory for reports (defaults to configured reports dir)")
	pointsOwn := flag.Float64("points-own", -1, "points accumulated by the account")
	pointsFree := flag.Float64("points-free", -1, "points earned without trading cost")
	pointToToken := flag.Float64("point-to-token", -1, "token amount granted per point")
	tokenPrice := flag.Float64("token-price", -1, "current token price in USD")
	risk := flag.String("risk", "", "risk profile: conservative, moderate or aggressive")
	workbook := flag.Bool("xlsx", false, "also write an xlsx workbook with the full analysis")
	showVersion := flag.Bool("version", false, "print version information and exit")
	flag.Parse()

	if *showVersion {
		info := contracts.GetVersionInfo()
		fmt.Printf("%s (built: %s, commit: %s, go: %s, os: %s/%s)\n",
			contracts.GetVersionString(),
			info.BuildTime, info.GitCommit, info.GoVersion, info.OS, info.Architecture)
		return
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Warn("Failed to initialize logger, using default", "error", err)
		logger = slog.Default()
	}
	defer infrastructure.CloseLogFile()

	if *exchangeID == "" {
		*exchangeID = cfg.Analyzer.Exchange
	}
	if *inDir == "" {
		*inDir = cfg.Paths.InputDir
	}
	if *outDir == "" {
		*outDir = cfg.Paths.ReportsDir
	}

	inputs := cfg.Inputs()
	if *pointsOwn >= 0 {
		inputs.PointsOwn = *pointsOwn
	}
	if *pointsFree >= 0 {
		inputs.PointsFree = *pointsFree
	}
	if *pointToToken >= 0 {
		inputs.PointToToken = *pointToToken
	}
	if *tokenPrice >= 0 {
		inputs.TokenPrice = *tokenPrice
	}
	if *risk != "" {
		inputs.RiskProfile = domain.RiskProfile(*risk)
	}

	ctx := infrastructure.EnsureTraceID(context.Background())

	logger.InfoContext(ctx, "starting airdrop analysis",
		slog.String("version", contracts.Version),
		slog.String("exchange", *exchangeID),
		slog.String("input_dir", *inDir),
		slog.String("output_dir", *outDir))

	if err := run(ctx, cfg, logger, *exchangeID, *inDir, *outDir, inputs, *workbook); err != nil {
		infrastructure.WithError(logger, err).ErrorContext(ctx, "analysis failed")
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger, exchangeID, inDir, outDir string, inputs domain.AnalyzerInputs, workbook bool) error {
	discovery := files.NewDiscovery("")
	found, err := discovery.FindCSVFiles(inDir)
	if err != nil {
		return fmt.Errorf("discover export files: %w", err)
	}
	if len(found) == 0 {
		return fmt.Errorf("no .csv files found in %s", inDir)
	}

	logger.InfoContext(ctx, "export files discovered", slog.Int("count", len(found)))

	paths := make([]string, len(found))
	for i, f := range found {
		paths[i] = f.Path
	}

	loader := files.NewLoader(cfg.Analyzer.LoadConcurrency, infrastructure.WithComponent(logger, "files"))
	sources, loadFailures := loader.Load(ctx, paths)

	registry := exchange.NewRegistry(infrastructure.WithComponent(logger, "exchange"))
	engine := analyzer.NewEngine(infrastructure.WithComponent(logger, "analyzer"))
	session := pipeline.NewSession(registry, engine, infrastructure.WithComponent(logger, "pipeline"))

	result, err := session.Analyze(ctx, pipeline.Request{
		ExchangeID:   exchangeID,
		Sources:      sources,
		LoadFailures: loadFailures,
		Inputs:       inputs,
	})
	if err != nil {
		return err
	}

	csvWriter := exporter.NewCSVWriter(infrastructure.WithComponent(logger, "exporter"))
	if err := csvWriter.WriteFilesReport(filepath.Join(outDir, "files.csv"), result.Parse); err != nil {
		return fmt.Errorf("write files report: %w", err)
	}

	if result.Output == nil {
		for _, violation := range result.Violations {
			logger.WarnContext(ctx, "invalid analyzer input", slog.String("violation", violation))
		}
		return fmt.Errorf("analysis inputs invalid: %d violation(s)", len(result.Violations))
	}

	if err := csvWriter.WriteSummary(filepath.Join(outDir, "summary.csv"), result.Output, result.Diagnosis); err != nil {
		return fmt.Errorf("write summary: %w", err)
	}
	if err := csvWriter.WriteBreakdowns(filepath.Join(outDir, "breakdowns.csv"), result.Output.Trading); err != nil {
		return fmt.Errorf("write breakdowns: %w", err)
	}
	if err := csvWriter.WriteSellPlans(filepath.Join(outDir, "sell_plans.csv"), result.Output.SellPlans); err != nil {
		return fmt.Errorf("write sell plans: %w", err)
	}

	if workbook {
		workbookWriter := exporter.NewWorkbookWriter(infrastructure.WithComponent(logger, "exporter"))
		if err := workbookWriter.Write(filepath.Join(outDir, "analysis.xlsx"), result.Parse, result.Output, result.Diagnosis); err != nil {
			return fmt.Errorf("write workbook: %w", err)
		}
	}

	logger.InfoContext(ctx, "analysis complete",
		slog.Int("rows", len(result.Parse.Rows)),
		slog.String("farm_health", string(result.Diagnosis.Health)))

	return nil
}
