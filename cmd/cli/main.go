package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"baseload-study/internal/config"
	"baseload-study/internal/logging"
	"baseload-study/internal/report"
	"baseload-study/internal/sites"
	"baseload-study/internal/solar"
	"baseload-study/internal/study"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "sites":
		cmdSites(os.Args[2:])
	case "run":
		cmdRun(os.Args[2:])
	case "dashboard":
		cmdDashboard(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  cli sites --config study.yaml [--count N --seed S --out sites.csv]")
	fmt.Println("  cli run --config study.yaml [--out DIR --cache DIR --offline]")
	fmt.Println("  cli dashboard --summary outputs/annual_capacity_factors.csv --out outputs/dashboard_dataset.csv")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - run writes per-site hourly dispatch CSVs plus the cross-site summary")
	fmt.Println("  - dashboard adds LCOE estimates to an existing summary CSV")
}

func cmdSites(args []string) {
	fs := pflag.NewFlagSet("sites", pflag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to YAML study config (optional)")
	count := fs.Int("count", 0, "Override: number of sites to select")
	seed := fs.Int64("seed", -1, "Override: pool shuffle seed (negative keeps config value)")
	outPath := fs.String("out", "", "Optional CSV output path")
	logLevel := fs.String("log-level", "", "Log level override (debug, info, warn, error)")
	_ = fs.Parse(args)

	cfg, logger := loadConfigAndLogger(*cfgPath, *logLevel)
	defer logger.Sync() //nolint:errcheck

	k := cfg.Study.Sites
	if *count > 0 {
		k = *count
	}
	s := cfg.Study.Seed
	if *seed >= 0 {
		s = *seed
	}

	selected, err := sites.Generate(k, s)
	if err != nil {
		logger.Fatal("site selection failed", zap.Error(err))
	}

	fmt.Printf("%-30s %10s %11s\n", "name", "latitude", "longitude")
	for _, site := range selected {
		fmt.Printf("%-30s %10.4f %11.4f\n", site.Name, site.Latitude, site.Longitude)
	}
	if *outPath != "" {
		if err := report.WriteSitesCSV(*outPath, selected); err != nil {
			logger.Fatal("write sites csv failed", zap.Error(err))
		}
		fmt.Printf("Wrote %d sites to %s\n", len(selected), *outPath)
	}
}

func cmdRun(args []string) {
	fs := pflag.NewFlagSet("run", pflag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to YAML study config (optional)")
	outDir := fs.String("out", "", "Override: output directory")
	cacheDir := fs.String("cache", "", "Override: solar cache directory")
	offline := fs.Bool("offline", false, "Skip NASA POWER and synthesize profiles")
	logLevel := fs.String("log-level", "", "Log level override (debug, info, warn, error)")
	_ = fs.Parse(args)

	cfg, logger := loadConfigAndLogger(*cfgPath, *logLevel)
	defer logger.Sync() //nolint:errcheck

	if *outDir != "" {
		cfg.Study.OutputDir = *outDir
	}
	if *cacheDir != "" {
		cfg.Study.CacheDir = *cacheDir
	}

	provider := solar.NewProvider(
		solar.NewDiskCache(cfg.Study.CacheDir),
		solar.NewNASAClient(""),
		logger,
	)
	provider.Offline = *offline

	res, err := study.Run(cfg, provider, logger)
	if err != nil {
		logger.Fatal("study run failed", zap.Error(err))
	}

	fmt.Printf("Wrote site list to %s\n", res.SitesCSV)
	fmt.Printf("Wrote annual summaries to %s\n", res.SummaryCSV)
	fmt.Printf("Wrote hourly profiles under %s\n", res.HourlyDir)
}

func cmdDashboard(args []string) {
	fs := pflag.NewFlagSet("dashboard", pflag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to YAML study config (optional)")
	summaryPath := fs.String("summary", "outputs/annual_capacity_factors.csv", "Aggregated simulation summary CSV")
	outPath := fs.String("out", "outputs/dashboard_dataset.csv", "Destination CSV for the dashboard")
	windLevels := fs.Float64Slice("wind-levels", []float64{0}, "Wind build-outs (GW) to duplicate rows for; use 0 if the study has no wind")
	logLevel := fs.String("log-level", "", "Log level override (debug, info, warn, error)")
	_ = fs.Parse(args)

	cfg, logger := loadConfigAndLogger(*cfgPath, *logLevel)
	defer logger.Sync() //nolint:errcheck

	rows, err := report.LoadSummaryCSV(*summaryPath)
	if err != nil {
		logger.Fatal("load summary csv failed", zap.Error(err))
	}
	dashboard := report.BuildDashboardRows(rows, *windLevels, cfg.Costs)
	if err := report.WriteDashboardCSV(*outPath, dashboard); err != nil {
		logger.Fatal("write dashboard csv failed", zap.Error(err))
	}
	fmt.Printf("Wrote %d dashboard rows to %s\n", len(dashboard), *outPath)
}

func loadConfigAndLogger(cfgPath, logLevel string) (*config.Config, *zap.Logger) {
	var cfg *config.Config
	if cfgPath == "" {
		cfg = config.Default()
	} else {
		loaded, err := config.Load(cfgPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to load config %s: %v\n", cfgPath, err)
			os.Exit(1)
		}
		cfg = loaded
	}

	logger, err := logging.New(cfg.Logging, logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	return cfg, logger
}
