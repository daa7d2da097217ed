// Package main provides the CLI entry point for pyramid-go.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/ukaji3/pyramid-go/internal/config"
	"github.com/ukaji3/pyramid-go/pkg/pyramid"
	"github.com/ukaji3/pyramid-go/pkg/pyramid/models"
	"github.com/ukaji3/pyramid-go/pkg/pyramid/output"
)

var (
	outputPath string
	pretty     bool
	configPath string
	sheetName  string
	fromCharts bool
	chartName  string
	barWidth   float64
	directions map[string]string
	verbose    bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "pyramid",
		Short: "Compute population pyramid chart data",
		Long: `pyramid-go validates categorical series that share one set of category
labels and turns them into mirrored horizontal bar data with a symmetric
value axis. Input is a JSON series document or an Excel workbook.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "TOML configuration file")
	rootCmd.PersistentFlags().StringVar(&sheetName, "sheet", "", "Sheet holding the series table (default: first sheet)")
	rootCmd.PersistentFlags().BoolVar(&fromCharts, "from-charts", false, "Read series from a bar chart in the workbook")
	rootCmd.PersistentFlags().StringVar(&chartName, "chart", "", "Chart name to use with --from-charts (default: first bar chart)")
	rootCmd.PersistentFlags().StringToStringVar(&directions, "direction", nil, "Series direction overrides, e.g. Women=L")
	rootCmd.PersistentFlags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	rootCmd.PersistentFlags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	renderCmd := &cobra.Command{
		Use:   "render [input.json|input.xlsx]",
		Short: "Render series as pyramid chart data",
		Args:  cobra.ExactArgs(1),
		RunE:  runRender,
	}
	renderCmd.Flags().Float64Var(&barWidth, "bar-width", 0, "Bar width override (default: 0.6)")

	validateCmd := &cobra.Command{
		Use:   "validate [input.json|input.xlsx]",
		Short: "Check that series can be plotted together",
		Args:  cobra.ExactArgs(1),
		RunE:  runValidate,
	}

	rootCmd.AddCommand(renderCmd, validateCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// setup loads configuration and input shared by all commands.
func setup(inputPath string) (*config.Config, *log.Logger, *models.Document, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, nil, err
	}

	level, err := cfg.Level()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("invalid log level: %w", err)
	}
	if verbose {
		level = log.DebugLevel
	}
	logger := newLogger(os.Stderr, level)

	doc, err := pyramid.Load(inputPath, pyramid.LoadOptions{
		Sheet:      sheetName,
		FromCharts: fromCharts,
		Chart:      chartName,
	})
	if err != nil {
		logger.Error("load failed", "input", inputPath, "err", err)
		return nil, nil, nil, err
	}
	pyramid.ApplyDirections(doc.Series, cfg.Directions)
	pyramid.ApplyDirections(doc.Series, directions)
	if cfg.RaiseXAxisMax(doc.XAxisMax) {
		logger.Debug("value axis bound taken from input", "bound", doc.XAxisMax)
	}
	logger.Debug("input loaded", "input", inputPath, "series", len(doc.Series))

	return cfg, logger, doc, nil
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, logger, doc, err := setup(args[0])
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("bar-width") {
		cfg.BarWidth = barWidth
	}

	chart, err := pyramid.Render(cfg.Options(logger), doc.Series)
	if err != nil {
		logger.Error("render failed", "kind", pyramid.KindOf(err), "err", err)
		return err
	}
	chart.Title = doc.Title
	logger.Info("rendered pyramid", "series", len(chart.Series), "categories", len(chart.YAxis.Ticks), "bound", chart.XAxis.Max)

	jsonData, err := output.ToJSON(chart, pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}
	return writeOutput(cmd.OutOrStdout(), jsonData)
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg, logger, doc, err := setup(args[0])
	if err != nil {
		return err
	}

	report, err := pyramid.NewSession(cfg.Options(logger)).Validate(doc.Series)
	if err != nil {
		logger.Error("validation failed", "kind", pyramid.KindOf(err), "err", err)
		return err
	}
	logger.Info("series are plottable together", "series", report.Series, "categories", len(report.Categories))

	jsonData, err := output.ReportToJSON(report, pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}
	return writeOutput(cmd.OutOrStdout(), jsonData)
}

func writeOutput(stdout io.Writer, data []byte) error {
	if outputPath != "" {
		if err := os.WriteFile(outputPath, data, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}
	_, err := fmt.Fprintln(stdout, string(data))
	return err
}

// newLogger creates a logger writing to w with "HH:MM:SS.ms" timestamps.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
		Prefix:          "pyramid",
	})
}
