// Command svgchart renders line charts from CSV data, driven by a
// YAML chart definition. Output format follows the file extension:
// .svg, .png or .pdf.
package main

import (
	"encoding/csv"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/arowley-ai/go-svg-chart/svgchart"
	"github.com/arowley-ai/go-svg-chart/svgpdf"
	"github.com/arowley-ai/go-svg-chart/svgraster"
)

var (
	configPath string
	dataPath   string
	outPath    string
	verbose    bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "svgchart",
		Short:         "Render line charts from CSV data",
		RunE:          run,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "chart.yaml", "Chart definition file")
	rootCmd.Flags().StringVarP(&dataPath, "data", "d", "", "CSV data file (required)")
	rootCmd.Flags().StringVarP(&outPath, "out", "o", "chart.svg", "Output file (.svg, .png or .pdf)")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Debug logging")
	_ = rootCmd.MarkFlagRequired("data")

	if err := rootCmd.Execute(); err != nil {
		log := logger()
		log.Error().Err(err).Msg("render failed")
		os.Exit(1)
	}
}

func logger() zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()
}

func run(cmd *cobra.Command, args []string) error {
	log := logger()

	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	columns, err := readColumns(dataPath)
	if err != nil {
		return err
	}
	log.Debug().Int("columns", len(columns)).Str("data", dataPath).Msg("data loaded")

	chart, err := cfg.buildChart(columns)
	if err != nil {
		return err
	}

	switch ext := filepath.Ext(outPath); ext {
	case ".svg":
		doc := chart.Render()
		if err := svgchart.Verify(strings.NewReader(doc)); err != nil {
			return fmt.Errorf("rendered document failed verification: %w", err)
		}
		if err := os.WriteFile(outPath, []byte(doc), 0644); err != nil {
			return err
		}
	case ".png":
		f, err := os.Create(outPath)
		if err != nil {
			return err
		}
		defer f.Close()
		if err := png.Encode(f, svgraster.RasterChart(chart)); err != nil {
			return err
		}
	case ".pdf":
		if err := svgpdf.RenderChartToFile(chart, outPath); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unsupported output extension %q", ext)
	}

	log.Info().Str("out", outPath).Int("series", len(chart.SeriesNames())).Msg("chart written")
	return nil
}

// readColumns loads a CSV file with a header row into per-column
// string slices.
func readColumns(path string) (map[string][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("%s: need a header row and at least one data row", path)
	}
	header := records[0]
	columns := make(map[string][]string, len(header))
	for _, row := range records[1:] {
		for i, cell := range row {
			if i < len(header) {
				columns[header[i]] = append(columns[header[i]], cell)
			}
		}
	}
	return columns, nil
}

func parseNumbers(raw []string) ([]float64, error) {
	out := make([]float64, len(raw))
	for i, v := range raw {
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		out[i] = f
	}
	return out, nil
}
