package main

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/arowley-ai/go-svg-chart/svgchart"
)

// Config maps the YAML chart definition file. Only the data source
// columns are required; everything else falls back to the chart
// defaults.
type Config struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`

	Margin struct {
		X float64 `yaml:"x"`
		Y float64 `yaml:"y"`
	} `yaml:"margin"`

	Ticks struct {
		X int `yaml:"x"`
		Y int `yaml:"y"`
	} `yaml:"ticks"`

	X struct {
		Column string `yaml:"column"` // CSV column holding x values
		Type   string `yaml:"type"`   // "number" (default) or "date"
		Layout string `yaml:"layout"` // Go time layout for date parsing, default 2006-01-02
	} `yaml:"x"`

	Series []SeriesConfig `yaml:"series"`

	Legend *struct {
		X          float64 `yaml:"x"`
		Y          float64 `yaml:"y"`
		StepX      float64 `yaml:"step_x"`
		StepY      float64 `yaml:"step_y"`
		LineLength float64 `yaml:"line_length"`
		Gap        float64 `yaml:"gap"`
	} `yaml:"legend"`

	Grid *struct {
		MinorX int `yaml:"minor_x"`
		MinorY int `yaml:"minor_y"`
	} `yaml:"grid"`
}

// SeriesConfig binds one chart series to a CSV column. Styles are a
// list, not a map, so their order survives into the output.
type SeriesConfig struct {
	Name   string       `yaml:"name"`
	Column string       `yaml:"column"`
	Styles []StyleEntry `yaml:"styles"`
}

type StyleEntry struct {
	Name  string `yaml:"name"`
	Value string `yaml:"value"`
}

func loadConfig(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if cfg.X.Column == "" {
		return nil, fmt.Errorf("%s: x.column is required", path)
	}
	if len(cfg.Series) == 0 {
		return nil, fmt.Errorf("%s: at least one series is required", path)
	}
	if cfg.X.Layout == "" {
		cfg.X.Layout = "2006-01-02"
	}
	return &cfg, nil
}

func (cfg *Config) chartOptions() *svgchart.Options {
	return &svgchart.Options{
		Width:     cfg.Width,
		Height:    cfg.Height,
		XMargin:   cfg.Margin.X,
		YMargin:   cfg.Margin.Y,
		XMaxTicks: cfg.Ticks.X,
		YMaxTicks: cfg.Ticks.Y,
	}
}

// buildChart assembles the chart from parsed CSV columns.
func (cfg *Config) buildChart(columns map[string][]string) (*svgchart.Chart, error) {
	xRaw, ok := columns[cfg.X.Column]
	if !ok {
		return nil, fmt.Errorf("data has no column %q", cfg.X.Column)
	}

	var series []svgchart.SeriesData
	for _, sc := range cfg.Series {
		raw, ok := columns[sc.Column]
		if !ok {
			return nil, fmt.Errorf("data has no column %q", sc.Column)
		}
		values, err := parseNumbers(raw)
		if err != nil {
			return nil, fmt.Errorf("column %q: %w", sc.Column, err)
		}
		name := sc.Name
		if name == "" {
			name = sc.Column
		}
		series = append(series, svgchart.SeriesData{Name: name, Values: values})
	}

	var (
		chart *svgchart.Chart
		err   error
	)
	switch cfg.X.Type {
	case "", "number":
		var xs []float64
		xs, err = parseNumbers(xRaw)
		if err != nil {
			return nil, fmt.Errorf("column %q: %w", cfg.X.Column, err)
		}
		chart, err = svgchart.NewLineChart(xs, series, cfg.chartOptions())
	case "date":
		xs := make([]time.Time, len(xRaw))
		for i, v := range xRaw {
			xs[i], err = time.Parse(cfg.X.Layout, v)
			if err != nil {
				return nil, fmt.Errorf("column %q: %w", cfg.X.Column, err)
			}
		}
		chart, err = svgchart.NewTimeLineChart(xs, series, cfg.chartOptions())
	default:
		return nil, fmt.Errorf("unknown x.type %q", cfg.X.Type)
	}
	if err != nil {
		return nil, err
	}

	for _, sc := range cfg.Series {
		name := sc.Name
		if name == "" {
			name = sc.Column
		}
		path := chart.Series(name)
		for _, st := range sc.Styles {
			path.Styles.Set(st.Name, st.Value)
		}
	}
	if cfg.Grid != nil {
		chart.AddGrids(cfg.Grid.MinorX, cfg.Grid.MinorY, nil, nil)
	}
	if cfg.Legend != nil {
		chart.AddLegend(&svgchart.LegendOptions{
			X: cfg.Legend.X, Y: cfg.Legend.Y,
			StepX: cfg.Legend.StepX, StepY: cfg.Legend.StepY,
			LineLength: cfg.Legend.LineLength, Gap: cfg.Legend.Gap,
		})
	}
	return chart, nil
}
