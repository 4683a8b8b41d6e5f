package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleConfig = `
width: 640
height: 480
x:
  column: day
series:
  - name: revenue
    column: rev
    styles:
      - {name: stroke, value: "#DB7D33"}
      - {name: stroke-width, value: "3"}
legend: {x: 400, y: 40}
grid: {minor_x: 0, minor_y: 1}
`

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	cfg, err := loadConfig(writeTemp(t, "chart.yaml", sampleConfig))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Width != 640 || cfg.Height != 480 {
		t.Errorf("size %vx%v, want 640x480", cfg.Width, cfg.Height)
	}
	if cfg.X.Column != "day" || cfg.X.Layout != "2006-01-02" {
		t.Errorf("x config %+v, want column day with default layout", cfg.X)
	}
	if len(cfg.Series) != 1 || len(cfg.Series[0].Styles) != 2 {
		t.Fatalf("series config %+v", cfg.Series)
	}
	if cfg.Series[0].Styles[0].Name != "stroke" {
		t.Error("style order not preserved")
	}
}

func TestLoadConfigRejectsIncomplete(t *testing.T) {
	if _, err := loadConfig(writeTemp(t, "c.yaml", "width: 100\nseries: [{column: a}]")); err == nil {
		t.Error("missing x.column should fail")
	}
	if _, err := loadConfig(writeTemp(t, "c.yaml", "x: {column: day}")); err == nil {
		t.Error("missing series should fail")
	}
}

func TestBuildChart(t *testing.T) {
	cfg, err := loadConfig(writeTemp(t, "chart.yaml", sampleConfig))
	if err != nil {
		t.Fatal(err)
	}
	columns := map[string][]string{
		"day": {"1", "2", "3", "4"},
		"rev": {"100", "250", "180", "400"},
	}
	chart, err := cfg.buildChart(columns)
	if err != nil {
		t.Fatal(err)
	}
	names := chart.SeriesNames()
	if len(names) != 1 || names[0] != "revenue" {
		t.Fatalf("series names %v, want [revenue]", names)
	}
	if v, _ := chart.Series("revenue").Styles.Get("stroke"); v != "#DB7D33" {
		t.Errorf("configured stroke %q, want #DB7D33", v)
	}
	if chart.Legend == nil {
		t.Error("legend config was not applied")
	}
	if len(chart.XAxis.GridLines) == 0 || len(chart.YAxis.GridLines) == 0 {
		t.Error("grid config was not applied")
	}

	doc := chart.Render()
	if !strings.HasPrefix(doc, `<svg viewBox="0 0 640 480"`) {
		t.Errorf("unexpected header: %q", strings.SplitN(doc, "\n", 2)[0])
	}
}

func TestBuildChartDateAxis(t *testing.T) {
	cfg, err := loadConfig(writeTemp(t, "chart.yaml", `
x: {column: day, type: date}
series: [{column: rev}]
`))
	if err != nil {
		t.Fatal(err)
	}
	columns := map[string][]string{
		"day": {"2024-01-15", "2024-02-15", "2024-03-15"},
		"rev": {"10", "30", "20"},
	}
	chart, err := cfg.buildChart(columns)
	if err != nil {
		t.Fatal(err)
	}
	if !chart.XAxis.Limits.IsTime() {
		t.Error("date axis expected calendar limits")
	}
	// an unnamed series falls back to its column name
	if chart.Series("rev") == nil {
		t.Error("series not stored under its column name")
	}
}

func TestReadColumns(t *testing.T) {
	path := writeTemp(t, "data.csv", "day,rev\n1,100\n2,250\n")
	columns, err := readColumns(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(columns["day"]) != 2 || columns["rev"][1] != "250" {
		t.Errorf("columns %v", columns)
	}

	if _, err := readColumns(writeTemp(t, "empty.csv", "day,rev\n")); err == nil {
		t.Error("header-only file should fail")
	}
}
