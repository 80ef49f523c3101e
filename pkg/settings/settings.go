// Package settings reads punkt3_config.json, the configurator's directory and
// visualization defaults.
package settings

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/raykavin/vbtforge/pkg/core"
	"github.com/raykavin/vbtforge/pkg/plot"
	"github.com/raykavin/vbtforge/pkg/snapshot"
	"github.com/spf13/viper"
)

// FileName is the settings file looked up next to the working directory.
const FileName = "punkt3_config.json"

// Default returns the settings used when no file is present.
func Default() core.Settings {
	return core.Settings{
		Paths: core.PathSettings{
			DataDir:      "data/punkt2",
			OutputDir:    "data/punkt4",
			ScriptsDir:   "scripts",
			ChartsDir:    "charts",
			ProfilesDB:   "vbtforge.db",
			PortfolioDir: "data/portfolio",
		},
		Defaults: core.DefaultSettings{
			VisualizationMode: "interactive",
			Period:            "1 week",
			Quality:           "high",
			Theme:             "plotly_dark",
			CandlesPerChart:   1000,
			Timezone:          "America/New_York",
		},
	}
}

func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("PATHS.data_dir", d.Paths.DataDir)
	v.SetDefault("PATHS.output_dir", d.Paths.OutputDir)
	v.SetDefault("PATHS.scripts_dir", d.Paths.ScriptsDir)
	v.SetDefault("PATHS.charts_dir", d.Paths.ChartsDir)
	v.SetDefault("PATHS.profiles_db", d.Paths.ProfilesDB)
	v.SetDefault("PATHS.portfolio_dir", d.Paths.PortfolioDir)
	v.SetDefault("DEFAULTS.visualization_mode", d.Defaults.VisualizationMode)
	v.SetDefault("DEFAULTS.period", d.Defaults.Period)
	v.SetDefault("DEFAULTS.quality", d.Defaults.Quality)
	v.SetDefault("DEFAULTS.theme", d.Defaults.Theme)
	v.SetDefault("DEFAULTS.segmented", d.Defaults.Segmented)
	v.SetDefault("DEFAULTS.candles_per_chart", d.Defaults.CandlesPerChart)
	v.SetDefault("DEFAULTS.timezone", d.Defaults.Timezone)
}

// Load reads the settings file at path. A missing file yields the defaults;
// keys absent from the file keep their default value. An empty path looks
// for FileName in the working directory.
func Load(path string) (core.Settings, error) {
	if path == "" {
		path = FileName
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return core.Settings{}, fmt.Errorf("read %s: %w", path, err)
		}
	}

	var s core.Settings
	if err := v.Unmarshal(&s); err != nil {
		return core.Settings{}, fmt.Errorf("decode %s: %w", path, err)
	}
	return s, nil
}

// Resolve makes the relative directories in s relative to base.
func Resolve(s core.Settings, base string) core.Settings {
	join := func(p string) string {
		if p == "" || filepath.IsAbs(p) {
			return p
		}
		return filepath.Join(base, p)
	}
	s.Paths.DataDir = join(s.Paths.DataDir)
	s.Paths.OutputDir = join(s.Paths.OutputDir)
	s.Paths.ScriptsDir = join(s.Paths.ScriptsDir)
	s.Paths.ChartsDir = join(s.Paths.ChartsDir)
	s.Paths.ProfilesDB = join(s.Paths.ProfilesDB)
	s.Paths.PortfolioDir = join(s.Paths.PortfolioDir)
	return s
}

// Apply seeds a snapshot's visualization and output defaults from s.
func Apply(s core.Settings, snap *snapshot.Snapshot) error {
	d := s.Defaults
	if d.VisualizationMode != "" {
		mode, err := plot.ParseMode(d.VisualizationMode)
		if err != nil {
			return fmt.Errorf("DEFAULTS.visualization_mode: %w", err)
		}
		snap.Visualization.Mode = mode
	}
	if d.Period != "" {
		snap.Visualization.Period = d.Period
	}
	if d.Quality != "" {
		snap.Visualization.Quality = d.Quality
	}
	if d.Theme != "" {
		snap.Visualization.Theme = d.Theme
	}
	snap.Visualization.Segmented = d.Segmented
	if d.CandlesPerChart > 0 {
		snap.Visualization.CandlesPerChart = d.CandlesPerChart
	}
	if s.Paths.OutputDir != "" {
		snap.Save.OutputDir = s.Paths.OutputDir
	}
	if s.Paths.ChartsDir != "" {
		snap.Save.ChartsDir = s.Paths.ChartsDir
	}
	return nil
}
