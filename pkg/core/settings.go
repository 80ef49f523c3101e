package core

// Settings mirrors punkt3_config.json: directory roots and visualization defaults.
type Settings struct {
	Paths    PathSettings    `json:"PATHS" mapstructure:"PATHS"`
	Defaults DefaultSettings `json:"DEFAULTS" mapstructure:"DEFAULTS"`
}

// PathSettings holds the directory roots used by the configurator.
type PathSettings struct {
	DataDir      string `json:"data_dir" mapstructure:"data_dir"`           // upstream (Point 2) artifacts
	OutputDir    string `json:"output_dir" mapstructure:"output_dir"`       // downstream staging for Point 4
	ScriptsDir   string `json:"scripts_dir" mapstructure:"scripts_dir"`     // generated analysis scripts
	ChartsDir    string `json:"charts_dir" mapstructure:"charts_dir"`       // exported chart files
	ProfilesDB   string `json:"profiles_db" mapstructure:"profiles_db"`     // parameter profile store
	PortfolioDir string `json:"portfolio_dir" mapstructure:"portfolio_dir"` // portfolio parameter JSON files
}

// DefaultSettings holds visualization defaults offered to a new snapshot.
type DefaultSettings struct {
	VisualizationMode string `json:"visualization_mode" mapstructure:"visualization_mode"`
	Period            string `json:"period" mapstructure:"period"`
	Quality           string `json:"quality" mapstructure:"quality"`
	Theme             string `json:"theme" mapstructure:"theme"`
	Segmented         bool   `json:"segmented" mapstructure:"segmented"`
	CandlesPerChart   int    `json:"candles_per_chart" mapstructure:"candles_per_chart"`
	Timezone          string `json:"timezone" mapstructure:"timezone"`
}
