// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"log"

	"github.com/spf13/viper"
)

// WindowConfig is settings for window extraction
type WindowConfig struct {
	// the fixed length every extracted window is padded to
	Length int `mapstructure:"length"`

	// bases added on each side of a feature to form its response region
	Flank int `mapstructure:"flank"`
}

// PredictConfig is settings for the prediction-correctness filter
type PredictConfig struct {
	// positives must score above this to count as correct
	PosThreshold float64 `mapstructure:"pos-threshold"`

	// negatives must score below this to count as correct;
	// negative values disable the negative check
	NegThreshold float64 `mapstructure:"neg-threshold"`

	// the last of the leading non-label columns in a label table;
	// task t's labels sit in column t + key column + 1
	LabelKeyColumn int `mapstructure:"label-key-column"`
}

// Config is the root-level settings struct and is a mix of settings
// available in settings.yaml and those available from the command line
type Config struct {
	// whether to log progress to stderr
	Verbose bool

	// window extraction settings
	Window WindowConfig

	// prediction filter settings
	Predict PredictConfig
}

// New returns a new Config struct populated by Viper settings (either
// from the local settings.yaml) and/or command line arguments
func New() *Config {
	setDefaults()

	var c Config
	if err := viper.Unmarshal(&c); err != nil {
		log.Fatalf("unable to decode settings into struct, %v", err)
	}

	return &c
}

func setDefaults() {
	viper.SetDefault("window.length", 1000)
	viper.SetDefault("window.flank", 15)
	viper.SetDefault("predict.pos-threshold", 0.5)
	viper.SetDefault("predict.neg-threshold", -1)
	viper.SetDefault("predict.label-key-column", 3)
}
