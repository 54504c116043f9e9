// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// ToolsConfig holds the names of the external MUMmer binaries. They are
// resolved against PATH unless set to absolute paths.
type ToolsConfig struct {
	// the nucmer aligner executable
	Nucmer string `mapstructure:"nucmer"`

	// the show-tiling executable
	ShowTiling string `mapstructure:"show-tiling"`
}

// Config is the root-level settings struct and is a mix of settings
// available in a settings file and those from the command line
type Config struct {
	// directory to create temporary files in ("" = system default)
	TmpDir string `mapstructure:"tmp-dir"`

	// whether to leave temporary files behind after a run
	KeepTmpFiles bool `mapstructure:"keep-tmp-files"`

	// external tool executables
	Tools ToolsConfig `mapstructure:"tools"`
}

// New returns a new Config struct populated by Viper settings
// and/or command line arguments
func New() Config {
	viper.SetDefault("tools.nucmer", "nucmer")
	viper.SetDefault("tools.show-tiling", "show-tiling")

	var c Config
	if err := viper.Unmarshal(&c); err != nil {
		log.Fatalf("unable to decode settings into struct, %v", err)
	}

	return c
}
