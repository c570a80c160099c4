package main

import (
	"fmt"

	"github.com/docker/go-units"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

// Config is the decoded localgrammer.toml.
type Config struct {
	Store struct {
		Path       string `mapstructure:"path"`
		UploadsDir string `mapstructure:"uploads_dir"`
	} `mapstructure:"store"`
	Server struct {
		Listen string `mapstructure:"listen"`
		// MaxUploadSize is human readable ("16MB"); the parsed byte
		// count lands in MaxUploadBytes.
		MaxUploadSize  string `mapstructure:"max_upload_size"`
		MaxUploadBytes int64  `mapstructure:"-"`
	} `mapstructure:"server"`
	Log struct {
		Level string `mapstructure:"level"`
	} `mapstructure:"log"`
}

func loadConfig(v *viper.Viper) (Config, error) {
	var config Config
	if err := mapstructure.Decode(v.AllSettings(), &config); err != nil {
		return config, err
	}
	size, err := units.RAMInBytes(config.Server.MaxUploadSize)
	if err != nil {
		return config, fmt.Errorf("bad server.max_upload_size: %w", err)
	}
	config.Server.MaxUploadBytes = size
	return config, nil
}
