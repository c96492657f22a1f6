package models

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

type Config struct {
	Capacity       int      `mapstructure:"capacity"`
	MenuFile       string   `mapstructure:"menu_file"`
	SeedDishes     int      `mapstructure:"seed_dishes"`
	OutputPath     string   `mapstructure:"output_file_path"`
	ShowProgress   bool     `mapstructure:"show_progress"`
	Accommodations []string `mapstructure:"accommodations"`
}

// LoadConfig initializes and reads the configuration using Viper
func LoadConfig(cfgFile string) (*Config, error) {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Default config location
		viper.AddConfigPath(".")
		viper.SetConfigName("kitchenboard")
		viper.SetConfigType("yaml")
	}

	viper.AutomaticEnv() // Read in environment variables that match

	viper.SetDefault("capacity", 200)
	viper.SetDefault("show_progress", true)

	if err := viper.ReadInConfig(); err != nil {
		// A config file is optional unless one was named explicitly.
		if cfgFile != "" {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	decoderConfigOption := viper.DecoderConfigOption(func(config *mapstructure.DecoderConfig) {
		config.DecodeHook = mapstructure.ComposeDecodeHookFunc(
			config.DecodeHook,
			mapstructure.StringToSliceHookFunc(","),
		)
	})
	if err := viper.Unmarshal(&config, decoderConfigOption); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %w", err)
	}

	return &config, nil
}

// DietaryRequest builds a request from the configured accommodation names.
// Unknown names are reported rather than silently ignored.
func (cfg *Config) DietaryRequest() (DietaryRequest, error) {
	var request DietaryRequest
	for _, name := range cfg.Accommodations {
		switch name {
		case "vegetarian":
			request.Vegetarian = true
		case "vegan":
			request.Vegan = true
		case "gluten_free":
			request.GlutenFree = true
		case "nut_free":
			request.NutFree = true
		case "low_sodium":
			request.LowSodium = true
		case "low_sugar":
			request.LowSugar = true
		default:
			return request, fmt.Errorf("unknown accommodation %q", name)
		}
	}
	return request, nil
}
