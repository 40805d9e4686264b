package cmd

import (
	"errors"
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	app = "hh-scorer"
)

type Config struct {
	// Taxonomy points to a YAML file overlaid on the embedded scoring configuration.
	Taxonomy      string            `mapstructure:"taxonomy"`
	Embedding     *EmbeddingConfig  `mapstructure:"embedding"`
	Workers       int               `mapstructure:"workers"`
	Criterion     string            `mapstructure:"criterion"`
	MetricsFile   string            `mapstructure:"metrics-file"`
	DisabledRules map[string]string `mapstructure:"disabled-rules"`
}

type EmbeddingConfig struct {
	Provider   string `mapstructure:"provider"`
	Model      string `mapstructure:"model"`
	Dimension  int    `mapstructure:"dimension"`
	CacheDir   string `mapstructure:"cache-dir"`
	CacheSize  int    `mapstructure:"cache-size"`
	APIKeyFile string `mapstructure:"api-key-file"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "hh-scorer scores and ranks candidates against job openings",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	if err := viper.BindEnv("embedding.api-key-file", "HH_SCORER_GEMINI_API_KEY_FILE"); err != nil {
		log.Fatalf("binding HH_SCORER_GEMINI_API_KEY_FILE environment variable: %v", err)
	}

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is hh-scorer.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app)
		viper.SetConfigType("yaml")
	}

	// The config file is optional, built-in defaults cover every setting.
	// A file that exists but cannot be parsed is fatal.
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return
		}
		log.Fatal(err)
	}
}

func getConfig() (*Config, error) {
	config := &Config{Embedding: &EmbeddingConfig{}}
	err := viper.Unmarshal(config)
	if err != nil {
		return config, err
	}
	if config.Embedding == nil {
		config.Embedding = &EmbeddingConfig{}
	}

	return config, nil
}
