package config

import (
	"fmt"
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// Mapstructure tags are used to map environment variables and config file keys.
type Config struct {
	// Server Configuration
	ServerAddress  string `mapstructure:"SERVER_ADDRESS"`   // e.g., ":8080"
	AppEnv         string `mapstructure:"APP_ENV"`          // "production" switches gin to release mode
	MaxUploadBytes int64  `mapstructure:"MAX_UPLOAD_BYTES"` // upper bound for the multipart upload

	// AI Configuration
	LLMAPIKey  string `mapstructure:"LLM_API_KEY"`  // credential for the model provider
	LLMBaseURL string `mapstructure:"LLM_BASE_URL"` // OpenAI-compatible endpoint
	LLMModel   string `mapstructure:"LLM_MODEL"`

	// Extraction / Output
	MaxExtractedChars int    `mapstructure:"MAX_EXTRACTED_CHARS"` // 0 forwards extracted text uncut
	TempDir           string `mapstructure:"TEMP_DIR"`            // staging dir for DOCX uploads, "" = OS default
	OutputDir         string `mapstructure:"OUTPUT_DIR"`          // where index.html, style.css, script.js and zipfile.zip go
}

var defaults = map[string]any{
	"SERVER_ADDRESS":      ":8080",
	"APP_ENV":             "development",
	"MAX_UPLOAD_BYTES":    32 << 20,
	"LLM_API_KEY":         "",
	"LLM_BASE_URL":        "https://generativelanguage.googleapis.com/v1beta/openai",
	"LLM_MODEL":           "gemini-2.5-flash",
	"MAX_EXTRACTED_CHARS": 0,
	"TEMP_DIR":            "",
	"OUTPUT_DIR":          ".",
}

// LoadConfig reads configuration from file and environment variables.
func LoadConfig(path string) (config Config, err error) {
	v := viper.New()
	v.AddConfigPath(path)     // Path to look for the config file in
	v.SetConfigName("config") // Name of config file (without extension)
	v.SetConfigType("yaml")   // REQUIRED if the config file does not have the extension in the name

	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv() // Read environment variables that match keys

	// the credential historically lived under "gemini" in .env files
	if err := v.BindEnv("LLM_API_KEY", "LLM_API_KEY", "GEMINI_API_KEY", "gemini"); err != nil {
		return Config{}, fmt.Errorf("error binding LLM_API_KEY: %w", err)
	}

	err = v.ReadInConfig()
	if err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("Config file ('config.yaml') not found in specified path, relying solely on environment variables.")
		} else {
			return Config{}, fmt.Errorf("error reading config file: %w", err)
		}
	} else {
		log.Printf("Using configuration file: %s", v.ConfigFileUsed())
	}

	err = v.Unmarshal(&config)
	if err != nil {
		return Config{}, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	if config.LLMAPIKey == "" {
		log.Println("WARN: LLM_API_KEY is not set. Generation requests will be rejected by the provider.")
	}
	if config.MaxUploadBytes <= 0 {
		return Config{}, fmt.Errorf("MAX_UPLOAD_BYTES must be positive, got %d", config.MaxUploadBytes)
	}
	if config.MaxExtractedChars < 0 {
		return Config{}, fmt.Errorf("MAX_EXTRACTED_CHARS must not be negative, got %d", config.MaxExtractedChars)
	}

	return
}
