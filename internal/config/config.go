package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the site configuration, loaded once per run and read-only
// afterwards.
type Config struct {
	Title       string        `yaml:"title"`
	Tagline     string        `yaml:"tagline,omitempty"`
	Footer      string        `yaml:"footer,omitempty"`
	Socials     []Social      `yaml:"socials,omitempty"`
	Stylesheets []string      `yaml:"stylesheets,omitempty"`
	Content     ContentConfig `yaml:"content,omitempty"`
	Output      OutputConfig  `yaml:"output,omitempty"`
}

// Social is a single social-network link rendered in the site navigation.
type Social struct {
	Name     string `yaml:"name"`
	IconName string `yaml:"icon_name"`
	URL      string `yaml:"url"`
}

// ContentConfig holds the glob patterns for the two content trees.
type ContentConfig struct {
	Articles string `yaml:"articles,omitempty"` // Dated article sources
	Pages    string `yaml:"pages,omitempty"`    // Undated standalone page sources
}

// OutputConfig represents output configuration.
type OutputConfig struct {
	Directory string `yaml:"directory,omitempty"`
}

// Load loads configuration from the specified file.
func Load(configPath string) (*Config, error) {
	// Load .env file if it exists
	if err := loadEnvFile(); err != nil {
		fmt.Fprintf(os.Stderr, "Note: .env file not found or couldn't be loaded: %v\n", err)
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("configuration file not found: %s", configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Expand environment variables in the YAML content
	expandedData := os.ExpandEnv(string(data))

	var config Config
	if err := yaml.Unmarshal([]byte(expandedData), &config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	applyDefaults(&config)

	if err := validate(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

func applyDefaults(config *Config) {
	if config.Content.Articles == "" {
		config.Content.Articles = "content/articles/**/*.md"
	}
	if config.Content.Pages == "" {
		config.Content.Pages = "content/pages/**/*.md"
	}
	if config.Output.Directory == "" {
		config.Output.Directory = "./site"
	}
}

func validate(config *Config) error {
	if config.Title == "" {
		return fmt.Errorf("config: title is required")
	}
	for i, social := range config.Socials {
		if social.Name == "" || social.URL == "" {
			return fmt.Errorf("config: socials[%d] requires both name and url", i)
		}
	}
	return nil
}
