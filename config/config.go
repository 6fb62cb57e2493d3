package config

import (
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/jinzhu/configor"
)

type Config struct {
	Google GoogleConfig `yaml:"google"`
	HTTP   HTTPConfig   `yaml:"http"`
	Ytdlp  YtdlpConfig  `yaml:"ytdlp"`

	Logger LogConfig `yaml:"logger"`
}

type GoogleConfig struct {
	APIKey  string `yaml:"apiKey"`
	BaseURL string `yaml:"baseURL" default:"https://www.googleapis.com/youtube/v3" validate:"required,url"`
}

type HTTPConfig struct {
	TimeoutSeconds int    `yaml:"timeoutSeconds" default:"60" validate:"gte=1"`
	UserAgent      string `yaml:"userAgent" default:"go-ytstats"`
}

type YtdlpConfig struct {
	Path           string   `yaml:"path" default:"yt-dlp" validate:"required"`
	TimeoutSeconds int      `yaml:"timeoutSeconds" default:"120" validate:"gte=1"`
	ExtraArgs      []string `yaml:"extraArgs"`
}

type LogConfig struct {
	LogPath string `yaml:"logPath"`
	Level   string `yaml:"level" default:"info" validate:"oneof=debug info warn error"`
}

var validate = validator.New()

// LoadConfig fills c from the YAML file at path. An empty path loads only the defaults.
func (c *Config) LoadConfig(path string) error {
	var files []string
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return err
		}
		files = append(files, path)
	}

	if err := configor.Load(c, files...); err != nil {
		return err
	}

	return c.Validate()
}

func (c *Config) Validate() error {
	return validate.Struct(c)
}
