package config

import (
	"github.com/kelseyhightower/envconfig"
)

// Config carries the environment configuration shared by the consumers.
type Config struct {
	Environment         string `envconfig:"ENVIRONMENT" default:"production"`
	ImagesTableName     string `envconfig:"IMAGES_TABLE_NAME"`
	SESRegion           string `envconfig:"SES_REGION" default:"eu-west-1"`
	SESEmailTo          string `envconfig:"SES_EMAIL_TO"`
	SESEmailFrom        string `envconfig:"SES_EMAIL_FROM"`
	ValidateContentType bool   `envconfig:"VALIDATE_CONTENT_TYPE" default:"false"`
}

// Load reads the configuration from the environment.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// MailConfigured reports whether both notification addresses are set.
func (c *Config) MailConfigured() bool {
	return c.SESEmailTo != "" && c.SESEmailFrom != ""
}
