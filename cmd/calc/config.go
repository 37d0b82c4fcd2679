package main

import (
	"fmt"
	"io/ioutil"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
)

// Config is the calculator's configuration, usually read from a YML file
// and then overridden by command line flags.
type Config struct {
	Debug   bool   `yaml:"debug,omitempty"`
	Logging string `yaml:"logging,omitempty"`
	Prompt  string `yaml:"prompt,omitempty"`
	ShowRPN bool   `yaml:"show-rpn,omitempty"`
}

func DefaultConfig() Config {
	return Config{
		Logging: "info",
		Prompt:  "> ",
	}
}

// ParseConfig reads fileName into cfg. An empty file name keeps cfg as is.
func ParseConfig(fileName string, cfg *Config) error {
	if len(fileName) == 0 {
		return nil // OK
	}

	buf, err := ioutil.ReadFile(fileName)
	if err != nil {
		return fmt.Errorf("failed to read configuration from %q: %s", fileName, err)
	}

	err = yaml.Unmarshal(buf, cfg)
	if err != nil {
		return fmt.Errorf("failed to parse configuration from %q: %s", fileName, err)
	}

	return nil // OK
}

// LogLevel returns the level to log with. Debug mode wins over Logging.
func (cfg Config) LogLevel() (logrus.Level, error) {
	if cfg.Debug {
		return logrus.DebugLevel, nil
	}
	if len(cfg.Logging) == 0 {
		return logrus.InfoLevel, nil
	}

	ll, err := logrus.ParseLevel(cfg.Logging)
	if err != nil {
		return ll, fmt.Errorf("failed to parse level: %s", err)
	}
	return ll, nil
}
