package main

import (
	"io/ioutil"
	"os"
	"strings"

	"github.com/coreos/pkg/capnslog"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/ztrue/tracerr"
	"gopkg.in/yaml.v2"
)

const manifestName = "haumea.yaml"

type haumeaModule struct {
	Package string `yaml:"package" validate:"required,excludesall=/"`
	Output  string `yaml:"output,omitempty"`
	Sources string `yaml:"sources,omitempty"`
}

var validate = validator.New()

func writeManifest(path string, doc haumeaModule) error {
	if err := validate.Struct(doc); err != nil {
		return tracerr.Wrap(err)
	}

	out, err := yaml.Marshal(doc)
	if err != nil {
		return tracerr.Wrap(err)
	}

	return tracerr.Wrap(ioutil.WriteFile(path, out, 0644))
}

func readManifest(path string) (haumeaModule, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return haumeaModule{}, tracerr.Wrap(err)
	}

	var doc haumeaModule
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return haumeaModule{}, tracerr.Wrap(err)
	}
	if err := validate.Struct(doc); err != nil {
		return haumeaModule{}, tracerr.Wrap(err)
	}

	if doc.Output == "" {
		doc.Output = doc.Package
	}
	if doc.Sources == "" {
		doc.Sources = "*.hau"
	}

	return doc, nil
}

type environment struct {
	CC       string
	LogLevel capnslog.LogLevel
}

var env environment

// loadEnvironment reads envfile when it exists and then the HAUMEA_*
// variables.
func loadEnvironment(envfile string) (environment, error) {
	if err := godotenv.Load(envfile); err != nil && !os.IsNotExist(err) {
		return environment{}, tracerr.Wrap(err)
	}

	level, err := capnslog.ParseLevel(strings.ToUpper(getEnv("HAUMEA_LOG_LEVEL", "INFO")))
	if err != nil {
		return environment{}, tracerr.Wrap(err)
	}

	return environment{
		CC:       getEnv("HAUMEA_CC", "cc"),
		LogLevel: level,
	}, nil
}

func getEnv(key string, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func setupLogging(level capnslog.LogLevel) {
	capnslog.SetFormatter(capnslog.NewPrettyFormatter(os.Stderr, level >= capnslog.DEBUG))
	capnslog.SetGlobalLogLevel(level)
}
