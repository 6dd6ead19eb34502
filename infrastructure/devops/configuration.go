package devops

import (
	"context"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
)

// LocationEntry maps one store location to its database schema.
type LocationEntry struct {
	Code   string `yaml:"code"`
	Name   string `yaml:"name"`
	Schema string `yaml:"schema"`
	Host   string `yaml:"host"`
}

type LocationConfig struct {
	Locations []LocationEntry `yaml:"locations"`
}

var (
	once         sync.Once
	locationList []LocationEntry
	loadErr      error
)

// LoadLocationConfig reads the location list from the "locations" SSM
// parameter (yaml). Loaded once per process.
func LoadLocationConfig(ctx context.Context) ([]LocationEntry, error) {
	once.Do(func() {
		paramName := "locations"

		cfg, err := config.LoadDefaultConfig(ctx)
		if err != nil {
			loadErr = fmt.Errorf("load aws config: %w", err)
			return
		}

		client := ssm.NewFromConfig(cfg)

		out, err := client.GetParameter(ctx, &ssm.GetParameterInput{
			Name:           aws.String(paramName),
			WithDecryption: aws.Bool(true),
		})
		if err != nil {
			loadErr = fmt.Errorf("get parameter: %w", err)
			return
		}

		var parsed []LocationEntry
		if err := yaml.Unmarshal([]byte(*out.Parameter.Value), &parsed); err != nil {
			loadErr = fmt.Errorf("unmarshal yaml: %w", err)
			return
		}

		locationList = parsed
	})

	return locationList, loadErr
}
