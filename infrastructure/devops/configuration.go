package devops

import (
	"context"
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
)

type EzygoEntry struct {
	Endpoint string `yaml:"endpoint"`
	Token    string `yaml:"token"`
}

type SyncEntry struct {
	// Cutoff is the morning/afternoon boundary, e.g. "13:00".
	Cutoff string `yaml:"cutoff"`
}

type Config struct {
	DSN       string     `yaml:"dsn"`
	JwtSecret string     `yaml:"jwt_secret"` // base64
	Ezygo     EzygoEntry `yaml:"ezygo"`
	Sync      SyncEntry  `yaml:"sync"`
}

var (
	once    sync.Once
	cfg     *Config
	loadErr error
)

// LoadConfig reads the yaml config from CAMPUS_CONFIG (a local file
// path) when set, otherwise from the "campus-sync" SSM parameter.
func LoadConfig(ctx context.Context) (*Config, error) {
	once.Do(func() {
		raw, err := readRaw(ctx)
		if err != nil {
			loadErr = err
			return
		}

		var parsed Config
		if err := yaml.Unmarshal(raw, &parsed); err != nil {
			loadErr = fmt.Errorf("unmarshal yaml: %w", err)
			return
		}

		cfg = &parsed
	})

	return cfg, loadErr
}

func readRaw(ctx context.Context) ([]byte, error) {
	if path := os.Getenv("CAMPUS_CONFIG"); path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		return raw, nil
	}

	paramName := "campus-sync"

	awsCfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := ssm.NewFromConfig(awsCfg)

	out, err := client.GetParameter(ctx, &ssm.GetParameterInput{
		Name:           aws.String(paramName),
		WithDecryption: aws.Bool(true),
	})
	if err != nil {
		return nil, fmt.Errorf("get parameter: %w", err)
	}

	return []byte(*out.Parameter.Value), nil
}
