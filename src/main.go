package main

import (
	"context"
	"fmt"
	"os"

	"github.com/BielosX/wombat/pokedex/src/config"
	"github.com/BielosX/wombat/pokedex/src/pokeapi"
	"github.com/BielosX/wombat/pokedex/src/s3"
	"github.com/aws/aws-lambda-go/lambda"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var sugar *zap.SugaredLogger
var client *pokeapi.Client
var s3Client *s3.Client
var exportConfig config.ExportConfig

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	return cfg.Build(zap.AddStacktrace(zap.FatalLevel))
}

func syncLogger() {
	_ = sugar.Sync()
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logger, err := newLogger(cfg.Log.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create logger: %s\n", err)
		os.Exit(1)
	}
	sugar = logger.Sugar()
	defer syncLogger()
	client = pokeapi.NewClient(sugar,
		pokeapi.WithBaseUrl(cfg.PokeAPI.BaseUrl),
		pokeapi.WithTimeout(cfg.PokeAPI.Timeout))
	switch cfg.Handler {
	case config.HandlerQuery:
		lambda.Start(handleQuery)
	case config.HandlerExport:
		var opts []func(*awsconfig.LoadOptions) error
		if cfg.Export.Region != "" {
			opts = append(opts, awsconfig.WithRegion(cfg.Export.Region))
		}
		awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(), opts...)
		if err != nil {
			sugar.Fatalf("Failed to load SDK config: %s", err)
		}
		s3Client = s3.NewClient(awsCfg)
		exportConfig = cfg.Export
		lambda.Start(handleExport)
	default:
		sugar.Fatalf("Unknown Handler %s", cfg.Handler)
	}
}
