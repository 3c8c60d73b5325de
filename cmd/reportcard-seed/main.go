package main

import (
	"flag"
	"log"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/reportcard/internal/builder"
	"github.com/noah-isme/reportcard/internal/repository"
	"github.com/noah-isme/reportcard/pkg/config"
	"github.com/noah-isme/reportcard/pkg/logger"
)

func main() {
	force := flag.Bool("force", false, "overwrite an existing record")
	name := flag.String("name", "Sample Student", "owner name of the sample record")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg.Env, cfg.Log)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	store := repository.NewRecordRepository(cfg.Storage.DataFile, logr)
	if store.Exists() && !*force {
		logr.Info("record already exists, use -force to overwrite", zap.String("path", store.Path()))
		return
	}

	user, err := builder.SampleUser(*name, time.Now().UTC())
	if err != nil {
		logr.Fatal("failed to build sample record", zap.Error(err))
	}
	if err := store.Serialize(user); err != nil {
		logr.Fatal("failed to write sample record", zap.Error(err))
	}

	loaded, err := store.Deserialize()
	if err != nil {
		logr.Fatal("failed to read back sample record", zap.Error(err))
	}
	logr.Info("sample record written",
		zap.String("path", store.Path()),
		zap.String("name", loaded.Name),
		zap.Int("terms", len(loaded.Terms)))
}
