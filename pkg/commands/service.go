package commands

import (
	"os"

	"tableflip.dev/chrono/pkg/app"
	"tableflip.dev/chrono/pkg/logging"
	"tableflip.dev/chrono/pkg/store"
)

// Logger is shared by every command; its level follows the loaded config.
var Logger = logging.New(os.Stderr, "")

func loadConfig() (store.Config, error) {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, err
	}
	Logger.SetLevel(logging.ParseLevel(cfg.LogLevel()))
	return cfg, nil
}

func openService() (*app.Service, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	Logger.Debug("opening store", "path", cfg.BasePath(), "backend", cfg.Backend())
	return app.Open(cfg, Logger)
}

func withService(fn func(svc *app.Service) error) error {
	svc, err := openService()
	if err != nil {
		return err
	}
	defer func() {
		if err := svc.Close(); err != nil {
			Logger.Warn("closing store", "err", err)
		}
	}()
	return fn(svc)
}
