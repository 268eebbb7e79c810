package cmd

import (
	"fmt"

	"github.com/LavenderBridge/problemset/internal/catalog"
	"github.com/LavenderBridge/problemset/internal/config"
	"github.com/LavenderBridge/problemset/internal/db"
	"github.com/LavenderBridge/problemset/internal/models"
	"github.com/LavenderBridge/problemset/internal/userstate"
	"github.com/sirupsen/logrus"
)

// app bundles everything a command needs: configuration, the problem
// catalog and the user's saved state.
type app struct {
	cfg     *config.Config
	log     *logrus.Logger
	catalog *catalog.Catalog
	store   *db.Store
	state   *userstate.Store
}

func openApp() (*app, error) {
	path := configPath
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if dbPath != "" {
		cfg.Storage.Path = dbPath
	}
	if catalogPath != "" {
		cfg.Catalog.Path = catalogPath
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}

	log, err := cfg.Log.Logger()
	if err != nil {
		return nil, err
	}

	var problems *catalog.Catalog
	if cfg.Catalog.Path != "" {
		problems, err = catalog.LoadFile(cfg.Catalog.Path)
	} else {
		problems, err = catalog.Default()
	}
	if err != nil {
		return nil, err
	}
	log.WithField("problems", problems.Len()).Debug("catalog loaded")

	store, err := db.NewStore(cfg.Storage.Path)
	if err != nil {
		return nil, fmt.Errorf("database error: %w", err)
	}

	return &app{
		cfg:     cfg,
		log:     log,
		catalog: problems,
		store:   store,
		state:   userstate.Load(store, log),
	}, nil
}

func (a *app) Close() error {
	return a.store.Close()
}

// problem resolves id or returns the not-found message pointing back at the list.
func (a *app) problem(id int) (models.Problem, error) {
	p, ok := a.catalog.ByID(id)
	if !ok {
		return models.Problem{}, fmt.Errorf("problem %d not found. Run `problemset list` to see all problems", id)
	}
	return p, nil
}
