package app

import (
	"context"
	"fmt"
	"time"

	"finquest/internal/config"
	"finquest/internal/database"
	"finquest/internal/database/migration"
	dbpostgres "finquest/internal/database/postgres"
	"finquest/internal/database/seeder"
	"finquest/internal/infrastructure/cache"
	"finquest/internal/ws"

	"github.com/sirupsen/logrus"
)

type Container struct {
	Config config.Config
	DB     database.DB
	Cache  *cache.Redis
	Hub    *ws.Hub
	Logger *logrus.Logger
}

func NewContainer(cfg config.Config, logger *logrus.Logger) (*Container, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	mig := migration.Runner{Dir: cfg.Database.MigrationsDir}
	if err := mig.Run(ctx, db.SQLDB()); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	seeds := seeder.Runner{Seeders: []seeder.Seeder{
		seeder.QuizSeeder{},
		seeder.LevelSeeder{},
	}}
	if err := seeds.Run(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("run seeders: %w", err)
	}

	return &Container{
		Config: cfg,
		DB:     db,
		Cache:  cache.NewRedis(cfg.Redis, logger),
		Hub:    ws.NewHub(logger),
		Logger: logger,
	}, nil
}

func (c *Container) Close() error {
	if c == nil || c.DB == nil {
		return nil
	}
	return c.DB.Close()
}
