package probe

import (
	"context"
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/Aleph-Alpha/s3connect/v1/s3client"
	"github.com/Aleph-Alpha/s3connect/v1/s3config"
	"github.com/Aleph-Alpha/s3connect/v1/settings"
)

var loadViper = settings.LoadViper

// openDB is replaced in tests.
var openDB = func(dsn string) (*gorm.DB, error) {
	return gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
}

// source layers the viper settings over an optional database snapshot.
func (a *app) source(ctx context.Context) (settings.Source, error) {
	layers := settings.Chain{settings.NewViper(a.viper)}

	if a.opts.dsn == "" {
		return layers, nil
	}

	db, err := openDB(a.opts.dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to settings database: %w", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		defer func() { _ = sqlDB.Close() }()
	}

	snapshot, err := settings.NewSQLLoader(db, a.opts.table).Load(ctx, append(s3config.SettingsKeys(), KeyBucket)...)
	if err != nil {
		return nil, err
	}
	a.log.Debug("loaded settings snapshot", nil, map[string]interface{}{"keys": len(snapshot)})

	return append(layers, snapshot), nil
}

// buildClient resolves the configuration and constructs the client.
func (a *app) buildClient(ctx context.Context) (settings.Source, *s3client.Client, error) {
	src, err := a.source(ctx)
	if err != nil {
		return nil, nil, err
	}

	var overrides *s3config.Overrides
	if a.opts.verbose {
		overrides = &s3config.Overrides{
			Transport: s3config.TransportOptions{s3config.OptionVerbose: true},
		}
	}

	cfg := s3config.NewResolver(src).WithLogger(a.log).Resolve(overrides)
	client, err := s3client.NewFactory(a.log).Build(cfg)
	if err != nil {
		return nil, nil, err
	}
	return src, client, nil
}
