// Package settings provides read-only access to a host application's stored
// settings for the s3config resolver.
//
// A Source answers Get(key) with the raw value and whether it is present.
// The package ships several implementations:
//
//   - Map: a plain map, convenient for tests and embedding hosts
//   - Viper: a *viper.Viper covering config files, environment variables and .env files
//   - Chain: first-hit lookup across several sources
//   - SQLLoader: a gorm-backed snapshot of a name/value settings table
//
// Sources are passed to the resolver explicitly; there is no package-level
// settings store to reset between uses.
//
// Example:
//
//	v, err := settings.LoadViper(".", "config.yaml", s3config.SettingsKeys()...)
//	if err != nil {
//		return err
//	}
//	dbValues, err := settings.NewSQLLoader(db, "").Load(ctx, s3config.SettingsKeys()...)
//	if err != nil {
//		return err
//	}
//	src := settings.Chain{settings.NewViper(v), dbValues}
//	cfg := s3config.NewResolver(src).Resolve(nil)
package settings
