// Package pg connects to PostgreSQL through a pgx connection pool and applies
// goose migrations.
//
//	pool, err := pg.Connect(ctx, cfg)
//	if err != nil {
//	    return err
//	}
//	defer pool.Close()
//
//	if err := pg.Migrate(ctx, pool, cfg, catalog.Migrations, log); err != nil {
//	    return err
//	}
//
// Healthcheck adapts the pool to the func(context.Context) error signature
// expected by httpserver.HealthCheckHandler.
package pg
