package pgio

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jinzhu/gorm"
)

// resetDB resets the database to a clean state.
func (p *pgio) resetDB() error {
	var err error
	var rows pgx.Rows
	slog.Info("Resetting database")
	qs := []string{
		"DROP SCHEMA IF EXISTS public CASCADE",
		"CREATE SCHEMA public",
		"GRANT ALL ON SCHEMA public TO postgres",
		fmt.Sprintf("GRANT ALL ON SCHEMA public TO %s", p.cfg.PgUser),
		"COMMENT ON SCHEMA public IS 'standard public schema'",
	}
	for i := range qs {
		rows, err = p.db.Query(context.Background(), qs[i])
		if err != nil {
			slog.Error("Cannot reset database", "error", err, "query", qs[i])
			return err
		}
		rows.Close()
	}

	slog.Info("Database did reset successfully")
	return nil
}

func (p *pgio) migrate() error {
	grm, err := gormConn(p.cfg)
	if err != nil {
		return err
	}
	defer grm.Close()

	slog.Info("Running initial database migrations")
	if err = migrateModels(grm); err != nil {
		slog.Error("Cannot migrate database", "error", err)
		return err
	}
	slog.Info("Database migrations completed")
	return nil
}

type autoMigrator interface {
	AutoMigrate(values ...interface{}) *gorm.DB
}

// migrateModels creates tables. AutoMigrate reports errors in the
// returned scope, not in the receiver.
func migrateModels(m autoMigrator) error {
	return m.AutoMigrate(&Object{}, &Relationship{}).Error
}

func (p *pgio) insertRows(
	ctx context.Context,
	tbl string,
	columns []string,
	rows [][]any,
) (int64, error) {
	copyCount, err := p.db.CopyFrom(
		ctx,
		pgx.Identifier{tbl},
		columns,
		pgx.CopyFromRows(rows),
	)

	return int64(copyCount), err
}
