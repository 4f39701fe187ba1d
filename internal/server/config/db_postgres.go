// Package config содержит инициализацию подключения к базе данных сервера.
//
// Пакет выполняет:
//   - открытие пула соединений с PostgreSQL (через драйвер pgx);
//   - настройку пула (лимиты соединений, время жизни);
//   - проверку доступности базы (Ping);
//   - запуск миграций (golang-migrate) при старте сервера.
//
// Глобального *sql.DB нет: пул создаётся в main и передаётся в репозитории явно.
package config

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"

	"github.com/IvanChernomyrdin/go-aquamate/internal/shared/logger"

	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v4/stdlib"
)

// OpenDB открывает пул соединений по DSN, настраивает его и проверяет доступность базы.
func OpenDB(ctx context.Context, cfg DBConfig) (*sql.DB, error) {
	db, err := sql.Open("pgx", cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		db.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}
	if cfg.ConnMaxIdleTime > 0 {
		db.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping db: %w", err)
	}
	return db, nil
}

// Migrate применяет миграции из sourceURL (например file://migrations/postgres).
//
// Если миграции уже применены, ошибка migrate.ErrNoChange не считается ошибкой.
func Migrate(db *sql.DB, sourceURL string, log *logger.HTTPLogger) error {
	customLog := log.Sugar()

	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		customLog.Errorf("error creating migration driver: %v", err)
		return err
	}

	// создаём миграции с выбранным драйвером
	m, err := migrate.NewWithDatabaseInstance(sourceURL, "postgres", driver)
	if err != nil {
		customLog.Errorf("error creating migrations: %v", err)
		return err
	}

	// запускаем миграции
	err = m.Up()
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		customLog.Errorf("error applying migrations: %v", err)
		return err
	}

	customLog.Info("migrations applied successfully")
	return nil
}

// Init открывает базу и, если включено в конфиге, применяет миграции.
func Init(ctx context.Context, cfg *Config, log *logger.HTTPLogger) (*sql.DB, error) {
	db, err := OpenDB(ctx, cfg.DB)
	if err != nil {
		log.Sugar().Errorf("error to connect db: %v", err)
		return nil, err
	}

	if cfg.Migrations.Enabled {
		if err := Migrate(db, cfg.Migrations.Path, log); err != nil {
			db.Close()
			return nil, err
		}
	}
	return db, nil
}
