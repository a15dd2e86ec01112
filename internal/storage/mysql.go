package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/mysqldialect"

	"ticketo/internal/config"
	"ticketo/internal/logger"
	"ticketo/internal/models"
)

// documentRowID pins the whole document to a single row so a transactional
// upsert gives the same all-or-nothing replace semantics as the file store's
// temp-and-rename.
const documentRowID = 1

type documentRow struct {
	bun.BaseModel `bun:"table:documents"`

	ID        int64     `bun:"id,pk"`
	Body      []byte    `bun:"body"`
	UpdatedAt time.Time `bun:"updated_at"`
}

// MySQLStore is the alternative Store backend for deployments that already
// run MySQL. It honors the same contract as FileStore: one logical document,
// replaced atomically.
type MySQLStore struct {
	db  *bun.DB
	log *logger.Logger
}

func NewMySQLStore(cfg config.DatabaseConfig, log *logger.Logger) (*MySQLStore, error) {
	log.LogDatabase("CONNECT", "mysql", fmt.Sprintf("Connecting to MySQL at %s:%s", cfg.Host, cfg.Port))

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		cfg.Username, cfg.Password, cfg.Host, cfg.Port, cfg.Database)

	sqldb, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	sqldb.SetMaxOpenConns(cfg.MaxOpenConns)
	sqldb.SetMaxIdleConns(cfg.MaxIdleConns)
	sqldb.SetConnMaxLifetime(cfg.MaxLifetime)

	if err := sqldb.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	store := &MySQLStore{
		db:  bun.NewDB(sqldb, mysqldialect.New()),
		log: log,
	}

	if err := store.initTables(); err != nil {
		return nil, fmt.Errorf("failed to initialize tables: %w", err)
	}

	log.LogDatabase("SUCCESS", "mysql", "MySQL connection established and documents table ready")
	return store, nil
}

func (s *MySQLStore) initTables() error {
	query := `
    CREATE TABLE IF NOT EXISTS documents (
        id BIGINT PRIMARY KEY,
        body LONGTEXT NOT NULL,
        updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
    ) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;
    `
	if _, err := s.db.ExecContext(context.Background(), query); err != nil {
		return fmt.Errorf("failed to create documents table: %w", err)
	}
	return nil
}

func (s *MySQLStore) Load() (*models.Document, error) {
	ctx := context.Background()

	row := new(documentRow)
	err := s.db.NewSelect().Model(row).Where("id = ?", documentRowID).Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		s.log.LogDatabase("SEED", "documents", "No document row found, writing default seed")
		doc := DefaultDocument()
		if err := s.Save(doc); err != nil {
			return nil, fmt.Errorf("failed to seed database: %w", err)
		}
		return doc, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load document: %w", err)
	}

	var doc models.Document
	if err := json.Unmarshal(row.Body, &doc); err != nil {
		return nil, fmt.Errorf("%w: documents row %d: %v", ErrCorrupt, documentRowID, err)
	}
	if err := validateDocument(&doc); err != nil {
		return nil, fmt.Errorf("%w: documents row %d: %v", ErrCorrupt, documentRowID, err)
	}
	return &doc, nil
}

func (s *MySQLStore) Save(doc *models.Document) error {
	body, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode document: %w", err)
	}

	row := &documentRow{
		ID:        documentRowID,
		Body:      body,
		UpdatedAt: time.Now(),
	}

	ctx := context.Background()
	return s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		_, err := tx.NewInsert().
			Model(row).
			On("DUPLICATE KEY UPDATE").
			Set("body = VALUES(body)").
			Set("updated_at = VALUES(updated_at)").
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to save document: %w", err)
		}
		return nil
	})
}

func (s *MySQLStore) Close() error {
	return s.db.Close()
}
