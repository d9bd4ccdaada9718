package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domainErrors "github.com/quickfuel/fuelquote/internal/domain/errors"
	"github.com/quickfuel/fuelquote/internal/domain/model"
	"github.com/quickfuel/fuelquote/internal/domain/repository"
)

// pgxPool is the subset of pgxpool.Pool used by the storage, extracted so
// tests can substitute a mock pool.
type pgxPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
	Ping(ctx context.Context) error
	Close()
}

var newPgxPool = func(ctx context.Context, cfg *pgxpool.Config) (pgxPool, error) {
	return pgxpool.NewWithConfig(ctx, cfg)
}

// Storage acts as repository facade backed by PostgreSQL.
type Storage struct {
	pool   pgxPool
	logger *slog.Logger
}

type userRepository struct {
	storage *Storage
}

type profileRepository struct {
	storage *Storage
}

type quoteRepository struct {
	storage *Storage
}

// New creates storage with schema initialization.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := newPgxPool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	storage := &Storage{pool: pool, logger: logger}
	if err := storage.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return storage, nil
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Factory methods for domain repositories.
func (s *Storage) Users() repository.UserRepository {
	return &userRepository{storage: s}
}

func (s *Storage) Profiles() repository.ProfileRepository {
	return &profileRepository{storage: s}
}

func (s *Storage) Quotes() repository.QuoteRepository {
	return &quoteRepository{storage: s}
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
            id SERIAL PRIMARY KEY,
            username TEXT UNIQUE NOT NULL,
            password_hash TEXT NOT NULL,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS profiles (
            user_id BIGINT PRIMARY KEY REFERENCES users(id) ON DELETE RESTRICT,
            full_name TEXT NOT NULL,
            address1 TEXT NOT NULL,
            address2 TEXT,
            city TEXT NOT NULL,
            state CHAR(2) NOT NULL,
            zipcode TEXT NOT NULL,
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS quotes (
            id SERIAL PRIMARY KEY,
            user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE RESTRICT,
            gallons DOUBLE PRECISION NOT NULL,
            delivery_address TEXT NOT NULL,
            delivery_date DATE NOT NULL,
            price_per_gallon DOUBLE PRECISION NOT NULL,
            total_due DOUBLE PRECISION NOT NULL,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE INDEX IF NOT EXISTS idx_quotes_user ON quotes(user_id, delivery_date)`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

// --- UserRepository implementation ---

func (r *userRepository) Create(ctx context.Context, username, passwordHash string) (*model.User, error) {
	const query = `INSERT INTO users (username, password_hash) VALUES ($1, $2) RETURNING id, created_at`
	var u model.User
	err := r.storage.pool.QueryRow(ctx, query, username, passwordHash).Scan(&u.ID, &u.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	u.Username = username
	u.PasswordHash = passwordHash
	return &u, nil
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	const query = `SELECT id, username, password_hash, created_at FROM users WHERE username=$1`
	var u model.User
	err := r.storage.pool.QueryRow(ctx, query, username).Scan(&u.ID, &u.Username, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	const query = `SELECT id, username, password_hash, created_at FROM users WHERE id=$1`
	var u model.User
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(&u.ID, &u.Username, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

// --- ProfileRepository implementation ---

func (r *profileRepository) GetByUserID(ctx context.Context, userID int64) (*model.Profile, error) {
	const query = `SELECT user_id, full_name, address1, COALESCE(address2, ''), city, state, zipcode, updated_at
                   FROM profiles WHERE user_id=$1`
	var p model.Profile
	err := r.storage.pool.QueryRow(ctx, query, userID).Scan(&p.UserID, &p.FullName, &p.Address1, &p.Address2, &p.City, &p.State, &p.Zipcode, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *profileRepository) Upsert(ctx context.Context, profile *model.Profile) (*model.Profile, error) {
	const query = `INSERT INTO profiles (user_id, full_name, address1, address2, city, state, zipcode)
                   VALUES ($1, $2, $3, NULLIF($4, ''), $5, $6, $7)
                   ON CONFLICT (user_id) DO UPDATE
                   SET full_name = EXCLUDED.full_name,
                       address1 = EXCLUDED.address1,
                       address2 = EXCLUDED.address2,
                       city = EXCLUDED.city,
                       state = EXCLUDED.state,
                       zipcode = EXCLUDED.zipcode,
                       updated_at = NOW()
                   RETURNING updated_at`
	stored := *profile
	err := r.storage.pool.QueryRow(ctx, query,
		profile.UserID, profile.FullName, profile.Address1, profile.Address2,
		profile.City, profile.State, profile.Zipcode,
	).Scan(&stored.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &stored, nil
}

// --- QuoteRepository implementation ---

func (r *quoteRepository) Create(ctx context.Context, quote *model.Quote) (*model.Quote, error) {
	const query = `INSERT INTO quotes (user_id, gallons, delivery_address, delivery_date, price_per_gallon, total_due)
                   VALUES ($1, $2, $3, $4, $5, $6)
                   RETURNING id, created_at`
	stored := *quote
	err := r.storage.pool.QueryRow(ctx, query,
		quote.UserID, quote.GallonsRequested, quote.DeliveryAddress,
		quote.DeliveryDate, quote.PricePerGallon, quote.TotalDue,
	).Scan(&stored.ID, &stored.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &stored, nil
}

func (r *quoteRepository) ListByUser(ctx context.Context, userID int64) ([]model.Quote, error) {
	const query = `SELECT id, user_id, gallons, delivery_address, delivery_date, price_per_gallon, total_due, created_at
                   FROM quotes WHERE user_id=$1 ORDER BY delivery_date`
	rows, err := r.storage.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Quote
	for rows.Next() {
		var q model.Quote
		if err := rows.Scan(&q.ID, &q.UserID, &q.GallonsRequested, &q.DeliveryAddress, &q.DeliveryDate, &q.PricePerGallon, &q.TotalDue, &q.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, q)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// WithinTransaction executes function inside transaction boundary.
func (s *Storage) WithinTransaction(ctx context.Context, fn func(pgx.Tx) error) (err error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	err = fn(tx)
	return err
}

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.pool.Ping(ctx)
}

// Logger returns storage logger.
func (s *Storage) Logger() *slog.Logger {
	return s.logger
}
