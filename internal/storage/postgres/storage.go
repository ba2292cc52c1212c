package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domainErrors "github.com/Amarhadpad/artistgrade/internal/domain/errors"
	"github.com/Amarhadpad/artistgrade/internal/domain/model"
	"github.com/Amarhadpad/artistgrade/internal/domain/repository"
)

const uniqueViolationCode = "23505"

// pgxPool is the subset of pgxpool.Pool the storage relies on, kept as an
// interface so tests can substitute a mock pool.
type pgxPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	BeginTx(ctx context.Context, opts pgx.TxOptions) (pgx.Tx, error)
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

var _ repository.Factory = (*Storage)(nil)

type orderRepository struct {
	storage *Storage
}

type productRepository struct {
	storage *Storage
}

type userRepository struct {
	storage *Storage
}

type requestRepository struct {
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
func (s *Storage) Orders() repository.OrderRepository {
	return &orderRepository{storage: s}
}

func (s *Storage) Products() repository.ProductRepository {
	return &productRepository{storage: s}
}

func (s *Storage) Users() repository.UserRepository {
	return &userRepository{storage: s}
}

func (s *Storage) Requests() repository.RequestRepository {
	return &requestRepository{storage: s}
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS products (
            id BIGSERIAL PRIMARY KEY,
            name TEXT NOT NULL,
            category TEXT NOT NULL DEFAULT '',
            price DOUBLE PRECISION NOT NULL DEFAULT 0,
            stock BIGINT NOT NULL DEFAULT 0,
            image TEXT NOT NULL DEFAULT '',
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS users (
            id BIGSERIAL PRIMARY KEY,
            fullname TEXT NOT NULL,
            username TEXT UNIQUE NOT NULL,
            email TEXT UNIQUE NOT NULL,
            phone TEXT NOT NULL DEFAULT '',
            password_hash TEXT NOT NULL,
            gender TEXT NOT NULL DEFAULT '',
            is_admin BOOLEAN NOT NULL DEFAULT FALSE,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS orders (
            id BIGSERIAL PRIMARY KEY,
            order_id TEXT UNIQUE NOT NULL,
            full_name TEXT NOT NULL,
            email TEXT NOT NULL,
            phone TEXT NOT NULL,
            address TEXT NOT NULL,
            city TEXT NOT NULL,
            state TEXT NOT NULL,
            zip TEXT NOT NULL,
            transaction_id TEXT NOT NULL,
            cart_items JSONB NOT NULL DEFAULT '[]',
            total_amount DOUBLE PRECISION NOT NULL,
            status TEXT NOT NULL,
            date TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS custom_requests (
            id BIGSERIAL PRIMARY KEY,
            name TEXT NOT NULL,
            email TEXT NOT NULL,
            product TEXT NOT NULL,
            category TEXT NOT NULL DEFAULT '',
            details TEXT NOT NULL DEFAULT '',
            image TEXT NOT NULL DEFAULT '',
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE SEQUENCE IF NOT EXISTS order_number_seq`,
		`CREATE INDEX IF NOT EXISTS idx_orders_date ON orders(date DESC, id DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_products_created ON products(created_at DESC)`,
	}

	return s.WithinTransaction(ctx, func(tx pgx.Tx) error {
		for _, stmt := range statements {
			if _, err := tx.Exec(ctx, stmt); err != nil {
				return fmt.Errorf("init schema: %w", err)
			}
		}
		return nil
	})
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}

// --- OrderRepository implementation ---

// NextOrderID draws the next value from the order sequence. The sequence is
// incremented atomically by the database, so concurrent callers always get
// distinct values.
func (r *orderRepository) NextOrderID(ctx context.Context) (string, error) {
	const query = `SELECT nextval('order_number_seq')`
	var n int64
	if err := r.storage.pool.QueryRow(ctx, query).Scan(&n); err != nil {
		return "", err
	}
	return fmt.Sprintf("ORD%03d", n), nil
}

func (r *orderRepository) Create(ctx context.Context, order *model.Order) error {
	items, err := json.Marshal(order.CartItems)
	if err != nil {
		return fmt.Errorf("encode cart items: %w", err)
	}

	const query = `INSERT INTO orders
                   (order_id, full_name, email, phone, address, city, state, zip, transaction_id, cart_items, total_amount, status)
                   VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
                   RETURNING id, date`
	err = r.storage.pool.QueryRow(ctx, query,
		order.OrderID, order.FullName, order.Email, order.Phone,
		order.Address, order.City, order.State, order.Zip,
		order.TransactionID, items, order.TotalAmount, order.Status,
	).Scan(&order.ID, &order.Date)
	if err != nil {
		if isUniqueViolation(err) {
			return domainErrors.ErrAlreadyExists
		}
		return err
	}
	return nil
}

const orderColumns = `id, order_id, full_name, email, phone, address, city, state, zip, transaction_id, cart_items, total_amount, status, date`

func scanOrder(row pgx.Row) (*model.Order, error) {
	var o model.Order
	var items []byte
	var status string
	err := row.Scan(&o.ID, &o.OrderID, &o.FullName, &o.Email, &o.Phone,
		&o.Address, &o.City, &o.State, &o.Zip, &o.TransactionID,
		&items, &o.TotalAmount, &status, &o.Date)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(items, &o.CartItems); err != nil {
		return nil, fmt.Errorf("decode cart items: %w", err)
	}
	o.Status = model.OrderStatus(status)
	return &o, nil
}

func (r *orderRepository) GetByOrderID(ctx context.Context, orderID string) (*model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE order_id=$1`
	order, err := scanOrder(r.storage.pool.QueryRow(ctx, query, orderID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return order, nil
}

func (r *orderRepository) List(ctx context.Context) ([]model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders ORDER BY date DESC, id DESC`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *order)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *orderRepository) Delete(ctx context.Context, orderID string) error {
	const query = `DELETE FROM orders WHERE order_id=$1`
	tag, err := r.storage.pool.Exec(ctx, query, orderID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *orderRepository) UpdateStatus(ctx context.Context, orderID string, status model.OrderStatus) (*model.Order, error) {
	query := `UPDATE orders SET status=$1 WHERE order_id=$2 RETURNING ` + orderColumns
	order, err := scanOrder(r.storage.pool.QueryRow(ctx, query, status, orderID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return order, nil
}

func (r *orderRepository) Count(ctx context.Context) (int64, error) {
	return r.storage.count(ctx, `SELECT COUNT(*) FROM orders`)
}

// --- ProductRepository implementation ---

func (r *productRepository) Create(ctx context.Context, product *model.Product) error {
	const query = `INSERT INTO products (name, category, price, stock, image)
                   VALUES ($1, $2, $3, $4, $5)
                   RETURNING id, created_at, updated_at`
	return r.storage.pool.QueryRow(ctx, query,
		product.Name, product.Category, product.Price, product.Stock, product.Image,
	).Scan(&product.ID, &product.CreatedAt, &product.UpdatedAt)
}

func (r *productRepository) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	const query = `SELECT id, name, category, price, stock, image, created_at, updated_at
                   FROM products WHERE id=$1`
	var p model.Product
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.Name, &p.Category, &p.Price, &p.Stock, &p.Image, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *productRepository) List(ctx context.Context) ([]model.Product, error) {
	const query = `SELECT id, name, category, price, stock, image, created_at, updated_at
                   FROM products ORDER BY created_at DESC`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Product
	for rows.Next() {
		var p model.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Category, &p.Price, &p.Stock, &p.Image, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *productRepository) Update(ctx context.Context, product *model.Product) error {
	const query = `UPDATE products SET name=$1, category=$2, price=$3, stock=$4, image=$5, updated_at=NOW()
                   WHERE id=$6`
	tag, err := r.storage.pool.Exec(ctx, query,
		product.Name, product.Category, product.Price, product.Stock, product.Image, product.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *productRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM products WHERE id=$1`
	tag, err := r.storage.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *productRepository) Count(ctx context.Context) (int64, error) {
	return r.storage.count(ctx, `SELECT COUNT(*) FROM products`)
}

// --- UserRepository implementation ---

func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	const query = `INSERT INTO users (fullname, username, email, phone, password_hash, gender)
                   VALUES ($1, $2, $3, $4, $5, $6)
                   RETURNING id, created_at`
	err := r.storage.pool.QueryRow(ctx, query,
		user.FullName, user.Username, user.Email, user.Phone, user.PasswordHash, user.Gender,
	).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domainErrors.ErrAlreadyExists
		}
		return err
	}
	return nil
}

const userColumns = `id, fullname, username, email, phone, password_hash, gender, is_admin, created_at`

func scanUser(row pgx.Row) (*model.User, error) {
	var u model.User
	err := row.Scan(&u.ID, &u.FullName, &u.Username, &u.Email, &u.Phone,
		&u.PasswordHash, &u.Gender, &u.IsAdmin, &u.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email=$1`
	user, err := scanUser(r.storage.pool.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return user, nil
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id=$1`
	user, err := scanUser(r.storage.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return user, nil
}

func (r *userRepository) List(ctx context.Context) ([]model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY created_at DESC`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.User
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.ID, &u.FullName, &u.Username, &u.Email, &u.Phone, &u.PasswordHash, &u.Gender, &u.IsAdmin, &u.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *userRepository) Update(ctx context.Context, user *model.User) error {
	const query = `UPDATE users SET fullname=$1, username=$2, email=$3, phone=$4 WHERE id=$5`
	tag, err := r.storage.pool.Exec(ctx, query,
		user.FullName, user.Username, user.Email, user.Phone, user.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domainErrors.ErrAlreadyExists
		}
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *userRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM users WHERE id=$1`
	tag, err := r.storage.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *userRepository) Count(ctx context.Context) (int64, error) {
	return r.storage.count(ctx, `SELECT COUNT(*) FROM users`)
}

// EnsureAdmin seeds the configured admin account. Existing rows win; the
// insert is a no-op when the username or email is already taken.
func (r *userRepository) EnsureAdmin(ctx context.Context, fullName, username, email, passwordHash string) error {
	const query = `INSERT INTO users (fullname, username, email, password_hash, is_admin)
                   VALUES ($1, $2, $3, $4, TRUE)
                   ON CONFLICT DO NOTHING`
	_, err := r.storage.pool.Exec(ctx, query, fullName, username, email, passwordHash)
	return err
}

// --- RequestRepository implementation ---

func (r *requestRepository) Create(ctx context.Context, request *model.CustomRequest) error {
	const query = `INSERT INTO custom_requests (name, email, product, category, details, image)
                   VALUES ($1, $2, $3, $4, $5, $6)
                   RETURNING id, created_at`
	return r.storage.pool.QueryRow(ctx, query,
		request.Name, request.Email, request.Product, request.Category, request.Details, request.Image,
	).Scan(&request.ID, &request.CreatedAt)
}

func (r *requestRepository) List(ctx context.Context) ([]model.CustomRequest, error) {
	const query = `SELECT id, name, email, product, category, details, image, created_at
                   FROM custom_requests ORDER BY created_at DESC`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.CustomRequest
	for rows.Next() {
		var cr model.CustomRequest
		if err := rows.Scan(&cr.ID, &cr.Name, &cr.Email, &cr.Product, &cr.Category, &cr.Details, &cr.Image, &cr.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, cr)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (s *Storage) count(ctx context.Context, query string) (int64, error) {
	var n int64
	if err := s.pool.QueryRow(ctx, query).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
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
