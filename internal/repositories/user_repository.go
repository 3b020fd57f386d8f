package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/aaravmahajanofficial/agroconnect/internal/models"
	"github.com/google/uuid"
	"github.com/lib/pq"
)

// ErrDuplicateEmail is returned when the unique email index rejects an insert.
var ErrDuplicateEmail = errors.New("email already registered")

const uniqueViolation = pq.ErrorCode("23505")

type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	ListUsers(ctx context.Context, role *models.Role, page, size int) ([]*models.User, int, error)
	UpdateUserStatus(ctx context.Context, id uuid.UUID, status models.AccountStatus) error
	DeleteUser(ctx context.Context, id uuid.UUID) ([]uuid.UUID, error)
}

type userRepository struct {
	DB *sql.DB
}

func NewUserRepo(db *sql.DB) UserRepository {
	return &userRepository{DB: db}
}

const userColumns = `id, name, email, phone, password, role, status, pincode, state, district, taluka, address,
	pan_card, cancelled_cheque, agriculture_certificate, gst_number, created_at, updated_at`

func (r *userRepository) CreateUser(ctx context.Context, user *models.User) error {
	dbCtx, cancel := withTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO users (name, email, phone, password, role, status, pincode, state, district, taluka, address,
			pan_card, cancelled_cheque, agriculture_certificate, gst_number, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, NOW(), NOW())
		RETURNING id, created_at, updated_at`

	err := r.DB.QueryRowContext(dbCtx, query,
		user.Name, user.Email, user.Phone, user.Password, user.Role, user.Status,
		user.Location.Pincode, user.Location.State, user.Location.District, user.Location.Taluka, user.Location.Address,
		user.Documents.PanCard, user.Documents.CancelledCheque, user.Documents.AgricultureCertificate, user.Documents.GSTNumber,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)

	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		return ErrDuplicateEmail
	}

	return err
}

func (r *userRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	dbCtx, cancel := withTimeout(ctx)
	defer cancel()

	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`

	return scanUser(r.DB.QueryRowContext(dbCtx, query, email))
}

func (r *userRepository) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	dbCtx, cancel := withTimeout(ctx)
	defer cancel()

	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	return scanUser(r.DB.QueryRowContext(dbCtx, query, id))
}

func (r *userRepository) ListUsers(ctx context.Context, role *models.Role, page, size int) ([]*models.User, int, error) {
	dbCtx, cancel := withTimeout(ctx)
	defer cancel()

	where := ""
	args := []any{}

	if role != nil {
		where = ` WHERE role = $1`
		args = append(args, string(*role))
	}

	var total int

	if err := r.DB.QueryRowContext(dbCtx, `SELECT COUNT(*) FROM users`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + userColumns + ` FROM users` + where + ` ORDER BY created_at DESC, id ASC` + paginate(len(args))
	args = append(args, size, (page-1)*size)

	rows, err := r.DB.QueryContext(dbCtx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	users := []*models.User{}

	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, 0, err
		}

		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return users, total, nil
}

func (r *userRepository) UpdateUserStatus(ctx context.Context, id uuid.UUID, status models.AccountStatus) error {
	dbCtx, cancel := withTimeout(ctx)
	defer cancel()

	result, err := r.DB.ExecContext(dbCtx, `UPDATE users SET status = $1, updated_at = NOW() WHERE id = $2`, status, id)
	if err != nil {
		return err
	}

	return requireAffected(result)
}

// DeleteUser removes the account and its commodities in one transaction and
// returns the ids of the commodities that went with it.
func (r *userRepository) DeleteUser(ctx context.Context, id uuid.UUID) ([]uuid.UUID, error) {
	dbCtx, cancel := withTimeout(ctx)
	defer cancel()

	tx, err := r.DB.BeginTx(dbCtx, nil)
	if err != nil {
		return nil, fmt.Errorf("starting transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	rows, err := tx.QueryContext(dbCtx, `DELETE FROM commodities WHERE farmer_id = $1 RETURNING id`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var removed []uuid.UUID

	for rows.Next() {
		var commodityID uuid.UUID
		if err := rows.Scan(&commodityID); err != nil {
			return nil, fmt.Errorf("scanning commodity id: %w", err)
		}

		removed = append(removed, commodityID)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	result, err := tx.ExecContext(dbCtx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return nil, err
	}

	if err := requireAffected(result); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing transaction: %w", err)
	}

	return removed, nil
}

func requireAffected(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("reading affected rows: %w", err)
	}

	if affected == 0 {
		return sql.ErrNoRows
	}

	return nil
}

func scanUser(row rowScanner) (*models.User, error) {
	u := &models.User{}

	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.Phone, &u.Password, &u.Role, &u.Status,
		&u.Location.Pincode, &u.Location.State, &u.Location.District, &u.Location.Taluka, &u.Location.Address,
		&u.Documents.PanCard, &u.Documents.CancelledCheque, &u.Documents.AgricultureCertificate, &u.Documents.GSTNumber,
		&u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}

	return u, nil
}
