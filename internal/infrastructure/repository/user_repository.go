package repository

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/mrewrin/LeadTransfer/internal/domain/entity"
	"github.com/mrewrin/LeadTransfer/internal/domain/repository"
	"github.com/mrewrin/LeadTransfer/internal/domain/valueobject"
	"github.com/mrewrin/LeadTransfer/internal/infrastructure/database"
	"github.com/mrewrin/LeadTransfer/pkg/apperror"
)

const userColumns = `id, email, password_hash, is_superuser, is_staff, is_active, is_verified, created_at, updated_at`

// UserRepository はユーザーリポジトリの実装です
type UserRepository struct {
	*database.BaseRepository
}

// NewUserRepository は新しいUserRepositoryを作成します
func NewUserRepository(txManager *database.TxManager) *UserRepository {
	return &UserRepository{
		BaseRepository: database.NewBaseRepository(txManager),
	}
}

// Create はユーザーを作成します
func (r *UserRepository) Create(ctx context.Context, user *entity.User) error {
	const q = `
		INSERT INTO users (email, password_hash, is_superuser, is_staff, is_active, is_verified, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`

	err := r.Querier(ctx).QueryRow(ctx, q,
		user.Email.String(),
		user.PasswordHash,
		user.IsSuperuser,
		user.IsStaff,
		user.IsActive,
		user.IsVerified,
		user.CreatedAt,
		user.UpdatedAt,
	).Scan(&user.ID)
	if database.IsUniqueViolation(err, "users_email_key") {
		return apperror.NewFieldError("email", "user with this email already exists")
	}
	return r.HandleError(err, "User")
}

// Update はユーザーを更新します
func (r *UserRepository) Update(ctx context.Context, user *entity.User) error {
	const q = `
		UPDATE users
		SET password_hash = $2, is_superuser = $3, is_staff = $4, is_active = $5, is_verified = $6, updated_at = $7
		WHERE id = $1`

	tag, err := r.Querier(ctx).Exec(ctx, q,
		user.ID,
		user.PasswordHash,
		user.IsSuperuser,
		user.IsStaff,
		user.IsActive,
		user.IsVerified,
		user.UpdatedAt,
	)
	if err != nil {
		return r.HandleError(err, "User")
	}
	if tag.RowsAffected() == 0 {
		return apperror.NewNotFoundError("User")
	}
	return nil
}

// FindByID はIDでユーザーを検索します
func (r *UserRepository) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	q := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	user, err := scanUser(r.Querier(ctx).QueryRow(ctx, q, id))
	if err != nil {
		return nil, r.HandleError(err, "User")
	}
	return user, nil
}

// FindByEmail はメールアドレスでユーザーを検索します
func (r *UserRepository) FindByEmail(ctx context.Context, email valueobject.Email) (*entity.User, error) {
	q := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	user, err := scanUser(r.Querier(ctx).QueryRow(ctx, q, strings.ToLower(email.String())))
	if err != nil {
		return nil, r.HandleError(err, "User")
	}
	return user, nil
}

// Exists はメールアドレスが存在するかを確認します
func (r *UserRepository) Exists(ctx context.Context, email valueobject.Email) (bool, error) {
	var exists bool
	err := r.Querier(ctx).QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`, email.String()).Scan(&exists)
	if err != nil {
		return false, r.HandleError(err, "User")
	}
	return exists, nil
}

func scanUser(row pgx.Row) (*entity.User, error) {
	var (
		u     entity.User
		email string
	)
	if err := row.Scan(
		&u.ID,
		&email,
		&u.PasswordHash,
		&u.IsSuperuser,
		&u.IsStaff,
		&u.IsActive,
		&u.IsVerified,
		&u.CreatedAt,
		&u.UpdatedAt,
	); err != nil {
		return nil, err
	}
	u.Email = valueobject.ReconstructEmail(email)
	return &u, nil
}

// インターフェースの実装を保証
var _ repository.UserRepository = (*UserRepository)(nil)
