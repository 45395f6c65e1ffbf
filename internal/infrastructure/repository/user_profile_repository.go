package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/mrewrin/LeadTransfer/internal/domain/authz"
	"github.com/mrewrin/LeadTransfer/internal/domain/entity"
	"github.com/mrewrin/LeadTransfer/internal/domain/repository"
	"github.com/mrewrin/LeadTransfer/internal/domain/valueobject"
	"github.com/mrewrin/LeadTransfer/internal/infrastructure/database"
	"github.com/mrewrin/LeadTransfer/pkg/apperror"
)

const profileSelect = `
	SELECT p.id, p.user_id, p.first_name, p.last_name, p.phone, p.country, p.city, p.avatar_url,
	       p.verification_status, p.created_at, p.updated_at,
	       r.id, r.name, r.created_at
	FROM user_profiles p
	LEFT JOIN roles r ON r.id = p.role_id`

// UserProfileRepository はユーザープロファイルリポジトリの実装です
type UserProfileRepository struct {
	*database.BaseRepository
}

// NewUserProfileRepository は新しいUserProfileRepositoryを作成します
func NewUserProfileRepository(txManager *database.TxManager) *UserProfileRepository {
	return &UserProfileRepository{
		BaseRepository: database.NewBaseRepository(txManager),
	}
}

// Create はユーザープロファイルを作成します
func (r *UserProfileRepository) Create(ctx context.Context, profile *entity.UserProfile) error {
	const q = `
		INSERT INTO user_profiles
			(user_id, role_id, first_name, last_name, phone, country, city, avatar_url,
			 verification_status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id`

	err := r.Querier(ctx).QueryRow(ctx, q,
		profile.UserID,
		profile.RoleID(),
		profile.FirstName,
		profile.LastName,
		profile.Phone,
		profile.Country,
		profile.City,
		profile.AvatarURL,
		profile.VerificationStatus.String(),
		profile.CreatedAt,
		profile.UpdatedAt,
	).Scan(&profile.ID)
	return r.HandleError(err, "UserProfile")
}

// Update はユーザープロファイルを更新します
func (r *UserProfileRepository) Update(ctx context.Context, profile *entity.UserProfile) error {
	const q = `
		UPDATE user_profiles
		SET role_id = $2, first_name = $3, last_name = $4, phone = $5, country = $6, city = $7,
		    avatar_url = $8, verification_status = $9, updated_at = $10
		WHERE user_id = $1`

	tag, err := r.Querier(ctx).Exec(ctx, q,
		profile.UserID,
		profile.RoleID(),
		profile.FirstName,
		profile.LastName,
		profile.Phone,
		profile.Country,
		profile.City,
		profile.AvatarURL,
		profile.VerificationStatus.String(),
		profile.UpdatedAt,
	)
	if err != nil {
		return r.HandleError(err, "UserProfile")
	}
	if tag.RowsAffected() == 0 {
		return apperror.NewNotFoundError("UserProfile")
	}
	return nil
}

// FindByUserID はユーザーIDでプロファイルを検索します
func (r *UserProfileRepository) FindByUserID(ctx context.Context, userID int64) (*entity.UserProfile, error) {
	profile, err := scanProfile(r.Querier(ctx).QueryRow(ctx, profileSelect+` WHERE p.user_id = $1`, userID))
	if err != nil {
		return nil, r.HandleError(err, "UserProfile")
	}
	return profile, nil
}

// FindByUserIDForUpdate はユーザーIDでプロファイルを行ロック付きで検索します
func (r *UserProfileRepository) FindByUserIDForUpdate(ctx context.Context, userID int64) (*entity.UserProfile, error) {
	q := profileSelect + ` WHERE p.user_id = $1 FOR UPDATE OF p`
	profile, err := scanProfile(r.Querier(ctx).QueryRow(ctx, q, userID))
	if err != nil {
		return nil, r.HandleError(err, "UserProfile")
	}
	return profile, nil
}

func scanProfile(row pgx.Row) (*entity.UserProfile, error) {
	var (
		p             entity.UserProfile
		status        string
		roleID        *int64
		roleName      *string
		roleCreatedAt *time.Time
	)
	if err := row.Scan(
		&p.ID,
		&p.UserID,
		&p.FirstName,
		&p.LastName,
		&p.Phone,
		&p.Country,
		&p.City,
		&p.AvatarURL,
		&status,
		&p.CreatedAt,
		&p.UpdatedAt,
		&roleID,
		&roleName,
		&roleCreatedAt,
	); err != nil {
		return nil, err
	}
	p.VerificationStatus = valueobject.VerificationStatus(status)
	if roleID != nil && roleName != nil {
		p.Role = &entity.Role{ID: *roleID, Name: authz.RoleName(*roleName)}
		if roleCreatedAt != nil {
			p.Role.CreatedAt = *roleCreatedAt
		}
	}
	return &p, nil
}

var _ repository.UserProfileRepository = (*UserProfileRepository)(nil)
