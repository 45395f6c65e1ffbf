package repository

import (
	"context"

	"github.com/mrewrin/LeadTransfer/internal/domain/authz"
	"github.com/mrewrin/LeadTransfer/internal/domain/repository"
	"github.com/mrewrin/LeadTransfer/internal/infrastructure/database"
)

// PrincipalRepository はユーザー・プロファイル・ロールを1クエリで読み込み認可主体を組み立てます
type PrincipalRepository struct {
	*database.BaseRepository
}

// NewPrincipalRepository は新しいPrincipalRepositoryを作成します
func NewPrincipalRepository(txManager *database.TxManager) *PrincipalRepository {
	return &PrincipalRepository{
		BaseRepository: database.NewBaseRepository(txManager),
	}
}

// LoadPrincipal はユーザーIDで認可主体を読み込みます
// プロファイルが無い場合 Profile は nil、ロールが無い場合 Profile.Role は nil になります
func (r *PrincipalRepository) LoadPrincipal(ctx context.Context, userID int64) (authz.Principal, error) {
	const q = `
		SELECT u.id, u.email, u.is_superuser, u.is_staff, u.is_active, u.is_verified,
		       p.id, r.name
		FROM users u
		LEFT JOIN user_profiles p ON p.user_id = u.id
		LEFT JOIN roles r ON r.id = p.role_id
		WHERE u.id = $1`

	var (
		p         authz.Principal
		profileID *int64
		roleName  *string
	)
	err := r.Querier(ctx).QueryRow(ctx, q, userID).Scan(
		&p.UserID,
		&p.Email,
		&p.IsSuperuser,
		&p.IsStaff,
		&p.IsActive,
		&p.IsVerified,
		&profileID,
		&roleName,
	)
	if err != nil {
		return authz.Anonymous(), r.HandleError(err, "User")
	}

	if profileID != nil {
		ref := &authz.ProfileRef{}
		if roleName != nil {
			name := authz.RoleName(*roleName)
			ref.Role = &name
		}
		p.Profile = ref
	}
	return p, nil
}

var _ repository.PrincipalRepository = (*PrincipalRepository)(nil)
