package repository

import (
	"context"

	"github.com/mrewrin/LeadTransfer/internal/domain/entity"
	"github.com/mrewrin/LeadTransfer/internal/domain/repository"
	"github.com/mrewrin/LeadTransfer/internal/domain/valueobject"
	"github.com/mrewrin/LeadTransfer/internal/infrastructure/database"
	"github.com/mrewrin/LeadTransfer/pkg/apperror"
)

// UserVerificationRepository は本人確認申請リポジトリの実装です
type UserVerificationRepository struct {
	*database.BaseRepository
}

// NewUserVerificationRepository は新しいUserVerificationRepositoryを作成します
func NewUserVerificationRepository(txManager *database.TxManager) *UserVerificationRepository {
	return &UserVerificationRepository{
		BaseRepository: database.NewBaseRepository(txManager),
	}
}

// Create は申請を作成します
func (r *UserVerificationRepository) Create(ctx context.Context, v *entity.UserVerification) error {
	const q = `
		INSERT INTO user_verifications (user_id, document_type, document_url, result, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	err := r.Querier(ctx).QueryRow(ctx, q,
		v.UserID, v.DocumentType, v.DocumentURL, v.Result.String(), v.CreatedAt,
	).Scan(&v.ID)
	return r.HandleError(err, "UserVerification")
}

// Update は審査結果を保存します
func (r *UserVerificationRepository) Update(ctx context.Context, v *entity.UserVerification) error {
	const q = `
		UPDATE user_verifications
		SET result = $2, reviewed_by_id = $3, verified_at = $4
		WHERE id = $1`

	tag, err := r.Querier(ctx).Exec(ctx, q, v.ID, v.Result.String(), v.ReviewedByID, v.VerifiedAt)
	if err != nil {
		return r.HandleError(err, "UserVerification")
	}
	if tag.RowsAffected() == 0 {
		return apperror.NewNotFoundError("UserVerification")
	}
	return nil
}

// FindLatestPendingByUserID はユーザーの最新の審査待ち申請を検索します
func (r *UserVerificationRepository) FindLatestPendingByUserID(ctx context.Context, userID int64) (*entity.UserVerification, error) {
	const q = `
		SELECT id, user_id, document_type, document_url, result, reviewed_by_id, verified_at, created_at
		FROM user_verifications
		WHERE user_id = $1 AND result = 'pending'
		ORDER BY created_at DESC, id DESC
		LIMIT 1
		FOR UPDATE`

	var (
		v      entity.UserVerification
		result string
	)
	err := r.Querier(ctx).QueryRow(ctx, q, userID).Scan(
		&v.ID, &v.UserID, &v.DocumentType, &v.DocumentURL, &result, &v.ReviewedByID, &v.VerifiedAt, &v.CreatedAt,
	)
	if err != nil {
		return nil, r.HandleError(err, "UserVerification")
	}
	v.Result = valueobject.VerificationStatus(result)
	return &v, nil
}

var _ repository.UserVerificationRepository = (*UserVerificationRepository)(nil)
