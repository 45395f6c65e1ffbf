package database

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/mrewrin/LeadTransfer/pkg/apperror"
)

// BaseRepository はリポジトリの基底構造体
type BaseRepository struct {
	txManager *TxManager
}

// NewBaseRepository は新しいBaseRepositoryを作成する
func NewBaseRepository(txManager *TxManager) *BaseRepository {
	return &BaseRepository{txManager: txManager}
}

// Querier はクエリ実行用のインターフェースを返す
// トランザクション中であればTx、そうでなければPoolを返す
func (r *BaseRepository) Querier(ctx context.Context) Querier {
	return r.txManager.GetQuerier(ctx)
}

// TxManager はトランザクションマネージャーを返す
func (r *BaseRepository) TxManager() *TxManager {
	return r.txManager
}

// HandleError はpgxのエラーをアプリケーションエラーに変換する
// resource は NotFound メッセージに使われる（例: "UserProfile" → "UserProfile not found"）
func (r *BaseRepository) HandleError(err error, resource string) error {
	return HandleError(err, resource)
}

// HandleError はpgxのエラーをアプリケーションエラーに変換する
func HandleError(err error, resource string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return apperror.NewNotFoundError(resource)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UniqueViolation:
			return apperror.NewConflictError(resource + " already exists").WithErr(err)
		case pgerrcode.ForeignKeyViolation:
			return apperror.NewValidationError("referenced record does not exist", nil).WithErr(err)
		case pgerrcode.CheckViolation, pgerrcode.NotNullViolation:
			return apperror.NewValidationError("constraint violation: "+pgErr.ConstraintName, nil).WithErr(err)
		}
	}

	return err
}

// IsUniqueViolation はエラーが一意制約違反かどうかを判定する
// constraint が空でない場合は制約名も比較する
func IsUniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != pgerrcode.UniqueViolation {
		return false
	}
	return constraint == "" || pgErr.ConstraintName == constraint
}
