package command

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mrewrin/LeadTransfer/internal/domain/authz"
	"github.com/mrewrin/LeadTransfer/internal/domain/entity"
	"github.com/mrewrin/LeadTransfer/internal/domain/repository"
	"github.com/mrewrin/LeadTransfer/internal/domain/service"
	"github.com/mrewrin/LeadTransfer/pkg/apperror"
	"github.com/mrewrin/LeadTransfer/pkg/logger"
)

// RoleAssignmentRecorder はロール割り当て件数を記録します
type RoleAssignmentRecorder interface {
	RecordRoleAssignment(role string)
}

// AssignRoleInput はロール割り当ての入力を定義します
type AssignRoleInput struct {
	Actor        authz.Principal
	TargetUserID int64
	RoleName     string
}

// AssignRoleOutput はロール割り当ての出力を定義します
type AssignRoleOutput struct {
	Profile    *entity.UserProfile
	Assignment *entity.RoleAssignment
}

// AssignRoleCommand は他ユーザーへのロール割り当てコマンドです
type AssignRoleCommand struct {
	roleRepo    repository.RoleRepository
	profileRepo repository.UserProfileRepository
	historyRepo repository.RoleAssignmentRepository
	sessionRepo repository.SessionRepository
	txManager   repository.TransactionManager
	access      service.AccessService
	recorder    RoleAssignmentRecorder
}

// NewAssignRoleCommand は新しいAssignRoleCommandを作成します
func NewAssignRoleCommand(
	roleRepo repository.RoleRepository,
	profileRepo repository.UserProfileRepository,
	historyRepo repository.RoleAssignmentRepository,
	sessionRepo repository.SessionRepository,
	txManager repository.TransactionManager,
	access service.AccessService,
	recorder RoleAssignmentRecorder,
) *AssignRoleCommand {
	return &AssignRoleCommand{
		roleRepo:    roleRepo,
		profileRepo: profileRepo,
		historyRepo: historyRepo,
		sessionRepo: sessionRepo,
		txManager:   txManager,
		access:      access,
		recorder:    recorder,
	}
}

// Execute はロール割り当てを実行します
func (c *AssignRoleCommand) Execute(ctx context.Context, input AssignRoleInput) (*AssignRoleOutput, error) {
	// 1. 実行者は admin / moderator 系ロールが必要
	if err := c.access.Authorize(authz.PolicyAdminOrModerator, input.Actor); err != nil {
		return nil, err
	}

	// 2. ロールの解決（存在しないロールは作成しない）
	name, err := authz.NewRoleName(input.RoleName)
	if err != nil {
		return nil, apperror.NewFieldError("role", "This field is required.")
	}
	role, err := c.roleRepo.FindByName(ctx, name)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, apperror.NewFieldError("role", fmt.Sprintf("unknown role: %s", name))
		}
		return nil, apperror.NewInternalError(err)
	}

	// 3. プロファイルを行ロックして更新し、履歴を追記
	var (
		profile    *entity.UserProfile
		assignment *entity.RoleAssignment
	)
	err = c.txManager.WithTransaction(ctx, func(ctx context.Context) error {
		var err error
		profile, err = c.profileRepo.FindByUserIDForUpdate(ctx, input.TargetUserID)
		if err != nil {
			return err
		}

		profile.AssignRole(role)
		if err := c.profileRepo.Update(ctx, profile); err != nil {
			return err
		}

		assignment = entity.NewRoleAssignment(input.TargetUserID, input.Actor.UserID, role)
		return c.historyRepo.Create(ctx, assignment)
	})
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, apperror.NewNotFoundError("UserProfile")
		}
		if _, ok := apperror.As(err); ok {
			return nil, err
		}
		return nil, apperror.NewInternalError(err)
	}

	// 4. コミット後、既存のリフレッシュセッションを失効させる
	// 失敗してもロールの変更自体は確定しています
	if err := c.sessionRepo.DeleteByUserID(ctx, input.TargetUserID); err != nil {
		logger.WithContext(ctx).Warn("failed to revoke sessions after role assignment",
			slog.Int64("target_user_id", input.TargetUserID),
			slog.String("error", err.Error()),
		)
	}
	if c.recorder != nil {
		c.recorder.RecordRoleAssignment(role.Name.String())
	}

	return &AssignRoleOutput{Profile: profile, Assignment: assignment}, nil
}
