package command

import (
	"context"
	"fmt"

	"github.com/mrewrin/LeadTransfer/internal/domain/authz"
	"github.com/mrewrin/LeadTransfer/internal/domain/entity"
	"github.com/mrewrin/LeadTransfer/internal/domain/repository"
	"github.com/mrewrin/LeadTransfer/internal/domain/valueobject"
	"github.com/mrewrin/LeadTransfer/pkg/apperror"
)

// RegisterInput は登録の入力を定義します
type RegisterInput struct {
	Email    string
	Password string
	Role     string
}

// RegisterOutput は登録の出力を定義します
type RegisterOutput struct {
	User    *entity.User
	Profile *entity.UserProfile
}

// RegisterCommand はユーザー登録コマンドです
type RegisterCommand struct {
	userRepo    repository.UserRepository
	profileRepo repository.UserProfileRepository
	roleRepo    repository.RoleRepository
	txManager   repository.TransactionManager
}

// NewRegisterCommand は新しいRegisterCommandを作成します
func NewRegisterCommand(
	userRepo repository.UserRepository,
	profileRepo repository.UserProfileRepository,
	roleRepo repository.RoleRepository,
	txManager repository.TransactionManager,
) *RegisterCommand {
	return &RegisterCommand{
		userRepo:    userRepo,
		profileRepo: profileRepo,
		roleRepo:    roleRepo,
		txManager:   txManager,
	}
}

// Execute はユーザー登録を実行します
// フィールドエラーはまとめて返します
func (c *RegisterCommand) Execute(ctx context.Context, input RegisterInput) (*RegisterOutput, error) {
	var details []apperror.FieldError

	// 1. メールアドレス
	email, err := valueobject.NewEmail(input.Email)
	if err != nil {
		details = append(details, apperror.FieldError{Field: "email", Message: err.Error()})
	} else {
		exists, err := c.userRepo.Exists(ctx, email)
		if err != nil {
			return nil, apperror.NewInternalError(err)
		}
		if exists {
			details = append(details, apperror.FieldError{Field: "email", Message: "user with this email already exists"})
		}
	}

	// 2. パスワード
	password, err := valueobject.NewPassword(input.Password)
	if err != nil {
		details = append(details, apperror.FieldError{Field: "password", Message: err.Error()})
	}

	// 3. ロール（既存のロールのみ。ここで作成はしない）
	role, fieldErr, err := c.resolveRole(ctx, input.Role)
	if err != nil {
		return nil, err
	}
	if fieldErr != nil {
		details = append(details, *fieldErr)
	}

	if len(details) > 0 {
		return nil, apperror.NewValidationError("registration failed", details)
	}

	// 4. ユーザーとプロファイルを同一トランザクションで作成
	user := entity.NewUser(email, password, role.Name.IsStaffRole())
	profile := entity.NewUserProfile(0, role)
	err = c.txManager.WithTransaction(ctx, func(ctx context.Context) error {
		if err := c.userRepo.Create(ctx, user); err != nil {
			return err
		}
		profile.UserID = user.ID
		return c.profileRepo.Create(ctx, profile)
	})
	if err != nil {
		if _, ok := apperror.As(err); ok {
			return nil, err
		}
		return nil, apperror.NewInternalError(err)
	}

	return &RegisterOutput{User: user, Profile: profile}, nil
}

func (c *RegisterCommand) resolveRole(ctx context.Context, raw string) (*entity.Role, *apperror.FieldError, error) {
	name, err := authz.NewRoleName(raw)
	if err != nil {
		return nil, &apperror.FieldError{Field: "role", Message: "This field is required."}, nil
	}
	role, err := c.roleRepo.FindByName(ctx, name)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, &apperror.FieldError{Field: "role", Message: fmt.Sprintf("unknown role: %s", name)}, nil
		}
		return nil, nil, apperror.NewInternalError(err)
	}
	return role, nil, nil
}
