package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mrewrin/LeadTransfer/internal/domain/entity"
	"github.com/mrewrin/LeadTransfer/internal/interface/dto/request"
	"github.com/mrewrin/LeadTransfer/internal/interface/dto/response"
	"github.com/mrewrin/LeadTransfer/internal/interface/middleware"
	"github.com/mrewrin/LeadTransfer/internal/interface/presenter"
	authcmd "github.com/mrewrin/LeadTransfer/internal/usecase/auth/command"
	authqry "github.com/mrewrin/LeadTransfer/internal/usecase/auth/query"
	"github.com/mrewrin/LeadTransfer/pkg/apperror"
)

// AuthHandler は認証関連のHTTPハンドラーです
type AuthHandler struct {
	// Commands
	registerCommand       *authcmd.RegisterCommand
	loginCommand          *authcmd.LoginCommand
	refreshTokenCommand   *authcmd.RefreshTokenCommand
	logoutCommand         *authcmd.LogoutCommand
	changePasswordCommand *authcmd.ChangePasswordCommand

	// Queries
	getUserQuery *authqry.GetUserQuery
}

// NewAuthHandler は新しいAuthHandlerを作成します
func NewAuthHandler(
	registerCommand *authcmd.RegisterCommand,
	loginCommand *authcmd.LoginCommand,
	refreshTokenCommand *authcmd.RefreshTokenCommand,
	logoutCommand *authcmd.LogoutCommand,
	changePasswordCommand *authcmd.ChangePasswordCommand,
	getUserQuery *authqry.GetUserQuery,
) *AuthHandler {
	return &AuthHandler{
		registerCommand:       registerCommand,
		loginCommand:          loginCommand,
		refreshTokenCommand:   refreshTokenCommand,
		logoutCommand:         logoutCommand,
		changePasswordCommand: changePasswordCommand,
		getUserQuery:          getUserQuery,
	}
}

// Register はユーザー登録を処理します
// POST /api/auth/register/
func (h *AuthHandler) Register(c echo.Context) error {
	var req request.RegisterRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	output, err := h.registerCommand.Execute(c.Request().Context(), authcmd.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		return err
	}

	middleware.AuditAs(c, &output.User.ID, entity.AuditActionRegister, entity.AuditResourceUser, &output.User.ID, map[string]any{
		"role": req.Role,
	})

	return presenter.Message(c, http.StatusCreated, "User registered successfully!")
}

// Login はログインを処理します
// POST /api/auth/login/
func (h *AuthHandler) Login(c echo.Context) error {
	var req request.LoginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	output, err := h.loginCommand.Execute(c.Request().Context(), authcmd.LoginInput{
		Email:     req.Email,
		Password:  req.Password,
		UserAgent: c.Request().UserAgent(),
		IPAddress: c.RealIP(),
	})
	if err != nil {
		if apperror.IsUnauthorized(err) {
			middleware.AuditAs(c, nil, entity.AuditActionLoginFailed, entity.AuditResourceUser, nil, map[string]any{
				"email": req.Email,
			})
		}
		return err
	}

	middleware.AuditAs(c, &output.User.ID, entity.AuditActionLogin, entity.AuditResourceUser, &output.User.ID, map[string]any{
		"session_id": output.SessionID,
	})

	return c.JSON(http.StatusOK, response.TokenPairResponse{
		Access:  output.AccessToken,
		Refresh: output.RefreshToken,
	})
}

// Refresh はトークンリフレッシュを処理します
// POST /api/auth/refresh/
func (h *AuthHandler) Refresh(c echo.Context) error {
	var req request.RefreshRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	output, err := h.refreshTokenCommand.Execute(c.Request().Context(), authcmd.RefreshTokenInput{
		RefreshToken: req.Refresh,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, response.AccessTokenResponse{Access: output.AccessToken})
}

// Logout はログアウトを処理します
// POST /api/auth/logout/
func (h *AuthHandler) Logout(c echo.Context) error {
	claims := middleware.GetAccessClaims(c)
	if claims == nil {
		return apperror.NewUnauthorizedError("authentication credentials were not provided")
	}

	input := authcmd.LogoutInput{
		SessionID: claims.SessionID,
		TokenID:   claims.ID,
	}
	if claims.ExpiresAt != nil {
		input.TokenExpiry = claims.ExpiresAt.Time
	}
	if err := h.logoutCommand.Execute(c.Request().Context(), input); err != nil {
		return err
	}

	middleware.AuditHelper(c, entity.AuditActionLogout, entity.AuditResourceUser, &claims.UserID, nil)

	return presenter.Message(c, http.StatusOK, "Successfully logged out.")
}

// ChangePassword はパスワード変更を処理します
// POST /api/auth/change-password/
func (h *AuthHandler) ChangePassword(c echo.Context) error {
	var req request.ChangePasswordRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	userID := middleware.GetUserID(c)
	err := h.changePasswordCommand.Execute(c.Request().Context(), authcmd.ChangePasswordInput{
		UserID:      userID,
		OldPassword: req.OldPassword,
		NewPassword: req.NewPassword,
	})
	if err != nil {
		return err
	}

	middleware.AuditHelper(c, entity.AuditActionPasswordChange, entity.AuditResourceUser, &userID, nil)

	return presenter.Message(c, http.StatusOK, "Password changed successfully!")
}

// Me は現在のユーザー情報を返します
// GET /api/auth/me/
func (h *AuthHandler) Me(c echo.Context) error {
	output, err := h.getUserQuery.Execute(c.Request().Context(), authqry.GetUserInput{
		UserID: middleware.GetUserID(c),
	})
	if err != nil {
		return err
	}

	return presenter.OK(c, response.ToUserResponse(output.User, output.Profile))
}

// Protected は認証確認用のエンドポイントです
// GET /api/auth/protected/
func (h *AuthHandler) Protected(c echo.Context) error {
	return presenter.Message(c, http.StatusOK, "This is a protected endpoint!")
}
