package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/mrewrin/LeadTransfer/internal/domain/entity"
	"github.com/mrewrin/LeadTransfer/internal/interface/dto/request"
	"github.com/mrewrin/LeadTransfer/internal/interface/dto/response"
	"github.com/mrewrin/LeadTransfer/internal/interface/middleware"
	"github.com/mrewrin/LeadTransfer/internal/interface/presenter"
	profilecmd "github.com/mrewrin/LeadTransfer/internal/usecase/profile/command"
	profileqry "github.com/mrewrin/LeadTransfer/internal/usecase/profile/query"
)

// ProfileHandler はプロファイル関連のHTTPハンドラーです
type ProfileHandler struct {
	updateProfileCommand      *profilecmd.UpdateProfileCommand
	submitVerificationCommand *profilecmd.SubmitVerificationCommand
	decideVerificationCommand *profilecmd.DecideVerificationCommand

	getProfileQuery *profileqry.GetProfileQuery
}

// NewProfileHandler は新しいProfileHandlerを作成します
func NewProfileHandler(
	updateProfileCommand *profilecmd.UpdateProfileCommand,
	submitVerificationCommand *profilecmd.SubmitVerificationCommand,
	decideVerificationCommand *profilecmd.DecideVerificationCommand,
	getProfileQuery *profileqry.GetProfileQuery,
) *ProfileHandler {
	return &ProfileHandler{
		updateProfileCommand:      updateProfileCommand,
		submitVerificationCommand: submitVerificationCommand,
		decideVerificationCommand: decideVerificationCommand,
		getProfileQuery:           getProfileQuery,
	}
}

// GetProfile は自身のプロファイルを取得します
// GET /api/auth/profile/
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	profile, err := h.getProfileQuery.Execute(c.Request().Context(), profileqry.GetProfileInput{
		UserID: middleware.GetUserID(c),
	})
	if err != nil {
		return err
	}
	return presenter.OK(c, response.ToProfileResponse(profile))
}

// UpdateProfile は自身のプロファイルを更新します
// PUT /api/auth/profile/
func (h *ProfileHandler) UpdateProfile(c echo.Context) error {
	var req request.UpdateProfileRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	userID := middleware.GetUserID(c)
	output, err := h.updateProfileCommand.Execute(c.Request().Context(), profilecmd.UpdateProfileInput{
		UserID: userID,
		Info:   req.ToPersonalInfo(),
	})
	if err != nil {
		return err
	}

	middleware.AuditHelper(c, entity.AuditActionProfileUpdate, entity.AuditResourceProfile, &userID, nil)

	return presenter.OK(c, response.ToProfileResponse(output.Profile))
}

// SubmitVerification は本人確認書類を提出します
// POST /api/auth/profile/verify/
func (h *ProfileHandler) SubmitVerification(c echo.Context) error {
	var req request.SubmitVerificationRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	userID := middleware.GetUserID(c)
	verification, err := h.submitVerificationCommand.Execute(c.Request().Context(), profilecmd.SubmitVerificationInput{
		UserID:       userID,
		DocumentType: req.DocumentType,
		DocumentURL:  req.DocumentURL,
	})
	if err != nil {
		return err
	}

	middleware.AuditHelper(c, entity.AuditActionVerifySubmit, entity.AuditResourceProfile, &userID, map[string]any{
		"document_type": req.DocumentType,
	})

	return presenter.Created(c, response.ToVerificationResponse(verification))
}

// DecideVerification は本人確認の審査結果を記録します
// POST /api/auth/profile/verify/:user_id/decision/
func (h *ProfileHandler) DecideVerification(c echo.Context) error {
	userID, err := pathID(c, "user_id", "UserProfile")
	if err != nil {
		return err
	}

	var req request.VerificationDecisionRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	output, err := h.decideVerificationCommand.Execute(c.Request().Context(), profilecmd.DecideVerificationInput{
		Actor:  middleware.GetPrincipal(c),
		UserID: userID,
		Result: req.Result,
	})
	if err != nil {
		return err
	}

	middleware.AuditHelper(c, entity.AuditActionVerifyDecision, entity.AuditResourceProfile, &userID, map[string]any{
		"result": req.Result,
	})

	return presenter.OK(c, response.VerificationDecisionResponse{
		Verification: response.ToVerificationResponse(output.Verification),
		Profile:      response.ToProfileResponse(output.Profile),
	})
}
