package service

import (
	"github.com/mrewrin/LeadTransfer/internal/domain/authz"
	"github.com/mrewrin/LeadTransfer/internal/domain/entity"
	"github.com/mrewrin/LeadTransfer/pkg/apperror"
)

// DecisionRecorder は認可判定の結果を記録します
type DecisionRecorder interface {
	RecordAuthzDecision(resource, action, decision string)
}

// AccessService はリソースアクセスの判定をアプリケーションエラーに変換するドメインサービスです
type AccessService interface {
	// Authorize はルート単位のポリシーを評価します
	Authorize(policy authz.Policy, p authz.Principal) error

	// AuthorizeListing は物件に対する操作を判定します（作成時の listing は nil）
	AuthorizeListing(action authz.Action, p authz.Principal, listing *entity.Listing) error

	// AuthorizeCatalog はカタログに対する操作を判定します（作成時の catalog は nil）
	AuthorizeCatalog(action authz.Action, p authz.Principal, catalog *entity.Catalog) error
}

type accessServiceImpl struct {
	gate     *authz.Gate
	recorder DecisionRecorder
}

// NewAccessService は新しいAccessServiceを作成します
// recorder が nil の場合、判定は記録されません
func NewAccessService(gate *authz.Gate, recorder DecisionRecorder) AccessService {
	if gate == nil {
		gate = authz.NewGate()
	}
	return &accessServiceImpl{gate: gate, recorder: recorder}
}

func (s *accessServiceImpl) Authorize(policy authz.Policy, p authz.Principal) error {
	v := policy.Evaluate(p)
	s.record("route:"+policy.Name(), "access", v)
	return VerdictError(v)
}

func (s *accessServiceImpl) AuthorizeListing(action authz.Action, p authz.Principal, listing *entity.Listing) error {
	var target authz.Owned
	if listing != nil {
		target = listing
	}
	v := s.gate.CheckListing(action, p, target)
	s.record(string(authz.ResourceListing), string(action), v)
	return VerdictError(v)
}

func (s *accessServiceImpl) AuthorizeCatalog(action authz.Action, p authz.Principal, catalog *entity.Catalog) error {
	var target authz.Visible
	if catalog != nil {
		target = catalog
	}
	v := s.gate.CheckCatalog(action, p, target)
	s.record(string(authz.ResourceCatalog), string(action), v)
	return VerdictError(v)
}

func (s *accessServiceImpl) record(resource, action string, v authz.Verdict) {
	if s.recorder != nil {
		s.recorder.RecordAuthzDecision(resource, action, v.Decision.String())
	}
}

// VerdictError は判定結果をアプリケーションエラーに変換します
// 許可の場合は nil を返します
func VerdictError(v authz.Verdict) error {
	switch v.Decision {
	case authz.Allow:
		return nil
	case authz.DenyUnauthenticated:
		return apperror.NewUnauthorizedError(v.Reason)
	default:
		return apperror.NewForbiddenError(v.Reason)
	}
}
