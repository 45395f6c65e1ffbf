package entity

import (
	"time"

	"github.com/google/uuid"
)

// AuditAction は監査ログのアクション種別を定義します
type AuditAction string

const (
	AuditActionLogin          AuditAction = "auth.login"
	AuditActionLoginFailed    AuditAction = "auth.login_failed"
	AuditActionLogout         AuditAction = "auth.logout"
	AuditActionRegister       AuditAction = "auth.register"
	AuditActionPasswordChange AuditAction = "auth.password_change"

	AuditActionRoleAssign     AuditAction = "role.assign"
	AuditActionBrokerVerify   AuditAction = "user.verify_broker"
	AuditActionVerifySubmit   AuditAction = "profile.verification_submit"
	AuditActionVerifyDecision AuditAction = "profile.verification_decision"
	AuditActionProfileUpdate  AuditAction = "profile.update"

	AuditActionListingCreate       AuditAction = "listing.create"
	AuditActionListingUpdate       AuditAction = "listing.update"
	AuditActionListingDelete       AuditAction = "listing.delete"
	AuditActionListingAssignBroker AuditAction = "listing.assign_broker"

	AuditActionCatalogCreate AuditAction = "catalog.create"
	AuditActionCatalogUpdate AuditAction = "catalog.update"
	AuditActionCatalogDelete AuditAction = "catalog.delete"

	AuditActionAccessDenied AuditAction = "authz.denied"
)

// AuditResourceType はリソースの種類を定義します
type AuditResourceType string

const (
	AuditResourceUser    AuditResourceType = "user"
	AuditResourceProfile AuditResourceType = "profile"
	AuditResourceRole    AuditResourceType = "role"
	AuditResourceListing AuditResourceType = "listing"
	AuditResourceCatalog AuditResourceType = "catalog"
	AuditResourceRoute   AuditResourceType = "route"
)

// AuditLog は監査ログエントリを表します
type AuditLog struct {
	ID           uuid.UUID
	UserID       *int64
	Action       AuditAction
	ResourceType AuditResourceType
	ResourceID   *int64
	Details      map[string]any
	IPAddress    string
	UserAgent    string
	RequestID    string
	CreatedAt    time.Time
}
