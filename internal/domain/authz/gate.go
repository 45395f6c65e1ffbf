package authz

// ResourceKind は認可対象リソースの種類です
type ResourceKind string

const (
	ResourceListing ResourceKind = "listing"
	ResourceCatalog ResourceKind = "catalog"
)

// Action はリソースに対する操作です
type Action string

const (
	ActionList     Action = "list"
	ActionCreate   Action = "create"
	ActionRetrieve Action = "retrieve"
	ActionUpdate   Action = "update"
	ActionDelete   Action = "delete"
)

// 拒否理由
const (
	ReasonChangeOwnObjects = "you may only change your own objects"
	ReasonDeleteOwnObjects = "you may only delete your own objects"
	ReasonManageOwnCatalog = "you may only manage your own catalogs"
	ReasonPrivateCatalog   = "this catalog is private"
)

// Gate はリソースアクセスの判定を行います
// 状態を持たず、リクエストごとに評価されます
type Gate struct {
	write Policy
}

// NewGate は新しいGateを作成します
func NewGate() *Gate {
	return &Gate{write: PolicyAdminOrBroker}
}

// WritePolicy は作成・更新・削除に要求されるロールポリシーを返します
func (g *Gate) WritePolicy() Policy {
	return g.write
}

// CheckListing は物件に対する操作を判定します
// 作成時の target は nil です
func (g *Gate) CheckListing(action Action, p Principal, target Owned) Verdict {
	switch action {
	case ActionList, ActionRetrieve:
		return allow()
	case ActionCreate:
		return g.write.Evaluate(p)
	case ActionUpdate:
		return g.checkOwned(p, target, ReasonChangeOwnObjects)
	case ActionDelete:
		return g.checkOwned(p, target, ReasonDeleteOwnObjects)
	default:
		return Verdict{Decision: DenyForbidden, Rule: "unknown_action", Reason: "unsupported action"}
	}
}

// CheckCatalog はカタログに対する操作を判定します
// 一覧の可視範囲は CatalogScopeFor で決定します
func (g *Gate) CheckCatalog(action Action, p Principal, target Visible) Verdict {
	switch action {
	case ActionList:
		return allow()
	case ActionRetrieve:
		if target == nil || target.IsPublic() || OwnerOrSuperuser(p, target) {
			return allow()
		}
		// 非公開カタログは匿名でも 403 とします
		return Verdict{Decision: DenyForbidden, Rule: "catalog_visibility", Reason: ReasonPrivateCatalog}
	case ActionCreate:
		return g.write.Evaluate(p)
	case ActionUpdate, ActionDelete:
		var owned Owned
		if target != nil {
			owned = target
		}
		return g.checkOwned(p, owned, ReasonManageOwnCatalog)
	default:
		return Verdict{Decision: DenyForbidden, Rule: "unknown_action", Reason: "unsupported action"}
	}
}

// checkOwned はロールゲートと所有者ゲートの両方を評価します
func (g *Gate) checkOwned(p Principal, target Owned, reason string) Verdict {
	if v := g.write.Evaluate(p); !v.Allowed() {
		return v
	}
	if target == nil || !OwnerOrSuperuser(p, target) {
		return Verdict{Decision: DenyForbidden, Rule: "owner_or_superuser", Reason: reason}
	}
	return allow()
}

// CatalogScope はカタログ一覧で参照可能な範囲です
type CatalogScope struct {
	// All はスーパーユーザーのみ true です
	All bool
	// OwnerID が 0 でない場合、公開カタログに加えて当該ユーザーのカタログを含みます
	OwnerID int64
}

// CatalogScopeFor は主体に応じたカタログ一覧の可視範囲を返します
func CatalogScopeFor(p Principal) CatalogScope {
	if !p.Authenticated() {
		return CatalogScope{}
	}
	if p.IsSuperuser {
		return CatalogScope{All: true}
	}
	return CatalogScope{OwnerID: p.UserID}
}
