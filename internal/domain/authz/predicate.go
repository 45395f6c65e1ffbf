package authz

// Predicate は主体に対する認可述語です
// 実装は副作用を持たず、プロファイルやロールの欠落に対しては拒否を返します
type Predicate interface {
	Name() string
	Allows(p Principal) bool
}

type predicateFunc struct {
	name string
	fn   func(p Principal) bool
}

func (f predicateFunc) Name() string            { return f.name }
func (f predicateFunc) Allows(p Principal) bool { return f.fn(p) }

// NewPredicate は関数から述語を作成します
func NewPredicate(name string, fn func(p Principal) bool) Predicate {
	return predicateFunc{name: name, fn: fn}
}

var (
	// IsAuthenticated は認証済みの主体を許可します
	IsAuthenticated = NewPredicate("is_authenticated", func(p Principal) bool {
		return p.Authenticated()
	})

	// IsAdminOrModerator は super_admin / admin / moderator ロールを許可します
	IsAdminOrModerator = NewPredicate("is_admin_or_moderator", func(p Principal) bool {
		return p.hasRoleIn(adminOrModeratorRoles)
	})

	// IsBrokerOrAmbassador は broker / ambassador ロールを許可します
	IsBrokerOrAmbassador = NewPredicate("is_broker_or_ambassador", func(p Principal) bool {
		return p.hasRoleIn(brokerRoles)
	})

	// IsAdminOrBroker はスーパーユーザー、または broker / ambassador ロールを許可します
	// スーパーユーザーはプロファイルの有無に関わらず許可されます
	IsAdminOrBroker = NewPredicate("is_admin_or_broker", func(p Principal) bool {
		if !p.Authenticated() {
			return false
		}
		return p.IsSuperuser || p.hasRoleIn(brokerRoles)
	})

	// IsBuyer は buyer ロールを許可します
	IsBuyer = NewPredicate("is_buyer", func(p Principal) bool {
		return p.hasRoleIn(buyerRoles)
	})

	// IsStaff はスタッフまたはスーパーユーザーを許可します
	IsStaff = NewPredicate("is_staff", func(p Principal) bool {
		return p.Authenticated() && (p.IsStaff || p.IsSuperuser)
	})

	// IsSuperuser はスーパーユーザーを許可します
	IsSuperuser = NewPredicate("is_superuser", func(p Principal) bool {
		return p.Authenticated() && p.IsSuperuser
	})
)

// AnyOf はいずれかの述語を満たす場合に許可する述語を作成します
func AnyOf(name string, preds ...Predicate) Predicate {
	return NewPredicate(name, func(p Principal) bool {
		for _, pred := range preds {
			if pred.Allows(p) {
				return true
			}
		}
		return false
	})
}
