package authz

// Decision は認可判定の結果です
type Decision int

const (
	Allow Decision = iota
	// DenyUnauthenticated は匿名の主体による拒否です（HTTP 401 に対応）
	DenyUnauthenticated
	// DenyForbidden は認証済みだが権限のない主体による拒否です（HTTP 403 に対応）
	DenyForbidden
)

// String は文字列を返します
func (d Decision) String() string {
	switch d {
	case Allow:
		return "allow"
	case DenyUnauthenticated:
		return "unauthenticated"
	case DenyForbidden:
		return "forbidden"
	default:
		return "unknown"
	}
}

// Allowed は許可されたかを判定します
func (d Decision) Allowed() bool {
	return d == Allow
}

// Verdict は判定結果と拒否理由を保持します
type Verdict struct {
	Decision Decision
	// Rule は拒否の原因となった述語またはルールの名前です
	Rule   string
	Reason string
}

// Allowed は許可されたかを判定します
func (v Verdict) Allowed() bool {
	return v.Decision.Allowed()
}

func allow() Verdict {
	return Verdict{Decision: Allow}
}

// Policy はルートとメソッドごとに静的に解決される述語の順序付きリストです
// 述語は先頭から順に評価され、全てを満たした場合のみ許可されます
type Policy struct {
	name       string
	predicates []Predicate
}

// NewPolicy は新しいPolicyを作成します
func NewPolicy(name string, preds ...Predicate) Policy {
	cp := make([]Predicate, len(preds))
	copy(cp, preds)
	return Policy{name: name, predicates: cp}
}

// Name はポリシー名を返します
func (pl Policy) Name() string {
	return pl.name
}

// Predicates は述語一覧のコピーを返します
func (pl Policy) Predicates() []Predicate {
	cp := make([]Predicate, len(pl.predicates))
	copy(cp, pl.predicates)
	return cp
}

// Evaluate は主体に対してポリシーを評価します
// 匿名の主体が述語を満たさない場合は DenyUnauthenticated、それ以外は DenyForbidden を返します
func (pl Policy) Evaluate(p Principal) Verdict {
	for _, pred := range pl.predicates {
		if pred.Allows(p) {
			continue
		}
		if !p.Authenticated() {
			return Verdict{
				Decision: DenyUnauthenticated,
				Rule:     pred.Name(),
				Reason:   "authentication credentials were not provided",
			}
		}
		return Verdict{
			Decision: DenyForbidden,
			Rule:     pred.Name(),
			Reason:   "you do not have permission to perform this action",
		}
	}
	return allow()
}

// 各ルートで共有する既定ポリシー
var (
	PolicyPublic             = NewPolicy("public")
	PolicyAuthenticated      = NewPolicy("authenticated", IsAuthenticated)
	PolicyAdminOrModerator   = NewPolicy("admin_or_moderator", IsAuthenticated, IsAdminOrModerator)
	PolicyBrokerOrAmbassador = NewPolicy("broker_or_ambassador", IsAuthenticated, IsBrokerOrAmbassador)
	PolicyAdminOrBroker      = NewPolicy("admin_or_broker", IsAuthenticated, IsAdminOrBroker)
	PolicyStaff              = NewPolicy("staff", IsAuthenticated, IsStaff)
	PolicyListingDelegation  = NewPolicy("listing_delegation", IsAuthenticated,
		AnyOf("is_superuser_or_admin_or_moderator", IsSuperuser, IsAdminOrModerator))
)
