package request

// AssignRoleRequest はロール割り当てリクエスト
type AssignRoleRequest struct {
	UserID int64  `json:"user_id" validate:"required"`
	Role   string `json:"role" validate:"required"`
}

// AssignBrokerRequest は物件の担当ブローカー変更リクエスト
type AssignBrokerRequest struct {
	BrokerID int64 `json:"broker_id" validate:"required"`
}
