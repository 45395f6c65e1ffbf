package entity

import (
	"time"

	"github.com/mrewrin/LeadTransfer/internal/domain/authz"
)

// Role はロールエンティティです
// 作成後に変更されることはありません
type Role struct {
	ID        int64
	Name      authz.RoleName
	CreatedAt time.Time
}
