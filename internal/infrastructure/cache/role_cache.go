package cache

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/mrewrin/LeadTransfer/internal/domain/authz"
	"github.com/mrewrin/LeadTransfer/internal/domain/entity"
	"github.com/mrewrin/LeadTransfer/internal/domain/repository"
)

// CachedRoleRepository はロール名での検索をプロセス内LRUで前段キャッシュします
// ロールは作成後に変更されないため、無効化は不要です
type CachedRoleRepository struct {
	next  repository.RoleRepository
	cache *expirable.LRU[authz.RoleName, *entity.Role]
}

// NewCachedRoleRepository は新しいCachedRoleRepositoryを作成します
func NewCachedRoleRepository(next repository.RoleRepository, size int, ttl time.Duration) *CachedRoleRepository {
	if size <= 0 {
		size = 64
	}
	return &CachedRoleRepository{
		next:  next,
		cache: expirable.NewLRU[authz.RoleName, *entity.Role](size, nil, ttl),
	}
}

// GetOrCreate は名前でロールを取得し、存在しなければ作成します
func (r *CachedRoleRepository) GetOrCreate(ctx context.Context, name authz.RoleName) (*entity.Role, error) {
	if role, ok := r.cache.Get(name); ok {
		return role, nil
	}
	role, err := r.next.GetOrCreate(ctx, name)
	if err != nil {
		return nil, err
	}
	r.cache.Add(name, role)
	return role, nil
}

// FindByName は名前でロールを検索します
// 見つからなかった結果はキャッシュしません
func (r *CachedRoleRepository) FindByName(ctx context.Context, name authz.RoleName) (*entity.Role, error) {
	if role, ok := r.cache.Get(name); ok {
		return role, nil
	}
	role, err := r.next.FindByName(ctx, name)
	if err != nil {
		return nil, err
	}
	r.cache.Add(name, role)
	return role, nil
}

// FindByNames は複数の名前でロールを検索します
func (r *CachedRoleRepository) FindByNames(ctx context.Context, names []authz.RoleName) ([]*entity.Role, error) {
	roles, err := r.next.FindByNames(ctx, names)
	if err != nil {
		return nil, err
	}
	for _, role := range roles {
		r.cache.Add(role.Name, role)
	}
	return roles, nil
}

// List は全ロールを返します
func (r *CachedRoleRepository) List(ctx context.Context) ([]*entity.Role, error) {
	roles, err := r.next.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, role := range roles {
		r.cache.Add(role.Name, role)
	}
	return roles, nil
}

// Len はキャッシュ済みのロール数を返します
func (r *CachedRoleRepository) Len() int {
	return r.cache.Len()
}

var _ repository.RoleRepository = (*CachedRoleRepository)(nil)
