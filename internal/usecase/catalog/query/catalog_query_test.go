package query_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrewrin/LeadTransfer/internal/domain/authz"
	"github.com/mrewrin/LeadTransfer/internal/domain/entity"
	"github.com/mrewrin/LeadTransfer/internal/domain/service"
	"github.com/mrewrin/LeadTransfer/internal/usecase/catalog/query"
	"github.com/mrewrin/LeadTransfer/pkg/apperror"
	"github.com/mrewrin/LeadTransfer/tests/testutil/mocks"
)

func privateCatalog(id, owner int64) *entity.Catalog {
	c := entity.NewCatalog(owner, entity.CatalogAttributes{Name: "Private"})
	c.ID = id
	return c
}

func TestGetCatalogQuery_Execute_PrivateVisibility(t *testing.T) {
	tests := []struct {
		name    string
		actor   authz.Principal
		allowed bool
	}{
		{name: "owner", actor: authz.Principal{UserID: 5}, allowed: true},
		{name: "superuser", actor: authz.Principal{UserID: 1, IsSuperuser: true}, allowed: true},
		{name: "other user", actor: authz.Principal{UserID: 6}},
		{name: "anonymous", actor: authz.Anonymous()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			repo := mocks.NewMockCatalogRepository(t)
			repo.On("FindByID", ctx, int64(9)).Return(privateCatalog(9, 5), nil)

			_, err := query.NewGetCatalogQuery(repo, service.NewAccessService(nil, nil)).
				Execute(ctx, query.GetCatalogInput{Actor: tt.actor, CatalogID: 9})

			if tt.allowed {
				require.NoError(t, err)
				return
			}
			var appErr *apperror.AppError
			require.True(t, errors.As(err, &appErr))
			assert.Equal(t, apperror.CodeForbidden, appErr.Code)
			assert.Equal(t, "this catalog is private", appErr.Message)
		})
	}
}

func TestListCatalogsQuery_Execute_ScopeFollowsPrincipal(t *testing.T) {
	tests := []struct {
		name  string
		actor authz.Principal
		scope authz.CatalogScope
	}{
		{name: "anonymous", actor: authz.Anonymous(), scope: authz.CatalogScope{}},
		{name: "user", actor: authz.Principal{UserID: 5}, scope: authz.CatalogScope{OwnerID: 5}},
		{name: "superuser", actor: authz.Principal{UserID: 1, IsSuperuser: true}, scope: authz.CatalogScope{All: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			repo := mocks.NewMockCatalogRepository(t)
			repo.On("List", ctx, tt.scope, 20, 0).Return([]*entity.Catalog{}, 0, nil)

			out, err := query.NewListCatalogsQuery(repo).Execute(ctx, query.ListCatalogsInput{Actor: tt.actor})

			require.NoError(t, err)
			assert.Equal(t, 20, out.Limit)
		})
	}
}
