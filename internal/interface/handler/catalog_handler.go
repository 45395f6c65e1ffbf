package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/mrewrin/LeadTransfer/internal/domain/entity"
	"github.com/mrewrin/LeadTransfer/internal/interface/dto/request"
	"github.com/mrewrin/LeadTransfer/internal/interface/dto/response"
	"github.com/mrewrin/LeadTransfer/internal/interface/middleware"
	"github.com/mrewrin/LeadTransfer/internal/interface/presenter"
	catalogcmd "github.com/mrewrin/LeadTransfer/internal/usecase/catalog/command"
	catalogqry "github.com/mrewrin/LeadTransfer/internal/usecase/catalog/query"
)

// CatalogHandler はカタログ関連のHTTPハンドラーです
type CatalogHandler struct {
	createCatalogCommand *catalogcmd.CreateCatalogCommand
	updateCatalogCommand *catalogcmd.UpdateCatalogCommand
	deleteCatalogCommand *catalogcmd.DeleteCatalogCommand

	getCatalogQuery   *catalogqry.GetCatalogQuery
	listCatalogsQuery *catalogqry.ListCatalogsQuery
}

// NewCatalogHandler は新しいCatalogHandlerを作成します
func NewCatalogHandler(
	createCatalogCommand *catalogcmd.CreateCatalogCommand,
	updateCatalogCommand *catalogcmd.UpdateCatalogCommand,
	deleteCatalogCommand *catalogcmd.DeleteCatalogCommand,
	getCatalogQuery *catalogqry.GetCatalogQuery,
	listCatalogsQuery *catalogqry.ListCatalogsQuery,
) *CatalogHandler {
	return &CatalogHandler{
		createCatalogCommand: createCatalogCommand,
		updateCatalogCommand: updateCatalogCommand,
		deleteCatalogCommand: deleteCatalogCommand,
		getCatalogQuery:      getCatalogQuery,
		listCatalogsQuery:    listCatalogsQuery,
	}
}

// List は主体から見えるカタログ一覧を返します
// @Summary カタログ一覧取得
// @Tags Catalogs
// @Produce json
// @Param limit query int false "取得件数"
// @Param offset query int false "開始位置"
// @Success 200 {object} handler.SwaggerCatalogListResponse
// @Router /catalogs/ [get]
func (h *CatalogHandler) List(c echo.Context) error {
	limit, offset, err := pagination(c)
	if err != nil {
		return err
	}

	output, err := h.listCatalogsQuery.Execute(c.Request().Context(), catalogqry.ListCatalogsInput{
		Actor:  middleware.GetPrincipal(c),
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		return err
	}

	return presenter.List(c, response.ToCatalogListResponse(output.Catalogs), output.Total, output.Limit, output.Offset)
}

// Create はカタログを作成します
// POST /api/catalogs/
func (h *CatalogHandler) Create(c echo.Context) error {
	var req request.CatalogRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	catalog, err := h.createCatalogCommand.Execute(c.Request().Context(), catalogcmd.CreateCatalogInput{
		Actor:        middleware.GetPrincipal(c),
		Attributes:   req.ToAttributes(),
		ListingIDs:   req.ListingIDs(),
		ListingNotes: req.CatalogObjectNotes,
	})
	if err != nil {
		return err
	}

	middleware.AuditHelper(c, entity.AuditActionCatalogCreate, entity.AuditResourceCatalog, &catalog.ID, nil)

	return presenter.Created(c, response.ToCatalogResponse(catalog))
}

// Get はカタログを取得します
// @Summary カタログ取得
// @Description 公開カタログは誰でも、非公開カタログは所有者とスーパーユーザーのみ取得できます
// @Tags Catalogs
// @Produce json
// @Param id path int true "カタログID"
// @Success 200 {object} handler.SwaggerCatalogResponse
// @Failure 403 {object} handler.SwaggerErrorResponse
// @Failure 404 {object} handler.SwaggerErrorResponse
// @Router /catalogs/{id}/ [get]
func (h *CatalogHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id", "Catalog")
	if err != nil {
		return err
	}

	catalog, err := h.getCatalogQuery.Execute(c.Request().Context(), catalogqry.GetCatalogInput{
		Actor:     middleware.GetPrincipal(c),
		CatalogID: id,
	})
	if err != nil {
		return err
	}

	return presenter.OK(c, response.ToCatalogResponse(catalog))
}

// Update はカタログを更新します
// PUT /api/catalogs/:id/
func (h *CatalogHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id", "Catalog")
	if err != nil {
		return err
	}

	var req request.CatalogRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	catalog, err := h.updateCatalogCommand.Execute(c.Request().Context(), catalogcmd.UpdateCatalogInput{
		Actor:        middleware.GetPrincipal(c),
		CatalogID:    id,
		Attributes:   req.ToAttributes(),
		ListingIDs:   req.CatalogObjects,
		ListingNotes: req.CatalogObjectNotes,
	})
	if err != nil {
		return err
	}

	middleware.AuditHelper(c, entity.AuditActionCatalogUpdate, entity.AuditResourceCatalog, &id, nil)

	return presenter.OK(c, response.ToCatalogResponse(catalog))
}

// Delete はカタログを削除します
// DELETE /api/catalogs/:id/
func (h *CatalogHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id", "Catalog")
	if err != nil {
		return err
	}

	if err := h.deleteCatalogCommand.Execute(c.Request().Context(), catalogcmd.DeleteCatalogInput{
		Actor:     middleware.GetPrincipal(c),
		CatalogID: id,
	}); err != nil {
		return err
	}

	middleware.AuditHelper(c, entity.AuditActionCatalogDelete, entity.AuditResourceCatalog, &id, nil)

	return presenter.NoContent(c)
}
