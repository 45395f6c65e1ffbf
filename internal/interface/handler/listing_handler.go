package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/mrewrin/LeadTransfer/internal/domain/entity"
	"github.com/mrewrin/LeadTransfer/internal/interface/dto/request"
	"github.com/mrewrin/LeadTransfer/internal/interface/dto/response"
	"github.com/mrewrin/LeadTransfer/internal/interface/middleware"
	"github.com/mrewrin/LeadTransfer/internal/interface/presenter"
	listingcmd "github.com/mrewrin/LeadTransfer/internal/usecase/listing/command"
	listingqry "github.com/mrewrin/LeadTransfer/internal/usecase/listing/query"
)

// ListingHandler は物件関連のHTTPハンドラーです
type ListingHandler struct {
	createListingCommand *listingcmd.CreateListingCommand
	updateListingCommand *listingcmd.UpdateListingCommand
	deleteListingCommand *listingcmd.DeleteListingCommand
	assignBrokerCommand  *listingcmd.AssignBrokerCommand

	getListingQuery   *listingqry.GetListingQuery
	listListingsQuery *listingqry.ListListingsQuery
}

// NewListingHandler は新しいListingHandlerを作成します
func NewListingHandler(
	createListingCommand *listingcmd.CreateListingCommand,
	updateListingCommand *listingcmd.UpdateListingCommand,
	deleteListingCommand *listingcmd.DeleteListingCommand,
	assignBrokerCommand *listingcmd.AssignBrokerCommand,
	getListingQuery *listingqry.GetListingQuery,
	listListingsQuery *listingqry.ListListingsQuery,
) *ListingHandler {
	return &ListingHandler{
		createListingCommand: createListingCommand,
		updateListingCommand: updateListingCommand,
		deleteListingCommand: deleteListingCommand,
		assignBrokerCommand:  assignBrokerCommand,
		getListingQuery:      getListingQuery,
		listListingsQuery:    listListingsQuery,
	}
}

// List は物件一覧を返します
// @Summary 物件一覧取得
// @Description 価格・状態・所在地で絞り込んだ物件一覧を返します
// @Tags Objects
// @Produce json
// @Param price_min query number false "最低価格"
// @Param price_max query number false "最高価格"
// @Param status query string false "取引状態" Enums(sale, rent, sold)
// @Param country query string false "国（部分一致）"
// @Param city query string false "都市（完全一致）"
// @Param ordering query string false "並び順" Enums(price, -price, created_at, -created_at)
// @Param limit query int false "取得件数"
// @Param offset query int false "開始位置"
// @Success 200 {object} handler.SwaggerListingListResponse
// @Failure 400 {object} handler.SwaggerErrorResponse
// @Router /objects/ [get]
func (h *ListingHandler) List(c echo.Context) error {
	priceMin, err := queryFloat(c, "price_min")
	if err != nil {
		return err
	}
	priceMax, err := queryFloat(c, "price_max")
	if err != nil {
		return err
	}
	limit, offset, err := pagination(c)
	if err != nil {
		return err
	}

	output, err := h.listListingsQuery.Execute(c.Request().Context(), listingqry.ListListingsInput{
		PriceMin: priceMin,
		PriceMax: priceMax,
		Status:   c.QueryParam("status"),
		Country:  c.QueryParam("country"),
		City:     c.QueryParam("city"),
		Ordering: c.QueryParam("ordering"),
		Limit:    limit,
		Offset:   offset,
	})
	if err != nil {
		return err
	}

	return presenter.List(c, response.ToListingListResponse(output.Listings), output.Total, output.Limit, output.Offset)
}

// Create は物件を作成します
// @Summary 物件作成
// @Tags Objects
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body request.ListingRequest true "物件情報"
// @Success 201 {object} handler.SwaggerListingResponse
// @Failure 400 {object} handler.SwaggerErrorResponse
// @Failure 401 {object} handler.SwaggerErrorResponse
// @Failure 403 {object} handler.SwaggerErrorResponse
// @Router /objects/ [post]
func (h *ListingHandler) Create(c echo.Context) error {
	var req request.ListingRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	attrs, err := req.ToAttributes()
	if err != nil {
		return err
	}

	listing, err := h.createListingCommand.Execute(c.Request().Context(), listingcmd.CreateListingInput{
		Actor:      middleware.GetPrincipal(c),
		Attributes: attrs,
	})
	if err != nil {
		return err
	}

	middleware.AuditHelper(c, entity.AuditActionListingCreate, entity.AuditResourceListing, &listing.ID, nil)

	return presenter.Created(c, response.ToListingResponse(listing))
}

// Get は物件を取得します
// GET /api/objects/:id/
func (h *ListingHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id", "Object")
	if err != nil {
		return err
	}

	listing, err := h.getListingQuery.Execute(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return presenter.OK(c, response.ToListingResponse(listing))
}

// Update は物件を更新します
// @Summary 物件更新
// @Tags Objects
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "物件ID"
// @Param body body request.ListingRequest true "物件情報"
// @Success 200 {object} handler.SwaggerListingResponse
// @Failure 400 {object} handler.SwaggerErrorResponse
// @Failure 403 {object} handler.SwaggerErrorResponse
// @Failure 404 {object} handler.SwaggerErrorResponse
// @Router /objects/{id}/ [put]
func (h *ListingHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id", "Object")
	if err != nil {
		return err
	}

	var req request.ListingRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	attrs, err := req.ToAttributes()
	if err != nil {
		return err
	}

	listing, err := h.updateListingCommand.Execute(c.Request().Context(), listingcmd.UpdateListingInput{
		Actor:      middleware.GetPrincipal(c),
		ListingID:  id,
		Attributes: attrs,
		BrokerID:   req.Broker,
	})
	if err != nil {
		return err
	}

	middleware.AuditHelper(c, entity.AuditActionListingUpdate, entity.AuditResourceListing, &id, nil)

	return presenter.OK(c, response.ToListingResponse(listing))
}

// Delete は物件を削除します
// DELETE /api/objects/:id/
func (h *ListingHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id", "Object")
	if err != nil {
		return err
	}

	if err := h.deleteListingCommand.Execute(c.Request().Context(), listingcmd.DeleteListingInput{
		Actor:     middleware.GetPrincipal(c),
		ListingID: id,
	}); err != nil {
		return err
	}

	middleware.AuditHelper(c, entity.AuditActionListingDelete, entity.AuditResourceListing, &id, nil)

	return presenter.NoContent(c)
}

// AssignBroker は物件の担当ブローカーを変更します
// POST /api/objects/:id/assign-broker/
func (h *ListingHandler) AssignBroker(c echo.Context) error {
	id, err := pathID(c, "id", "Object")
	if err != nil {
		return err
	}

	var req request.AssignBrokerRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	listing, err := h.assignBrokerCommand.Execute(c.Request().Context(), listingcmd.AssignBrokerInput{
		Actor:     middleware.GetPrincipal(c),
		ListingID: id,
		BrokerID:  req.BrokerID,
	})
	if err != nil {
		return err
	}

	middleware.AuditHelper(c, entity.AuditActionListingAssignBroker, entity.AuditResourceListing, &id, map[string]any{
		"broker_id": req.BrokerID,
	})

	return presenter.OK(c, response.ToListingResponse(listing))
}
