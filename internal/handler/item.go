package handler

import (
	"net/http"

	"github.com/SZFO/shareit/internal/domain"
	"github.com/SZFO/shareit/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) CreateItem(c *ginext.Context) {
	userID, ok := actingUser(c)
	if !ok {
		return
	}

	var req dto.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.CreateItemInput{
		Name:        req.Name,
		Description: req.Description,
		Available:   *req.Available,
		RequestID:   req.RequestID,
	}

	item, err := h.itemService.Create(c.Request.Context(), userID, input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToItemResponse(item))
}

func (h *Handler) UpdateItem(c *ginext.Context) {
	userID, ok := actingUser(c)
	if !ok {
		return
	}
	itemID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.UpdateItemInput{
		Name:        req.Name,
		Description: req.Description,
		Available:   req.Available,
	}

	item, err := h.itemService.Update(c.Request.Context(), userID, itemID, input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToItemResponse(item))
}

func (h *Handler) GetItem(c *ginext.Context) {
	userID, ok := actingUser(c)
	if !ok {
		return
	}
	itemID, ok := pathID(c, "id")
	if !ok {
		return
	}

	details, err := h.itemService.GetByID(c.Request.Context(), userID, itemID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToItemDetailsResponse(details))
}

func (h *Handler) ListItems(c *ginext.Context) {
	userID, ok := actingUser(c)
	if !ok {
		return
	}
	from, size, ok := paging(c)
	if !ok {
		return
	}

	items, err := h.itemService.ListByOwner(c.Request.Context(), userID, from, size)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.ItemDetailsResponse, 0, len(items))
	for _, item := range items {
		resp = append(resp, dto.ToItemDetailsResponse(item))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) SearchItems(c *ginext.Context) {
	from, size, ok := paging(c)
	if !ok {
		return
	}

	items, err := h.itemService.Search(c.Request.Context(), c.Query("text"), from, size)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.ItemResponse, 0, len(items))
	for _, item := range items {
		resp = append(resp, dto.ToItemResponse(item))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) DeleteItem(c *ginext.Context) {
	itemID, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.itemService.Delete(c.Request.Context(), itemID); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) CreateComment(c *ginext.Context) {
	userID, ok := actingUser(c)
	if !ok {
		return
	}
	itemID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	comment, err := h.itemService.CreateComment(c.Request.Context(), userID, itemID, req.Text)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToCommentResponse(comment))
}
