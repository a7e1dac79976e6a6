package handler

import (
	"net/http"

	"github.com/SZFO/shareit/internal/domain"
	"github.com/SZFO/shareit/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) CreateRequest(c *ginext.Context) {
	userID, ok := actingUser(c)
	if !ok {
		return
	}

	var req dto.CreateItemRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	request, err := h.requestService.Create(c.Request.Context(), userID, req.Description)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToItemRequestResponse(request))
}

func (h *Handler) ListOwnRequests(c *ginext.Context) {
	userID, ok := actingUser(c)
	if !ok {
		return
	}
	from, size, ok := paging(c)
	if !ok {
		return
	}

	requests, err := h.requestService.ListOwn(c.Request.Context(), userID, from, size)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toRequestResponses(requests))
}

func (h *Handler) ListOtherRequests(c *ginext.Context) {
	userID, ok := actingUser(c)
	if !ok {
		return
	}
	from, size, ok := paging(c)
	if !ok {
		return
	}

	requests, err := h.requestService.ListOthers(c.Request.Context(), userID, from, size)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toRequestResponses(requests))
}

func (h *Handler) GetRequest(c *ginext.Context) {
	userID, ok := actingUser(c)
	if !ok {
		return
	}
	requestID, ok := pathID(c, "id")
	if !ok {
		return
	}

	request, err := h.requestService.GetByID(c.Request.Context(), userID, requestID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToItemRequestDetailsResponse(request))
}

func toRequestResponses(requests []*domain.ItemRequestDetails) []dto.ItemRequestDetailsResponse {
	resp := make([]dto.ItemRequestDetailsResponse, 0, len(requests))
	for _, r := range requests {
		resp = append(resp, dto.ToItemRequestDetailsResponse(r))
	}

	return resp
}
