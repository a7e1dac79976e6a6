package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/SZFO/shareit/internal/domain"
	"github.com/SZFO/shareit/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

const defaultBookingState = string(domain.BookingStateAll)

func (h *Handler) CreateBooking(c *ginext.Context) {
	userID, ok := actingUser(c)
	if !ok {
		return
	}

	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	start, err := time.Parse(time.RFC3339, req.Start)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid start format, expected RFC3339"})
		return
	}
	end, err := time.Parse(time.RFC3339, req.End)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid end format, expected RFC3339"})
		return
	}

	input := domain.CreateBookingInput{ItemID: req.ItemID, Start: start, End: end}

	booking, err := h.bookingService.Create(c.Request.Context(), userID, input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToBookingResponse(booking))
}

func (h *Handler) ApproveBooking(c *ginext.Context) {
	userID, ok := actingUser(c)
	if !ok {
		return
	}
	bookingID, ok := pathID(c, "id")
	if !ok {
		return
	}

	approved, err := strconv.ParseBool(c.Query("approved"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "approved must be true or false"})
		return
	}

	booking, err := h.bookingService.Approve(c.Request.Context(), bookingID, userID, approved)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) GetBooking(c *ginext.Context) {
	userID, ok := actingUser(c)
	if !ok {
		return
	}
	bookingID, ok := pathID(c, "id")
	if !ok {
		return
	}

	booking, err := h.bookingService.GetByID(c.Request.Context(), bookingID, userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) ListBookings(c *ginext.Context) {
	userID, ok := actingUser(c)
	if !ok {
		return
	}
	from, size, ok := paging(c)
	if !ok {
		return
	}

	state := c.DefaultQuery("state", defaultBookingState)

	bookings, err := h.bookingService.ListByBooker(c.Request.Context(), userID, state, from, size)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toBookingResponses(bookings))
}

func (h *Handler) ListOwnerBookings(c *ginext.Context) {
	userID, ok := actingUser(c)
	if !ok {
		return
	}
	from, size, ok := paging(c)
	if !ok {
		return
	}

	state := c.DefaultQuery("state", defaultBookingState)

	bookings, err := h.bookingService.ListByOwner(c.Request.Context(), userID, state, from, size)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toBookingResponses(bookings))
}

func toBookingResponses(bookings []*domain.Booking) []dto.BookingResponse {
	resp := make([]dto.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, dto.ToBookingResponse(b))
	}

	return resp
}
