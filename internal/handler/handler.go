package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/SZFO/shareit/internal/domain"
	"github.com/SZFO/shareit/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

// UserIDHeader names the trusted header carrying the acting user id.
const UserIDHeader = "X-Sharer-User-Id"

const (
	defaultFrom = 0
	defaultSize = 10
)

type UserSvc interface {
	Create(ctx context.Context, input domain.CreateUserInput) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	Update(ctx context.Context, id int64, input domain.UpdateUserInput) (*domain.User, error)
	Delete(ctx context.Context, id int64) error
}

type ItemSvc interface {
	Create(ctx context.Context, ownerID int64, input domain.CreateItemInput) (*domain.Item, error)
	Update(ctx context.Context, userID, itemID int64, input domain.UpdateItemInput) (*domain.Item, error)
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, userID, itemID int64) (*domain.ItemDetails, error)
	ListByOwner(ctx context.Context, ownerID int64, from, size int) ([]*domain.ItemDetails, error)
	Search(ctx context.Context, text string, from, size int) ([]*domain.Item, error)
	CreateComment(ctx context.Context, userID, itemID int64, text string) (*domain.Comment, error)
}

type BookingSvc interface {
	Create(ctx context.Context, bookerID int64, input domain.CreateBookingInput) (*domain.Booking, error)
	Approve(ctx context.Context, bookingID, userID int64, approved bool) (*domain.Booking, error)
	GetByID(ctx context.Context, bookingID, userID int64) (*domain.Booking, error)
	ListByBooker(ctx context.Context, bookerID int64, state string, from, size int) ([]*domain.Booking, error)
	ListByOwner(ctx context.Context, ownerID int64, state string, from, size int) ([]*domain.Booking, error)
}

type RequestSvc interface {
	Create(ctx context.Context, requesterID int64, description string) (*domain.ItemRequest, error)
	GetByID(ctx context.Context, userID, requestID int64) (*domain.ItemRequestDetails, error)
	ListOwn(ctx context.Context, userID int64, from, size int) ([]*domain.ItemRequestDetails, error)
	ListOthers(ctx context.Context, userID int64, from, size int) ([]*domain.ItemRequestDetails, error)
}

type Handler struct {
	userService    UserSvc
	itemService    ItemSvc
	bookingService BookingSvc
	requestService RequestSvc
}

func NewHandler(userService UserSvc, itemService ItemSvc, bookingService BookingSvc, requestService RequestSvc) *Handler {
	return &Handler{
		userService:    userService,
		itemService:    itemService,
		bookingService: bookingService,
		requestService: requestService,
	}
}

// actingUser resolves the acting user id from the request header. On
// failure it writes the error response and reports false.
func actingUser(c *ginext.Context) (int64, bool) {
	raw := c.GetHeader(UserIDHeader)
	if raw == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "missing " + UserIDHeader + " header"})
		return 0, false
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid " + UserIDHeader + " header"})
		return 0, false
	}

	return id, true
}

func pathID(c *ginext.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid " + name})
		return 0, false
	}

	return id, true
}

// paging reads the from/size query parameters, applying the defaults and
// rejecting negative offsets and non-positive page sizes.
func paging(c *ginext.Context) (from, size int, ok bool) {
	from, err := intQuery(c, "from", defaultFrom)
	if err != nil || from < 0 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "from must be a non-negative integer"})
		return 0, 0, false
	}

	size, err = intQuery(c, "size", defaultSize)
	if err != nil || size <= 0 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "size must be a positive integer"})
		return 0, 0, false
	}

	return from, size, true
}

func intQuery(c *ginext.Context, name string, def int) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return def, nil
	}

	return strconv.Atoi(raw)
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrItemNotFound),
		errors.Is(err, domain.ErrBookingNotFound),
		errors.Is(err, domain.ErrRequestNotFound),
		errors.Is(err, domain.ErrOwnItemBooking),
		errors.Is(err, domain.ErrNotItemOwner),
		errors.Is(err, domain.ErrNotBookingParty):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrUnknownState),
		errors.Is(err, domain.ErrBookingProcessed),
		errors.Is(err, domain.ErrNoFinishedBooking):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrEmailTaken):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
