package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SZFO/shareit/internal/domain"
	"github.com/SZFO/shareit/internal/handler/dto"
	hmocks "github.com/SZFO/shareit/internal/handler/mocks"
	"github.com/SZFO/shareit/internal/router"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupRouter(t *testing.T) (*hmocks.MockUserSvc, *hmocks.MockItemSvc, *hmocks.MockBookingSvc, *hmocks.MockRequestSvc, http.Handler) {
	t.Helper()

	userSvc := hmocks.NewMockUserSvc(t)
	itemSvc := hmocks.NewMockItemSvc(t)
	bookingSvc := hmocks.NewMockBookingSvc(t)
	requestSvc := hmocks.NewMockRequestSvc(t)

	h := NewHandler(userSvc, itemSvc, bookingSvc, requestSvc)
	r := router.InitRouter("test", h)

	return userSvc, itemSvc, bookingSvc, requestSvc, r
}

// --- Users ---

func TestHandler_CreateUser_Success(t *testing.T) {
	userSvc, _, _, _, r := setupRouter(t)

	user := &domain.User{ID: 1, Name: "alice", Email: "alice@example.com"}

	userSvc.EXPECT().Create(mock.Anything, mock.Anything).Return(user, nil)

	body, _ := json.Marshal(dto.CreateUserRequest{Name: "alice", Email: "alice@example.com"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/users", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "alice", resp.Name)
}

func TestHandler_CreateUser_BadBody(t *testing.T) {
	_, _, _, _, r := setupRouter(t)

	body := []byte(`{"name":"alice"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/users", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateUser_EmailConflict(t *testing.T) {
	userSvc, _, _, _, r := setupRouter(t)

	userSvc.EXPECT().Create(mock.Anything, mock.Anything).Return(nil, domain.ErrEmailTaken)

	body, _ := json.Marshal(dto.CreateUserRequest{Name: "alice", Email: "taken@example.com"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/users", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_GetUser_NotFound(t *testing.T) {
	userSvc, _, _, _, r := setupRouter(t)

	userSvc.EXPECT().GetByID(mock.Anything, int64(99)).Return(nil, domain.ErrUserNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/users/99", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_GetUser_BadID(t *testing.T) {
	_, _, _, _, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/users/abc", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_DeleteUser_NoContent(t *testing.T) {
	userSvc, _, _, _, r := setupRouter(t)

	userSvc.EXPECT().Delete(mock.Anything, int64(1)).Return(nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/users/1", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

// --- Items ---

func TestHandler_CreateItem_Success(t *testing.T) {
	_, itemSvc, _, _, r := setupRouter(t)

	item := &domain.Item{ID: 10, Name: "drill", Description: "cordless", Available: true, OwnerID: 1}

	itemSvc.EXPECT().Create(mock.Anything, int64(1), mock.Anything).Return(item, nil)

	body := []byte(`{"name":"drill","description":"cordless","available":true}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/items", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(UserIDHeader, "1")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.ItemResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(10), resp.ID)
	assert.True(t, resp.Available)
}

func TestHandler_CreateItem_MissingUserHeader(t *testing.T) {
	_, _, _, _, r := setupRouter(t)

	body := []byte(`{"name":"drill","description":"cordless","available":true}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/items", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateItem_BadUserHeader(t *testing.T) {
	_, _, _, _, r := setupRouter(t)

	body := []byte(`{"name":"drill","description":"cordless","available":true}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/items", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(UserIDHeader, "not-a-number")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateItem_MissingAvailable(t *testing.T) {
	_, _, _, _, r := setupRouter(t)

	body := []byte(`{"name":"drill","description":"cordless"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/items", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(UserIDHeader, "1")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_UpdateItem_NotOwner(t *testing.T) {
	_, itemSvc, _, _, r := setupRouter(t)

	itemSvc.EXPECT().Update(mock.Anything, int64(2), int64(10), mock.Anything).Return(nil, domain.ErrNotItemOwner)

	body := []byte(`{"name":"drill"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/items/10", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(UserIDHeader, "2")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_GetItem_Success(t *testing.T) {
	_, itemSvc, _, _, r := setupRouter(t)

	details := &domain.ItemDetails{
		Item:        domain.Item{ID: 10, Name: "drill", Available: true, OwnerID: 1},
		LastBooking: &domain.BookingSummary{ID: 100, BookerID: 2},
		Comments:    []domain.Comment{},
	}

	itemSvc.EXPECT().GetByID(mock.Anything, int64(1), int64(10)).Return(details, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/items/10", nil)
	req.Header.Set(UserIDHeader, "1")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.ItemDetailsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.LastBooking)
	assert.Equal(t, int64(100), resp.LastBooking.ID)
	assert.Nil(t, resp.NextBooking)
	assert.NotNil(t, resp.Comments)
}

func TestHandler_SearchItems_NoHeaderNeeded(t *testing.T) {
	_, itemSvc, _, _, r := setupRouter(t)

	items := []*domain.Item{{ID: 10, Name: "drill", Available: true}}

	itemSvc.EXPECT().Search(mock.Anything, "drill", 0, 10).Return(items, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/items/search?text=drill", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.ItemResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "drill", resp[0].Name)
}

func TestHandler_ListItems_BadPaging(t *testing.T) {
	_, _, _, _, r := setupRouter(t)

	for _, query := range []string{"from=-1", "size=0", "size=-5", "from=x"} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/items?"+query, nil)
		req.Header.Set(UserIDHeader, "1")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code, "query %q", query)
	}
}

func TestHandler_CreateComment_Gated(t *testing.T) {
	_, itemSvc, _, _, r := setupRouter(t)

	itemSvc.EXPECT().CreateComment(mock.Anything, int64(2), int64(10), "never used it").Return(nil, domain.ErrNoFinishedBooking)

	body := []byte(`{"text":"never used it"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/items/10/comment", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(UserIDHeader, "2")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateComment_Success(t *testing.T) {
	_, itemSvc, _, _, r := setupRouter(t)

	comment := &domain.Comment{ID: 1, Text: "great drill", AuthorName: "alice", Created: time.Now()}

	itemSvc.EXPECT().CreateComment(mock.Anything, int64(2), int64(10), "great drill").Return(comment, nil)

	body := []byte(`{"text":"great drill"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/items/10/comment", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(UserIDHeader, "2")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.CommentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "alice", resp.AuthorName)
}

// --- Bookings ---

func TestHandler_CreateBooking_Success(t *testing.T) {
	_, _, bookingSvc, _, r := setupRouter(t)

	start := time.Date(2030, 6, 1, 12, 0, 0, 0, time.UTC)
	booking := &domain.Booking{
		ID:     100,
		Start:  start,
		End:    start.Add(time.Hour),
		Status: domain.BookingStatusWaiting,
		Item:   domain.Item{ID: 10},
		Booker: domain.User{ID: 2},
	}

	bookingSvc.EXPECT().Create(mock.Anything, int64(2), mock.Anything).Return(booking, nil)

	body, _ := json.Marshal(dto.CreateBookingRequest{
		ItemID: 10,
		Start:  start.Format(time.RFC3339),
		End:    start.Add(time.Hour).Format(time.RFC3339),
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/bookings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(UserIDHeader, "2")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(100), resp.ID)
	assert.Equal(t, "WAITING", resp.Status)
}

func TestHandler_CreateBooking_BadDate(t *testing.T) {
	_, _, _, _, r := setupRouter(t)

	body := []byte(`{"item_id":10,"start":"not-a-date","end":"2030-06-01T13:00:00Z"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/bookings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(UserIDHeader, "2")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateBooking_OwnItem(t *testing.T) {
	_, _, bookingSvc, _, r := setupRouter(t)

	bookingSvc.EXPECT().Create(mock.Anything, int64(1), mock.Anything).Return(nil, domain.ErrOwnItemBooking)

	body := []byte(`{"item_id":10,"start":"2030-06-01T12:00:00Z","end":"2030-06-01T13:00:00Z"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/bookings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(UserIDHeader, "1")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_ApproveBooking_Success(t *testing.T) {
	_, _, bookingSvc, _, r := setupRouter(t)

	booking := &domain.Booking{
		ID:     100,
		Status: domain.BookingStatusApproved,
		Item:   domain.Item{ID: 10, OwnerID: 1},
		Booker: domain.User{ID: 2},
	}

	bookingSvc.EXPECT().Approve(mock.Anything, int64(100), int64(1), true).Return(booking, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/bookings/100?approved=true", nil)
	req.Header.Set(UserIDHeader, "1")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "APPROVED", resp.Status)
}

func TestHandler_ApproveBooking_BadFlag(t *testing.T) {
	_, _, _, _, r := setupRouter(t)

	for _, query := range []string{"", "approved=", "approved=maybe"} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPatch, "/bookings/100?"+query, nil)
		req.Header.Set(UserIDHeader, "1")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code, "query %q", query)
	}
}

func TestHandler_ApproveBooking_AlreadyProcessed(t *testing.T) {
	_, _, bookingSvc, _, r := setupRouter(t)

	bookingSvc.EXPECT().Approve(mock.Anything, int64(100), int64(1), true).Return(nil, domain.ErrBookingProcessed)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/bookings/100?approved=true", nil)
	req.Header.Set(UserIDHeader, "1")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetBooking_Hidden(t *testing.T) {
	_, _, bookingSvc, _, r := setupRouter(t)

	bookingSvc.EXPECT().GetByID(mock.Anything, int64(100), int64(3)).Return(nil, domain.ErrNotBookingParty)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/bookings/100", nil)
	req.Header.Set(UserIDHeader, "3")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_ListBookings_DefaultState(t *testing.T) {
	_, _, bookingSvc, _, r := setupRouter(t)

	bookingSvc.EXPECT().ListByBooker(mock.Anything, int64(2), "ALL", 0, 10).Return([]*domain.Booking{}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/bookings", nil)
	req.Header.Set(UserIDHeader, "2")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_ListBookings_UnknownState(t *testing.T) {
	_, _, bookingSvc, _, r := setupRouter(t)

	bookingSvc.EXPECT().ListByBooker(mock.Anything, int64(2), "BOGUS", 0, 10).Return(nil, domain.ErrUnknownState)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/bookings?state=BOGUS", nil)
	req.Header.Set(UserIDHeader, "2")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ListOwnerBookings(t *testing.T) {
	_, _, bookingSvc, _, r := setupRouter(t)

	bookings := []*domain.Booking{{ID: 100, Status: domain.BookingStatusWaiting}}

	bookingSvc.EXPECT().ListByOwner(mock.Anything, int64(1), "WAITING", 0, 10).Return(bookings, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/bookings/owner?state=WAITING", nil)
	req.Header.Set(UserIDHeader, "1")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, int64(100), resp[0].ID)
}

// --- Requests ---

func TestHandler_CreateRequest_Success(t *testing.T) {
	_, _, _, requestSvc, r := setupRouter(t)

	request := &domain.ItemRequest{ID: 7, Description: "need a drill", RequesterID: 2, Created: time.Now()}

	requestSvc.EXPECT().Create(mock.Anything, int64(2), "need a drill").Return(request, nil)

	body := []byte(`{"description":"need a drill"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/requests", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(UserIDHeader, "2")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.ItemRequestResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(7), resp.ID)
}

func TestHandler_ListOtherRequests(t *testing.T) {
	_, _, _, requestSvc, r := setupRouter(t)

	details := []*domain.ItemRequestDetails{
		{ItemRequest: domain.ItemRequest{ID: 9, RequesterID: 3}, Items: []domain.Item{}},
	}

	requestSvc.EXPECT().ListOthers(mock.Anything, int64(2), 0, 10).Return(details, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/requests/all", nil)
	req.Header.Set(UserIDHeader, "2")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.ItemRequestDetailsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, int64(9), resp[0].ID)
	assert.NotNil(t, resp[0].Items)
}

func TestHandler_GetRequest_NotFound(t *testing.T) {
	_, _, _, requestSvc, r := setupRouter(t)

	requestSvc.EXPECT().GetByID(mock.Anything, int64(2), int64(99)).Return(nil, domain.ErrRequestNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/requests/99", nil)
	req.Header.Set(UserIDHeader, "2")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_Health(t *testing.T) {
	_, _, _, _, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
