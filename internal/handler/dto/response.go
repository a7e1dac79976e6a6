package dto

import (
	"time"

	"github.com/SZFO/shareit/internal/domain"
)

type UserResponse struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	TelegramChatID *int64 `json:"telegram_chat_id,omitempty"`
}

type ItemResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Available   bool   `json:"available"`
	OwnerID     int64  `json:"owner_id"`
	RequestID   *int64 `json:"request_id,omitempty"`
}

type BookingSummaryResponse struct {
	ID       int64 `json:"id"`
	BookerID int64 `json:"booker_id"`
}

type CommentResponse struct {
	ID         int64  `json:"id"`
	Text       string `json:"text"`
	AuthorName string `json:"author_name"`
	Created    string `json:"created"`
}

type ItemDetailsResponse struct {
	ItemResponse
	LastBooking *BookingSummaryResponse `json:"last_booking,omitempty"`
	NextBooking *BookingSummaryResponse `json:"next_booking,omitempty"`
	Comments    []CommentResponse       `json:"comments"`
}

type BookingResponse struct {
	ID     int64        `json:"id"`
	Start  string       `json:"start"`
	End    string       `json:"end"`
	Status string       `json:"status"`
	Item   ItemResponse `json:"item"`
	Booker UserResponse `json:"booker"`
}

type ItemRequestResponse struct {
	ID          int64  `json:"id"`
	Description string `json:"description"`
	RequesterID int64  `json:"requester_id"`
	Created     string `json:"created"`
}

type ItemRequestDetailsResponse struct {
	ItemRequestResponse
	Items []ItemResponse `json:"items"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:             u.ID,
		Name:           u.Name,
		Email:          u.Email,
		TelegramChatID: u.TelegramChatID,
	}
}

func ToItemResponse(i *domain.Item) ItemResponse {
	return ItemResponse{
		ID:          i.ID,
		Name:        i.Name,
		Description: i.Description,
		Available:   i.Available,
		OwnerID:     i.OwnerID,
		RequestID:   i.RequestID,
	}
}

func ToItemDetailsResponse(d *domain.ItemDetails) ItemDetailsResponse {
	comments := make([]CommentResponse, 0, len(d.Comments))
	for _, c := range d.Comments {
		comments = append(comments, ToCommentResponse(&c))
	}

	return ItemDetailsResponse{
		ItemResponse: ToItemResponse(&d.Item),
		LastBooking:  toSummaryResponse(d.LastBooking),
		NextBooking:  toSummaryResponse(d.NextBooking),
		Comments:     comments,
	}
}

func ToCommentResponse(c *domain.Comment) CommentResponse {
	return CommentResponse{
		ID:         c.ID,
		Text:       c.Text,
		AuthorName: c.AuthorName,
		Created:    c.Created.Format(time.RFC3339),
	}
}

func ToBookingResponse(b *domain.Booking) BookingResponse {
	return BookingResponse{
		ID:     b.ID,
		Start:  b.Start.Format(time.RFC3339),
		End:    b.End.Format(time.RFC3339),
		Status: string(b.Status),
		Item:   ToItemResponse(&b.Item),
		Booker: ToUserResponse(&b.Booker),
	}
}

func ToItemRequestResponse(r *domain.ItemRequest) ItemRequestResponse {
	return ItemRequestResponse{
		ID:          r.ID,
		Description: r.Description,
		RequesterID: r.RequesterID,
		Created:     r.Created.Format(time.RFC3339),
	}
}

func ToItemRequestDetailsResponse(d *domain.ItemRequestDetails) ItemRequestDetailsResponse {
	items := make([]ItemResponse, 0, len(d.Items))
	for _, item := range d.Items {
		items = append(items, ToItemResponse(&item))
	}

	return ItemRequestDetailsResponse{
		ItemRequestResponse: ToItemRequestResponse(&d.ItemRequest),
		Items:               items,
	}
}

func toSummaryResponse(s *domain.BookingSummary) *BookingSummaryResponse {
	if s == nil {
		return nil
	}
	return &BookingSummaryResponse{ID: s.ID, BookerID: s.BookerID}
}
