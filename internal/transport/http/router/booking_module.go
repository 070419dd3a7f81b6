package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"neighborlend/internal/domain"
	"neighborlend/internal/service"
	httpez "neighborlend/internal/transport/http/ez"
	"neighborlend/pkg/apperror"
)

// BookingModule exposes booking intake, the borrower's booking list, the
// owner's request inbox, and the status transition endpoint. Everything is
// behind authentication.
type BookingModule struct {
	bookings *service.BookingService
}

func NewBookingModule(bookings *service.BookingService) *BookingModule {
	return &BookingModule{bookings: bookings}
}

func (m *BookingModule) Priority() int { return 30 }

func (m *BookingModule) MountAPI(_, authed *gin.RouterGroup) {
	ezAuth := httpez.New(authed)

	type createIn struct {
		ListingID string `json:"listingId" binding:"required"`
		StartDate string `json:"startDate" binding:"required"`
		EndDate   string `json:"endDate"   binding:"required"`
	}
	httpez.Register(ezAuth, httpez.Action[createIn, *domain.Booking]{
		Method: http.MethodPost,
		Path:   "/bookings",
		Binder: httpez.BindJSON,
		Auth:   true,
		Handler: func(c *gin.Context, in *createIn) (*domain.Booking, error) {
			start, err := domain.ParseDate(in.StartDate)
			if err != nil {
				return nil, apperror.BadRequest("invalid start date")
			}
			end, err := domain.ParseDate(in.EndDate)
			if err != nil {
				return nil, apperror.BadRequest("invalid end date")
			}
			return m.bookings.Create(c.Request.Context(), c.GetString("userId"), service.CreateBookingInput{
				ListingID: in.ListingID,
				StartDate: start,
				EndDate:   end,
			})
		},
	})

	httpez.Register(ezAuth, httpez.Action[struct{}, []domain.Booking]{
		Method: http.MethodGet,
		Path:   "/bookings",
		Binder: httpez.BindNone,
		Auth:   true,
		Handler: func(c *gin.Context, _ *struct{}) ([]domain.Booking, error) {
			return m.bookings.MyBookings(c.Request.Context(), c.GetString("userId"))
		},
	})

	httpez.Register(ezAuth, httpez.Action[struct{}, []domain.Booking]{
		Method: http.MethodGet,
		Path:   "/requests",
		Binder: httpez.BindNone,
		Auth:   true,
		Handler: func(c *gin.Context, _ *struct{}) ([]domain.Booking, error) {
			return m.bookings.Requests(c.Request.Context(), c.GetString("userId"))
		},
	})

	type statusIn struct {
		Status string `json:"status" binding:"required,oneof=APPROVED REJECTED COMPLETED"`
	}
	httpez.Register(ezAuth, httpez.Action[statusIn, *domain.Booking]{
		Method: http.MethodPatch,
		Path:   "/bookings/:id",
		Binder: httpez.BindJSON,
		Auth:   true,
		Handler: func(c *gin.Context, in *statusIn) (*domain.Booking, error) {
			return m.bookings.Transition(c.Request.Context(), c.GetString("userId"), c.Param("id"), domain.BookingStatus(in.Status))
		},
	})
}
