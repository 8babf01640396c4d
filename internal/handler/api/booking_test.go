//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"linenhire/internal/handler/api"
	reqdto "linenhire/internal/handler/dto/request"
	resdto "linenhire/internal/handler/dto/response"
	"linenhire/internal/usecase/commands"
	"linenhire/internal/usecase/queries"
	"linenhire/tests/common/builder"
	"linenhire/tests/common/httptest"
	"linenhire/tests/common/testutil"
	commandsmock "linenhire/tests/mock/commands"
	queriesmock "linenhire/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
	handler      *api.BookingHandler
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/bookings/quote", s.handler.Quote)
	s.router.POST("/bookings", s.handler.Create)
	s.router.GET("/admin/bookings", s.handler.List)
	s.router.PATCH("/admin/bookings/:id/status", s.handler.UpdateStatus)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func (s *BookingHandlerTestSuite) TestQuote() {
	url := "/bookings/quote"
	reqBody := builder.NewBookingBuilder().BuildQuoteDTO()

	s.Run("success: prices a valid selection", func() {
		hours := decimal.RequireFromString("48")
		price := decimal.RequireFromString("2448")
		s.mockCommands.EXPECT().Quote(gomock.Any(), reqBody).
			Return(&commands.QuoteResult{Valid: true, Hours: hours, Price: price, Quantity: 2}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.QuoteResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response.Valid)
		s.Equal("48", response.Hours)
		s.Equal("2448", response.Price)
		s.Equal(int32(2), response.Quantity)
	})

	s.Run("success: invalid schedule is a normal quote, not an error", func() {
		s.mockCommands.EXPECT().Quote(gomock.Any(), reqBody).
			Return(&commands.QuoteResult{Valid: false, ErrorKind: "end_before_start"}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.QuoteResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.False(response.Valid)
		s.Equal("end_before_start", response.ErrorKind)
	})

	s.Run("error: 404 for unknown or inactive product", func() {
		for _, cmdErr := range []error{commands.ErrProductNotFound, commands.ErrProductUnavailable} {
			s.mockCommands.EXPECT().Quote(gomock.Any(), reqBody).
				Return(nil, cmdErr).Times(1)

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
			httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Product not found")
		}
	})

	s.Run("error: 400 on missing fields", func() {
		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("start_date", nil))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})
}

func (s *BookingHandlerTestSuite) TestCreate() {
	url := "/bookings"
	bb := builder.NewBookingBuilder()
	reqBody := bb.BuildCreateDTO()

	s.Run("success: returns 201 Created with the stored booking", func() {
		view := bb.BuildReadModel()
		s.mockCommands.EXPECT().CreateBooking(gomock.Any(), reqBody).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(view.ID, response.ID)
		s.Equal("pending", response.Status)
		s.Equal("1200.00", response.Price)
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "unknown product",
				commandsError:  commands.ErrProductNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Product not found",
			},
			{
				name:           "inactive product",
				commandsError:  commands.ErrProductUnavailable,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Product not found",
			},
			{
				name:           "end before start",
				commandsError:  commands.ErrInvalidSchedule,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "End of booking must be after its start",
			},
			{
				name:           "bad customer data",
				commandsError:  commands.ErrDomainValidation,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Invalid booking data",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().CreateBooking(gomock.Any(), reqBody).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})

	s.Run("error: 400 on missing customer name", func() {
		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("name", nil))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})
}

func (s *BookingHandlerTestSuite) TestList() {
	url := "/admin/bookings"

	s.Run("success: returns all bookings", func() {
		views := []*queries.BookingView{
			builder.NewBookingBuilder().BuildReadModel(),
			builder.NewBookingBuilder().WithStatus("confirmed").BuildReadModel(),
		}
		s.mockQueries.EXPECT().ListAll(gomock.Any()).Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response []resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 2)
		s.Equal("confirmed", response[1].Status)
	})

	s.Run("error: 500 when the read store fails", func() {
		s.mockQueries.EXPECT().ListAll(gomock.Any()).Return(nil, errors.New("boom")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

func (s *BookingHandlerTestSuite) TestUpdateStatus() {
	bookingID := uuid.New()
	url := "/admin/bookings/" + bookingID.String() + "/status"
	reqBody := reqdto.UpdateBookingStatusRequest{Status: "confirmed"}

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().UpdateStatus(gomock.Any(), bookingID, reqBody).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 400 on malformed booking ID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/admin/bookings/not-a-uuid/status", reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid booking ID")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "unknown booking",
				commandsError:  commands.ErrBookingNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Booking not found",
			},
			{
				name:           "illegal transition",
				commandsError:  commands.ErrInvalidStatusChange,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Invalid status change",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().UpdateStatus(gomock.Any(), bookingID, reqBody).
					Return(tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}
