//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"linenhire/internal/handler/api"
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
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type QueryHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockQueryCommands
	mockQueries  *queriesmock.MockQueryQueries
	handler      *api.QueryHandler
}

func (s *QueryHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockQueryCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockQueryQueries(s.mockCtrl)
	s.handler = api.NewQueryHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/queries", s.handler.Submit)
	s.router.GET("/admin/queries", s.handler.List)
	s.router.PATCH("/admin/queries/:id/read", s.handler.MarkRead)
	s.router.DELETE("/admin/queries/:id", s.handler.Delete)
}

func (s *QueryHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestQueryHandlerSuite(t *testing.T) {
	suite.Run(t, new(QueryHandlerTestSuite))
}

func (s *QueryHandlerTestSuite) TestSubmit() {
	url := "/queries"
	reqBody := builder.NewQueryBuilder().BuildDTO()

	s.Run("success: returns 201 Created with the new ID", func() {
		queryID := uuid.New()
		s.mockCommands.EXPECT().Submit(gomock.Any(), reqBody).Return(queryID, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response struct {
			ID string `json:"id"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(queryID.String(), response.ID)
	})

	s.Run("error: 400 on missing message", func() {
		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("message", nil))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: 400 when the domain rejects the submission", func() {
		s.mockCommands.EXPECT().Submit(gomock.Any(), reqBody).
			Return(uuid.Nil, commands.ErrDomainValidation).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Name, email and message are required")
	})

	s.Run("error: 500 when the insert fails", func() {
		s.mockCommands.EXPECT().Submit(gomock.Any(), reqBody).
			Return(uuid.Nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

func (s *QueryHandlerTestSuite) TestList() {
	url := "/admin/queries"

	s.Run("success: returns the inbox", func() {
		views := []*queries.QueryView{
			builder.NewQueryBuilder().BuildReadModel(),
			builder.NewQueryBuilder().AsRead().BuildReadModel(),
		}
		s.mockQueries.EXPECT().ListAll(gomock.Any()).Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response []resdto.QueryResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 2)
		s.Equal("unread", response[0].Status)
		s.Equal("read", response[1].Status)
	})
}

func (s *QueryHandlerTestSuite) TestMarkRead() {
	queryID := uuid.New()
	url := "/admin/queries/" + queryID.String() + "/read"

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().MarkRead(gomock.Any(), queryID).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, nil, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 404 for unknown query", func() {
		s.mockCommands.EXPECT().MarkRead(gomock.Any(), queryID).
			Return(commands.ErrQueryNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Query not found")
	})

	s.Run("error: 400 on malformed query ID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/admin/queries/nope/read", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid query ID")
	})
}

func (s *QueryHandlerTestSuite) TestDelete() {
	queryID := uuid.New()
	url := "/admin/queries/" + queryID.String()

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), queryID).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 404 for unknown query", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), queryID).
			Return(commands.ErrQueryNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Query not found")
	})
}
