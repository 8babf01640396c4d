//go:build unit

package api_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"linenhire/internal/handler/api"
	reqdto "linenhire/internal/handler/dto/request"
	resdto "linenhire/internal/handler/dto/response"
	"linenhire/internal/usecase/queries"
	"linenhire/tests/common/httptest"
	"linenhire/tests/common/testutil"
	commandsmock "linenhire/tests/mock/commands"
	queriesmock "linenhire/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type MailConfigHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockMailConfigCommands
	mockQueries  *queriesmock.MockMailConfigQueries
	handler      *api.MailConfigHandler
}

func (s *MailConfigHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockMailConfigCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockMailConfigQueries(s.mockCtrl)
	s.handler = api.NewMailConfigHandler(s.mockCommands, s.mockQueries)

	s.router.GET("/admin/mail", s.handler.Get)
	s.router.PUT("/admin/mail", s.handler.Update)
}

func (s *MailConfigHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestMailConfigHandlerSuite(t *testing.T) {
	suite.Run(t, new(MailConfigHandlerTestSuite))
}

func (s *MailConfigHandlerTestSuite) TestGet() {
	url := "/admin/mail"

	s.Run("success: returns the settings without any password field", func() {
		view := &queries.MailConfigView{
			ID:         uuid.New(),
			Host:       "smtp.example.com",
			Port:       587,
			Username:   "mailer",
			FromEmail:  "noreply@example.com",
			AdminEmail: "admin@example.com",
			UpdatedAt:  time.Now().UTC(),
		}
		s.mockQueries.EXPECT().Get(gomock.Any()).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response resdto.MailConfigResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("smtp.example.com", response.Host)
		s.Equal(int32(587), response.Port)

		var raw map[string]any
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &raw))
		s.NotContains(raw, "password")
	})

	s.Run("error: 404 before mail has ever been configured", func() {
		s.mockQueries.EXPECT().Get(gomock.Any()).Return(nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Mail is not configured yet")
	})

	s.Run("error: 500 when the read store fails", func() {
		s.mockQueries.EXPECT().Get(gomock.Any()).Return(nil, errors.New("boom")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

func (s *MailConfigHandlerTestSuite) TestUpdate() {
	url := "/admin/mail"
	reqBody := reqdto.UpdateMailConfigRequest{
		Host:       "smtp.example.com",
		Port:       587,
		Username:   "mailer",
		Password:   "secret",
		FromEmail:  "noreply@example.com",
		AdminEmail: "admin@example.com",
	}

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), reqBody).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("success: blank password is accepted and keeps the stored one", func() {
		blankPassword := reqBody
		blankPassword.Password = ""
		s.mockCommands.EXPECT().Update(gomock.Any(), blankPassword).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, blankPassword, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 400 on missing host", func() {
		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("host", nil))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, requestMap, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: 500 when the write fails", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), reqBody).
			Return(errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}
