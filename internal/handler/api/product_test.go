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

type ProductHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockProductCommands
	mockQueries  *queriesmock.MockProductQueries
	handler      *api.ProductHandler
}

func (s *ProductHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockProductCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockProductQueries(s.mockCtrl)
	s.handler = api.NewProductHandler(s.mockCommands, s.mockQueries)

	s.router.GET("/products", s.handler.ListActive)
	s.router.GET("/admin/products", s.handler.ListAll)
	s.router.POST("/admin/products", s.handler.Create)
	s.router.PUT("/admin/products/:id", s.handler.Update)
	s.router.DELETE("/admin/products/:id", s.handler.Delete)
}

func (s *ProductHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestProductHandlerSuite(t *testing.T) {
	suite.Run(t, new(ProductHandlerTestSuite))
}

func (s *ProductHandlerTestSuite) TestListActive() {
	s.Run("success: public catalogue hides nothing it is given", func() {
		views := []*queries.ProductView{
			builder.NewProductBuilder().BuildReadModel(),
			builder.NewProductBuilder().WithoutPrice().BuildReadModel(),
		}
		s.mockQueries.EXPECT().ListActive(gomock.Any()).Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/products", nil, "")

		var response []resdto.ProductResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 2)
		s.Require().NotNil(response[0].UnitPrice)
		s.Equal("25.00", *response[0].UnitPrice)
		s.Nil(response[1].UnitPrice)
	})

	s.Run("error: 500 when the read store fails", func() {
		s.mockQueries.EXPECT().ListActive(gomock.Any()).Return(nil, errors.New("boom")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/products", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

func (s *ProductHandlerTestSuite) TestCreate() {
	url := "/admin/products"
	pb := builder.NewProductBuilder()
	reqBody := pb.BuildCreateDTO()

	s.Run("success: returns 201 Created", func() {
		view := pb.BuildReadModel()
		s.mockCommands.EXPECT().Create(gomock.Any(), reqBody).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.ProductResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(view.ID, response.ID)
		s.Equal(view.Title, response.Title)
	})

	s.Run("error: 400 on missing title", func() {
		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("title", nil))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "unparseable price",
				commandsError:  commands.ErrInvalidPrice,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Invalid unit price",
			},
			{
				name:           "domain rejects the product",
				commandsError:  commands.ErrDomainValidation,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Invalid product data",
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
				s.mockCommands.EXPECT().Create(gomock.Any(), reqBody).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *ProductHandlerTestSuite) TestUpdate() {
	productID := uuid.New()
	url := "/admin/products/" + productID.String()
	pb := builder.NewProductBuilder()
	reqBody := pb.BuildUpdateDTO()

	s.Run("success: returns 200 OK with the updated product", func() {
		view := pb.BuildReadModel()
		s.mockCommands.EXPECT().Update(gomock.Any(), productID, reqBody).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "")

		var response resdto.ProductResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(view.Title, response.Title)
	})

	s.Run("error: 404 for unknown product", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), productID, reqBody).
			Return(nil, commands.ErrProductNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Product not found")
	})

	s.Run("error: 400 on malformed product ID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/admin/products/not-a-uuid", reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid product ID")
	})
}

func (s *ProductHandlerTestSuite) TestDelete() {
	productID := uuid.New()
	url := "/admin/products/" + productID.String()

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), productID).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 404 for unknown product", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), productID).
			Return(commands.ErrProductNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Product not found")
	})
}
