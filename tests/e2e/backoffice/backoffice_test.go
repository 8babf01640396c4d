//go:build e2e

package backoffice_test

import (
	"context"
	"net/http"
	"testing"

	"linenhire/internal/handler/dto/request"
	"linenhire/internal/handler/dto/response"
	"linenhire/tests/common/authtest"
	"linenhire/tests/common/dbtest"
	"linenhire/tests/common/httptest"
	"linenhire/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	publicProductsURL   = "/api/products"
	publicCategoriesURL = "/api/categories"
	publicQueriesURL    = "/api/queries"
	publicSeoURL        = "/api/seo"

	adminProductsURL   = "/api/admin/products"
	adminCategoriesURL = "/api/admin/categories"
	adminQueriesURL    = "/api/admin/queries"
	adminSeoURL        = "/api/admin/seo"
	adminMailURL       = "/api/admin/mail"
	adminDashboardURL  = "/api/admin/dashboard"
)

type BackofficeSuite struct {
	e2e.SharedSuite
}

func TestBackofficeSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(BackofficeSuite))
}

func (s *BackofficeSuite) login() string {
	return authtest.LoginUser(s.T(), s.Router, "admin@example.com", "password123")
}

func strPtr(v string) *string { return &v }

// =============================================================================
// Products
// =============================================================================

func (s *BackofficeSuite) TestProductLifecycle() {
	s.Run("Create, update then delete a product", func() {
		t := s.T()
		token := s.login()

		categoryID := dbtest.CreateTestCategory(t, s.DB, "Table Linen")

		createReq := request.CreateProductRequest{}
		createReq.Title = "Damask Tablecloth"
		createReq.Description = "240cm round, white"
		createReq.UnitPrice = strPtr("25.50")
		createReq.IsActive = true
		createReq.CategoryID = &categoryID

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, adminProductsURL, createReq, token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var created response.ProductResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)

		expected := response.ProductResponse{
			Title:         "Damask Tablecloth",
			Description:   "240cm round, white",
			UnitPrice:     strPtr("25.50"),
			IsActive:      true,
			CategoryID:    &categoryID,
			CategoryTitle: strPtr("Table Linen"),
		}
		opts := []cmp.Option{
			cmpopts.IgnoreFields(response.ProductResponse{}, "ID", "CreatedAt", "UpdatedAt"),
		}
		if diff := cmp.Diff(expected, created, opts...); diff != "" {
			t.Errorf("product response mismatch (-want +got):\n%s", diff)
		}

		updateReq := request.UpdateProductRequest{}
		updateReq.Title = "Damask Tablecloth XL"
		updateReq.UnitPrice = strPtr("32.00")
		updateReq.IsActive = false

		uw := httptest.PerformRequest(t, s.Router, http.MethodPut,
			adminProductsURL+"/"+created.ID.String(), updateReq, token)
		require.Equal(t, http.StatusOK, uw.Code, uw.Body.String())

		var updated response.ProductResponse
		httptest.AssertSuccessResponse(t, uw, http.StatusOK, &updated)
		require.Equal(t, "Damask Tablecloth XL", updated.Title)
		require.Equal(t, "32.00", *updated.UnitPrice)
		require.False(t, updated.IsActive)
		require.Nil(t, updated.CategoryID, "update clears an omitted category")

		dw := httptest.PerformRequest(t, s.Router, http.MethodDelete,
			adminProductsURL+"/"+created.ID.String(), nil, token)
		require.Equal(t, http.StatusNoContent, dw.Code)

		dw = httptest.PerformRequest(t, s.Router, http.MethodDelete,
			adminProductsURL+"/"+created.ID.String(), nil, token)
		httptest.AssertErrorResponse(t, dw, http.StatusNotFound, "Product not found")
	})

	s.Run("Storefront listing only shows active products", func() {
		t := s.T()

		dbtest.CreateTestProduct(t, s.DB, "Visible Cloth", "10.00", nil, nil)
		hiddenID := dbtest.CreateTestProduct(t, s.DB, "Hidden Cloth", "10.00", nil, nil)

		ctx := context.Background()
		_, err := s.DB.Exec(ctx, "UPDATE products SET is_active = false WHERE id = $1", hiddenID)
		require.NoError(t, err)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, publicProductsURL, nil, "")
		require.Equal(t, http.StatusOK, w.Code)

		var listed []response.ProductResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &listed)
		require.Len(t, listed, 1)
		require.Equal(t, "Visible Cloth", listed[0].Title)

		// The admin listing still shows both.
		token := s.login()
		aw := httptest.PerformRequest(t, s.Router, http.MethodGet, adminProductsURL, nil, token)
		httptest.AssertSuccessResponse(t, aw, http.StatusOK, &listed)
		require.Len(t, listed, 2)
	})

	s.Run("Rejects a malformed unit price", func() {
		t := s.T()
		token := s.login()

		createReq := request.CreateProductRequest{}
		createReq.Title = "Bad Price"
		createReq.UnitPrice = strPtr("twenty")
		createReq.IsActive = true

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, adminProductsURL, createReq, token)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Invalid unit price")
	})
}

// =============================================================================
// Categories
// =============================================================================

func (s *BackofficeSuite) TestCategories() {
	s.Run("Create and delete a category", func() {
		t := s.T()
		token := s.login()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, adminCategoriesURL,
			request.CreateCategoryRequest{Title: "Napkins", ImageRatio: "portrait"}, token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var created response.CategoryResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)
		require.Equal(t, "Napkins", created.Title)
		require.Equal(t, "portrait", created.ImageRatio)

		lw := httptest.PerformRequest(t, s.Router, http.MethodGet, publicCategoriesURL, nil, "")
		var listed []response.CategoryResponse
		httptest.AssertSuccessResponse(t, lw, http.StatusOK, &listed)
		require.Len(t, listed, 1)

		dw := httptest.PerformRequest(t, s.Router, http.MethodDelete,
			adminCategoriesURL+"/"+created.ID.String(), nil, token)
		require.Equal(t, http.StatusNoContent, dw.Code)

		dw = httptest.PerformRequest(t, s.Router, http.MethodDelete,
			adminCategoriesURL+"/"+uuid.New().String(), nil, token)
		httptest.AssertErrorResponse(t, dw, http.StatusNotFound, "Category not found")
	})

	s.Run("Deleting a category detaches its products", func() {
		t := s.T()
		token := s.login()

		categoryID := dbtest.CreateTestCategory(t, s.DB, "Runners")
		productID := dbtest.CreateTestProduct(t, s.DB, "Lace Runner", "8.00", nil, &categoryID)

		dw := httptest.PerformRequest(t, s.Router, http.MethodDelete,
			adminCategoriesURL+"/"+categoryID.String(), nil, token)
		require.Equal(t, http.StatusNoContent, dw.Code)

		var catID *uuid.UUID
		err := s.DB.QueryRow(context.Background(), "SELECT category_id FROM products WHERE id = $1", productID).Scan(&catID)
		require.NoError(t, err)
		require.Nil(t, catID)
	})
}

// =============================================================================
// Contact queries
// =============================================================================

func (s *BackofficeSuite) TestQueryInbox() {
	submitReq := request.SubmitQueryRequest{
		Name:    "John Doe",
		Email:   "john@example.com",
		Phone:   "07700 900456",
		Message: "Do you deliver on Sundays?",
	}

	s.Run("Visitor query lands in the admin inbox as unread", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, publicQueriesURL, submitReq, "")
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		token := s.login()
		lw := httptest.PerformRequest(t, s.Router, http.MethodGet, adminQueriesURL, nil, token)
		require.Equal(t, http.StatusOK, lw.Code)

		var listed []response.QueryResponse
		httptest.AssertSuccessResponse(t, lw, http.StatusOK, &listed)
		require.Len(t, listed, 1)

		expected := response.QueryResponse{
			Name:    "John Doe",
			Email:   "john@example.com",
			Phone:   "07700 900456",
			Message: "Do you deliver on Sundays?",
			Status:  "unread",
		}
		opts := []cmp.Option{
			cmpopts.IgnoreFields(response.QueryResponse{}, "ID", "CreatedAt"),
		}
		if diff := cmp.Diff(expected, listed[0], opts...); diff != "" {
			t.Errorf("query response mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("Mark read then delete", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, publicQueriesURL, submitReq, "")
		require.Equal(t, http.StatusCreated, w.Code)
		var created map[string]string
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)
		queryID := created["id"]
		require.NotEmpty(t, queryID)

		token := s.login()
		rw := httptest.PerformRequest(t, s.Router, http.MethodPatch,
			adminQueriesURL+"/"+queryID+"/read", nil, token)
		require.Equal(t, http.StatusNoContent, rw.Code)

		var listed []response.QueryResponse
		lw := httptest.PerformRequest(t, s.Router, http.MethodGet, adminQueriesURL, nil, token)
		httptest.AssertSuccessResponse(t, lw, http.StatusOK, &listed)
		require.Len(t, listed, 1)
		require.Equal(t, "read", listed[0].Status)

		dw := httptest.PerformRequest(t, s.Router, http.MethodDelete,
			adminQueriesURL+"/"+queryID, nil, token)
		require.Equal(t, http.StatusNoContent, dw.Code)

		dw = httptest.PerformRequest(t, s.Router, http.MethodDelete,
			adminQueriesURL+"/"+queryID, nil, token)
		httptest.AssertErrorResponse(t, dw, http.StatusNotFound, "Query not found")
	})

	s.Run("Blank message fails validation", func() {
		t := s.T()

		bad := submitReq
		bad.Message = ""
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, publicQueriesURL, bad, "")
		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}

// =============================================================================
// SEO settings
// =============================================================================

func (s *BackofficeSuite) TestSeoSettings() {
	upsertReq := request.UpsertSeoRequest{
		PageRoute:   "products",
		Title:       "Linen Hire | Products",
		Description: "Tablecloths and napkins for hire",
		Keywords:    "linen, hire, tablecloth",
		OgImage:     strPtr("https://cdn.example.com/og/products.png"),
	}

	s.Run("Upsert then fetch by route", func() {
		t := s.T()
		token := s.login()

		w := httptest.PerformRequest(t, s.Router, http.MethodPut, adminSeoURL, upsertReq, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		gw := httptest.PerformRequest(t, s.Router, http.MethodGet,
			publicSeoURL+"/"+upsertReq.PageRoute, nil, "")
		require.Equal(t, http.StatusOK, gw.Code, gw.Body.String())

		var got response.SeoSettingResponse
		httptest.AssertSuccessResponse(t, gw, http.StatusOK, &got)
		require.Equal(t, "products", got.PageRoute)
		require.Equal(t, "Linen Hire | Products", got.Title)

		// Second upsert overwrites in place.
		changed := upsertReq
		changed.Title = "Linen Hire | Catalogue"
		w = httptest.PerformRequest(t, s.Router, http.MethodPut, adminSeoURL, changed, token)
		require.Equal(t, http.StatusOK, w.Code)

		var listed []response.SeoSettingResponse
		lw := httptest.PerformRequest(t, s.Router, http.MethodGet, adminSeoURL, nil, token)
		httptest.AssertSuccessResponse(t, lw, http.StatusOK, &listed)
		require.Len(t, listed, 1)
		require.Equal(t, "Linen Hire | Catalogue", listed[0].Title)
	})

	s.Run("Unknown route returns 404", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, publicSeoURL+"/nowhere", nil, "")
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "No SEO setting for route")
	})
}

// =============================================================================
// Mail configuration
// =============================================================================

func (s *BackofficeSuite) TestMailConfig() {
	updateReq := request.UpdateMailConfigRequest{
		Host:       "smtp.example.com",
		Port:       587,
		Username:   "mailer",
		Password:   "smtp-secret",
		FromEmail:  "noreply@example.com",
		SenderName: "Linen Hire",
		AdminEmail: "owner@example.com",
	}

	s.Run("Unconfigured mail returns 404", func() {
		t := s.T()
		token := s.login()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, adminMailURL, nil, token)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Mail is not configured yet")
	})

	s.Run("Update then read back without the password", func() {
		t := s.T()
		token := s.login()

		w := httptest.PerformRequest(t, s.Router, http.MethodPut, adminMailURL, updateReq, token)
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

		gw := httptest.PerformRequest(t, s.Router, http.MethodGet, adminMailURL, nil, token)
		require.Equal(t, http.StatusOK, gw.Code)

		var got response.MailConfigResponse
		httptest.AssertSuccessResponse(t, gw, http.StatusOK, &got)
		require.Equal(t, "smtp.example.com", got.Host)
		require.Equal(t, int32(587), got.Port)
		require.NotContains(t, gw.Body.String(), "smtp-secret")

		// A blank password on a later save keeps the stored one.
		second := updateReq
		second.Password = ""
		second.Host = "smtp2.example.com"
		w = httptest.PerformRequest(t, s.Router, http.MethodPut, adminMailURL, second, token)
		require.Equal(t, http.StatusNoContent, w.Code)

		var stored string
		err := s.DB.QueryRow(context.Background(), "SELECT password FROM mail_config LIMIT 1").Scan(&stored)
		require.NoError(t, err)
		require.Equal(t, "smtp-secret", stored)
	})
}

// =============================================================================
// Dashboard
// =============================================================================

func (s *BackofficeSuite) TestDashboard() {
	s.Run("Counts bookings and queries", func() {
		t := s.T()
		token := s.login()

		productID := dbtest.CreateTestProduct(t, s.DB, "Damask Tablecloth", "25.50", nil, nil)
		ctx := context.Background()
		for _, status := range []string{"pending", "pending", "confirmed", "cancelled"} {
			_, err := s.DB.Exec(ctx, `
				INSERT INTO bookings (id, product_id, start_at, end_at, quantity, customer_name, customer_email, price, status)
				VALUES ($1, $2, '2026-06-01 10:00+00', '2026-06-03 10:00+00', 1, 'Jane Smith', 'jane@example.com', 100, $3)`,
				uuid.New(), productID, status)
			require.NoError(t, err)
		}

		for i := 0; i < 2; i++ {
			w := httptest.PerformRequest(t, s.Router, http.MethodPost, publicQueriesURL,
				request.SubmitQueryRequest{Name: "John Doe", Email: "john@example.com", Message: "Hello"}, "")
			require.Equal(t, http.StatusCreated, w.Code)
		}

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, adminDashboardURL, nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var stats response.DashboardResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &stats)
		require.Equal(t, int64(4), stats.Bookings.Total)
		require.Equal(t, int64(2), stats.Bookings.Pending)
		require.Equal(t, int64(1), stats.Bookings.Confirmed)
		require.Equal(t, int64(1), stats.Bookings.Cancelled)
		require.Equal(t, int64(2), stats.TotalQueries)
		require.Equal(t, int64(2), stats.UnreadQueries)
		require.Len(t, stats.RecentQueries, 2)
	})
}
