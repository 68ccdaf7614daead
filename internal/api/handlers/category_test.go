package handlers_test

import (
	"net/http"
	"testing"

	"business-platform-backend/internal/api/handlers"
	"business-platform-backend/internal/auth"
	"business-platform-backend/internal/catalog"
	apperrors "business-platform-backend/internal/errors"
	"business-platform-backend/internal/mocks"
	"business-platform-backend/internal/service"
	"business-platform-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// CategoryHandlerTestSuite tests the CategoryHandler
type CategoryHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockCategoryServiceInterface
	httpSuite   *testutils.HTTPTestSuite
	tenantID    uuid.UUID
}

// SetupTest sets up the test suite
func (suite *CategoryHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockCategoryServiceInterface(suite.ctrl)
	suite.tenantID = uuid.New()

	handler := handlers.NewCategoryHandler(suite.mockService, catalog.Default())

	suite.httpSuite = testutils.SetupHTTPTest()
	router := suite.httpSuite.Router
	router.GET("/api/v1/shop-types", handler.ListShopTypes)

	scoped := router.Group("/api/v1", func(c *gin.Context) {
		c.Set(auth.ContextTenantID, suite.tenantID)
	})
	scoped.GET("/categories", handler.ListCategories)
	scoped.POST("/categories", handler.CreateCategory)
}

// TearDownTest cleans up after each test
func (suite *CategoryHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestListCategories tests listing tenant categories
func (suite *CategoryHandlerTestSuite) TestListCategories() {
	suite.mockService.EXPECT().
		ListByTenant(suite.tenantID).
		Return([]service.CategoryResponse{
			{ID: uuid.New(), TenantID: suite.tenantID, Name: "Paper", IsActive: true},
			{ID: uuid.New(), TenantID: suite.tenantID, Name: "Ink & Toner", IsActive: true},
		}, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/categories", nil)

	var body struct {
		Success bool `json:"success"`
		Data    struct {
			Categories []service.CategoryResponse `json:"categories"`
		} `json:"data"`
	}
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &body)
	suite.True(body.Success)
	suite.Len(body.Data.Categories, 2)
}

// TestCreateCategory tests creating a category
func (suite *CategoryHandlerTestSuite) TestCreateCategory() {
	suite.mockService.EXPECT().
		Create(suite.tenantID, gomock.Any()).
		DoAndReturn(func(tenantID uuid.UUID, req *service.CreateCategoryRequest) (*service.CategoryResponse, error) {
			suite.Equal("Wide Format", req.Name)
			return &service.CategoryResponse{ID: uuid.New(), TenantID: tenantID, Name: req.Name, IsActive: true}, nil
		}).
		Times(1)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/categories", map[string]string{
		"name":        "Wide Format",
		"description": "Large format print media",
	})

	var body struct {
		Success bool `json:"success"`
		Data    struct {
			Category service.CategoryResponse `json:"category"`
		} `json:"data"`
	}
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusCreated, &body)
	suite.Equal("Wide Format", body.Data.Category.Name)
}

// TestCreateCategoryConflict tests the duplicate-name mapping to 409
func (suite *CategoryHandlerTestSuite) TestCreateCategoryConflict() {
	suite.mockService.EXPECT().
		Create(suite.tenantID, gomock.Any()).
		Return(nil, apperrors.ErrCategoryExists).
		Times(1)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/categories", map[string]string{
		"name": "Paper",
	})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusConflict, "inventory category already exists")
}

// TestCreateCategoryValidationError tests the validation mapping to 400
func (suite *CategoryHandlerTestSuite) TestCreateCategoryValidationError() {
	suite.mockService.EXPECT().
		Create(suite.tenantID, gomock.Any()).
		Return(nil, apperrors.NewValidationError("", "name is required")).
		Times(1)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/categories", map[string]string{
		"name": "",
	})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "name is required")
}

// TestListShopTypes tests the public shop type listing
func (suite *CategoryHandlerTestSuite) TestListShopTypes() {
	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/shop-types", nil)

	var body struct {
		Success bool `json:"success"`
		Data    struct {
			ShopTypes []catalog.ShopTypeOption `json:"shopTypes"`
		} `json:"data"`
	}
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &body)
	suite.True(body.Success)
	suite.NotEmpty(body.Data.ShopTypes)

	keys := make([]string, 0, len(body.Data.ShopTypes))
	for _, opt := range body.Data.ShopTypes {
		keys = append(keys, opt.Key)
	}
	suite.Contains(keys, "supermarket")
	suite.Contains(keys, "bookstore")
}

// TestCategoryHandlerTestSuite runs the test suite
func TestCategoryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(CategoryHandlerTestSuite))
}
