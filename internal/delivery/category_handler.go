package delivery

import (
	"net/http"
	"strconv"

	"catalog_service/internal/domain"
	"catalog_service/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type CategoryHandler struct {
	service usecase.CategoryService
	log     *logrus.Logger
}

func NewCategoryHandler(svc usecase.CategoryService, logger *logrus.Logger) *CategoryHandler {
	return &CategoryHandler{
		service: svc,
		log:     logger,
	}
}

// RegisterRoutes mounts the public category routes on public and the
// destructive ones on admin, which the caller is expected to guard.
func (h *CategoryHandler) RegisterRoutes(public, admin gin.IRouter) {
	categories := public.Group("/categories")
	{
		categories.GET("", h.GetAllCategories)
		categories.POST("", h.CreateCategory)
		categories.PUT("/:categoryId", h.UpdateCategory)
	}
	admin.DELETE("/categories/:categoryId", h.DeleteCategory)
}

func (h *CategoryHandler) GetAllCategories(c *gin.Context) {
	categories, err := h.service.GetAllCategories(c.Request.Context())
	if err != nil {
		h.fail(c, err, "Failed to retrieve categories")
		return
	}

	SuccessResponse(c, http.StatusOK, "Categories retrieved successfully", categories)
}

func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var category domain.Category
	if err := c.ShouldBindJSON(&category); err != nil {
		h.log.Warnf("Failed to bind JSON for create category: %v", err)
		ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if err := h.service.CreateCategory(c.Request.Context(), &category); err != nil {
		h.fail(c, err, "Failed to create category")
		return
	}

	SuccessResponse(c, http.StatusCreated, "Category added successfully", nil)
}

func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	id, ok := h.categoryID(c)
	if !ok {
		return
	}

	var category domain.Category
	if err := c.ShouldBindJSON(&category); err != nil {
		h.log.Warnf("Failed to bind JSON for update category ID %d: %v", id, err)
		ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	updated, err := h.service.UpdateCategory(c.Request.Context(), &category, id)
	if err != nil {
		h.fail(c, err, "Failed to update category")
		return
	}

	SuccessResponse(c, http.StatusOK, "Category updated successfully", updated)
}

func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	id, ok := h.categoryID(c)
	if !ok {
		return
	}

	status, err := h.service.DeleteCategory(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err, "Failed to delete category")
		return
	}

	SuccessResponse(c, http.StatusOK, status, nil)
}

func (h *CategoryHandler) categoryID(c *gin.Context) (int64, bool) {
	idStr := c.Param("categoryId")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		h.log.Warnf("Invalid categoryId parameter: %s", idStr)
		ErrorResponse(c, http.StatusBadRequest, "Invalid categoryId format")
		return 0, false
	}
	return id, true
}

func (h *CategoryHandler) fail(c *gin.Context, err error, prefix string) {
	statusCode := mapErrorToStatus(err)
	if statusCode >= http.StatusInternalServerError {
		h.log.Errorf("%s: %v", prefix, err)
		ErrorResponse(c, statusCode, prefix)
		return
	}
	h.log.Warnf("%s: %v", prefix, err)
	ErrorResponse(c, statusCode, err.Error())
}
