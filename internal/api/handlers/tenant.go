package handlers

import (
	"errors"
	"io"
	"net/http"

	"business-platform-backend/internal/auth"
	apperrors "business-platform-backend/internal/errors"
	"business-platform-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// maxLogoBytes caps the accepted logo upload size (2 MiB)
const maxLogoBytes = 2 << 20

// TenantHandler handles HTTP requests for tenant provisioning and onboarding
type TenantHandler struct {
	provisioning service.ProvisioningServiceInterface
	onboarding   service.OnboardingServiceInterface
	tenants      service.TenantServiceInterface
}

// NewTenantHandler creates a new tenant handler
func NewTenantHandler(
	provisioning service.ProvisioningServiceInterface,
	onboarding service.OnboardingServiceInterface,
	tenants service.TenantServiceInterface,
) *TenantHandler {
	return &TenantHandler{
		provisioning: provisioning,
		onboarding:   onboarding,
		tenants:      tenants,
	}
}

// Signup handles POST /api/v1/tenants/signup
// @Summary Provision a new tenant
// @Description Create a tenant with its owner account, default settings and starter inventory categories
// @Tags tenants
// @Accept json
// @Produce json
// @Param signup body service.SignupRequest true "Signup payload"
// @Success 201 {object} map[string]interface{} "Tenant provisioned"
// @Failure 400 {object} map[string]interface{} "Validation failure or duplicate email"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /tenants/signup [post]
func (h *TenantHandler) Signup(c *gin.Context) {
	var req service.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body"})
		return
	}

	resp, err := h.provisioning.Signup(&req)
	if err != nil {
		var validationErr *apperrors.ValidationError
		switch {
		case errors.As(err, &validationErr):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": validationErr.Message})
		case errors.Is(err, apperrors.ErrUserExists):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "An account with this email already exists. Please sign in instead."})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to create account"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": resp})
}

// CompleteOnboarding handles POST /api/v1/tenants/onboarding
// @Summary Complete tenant onboarding
// @Description Update the tenant's business classification and contact details, optionally uploading a logo
// @Tags tenants
// @Accept mpfd
// @Produce json
// @Param businessType formData string false "Business type"
// @Param shopType formData string false "Shop subtype"
// @Param industry formData string false "Industry"
// @Param companyName formData string false "Company name"
// @Param companyEmail formData string false "Company email"
// @Param companyPhone formData string false "Company phone"
// @Param companyWebsite formData string false "Company website"
// @Param companyAddress formData string false "Company address"
// @Param logo formData file false "Company logo"
// @Success 200 {object} map[string]interface{} "Onboarding completed"
// @Failure 400 {object} map[string]interface{} "Missing tenant context"
// @Failure 404 {object} map[string]interface{} "Tenant not found"
// @Security BearerAuth
// @Router /tenants/onboarding [post]
func (h *TenantHandler) CompleteOnboarding(c *gin.Context) {
	tenantID, ok := auth.TenantIDFromContext(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Tenant context is required"})
		return
	}

	var req service.CompleteOnboardingRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body"})
		return
	}

	logo, err := h.readLogo(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Failed to read logo upload"})
		return
	}

	profile, err := h.onboarding.CompleteOnboarding(tenantID, &req, logo)
	if err != nil {
		var validationErr *apperrors.ValidationError
		switch {
		case errors.Is(err, apperrors.ErrTenantContextMissing):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Tenant context is required"})
		case errors.Is(err, apperrors.ErrTenantNotFound):
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": err.Error()})
		case errors.As(err, &validationErr):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": validationErr.Message})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to complete onboarding"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Onboarding completed",
		"data":    gin.H{"tenant": profile},
	})
}

// GetProfile handles GET /api/v1/tenants/me
// @Summary Get current tenant
// @Description Get the profile of the tenant resolved from the request context
// @Tags tenants
// @Produce json
// @Success 200 {object} map[string]interface{} "Tenant profile"
// @Failure 404 {object} map[string]interface{} "Tenant not found"
// @Security BearerAuth
// @Router /tenants/me [get]
func (h *TenantHandler) GetProfile(c *gin.Context) {
	tenantID, ok := auth.TenantIDFromContext(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Tenant context is required"})
		return
	}

	profile, err := h.tenants.GetProfile(tenantID)
	if err != nil {
		if errors.Is(err, apperrors.ErrTenantNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to load tenant"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"tenant": profile}})
}

// ListMemberships handles GET /api/v1/memberships
// @Summary List the caller's memberships
// @Description List all tenant memberships of the authenticated user, default tenant first
// @Tags memberships
// @Produce json
// @Success 200 {object} map[string]interface{} "Memberships"
// @Security BearerAuth
// @Router /memberships [get]
func (h *TenantHandler) ListMemberships(c *gin.Context) {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Authentication required"})
		return
	}

	memberships, err := h.tenants.ListMemberships(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to load memberships"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"memberships": memberships}})
}

// readLogo extracts an optional logo upload from the multipart form
func (h *TenantHandler) readLogo(c *gin.Context) (*service.LogoUpload, error) {
	fileHeader, err := c.FormFile("logo")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}
		return nil, err
	}
	if fileHeader.Size > maxLogoBytes {
		return nil, errors.New("logo exceeds maximum size")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxLogoBytes))
	if err != nil {
		return nil, err
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	return &service.LogoUpload{ContentType: contentType, Data: data}, nil
}
