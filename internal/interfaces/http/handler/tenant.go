package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tenantbill/backend/internal/application/tenancy"
)

// TenantHandler handles tenant management HTTP requests
type TenantHandler struct {
	BaseHandler
	tenantService *tenancy.TenantService
}

// NewTenantHandler creates a new tenant handler
func NewTenantHandler(tenantService *tenancy.TenantService) *TenantHandler {
	return &TenantHandler{
		tenantService: tenantService,
	}
}

// List godoc
// @ID           listTenants
// @Summary      List tenants
// @Description  Get every tenant
// @Tags         tenants
// @Produce      json
// @Success      200 {array}  tenancy.TenantResponse
// @Failure      401 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /tenants [get]
func (h *TenantHandler) List(c *gin.Context) {
	tenants, err := h.tenantService.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, tenants)
}

// GetByID godoc
// @ID           getTenant
// @Summary      Get a tenant by ID
// @Tags         tenants
// @Produce      json
// @Param        id path int true "Tenant ID"
// @Success      200 {object} tenancy.TenantResponse
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /tenants/{id} [get]
func (h *TenantHandler) GetByID(c *gin.Context) {
	id, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	tenant, err := h.tenantService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, tenant)
}

// Create godoc
// @ID           createTenant
// @Summary      Create a new tenant
// @Description  Create a tenant. A repeated Idempotency-Key is rejected with 409.
// @Tags         tenants
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key header string false "Client-chosen key for safe retries"
// @Param        request body tenancy.CreateTenantRequest true "Tenant creation request"
// @Success      201 {object} tenancy.TenantResponse
// @Header       201 {string} Location "URL of the created tenant"
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /tenants [post]
func (h *TenantHandler) Create(c *gin.Context) {
	var req tenancy.CreateTenantRequest
	if !h.BindJSON(c, &req) {
		return
	}

	tenant, err := h.tenantService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, resourceLocation(c, tenant.ID), tenant)
}

// Update godoc
// @ID           updateTenant
// @Summary      Update a tenant
// @Description  Overwrite a tenant's name and email. Other fields are left unchanged.
// @Tags         tenants
// @Accept       json
// @Param        id path int true "Tenant ID"
// @Param        request body tenancy.UpdateTenantRequest true "Tenant update request"
// @Success      204
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /tenants/{id} [put]
func (h *TenantHandler) Update(c *gin.Context) {
	id, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	var req tenancy.UpdateTenantRequest
	if !h.BindJSON(c, &req) {
		return
	}

	if err := h.tenantService.Update(c.Request.Context(), id, req); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// Delete godoc
// @ID           deleteTenant
// @Summary      Delete a tenant
// @Description  Delete a tenant and return it. Tenants that still have bills cannot be deleted.
// @Tags         tenants
// @Produce      json
// @Param        id path int true "Tenant ID"
// @Success      200 {object} tenancy.TenantResponse
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /tenants/{id} [delete]
func (h *TenantHandler) Delete(c *gin.Context) {
	id, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	tenant, err := h.tenantService.Delete(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, tenant)
}
