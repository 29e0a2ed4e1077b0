package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tenantbill/backend/internal/application/billing"
)

// BillHandler handles bill and payment HTTP requests
type BillHandler struct {
	BaseHandler
	billService *billing.BillService
}

// NewBillHandler creates a new bill handler
func NewBillHandler(billService *billing.BillService) *BillHandler {
	return &BillHandler{
		billService: billService,
	}
}

// List godoc
// @ID           listBills
// @Summary      List bills
// @Description  Get every bill with its invoice, payments and services
// @Tags         bills
// @Produce      json
// @Success      200 {array}  billing.BillResponse
// @Failure      401 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /bills [get]
func (h *BillHandler) List(c *gin.Context) {
	bills, err := h.billService.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, bills)
}

// GetByID godoc
// @ID           getBill
// @Summary      Get a bill by ID
// @Tags         bills
// @Produce      json
// @Param        id path int true "Bill ID"
// @Success      200 {object} billing.BillResponse
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /bills/{id} [get]
func (h *BillHandler) GetByID(c *gin.Context) {
	id, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	bill, err := h.billService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, bill)
}

// Create godoc
// @ID           createBill
// @Summary      Create a bill
// @Description  Create a bill together with its optional invoice, payments and services.
// @Description  The tenant must exist. A repeated Idempotency-Key is rejected with 409.
// @Tags         bills
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key header string false "Client-chosen key for safe retries"
// @Param        request body billing.CreateBillRequest true "Bill creation request"
// @Success      201 {object} billing.BillResponse
// @Header       201 {string} Location "URL of the created bill"
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Failure      413 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /bills [post]
func (h *BillHandler) Create(c *gin.Context) {
	var req billing.CreateBillRequest
	if !h.BindJSON(c, &req) {
		return
	}

	bill, err := h.billService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, resourceLocation(c, bill.ID), bill)
}

// Update godoc
// @ID           updateBill
// @Summary      Update a bill
// @Description  Overwrite a bill's tenant, charges, due date and paid flag.
// @Description  Invoice, payments and services are left unchanged.
// @Tags         bills
// @Accept       json
// @Param        id path int true "Bill ID"
// @Param        request body billing.UpdateBillRequest true "Bill update request"
// @Success      204
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /bills/{id} [put]
func (h *BillHandler) Update(c *gin.Context) {
	id, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	var req billing.UpdateBillRequest
	if !h.BindJSON(c, &req) {
		return
	}

	if err := h.billService.Update(c.Request.Context(), id, req); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// Delete godoc
// @ID           deleteBill
// @Summary      Delete a bill
// @Description  Delete a bill with its dependents and return it
// @Tags         bills
// @Produce      json
// @Param        id path int true "Bill ID"
// @Success      200 {object} billing.BillResponse
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /bills/{id} [delete]
func (h *BillHandler) Delete(c *gin.Context) {
	id, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	bill, err := h.billService.Delete(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, bill)
}

// Pay godoc
// @ID           payBill
// @Summary      Mark a bill as paid
// @Description  Set the bill's paid flag. Paying a paid bill changes nothing. No payment is recorded.
// @Tags         bills
// @Produce      json
// @Param        id path int true "Bill ID"
// @Success      200 {object} billing.BillResponse
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /bills/{id}/pay [post]
func (h *BillHandler) Pay(c *gin.Context) {
	id, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	bill, err := h.billService.Pay(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, bill)
}

// RecordPayment godoc
// @ID           recordBillPayment
// @Summary      Record a payment
// @Description  Store a payment against a bill. The bill's paid flag is not changed.
// @Tags         bills
// @Accept       json
// @Produce      json
// @Param        id path int true "Bill ID"
// @Param        Idempotency-Key header string false "Client-chosen key for safe retries"
// @Param        request body billing.PaymentRequest true "Payment"
// @Success      201 {object} billing.PaymentResponse
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /bills/{id}/payments [post]
func (h *BillHandler) RecordPayment(c *gin.Context) {
	id, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	var req billing.PaymentRequest
	if !h.BindJSON(c, &req) {
		return
	}

	payment, err := h.billService.RecordPayment(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, payment)
}

// ListOverdue godoc
// @ID           listOverdueBills
// @Summary      List overdue bills
// @Description  Unpaid bills whose due date has passed at the time of the request
// @Tags         bills
// @Produce      json
// @Success      200 {array}  billing.BillResponse
// @Failure      401 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /bills/overdue [get]
func (h *BillHandler) ListOverdue(c *gin.Context) {
	bills, err := h.billService.ListOverdue(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, bills)
}

// ListByTenant godoc
// @ID           listTenantBills
// @Summary      List a tenant's bills
// @Description  Unknown tenants yield an empty list
// @Tags         bills
// @Produce      json
// @Param        id path int true "Tenant ID"
// @Success      200 {array}  billing.BillResponse
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /tenants/{id}/bills [get]
func (h *BillHandler) ListByTenant(c *gin.Context) {
	tenantID, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	bills, err := h.billService.ListByTenant(c.Request.Context(), tenantID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, bills)
}

// ListUnpaidByTenant godoc
// @ID           listTenantUnpaidBills
// @Summary      List a tenant's unpaid bills
// @Tags         bills
// @Produce      json
// @Param        id path int true "Tenant ID"
// @Success      200 {array}  billing.BillResponse
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /tenants/{id}/bills/unpaid [get]
func (h *BillHandler) ListUnpaidByTenant(c *gin.Context) {
	tenantID, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	bills, err := h.billService.ListUnpaidByTenant(c.Request.Context(), tenantID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, bills)
}

// TotalDue godoc
// @ID           getTenantTotalDue
// @Summary      Total due for a tenant
// @Description  Sum of the charges of the tenant's unpaid bills as a JSON number. Zero when none.
// @Tags         bills
// @Produce      json
// @Param        id path int true "Tenant ID"
// @Success      200 {number} number "150.75"
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /tenants/{id}/bills/totaldue [get]
func (h *BillHandler) TotalDue(c *gin.Context) {
	tenantID, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	total, err := h.billService.TotalDue(c.Request.Context(), tenantID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	// a bare number, unlike the quoted amounts inside bills
	c.JSON(http.StatusOK, json.Number(total.String()))
}
