package controllers

import (
	"net/http"

	"github.com/BibekKushwaha/enterprise-rental-app/internal/services"
	"github.com/BibekKushwaha/enterprise-rental-app/internal/utils"
)

type LeasesController struct {
	leaseService *services.LeaseService
}

func NewLeasesController(ls *services.LeaseService) *LeasesController {
	return &LeasesController{leaseService: ls}
}

// ----------------------------------------------------------------
// GET /leases
// ----------------------------------------------------------------
func (c *LeasesController) ListHandler(w http.ResponseWriter, r *http.Request) {
	leases, err := c.leaseService.List(r.Context())
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, leases)
}

// ----------------------------------------------------------------
// GET /leases/{id}/payments
// ----------------------------------------------------------------
func (c *LeasesController) ListPaymentsHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDVar(w, r, "id")
	if !ok {
		return
	}

	payments, err := c.leaseService.ListPayments(r.Context(), id)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, payments)
}
