package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/BibekKushwaha/enterprise-rental-app/internal/dtos"
	"github.com/BibekKushwaha/enterprise-rental-app/internal/services"
	"github.com/BibekKushwaha/enterprise-rental-app/internal/utils"
)

type TenantsController struct {
	tenantService *services.TenantService
}

func NewTenantsController(ts *services.TenantService) *TenantsController {
	return &TenantsController{tenantService: ts}
}

// ----------------------------------------------------------------
// GET /tenants/{cognitoId}
// ----------------------------------------------------------------
func (c *TenantsController) GetHandler(w http.ResponseWriter, r *http.Request) {
	cognitoID, ok := requireCognitoIDVar(w, r)
	if !ok {
		return
	}

	tenant, err := c.tenantService.Get(r.Context(), cognitoID)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, tenant)
}

// ----------------------------------------------------------------
// POST /tenants
// ----------------------------------------------------------------
func (c *TenantsController) CreateHandler(w http.ResponseWriter, r *http.Request) {
	var req dtos.CreateUserRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	tenant, err := c.tenantService.Create(r.Context(), req)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, tenant)
}

// ----------------------------------------------------------------
// PUT /tenants/{cognitoId}
// ----------------------------------------------------------------
func (c *TenantsController) UpdateHandler(w http.ResponseWriter, r *http.Request) {
	cognitoID, ok := requireCognitoIDVar(w, r)
	if !ok {
		return
	}

	var req dtos.UpdateUserRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	tenant, err := c.tenantService.Update(r.Context(), cognitoID, req)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, tenant)
}

// ----------------------------------------------------------------
// GET /tenants/{cognitoId}/current-residences
// ----------------------------------------------------------------
func (c *TenantsController) CurrentResidencesHandler(w http.ResponseWriter, r *http.Request) {
	cognitoID, ok := requireCognitoIDVar(w, r)
	if !ok {
		return
	}

	props, err := c.tenantService.CurrentResidences(r.Context(), cognitoID)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, props)
}

// ----------------------------------------------------------------
// POST /tenants/{cognitoId}/favorites/{propertyId}
// ----------------------------------------------------------------
func (c *TenantsController) AddFavoriteHandler(w http.ResponseWriter, r *http.Request) {
	cognitoID, ok := requireCognitoIDVar(w, r)
	if !ok {
		return
	}
	propertyID, ok := parseIDVar(w, r, "propertyId")
	if !ok {
		return
	}

	tenant, err := c.tenantService.AddFavorite(r.Context(), cognitoID, propertyID)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, tenant)
}

// ----------------------------------------------------------------
// DELETE /tenants/{cognitoId}/favorites/{propertyId}
// ----------------------------------------------------------------
func (c *TenantsController) RemoveFavoriteHandler(w http.ResponseWriter, r *http.Request) {
	cognitoID, ok := requireCognitoIDVar(w, r)
	if !ok {
		return
	}
	propertyID, ok := parseIDVar(w, r, "propertyId")
	if !ok {
		return
	}

	tenant, err := c.tenantService.RemoveFavorite(r.Context(), cognitoID, propertyID)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, tenant)
}

/* ------------------------------------------------------------------
   shared helpers
------------------------------------------------------------------ */

func requireCognitoIDVar(w http.ResponseWriter, r *http.Request) (string, bool) {
	cognitoID := mux.Vars(r)["cognitoId"]
	if cognitoID == "" {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeValidation, "cognitoId is required in params", nil,
		)
		return "", false
	}
	return cognitoID, true
}

func decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid JSON payload", nil, err,
		)
		return false
	}
	if err := validate.Struct(dst); err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeValidation, "Request failed validation", nil, err,
		)
		return false
	}
	return true
}
