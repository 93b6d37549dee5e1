package controllers

import (
	"net/http"

	"github.com/BibekKushwaha/enterprise-rental-app/internal/dtos"
	"github.com/BibekKushwaha/enterprise-rental-app/internal/services"
	"github.com/BibekKushwaha/enterprise-rental-app/internal/utils"
)

type ManagersController struct {
	managerService *services.ManagerService
}

func NewManagersController(ms *services.ManagerService) *ManagersController {
	return &ManagersController{managerService: ms}
}

// ----------------------------------------------------------------
// GET /managers/{cognitoId}
// ----------------------------------------------------------------
func (c *ManagersController) GetHandler(w http.ResponseWriter, r *http.Request) {
	cognitoID, ok := requireCognitoIDVar(w, r)
	if !ok {
		return
	}

	mgr, err := c.managerService.Get(r.Context(), cognitoID)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, mgr)
}

// ----------------------------------------------------------------
// POST /managers
// ----------------------------------------------------------------
func (c *ManagersController) CreateHandler(w http.ResponseWriter, r *http.Request) {
	var req dtos.CreateUserRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	mgr, err := c.managerService.Create(r.Context(), req)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, mgr)
}

// ----------------------------------------------------------------
// PUT /managers/{cognitoId}
// ----------------------------------------------------------------
func (c *ManagersController) UpdateHandler(w http.ResponseWriter, r *http.Request) {
	cognitoID, ok := requireCognitoIDVar(w, r)
	if !ok {
		return
	}

	var req dtos.UpdateUserRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	mgr, err := c.managerService.Update(r.Context(), cognitoID, req)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, mgr)
}

// ----------------------------------------------------------------
// GET /managers/{cognitoId}/properties
// ----------------------------------------------------------------
func (c *ManagersController) ListPropertiesHandler(w http.ResponseWriter, r *http.Request) {
	cognitoID, ok := requireCognitoIDVar(w, r)
	if !ok {
		return
	}

	props, err := c.managerService.ListProperties(r.Context(), cognitoID)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, props)
}
