package controllers

import (
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"

	"github.com/BibekKushwaha/enterprise-rental-app/internal/dtos"
	"github.com/BibekKushwaha/enterprise-rental-app/internal/middleware"
	"github.com/BibekKushwaha/enterprise-rental-app/internal/repositories"
	"github.com/BibekKushwaha/enterprise-rental-app/internal/services"
	"github.com/BibekKushwaha/enterprise-rental-app/internal/utils"
)

const maxUploadBytes = 32 << 20

var validate = validator.New()

type PropertiesController struct {
	propertyService *services.PropertyService
	leaseService    *services.LeaseService
}

func NewPropertiesController(ps *services.PropertyService, ls *services.LeaseService) *PropertiesController {
	return &PropertiesController{propertyService: ps, leaseService: ls}
}

// ----------------------------------------------------------------
// GET /properties
// ----------------------------------------------------------------
func (c *PropertiesController) ListHandler(w http.ResponseWriter, r *http.Request) {
	filter := repositories.ParsePropertyFilter(r.URL.Query())

	props, err := c.propertyService.Search(r.Context(), filter)
	if err != nil {
		utils.Logger.WithError(err).Error("Failed to search properties")
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, props)
}

// ----------------------------------------------------------------
// GET /properties/{id}
// ----------------------------------------------------------------
func (c *PropertiesController) GetHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDVar(w, r, "id")
	if !ok {
		return
	}

	prop, err := c.propertyService.GetByID(r.Context(), id)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, prop)
}

// ----------------------------------------------------------------
// POST /properties  (multipart, manager role)
// ----------------------------------------------------------------
func (c *PropertiesController) CreateHandler(w http.ResponseWriter, r *http.Request) {
	ctxUserID := r.Context().Value(middleware.ContextKeyUserID)
	if ctxUserID == nil {
		utils.RespondErrorWithCode(
			w, http.StatusUnauthorized, utils.ErrCodeUnauthorized, "No userID in context", nil,
		)
		return
	}

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid multipart payload", nil, err,
		)
		return
	}

	form := dtos.CreatePropertyForm{
		Name:              r.FormValue("name"),
		Description:       r.FormValue("description"),
		PricePerMonth:     r.FormValue("pricePerMonth"),
		SecurityDeposit:   r.FormValue("securityDeposit"),
		ApplicationFee:    r.FormValue("applicationFee"),
		IsPetsAllowed:     r.FormValue("isPetsAllowed"),
		IsParkingIncluded: r.FormValue("isParkingIncluded"),
		PropertyType:      r.FormValue("propertyType"),
		Beds:              r.FormValue("beds"),
		Baths:             r.FormValue("baths"),
		SquareFeet:        r.FormValue("squareFeet"),
		Amenities:         r.FormValue("amenities"),
		Highlights:        r.FormValue("highlights"),
		Address:           r.FormValue("address"),
		City:              r.FormValue("city"),
		State:             r.FormValue("state"),
		Country:           r.FormValue("country"),
		PostalCode:        r.FormValue("postalCode"),
	}
	if err := validate.Struct(form); err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeValidation, "Missing required property fields", nil, err,
		)
		return
	}

	var photos []utils.PhotoUpload
	if r.MultipartForm != nil {
		for _, fh := range r.MultipartForm.File["photos"] {
			f, err := fh.Open()
			if err != nil {
				utils.RespondErrorWithCode(
					w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Unreadable photo attachment", nil, err,
				)
				return
			}
			defer f.Close()
			photos = append(photos, utils.PhotoUpload{
				Filename:    fh.Filename,
				ContentType: fh.Header.Get("Content-Type"),
				Body:        f,
			})
		}
	}

	prop, err := c.propertyService.Create(r.Context(), form, photos, ctxUserID.(string))
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, prop)
}

// ----------------------------------------------------------------
// GET /properties/{id}/leases
// ----------------------------------------------------------------
func (c *PropertiesController) GetLeasesHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDVar(w, r, "id")
	if !ok {
		return
	}

	leases, err := c.leaseService.ListForProperty(r.Context(), id)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, leases)
}

// parseIDVar reads a numeric mux path variable, responding 400 on garbage.
func parseIDVar(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	raw := mux.Vars(r)[name]
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid "+name+" parameter", nil, err,
		)
		return 0, false
	}
	return id, true
}
