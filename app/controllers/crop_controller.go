package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/cropconnect/api/app/models"
	"github.com/cropconnect/api/app/repositories"
	"github.com/cropconnect/api/app/services"
	"github.com/cropconnect/api/pkg/auth"
	"github.com/cropconnect/api/pkg/bind"
	"github.com/cropconnect/api/pkg/response"
)

type CropController struct {
	crops *services.CropService
}

func NewCrop(crops *services.CropService) *CropController {
	return &CropController{crops: crops}
}

// List handles GET /crops.
//
// Query parameters: category, location, priceMin, priceMax, organic, sort.
// Unfiltered listings come back in creation order; sort accepts price-low,
// price-high, rating and distance.
func (c *CropController) List(w http.ResponseWriter, r *http.Request) {
	f, errs := cropFilterFromQuery(r)
	if len(errs) > 0 {
		response.ValidationError(w, errs)
		return
	}

	crops, err := c.crops.List(r.Context(), f)
	if err != nil {
		respondErr(w, r, err, "Crop not found")
		return
	}
	if crops == nil {
		crops = []models.Crop{}
	}
	response.Success(w, crops)
}

func cropFilterFromQuery(r *http.Request) (repositories.CropFilter, map[string]string) {
	q := r.URL.Query()
	f := repositories.CropFilter{
		Category: q.Get("category"),
		Location: q.Get("location"),
		Sort:     q.Get("sort"),
	}
	// The web client sends category=all for "no filter".
	if strings.EqualFold(f.Category, "all") {
		f.Category = ""
	}
	errs := map[string]string{}

	if v := q.Get("priceMin"); v != "" {
		n, err := strconv.ParseFloat(v, 64)
		if err != nil {
			errs["priceMin"] = "priceMin must be a number"
		} else {
			f.PriceMin = &n
		}
	}
	if v := q.Get("priceMax"); v != "" {
		n, err := strconv.ParseFloat(v, 64)
		if err != nil {
			errs["priceMax"] = "priceMax must be a number"
		} else {
			f.PriceMax = &n
		}
	}
	if v := q.Get("organic"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			errs["organic"] = "organic must be true or false"
		} else {
			// organic=false is not a constraint, only true narrows.
			f.Organic = b
		}
	}
	return f, errs
}

// Get handles GET /crops/{id}.
func (c *CropController) Get(w http.ResponseWriter, r *http.Request) {
	crop, err := c.crops.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondErr(w, r, err, "Crop not found")
		return
	}
	response.Success(w, crop)
}

// Create handles POST /crops. The listing is owned by the caller, who
// must hold the farmer role.
func (c *CropController) Create(w http.ResponseWriter, r *http.Request) {
	p, _ := auth.PrincipalFrom(r.Context())
	if p.Role != models.RoleFarmer {
		response.Error(w, http.StatusForbidden, "Only farmers can create listings")
		return
	}

	var in services.CreateCropInput
	if errs, err := bind.JSON(r, &in); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	crop, err := c.crops.Create(r.Context(), p.UserID, in)
	if err != nil {
		respondErr(w, r, err, "Crop not found")
		return
	}
	response.Created(w, crop)
}

// Update handles PUT /crops/{id}. Partial bodies are merged into the
// existing listing; only the owner may update.
func (c *CropController) Update(w http.ResponseWriter, r *http.Request) {
	p, _ := auth.PrincipalFrom(r.Context())

	var patch models.CropPatch
	if errs, err := bind.JSON(r, &patch); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	crop, err := c.crops.Update(r.Context(), p.UserID, chi.URLParam(r, "id"), patch)
	if err != nil {
		respondErr(w, r, err, "Crop not found")
		return
	}
	response.Success(w, crop)
}

// Delete handles DELETE /crops/{id}. Only the owner may delete.
func (c *CropController) Delete(w http.ResponseWriter, r *http.Request) {
	p, _ := auth.PrincipalFrom(r.Context())

	if err := c.crops.Delete(r.Context(), p.UserID, chi.URLParam(r, "id")); err != nil {
		respondErr(w, r, err, "Crop not found")
		return
	}
	response.Message(w, "Crop deleted successfully")
}
