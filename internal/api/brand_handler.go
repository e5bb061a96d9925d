package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	app_errors "github.com/Eluskie/Orlando/internal/errors"
	"github.com/Eluskie/Orlando/internal/interfaces"
	"github.com/Eluskie/Orlando/internal/model"
)

// BrandHandler handles brand, style and asset endpoints.
type BrandHandler struct {
	brands interfaces.BrandService
}

func NewBrandHandler(brands interfaces.BrandService) *BrandHandler {
	return &BrandHandler{brands: brands}
}

// CreateBrandRequest is the payload for brand creation.
type CreateBrandRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=100" example:"Brewster"`
	Description string `json:"description,omitempty" validate:"max=500"`
}

// CreateBrandResponse returns the new brand and its default conversation.
type CreateBrandResponse struct {
	Brand          *model.Brand `json:"brand"`
	ConversationID string       `json:"conversationId"`
}

// BrandsResponse wraps the brand listing.
type BrandsResponse struct {
	Brands []*model.Brand `json:"brands"`
}

// StyleUpdateRequest is the payload for the style merge endpoint.
type StyleUpdateRequest struct {
	ExtractedStyle  *model.ExtractedStyle `json:"extractedStyle" validate:"required"`
	ReferenceImages []string              `json:"referenceImages"`
}

// StyleResponse wraps a brand's style.
type StyleResponse struct {
	Style *model.BrandStyle `json:"style"`
}

// HandleCreateBrand godoc
// @Summary      Create a brand
// @Description  Creates a brand together with its default conversation.
// @Tags         Brands
// @Accept       json
// @Produce      json
// @Param        request  body  CreateBrandRequest  true  "Brand name and optional description"
// @Success      200  {object}  CreateBrandResponse
// @Failure      400  {object}  ErrorResponse
// @Router       /v1/brands [post]
func (h *BrandHandler) HandleCreateBrand(w http.ResponseWriter, r *http.Request) {
	var req CreateBrandRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, fmt.Errorf("%w: invalid request body", app_errors.ErrValidation))
		return
	}
	if err := validateRequest(req); err != nil {
		respondWithError(w, err)
		return
	}

	brand, conversationID, err := h.brands.CreateBrand(r.Context(), req.Name, req.Description)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, CreateBrandResponse{Brand: brand, ConversationID: conversationID})
}

// HandleListBrands godoc
// @Summary      List brands
// @Description  Returns all brands, newest first.
// @Tags         Brands
// @Produce      json
// @Success      200  {object}  BrandsResponse
// @Router       /v1/brands [get]
func (h *BrandHandler) HandleListBrands(w http.ResponseWriter, r *http.Request) {
	brands, err := h.brands.ListBrands(r.Context())
	if err != nil {
		respondWithError(w, err)
		return
	}
	if brands == nil {
		brands = []*model.Brand{}
	}
	respondWithJSON(w, http.StatusOK, BrandsResponse{Brands: brands})
}

// HandleGetBrand godoc
// @Summary      Get a brand
// @Tags         Brands
// @Produce      json
// @Param        brandID  path  string  true  "Brand ID"
// @Success      200  {object}  model.Brand
// @Failure      404  {object}  ErrorResponse
// @Router       /v1/brands/{brandID} [get]
func (h *BrandHandler) HandleGetBrand(w http.ResponseWriter, r *http.Request) {
	brand, err := h.brands.GetBrand(r.Context(), chi.URLParam(r, "brandID"))
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, brand)
}

// HandleGetStyle godoc
// @Summary      Get a brand's style
// @Tags         Brands
// @Produce      json
// @Param        brandID  path  string  true  "Brand ID"
// @Success      200  {object}  StyleResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /v1/brands/{brandID}/style [get]
func (h *BrandHandler) HandleGetStyle(w http.ResponseWriter, r *http.Request) {
	style, err := h.brands.GetStyle(r.Context(), chi.URLParam(r, "brandID"))
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, StyleResponse{Style: style})
}

// HandleUpdateStyle godoc
// @Summary      Merge extracted style into a brand
// @Description  Merges an extraction and its reference images into the brand's style record. Reference images are deduplicated by URL.
// @Tags         Brands
// @Accept       json
// @Produce      json
// @Param        brandID  path  string              true  "Brand ID"
// @Param        request  body  StyleUpdateRequest  true  "Extraction and source images"
// @Success      200  {object}  StyleResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /v1/brands/{brandID}/style [patch]
func (h *BrandHandler) HandleUpdateStyle(w http.ResponseWriter, r *http.Request) {
	var req StyleUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, fmt.Errorf("%w: invalid request body", app_errors.ErrValidation))
		return
	}
	if err := validateRequest(req); err != nil {
		respondWithError(w, err)
		return
	}

	style, err := h.brands.MergeStyle(r.Context(), chi.URLParam(r, "brandID"), *req.ExtractedStyle, req.ReferenceImages)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, StyleResponse{Style: style})
}

// HandleListAssets godoc
// @Summary      List a brand's assets
// @Tags         Brands
// @Produce      json
// @Param        brandID  path  string  true  "Brand ID"
// @Success      200  {array}  model.Asset
// @Failure      404  {object}  ErrorResponse
// @Router       /v1/brands/{brandID}/assets [get]
func (h *BrandHandler) HandleListAssets(w http.ResponseWriter, r *http.Request) {
	assets, err := h.brands.ListAssets(r.Context(), chi.URLParam(r, "brandID"))
	if err != nil {
		respondWithError(w, err)
		return
	}
	if assets == nil {
		assets = []model.Asset{}
	}
	respondWithJSON(w, http.StatusOK, assets)
}

// HandleUpload godoc
// @Summary      Upload a reference image
// @Description  Accepts multipart form data with a "file" field (images only, max 10MB) and an optional "brandId" field. Creates a custom asset when a brand is given.
// @Tags         Assets
// @Accept       multipart/form-data
// @Produce      json
// @Success      200  {object}  service.UploadResult
// @Failure      400  {object}  ErrorResponse
// @Router       /v1/upload [post]
func (h *BrandHandler) HandleUpload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(12 << 20); err != nil {
		respondWithError(w, fmt.Errorf("%w: invalid multipart form", app_errors.ErrValidation))
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		respondWithError(w, fmt.Errorf("%w: no file provided", app_errors.ErrValidation))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		respondWithError(w, fmt.Errorf("could not read upload: %w", err))
		return
	}

	mediaType := header.Header.Get("Content-Type")
	result, err := h.brands.UploadAsset(r.Context(), r.FormValue("brandId"), header.Filename, mediaType, data)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, result)
}
