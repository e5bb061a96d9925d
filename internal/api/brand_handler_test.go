package api_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Eluskie/Orlando/internal/api"
	app_errors "github.com/Eluskie/Orlando/internal/errors"
	"github.com/Eluskie/Orlando/internal/interfaces/mocks"
	"github.com/Eluskie/Orlando/internal/model"
	"github.com/Eluskie/Orlando/internal/service"
)

func setupBrandHandler(t *testing.T) (*api.BrandHandler, *mocks.MockBrandService) {
	mockBrandSvc := mocks.NewMockBrandService(t)
	handler := api.NewBrandHandler(mockBrandSvc)
	return handler, mockBrandSvc
}

func TestBrandHandler_HandleCreateBrand(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		handler, mockBrandSvc := setupBrandHandler(t)
		brand := &model.Brand{ID: "brand-1", Name: "Brewster"}
		mockBrandSvc.On("CreateBrand", mock.Anything, "Brewster", "").Return(brand, "conv-1", nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/v1/brands", strings.NewReader(`{"name":"Brewster"}`))
		rr := httptest.NewRecorder()
		handler.HandleCreateBrand(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var resp api.CreateBrandResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "brand-1", resp.Brand.ID)
		assert.Equal(t, "conv-1", resp.ConversationID)
	})

	t.Run("Failure - missing name", func(t *testing.T) {
		handler, mockBrandSvc := setupBrandHandler(t)

		req := httptest.NewRequest(http.MethodPost, "/v1/brands", strings.NewReader(`{}`))
		rr := httptest.NewRecorder()
		handler.HandleCreateBrand(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockBrandSvc.AssertNotCalled(t, "CreateBrand", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Failure - malformed body", func(t *testing.T) {
		handler, _ := setupBrandHandler(t)

		req := httptest.NewRequest(http.MethodPost, "/v1/brands", strings.NewReader(`{broken`))
		rr := httptest.NewRecorder()
		handler.HandleCreateBrand(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestBrandHandler_HandleListBrands(t *testing.T) {
	t.Run("empty list serializes as an array", func(t *testing.T) {
		handler, mockBrandSvc := setupBrandHandler(t)
		mockBrandSvc.On("ListBrands", mock.Anything).Return(nil, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/v1/brands", nil)
		rr := httptest.NewRecorder()
		handler.HandleListBrands(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"brands":[]}`, rr.Body.String())
	})
}

func TestBrandHandler_HandleGetBrand(t *testing.T) {
	t.Run("Failure - unknown brand", func(t *testing.T) {
		handler, mockBrandSvc := setupBrandHandler(t)
		mockBrandSvc.On("GetBrand", mock.Anything, "missing").
			Return(nil, fmt.Errorf("%w: brand", app_errors.ErrNotFound)).Once()

		req := httptest.NewRequest(http.MethodGet, "/v1/brands/missing", nil)
		req = addChiURLParams(req, map[string]string{"brandID": "missing"})
		rr := httptest.NewRecorder()
		handler.HandleGetBrand(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestBrandHandler_HandleUpdateStyle(t *testing.T) {
	stylePayload := `{
		"extractedStyle": {
			"colors": {"primary":"#2563EB","secondary":"#1E40AF","accent":"#F59E0B","neutral":"#F3F4F6"},
			"typography": {"style":"sans-serif","weight":"medium","mood":"modern"},
			"mood": {"primary":"confident","keywords":["clean","bold","modern"],"tone":"cool"},
			"visualStyle": {"complexity":"minimal","contrast":"high","texture":"flat"},
			"confidence": 0.9
		},
		"referenceImages": ["/uploads/a.png"]
	}`

	t.Run("Success", func(t *testing.T) {
		handler, mockBrandSvc := setupBrandHandler(t)
		merged := &model.BrandStyle{PrimaryColor: "#2563EB", ReferenceImages: []string{"/uploads/a.png"}}
		mockBrandSvc.On("MergeStyle", mock.Anything, "brand-1",
			mock.MatchedBy(func(s model.ExtractedStyle) bool { return s.Colors.Primary == "#2563EB" }),
			[]string{"/uploads/a.png"},
		).Return(merged, nil).Once()

		req := httptest.NewRequest(http.MethodPatch, "/v1/brands/brand-1/style", strings.NewReader(stylePayload))
		req = addChiURLParams(req, map[string]string{"brandID": "brand-1"})
		rr := httptest.NewRecorder()
		handler.HandleUpdateStyle(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"primaryColor":"#2563EB"`)
	})

	t.Run("Failure - missing extraction", func(t *testing.T) {
		handler, mockBrandSvc := setupBrandHandler(t)

		req := httptest.NewRequest(http.MethodPatch, "/v1/brands/brand-1/style", strings.NewReader(`{"referenceImages":[]}`))
		req = addChiURLParams(req, map[string]string{"brandID": "brand-1"})
		rr := httptest.NewRecorder()
		handler.HandleUpdateStyle(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockBrandSvc.AssertNotCalled(t, "MergeStyle", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Failure - schema violation", func(t *testing.T) {
		handler, mockBrandSvc := setupBrandHandler(t)
		mockBrandSvc.On("MergeStyle", mock.Anything, "brand-1", mock.Anything, mock.Anything).
			Return(nil, fmt.Errorf("%w: colors.primary is not a hex string", app_errors.ErrValidation)).Once()

		req := httptest.NewRequest(http.MethodPatch, "/v1/brands/brand-1/style", strings.NewReader(stylePayload))
		req = addChiURLParams(req, map[string]string{"brandID": "brand-1"})
		rr := httptest.NewRecorder()
		handler.HandleUpdateStyle(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestBrandHandler_HandleUpload(t *testing.T) {
	multipartBody := func(t *testing.T, fieldName, fileName, contentType string, data []byte, brandID string) (*bytes.Buffer, string) {
		t.Helper()
		var buf bytes.Buffer
		mw := multipart.NewWriter(&buf)

		header := make(map[string][]string)
		header["Content-Disposition"] = []string{fmt.Sprintf(`form-data; name=%q; filename=%q`, fieldName, fileName)}
		header["Content-Type"] = []string{contentType}
		part, err := mw.CreatePart(header)
		require.NoError(t, err)
		_, err = part.Write(data)
		require.NoError(t, err)

		if brandID != "" {
			require.NoError(t, mw.WriteField("brandId", brandID))
		}
		require.NoError(t, mw.Close())
		return &buf, mw.FormDataContentType()
	}

	t.Run("Success", func(t *testing.T) {
		handler, mockBrandSvc := setupBrandHandler(t)
		mockBrandSvc.On("UploadAsset", mock.Anything, "brand-1", "logo.png", "image/png", []byte("png-bytes")).
			Return(&service.UploadResult{URL: "/uploads/logo-abc123.png"}, nil).Once()

		body, contentType := multipartBody(t, "file", "logo.png", "image/png", []byte("png-bytes"), "brand-1")
		req := httptest.NewRequest(http.MethodPost, "/v1/upload", body)
		req.Header.Set("Content-Type", contentType)
		rr := httptest.NewRecorder()
		handler.HandleUpload(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "/uploads/logo-abc123.png")
	})

	t.Run("Failure - no file field", func(t *testing.T) {
		handler, mockBrandSvc := setupBrandHandler(t)

		var buf bytes.Buffer
		mw := multipart.NewWriter(&buf)
		require.NoError(t, mw.WriteField("brandId", "brand-1"))
		require.NoError(t, mw.Close())

		req := httptest.NewRequest(http.MethodPost, "/v1/upload", &buf)
		req.Header.Set("Content-Type", mw.FormDataContentType())
		rr := httptest.NewRecorder()
		handler.HandleUpload(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockBrandSvc.AssertNotCalled(t, "UploadAsset", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Failure - service rejects the media type", func(t *testing.T) {
		handler, mockBrandSvc := setupBrandHandler(t)
		mockBrandSvc.On("UploadAsset", mock.Anything, "", "doc.pdf", "application/pdf", mock.Anything).
			Return(nil, fmt.Errorf("%w: only image files are allowed", app_errors.ErrValidation)).Once()

		body, contentType := multipartBody(t, "file", "doc.pdf", "application/pdf", []byte("%PDF"), "")
		req := httptest.NewRequest(http.MethodPost, "/v1/upload", body)
		req.Header.Set("Content-Type", contentType)
		rr := httptest.NewRecorder()
		handler.HandleUpload(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}
