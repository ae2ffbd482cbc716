package test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"speechbench/internal/api/errors"
	"speechbench/internal/api/v1/dto"
	"speechbench/internal/api/v1/handlers"
	"speechbench/internal/app/testutil"
)

func TestProviderHandler_List(t *testing.T) {
	tests := []struct {
		name           string
		url            string
		setupMocks     func(*testutil.MockServices)
		expectedStatus int
		validateBody   func(*testing.T, map[string]interface{})
	}{
		{
			name: "all providers",
			url:  "/api/v1/providers",
			setupMocks: func(ms *testutil.MockServices) {
				ms.ProviderService.On("ListProviders", mock.Anything, dto.ListProvidersQuery{}).
					Return(&dto.ProviderListResponse{
						CatalogVersion: "2025.1",
						Providers:      []dto.ProviderResponse{{ID: "deepgram", Name: "Deepgram", Modality: "STT"}},
					}, nil)
			},
			expectedStatus: http.StatusOK,
			validateBody: func(t *testing.T, body map[string]interface{}) {
				assert.Equal(t, "2025.1", body["catalog_version"])
				providers := body["providers"].([]interface{})
				assert.Len(t, providers, 1)
				assert.Equal(t, "deepgram", providers[0].(map[string]interface{})["id"])
			},
		},
		{
			name: "modality filter is passed through",
			url:  "/api/v1/providers?modality=TTS",
			setupMocks: func(ms *testutil.MockServices) {
				ms.ProviderService.On("ListProviders", mock.Anything, dto.ListProvidersQuery{Modality: "TTS"}).
					Return(&dto.ProviderListResponse{}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "invalid modality",
			url:            "/api/v1/providers?modality=video",
			setupMocks:     func(ms *testutil.MockServices) {},
			expectedStatus: http.StatusUnprocessableEntity,
			validateBody: func(t *testing.T, body map[string]interface{}) {
				assert.Equal(t, "validation", body["kind"])
				details := body["details"].(map[string]interface{})
				assert.Contains(t, details["modality"], "invalid")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, mockServices := setupTestRouter(t)
			tt.setupMocks(mockServices)

			handler := handlers.NewProviderHandler(mockServices.ProviderService)
			router.GET("/api/v1/providers", handler.List)

			req := httptest.NewRequest("GET", tt.url, nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.validateBody != nil {
				tt.validateBody(t, decodeBody(t, rec))
			}
			mockServices.ProviderService.AssertExpectations(t)
		})
	}
}

func TestProviderHandler_Get(t *testing.T) {
	tests := []struct {
		name           string
		id             string
		setupMocks     func(*testutil.MockServices)
		expectedStatus int
		expectedKind   string
	}{
		{
			name: "found",
			id:   "kokoro",
			setupMocks: func(ms *testutil.MockServices) {
				ms.ProviderService.On("GetProvider", mock.Anything, "kokoro").
					Return(&dto.ProviderResponse{ID: "kokoro", Name: "Kokoro (Open Source)"}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "not found",
			id:   "nope",
			setupMocks: func(ms *testutil.MockServices) {
				ms.ProviderService.On("GetProvider", mock.Anything, "nope").
					Return(nil, errors.NewNotFoundError("provider"))
			},
			expectedStatus: http.StatusNotFound,
			expectedKind:   "not_found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, mockServices := setupTestRouter(t)
			tt.setupMocks(mockServices)

			handler := handlers.NewProviderHandler(mockServices.ProviderService)
			router.GET("/api/v1/providers/:id", handler.Get)

			req := httptest.NewRequest("GET", "/api/v1/providers/"+tt.id, nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			body := decodeBody(t, rec)
			if tt.expectedKind != "" {
				assert.Equal(t, tt.expectedKind, body["kind"])
				assert.NotEmpty(t, body["request_id"])
			} else {
				assert.Equal(t, tt.id, body["id"])
			}
		})
	}
}
