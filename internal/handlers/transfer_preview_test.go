package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-points-gateway/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransferPreviewHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockPreviewer(ctrl)
	handler := NewTransferPreviewHandler(mockSvc)

	preview := models.TransferPreview{
		RawAmount:  95,
		Conversion: models.Conversion{QuantizedAmount: 90, ConvertedUnits: 3},
		Validation: models.ValidationResult{Valid: true, Violations: []models.Violation{}},
		CanConfirm: true,
	}

	tests := []struct {
		name           string
		body           string
		mockSetup      func()
		expectedStatus int
	}{
		{
			name: "number amount",
			body: `{"amount":95}`,
			mockSetup: func() {
				mockSvc.EXPECT().Preview(95.0).Return(preview)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "string amount",
			body: `{"amount":"95"}`,
			mockSetup: func() {
				mockSvc.EXPECT().Preview(95.0).Return(preview)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "unparsable amount reads as zero",
			body: `{"amount":"abc"}`,
			mockSetup: func() {
				mockSvc.EXPECT().Preview(0.0).Return(preview)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "all",
			body: `{"all":true}`,
			mockSetup: func() {
				mockSvc.EXPECT().PreviewAll().Return(preview)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "invalid json",
			body:           `[`,
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockSetup != nil {
				tt.mockSetup()
			}

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/transfer/preview", bytes.NewBufferString(tt.body)))

			require.Equal(t, tt.expectedStatus, rr.Code)
			if tt.expectedStatus == http.StatusOK {
				var got models.TransferPreview
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
				assert.Equal(t, preview, got)
			}
		})
	}
}
