package middlewares

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-points-gateway/internal/models"
	"github.com/sbilibin2017/gw-points-gateway/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestAuthMiddleware(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name             string
		mockSetup        func(s *MockSessionGetter, v *MockTokenValidator)
		expectedStatus   int
		expectedBody     string
		expectNextCalled bool
	}{
		{
			name: "NoSession",
			mockSetup: func(s *MockSessionGetter, v *MockTokenValidator) {
				s.EXPECT().CurrentSession(gomock.Any()).
					Return(nil, fmt.Errorf("%w: not logged in", services.ErrAuth))
			},
			expectedStatus:   http.StatusUnauthorized,
			expectedBody:     `{"error":"Unauthorized"}`,
			expectNextCalled: false,
		},
		{
			name: "SessionStoreFailure",
			mockSetup: func(s *MockSessionGetter, v *MockTokenValidator) {
				s.EXPECT().CurrentSession(gomock.Any()).
					Return(nil, fmt.Errorf("read session: %w", errors.New("dial tcp 127.0.0.1:6379: connection refused")))
			},
			expectedStatus:   http.StatusInternalServerError,
			expectedBody:     `{"error":"Internal server error"}`,
			expectNextCalled: false,
		},
		{
			name: "ExpiredToken",
			mockSetup: func(s *MockSessionGetter, v *MockTokenValidator) {
				s.EXPECT().CurrentSession(gomock.Any()).
					Return(&models.Session{Token: "sometoken"}, nil)
				v.EXPECT().Validate(gomock.Any(), "sometoken").
					Return(errors.New("token expired"))
			},
			expectedStatus:   http.StatusUnauthorized,
			expectedBody:     `{"error":"Unauthorized"}`,
			expectNextCalled: false,
		},
		{
			name: "ValidSession",
			mockSetup: func(s *MockSessionGetter, v *MockTokenValidator) {
				s.EXPECT().CurrentSession(gomock.Any()).
					Return(&models.Session{Token: "validtoken"}, nil)
				v.EXPECT().Validate(gomock.Any(), "validtoken").
					Return(nil)
			},
			expectedStatus:   http.StatusOK,
			expectNextCalled: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sessions := NewMockSessionGetter(ctrl)
			validator := NewMockTokenValidator(ctrl)
			tt.mockSetup(sessions, validator)

			nextCalled := false
			nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				w.WriteHeader(http.StatusOK)
			})

			handler := AuthMiddleware(sessions, validator)(nextHandler)

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Equal(t, tt.expectNextCalled, nextCalled)
			if !tt.expectNextCalled {
				assert.JSONEq(t, tt.expectedBody, rr.Body.String())
			}
		})
	}
}
