package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/aiu-lab/facility-service/pkg/auth"
	md "github.com/aiu-lab/facility-service/pkg/middleware"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func TestJwtAuthentication(t *testing.T) {
	valid, err := auth.NewToken("dana", auth.RoleAdmin, time.Hour)
	require.NoError(t, err)
	expired, err := auth.NewToken("dana", auth.RoleAdmin, -time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name         string
		header       string
		expectedCode int
		expectedBody string
	}{
		{name: "ok", header: "Bearer " + valid, expectedCode: http.StatusOK, expectedBody: "dana:true"},
		{name: "err. no header", expectedCode: http.StatusUnauthorized},
		{name: "err. not bearer", header: "Basic abc", expectedCode: http.StatusUnauthorized},
		{name: "err. expired", header: "Bearer " + expired, expectedCode: http.StatusUnauthorized},
		{name: "err. garbage", header: "Bearer abc.def.ghi", expectedCode: http.StatusUnauthorized},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			e.GET("/me", func(c echo.Context) error {
				ctx := c.Request().Context()
				name, err := auth.GetUserName(ctx)
				if err != nil {
					return err
				}
				if auth.IsAdmin(ctx) {
					return c.String(http.StatusOK, name+":true")
				}
				return c.String(http.StatusOK, name+":false")
			}, md.JwtAuthentication)

			r := httptest.NewRequest(http.MethodGet, "/me", http.NoBody)
			if tt.header != "" {
				r.Header.Set(md.AuthorizationHeader, tt.header)
			}
			w := httptest.NewRecorder()
			e.ServeHTTP(w, r)

			require.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedBody != "" {
				require.Equal(t, tt.expectedBody, w.Body.String())
			}
		})
	}
}
