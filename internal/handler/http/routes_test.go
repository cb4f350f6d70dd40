package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-env-server/internal/logger"
	"github.com/MKhiriev/go-env-server/models"
)

// TestRoutes_OverNetwork drives the router through a real listener with a
// resty client. The default transport asks for gzip and decodes it
// transparently, so every case passes through withGZip.
func TestRoutes_OverNetwork(t *testing.T) {
	p := scriptPayload()
	srv := httptest.NewServer(NewHandler(p, logger.Nop()).Init())
	t.Cleanup(srv.Close)

	client := resty.New().SetBaseURL(srv.URL)

	tests := []struct {
		name   string
		method string
		path   string
	}{
		{name: "plain GET", method: http.MethodGet, path: "/"},
		{name: "GET file-like path", method: http.MethodGet, path: "/config.js"},
		{name: "POST", method: http.MethodPost, path: "/submit"},
		{name: "PATCH deep path", method: http.MethodPatch, path: "/x/y/z"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := client.R().Execute(tt.method, tt.path)
			require.NoError(t, err)

			assert.Equal(t, http.StatusOK, resp.StatusCode())
			assert.Equal(t, models.ContentTypeJavaScript, resp.Header().Get("Content-Type"))
			assert.Equal(t, string(p.Body), resp.String())
			assert.NotEmpty(t, resp.Header().Get(traceIDHeader))
		})
	}
}
