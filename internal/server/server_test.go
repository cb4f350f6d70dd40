package server

import (
	"context"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-env-server/internal/config"
	"github.com/MKhiriev/go-env-server/internal/handler"
	myHTTP "github.com/MKhiriev/go-env-server/internal/handler/http"
	"github.com/MKhiriev/go-env-server/internal/logger"
	"github.com/MKhiriev/go-env-server/models"
)

func testHandlers() *handler.Handlers {
	payload := models.Payload{Body: []byte(`{}`), ContentType: models.ContentTypeJSON}
	return &handler.Handlers{HTTP: myHTTP.NewHandler(payload, logger.Nop())}
}

func testConfig(port string) *config.StructuredConfig {
	cfg := &config.StructuredConfig{}
	cfg.Server.Port = port
	return cfg
}

func TestNewServer(t *testing.T) {
	tests := []struct {
		name     string
		handlers *handler.Handlers
		wantErr  error
	}{
		{name: "http handler present", handlers: testHandlers()},
		{name: "nil handlers", handlers: nil, wantErr: errNoServersAreCreated},
		{name: "no http handler", handlers: &handler.Handlers{}, wantErr: errNoServersAreCreated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewServer(tt.handlers, testConfig("8080"), logger.Nop())

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, s)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, s)
			assert.Equal(t, ":8080", s.(*server).httpServer.server.Addr)
		})
	}
}

func TestServer_Run_GracefulShutdown(t *testing.T) {
	s := &server{
		httpServer: newHTTPServer(http.NotFoundHandler(), "127.0.0.1:0", logger.Nop()),
		logger:     logger.Nop(),
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- s.run(ctx)
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestServer_Run_PortInUse(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { _ = l.Close() })

	s := &server{
		httpServer: newHTTPServer(http.NotFoundHandler(), l.Addr().String(), logger.Nop()),
		logger:     logger.Nop(),
	}

	err = s.run(context.Background())

	assert.ErrorIs(t, err, errServerStopped)
}
