package engine

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/TheLab-ms/ethsignup/engine/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealth(t *testing.T) {
	d := db.OpenTest(t)
	svr := httptest.NewServer(ServeHealth(d))
	defer svr.Close()

	require.NoError(t, CheckHealth(context.Background(), svr.URL))

	d.Close()
	assert.ErrorContains(t, CheckHealth(context.Background(), svr.URL), "503")
}

func TestHealthURL(t *testing.T) {
	tests := []struct {
		addr string
		want string
	}{
		{":8080", "http://localhost:8080/healthz"},
		{":9000", "http://localhost:9000/healthz"},
		{"0.0.0.0:8081", "http://localhost:8081/healthz"},
		{"[::]:8082", "http://localhost:8082/healthz"},
		{"127.0.0.1:8083", "http://127.0.0.1:8083/healthz"},
		{"[::1]:8084", "http://[::1]:8084/healthz"},
		{"example.internal:80", "http://example.internal:80/healthz"},
	}
	for _, tt := range tests {
		got, err := HealthURL(tt.addr)
		require.NoError(t, err, tt.addr)
		assert.Equal(t, tt.want, got, tt.addr)
	}

	_, err := HealthURL("8080")
	assert.Error(t, err)
}
