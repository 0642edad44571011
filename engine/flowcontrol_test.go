package engine

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRateLimit(t *testing.T) {
	calls := 0
	handler := RateLimit(NewSubmitLimiter(2), func(w http.ResponseWriter, r *http.Request) {
		calls++
	})

	codes := []int{}
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		handler(w, httptest.NewRequest("POST", "/", nil))
		codes = append(codes, w.Code)
	}

	assert.Equal(t, []int{200, 200, 429}, codes)
	assert.Equal(t, 2, calls)
}

func TestRateLimitDisabled(t *testing.T) {
	calls := 0
	handler := RateLimit(NewSubmitLimiter(0), func(w http.ResponseWriter, r *http.Request) {
		calls++
	})
	for i := 0; i < 50; i++ {
		handler(httptest.NewRecorder(), httptest.NewRequest("POST", "/", nil))
	}
	assert.Equal(t, 50, calls)
}
