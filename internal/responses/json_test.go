package responses

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/itsfarrukhali/bathfitter-backend/internal/services"
)

func TestFailFromErrorStatusMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name string
		err  error
		want int
	}{
		{"not found", fmt.Errorf("%w: design", services.ErrNotFound), http.StatusNotFound},
		{"conflict", fmt.Errorf("%w: slug taken", services.ErrConflict), http.StatusConflict},
		{"validation", fmt.Errorf("%w: bad plumbing", services.ErrValidation), http.StatusBadRequest},
		{"forbidden", fmt.Errorf("%w: not yours", services.ErrForbidden), http.StatusForbidden},
		{"unknown", errors.New("connection reset"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			FailFromError(c, tc.err, "something went wrong")
			assert.Equal(t, tc.want, w.Code)
			assert.Contains(t, w.Body.String(), `"status":"error"`)
		})
	}
}
