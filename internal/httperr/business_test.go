package httperr

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/gym-scheduler/internal/domain/appointment"
)

func TestRespond(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		err    error
		status int
		code   string
	}{
		{domain.ErrAppointmentNotFound, http.StatusNotFound, "appointment_not_found"},
		{domain.SlotUnavailable("slot_not_offered", "x"), http.StatusConflict, "slot_not_offered"},
		{domain.InvalidTransition("already_cancelled", "x"), http.StatusUnprocessableEntity, "already_cancelled"},
		{domain.WindowClosed("cancel_window_closed", "x"), http.StatusConflict, "cancel_window_closed"},
		{domain.Validation("invalid_date", "x"), http.StatusBadRequest, "invalid_date"},
		{domain.ErrStaleAppointment, http.StatusConflict, "appointment_modified"},
		{errors.New("db down"), http.StatusInternalServerError, "internal_error"},
	}

	for _, tc := range cases {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		Respond(c, tc.err)

		assert.Equal(t, tc.status, w.Code, tc.code)
		var body HTTPError
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, tc.code, body.Code)
		assert.NotEmpty(t, body.Message)
	}
}
