package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusMapping(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{Validation("missing field"), http.StatusBadRequest},
		{Conflict("duplicate email"), http.StatusConflict},
		{Auth("no session"), http.StatusUnauthorized},
		{Forbidden("wrong role"), http.StatusForbidden},
		{NotFound("no such emergency"), http.StatusNotFound},
		{Dependency("store emergency", errors.New("boom")), http.StatusInternalServerError},
		{errors.New("plain"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.status, Status(tc.err), tc.err.Error())
	}
}

func TestClientMessageHidesDependencyCause(t *testing.T) {
	err := Dependency("store emergency", errors.New("password=hunter2 refused"))
	assert.Equal(t, "Internal server error", ClientMessage(err))
	assert.Contains(t, err.Error(), "hunter2", "the cause stays available server-side")
}

func TestClientMessagePassesThroughUserFacingKinds(t *testing.T) {
	assert.Equal(t, "missing field", ClientMessage(Validation("missing field")))
}

func TestIsKindThroughWrapping(t *testing.T) {
	err := fmt.Errorf("handler: %w", Validation("bad input"))
	assert.True(t, IsKind(err, KindValidation))
	assert.False(t, IsKind(err, KindConflict))
}
