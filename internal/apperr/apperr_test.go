package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindHTTPStatus(t *testing.T) {
	cases := map[Kind]int{
		KindValidation:     http.StatusBadRequest,
		KindRoleMismatch:   http.StatusBadRequest,
		KindNotFound:       http.StatusNotFound,
		KindConflict:       http.StatusConflict,
		KindReferenceInUse: http.StatusConflict,
		KindExternal:       http.StatusBadGateway,
		Kind("unknown"):    http.StatusInternalServerError,
	}
	for kind, want := range cases {
		assert.Equal(t, want, kind.HTTPStatus(), string(kind))
	}
}

func TestAs(t *testing.T) {
	base := NotFound("order not found")
	wrapped := fmt.Errorf("service: %w", base)

	e, ok := As(wrapped)
	require.True(t, ok)
	assert.Equal(t, KindNotFound, e.Kind)

	_, ok = As(errors.New("plain"))
	assert.False(t, ok)
}

func TestWrapKeepsCauseOutOfSerialization(t *testing.T) {
	cause := errors.New("pq: duplicate key value violates unique constraint")
	e := Conflict("sku already exists").Wrap(cause)

	assert.ErrorIs(t, e, cause)
	assert.Contains(t, e.Error(), "sku already exists")
	// The serialized form must not include the cause
	assert.NotContains(t, e.Detail, "pq:")
}

func TestExternalCarriesCategory(t *testing.T) {
	e := External("call", "sidecar returned 500")
	assert.Equal(t, KindExternal, e.Kind)
	assert.Equal(t, "call", e.Category)
}
