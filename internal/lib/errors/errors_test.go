package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHTTPStatus(t *testing.T) {
	tCases := []struct {
		name    string
		err     error
		expCode int
	}{
		{name: "nil", err: nil, expCode: http.StatusOK},
		{name: "invalid_argument", err: ErrInvalidArgument, expCode: http.StatusBadRequest},
		{name: "timeout", err: ErrTimeout, expCode: http.StatusRequestTimeout},
		{name: "not_found", err: ErrNotFound, expCode: http.StatusNotFound},
		{name: "internal", err: ErrInternal, expCode: http.StatusInternalServerError},
		{name: "uncategorized", err: fmt.Errorf("something broke"), expCode: http.StatusInternalServerError},
		{name: "wrapped", err: fmt.Errorf("op: %w", ErrTimeout), expCode: http.StatusRequestTimeout},
	}

	for _, tCase := range tCases {
		t.Run(tCase.name, func(t *testing.T) {
			require.Equal(t, tCase.expCode, HTTPStatus(tCase.err))
		})
	}
}

// A category must survive being encoded into a status by one service and
// decoded by the next hop's client.
func TestCategoryRoundTrip(t *testing.T) {
	for _, category := range []error{ErrInvalidArgument, ErrTimeout, ErrNotFound, ErrInternal} {
		restored := FromStatusCode(HTTPStatus(category), category.Error())
		require.ErrorIs(t, restored, category)
		require.Equal(t, HTTPStatus(category), HTTPStatus(restored))
	}
}

func TestFromStatusCodeKeepsMessage(t *testing.T) {
	err := FromStatusCode(http.StatusNotFound, "order not found in database")
	require.ErrorIs(t, err, ErrNotFound)
	require.Contains(t, err.Error(), "order not found in database")
}

func TestFromStatusCodeUnknownIsInternal(t *testing.T) {
	err := FromStatusCode(http.StatusBadGateway, "upstream down")
	require.ErrorIs(t, err, ErrInternal)
}
