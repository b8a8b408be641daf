package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFetchErrorIncludesLocation(t *testing.T) {
	t.Parallel()

	underlying := stdErrors.New("connection refused")
	err := NewFetchError("https://shop.example/data/tote_bag.json", underlying)

	var fetchErr *FetchError
	require.ErrorAs(t, err, &fetchErr)
	require.Equal(t, "https://shop.example/data/tote_bag.json", fetchErr.Location)
	require.True(t, stdErrors.Is(err, underlying))
	require.Equal(t, "fetch error: https://shop.example/data/tote_bag.json: connection refused", err.Error())
}

func TestFetchErrorWithoutLocation(t *testing.T) {
	t.Parallel()

	err := NewFetchError("", stdErrors.New("boom"))
	require.Equal(t, "fetch error: boom", err.Error())
}

func TestParseErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("unexpected token")
	err := NewParseError("tote_bag.json", 12, underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "tote_bag.json", parseErr.Path)
	require.Equal(t, 12, parseErr.Line)
	require.True(t, stdErrors.Is(err, underlying))
	require.Equal(t, "parse error: tote_bag.json:12: unexpected token", err.Error())
}

func TestValidationErrorIncludesField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("sizes.M.colors", "must contain at least one color", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "sizes.M.colors", validationErr.Field)
	require.Contains(t, validationErr.Message, "at least one color")
	require.Equal(t, "validation error: sizes.M.colors: must contain at least one color", err.Error())
}

func TestNilReceiversAreSafe(t *testing.T) {
	t.Parallel()

	var fetchErr *FetchError
	var parseErr *ParseError
	var validationErr *ValidationError

	require.Empty(t, fetchErr.Error())
	require.Nil(t, fetchErr.Unwrap())
	require.Empty(t, parseErr.Error())
	require.Nil(t, parseErr.Unwrap())
	require.Empty(t, validationErr.Error())
	require.Nil(t, validationErr.Unwrap())
}

func TestExtractLine(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: 0},
		{name: "no position", err: stdErrors.New("empty document"), want: 0},
		{name: "yaml message", err: stdErrors.New("yaml: line 7: did not find expected key"), want: 7},
		{name: "first match wins", err: fmt.Errorf("line 3: duplicate key (first seen line 1)"), want: 3},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, ExtractLine(tc.err))
		})
	}
}
