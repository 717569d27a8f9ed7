package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brunoribeiro127/hugo-cli/internal/model"
)

func TestNewVersion(t *testing.T) {
	cases := map[string]struct {
		version  string
		expected model.Version
	}{
		"regular": {
			version:  "v0.45.1",
			expected: model.Version("v0.45.1"),
		},
		"without-prefix": {
			version:  "0.45.1",
			expected: model.Version("v0.45.1"),
		},
		"empty": {
			version:  "",
			expected: model.Version(""),
		},
		"with-spaces": {
			version:  " 0.45.1 ",
			expected: model.Version("v0.45.1"),
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			result := model.NewVersion(tc.version)
			assert.Equal(t, tc.expected, result)
		})
	}
}

func TestVersion_Compare(t *testing.T) {
	cases := map[string]struct {
		v1       model.Version
		v2       model.Version
		expected int
	}{
		"eq": {
			v1:       model.Version("v0.45.1"),
			v2:       model.Version("v0.45.1"),
			expected: 0,
		},
		"v1-minor-ordinal": {
			v1:       model.Version("v0.104.3"),
			v2:       model.Version("v0.20.0"),
			expected: 1,
		},
		"v1-patch": {
			v1:       model.Version("v0.45.2"),
			v2:       model.Version("v0.45.1"),
			expected: 1,
		},
		"v2-minor-ordinal": {
			v1:       model.Version("v0.9.0"),
			v2:       model.Version("v0.10.0"),
			expected: -1,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			result := tc.v1.Compare(tc.v2)
			assert.Equal(t, tc.expected, result)
		})
	}
}

func TestVersion_Tag(t *testing.T) {
	cases := map[string]struct {
		version           model.Version
		stripTrailingZero bool
		expected          string
	}{
		"keep-trailing-zero": {
			version:  model.Version("v0.50.0"),
			expected: "0.50.0",
		},
		"strip-trailing-zero": {
			version:           model.Version("v0.50.0"),
			stripTrailingZero: true,
			expected:          "0.50",
		},
		"strip-non-zero-patch": {
			version:           model.Version("v0.30.2"),
			stripTrailingZero: true,
			expected:          "0.30.2",
		},
		"strip-patch-ending-in-zero": {
			version:           model.Version("v0.30.10"),
			stripTrailingZero: true,
			expected:          "0.30.10",
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.version.Tag(tc.stripTrailingZero))
		})
	}
}

func TestParseVersionRequest(t *testing.T) {
	cases := map[string]struct {
		raw              string
		expectedNumeric  model.Version
		expectedExtended bool
		expectedString   string
		expectedErr      error
	}{
		"regular": {
			raw:             "0.45.1",
			expectedNumeric: model.Version("v0.45.1"),
			expectedString:  "0.45.1",
		},
		"extended-prefix": {
			raw:              "extended_0.45.1",
			expectedNumeric:  model.Version("v0.45.1"),
			expectedExtended: true,
			expectedString:   "extended_0.45.1",
		},
		"extended-suffix": {
			raw:              "0.45.1/extended",
			expectedNumeric:  model.Version("v0.45.1"),
			expectedExtended: true,
			expectedString:   "extended_0.45.1",
		},
		"two-components-padded": {
			raw:             "0.50",
			expectedNumeric: model.Version("v0.50.0"),
			expectedString:  "0.50.0",
		},
		"v-prefix": {
			raw:             "v0.104.3",
			expectedNumeric: model.Version("v0.104.3"),
			expectedString:  "0.104.3",
		},
		"surrounding-spaces": {
			raw:             " 0.104.3 ",
			expectedNumeric: model.Version("v0.104.3"),
			expectedString:  "0.104.3",
		},
		"error-empty": {
			raw:         "",
			expectedErr: model.ErrInvalidVersion,
		},
		"error-single-component": {
			raw:         "0",
			expectedErr: model.ErrInvalidVersion,
		},
		"error-pre-release": {
			raw:         "0.45.1-beta",
			expectedErr: model.ErrInvalidVersion,
		},
		"error-leading-zeros": {
			raw:         "0.045.1",
			expectedErr: model.ErrInvalidVersion,
		},
		"error-latest": {
			raw:         "latest",
			expectedErr: model.ErrInvalidVersion,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			req, err := model.ParseVersionRequest(tc.raw)
			if tc.expectedErr != nil {
				require.ErrorIs(t, err, tc.expectedErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.raw, req.Raw)
			assert.Equal(t, tc.expectedNumeric, req.Numeric)
			assert.Equal(t, tc.expectedExtended, req.Extended)
			assert.Equal(t, tc.expectedString, req.String())
		})
	}
}

func TestUnsupportedVersionError(t *testing.T) {
	err := &model.UnsupportedVersionError{Requested: "0.10.0", Minimum: "0.20.0"}
	assert.EqualError(t, err, "hugo-cli requires Hugo 0.20.0 or above. Version requested: 0.10.0")
}
