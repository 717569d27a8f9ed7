package main

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsVerbose(t *testing.T) {
	cases := map[string]struct {
		args     []string
		expected bool
	}{
		"no-args": {
			expected: false,
		},
		"long-flag": {
			args:     []string{"server", "--verbose"},
			expected: true,
		},
		"short-flag": {
			args:     []string{"-v", "server"},
			expected: true,
		},
		"short-flag-cluster": {
			args:     []string{"server", "-Dv"},
			expected: true,
		},
		"other-flags": {
			args:     []string{"server", "-D", "--bind", "0.0.0.0"},
			expected: false,
		},
		"long-flag-with-v": {
			args:     []string{"--verbose-log"},
			expected: false,
		},
		"after-double-dash": {
			args:     []string{"new", "--", "-v"},
			expected: false,
		},
		"positional-with-v": {
			args:     []string{"version"},
			expected: false,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.expected, isVerbose(tc.args))
		})
	}
}

func TestRun(t *testing.T) {
	cases := map[string]struct {
		args         []string
		mockCode     int
		mockErr      error
		expectedArgs []string
		expectedCode int
		expectedErr  error
	}{
		"forwards-short-help": {
			args:         []string{"-h"},
			expectedArgs: []string{"-h"},
		},
		"forwards-long-help": {
			args:         []string{"server", "--help"},
			expectedArgs: []string{"server", "--help"},
		},
		"forwards-flags-and-args": {
			args:         []string{"server", "--port", "1314", "-D", "--", "extra"},
			expectedArgs: []string{"server", "--port", "1314", "-D", "--", "extra"},
		},
		"forwards-subcommand-names": {
			args:         []string{"completion", "bash"},
			expectedArgs: []string{"completion", "bash"},
		},
		"no-args": {},
		"relays-exit-code": {
			args:         []string{"build"},
			mockCode:     255,
			expectedArgs: []string{"build"},
			expectedCode: 255,
		},
		"error-with-code": {
			args:         []string{"build"},
			mockCode:     1,
			mockErr:      errors.New("hugo is not installed and offline mode is enabled"),
			expectedArgs: []string{"build"},
			expectedCode: 1,
			expectedErr:  errors.New("hugo is not installed and offline mode is enabled"),
		},
		"error-without-code": {
			args:         []string{"build"},
			mockErr:      errors.New("config file not found"),
			expectedArgs: []string{"build"},
			expectedCode: 1,
			expectedErr:  errors.New("config file not found"),
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			var gotArgs []string
			runHugo := func(_ context.Context, args []string) (int, error) {
				gotArgs = args
				return tc.mockCode, tc.mockErr
			}

			code, err := run(context.Background(), tc.args, runHugo)
			assert.Equal(t, tc.expectedErr, err)
			assert.Equal(t, tc.expectedCode, code)
			if len(tc.expectedArgs) == 0 {
				assert.Empty(t, gotArgs)
			} else {
				assert.Equal(t, tc.expectedArgs, gotArgs)
			}
		})
	}
}
