package system_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/brunoribeiro127/hugo-cli/internal/system"
	"github.com/brunoribeiro127/hugo-cli/internal/system/mocks"
)

const releaseURL = "https://github.com/gohugoio/hugo/releases/tag/v0.104.3"

func TestBrowser_OpenURL(t *testing.T) {
	cases := map[string]struct {
		url           string
		callRuntimeOS bool
		mockRuntimeOS string
		callCmd       bool
		mockCmdName   string
		mockCmdArgs   []string
		mockCmdOutput []byte
		mockCmdErr    error
		expectedErr   error
	}{
		"success-darwin": {
			url:           releaseURL,
			callRuntimeOS: true,
			mockRuntimeOS: "darwin",
			callCmd:       true,
			mockCmdName:   "open",
		},
		"success-linux": {
			url:           releaseURL,
			callRuntimeOS: true,
			mockRuntimeOS: "linux",
			callCmd:       true,
			mockCmdName:   "xdg-open",
		},
		"success-windows": {
			url:           releaseURL,
			callRuntimeOS: true,
			mockRuntimeOS: "windows",
			callCmd:       true,
			mockCmdName:   "rundll32",
			mockCmdArgs:   []string{"url.dll,FileProtocolHandler"},
			mockCmdOutput: []byte{},
		},
		"error-invalid-scheme": {
			url:         "file:///etc/passwd",
			expectedErr: errors.New(`invalid url: "file:///etc/passwd"`),
		},
		"error-relative-url": {
			url:         "releases/tag/v0.104.3",
			expectedErr: errors.New(`invalid url: "releases/tag/v0.104.3"`),
		},
		"error-unsupported-platform": {
			url:           releaseURL,
			callRuntimeOS: true,
			mockRuntimeOS: "plan9",
			expectedErr:   errors.New("unsupported platform: plan9"),
		},
		"error-cmd-output": {
			url:           releaseURL,
			callRuntimeOS: true,
			mockRuntimeOS: "linux",
			callCmd:       true,
			mockCmdName:   "xdg-open",
			mockCmdOutput: []byte("no method available for opening"),
			mockCmdErr:    errors.New("exit status 3"),
			expectedErr:   errors.New("exit status 3: no method available for opening"),
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			exec := mocks.NewExec(t)
			execCmd := mocks.NewExecCombinedOutput(t)
			runtime := mocks.NewRuntime(t)

			if tc.callRuntimeOS {
				runtime.EXPECT().OS().Return(tc.mockRuntimeOS).Once()
			}

			if tc.callCmd {
				exec.EXPECT().CombinedOutput(
					context.Background(),
					tc.mockCmdName,
					append(tc.mockCmdArgs, tc.url),
				).Return(execCmd).Once()

				execCmd.EXPECT().CombinedOutput().Return(tc.mockCmdOutput, tc.mockCmdErr).Once()
			}

			browser := system.NewBrowser(exec, runtime)
			err := browser.OpenURL(context.Background(), tc.url)
			if tc.expectedErr != nil {
				assert.EqualError(t, err, tc.expectedErr.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
