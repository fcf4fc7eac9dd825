package browser

import (
	"context"
	"errors"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/orgopen/internal/core/domain"
)

const testURL = "https://acme.my.salesforce.com/lightning/setup/Flows/page?address=%2F300"

func TestCommand(t *testing.T) {
	tests := []struct {
		goos     string
		wantName string
		wantArgs []string
	}{
		{"darwin", "open", []string{testURL}},
		{"linux", "xdg-open", []string{testURL}},
		{"freebsd", "xdg-open", []string{testURL}},
		{"windows", "cmd", []string{"/c", "start", "", testURL}},
	}

	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			name, args, err := command(tt.goos, testURL)
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, name)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestCommand_Unsupported(t *testing.T) {
	_, _, err := command("plan9", testURL)
	assert.Error(t, err)
}

func TestSystem_Open(t *testing.T) {
	var started *exec.Cmd
	s := &System{goos: "darwin", start: func(cmd *exec.Cmd) error {
		started = cmd
		return errors.New("not started")
	}}

	err := s.Open(context.Background(), testURL)

	assert.ErrorIs(t, err, domain.ErrBrowser)
	require.NotNil(t, started)
	assert.Equal(t, []string{"open", testURL}, started.Args)
}

func TestSystem_Open_UnsupportedPlatform(t *testing.T) {
	s := &System{goos: "plan9", start: func(*exec.Cmd) error {
		t.Fatal("command should not start")
		return nil
	}}

	err := s.Open(context.Background(), testURL)
	assert.ErrorIs(t, err, domain.ErrBrowser)
}
