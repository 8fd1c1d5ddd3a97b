package sanity

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.velt.ch/strap/internal/core/ports/mocks"
)

func TestCheck(t *testing.T) {
	t.Setenv("SUDO_USER", "")
	checker := NewChecker(mocks.NewMockLogger(gomock.NewController(t)))

	require.NoError(t, checker.Check(context.Background(), []string{"sh"}))
}

func TestCheckMissingCommand(t *testing.T) {
	t.Setenv("SUDO_USER", "")
	checker := NewChecker(mocks.NewMockLogger(gomock.NewController(t)))

	err := checker.Check(context.Background(), []string{"sh", "definitely-not-a-real-binary"})
	require.ErrorContains(t, err, "required command not found in PATH")
}

func TestCheckWarnsUnderSudo(t *testing.T) {
	t.Setenv("SUDO_USER", "alice")
	t.Setenv("USER", "root")

	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Warn(gomock.Any())

	checker := NewChecker(logger)
	require.NoError(t, checker.Check(context.Background(), nil))
}

func TestCheckNoWarningWhenUserMatches(t *testing.T) {
	t.Setenv("SUDO_USER", "alice")
	t.Setenv("USER", "alice")

	checker := NewChecker(mocks.NewMockLogger(gomock.NewController(t)))
	require.NoError(t, checker.Check(context.Background(), nil))
}

func TestMaybeHaveMemoizes(t *testing.T) {
	checker := NewChecker(mocks.NewMockLogger(gomock.NewController(t)))

	path, ok := checker.MaybeHave("sh")
	require.True(t, ok)
	require.NotEmpty(t, path)

	// Second lookup hits the cache even when PATH no longer resolves.
	t.Setenv("PATH", "")
	cached, ok := checker.MaybeHave("sh")
	assert.True(t, ok)
	assert.Equal(t, path, cached)

	_, ok = checker.MaybeHave("definitely-not-a-real-binary")
	assert.False(t, ok)
	_, ok = checker.MaybeHave("definitely-not-a-real-binary")
	assert.False(t, ok)
}
