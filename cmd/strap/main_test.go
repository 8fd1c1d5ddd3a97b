package main

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRunHelp(t *testing.T) {
	originalArgs := os.Args
	defer func() { os.Args = originalArgs }()

	os.Args = []string{"strap", "--help"}
	require.Equal(t, 0, run())
}

func TestRunUnknownCommand(t *testing.T) {
	originalArgs := os.Args
	defer func() { os.Args = originalArgs }()

	os.Args = []string{"strap", "frobnicate"}
	require.Equal(t, 1, run())
}
