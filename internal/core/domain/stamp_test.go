package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStampRoundTrip(t *testing.T) {
	entries := []StampEntry{
		{Path: "a/b", Type: DepHost},
		{Path: "c/d", Type: DepTarget},
		{Path: "e/f", Type: DepTargetSelfContained},
	}

	data := EncodeStampEntries(entries)
	require.Equal(t, []byte("ha/b\x00tc/d\x00se/f"), data)

	got, err := DecodeStampEntries(data)
	require.NoError(t, err)
	require.Equal(t, entries, got)
}

func TestDecodeStampSkipsEmptyRecords(t *testing.T) {
	got, err := DecodeStampEntries([]byte("\x00ha/b\x00\x00tc/d\x00"))
	require.NoError(t, err)
	require.Equal(t, []StampEntry{
		{Path: "a/b", Type: DepHost},
		{Path: "c/d", Type: DepTarget},
	}, got)
}

func TestDecodeStampRejectsUnknownTag(t *testing.T) {
	_, err := DecodeStampEntries([]byte("ha/b\x00xc/d"))
	require.ErrorIs(t, err, ErrUnknownDependencyTag)
}

func TestDecodeStampEmptyInput(t *testing.T) {
	got, err := DecodeStampEntries(nil)
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestDependencyTagBytes(t *testing.T) {
	for _, dep := range []DependencyType{DepHost, DepTarget, DepTargetSelfContained} {
		parsed, err := ParseDependencyTag(dep.TagByte())
		require.NoError(t, err)
		require.Equal(t, dep, parsed)
	}
}
