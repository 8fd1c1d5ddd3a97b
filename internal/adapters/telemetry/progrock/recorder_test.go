package progrock

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vito/progrock"
)

func TestRecordAndComplete(t *testing.T) {
	rec := NewRecorder(progrock.NewTape())

	_, v := rec.Record(context.Background(), "build/std")
	_, err := v.Stdout().Write([]byte("compiling core\n"))
	require.NoError(t, err)
	v.Complete(nil)

	_, v = rec.Record(context.Background(), "test/std")
	v.Cached()
	v.Complete(nil)

	require.NoError(t, rec.Close())
}
