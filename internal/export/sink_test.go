package export

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirSinkWritesFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "exports")
	sink := DirSink{Dir: dir}

	err := sink.Save([]byte("a,b\n1,2\n"), "report.csv", "text/csv")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "report.csv"))
	require.NoError(t, err)
	assert.Equal(t, "a,b\n1,2\n", string(data))
}

func TestWriterSink(t *testing.T) {
	var buf bytes.Buffer
	sink := WriterSink{W: &buf}

	err := sink.Save([]byte("payload"), "ignored.json", "application/json")
	require.NoError(t, err)
	assert.Equal(t, "payload", buf.String())
}
