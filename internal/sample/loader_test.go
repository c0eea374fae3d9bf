package sample

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validCatalog = `
samples:
  - name: greeting
    kind: string
    text: "Hello, world!"
  - name: buf
    kind: bytes
    bytes: [1, 2, 3, 4]
    capacity: 8
  - name: primes
    kind: ints
    ints: [2, 3, 5, 7]
  - name: envelope
    kind: struct
    tag: 7
    count: 4
  - name: namespace-dns
    kind: uuid
    uuid: 6ba7b810-9dad-11d1-80b4-00c04fd430c8
`

func TestParseValidCatalog(t *testing.T) {
	f, err := Parse([]byte(validCatalog))

	require.NoError(t, err)
	require.Len(t, f.Samples, 5)
	assert.Equal(t, "greeting", f.Samples[0].Name)
	assert.Equal(t, KindString, f.Samples[0].Kind)
	assert.Equal(t, []int{1, 2, 3, 4}, f.Samples[1].Bytes)
	assert.Equal(t, 8, f.Samples[1].Capacity)
	assert.Equal(t, []int32{2, 3, 5, 7}, f.Samples[2].Ints)
	assert.Equal(t, KindStruct, f.Samples[3].Kind)
	assert.Equal(t, 7, f.Samples[3].Tag)
	assert.Equal(t, 4, f.Samples[3].Count)
}

func TestLoadFromDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "samples.yaml")
	require.NoError(t, os.WriteFile(path, []byte(validCatalog), 0o644))

	f, err := Load(path)

	require.NoError(t, err)
	assert.Len(t, f.Samples, 5)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "read samples file")
}

func TestParseRejectsUnknownKind(t *testing.T) {
	_, err := Parse([]byte(`
samples:
  - name: bogus
    kind: pointer
`))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "kind")
}

func TestParseRejectsMissingName(t *testing.T) {
	_, err := Parse([]byte(`
samples:
  - kind: string
    text: hi
`))

	require.Error(t, err)
}

func TestParseRejectsByteOutOfRange(t *testing.T) {
	_, err := Parse([]byte(`
samples:
  - name: wide
    kind: bytes
    bytes: [1, 300]
`))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "bytes")
}

func TestParseRejectsUnknownField(t *testing.T) {
	_, err := Parse([]byte(`
samples:
  - name: extra
    kind: string
    text: hi
    color: red
`))

	require.Error(t, err)
}

func TestParseRejectsEmptyCatalog(t *testing.T) {
	_, err := Parse([]byte("samples: []\n"))
	require.Error(t, err)

	_, err = Parse([]byte(""))
	require.Error(t, err)
}

func TestParseNormalizesNames(t *testing.T) {
	// "cafe" + combining acute accent; NFC folds it to the composed form.
	f, err := Parse([]byte("samples:\n  - name: \"cafe\\u0301\"\n    kind: string\n    text: x\n"))

	require.NoError(t, err)
	require.Len(t, f.Samples, 1)
	assert.Equal(t, "café", f.Samples[0].Name)
}
