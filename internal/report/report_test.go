package report

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/memview/internal/sample"
)

func TestNewReportForIndirectValue(t *testing.T) {
	s := sample.Sample{Name: "buf", Kind: sample.KindBytes, Bytes: []int{1, 2, 3, 4}}
	v, err := s.Build()
	require.NoError(t, err)

	r := New(v)

	assert.NotEqual(t, uuid.Nil, r.ID)
	assert.False(t, r.CreatedAt.IsZero())
	assert.Equal(t, "buf", r.Target)
	assert.Equal(t, "bytes", r.Kind)
	assert.Equal(t, v.Header.Len(), r.HeaderLen)
	assert.Contains(t, r.HeaderDump, "word[0]")
	assert.Equal(t, 4, r.DataLen)
	assert.Contains(t, r.DataDump, "01 02 03 04")
	assert.Zero(t, r.AllocLen)
	assert.Empty(t, r.AllocDump)
}

func TestNewReportWithSpareCapacity(t *testing.T) {
	s := sample.Sample{Name: "buf", Kind: sample.KindBytes, Bytes: []int{1, 2, 3, 4}, Capacity: 8}
	v, err := s.Build()
	require.NoError(t, err)

	r := New(v)

	assert.Equal(t, 4, r.DataLen)
	assert.Equal(t, 8, r.AllocLen)
	assert.Contains(t, r.AllocDump, "01 02 03 04")
}

func TestNewReportForFlatValue(t *testing.T) {
	s := sample.Sample{Name: "ns", Kind: sample.KindUUID, UUID: "6ba7b810-9dad-11d1-80b4-00c04fd430c8"}
	v, err := s.Build()
	require.NoError(t, err)

	r := New(v)

	assert.Equal(t, 16, r.HeaderLen)
	assert.Zero(t, r.DataLen)
	assert.Empty(t, r.DataDump)
}
