package sample

import (
	"fmt"
	"runtime"

	"github.com/google/uuid"

	"github.com/roach88/memview"
)

// Kind enumerates the value shapes the catalog can build.
type Kind string

const (
	// KindString builds a Go string; its header is {data, len}.
	KindString Kind = "string"

	// KindBytes builds a []byte, optionally with spare capacity; its
	// header is {data, len, cap}.
	KindBytes Kind = "bytes"

	// KindInts builds an []int32 to demonstrate element-size scaling.
	KindInts Kind = "ints"

	// KindStruct builds an Envelope, a padded struct with no
	// indirection; its raw bytes show interior padding as laid out.
	KindStruct Kind = "struct"

	// KindUUID builds a uuid.UUID, a flat 16-byte array with no
	// indirection to follow.
	KindUUID Kind = "uuid"
)

// Envelope is the value shape behind struct samples. The uint64 after
// a single byte forces interior padding on every platform that aligns
// 64-bit fields, so a snapshot of it includes padding bytes.
type Envelope struct {
	Tag   uint8
	Count uint64
}

// int32Size is the element size passed to FollowSlice for KindInts.
const int32Size = 4

// Sample describes one value to build and inspect.
type Sample struct {
	Name     string  `yaml:"name" json:"name"`
	Kind     Kind    `yaml:"kind" json:"kind"`
	Text     string  `yaml:"text,omitempty" json:"text,omitempty"`
	Bytes    []int   `yaml:"bytes,omitempty" json:"bytes,omitempty"`
	Ints     []int32 `yaml:"ints,omitempty" json:"ints,omitempty"`
	UUID     string  `yaml:"uuid,omitempty" json:"uuid,omitempty"`
	Tag      int     `yaml:"tag,omitempty" json:"tag,omitempty"`
	Count    int     `yaml:"count,omitempty" json:"count,omitempty"`
	Capacity int     `yaml:"capacity,omitempty" json:"capacity,omitempty"`
}

// File is a parsed samples catalog.
type File struct {
	Samples []Sample `yaml:"samples" json:"samples"`
}

// Value is a materialized sample together with its snapshots.
type Value struct {
	Name string
	Kind Kind

	// Header is the raw bytes of the value itself.
	Header memview.Snapshot

	// Data is the backing storage reached through the header. Empty
	// when Indirect is false.
	Data memview.Snapshot

	// Alloc is the full allocation including spare capacity. Only set
	// for KindBytes samples built with capacity beyond their length.
	Alloc memview.Snapshot

	// Indirect reports whether the kind has an inner reference.
	Indirect bool
}

// Build materializes the sample value and inspects it. The header
// snapshot is always taken; kinds with an inner reference also follow
// it to snapshot the backing data.
func (s *Sample) Build() (*Value, error) {
	v := &Value{Name: s.Name, Kind: s.Kind}

	switch s.Kind {
	case KindString:
		text := s.Text
		ref := memview.Of(&text)
		v.Header = ref.Bytes()
		data, err := ref.FollowString(1)
		if err != nil {
			return nil, fmt.Errorf("build sample %q: %w", s.Name, err)
		}
		v.Data = data
		v.Indirect = true
		runtime.KeepAlive(text)

	case KindBytes:
		b := make([]byte, 0, max(s.Capacity, len(s.Bytes)))
		for _, n := range s.Bytes {
			b = append(b, byte(n))
		}
		ref := memview.Of(&b)
		v.Header = ref.Bytes()
		data, err := ref.FollowSlice(1)
		if err != nil {
			return nil, fmt.Errorf("build sample %q: %w", s.Name, err)
		}
		v.Data = data
		v.Indirect = true
		if cap(b) > len(b) {
			alloc, err := ref.FollowSliceFull(1)
			if err != nil {
				return nil, fmt.Errorf("build sample %q: %w", s.Name, err)
			}
			v.Alloc = alloc
		}
		runtime.KeepAlive(b)

	case KindInts:
		xs := make([]int32, len(s.Ints))
		copy(xs, s.Ints)
		ref := memview.Of(&xs)
		v.Header = ref.Bytes()
		data, err := ref.FollowSlice(int32Size)
		if err != nil {
			return nil, fmt.Errorf("build sample %q: %w", s.Name, err)
		}
		v.Data = data
		v.Indirect = true
		runtime.KeepAlive(xs)

	case KindStruct:
		env := Envelope{Tag: uint8(s.Tag), Count: uint64(s.Count)}
		v.Header = memview.Of(&env).Bytes()

	case KindUUID:
		id, err := s.buildUUID()
		if err != nil {
			return nil, err
		}
		v.Header = memview.Of(&id).Bytes()

	default:
		return nil, &ValidationError{
			Field:   "kind",
			Message: fmt.Sprintf("sample %q: unknown kind %q", s.Name, s.Kind),
		}
	}

	return v, nil
}

func (s *Sample) buildUUID() (uuid.UUID, error) {
	if s.UUID == "" {
		return uuid.New(), nil
	}
	id, err := uuid.Parse(s.UUID)
	if err != nil {
		return uuid.UUID{}, fmt.Errorf("build sample %q: %w", s.Name, err)
	}
	return id, nil
}

// BuildAll materializes every sample in the file, failing on the first
// sample that cannot be built.
func (f *File) BuildAll() ([]*Value, error) {
	values := make([]*Value, 0, len(f.Samples))
	for i := range f.Samples {
		v, err := f.Samples[i].Build()
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, nil
}
