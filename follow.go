package memview

// Header word indexes for Go's runtime representations: a string header
// is {data, len} and a slice header is {data, len, cap}, one machine
// word each.
const (
	dataWord = 0
	lenWord  = 1
	capWord  = 2
)

// FollowInner treats the first machine word of the value as an address
// and copies n bytes starting there into an owned Snapshot.
//
// The caller must guarantee that the first word really is a non-null
// address and that n bytes at it are allocated and readable for the
// duration of the call. None of that is checked; only the size of the
// inspected type is validated, and a type smaller than one machine
// word is rejected with a SizeError. n == 0 returns an empty snapshot
// without dereferencing anything.
func (r Ref) FollowInner(n uintptr) (Snapshot, error) {
	return r.follow(1, func([]uintptr) uintptr { return n })
}

// FollowString follows a {data, len} header, the layout of a Go string.
// It copies len*elemSize bytes starting at data; elemSize is 1 for
// strings and byte views, larger for views of wider elements. Requires
// a type of at least two machine words.
func (r Ref) FollowString(elemSize uintptr) (Snapshot, error) {
	return r.follow(2, func(words []uintptr) uintptr { return words[lenWord] * elemSize })
}

// FollowSlice follows a {data, len, cap} header, the layout of a Go
// slice, and copies the initialized len*elemSize bytes starting at
// data. Requires a type of at least three machine words.
func (r Ref) FollowSlice(elemSize uintptr) (Snapshot, error) {
	return r.follow(3, func(words []uintptr) uintptr { return words[lenWord] * elemSize })
}

// FollowSliceFull is FollowSlice over the full allocation: it copies
// cap*elemSize bytes, so the tail beyond the initialized length holds
// whatever the spare capacity currently contains.
func (r Ref) FollowSliceFull(elemSize uintptr) (Snapshot, error) {
	return r.follow(3, func(words []uintptr) uintptr { return words[capWord] * elemSize })
}

// follow snapshots the value, decodes the first headerWords machine
// words out of that snapshot, and copies length(words) bytes starting
// at the address in word zero. The word decode operates on the copy,
// so the only raw memory access is the final readMemory.
func (r Ref) follow(headerWords int, length func(words []uintptr) uintptr) (Snapshot, error) {
	need := uintptr(headerWords) * wordSize
	if r.size < need {
		return Snapshot{}, &SizeError{Size: r.size, Need: need}
	}

	snap := r.Bytes()
	words := make([]uintptr, headerWords)
	for i := range words {
		w, err := snap.Word(i)
		if err != nil {
			return Snapshot{}, err
		}
		words[i] = w
	}

	return Snapshot{b: readMemory(words[dataWord], length(words))}, nil
}
