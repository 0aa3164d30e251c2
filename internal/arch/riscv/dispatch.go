package riscv

// bucketCount is the size of the dispatch key space: the major opcode field
// for 32-bit and longer encodings, the two low bits for compressed ones.
// The two key spaces never collide since the low bits of a longer encoding
// are always 0b11.
const bucketCount = maskOp + 1

// dispatchIndex maps a dispatch key to the catalog position of the first
// eligible descriptor with that key. It is built once per decoder and
// immutable afterwards, making it safe for concurrent reads.
type dispatchIndex struct {
	catalog []*Opcode
	buckets [bucketCount]int // catalog index of the search entry point, -1 if empty
	subsets SubsetSet
}

// dispatchKey derives the bucket key from an instruction word.
func dispatchKey(word uint64) int {
	if instructionLength(word) == 2 {
		return int(word & 0x3)
	}
	return int(word & maskOp)
}

// newDispatchIndex builds the dispatch index for the catalog, restricted to
// descriptors whose subset requirement is satisfied. Only the first eligible
// descriptor per key is retained as the bucket's entry point; later
// descriptors with the same key are reached by scanning the catalog onwards
// from there, preserving declaration order.
func newDispatchIndex(catalog []*Opcode, subsets SubsetSet) *dispatchIndex {
	index := &dispatchIndex{
		catalog: catalog,
		subsets: subsets,
	}
	for i := range index.buckets {
		index.buckets[i] = -1
	}

	for i, opcode := range catalog {
		if !subsets.Supports(opcode.Subset) {
			continue
		}
		key := dispatchKey(opcode.Match)
		if index.buckets[key] < 0 {
			index.buckets[key] = i
		}
	}
	return index
}

// lookup returns the first catalog descriptor matching the word, honoring
// alias suppression and the active word width. It returns nil if no
// descriptor matches.
func (idx *dispatchIndex) lookup(word uint64, xlen int, noAliases bool) *Opcode {
	start := idx.buckets[dispatchKey(word)]
	if start < 0 {
		return nil
	}

	for _, opcode := range idx.catalog[start:] {
		if !idx.subsets.Supports(opcode.Subset) {
			continue
		}
		if !opcode.matches(word) {
			continue
		}
		if noAliases && opcode.Alias {
			continue
		}
		if width := xlenRequirement(opcode.Subset); width != 0 && width != xlen {
			continue
		}
		return opcode
	}
	return nil
}

// xlenRequirement returns the numeric word width constraint encoded in a
// subset requirement, or 0 if the requirement is width-independent.
func xlenRequirement(subset string) int {
	width := 0
	for i := 0; i < len(subset) && subset[i] >= '0' && subset[i] <= '9'; i++ {
		width = width*10 + int(subset[i]-'0')
	}
	return width
}
