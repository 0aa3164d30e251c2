package riscv

// knownAddr is an address value paired with a validity flag. The zero value
// means "unknown", avoiding an in-band sentinel in the address space.
type knownAddr struct {
	value uint64
	known bool
}

// Context carries the per-pass state used to reconstruct full addresses from
// split hi/lo instruction pairs. A fresh context is used for each linear
// sweep over a section; decoding the same bytes with a shared context from
// multiple goroutines is not supported.
type Context struct {
	// hiAddr records the upper address part set by lui/auipc per register.
	// Each entry is consumed by the first matching lo-part instruction.
	hiAddr [32]knownAddr

	// gp is the value of the global pointer register, when known from the
	// symbol table. Unlike hiAddr entries it is never consumed.
	gp knownAddr

	// printAddr is the address reconstructed while rendering the current
	// instruction, appended as a comment once rendering finishes.
	printAddr knownAddr
}

// NewContext returns a decoding context with an optional global pointer
// value. Pass gpKnown false when the symbol table has no global pointer.
func NewContext(gp uint64, gpKnown bool) *Context {
	ctx := &Context{}
	ctx.gp = knownAddr{value: gp, known: gpKnown}
	return ctx
}

// Reset clears all cached hi parts and any pending address, keeping the
// global pointer. Use it when restarting a sweep at a new location.
func (ctx *Context) Reset() {
	ctx.hiAddr = [32]knownAddr{}
	ctx.printAddr = knownAddr{}
}

// maybePrintAddress tries to reconstruct a full address for a lo-part
// instruction addressing memory relative to baseReg. On success the address
// is stored for the renderer to append as a comment.
func (ctx *Context) maybePrintAddress(baseReg int, offset int64) {
	switch {
	case baseReg == 0 || baseReg == regTP:
		// Absolute addressing: the base contributes nothing (x0) or is
		// thread-local and unknowable, so print the offset as-is.
		ctx.printAddr = knownAddr{value: uint64(offset), known: true}

	case ctx.hiAddr[baseReg].known:
		ctx.printAddr = knownAddr{
			value: ctx.hiAddr[baseReg].value + uint64(offset),
			known: true,
		}
		// Single use: a second lo part against the same register would
		// usually belong to a different hi part we did not see.
		ctx.hiAddr[baseReg] = knownAddr{}

	case baseReg == regGP && ctx.gp.known:
		ctx.printAddr = knownAddr{value: ctx.gp.value + uint64(offset), known: true}
	}
}
