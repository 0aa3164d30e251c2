package riscv

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestContextHiLoReconstruction(t *testing.T) {
	ctx := NewContext(0, false)
	ctx.hiAddr[5] = knownAddr{value: 0x10000, known: true}

	ctx.maybePrintAddress(5, 0x20)
	assert.True(t, ctx.printAddr.known)
	assert.Equal(t, uint64(0x10020), ctx.printAddr.value)

	// the cache slot is consumed by the first use
	ctx.printAddr = knownAddr{}
	ctx.maybePrintAddress(5, 0x24)
	assert.False(t, ctx.printAddr.known)
}

func TestContextAbsoluteBases(t *testing.T) {
	ctx := NewContext(0, false)

	ctx.maybePrintAddress(0, 0x20)
	assert.True(t, ctx.printAddr.known)
	assert.Equal(t, uint64(0x20), ctx.printAddr.value)

	ctx.printAddr = knownAddr{}
	ctx.maybePrintAddress(regTP, 0x40)
	assert.True(t, ctx.printAddr.known, "thread pointer base behaves like x0")
	assert.Equal(t, uint64(0x40), ctx.printAddr.value)
}

func TestContextGlobalPointer(t *testing.T) {
	ctx := NewContext(0x11000, true)

	ctx.maybePrintAddress(regGP, 0x10)
	assert.True(t, ctx.printAddr.known)
	assert.Equal(t, uint64(0x11010), ctx.printAddr.value)

	// gp is never consumed
	ctx.printAddr = knownAddr{}
	ctx.maybePrintAddress(regGP, 0x20)
	assert.True(t, ctx.printAddr.known)
	assert.Equal(t, uint64(0x11020), ctx.printAddr.value)

	unknown := NewContext(0, false)
	unknown.maybePrintAddress(regGP, 0x10)
	assert.False(t, unknown.printAddr.known)
}

func TestContextReset(t *testing.T) {
	ctx := NewContext(0x11000, true)
	ctx.hiAddr[7] = knownAddr{value: 0x2000, known: true}
	ctx.printAddr = knownAddr{value: 0x2024, known: true}

	ctx.Reset()

	assert.False(t, ctx.hiAddr[7].known)
	assert.False(t, ctx.printAddr.known)
	assert.True(t, ctx.gp.known, "reset keeps the global pointer")
}

func TestContextNegativeOffset(t *testing.T) {
	ctx := NewContext(0, false)
	ctx.hiAddr[5] = knownAddr{value: 0x10000, known: true}

	ctx.maybePrintAddress(5, -16)
	assert.True(t, ctx.printAddr.known)
	assert.Equal(t, uint64(0xfff0), ctx.printAddr.value)
}
