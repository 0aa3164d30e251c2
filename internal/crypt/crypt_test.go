package crypt

import (
	"bytes"
	"strings"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

const testDescriptors = `
# boot components
component boot.bin key 000102030405060708090a0b0c0d0e0f iv 101112131415161718191a1b1c1d1e1f

component app.bin key ffeeddccbbaa99887766554433221100 iv 000102030405060708090a0b0c0d0e0f # inline comment
`

func TestParseDescriptors(t *testing.T) {
	descriptors, err := ParseDescriptors("test", strings.NewReader(testDescriptors))
	assert.NoError(t, err)
	assert.Equal(t, 2, len(descriptors))

	assert.Equal(t, "boot.bin", descriptors[0].Component)
	assert.Equal(t, 16, len(descriptors[0].Key))
	assert.Equal(t, 16, len(descriptors[0].IV))
	assert.Equal(t, byte(0x00), descriptors[0].Key[0])
	assert.Equal(t, byte(0x1f), descriptors[0].IV[15])

	assert.Equal(t, "app.bin", descriptors[1].Component)
	assert.Equal(t, byte(0xff), descriptors[1].Key[0])
}

func TestParseDescriptorsErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{
			name:  "missing iv",
			input: "component a key 00",
		},
		{
			name:  "wrong keyword",
			input: "part a key 00 iv 00",
		},
		{
			name:  "invalid key hex",
			input: "component a key zz iv 00",
		},
		{
			name:  "invalid iv hex",
			input: "component a key 00 iv zz",
		},
		{
			name:  "invalid character",
			input: "component a key 00 iv 00 @",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseDescriptors("test", strings.NewReader(tt.input))
			assert.Error(t, err)
		})
	}
}

func TestFind(t *testing.T) {
	descriptors, err := ParseDescriptors("test", strings.NewReader(testDescriptors))
	assert.NoError(t, err)

	d, ok := Find(descriptors, "app.bin")
	assert.True(t, ok)
	assert.Equal(t, "app.bin", d.Component)

	_, ok = Find(descriptors, "missing.bin")
	assert.False(t, ok)
}

func TestTransformRoundtrip(t *testing.T) {
	d := Descriptor{
		Component: "test",
		Key:       bytes.Repeat([]byte{0x42}, 16),
		IV:        bytes.Repeat([]byte{0x24}, 16),
	}

	plain := []byte("raw machine code payload")
	data := append([]byte(nil), plain...)

	assert.NoError(t, d.Transform(data))
	assert.False(t, bytes.Equal(plain, data))

	assert.NoError(t, d.Transform(data))
	assert.Equal(t, plain, data)
}

func TestTransformBadKeyMaterial(t *testing.T) {
	d := Descriptor{Component: "test", Key: []byte{1, 2, 3}, IV: make([]byte, 16)}
	assert.Error(t, d.Transform(nil))

	d = Descriptor{Component: "test", Key: make([]byte, 16), IV: []byte{1}}
	assert.Error(t, d.Transform(nil))
}
