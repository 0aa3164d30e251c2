package crypt

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"
)

// Transform applies the component's AES-CTR keystream to data in place.
// CTR mode is symmetric, encrypting and decrypting are the same operation.
func (d Descriptor) Transform(data []byte) error {
	block, err := aes.NewCipher(d.Key)
	if err != nil {
		return fmt.Errorf("component %s: creating cipher: %w", d.Component, err)
	}
	if len(d.IV) != block.BlockSize() {
		return fmt.Errorf("component %s: iv size %d, want %d",
			d.Component, len(d.IV), block.BlockSize())
	}

	cipher.NewCTR(block, d.IV).XORKeyStream(data, data)
	return nil
}

// Find returns the descriptor for the named component.
func Find(descriptors []Descriptor, component string) (Descriptor, bool) {
	for _, d := range descriptors {
		if d.Component == component {
			return d, true
		}
	}
	return Descriptor{}, false
}
