package ece

import (
	"crypto/sha256"
	"io"

	"golang.org/x/crypto/hkdf"
)

// deriveKey runs a single HKDF-SHA-256 extract-and-expand, reading length
// bytes of output.
func deriveKey(secret, salt, info []byte, length int) ([]byte, error) {
	reader := hkdf.New(sha256.New, secret, salt, info)
	key := make([]byte, length)

	if _, err := io.ReadFull(reader, key); err != nil {
		return nil, err
	}

	return key, nil
}

// keyInfo builds the IKM info string: "WebPush: info" || 0x00 ||
// subscriber public key || one-time public key, both as uncompressed points.
func keyInfo(subscriberPublicKey, localPublicKey []byte) []byte {
	info := make([]byte, 0, len(webPushInfo)+len(subscriberPublicKey)+len(localPublicKey))
	info = append(info, webPushInfo...)
	info = append(info, subscriberPublicKey...)
	info = append(info, localPublicKey...)
	return info
}
