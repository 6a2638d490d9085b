package ece

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/ecdh"
	"encoding/binary"
	"fmt"
)

// Record is a parsed aes128gcm record header plus its ciphertext.
type Record struct {
	// Salt is the 16-byte per-message salt.
	Salt []byte
	// RecordSize is the declared record size from the header.
	RecordSize uint32
	// KeyID is the sender's one-time public key (uncompressed point).
	KeyID []byte
	// Ciphertext is the AES-GCM output including the trailing tag.
	Ciphertext []byte
}

// ParseRecord splits an aes128gcm record into its header fields and
// ciphertext.
func ParseRecord(record []byte) (*Record, error) {
	if len(record) < SaltSize+4+1 {
		return nil, fmt.Errorf("%w: %d bytes", ErrInvalidRecord, len(record))
	}

	salt := record[:SaltSize]
	recordSize := binary.BigEndian.Uint32(record[SaltSize : SaltSize+4])
	idLen := int(record[SaltSize+4])

	rest := record[SaltSize+4+1:]
	if len(rest) < idLen+TagSize {
		return nil, fmt.Errorf("%w: truncated key id or ciphertext", ErrInvalidRecord)
	}

	return &Record{
		Salt:       salt,
		RecordSize: recordSize,
		KeyID:      rest[:idLen],
		Ciphertext: rest[idLen:],
	}, nil
}

// Decrypt is the user agent side of the construction: it parses the record,
// redoes ECDH and HKDF with the subscriber's private key and auth secret,
// decrypts, and strips the padding.
func Decrypt(record []byte, subscriberKey *ecdh.PrivateKey, auth []byte) ([]byte, error) {
	parsed, err := ParseRecord(record)
	if err != nil {
		return nil, err
	}

	localPublicKey, err := ecdh.P256().NewPublicKey(parsed.KeyID)
	if err != nil {
		return nil, fmt.Errorf("%w: key id: %v", ErrInvalidRecord, err)
	}

	sharedSecret, err := subscriberKey.ECDH(localPublicKey)
	if err != nil {
		return nil, fmt.Errorf("ecdh: %w", err)
	}

	subscriberPublicKey := subscriberKey.PublicKey().Bytes()
	ikm, err := deriveKey(sharedSecret, auth, keyInfo(subscriberPublicKey, parsed.KeyID), ikmSize)
	if err != nil {
		return nil, fmt.Errorf("derive ikm: %w", err)
	}

	cek, err := deriveKey(ikm, parsed.Salt, cekInfo, KeySize)
	if err != nil {
		return nil, fmt.Errorf("derive cek: %w", err)
	}

	nonce, err := deriveKey(ikm, parsed.Salt, nonceInfo, NonceSize)
	if err != nil {
		return nil, fmt.Errorf("derive nonce: %w", err)
	}

	block, err := aes.NewCipher(cek)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create GCM: %w", err)
	}

	padded, err := gcm.Open(nil, nonce, parsed.Ciphertext, nil)
	if err != nil {
		return nil, ErrDecryptionFailed
	}

	return stripPadding(padded)
}

// stripPadding removes the padding delimiter and trailing zeros from a
// decrypted last record. The delimiter for a last record is 0x02, followed
// only by zero octets.
func stripPadding(padded []byte) ([]byte, error) {
	i := len(padded)
	for i > 0 && padded[i-1] == 0x00 {
		i--
	}
	if i == 0 || padded[i-1] != 0x02 {
		return nil, fmt.Errorf("%w: missing padding delimiter", ErrDecryptionFailed)
	}
	return bytes.Clone(padded[:i-1]), nil
}
