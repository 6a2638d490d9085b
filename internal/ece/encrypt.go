package ece

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/ecdh"
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

// encryptionContext holds the material for exactly one encryption: the
// one-time key pair, the message salt, and the derived key and nonce.
// It is created inside Encrypt and discarded with it; neither the key pair
// nor the salt can be injected, so reuse across messages is impossible.
type encryptionContext struct {
	localPublicKey []byte
	salt           []byte
	cek            []byte
	nonce          []byte
}

// newEncryptionContext generates a one-time P-256 key pair and salt, runs
// ECDH against the subscriber's public key, and derives the content
// encryption key and nonce per RFC 8291 section 3.
func newEncryptionContext(keys *SubscriberKeys) (*encryptionContext, error) {
	localKey, err := ecdh.P256().GenerateKey(randReader)
	if err != nil {
		return nil, fmt.Errorf("generate one-time key: %w", err)
	}
	localPublicKey := localKey.PublicKey().Bytes()

	salt := make([]byte, SaltSize)
	if _, err := io.ReadFull(randReader, salt); err != nil {
		return nil, fmt.Errorf("generate salt: %w", err)
	}

	sharedSecret, err := localKey.ECDH(keys.PublicKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPublicKey, err)
	}

	ikm, err := deriveKey(sharedSecret, keys.Auth, keyInfo(keys.PublicKey.Bytes(), localPublicKey), ikmSize)
	if err != nil {
		return nil, fmt.Errorf("derive ikm: %w", err)
	}

	cek, err := deriveKey(ikm, salt, cekInfo, KeySize)
	if err != nil {
		return nil, fmt.Errorf("derive cek: %w", err)
	}

	nonce, err := deriveKey(ikm, salt, nonceInfo, NonceSize)
	if err != nil {
		return nil, fmt.Errorf("derive nonce: %w", err)
	}

	return &encryptionContext{
		localPublicKey: localPublicKey,
		salt:           salt,
		cek:            cek,
		nonce:          nonce,
	}, nil
}

// Encrypt encrypts plaintext for the subscriber into a single aes128gcm
// record of the given record size. A fresh one-time key pair and salt are
// generated on every call, so two encryptions of the same plaintext never
// produce the same record.
//
// recordSize bounds the whole record including header, delimiter and tag;
// plaintext longer than recordSize - Overhead returns ErrPayloadTooLarge.
// A recordSize of 0 selects DefaultRecordSize.
func Encrypt(plaintext []byte, keys *SubscriberKeys, recordSize int) ([]byte, error) {
	if recordSize == 0 {
		recordSize = DefaultRecordSize
	}
	if recordSize < Overhead {
		return nil, fmt.Errorf("%w: record size %d below minimum %d", ErrPayloadTooLarge, recordSize, Overhead)
	}
	if int64(recordSize) > math.MaxUint32 {
		return nil, fmt.Errorf("%w: %d does not fit the 32-bit header field", ErrInvalidRecordSize, recordSize)
	}

	if len(plaintext) > recordSize-Overhead {
		return nil, fmt.Errorf("%w: %d bytes, limit %d for record size %d",
			ErrPayloadTooLarge, len(plaintext), recordSize-Overhead, recordSize)
	}

	ctx, err := newEncryptionContext(keys)
	if err != nil {
		return nil, err
	}

	block, err := aes.NewCipher(ctx.cek)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create GCM: %w", err)
	}

	// Last (and only) record: plaintext followed by the 0x02 delimiter.
	padded := make([]byte, 0, len(plaintext)+1)
	padded = append(padded, plaintext...)
	padded = append(padded, 0x02)

	record := make([]byte, 0, HeaderSize+len(padded)+TagSize)
	record = append(record, ctx.salt...)
	record = binary.BigEndian.AppendUint32(record, uint32(recordSize))
	record = append(record, byte(len(ctx.localPublicKey)))
	record = append(record, ctx.localPublicKey...)
	record = gcm.Seal(record, ctx.nonce, padded, nil)

	return record, nil
}
