// Package ece implements the aes128gcm encrypted content encoding used by
// Web Push message encryption (RFC 8188, profiled by RFC 8291).
//
// # Construction
//
// Each message is encrypted with a fresh, single-use P-256 key pair and a
// fresh 16-byte salt. The sending side performs:
//
//  1. ECDH between the one-time private key and the subscriber's p256dh
//     public key, producing a shared secret.
//
//  2. HKDF-SHA-256 with the subscriber's auth secret as salt and
//     "WebPush: info" || 0x00 || ua_public || as_public as info, extracting
//     a 32-byte input keying material (IKM).
//
//  3. HKDF-SHA-256 expansions of the IKM keyed by the message salt:
//     "Content-Encoding: aes128gcm" || 0x00 for the 16-byte content
//     encryption key, and "Content-Encoding: nonce" || 0x00 for the
//     12-byte nonce.
//
//  4. AES-128-GCM over the plaintext followed by a 0x02 padding delimiter.
//
// The output record is:
//
//	salt (16) || record size (4, big endian) || key id length (1) ||
//	one-time public key (65, uncompressed point) || ciphertext || tag (16)
//
// Only the single-record form is produced: one push message per record.
//
// # Security Notes
//
// The one-time key pair and salt are generated inside [Encrypt] and cannot
// be supplied by the caller. Reusing either across two messages would reuse
// the derived key/nonce pair and break AES-GCM confidentiality, so freshness
// is enforced structurally rather than by convention.
//
// [Decrypt] implements the receiving (user agent) side of the same
// construction. It exists so the encoding can be verified end to end without
// a browser; an application server never needs it to send.
package ece
