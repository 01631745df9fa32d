// Package canonical produces RFC 8785 canonical JSON and the domain-separated
// SHA-256 identities derived from it.
//
// Canonical bytes are used wherever two encodings of the same value must be
// byte-identical: preset library IDs and golden scenario traces.
//
// Rules:
//   - Object keys sorted by UTF-16 code units
//   - No insignificant whitespace
//   - Strings NFC-normalized; only quote, backslash and control characters
//     are escaped (no HTML escaping, U+2028/U+2029 emitted literally)
//   - Integers only: floats and null are rejected
package canonical
