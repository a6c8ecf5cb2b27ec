// Package types defines the decoded representation of a Windows shell link
// (".lnk") file and the typed errors produced while decoding one.
//
// The model mirrors the on-disk layout: a fixed header contributes the flag
// set and icon index, then optional blocks follow (target ID list, link
// info, string data). Byte-slice fields that describe on-disk structures are
// views into the caller's buffer and must not be modified; the string-data
// fields (LinkString) are independent copies.
//
// Design goals:
//   - Presence is a fact read from the file, never inferred from content.
//   - Mutually exclusive encodings are modelled so only one can be populated.
//   - Typed errors with stable categories (truncated/header/offset/malformed).
//
// This package has no dependencies beyond the standard library.
package types
