// Package codec holds the CBOR encoding configuration shared by every
// arraymap type that implements cbor.Marshaler.
//
// The encoder uses Core Deterministic Encoding (RFC 8949 §4.2): smallest
// integer encoding, sorted map keys, no indefinite-length items. Equal tables
// always produce identical bytes.
package codec
