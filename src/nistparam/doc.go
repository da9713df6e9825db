// Package nistparam turns hex parameters, as printed in NIST documents, into
// byte-array initializer fragments.
//
// NIST prints multi-byte parameters most-significant byte first, grouped with
// spaces and wrapped over several lines. Implementations that store the same
// values least-significant byte first need the bytes reversed. ParseParam does
// that and renders every byte as a C style literal:
//
//  ParseParam("AB CD\nEF") // "0xef, 0xcd, 0xab,"
//
// Only spaces and newlines are accepted as separators. Any other character, or
// an odd number of hex digits, is rejected with a common.InvalidInputErr.
package nistparam
