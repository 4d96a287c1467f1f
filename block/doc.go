// Package block defines the Block record shared by every placement and
// cost-evaluation component: identity, geometry, soft-block aspect-ratio
// range, power density, and the placement flags layout generation mutates.
//
// The four block kinds described by the specification (regular block, pin,
// TSV island, reference-block-on-die) collapse into one tagged Block
// struct with a Kind discriminant, per the "deep class hierarchy ->
// tagged variant" design note: there is no Block/Pin/TSVGroup/RBOD
// inheritance chain, only one struct whose per-kind fields are simply
// zero-valued when not applicable.
//
// Blocks live in a single owning Set; every other package refers to a
// block by its ID (arena index), never by pointer, so CBL triples, nets,
// and alignment requests can be copied, hashed, and compared cheaply.
package block
