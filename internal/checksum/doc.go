// Package checksum implements order-independent content checksums.
//
// A Checksum is the XOR of SHA-256 digests. XOR is commutative and
// associative with the zero value as identity, so the accumulated value does
// not depend on the order in which concurrent workers contribute digests.
//
// BATCH-THEN-MERGE:
// Workers fold digests into a local Checksum with Merge and then call
// Accumulator.MergeInto once per batch. The accumulator lock is held for a
// single 32-byte XOR regardless of batch size.
package checksum
