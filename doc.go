// SPDX-License-Identifier: Apache-2.0

// Package objid implements the object-identifier registry used by the
// golang-auth libraries to name algorithms, extensions and data types.
//
// Every known object identifier is interned under a small integer handle,
// the NID. A compiled-in baseline table supplies the well known OIDs;
// additional objects can be registered at runtime with Create or AddObject
// and are then resolvable through the same lookup calls as the baseline
// set. Objects can be resolved by NID, by short or long name, by their DER
// content octets, or by dotted-decimal text.
//
// The package-level functions operate on a process-wide default registry
// obtained from Default. Independent Registry values can be created with
// NewRegistry, for instance to keep test registrations isolated.
package objid
