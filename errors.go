// SPDX-License-Identifier: Apache-2.0

package objid

import "errors"

// Error variables returned by the registration and lookup calls. These
// implement the error interface and can be matched with errors.Is.

// ErrInvalidArgument is returned by Create when no identifier, short name
// or long name is supplied.
var ErrInvalidArgument = errors.New("no object identifier, short name or long name was supplied")

// ErrDuplicateName is returned by Create when the short or long name is
// already in use by another object.
var ErrDuplicateName = errors.New("the short or long name is already in use by another object")

// ErrDuplicateContent is returned by Create when the object identifier
// itself is already registered, under whatever names.
var ErrDuplicateContent = errors.New("the object identifier is already registered")

// ErrUnknownOid is returned by the lookup calls when no baseline or
// runtime-registered object matches. A miss is a normal outcome, not a
// registry failure.
var ErrUnknownOid = errors.New("unknown object identifier")

// ErrMalformedOid is returned when dotted-decimal text cannot be parsed
// into content octets.
var ErrMalformedOid = errors.New("malformed object identifier")

// ErrOversizeOid is returned when an identifier would exceed 586 content
// octets, the RFC 2578 structural bound of 128 sub-identifiers of 32 bits
// each. It is distinct from ErrMalformedOid: the text itself is
// well-formed, just too large to be a legitimate OID.
var ErrOversizeOid = errors.New("object identifier exceeds the RFC 2578 size bound")
