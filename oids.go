// SPDX-License-Identifier: Apache-2.0

package objid

// Oid represents an Object Identifier as used throughout the golang-auth
// libraries. Elements of the byte slice represent the DER encoding of the
// object identifier, excluding the ASN.1 header (two bytes: tag value 0x06
// and length). The empty or nil Oid value does not have any special meaning.
type Oid []byte

// NidUndef is the NID of the undefined object. It is returned by the
// name-to-NID lookups when no object matches, and is never assigned to a
// registered object.
const NidUndef = 0

// Object ties an object identifier to its interned NID and its optional
// short and long names. Objects obtained from the baseline table are shared
// and must not be modified; objects returned by the runtime registry remain
// valid until Registry.Cleanup.
//
// A usable Object carries at least one of a non-empty Oid, SN or LN. The
// zero Nid means the object has not been (or is no longer) registered.
type Object struct {
	Nid int
	SN  string // short name, e.g. "SHA256"
	LN  string // long name, e.g. "sha256WithRSAEncryption"
	Oid Oid    // DER content octets, no tag/length header
}

// Name returns the long name of the object, falling back to the short name
// when no long name is registered.
func (o *Object) Name() string {
	if o.LN != "" {
		return o.LN
	}

	return o.SN
}

// String returns the long or short name when the object resolves in the
// default registry, and the dotted-decimal form otherwise. An object with
// no content octets and no name renders as the empty string.
func (o *Object) String() string {
	n := Default().TextFromObject(nil, o, false)
	if n <= 0 {
		return ""
	}

	buf := make([]byte, n+1)
	Default().TextFromObject(buf, o, false)

	return string(buf[:n])
}

// DotString returns the dotted-decimal form of the object's identifier,
// never a registered name. It returns "" for an object without content
// octets or with a malformed encoding.
func (o *Object) DotString() string {
	n := oidToText(nil, o.Oid)
	if n <= 0 {
		return ""
	}

	buf := make([]byte, n+1)
	oidToText(buf, o.Oid)

	return string(buf[:n])
}

// clone returns a deep copy of the object with independent storage for the
// content octets and both names, so registered objects never alias
// caller-owned memory.
func (o *Object) clone() *Object {
	dup := &Object{
		Nid: o.Nid,
		SN:  cloneString(o.SN),
		LN:  cloneString(o.LN),
	}
	if len(o.Oid) > 0 {
		dup.Oid = append(Oid(nil), o.Oid...)
	}

	return dup
}

func cloneString(s string) string {
	if s == "" {
		return ""
	}

	return string(append([]byte(nil), s...))
}
