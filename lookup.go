// SPDX-License-Identifier: Apache-2.0

package objid

// Lookups consult the baseline tables first, without taking any lock, and
// fall back to the runtime registry only when the compiled-in set misses.

// ObjectFromNid returns the object interned under nid. NidUndef resolves to
// the baseline undefined object; any other NID that is neither compiled in
// nor registered at runtime yields ErrUnknownOid.
//
// Baseline objects are shared and immutable. Objects from the runtime
// registry remain valid until Cleanup.
func (r *Registry) ObjectFromNid(nid int) (*Object, error) {
	if o := baselineFromNid(nid); o != nil {
		return o, nil
	}
	if o := r.lookupNid(nid); o != nil {
		return o, nil
	}

	return nil, ErrUnknownOid
}

// ShortNameFromNid returns the short name of the object interned under nid,
// which may be empty when only a long name was registered.
func (r *Registry) ShortNameFromNid(nid int) (string, error) {
	o, err := r.ObjectFromNid(nid)
	if err != nil {
		return "", err
	}

	return o.SN, nil
}

// LongNameFromNid returns the long name of the object interned under nid,
// which may be empty when only a short name was registered.
func (r *Registry) LongNameFromNid(nid int) (string, error) {
	o, err := r.ObjectFromNid(nid)
	if err != nil {
		return "", err
	}

	return o.LN, nil
}

// NidFromObject returns the NID interned for the object's content octets,
// or NidUndef when the encoding is unknown or empty. An object already
// carrying a NID is trusted without a search.
func (r *Registry) NidFromObject(obj *Object) int {
	if obj == nil {
		return NidUndef
	}
	if obj.Nid != NidUndef {
		return obj.Nid
	}
	if len(obj.Oid) == 0 {
		return NidUndef
	}
	if o := baselineFromOid(obj.Oid); o != nil {
		return o.Nid
	}
	if o := r.lookupOid(obj.Oid); o != nil {
		return o.Nid
	}

	return NidUndef
}

// NidFromShortName returns the NID registered under the short name sn, or
// NidUndef.
func (r *Registry) NidFromShortName(sn string) int {
	if sn == "" {
		return NidUndef
	}
	if o := baselineFromSN(sn); o != nil {
		return o.Nid
	}
	if o := r.lookupSN(sn); o != nil {
		return o.Nid
	}

	return NidUndef
}

// NidFromLongName returns the NID registered under the long name ln, or
// NidUndef.
func (r *Registry) NidFromLongName(ln string) int {
	if ln == "" {
		return NidUndef
	}
	if o := baselineFromLN(ln); o != nil {
		return o.Nid
	}
	if o := r.lookupLN(ln); o != nil {
		return o.Nid
	}

	return NidUndef
}

// ObjectFromText converts a textual identifier into an Object. Unless
// noName is set, short and long names are tried first and a match returns
// the interned object. Otherwise the text must be in dotted-decimal form
// and a fresh object is built from its parsed content octets, with the NID
// filled in when the encoding happens to be known. Unlike the name-to-NID
// lookups this works for any syntactically valid identifier, registered or
// not.
func (r *Registry) ObjectFromText(s string, noName bool) (*Object, error) {
	if !noName {
		if nid := r.NidFromShortName(s); nid != NidUndef {
			return r.ObjectFromNid(nid)
		}
		if nid := r.NidFromLongName(s); nid != NidUndef {
			return r.ObjectFromNid(nid)
		}
		if s == "" || s[0] < '0' || s[0] > '9' {
			return nil, ErrUnknownOid
		}
	}

	enc, err := encodeText(s)
	if err != nil {
		return nil, err
	}

	obj := &Object{Oid: enc}
	obj.Nid = r.NidFromObject(obj)

	return obj, nil
}

// NidFromText returns the NID for a short name, long name or dotted-decimal
// identifier, or NidUndef when it does not resolve.
func (r *Registry) NidFromText(s string) int {
	obj, err := r.ObjectFromText(s, false)
	if err != nil {
		return NidUndef
	}

	return r.NidFromObject(obj)
}

// TextFromObject renders the object into buf. Unless noName is set, an
// object resolving to a registered NID renders as its long name (falling
// back to the short name) instead of the dotted-decimal form.
//
// The return value is always the full length the text occupies, even when
// buf is too small to hold it; callers detect truncation by comparing the
// returned length with the buffer capacity. Any buf with nonzero capacity
// is NUL-terminated, whatever happens. A structural failure in the content
// octets yields -1, and an object without content octets occupies zero
// bytes.
func (r *Registry) TextFromObject(buf []byte, obj *Object, noName bool) int {
	if len(buf) > 0 {
		buf[0] = 0
	}
	if obj == nil || len(obj.Oid) == 0 {
		return 0
	}

	if !noName {
		if nid := r.NidFromObject(obj); nid != NidUndef {
			if o, err := r.ObjectFromNid(nid); err == nil {
				if name := o.Name(); name != "" {
					pos := 0
					bufPutString(buf, &pos, name)

					return len(name)
				}
			}
		}
	}

	return oidToText(buf, obj.Oid)
}

// Package-level lookups against the default registry.

// ObjectFromNid returns the object interned under nid in the default
// registry.
func ObjectFromNid(nid int) (*Object, error) { return Default().ObjectFromNid(nid) }

// ShortNameFromNid returns the short name interned under nid in the default
// registry.
func ShortNameFromNid(nid int) (string, error) { return Default().ShortNameFromNid(nid) }

// LongNameFromNid returns the long name interned under nid in the default
// registry.
func LongNameFromNid(nid int) (string, error) { return Default().LongNameFromNid(nid) }

// NidFromObject returns the NID for the object in the default registry, or
// NidUndef.
func NidFromObject(obj *Object) int { return Default().NidFromObject(obj) }

// NidFromShortName returns the NID for the short name in the default
// registry, or NidUndef.
func NidFromShortName(sn string) int { return Default().NidFromShortName(sn) }

// NidFromLongName returns the NID for the long name in the default
// registry, or NidUndef.
func NidFromLongName(ln string) int { return Default().NidFromLongName(ln) }

// NidFromText returns the NID for a name or dotted-decimal identifier in
// the default registry, or NidUndef.
func NidFromText(s string) int { return Default().NidFromText(s) }

// ObjectFromText converts a name or dotted-decimal identifier into an
// Object using the default registry.
func ObjectFromText(s string, noName bool) (*Object, error) {
	return Default().ObjectFromText(s, noName)
}

// TextFromObject renders the object into buf using the default registry.
// See Registry.TextFromObject for the buffer contract.
func TextFromObject(buf []byte, obj *Object, noName bool) int {
	return Default().TextFromObject(buf, obj, noName)
}
