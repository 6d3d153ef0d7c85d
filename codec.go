// SPDX-License-Identifier: Apache-2.0

package objid

import (
	"math"
	"math/big"
	"strconv"
	"strings"
)

// RFC 2578 § 3.5 limits an OBJECT IDENTIFIER value to at most 128
// sub-identifiers of at most 2^32-1 each, so a legitimate OID occupies at
// most 32*128/7 = 586 content octets.
const maxContentOctets = 586

// An accumulator above this bound would lose bits on the next 7-bit shift,
// so decoding promotes to a big.Int instead.
const maxArcAccum = math.MaxUint64 >> 7

// encodeText parses dotted-decimal text into DER content octets. The first
// two components share the leading octet group as first*40+second, except
// that a first component of 2 is encoded as 80+second, which is the only
// form that lets the second component exceed 39. Components of any size are
// accepted; values that do not fit a uint64 are carried through math/big
// rather than truncated.
func encodeText(s string) (Oid, error) {
	parts := strings.Split(s, ".")
	if len(parts) < 2 {
		return nil, ErrMalformedOid
	}

	arcs := make([]arc, len(parts))
	for i, p := range parts {
		a, err := parseArc(p)
		if err != nil {
			return nil, err
		}
		arcs[i] = a
	}

	first, second := arcs[0], arcs[1]
	if first.big != nil || first.val > 2 {
		return nil, ErrMalformedOid
	}
	if first.val < 2 && (second.big != nil || second.val >= 40) {
		return nil, ErrMalformedOid
	}

	// combine the first two components into the leading octet group
	var head arc
	switch {
	case second.big != nil:
		head.big = new(big.Int).Add(second.big, big.NewInt(80))
	case first.val == 2 && second.val > math.MaxUint64-80:
		head.big = new(big.Int).SetUint64(second.val)
		head.big.Add(head.big, big.NewInt(80))
	default:
		head.val = first.val*40 + second.val
	}

	out := make(Oid, 0, 2*len(arcs))
	out = appendArc(out, head)
	for _, a := range arcs[2:] {
		out = appendArc(out, a)
	}

	if len(out) > maxContentOctets {
		return nil, ErrOversizeOid
	}

	return out, nil
}

// arc holds one parsed sub-identifier, in val unless it overflows a uint64.
type arc struct {
	val uint64
	big *big.Int
}

func parseArc(s string) (arc, error) {
	if s == "" {
		return arc{}, ErrMalformedOid
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return arc{}, ErrMalformedOid
		}
	}

	v, err := strconv.ParseUint(s, 10, 64)
	if err == nil {
		return arc{val: v}, nil
	}

	b, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return arc{}, ErrMalformedOid
	}

	return arc{big: b}, nil
}

// appendArc appends the base-128 groups of one sub-identifier, most
// significant group first, continuation bit set on every octet but the last.
func appendArc(dst Oid, a arc) Oid {
	if a.big != nil {
		return appendBase128Big(dst, a.big)
	}

	return appendBase128(dst, a.val)
}

func appendBase128(dst Oid, v uint64) Oid {
	n := 1
	for t := v >> 7; t > 0; t >>= 7 {
		n++
	}

	for i := n - 1; i >= 0; i-- {
		b := byte(v>>(uint(i)*7)) & 0x7f
		if i > 0 {
			b |= 0x80
		}
		dst = append(dst, b)
	}

	return dst
}

func appendBase128Big(dst Oid, v *big.Int) Oid {
	div := new(big.Int).Set(v)
	mod := new(big.Int)
	base := big.NewInt(128)

	groups := make([]byte, 0, (v.BitLen()+6)/7)
	for {
		div.DivMod(div, base, mod)
		groups = append(groups, byte(mod.Uint64()))
		if div.Sign() == 0 {
			break
		}
	}

	for i := len(groups) - 1; i >= 0; i-- {
		b := groups[i]
		if i > 0 {
			b |= 0x80
		}
		dst = append(dst, b)
	}

	return dst
}

// oidToText renders content octets as dotted-decimal text into buf,
// following the snprintf convention: the return value is the full length
// the text occupies regardless of the capacity of buf, as much as fits is
// written, and any buf with nonzero capacity is kept NUL-terminated at
// every step. The result is -1 when the final octet of a component has its
// continuation bit set (a truncated stream) or the input exceeds the
// RFC 2578 bound. Zero-length input occupies zero bytes and is not an
// error.
func oidToText(buf []byte, data []byte) int {
	if len(buf) > 0 {
		buf[0] = 0
	}
	if len(data) == 0 {
		return 0
	}
	if len(data) > maxContentOctets {
		return -1
	}

	var bl *big.Int
	n := 0
	pos := 0
	first := true

	for i := 0; i < len(data); {
		var l uint64
		useBig := false

		for {
			c := data[i]
			i++
			if i == len(data) && c&0x80 != 0 {
				return -1
			}
			if useBig {
				bl.Add(bl, big.NewInt(int64(c&0x7f)))
			} else {
				l |= uint64(c & 0x7f)
			}
			if c&0x80 == 0 {
				break
			}
			if !useBig && l > maxArcAccum {
				if bl == nil {
					bl = new(big.Int)
				}
				bl.SetUint64(l)
				useBig = true
			}
			if useBig {
				bl.Lsh(bl, 7)
			} else {
				l <<= 7
			}
		}

		if first {
			first = false
			var lead uint64
			if useBig || l >= 80 {
				lead = 2
				if useBig {
					bl.Sub(bl, big.NewInt(80))
				} else {
					l -= 80
				}
			} else {
				lead = l / 40
				l -= lead * 40
			}
			bufPutString(buf, &pos, strconv.FormatUint(lead, 10))
			n++
		}

		var s string
		if useBig {
			s = "." + bl.String()
		} else {
			s = "." + strconv.FormatUint(l, 10)
		}
		bufPutString(buf, &pos, s)
		n += len(s)
	}

	return n
}

// bufPutString appends s at *pos, strlcpy-style: at most len(buf)-1 text
// bytes are ever stored and buf stays NUL-terminated. Callers detect
// truncation by comparing the reported full length against the capacity.
func bufPutString(buf []byte, pos *int, s string) {
	if len(buf) == 0 || *pos >= len(buf)-1 {
		return
	}

	m := copy(buf[*pos:len(buf)-1], s)
	*pos += m
	buf[*pos] = 0
}
