// SPDX-License-Identifier: Apache-2.0

package objid

import (
	"bufio"
	"io"
	"strings"
)

// Create registers a new object built from a dotted-decimal identifier and
// optional short and long names, and returns its freshly allocated NID.
// Empty strings stand for absent fields; at least one field must be given.
//
// A short or long name that already resolves fails with ErrDuplicateName,
// and an identifier that is already registered fails with
// ErrDuplicateContent; in both cases nothing is registered. The content
// check is repeated under the write lock, so two racing Create calls for
// the same identifier cannot both commit. An absent identifier produces an
// anonymous object reachable only by name and NID.
func (r *Registry) Create(oidText, sn, ln string) (int, error) {
	if oidText == "" && sn == "" && ln == "" {
		return NidUndef, ErrInvalidArgument
	}

	if sn != "" && r.NidFromShortName(sn) != NidUndef {
		return NidUndef, ErrDuplicateName
	}
	if ln != "" && r.NidFromLongName(ln) != NidUndef {
		return NidUndef, ErrDuplicateName
	}

	// parse outside the lock; only the index update happens inside
	var enc Oid
	if oidText != "" {
		var err error
		if enc, err = encodeText(oidText); err != nil {
			return NidUndef, err
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if enc != nil {
		if baselineFromOid(enc) != nil {
			return NidUndef, ErrDuplicateContent
		}
		if _, ok := r.byOid[string(enc)]; ok {
			return NidUndef, ErrDuplicateContent
		}
	}

	// the committed object gets its own string storage; it must not alias
	// the caller's arguments
	obj := &Object{
		Nid: r.alloc.allocate(1),
		SN:  cloneString(sn),
		LN:  cloneString(ln),
		Oid: enc,
	}
	r.insertLocked(obj)

	return obj.Nid, nil
}

// CreateObjects registers objects read from a line-oriented stream and
// returns how many lines were committed. Each line has the form
//
//	<dotted-decimal-oid> <short name> <long name ...>
//
// with the names optional and the long name running to the end of the line.
// Scanning stops at the first line that is empty, does not start with an
// alphanumeric character, carries no identifier, or fails to register.
// Objects committed before the stop remain registered.
func (r *Registry) CreateObjects(in io.Reader) int {
	sc := bufio.NewScanner(in)

	num := 0
	for sc.Scan() {
		line := sc.Text()
		if line == "" || !isAlnum(line[0]) {
			return num
		}

		oid, sn, ln := splitObjectLine(line)
		if oid == "" {
			return num
		}
		if _, err := r.Create(oid, sn, ln); err != nil {
			return num
		}
		num++
	}

	return num
}

// splitObjectLine carves one CreateObjects line into its fields. The
// identifier token is the leading run of digits and dots; the short name is
// the next whitespace-delimited token; the long name is whatever follows,
// spaces included ("RSA Data Security, Inc." is a long name).
func splitObjectLine(line string) (oid, sn, ln string) {
	i := 0
	for i < len(line) && (isDigit(line[i]) || line[i] == '.') {
		i++
	}
	oid = line[:i]

	rest := strings.TrimLeft(line[i:], " \t")
	if rest == "" {
		return oid, "", ""
	}

	if j := strings.IndexAny(rest, " \t"); j >= 0 {
		sn = rest[:j]
		ln = strings.TrimLeft(rest[j:], " \t")
	} else {
		sn = rest
	}

	return oid, sn, ln
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlnum(c byte) bool {
	return isDigit(c) || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// Create registers a new object in the default registry. See
// Registry.Create.
func Create(oidText, sn, ln string) (int, error) {
	return Default().Create(oidText, sn, ln)
}

// CreateObjects registers objects from a line-oriented stream into the
// default registry. See Registry.CreateObjects.
func CreateObjects(in io.Reader) int {
	return Default().CreateObjects(in)
}

// AddObject registers a copy of obj in the default registry. See
// Registry.AddObject.
func AddObject(obj *Object) (int, error) {
	return Default().AddObject(obj)
}
