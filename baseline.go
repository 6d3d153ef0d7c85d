// SPDX-License-Identifier: Apache-2.0

package objid

import (
	"bytes"
	"sort"
	"strings"
)

//go:generate go run ./build-tools/gen-objid-objects -o baseline_gen.go

// The baseline tables in baseline_gen.go are immutable after process start,
// so the searches here need no synchronization. nidObjs is indexed directly
// by NID; objObjs, snObjs and lnObjs are indices into nidObjs sorted by
// content octets, short name and long name respectively. Entries lacking a
// name are left out of the corresponding name table.

func baselineFromNid(nid int) *Object {
	if nid == NidUndef || (nid > 0 && nid < NumNid && nidObjs[nid].Nid != NidUndef) {
		return &nidObjs[nid]
	}

	return nil
}

func baselineFromOid(data []byte) *Object {
	i, ok := sort.Find(len(objObjs), func(i int) int {
		return compareContent(data, nidObjs[objObjs[i]].Oid)
	})
	if !ok {
		return nil
	}

	return &nidObjs[objObjs[i]]
}

func baselineFromSN(sn string) *Object {
	i, ok := sort.Find(len(snObjs), func(i int) int {
		return strings.Compare(sn, nidObjs[snObjs[i]].SN)
	})
	if !ok {
		return nil
	}

	return &nidObjs[snObjs[i]]
}

func baselineFromLN(ln string) *Object {
	i, ok := sort.Find(len(lnObjs), func(i int) int {
		return strings.Compare(ln, nidObjs[lnObjs[i]].LN)
	})
	if !ok {
		return nil
	}

	return &nidObjs[lnObjs[i]]
}

// compareContent orders encodings by length first, then bytewise. Shorter
// encodings always sort before longer ones regardless of content.
func compareContent(a, b []byte) int {
	if d := len(a) - len(b); d != 0 {
		return d
	}

	return bytes.Compare(a, b)
}
