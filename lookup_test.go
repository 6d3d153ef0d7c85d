// SPDX-License-Identifier: Apache-2.0

package objid

import (
	"strings"
	"testing"
)

func TestBaselineTablesSorted(t *testing.T) {
	assert := NewAssert(t)

	for i := 1; i < len(objObjs); i++ {
		assert.Negative(compareContent(nidObjs[objObjs[i-1]].Oid, nidObjs[objObjs[i]].Oid))
	}
	for i := 1; i < len(snObjs); i++ {
		assert.Negative(strings.Compare(nidObjs[snObjs[i-1]].SN, nidObjs[snObjs[i]].SN))
	}
	for i := 1; i < len(lnObjs); i++ {
		assert.Negative(strings.Compare(nidObjs[lnObjs[i-1]].LN, nidObjs[lnObjs[i]].LN))
	}
}

func TestObjectFromNid(t *testing.T) {
	assert := NewAssert(t)

	r := NewRegistry()

	obj, err := r.ObjectFromNid(NidSha256)
	assert.NoErrorFatal(err)
	assert.Equal("SHA256", obj.SN)
	assert.Equal("sha256", obj.LN)

	// NidUndef resolves to the baseline undefined object
	obj, err = r.ObjectFromNid(NidUndef)
	assert.NoErrorFatal(err)
	assert.Equal("UNDEF", obj.SN)
	assert.Equal(NidUndef, obj.Nid)

	_, err = r.ObjectFromNid(-1)
	assert.ErrorIs(err, ErrUnknownOid)
	_, err = r.ObjectFromNid(1 << 20)
	assert.ErrorIs(err, ErrUnknownOid)
}

func TestNamesFromNid(t *testing.T) {
	assert := NewAssert(t)

	r := NewRegistry()

	sn, err := r.ShortNameFromNid(NidCommonName)
	assert.NoErrorFatal(err)
	assert.Equal("CN", sn)

	ln, err := r.LongNameFromNid(NidCommonName)
	assert.NoErrorFatal(err)
	assert.Equal("commonName", ln)

	// an object registered under a single name has empty siblings
	sn, err = r.ShortNameFromNid(NidRsaEncryption)
	assert.NoErrorFatal(err)
	assert.Equal("", sn)

	_, err = r.ShortNameFromNid(1 << 20)
	assert.ErrorIs(err, ErrUnknownOid)
}

func TestNidFromName(t *testing.T) {
	assert := NewAssert(t)

	r := NewRegistry()

	// ends of the sorted short name table
	assert.Equal(NidAes128Cbc, r.NidFromShortName("AES-128-CBC"))
	assert.Equal(NidSubjectAltName, r.NidFromShortName("subjectAltName"))
	assert.Equal(NidSha256, r.NidFromShortName("SHA256"))

	assert.Equal(NidRsadsi, r.NidFromLongName("RSA Data Security, Inc."))
	assert.Equal(NidX500, r.NidFromLongName("directory services (X.500)"))

	// a long name is not a short name and vice versa
	assert.Equal(NidUndef, r.NidFromShortName("sha256"))
	assert.Equal(NidUndef, r.NidFromLongName("SHA256"))

	assert.Equal(NidUndef, r.NidFromShortName("no-such-name"))
	assert.Equal(NidUndef, r.NidFromShortName(""))
}

func TestNidFromObject(t *testing.T) {
	assert := NewAssert(t)

	r := NewRegistry()

	assert.Equal(NidCommonName, r.NidFromObject(&Object{Oid: Oid{0x55, 0x04, 0x03}}))
	assert.Equal(NidX500, r.NidFromObject(&Object{Oid: Oid{0x55}}))
	assert.Equal(NidSha256, r.NidFromObject(&Object{Oid: Oid{0x60, 0x86, 0x48, 0x01, 0x65, 0x03, 0x04, 0x02, 0x01}}))

	// an object already carrying a NID is trusted without a search
	assert.Equal(42, r.NidFromObject(&Object{Nid: 42}))

	assert.Equal(NidUndef, r.NidFromObject(nil))
	assert.Equal(NidUndef, r.NidFromObject(&Object{}))
	assert.Equal(NidUndef, r.NidFromObject(&Object{Oid: Oid{0x2b, 0x65}}))
}

func TestObjectFromText(t *testing.T) {
	assert := NewAssert(t)

	r := NewRegistry()

	obj, err := r.ObjectFromText("SHA256", false)
	assert.NoErrorFatal(err)
	assert.Equal(NidSha256, obj.Nid)

	obj, err = r.ObjectFromText("sha256WithRSAEncryption", false)
	assert.NoErrorFatal(err)
	assert.Equal(NidSha256WithRSA, obj.Nid)

	// dotted text parses and picks up the interned NID when known
	obj, err = r.ObjectFromText("2.5.4.3", false)
	assert.NoErrorFatal(err)
	assert.Equal(NidCommonName, obj.Nid)

	// unknown but well-formed identifiers still parse
	obj, err = r.ObjectFromText("1.3.6.1.4.1.54321", false)
	assert.NoErrorFatal(err)
	assert.Equal(NidUndef, obj.Nid)
	assert.NotEmpty(obj.Oid)

	// noName skips the name lookup entirely
	_, err = r.ObjectFromText("SHA256", true)
	assert.ErrorIs(err, ErrMalformedOid)

	_, err = r.ObjectFromText("no-such-name", false)
	assert.ErrorIs(err, ErrUnknownOid)
	_, err = r.ObjectFromText("", false)
	assert.ErrorIs(err, ErrUnknownOid)
}

func TestNidFromText(t *testing.T) {
	assert := NewAssert(t)

	r := NewRegistry()

	assert.Equal(NidSha256, r.NidFromText("SHA256"))
	assert.Equal(NidSha256, r.NidFromText("sha256"))
	assert.Equal(NidSha256, r.NidFromText("2.16.840.1.101.3.4.2.1"))
	assert.Equal(NidUndef, r.NidFromText("1.2.3.4"))
	assert.Equal(NidUndef, r.NidFromText("bogus"))
}

func TestTextFromObject(t *testing.T) {
	assert := NewAssert(t)

	r := NewRegistry()
	obj := &Object{Oid: Oid{0x60, 0x86, 0x48, 0x01, 0x65, 0x03, 0x04, 0x02, 0x01}}

	// known objects render as their long name unless noName is set
	buf := make([]byte, 64)
	n := r.TextFromObject(buf, obj, false)
	assert.Equal(len("sha256"), n)
	assert.Equal("sha256", string(buf[:n]))

	n = r.TextFromObject(buf, obj, true)
	assert.Equal(len("2.16.840.1.101.3.4.2.1"), n)
	assert.Equal("2.16.840.1.101.3.4.2.1", string(buf[:n]))

	// the full length comes back even with no room to write
	assert.Equal(len("sha256"), r.TextFromObject(nil, obj, false))

	// name truncation keeps the buffer NUL terminated too
	tiny := make([]byte, 4)
	assert.Equal(len("sha256"), r.TextFromObject(tiny, obj, false))
	assert.Equal("sha", string(tiny[:3]))
	assert.Equal(byte(0), tiny[3])

	// no content octets renders as nothing
	assert.Equal(0, r.TextFromObject(buf, &Object{SN: "nameless"}, true))
	assert.Equal(0, r.TextFromObject(buf, nil, false))
}

func TestObjectStrings(t *testing.T) {
	assert := NewAssert(t)

	obj, err := ObjectFromNid(NidSha256)
	assert.NoErrorFatal(err)
	assert.Equal("sha256", obj.String())
	assert.Equal("2.16.840.1.101.3.4.2.1", obj.DotString())

	assert.Equal("md2", nidObjs[NidMd2].Name())
	assert.Equal("pkcs7", nidObjs[NidPkcs7].Name()) // SN fallback
}
