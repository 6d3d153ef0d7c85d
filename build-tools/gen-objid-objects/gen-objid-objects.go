// SPDX-License-Identifier: Apache-2.0

// gen-objid-objects generates the compiled-in baseline tables
// (baseline_gen.go). The table below is kept in NID order; new entries go
// at the end so existing NIDs stay stable. The emitted index slices are
// sorted the way the package's binary searches expect: content octets by
// length then bytewise, names bytewise, entries lacking a name excluded.
package main

import (
	"bytes"
	"encoding/asn1"
	"flag"
	"fmt"
	"log"
	"os"
	"sort"
	"strconv"
	"strings"
)

type entry struct {
	name string // Go constant name; empty for the undef slot
	sn   string
	ln   string
	oid  string
}

var baseline = []entry{
	{"", "UNDEF", "undefined", ""},
	{"NidRsadsi", "rsadsi", "RSA Data Security, Inc.", "1.2.840.113549"},
	{"NidPkcs", "pkcs", "RSA Data Security, Inc. PKCS", "1.2.840.113549.1"},
	{"NidMd2", "MD2", "md2", "1.2.840.113549.2.2"},
	{"NidMd5", "MD5", "md5", "1.2.840.113549.2.5"},
	{"NidRc4", "RC4", "rc4", "1.2.840.113549.3.4"},
	{"NidRsaEncryption", "", "rsaEncryption", "1.2.840.113549.1.1.1"},
	{"NidMd2WithRSA", "RSA-MD2", "md2WithRSAEncryption", "1.2.840.113549.1.1.2"},
	{"NidMd5WithRSA", "RSA-MD5", "md5WithRSAEncryption", "1.2.840.113549.1.1.4"},
	{"NidSha1WithRSA", "RSA-SHA1", "sha1WithRSAEncryption", "1.2.840.113549.1.1.5"},
	{"NidSha256WithRSA", "RSA-SHA256", "sha256WithRSAEncryption", "1.2.840.113549.1.1.11"},
	{"NidSha384WithRSA", "RSA-SHA384", "sha384WithRSAEncryption", "1.2.840.113549.1.1.12"},
	{"NidSha512WithRSA", "RSA-SHA512", "sha512WithRSAEncryption", "1.2.840.113549.1.1.13"},
	{"NidPkcs7", "pkcs7", "", "1.2.840.113549.1.7"},
	{"NidPkcs7Data", "", "pkcs7-data", "1.2.840.113549.1.7.1"},
	{"NidPkcs7Signed", "", "pkcs7-signedData", "1.2.840.113549.1.7.2"},
	{"NidPkcs9", "pkcs9", "", "1.2.840.113549.1.9"},
	{"NidEmailAddress", "", "emailAddress", "1.2.840.113549.1.9.1"},
	{"NidX500", "X500", "directory services (X.500)", "2.5"},
	{"NidX509", "X509", "", "2.5.4"},
	{"NidCommonName", "CN", "commonName", "2.5.4.3"},
	{"NidCountryName", "C", "countryName", "2.5.4.6"},
	{"NidLocalityName", "L", "localityName", "2.5.4.7"},
	{"NidStateOrProvinceName", "ST", "stateOrProvinceName", "2.5.4.8"},
	{"NidOrganizationName", "O", "organizationName", "2.5.4.10"},
	{"NidOrganizationalUnitName", "OU", "organizationalUnitName", "2.5.4.11"},
	{"NidSha1", "SHA1", "sha1", "1.3.14.3.2.26"},
	{"NidSha256", "SHA256", "sha256", "2.16.840.1.101.3.4.2.1"},
	{"NidSha384", "SHA384", "sha384", "2.16.840.1.101.3.4.2.2"},
	{"NidSha512", "SHA512", "sha512", "2.16.840.1.101.3.4.2.3"},
	{"NidAes128Cbc", "AES-128-CBC", "aes-128-cbc", "2.16.840.1.101.3.4.1.2"},
	{"NidAes256Cbc", "AES-256-CBC", "aes-256-cbc", "2.16.840.1.101.3.4.1.42"},
	{"NidEcPublicKey", "id-ecPublicKey", "ecPublicKey", "1.2.840.10045.2.1"},
	{"NidPrime256v1", "prime256v1", "", "1.2.840.10045.3.1.7"},
	{"NidSecp384r1", "secp384r1", "", "1.3.132.0.34"},
	{"NidEcdsaWithSha256", "ecdsa-with-SHA256", "", "1.2.840.10045.4.3.2"},
	{"NidEd25519", "ED25519", "", "1.3.101.112"},
	{"NidX25519", "X25519", "", "1.3.101.110"},
	{"NidPkix", "PKIX", "", "1.3.6.1.5.5.7"},
	{"NidSubjectAltName", "subjectAltName", "X509v3 Subject Alternative Name", "2.5.29.17"},
	{"NidBasicConstraints", "basicConstraints", "X509v3 Basic Constraints", "2.5.29.19"},
	{"NidKrb5Mech", "krb5", "Kerberos 5 GSS-API mechanism", "1.2.840.113554.1.2.2"},
	{"NidSpnegoMech", "spnego", "Simple Protected Negotiation", "1.3.6.1.5.5.2"},
	{"NidIakerbMech", "iakerb", "Initial and Pass Through Authentication Kerberos", "1.3.6.1.5.2.5"},
}

func main() {
	output := flag.String("o", "", "output file name")
	flag.Parse()

	fh := os.Stdout
	var err error
	if *output != "" {
		fh, err = os.Create(*output)
		if err != nil {
			log.Fatal(err)
		}
		defer fh.Close()
	}

	encs := make([][]byte, len(baseline))
	for i, e := range baseline {
		encs[i] = contentOctets(e.oid)
	}

	var b strings.Builder

	b.WriteString("// SPDX-License-Identifier: Apache-2.0\n")
	b.WriteString("\npackage objid\n")
	b.WriteString("\n// GENERATED CODE: DO NOT EDIT\n")

	b.WriteString("\n// NIDs of the compiled-in objects. NidUndef is defined in oids.go.\n")
	b.WriteString("const (\n")
	w := 0
	for _, e := range baseline {
		w = max(w, len(e.name))
	}
	for i, e := range baseline {
		if e.name == "" {
			continue
		}
		fmt.Fprintf(&b, "\t%-*s = %d\n", w, e.name, i)
	}
	b.WriteString(")\n")

	b.WriteString("\n// NumNid is the number of compiled-in NID slots.\n")
	fmt.Fprintf(&b, "const NumNid = %d\n", len(baseline))

	b.WriteString("\nvar nidObjs = [NumNid]Object{\n")
	for i, e := range baseline {
		comment := e.oid
		if comment == "" {
			comment = "undefined"
		}
		fmt.Fprintf(&b, "\n\t// %s\n", comment)
		fmt.Fprintf(&b, "\t{%s, %q, %q, %s},\n", constName(e), e.sn, e.ln, bytesFormat(encs[i]))
	}
	b.WriteString("}\n")

	objIdx := indicesWhere(func(i int) bool { return len(encs[i]) > 0 })
	sort.Slice(objIdx, func(a, b int) bool {
		x, y := encs[objIdx[a]], encs[objIdx[b]]
		if len(x) != len(y) {
			return len(x) < len(y)
		}
		return bytes.Compare(x, y) < 0
	})
	indexBlock(&b, "objObjs",
		"indices into nidObjs sorted by content octets (length, then bytewise)",
		objIdx, func(i int) string { return baseline[i].oid })

	snIdx := indicesWhere(func(i int) bool { return baseline[i].sn != "" })
	sort.Slice(snIdx, func(a, b int) bool { return baseline[snIdx[a]].sn < baseline[snIdx[b]].sn })
	indexBlock(&b, "snObjs",
		"indices into nidObjs sorted by short name; unnamed entries excluded",
		snIdx, func(i int) string { return baseline[i].sn })

	lnIdx := indicesWhere(func(i int) bool { return baseline[i].ln != "" })
	sort.Slice(lnIdx, func(a, b int) bool { return baseline[lnIdx[a]].ln < baseline[lnIdx[b]].ln })
	indexBlock(&b, "lnObjs",
		"indices into nidObjs sorted by long name; unnamed entries excluded",
		lnIdx, func(i int) string { return baseline[i].ln })

	if _, err := fh.WriteString(b.String()); err != nil {
		log.Fatal(err)
	}
}

func indicesWhere(keep func(int) bool) []int {
	var idx []int
	for i := range baseline {
		if keep(i) {
			idx = append(idx, i)
		}
	}
	return idx
}

func indexBlock(b *strings.Builder, varname, comment string, idx []int, label func(int) string) {
	fmt.Fprintf(b, "\n// %s\n", comment)
	fmt.Fprintf(b, "var %s = []int{\n", varname)
	w := 0
	for _, i := range idx {
		w = max(w, len(constName(baseline[i]))+1)
	}
	for _, i := range idx {
		fmt.Fprintf(b, "\t%-*s // %s\n", w, constName(baseline[i])+",", label(i))
	}
	b.WriteString("}\n")
}

func constName(e entry) string {
	if e.name == "" {
		return "NidUndef"
	}
	return e.name
}

func bytesFormat(enc []byte) string {
	if len(enc) == 0 {
		return "nil"
	}
	strs := make([]string, len(enc))
	for i, c := range enc {
		strs[i] = fmt.Sprintf("0x%02x", c)
	}
	return "Oid{" + strings.Join(strs, ", ") + "}"
}

func contentOctets(s string) []byte {
	if s == "" {
		return nil
	}

	objId := stringToOid(s)
	enc, err := asn1.Marshal(objId)
	if err != nil {
		panic(fmt.Errorf("encoding %s: %w", objId, err))
	}

	// strip the two-byte ASN.1 header (tag, length)
	return enc[2:]
}

func stringToOid(s string) asn1.ObjectIdentifier {
	// split string into components
	elms := strings.Split(s, ".")

	oid := make(asn1.ObjectIdentifier, len(elms))

	for i, elm := range elms {
		j, err := strconv.ParseUint(elm, 10, 32)
		if err != nil {
			panic(err)
		}

		oid[i] = int(j)
	}

	return oid
}
