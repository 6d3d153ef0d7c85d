// SPDX-License-Identifier: Apache-2.0

package objid

// GENERATED CODE: DO NOT EDIT

// NIDs of the compiled-in objects. NidUndef is defined in oids.go.
const (
	NidRsadsi                 = 1
	NidPkcs                   = 2
	NidMd2                    = 3
	NidMd5                    = 4
	NidRc4                    = 5
	NidRsaEncryption          = 6
	NidMd2WithRSA             = 7
	NidMd5WithRSA             = 8
	NidSha1WithRSA            = 9
	NidSha256WithRSA          = 10
	NidSha384WithRSA          = 11
	NidSha512WithRSA          = 12
	NidPkcs7                  = 13
	NidPkcs7Data              = 14
	NidPkcs7Signed            = 15
	NidPkcs9                  = 16
	NidEmailAddress           = 17
	NidX500                   = 18
	NidX509                   = 19
	NidCommonName             = 20
	NidCountryName            = 21
	NidLocalityName           = 22
	NidStateOrProvinceName    = 23
	NidOrganizationName       = 24
	NidOrganizationalUnitName = 25
	NidSha1                   = 26
	NidSha256                 = 27
	NidSha384                 = 28
	NidSha512                 = 29
	NidAes128Cbc              = 30
	NidAes256Cbc              = 31
	NidEcPublicKey            = 32
	NidPrime256v1             = 33
	NidSecp384r1              = 34
	NidEcdsaWithSha256        = 35
	NidEd25519                = 36
	NidX25519                 = 37
	NidPkix                   = 38
	NidSubjectAltName         = 39
	NidBasicConstraints       = 40
	NidKrb5Mech               = 41
	NidSpnegoMech             = 42
	NidIakerbMech             = 43
)

// NumNid is the number of compiled-in NID slots.
const NumNid = 44

var nidObjs = [NumNid]Object{

	// undefined
	{NidUndef, "UNDEF", "undefined", nil},

	// 1.2.840.113549
	{NidRsadsi, "rsadsi", "RSA Data Security, Inc.", Oid{0x2a, 0x86, 0x48, 0x86, 0xf7, 0x0d}},

	// 1.2.840.113549.1
	{NidPkcs, "pkcs", "RSA Data Security, Inc. PKCS", Oid{0x2a, 0x86, 0x48, 0x86, 0xf7, 0x0d, 0x01}},

	// 1.2.840.113549.2.2
	{NidMd2, "MD2", "md2", Oid{0x2a, 0x86, 0x48, 0x86, 0xf7, 0x0d, 0x02, 0x02}},

	// 1.2.840.113549.2.5
	{NidMd5, "MD5", "md5", Oid{0x2a, 0x86, 0x48, 0x86, 0xf7, 0x0d, 0x02, 0x05}},

	// 1.2.840.113549.3.4
	{NidRc4, "RC4", "rc4", Oid{0x2a, 0x86, 0x48, 0x86, 0xf7, 0x0d, 0x03, 0x04}},

	// 1.2.840.113549.1.1.1
	{NidRsaEncryption, "", "rsaEncryption", Oid{0x2a, 0x86, 0x48, 0x86, 0xf7, 0x0d, 0x01, 0x01, 0x01}},

	// 1.2.840.113549.1.1.2
	{NidMd2WithRSA, "RSA-MD2", "md2WithRSAEncryption", Oid{0x2a, 0x86, 0x48, 0x86, 0xf7, 0x0d, 0x01, 0x01, 0x02}},

	// 1.2.840.113549.1.1.4
	{NidMd5WithRSA, "RSA-MD5", "md5WithRSAEncryption", Oid{0x2a, 0x86, 0x48, 0x86, 0xf7, 0x0d, 0x01, 0x01, 0x04}},

	// 1.2.840.113549.1.1.5
	{NidSha1WithRSA, "RSA-SHA1", "sha1WithRSAEncryption", Oid{0x2a, 0x86, 0x48, 0x86, 0xf7, 0x0d, 0x01, 0x01, 0x05}},

	// 1.2.840.113549.1.1.11
	{NidSha256WithRSA, "RSA-SHA256", "sha256WithRSAEncryption", Oid{0x2a, 0x86, 0x48, 0x86, 0xf7, 0x0d, 0x01, 0x01, 0x0b}},

	// 1.2.840.113549.1.1.12
	{NidSha384WithRSA, "RSA-SHA384", "sha384WithRSAEncryption", Oid{0x2a, 0x86, 0x48, 0x86, 0xf7, 0x0d, 0x01, 0x01, 0x0c}},

	// 1.2.840.113549.1.1.13
	{NidSha512WithRSA, "RSA-SHA512", "sha512WithRSAEncryption", Oid{0x2a, 0x86, 0x48, 0x86, 0xf7, 0x0d, 0x01, 0x01, 0x0d}},

	// 1.2.840.113549.1.7
	{NidPkcs7, "pkcs7", "", Oid{0x2a, 0x86, 0x48, 0x86, 0xf7, 0x0d, 0x01, 0x07}},

	// 1.2.840.113549.1.7.1
	{NidPkcs7Data, "", "pkcs7-data", Oid{0x2a, 0x86, 0x48, 0x86, 0xf7, 0x0d, 0x01, 0x07, 0x01}},

	// 1.2.840.113549.1.7.2
	{NidPkcs7Signed, "", "pkcs7-signedData", Oid{0x2a, 0x86, 0x48, 0x86, 0xf7, 0x0d, 0x01, 0x07, 0x02}},

	// 1.2.840.113549.1.9
	{NidPkcs9, "pkcs9", "", Oid{0x2a, 0x86, 0x48, 0x86, 0xf7, 0x0d, 0x01, 0x09}},

	// 1.2.840.113549.1.9.1
	{NidEmailAddress, "", "emailAddress", Oid{0x2a, 0x86, 0x48, 0x86, 0xf7, 0x0d, 0x01, 0x09, 0x01}},

	// 2.5
	{NidX500, "X500", "directory services (X.500)", Oid{0x55}},

	// 2.5.4
	{NidX509, "X509", "", Oid{0x55, 0x04}},

	// 2.5.4.3
	{NidCommonName, "CN", "commonName", Oid{0x55, 0x04, 0x03}},

	// 2.5.4.6
	{NidCountryName, "C", "countryName", Oid{0x55, 0x04, 0x06}},

	// 2.5.4.7
	{NidLocalityName, "L", "localityName", Oid{0x55, 0x04, 0x07}},

	// 2.5.4.8
	{NidStateOrProvinceName, "ST", "stateOrProvinceName", Oid{0x55, 0x04, 0x08}},

	// 2.5.4.10
	{NidOrganizationName, "O", "organizationName", Oid{0x55, 0x04, 0x0a}},

	// 2.5.4.11
	{NidOrganizationalUnitName, "OU", "organizationalUnitName", Oid{0x55, 0x04, 0x0b}},

	// 1.3.14.3.2.26
	{NidSha1, "SHA1", "sha1", Oid{0x2b, 0x0e, 0x03, 0x02, 0x1a}},

	// 2.16.840.1.101.3.4.2.1
	{NidSha256, "SHA256", "sha256", Oid{0x60, 0x86, 0x48, 0x01, 0x65, 0x03, 0x04, 0x02, 0x01}},

	// 2.16.840.1.101.3.4.2.2
	{NidSha384, "SHA384", "sha384", Oid{0x60, 0x86, 0x48, 0x01, 0x65, 0x03, 0x04, 0x02, 0x02}},

	// 2.16.840.1.101.3.4.2.3
	{NidSha512, "SHA512", "sha512", Oid{0x60, 0x86, 0x48, 0x01, 0x65, 0x03, 0x04, 0x02, 0x03}},

	// 2.16.840.1.101.3.4.1.2
	{NidAes128Cbc, "AES-128-CBC", "aes-128-cbc", Oid{0x60, 0x86, 0x48, 0x01, 0x65, 0x03, 0x04, 0x01, 0x02}},

	// 2.16.840.1.101.3.4.1.42
	{NidAes256Cbc, "AES-256-CBC", "aes-256-cbc", Oid{0x60, 0x86, 0x48, 0x01, 0x65, 0x03, 0x04, 0x01, 0x2a}},

	// 1.2.840.10045.2.1
	{NidEcPublicKey, "id-ecPublicKey", "ecPublicKey", Oid{0x2a, 0x86, 0x48, 0xce, 0x3d, 0x02, 0x01}},

	// 1.2.840.10045.3.1.7
	{NidPrime256v1, "prime256v1", "", Oid{0x2a, 0x86, 0x48, 0xce, 0x3d, 0x03, 0x01, 0x07}},

	// 1.3.132.0.34
	{NidSecp384r1, "secp384r1", "", Oid{0x2b, 0x81, 0x04, 0x00, 0x22}},

	// 1.2.840.10045.4.3.2
	{NidEcdsaWithSha256, "ecdsa-with-SHA256", "", Oid{0x2a, 0x86, 0x48, 0xce, 0x3d, 0x04, 0x03, 0x02}},

	// 1.3.101.112
	{NidEd25519, "ED25519", "", Oid{0x2b, 0x65, 0x70}},

	// 1.3.101.110
	{NidX25519, "X25519", "", Oid{0x2b, 0x65, 0x6e}},

	// 1.3.6.1.5.5.7
	{NidPkix, "PKIX", "", Oid{0x2b, 0x06, 0x01, 0x05, 0x05, 0x07}},

	// 2.5.29.17
	{NidSubjectAltName, "subjectAltName", "X509v3 Subject Alternative Name", Oid{0x55, 0x1d, 0x11}},

	// 2.5.29.19
	{NidBasicConstraints, "basicConstraints", "X509v3 Basic Constraints", Oid{0x55, 0x1d, 0x13}},

	// 1.2.840.113554.1.2.2
	{NidKrb5Mech, "krb5", "Kerberos 5 GSS-API mechanism", Oid{0x2a, 0x86, 0x48, 0x86, 0xf7, 0x12, 0x01, 0x02, 0x02}},

	// 1.3.6.1.5.5.2
	{NidSpnegoMech, "spnego", "Simple Protected Negotiation", Oid{0x2b, 0x06, 0x01, 0x05, 0x05, 0x02}},

	// 1.3.6.1.5.2.5
	{NidIakerbMech, "iakerb", "Initial and Pass Through Authentication Kerberos", Oid{0x2b, 0x06, 0x01, 0x05, 0x02, 0x05}},
}

// indices into nidObjs sorted by content octets (length, then bytewise)
var objObjs = []int{
	NidX500,                   // 2.5
	NidX509,                   // 2.5.4
	NidX25519,                 // 1.3.101.110
	NidEd25519,                // 1.3.101.112
	NidCommonName,             // 2.5.4.3
	NidCountryName,            // 2.5.4.6
	NidLocalityName,           // 2.5.4.7
	NidStateOrProvinceName,    // 2.5.4.8
	NidOrganizationName,       // 2.5.4.10
	NidOrganizationalUnitName, // 2.5.4.11
	NidSubjectAltName,         // 2.5.29.17
	NidBasicConstraints,       // 2.5.29.19
	NidSha1,                   // 1.3.14.3.2.26
	NidSecp384r1,              // 1.3.132.0.34
	NidRsadsi,                 // 1.2.840.113549
	NidIakerbMech,             // 1.3.6.1.5.2.5
	NidSpnegoMech,             // 1.3.6.1.5.5.2
	NidPkix,                   // 1.3.6.1.5.5.7
	NidPkcs,                   // 1.2.840.113549.1
	NidEcPublicKey,            // 1.2.840.10045.2.1
	NidPkcs7,                  // 1.2.840.113549.1.7
	NidPkcs9,                  // 1.2.840.113549.1.9
	NidMd2,                    // 1.2.840.113549.2.2
	NidMd5,                    // 1.2.840.113549.2.5
	NidRc4,                    // 1.2.840.113549.3.4
	NidPrime256v1,             // 1.2.840.10045.3.1.7
	NidEcdsaWithSha256,        // 1.2.840.10045.4.3.2
	NidRsaEncryption,          // 1.2.840.113549.1.1.1
	NidMd2WithRSA,             // 1.2.840.113549.1.1.2
	NidMd5WithRSA,             // 1.2.840.113549.1.1.4
	NidSha1WithRSA,            // 1.2.840.113549.1.1.5
	NidSha256WithRSA,          // 1.2.840.113549.1.1.11
	NidSha384WithRSA,          // 1.2.840.113549.1.1.12
	NidSha512WithRSA,          // 1.2.840.113549.1.1.13
	NidPkcs7Data,              // 1.2.840.113549.1.7.1
	NidPkcs7Signed,            // 1.2.840.113549.1.7.2
	NidEmailAddress,           // 1.2.840.113549.1.9.1
	NidKrb5Mech,               // 1.2.840.113554.1.2.2
	NidAes128Cbc,              // 2.16.840.1.101.3.4.1.2
	NidAes256Cbc,              // 2.16.840.1.101.3.4.1.42
	NidSha256,                 // 2.16.840.1.101.3.4.2.1
	NidSha384,                 // 2.16.840.1.101.3.4.2.2
	NidSha512,                 // 2.16.840.1.101.3.4.2.3
}

// indices into nidObjs sorted by short name; unnamed entries excluded
var snObjs = []int{
	NidAes128Cbc,              // AES-128-CBC
	NidAes256Cbc,              // AES-256-CBC
	NidCountryName,            // C
	NidCommonName,             // CN
	NidEd25519,                // ED25519
	NidLocalityName,           // L
	NidMd2,                    // MD2
	NidMd5,                    // MD5
	NidOrganizationName,       // O
	NidOrganizationalUnitName, // OU
	NidPkix,                   // PKIX
	NidRc4,                    // RC4
	NidMd2WithRSA,             // RSA-MD2
	NidMd5WithRSA,             // RSA-MD5
	NidSha1WithRSA,            // RSA-SHA1
	NidSha256WithRSA,          // RSA-SHA256
	NidSha384WithRSA,          // RSA-SHA384
	NidSha512WithRSA,          // RSA-SHA512
	NidSha1,                   // SHA1
	NidSha256,                 // SHA256
	NidSha384,                 // SHA384
	NidSha512,                 // SHA512
	NidStateOrProvinceName,    // ST
	NidUndef,                  // UNDEF
	NidX25519,                 // X25519
	NidX500,                   // X500
	NidX509,                   // X509
	NidBasicConstraints,       // basicConstraints
	NidEcdsaWithSha256,        // ecdsa-with-SHA256
	NidIakerbMech,             // iakerb
	NidEcPublicKey,            // id-ecPublicKey
	NidKrb5Mech,               // krb5
	NidPkcs,                   // pkcs
	NidPkcs7,                  // pkcs7
	NidPkcs9,                  // pkcs9
	NidPrime256v1,             // prime256v1
	NidRsadsi,                 // rsadsi
	NidSecp384r1,              // secp384r1
	NidSpnegoMech,             // spnego
	NidSubjectAltName,         // subjectAltName
}

// indices into nidObjs sorted by long name; unnamed entries excluded
var lnObjs = []int{
	NidIakerbMech,             // Initial and Pass Through Authentication Kerberos
	NidKrb5Mech,               // Kerberos 5 GSS-API mechanism
	NidRsadsi,                 // RSA Data Security, Inc.
	NidPkcs,                   // RSA Data Security, Inc. PKCS
	NidSpnegoMech,             // Simple Protected Negotiation
	NidBasicConstraints,       // X509v3 Basic Constraints
	NidSubjectAltName,         // X509v3 Subject Alternative Name
	NidAes128Cbc,              // aes-128-cbc
	NidAes256Cbc,              // aes-256-cbc
	NidCommonName,             // commonName
	NidCountryName,            // countryName
	NidX500,                   // directory services (X.500)
	NidEcPublicKey,            // ecPublicKey
	NidEmailAddress,           // emailAddress
	NidLocalityName,           // localityName
	NidMd2,                    // md2
	NidMd2WithRSA,             // md2WithRSAEncryption
	NidMd5,                    // md5
	NidMd5WithRSA,             // md5WithRSAEncryption
	NidOrganizationName,       // organizationName
	NidOrganizationalUnitName, // organizationalUnitName
	NidPkcs7Data,              // pkcs7-data
	NidPkcs7Signed,            // pkcs7-signedData
	NidRc4,                    // rc4
	NidRsaEncryption,          // rsaEncryption
	NidSha1,                   // sha1
	NidSha1WithRSA,            // sha1WithRSAEncryption
	NidSha256,                 // sha256
	NidSha256WithRSA,          // sha256WithRSAEncryption
	NidSha384,                 // sha384
	NidSha384WithRSA,          // sha384WithRSAEncryption
	NidSha512,                 // sha512
	NidSha512WithRSA,          // sha512WithRSAEncryption
	NidStateOrProvinceName,    // stateOrProvinceName
	NidUndef,                  // undefined
}
