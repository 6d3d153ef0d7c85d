// SPDX-License-Identifier: Apache-2.0

package objid

import (
	"fmt"
	"strings"
	"testing"

	"golang.org/x/sync/errgroup"
)

func TestCreate(t *testing.T) {
	assert := NewAssert(t)

	r := NewRegistry()
	nid, err := r.Create("1.3.6.1.4.1.77777.1", "ct-short", "ct long name")
	assert.NoErrorFatal(err)
	assert.GreaterOrEqual(nid, NumNid)

	// every key leads back to the same registration
	assert.Equal(nid, r.NidFromShortName("ct-short"))
	assert.Equal(nid, r.NidFromLongName("ct long name"))
	assert.Equal(nid, r.NidFromText("1.3.6.1.4.1.77777.1"))

	obj, err := r.ObjectFromNid(nid)
	assert.NoErrorFatal(err)
	assert.Equal(nid, r.NidFromObject(&Object{Oid: obj.Oid}))
	assert.Equal("ct-short", obj.SN)
	assert.Equal("ct long name", obj.LN)
}

func TestCreateInvalidArgument(t *testing.T) {
	assert := NewAssert(t)

	r := NewRegistry()
	_, err := r.Create("", "", "")
	assert.ErrorIs(err, ErrInvalidArgument)
}

func TestCreateDuplicateName(t *testing.T) {
	assert := NewAssert(t)

	r := NewRegistry()

	// against the baseline
	_, err := r.Create("1.3.6.1.4.1.77777.2", "SHA256", "dn long name")
	assert.ErrorIs(err, ErrDuplicateName)
	_, err = r.Create("1.3.6.1.4.1.77777.2", "dn-short", "sha256")
	assert.ErrorIs(err, ErrDuplicateName)

	// nothing was registered by the failed calls
	assert.Equal(NidUndef, r.NidFromLongName("dn long name"))
	assert.Equal(NidUndef, r.NidFromShortName("dn-short"))
	assert.Equal(NidUndef, r.NidFromText("1.3.6.1.4.1.77777.2"))

	// against an earlier runtime registration
	_, err = r.Create("1.3.6.1.4.1.77777.3", "dn-taken", "")
	assert.NoErrorFatal(err)
	_, err = r.Create("1.3.6.1.4.1.77777.4", "dn-taken", "")
	assert.ErrorIs(err, ErrDuplicateName)
}

func TestCreateDuplicateContent(t *testing.T) {
	assert := NewAssert(t)

	r := NewRegistry()

	_, err := r.Create("2.16.840.1.101.3.4.2.1", "dc-short", "dc long name")
	assert.ErrorIs(err, ErrDuplicateContent)

	_, err = r.Create("1.3.6.1.4.1.77777.5", "dc-first", "")
	assert.NoErrorFatal(err)
	_, err = r.Create("1.3.6.1.4.1.77777.5", "dc-second", "")
	assert.ErrorIs(err, ErrDuplicateContent)
	assert.Equal(NidUndef, r.NidFromShortName("dc-second"))
}

func TestCreateMalformed(t *testing.T) {
	assert := NewAssert(t)

	r := NewRegistry()
	_, err := r.Create("not.numeric", "mf-short", "")
	assert.ErrorIs(err, ErrMalformedOid)
	assert.Equal(NidUndef, r.NidFromShortName("mf-short"))
}

func TestCreateAnonymous(t *testing.T) {
	assert := NewAssert(t)

	r := NewRegistry()
	nid, err := r.Create("", "anon-short", "")
	assert.NoErrorFatal(err)

	obj, err := r.ObjectFromNid(nid)
	assert.NoErrorFatal(err)
	assert.Empty(obj.Oid)
	assert.Equal(nid, r.NidFromShortName("anon-short"))
}

func TestCreateObjects(t *testing.T) {
	assert := NewAssert(t)

	r := NewRegistry()
	stream := strings.NewReader(
		"1.3.6.1.4.1.88888.1 batch-one first batch object\n" +
			"1.3.6.1.4.1.88888.2 batch-two\n" +
			"1.3.6.1.4.1.88888.3\n" +
			"!1.3.6.1.4.1.88888.4 batch-four\n" +
			"1.3.6.1.4.1.88888.5 batch-five\n")

	assert.Equal(3, r.CreateObjects(stream))

	// the long name runs to the end of the line, spaces included
	ln, err := r.LongNameFromNid(r.NidFromShortName("batch-one"))
	assert.NoErrorFatal(err)
	assert.Equal("first batch object", ln)

	assert.NotEqual(NidUndef, r.NidFromText("1.3.6.1.4.1.88888.2"))
	assert.NotEqual(NidUndef, r.NidFromText("1.3.6.1.4.1.88888.3"))

	// nothing after the malformed line was processed
	assert.Equal(NidUndef, r.NidFromShortName("batch-five"))
}

func TestCreateObjectsStopsOnFailedCreate(t *testing.T) {
	assert := NewAssert(t)

	r := NewRegistry()
	stream := strings.NewReader(
		"1.3.6.1.4.1.88888.6 stop-one\n" +
			"1.3.6.1.4.1.88888.7 SHA256\n" + // duplicate short name
			"1.3.6.1.4.1.88888.8 stop-three\n")

	assert.Equal(1, r.CreateObjects(stream))
	assert.Equal(NidUndef, r.NidFromShortName("stop-three"))
}

func TestCreateObjectsEmptyStream(t *testing.T) {
	assert := NewAssert(t)

	r := NewRegistry()
	assert.Equal(0, r.CreateObjects(strings.NewReader("")))
	assert.Equal(0, r.CreateObjects(strings.NewReader("\n")))
}

func TestCreateConcurrent(t *testing.T) {
	assert := NewAssert(t)

	r := NewRegistry()

	const workers = 8
	const perWorker = 50

	var g errgroup.Group
	nids := make([][]int, workers)
	for w := 0; w < workers; w++ {
		w := w
		g.Go(func() error {
			nids[w] = make([]int, 0, perWorker)
			for i := 0; i < perWorker; i++ {
				nid, err := r.Create(
					fmt.Sprintf("1.3.6.1.4.1.99999.%d.%d", w, i),
					fmt.Sprintf("conc-%d-%d", w, i),
					"")
				if err != nil {
					return err
				}
				nids[w] = append(nids[w], nid)
			}
			return nil
		})
	}
	assert.NoErrorFatal(g.Wait())

	// every registration got a distinct NID and none were lost
	seen := make(map[int]bool)
	for w := 0; w < workers; w++ {
		for i, nid := range nids[w] {
			assert.False(seen[nid], "nid %d assigned twice", nid)
			seen[nid] = true
			assert.Equal(nid, r.NidFromShortName(fmt.Sprintf("conc-%d-%d", w, i)))
		}
	}
	assert.Len(seen, workers*perWorker)
}

func TestDefaultRegistry(t *testing.T) {
	assert := NewAssert(t)
	t.Cleanup(Cleanup)

	nid, err := Create("1.3.6.1.4.1.66666.1", "default-short", "default long name")
	assert.NoErrorFatal(err)

	assert.Equal(nid, NidFromShortName("default-short"))
	assert.Equal(nid, NidFromLongName("default long name"))
	assert.Equal(nid, NidFromText("default-short"))

	sn, err := ShortNameFromNid(nid)
	assert.NoErrorFatal(err)
	assert.Equal("default-short", sn)

	obj, err := ObjectFromNid(nid)
	assert.NoErrorFatal(err)
	assert.Equal("default long name", obj.String())
	assert.Equal("1.3.6.1.4.1.66666.1", obj.DotString())

	buf := make([]byte, 64)
	n := TextFromObject(buf, obj, true)
	assert.Equal("1.3.6.1.4.1.66666.1", string(buf[:n]))

	nid2, err := AddObject(&Object{SN: "default-added"})
	assert.NoErrorFatal(err)
	assert.Equal(nid2, NidFromShortName("default-added"))

	first := NewNid(2)
	assert.Equal(first+2, NewNid(1))
}
