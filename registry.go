package objid

import "sync"

// Registry indexes objects registered at runtime, layered over the
// immutable baseline tables. The zero value is ready to use: the index is
// built lazily under the write lock on first insertion, and lookups against
// an empty registry simply miss.
//
// Each registered object is held exactly once in an arena and referenced by
// up to four index entries, one per non-empty field (content octets, short
// name, long name, NID). Inserting over an existing key shadows the earlier
// entry; the shadowed object stays in the arena until Cleanup so that
// references held by callers remain valid.
type Registry struct {
	mu sync.RWMutex

	byOid map[string]int // content octets -> arena slot
	bySN  map[string]int
	byLN  map[string]int
	byNid map[int]int

	arena []*Object

	alloc nidAllocator

	// test instrumentation, counted during Cleanup
	releasedObject func(*Object)
	releasedEntry  func()
}

// NewRegistry returns an empty registry, independent of the process-wide
// default one.
func NewRegistry() *Registry {
	r := &Registry{}
	r.mu.Lock()
	r.initLocked()
	r.mu.Unlock()

	return r
}

var (
	defaultOnce sync.Once
	defaultReg  *Registry
)

// Default returns the process-wide registry used by the package-level
// calls. It is constructed once, on first use, and is safe for concurrent
// first callers.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultReg = NewRegistry()
	})

	return defaultReg
}

// initLocked builds the empty index. Callers must hold the write lock.
// Calling it on an initialized registry is a no-op, so every write path may
// invoke it unconditionally.
func (r *Registry) initLocked() {
	if r.byNid != nil {
		return
	}

	r.byOid = make(map[string]int)
	r.bySN = make(map[string]int)
	r.byLN = make(map[string]int)
	r.byNid = make(map[int]int)
}

// insertLocked commits obj under every key it carries and returns the
// objects displaced from those keys, if any. All keys become visible
// atomically with respect to readers, since the write lock is held for the
// whole update. Callers must hold the write lock and must hand over an
// object that does not alias caller-owned storage.
func (r *Registry) insertLocked(obj *Object) []*Object {
	r.initLocked()

	slot := len(r.arena)
	r.arena = append(r.arena, obj)

	var displaced []*Object
	stale := func(prev int, ok bool) {
		if ok && r.arena[prev] != obj {
			displaced = append(displaced, r.arena[prev])
		}
	}

	if len(obj.Oid) > 0 {
		prev, ok := r.byOid[string(obj.Oid)]
		stale(prev, ok)
		r.byOid[string(obj.Oid)] = slot
	}
	if obj.SN != "" {
		prev, ok := r.bySN[obj.SN]
		stale(prev, ok)
		r.bySN[obj.SN] = slot
	}
	if obj.LN != "" {
		prev, ok := r.byLN[obj.LN]
		stale(prev, ok)
		r.byLN[obj.LN] = slot
	}
	prev, ok := r.byNid[obj.Nid]
	stale(prev, ok)
	r.byNid[obj.Nid] = slot

	return displaced
}

// AddObject registers a copy of obj under every key it carries and returns
// its NID. The copy takes independent storage, so the caller keeps
// ownership of the passed object. Most callers want Create instead, which
// allocates the NID and enforces uniqueness; AddObject shadows existing
// entries without complaint.
func (r *Registry) AddObject(obj *Object) (int, error) {
	if obj == nil || (len(obj.Oid) == 0 && obj.SN == "" && obj.LN == "") {
		return NidUndef, ErrInvalidArgument
	}

	dup := obj.clone()
	if dup.Nid == NidUndef {
		dup.Nid = r.NewNid(1)
	}

	r.mu.Lock()
	r.insertLocked(dup)
	r.mu.Unlock()

	return dup.Nid, nil
}

func (r *Registry) lookupOid(data []byte) *Object {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if slot, ok := r.byOid[string(data)]; ok {
		return r.arena[slot]
	}

	return nil
}

func (r *Registry) lookupSN(sn string) *Object {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if slot, ok := r.bySN[sn]; ok {
		return r.arena[slot]
	}

	return nil
}

func (r *Registry) lookupLN(ln string) *Object {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if slot, ok := r.byLN[ln]; ok {
		return r.arena[slot]
	}

	return nil
}

func (r *Registry) lookupNid(nid int) *Object {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if slot, ok := r.byNid[nid]; ok {
		return r.arena[slot]
	}

	return nil
}

// Cleanup releases every runtime-registered object and empties the index.
// Each object is released exactly once however many index entries point at
// it, because the arena holds it in a single slot. Released objects revert
// to the undefined NID.
//
// Cleanup must not run concurrently with any other registry operation;
// callers guarantee exclusivity externally. The registry is empty but
// usable again afterwards.
func (r *Registry) Cleanup() {
	r.mu.Lock()
	defer r.mu.Unlock()

	entries := len(r.byOid) + len(r.bySN) + len(r.byLN) + len(r.byNid)

	for _, obj := range r.arena {
		if r.releasedObject != nil {
			r.releasedObject(obj)
		}
		obj.Nid = NidUndef
	}
	for i := 0; i < entries; i++ {
		if r.releasedEntry != nil {
			r.releasedEntry()
		}
	}

	r.byOid = nil
	r.bySN = nil
	r.byLN = nil
	r.byNid = nil
	r.arena = nil
}

// Cleanup releases all objects registered in the default registry.
func Cleanup() {
	Default().Cleanup()
}
