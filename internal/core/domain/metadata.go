package domain

// Provenance records where a cache entry came from.
type Provenance struct {
	Branch string `json:"branch"`
	Commit string `json:"commit"`
}

// MetadataEntry is the journal record of one project.
type MetadataEntry struct {
	CurrentHashKey *Hash               `json:"current_hash_key"`
	Caches         map[Hash]Provenance `json:"caches"`
}

// Current returns the recorded live key, if any.
func (e MetadataEntry) Current() (Hash, bool) {
	if e.CurrentHashKey == nil {
		return "", false
	}
	return *e.CurrentHashKey, true
}

// Metadata is the full journal keyed by project identity.
type Metadata map[DirKey]MetadataEntry

// Current returns the live key recorded for dir, if any.
func (m Metadata) Current(dir DirKey) (Hash, bool) {
	entry, ok := m[dir]
	if !ok {
		return "", false
	}
	return entry.Current()
}

// Record marks key as live for dir and adds it to the history.
func (m Metadata) Record(dir DirKey, key Hash, prov Provenance) {
	entry := m[dir]
	caches := make(map[Hash]Provenance, len(entry.Caches)+1)
	for k, v := range entry.Caches {
		caches[k] = v
	}
	caches[key] = prov
	current := key
	m[dir] = MetadataEntry{
		CurrentHashKey: &current,
		Caches:         caches,
	}
}

// Drop removes keys from the history of dir. The live key is never dropped.
func (m Metadata) Drop(dir DirKey, keys ...Hash) {
	entry, ok := m[dir]
	if !ok {
		return
	}
	current, hasCurrent := entry.Current()
	for _, k := range keys {
		if hasCurrent && k == current {
			continue
		}
		delete(entry.Caches, k)
	}
	m[dir] = entry
}

// Forget removes the record of dir entirely.
func (m Metadata) Forget(dir DirKey) {
	delete(m, dir)
}

// SetCurrent marks an already known key as live for dir, keeping its recorded provenance.
func (m Metadata) SetCurrent(dir DirKey, key Hash, fallback Provenance) {
	entry := m[dir]
	prov, ok := entry.Caches[key]
	if !ok {
		prov = fallback
	}
	m.Record(dir, key, prov)
}
