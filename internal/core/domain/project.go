package domain

import (
	"encoding/json"
	"sort"
)

// WorkspaceMember is a resolved sub-package of a project.
type WorkspaceMember struct {
	Dir          string
	Manifest     PackageJSON
	Dependencies ManifestDependencies
}

// Project is a root manifest together with its resolved workspace members.
type Project struct {
	BaseDir  string
	Kind     PackageManagerKind
	Manifest PackageJSON
	Root     ManifestDependencies
	// Members is keyed by resolved name, falling back to the member's path on collision.
	Members map[string]WorkspaceMember
}

// MemberNames returns the index keys of the members in sorted order.
func (p *Project) MemberNames() []string {
	names := make([]string, 0, len(p.Members))
	for name := range p.Members {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Fingerprint derives the order-independent dependency graph document of the project.
func (p *Project) Fingerprint() ProjectFingerprint {
	fp := ProjectFingerprint{
		Root:       p.Root,
		Workspaces: make(map[string]MemberFingerprint, len(p.Members)),
	}
	for key, m := range p.Members {
		fp.Workspaces[key] = MemberFingerprint{
			Name:         m.Manifest.NameOrEmpty(),
			Version:      m.Manifest.VersionOrEmpty(),
			Dependencies: m.Dependencies,
		}
	}
	return fp
}

// MemberFingerprint is the part of a workspace member that feeds the cache key.
type MemberFingerprint struct {
	Name         string
	Version      string
	Dependencies ManifestDependencies
}

// MarshalJSON encodes the member as a [name, version, dependencies] tuple.
func (m MemberFingerprint) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{m.Name, m.Version, m.Dependencies})
}

// ProjectFingerprint is the canonical dependency graph document.
type ProjectFingerprint struct {
	Root       ManifestDependencies         `json:"root"`
	Workspaces map[string]MemberFingerprint `json:"workspaces"`
}

// Canonical returns the compact, sorted-key JSON serialization of the fingerprint.
func (f ProjectFingerprint) Canonical() ([]byte, error) {
	if f.Workspaces == nil {
		f.Workspaces = map[string]MemberFingerprint{}
	}
	return json.Marshal(f)
}

// Hash returns the hash of the canonical serialization.
func (f ProjectFingerprint) Hash() (Hash, error) {
	b, err := f.Canonical()
	if err != nil {
		return "", err
	}
	return HashBytes(b), nil
}
