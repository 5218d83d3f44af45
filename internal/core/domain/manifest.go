package domain

import (
	"bytes"
	"encoding/json"
)

// Dependencies maps a package name to its version specifier.
type Dependencies map[string]string

// Overrides maps a package name to either a version specifier or a nested
// override object, as npm allows. Nested maps also serialize with sorted keys.
type Overrides map[string]any

// Workspaces holds the workspace patterns of a root manifest.
// It accepts both the array form and the {"packages": [...]} object form.
type Workspaces []string

// UnmarshalJSON implements json.Unmarshaler.
func (w *Workspaces) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '{' {
		var obj struct {
			Packages []string `json:"packages"`
		}
		if err := json.Unmarshal(data, &obj); err != nil {
			return err
		}
		*w = obj.Packages
		return nil
	}
	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return err
	}
	*w = list
	return nil
}

// PackageJSON is the subset of a package.json manifest that affects the cache key.
type PackageJSON struct {
	Name                 *string      `json:"name,omitempty"`
	Version              *string      `json:"version,omitempty"`
	Private              *bool        `json:"private,omitempty"`
	PackageManager       *string      `json:"packageManager,omitempty"`
	Dependencies         Dependencies `json:"dependencies,omitempty"`
	DevDependencies      Dependencies `json:"devDependencies,omitempty"`
	PeerDependencies     Dependencies `json:"peerDependencies,omitempty"`
	OptionalDependencies Dependencies `json:"optionalDependencies,omitempty"`
	Overrides            Overrides    `json:"overrides,omitempty"`
	Workspaces           Workspaces   `json:"workspaces,omitempty"`
}

// IsPrivate reports whether the manifest declares "private": true.
func (p *PackageJSON) IsPrivate() bool {
	return p.Private != nil && *p.Private
}

// NameOrEmpty returns the declared name or "".
func (p *PackageJSON) NameOrEmpty() string {
	if p.Name == nil {
		return ""
	}
	return *p.Name
}

// VersionOrEmpty returns the declared version or "".
func (p *PackageJSON) VersionOrEmpty() string {
	if p.Version == nil {
		return ""
	}
	return *p.Version
}

// ManifestDependencies are the five dependency maps of a manifest.
// Keys serialize in sorted order.
type ManifestDependencies struct {
	Dependencies         Dependencies `json:"dependencies"`
	DevDependencies      Dependencies `json:"dev_dependencies"`
	PeerDependencies     Dependencies `json:"peer_dependencies"`
	OptionalDependencies Dependencies `json:"optional_dependencies"`
	Overrides            Overrides    `json:"overrides"`
}

// NewManifestDependencies extracts the dependency maps from a manifest.
// Missing maps become empty maps so absent and empty serialize identically.
func NewManifestDependencies(p *PackageJSON) ManifestDependencies {
	return ManifestDependencies{
		Dependencies:         orEmpty(p.Dependencies),
		DevDependencies:      orEmpty(p.DevDependencies),
		PeerDependencies:     orEmpty(p.PeerDependencies),
		OptionalDependencies: orEmpty(p.OptionalDependencies),
		Overrides:            overridesOrEmpty(p.Overrides),
	}
}

func orEmpty(d Dependencies) Dependencies {
	out := make(Dependencies, len(d))
	for k, v := range d {
		out[k] = v
	}
	return out
}

func overridesOrEmpty(o Overrides) Overrides {
	out := make(Overrides, len(o))
	for k, v := range o {
		out[k] = v
	}
	return out
}

// PnpmWorkspace is the pnpm-workspace.yaml document.
type PnpmWorkspace struct {
	Packages []string `yaml:"packages"`
}
