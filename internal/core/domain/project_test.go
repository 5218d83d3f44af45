package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/syncnm/internal/core/domain"
)

func strPtr(s string) *string { return &s }

func sampleProject() *domain.Project {
	root := domain.PackageJSON{
		DevDependencies: domain.Dependencies{"typescript": "^5.3.3"},
		Overrides:       domain.Overrides{"foo": map[string]any{"bar": "1.0.0"}},
	}
	a := domain.PackageJSON{Dependencies: domain.Dependencies{"lodash": "^4.17.21"}}
	b := domain.PackageJSON{
		Name:         strPtr("@scope/b"),
		Version:      strPtr("1.0.0"),
		Dependencies: domain.Dependencies{"zod": "^3.0.0", "a": "*"},
	}
	return &domain.Project{
		BaseDir:  "/work/app",
		Kind:     domain.Npm,
		Manifest: root,
		Root:     domain.NewManifestDependencies(&root),
		Members: map[string]domain.WorkspaceMember{
			"a":        {Dir: "/work/app/packages/a", Manifest: a, Dependencies: domain.NewManifestDependencies(&a)},
			"@scope/b": {Dir: "/work/app/packages/b", Manifest: b, Dependencies: domain.NewManifestDependencies(&b)},
		},
	}
}

func TestProjectFingerprint_Canonical(t *testing.T) {
	got, err := sampleProject().Fingerprint().Canonical()
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, "fingerprint_canonical", got)
}

func TestProjectFingerprint_Hash(t *testing.T) {
	h, err := sampleProject().Fingerprint().Hash()
	require.NoError(t, err)
	assert.Equal(t, domain.Hash("yaf6g4ap7mhsk5j5dixpuxfduraqyjvv"), h)
}

func TestProjectFingerprint_IncidentalFormattingIgnored(t *testing.T) {
	compact := []byte(`{"devDependencies":{"typescript":"^5.3.3","eslint":"^8.0.0"},"name":"root"}`)
	spaced := []byte(`{
  "name": "root",
  "devDependencies": {
    "eslint": "^8.0.0",
    "typescript": "^5.3.3"
  }
}`)

	hashOf := func(raw []byte) domain.Hash {
		var pkg domain.PackageJSON
		require.NoError(t, json.Unmarshal(raw, &pkg))
		p := domain.Project{Root: domain.NewManifestDependencies(&pkg)}
		h, err := p.Fingerprint().Hash()
		require.NoError(t, err)
		return h
	}

	assert.Equal(t, hashOf(compact), hashOf(spaced))
}

func TestProjectFingerprint_Sensitivity(t *testing.T) {
	base, err := sampleProject().Fingerprint().Hash()
	require.NoError(t, err)

	tests := []struct {
		name   string
		mutate func(p *domain.Project)
	}{
		{
			name: "member dependency changed",
			mutate: func(p *domain.Project) {
				m := p.Members["a"]
				m.Dependencies.Dependencies = domain.Dependencies{"lodash": "^4.17.22"}
				p.Members["a"] = m
			},
		},
		{
			name: "member version changed",
			mutate: func(p *domain.Project) {
				m := p.Members["@scope/b"]
				m.Manifest.Version = strPtr("1.0.1")
				p.Members["@scope/b"] = m
			},
		},
		{
			name: "member removed",
			mutate: func(p *domain.Project) {
				delete(p.Members, "a")
			},
		},
		{
			name: "root dev dependency added",
			mutate: func(p *domain.Project) {
				p.Root.DevDependencies["vitest"] = "^1.0.0"
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := sampleProject()
			tt.mutate(p)
			h, err := p.Fingerprint().Hash()
			require.NoError(t, err)
			assert.NotEqual(t, base, h)
		})
	}
}

func TestProject_MemberNames(t *testing.T) {
	assert.Equal(t, []string{"@scope/b", "a"}, sampleProject().MemberNames())
}

func TestWorkspaces_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want domain.Workspaces
	}{
		{name: "array", raw: `{"workspaces":["packages/*","!packages/c"]}`, want: domain.Workspaces{"packages/*", "!packages/c"}},
		{name: "object", raw: `{"workspaces":{"packages":["apps/*"],"nohoist":["**/x"]}}`, want: domain.Workspaces{"apps/*"}},
		{name: "absent", raw: `{}`, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var pkg domain.PackageJSON
			require.NoError(t, json.Unmarshal([]byte(tt.raw), &pkg))
			assert.Equal(t, tt.want, pkg.Workspaces)
		})
	}
}

func TestPackageJSON_Accessors(t *testing.T) {
	var empty domain.PackageJSON
	assert.False(t, empty.IsPrivate())
	assert.Empty(t, empty.NameOrEmpty())
	assert.Empty(t, empty.VersionOrEmpty())

	yes := true
	pkg := domain.PackageJSON{Name: strPtr("x"), Version: strPtr("1.0.0"), Private: &yes}
	assert.True(t, pkg.IsPrivate())
	assert.Equal(t, "x", pkg.NameOrEmpty())
	assert.Equal(t, "1.0.0", pkg.VersionOrEmpty())
}
