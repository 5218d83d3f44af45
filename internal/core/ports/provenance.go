package ports

import (
	"context"

	"go.trai.ch/syncnm/internal/core/domain"
)

// ProvenanceSource describes where the working tree of a directory came from.
//
//go:generate mockgen -source=provenance.go -destination=mocks/mock_provenance.go -package=mocks
type ProvenanceSource interface {
	// Lookup returns the branch and commit of dir. It never fails; unknown fields are empty.
	Lookup(ctx context.Context, dir string) domain.Provenance
}
