package interfaces

import (
	"context"

	"github.com/pslmodels/pkgbld/pkg/domain/model"
)

// ReleaseUseCase defines the single entry operation of the orchestrator
type ReleaseUseCase interface {
	// Release builds and uploads conda packages for every planned Python
	// version and platform of the requested model release.
	Release(ctx context.Context, req *model.ReleaseRequest) error
}
