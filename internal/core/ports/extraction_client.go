package ports

import (
	"context"

	"workshop/internal/core/domain/model/artifact"
)

// ExtractionClient is the outbound contract against the PDF-extraction
// service. Each method maps to one extraction endpoint and returns the rows
// extracted for the referenced artifact, or an empty slice when the artifact
// does not expose that collection.
//
// The classifier treats any error from these calls as an empty collection;
// implementations should still return transport errors faithfully so call
// sites can decide.
type ExtractionClient interface {
	// NestingResults fetches the ranked result blocks of a nesting artifact.
	NestingResults(ctx context.Context, ref string) ([]artifact.ResultBlock, error)

	// NestingPlateInfo fetches the plate-info rows of a nesting artifact.
	NestingPlateInfo(ctx context.Context, ref string) ([]artifact.Row, error)

	// NestingPartInfo fetches the part-info rows of a nesting artifact.
	NestingPartInfo(ctx context.Context, ref string) ([]artifact.Row, error)

	// StandardSubnest fetches the subnest rows of a standard artifact.
	StandardSubnest(ctx context.Context, ref string) ([]artifact.Row, error)

	// StandardParts fetches the parts rows of a standard artifact.
	StandardParts(ctx context.Context, ref string) ([]artifact.Row, error)

	// StandardMaterial fetches the material rows of a standard artifact.
	StandardMaterial(ctx context.Context, ref string) ([]artifact.Row, error)
}
