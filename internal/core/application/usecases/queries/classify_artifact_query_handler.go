package queries

import (
	"context"
	"sync"

	"workshop/internal/core/domain/model/artifact"
	"workshop/internal/core/ports"
)

// ClassifyArtifactQueryHandler classifies an uploaded PDF artifact as
// Standard or Nesting by probing the extraction endpoints.
//
// The three nesting probes are issued concurrently. A non-empty results
// collection classifies the artifact as Nesting; an empty one (or any probe
// failure) falls back to the three standard extractions and a Standard
// classification. This is a one-shot, non-retrying classification: a
// transient failure of the nesting probe silently produces a Standard
// classification even when the artifact is actually a Nesting artifact.
// Individual fetch failures are treated as empty collections, never as
// blocking errors, so the view renders with whatever succeeded.
type ClassifyArtifactQueryHandler struct {
	client ports.ExtractionClient
}

// NewClassifyArtifactQueryHandler creates a handler for artifact classification.
// Requires an ExtractionClient for the extraction service probes.
func NewClassifyArtifactQueryHandler(client ports.ExtractionClient) ClassifyArtifactQueryHandler {
	return ClassifyArtifactQueryHandler{client: client}
}

// Handle executes the classification.
func (h ClassifyArtifactQueryHandler) Handle(
	ctx context.Context,
	query ClassifyArtifactQuery,
) (ClassifyArtifactQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ClassifyArtifactQueryResponse{}, err
	}

	ref := query.Ref()

	var (
		wg        sync.WaitGroup
		results   []artifact.ResultBlock
		plateInfo []artifact.Row
		partInfo  []artifact.Row
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		if blocks, err := h.client.NestingResults(ctx, ref); err == nil {
			results = blocks
		}
	}()
	go func() {
		defer wg.Done()
		if rows, err := h.client.NestingPlateInfo(ctx, ref); err == nil {
			plateInfo = rows
		}
	}()
	go func() {
		defer wg.Done()
		if rows, err := h.client.NestingPartInfo(ctx, ref); err == nil {
			partInfo = rows
		}
	}()
	wg.Wait()

	if len(results) > 0 {
		nesting := artifact.Nesting{
			ResultBlocks:  results,
			PlateInfoRows: plateInfo,
			PartInfoRows:  partInfo,
		}
		return ClassifyArtifactQueryResponse{
			Artifact:       nesting,
			ActiveTab:      nesting.DefaultTab(),
			ActiveResultNo: nesting.ActiveResultNo(),
		}, nil
	}

	var (
		subnest  []artifact.Row
		parts    []artifact.Row
		material []artifact.Row
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		if rows, err := h.client.StandardSubnest(ctx, ref); err == nil {
			subnest = rows
		}
	}()
	go func() {
		defer wg.Done()
		if rows, err := h.client.StandardParts(ctx, ref); err == nil {
			parts = rows
		}
	}()
	go func() {
		defer wg.Done()
		if rows, err := h.client.StandardMaterial(ctx, ref); err == nil {
			material = rows
		}
	}()
	wg.Wait()

	standard := artifact.Standard{
		SubnestRows:  subnest,
		PartsRows:    parts,
		MaterialRows: material,
	}
	return ClassifyArtifactQueryResponse{
		Artifact:  standard,
		ActiveTab: standard.DefaultTab(),
	}, nil
}
