// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"

	"workshop/internal/core/domain/model/artifact"
	"workshop/internal/pkg/guard"
)

var (
	ErrClassifyArtifactQueryIsNotConstructed = errors.New(
		"ClassifyArtifactQuery must be created via NewClassifyArtifactQuery constructor",
	)
	ErrArtifactRefIsRequired = errors.New("artifact ref is required")
)

// ClassifyArtifactQuery determines the layout of an uploaded PDF artifact by
// probing the extraction service.
//
// Example:
//
//	query, err := NewClassifyArtifactQuery("orders/42/design.pdf")
//	if err != nil {
//	    return err
//	}
//	result, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to load PDF: %w", err)
//	}
//	switch a := result.Artifact.(type) {
//	case artifact.Nesting:
//	    // ranked result blocks
//	case artifact.Standard:
//	    // flat collections
//	}
type ClassifyArtifactQuery struct {
	ref string

	guard guard.ConstructorGuard
}

// NewClassifyArtifactQuery creates a classification query for the referenced
// artifact. The ref must not be empty.
func NewClassifyArtifactQuery(ref string) (ClassifyArtifactQuery, error) {
	if ref == "" {
		return ClassifyArtifactQuery{}, ErrArtifactRefIsRequired
	}

	return ClassifyArtifactQuery{
		ref:   ref,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrClassifyArtifactQueryIsNotConstructed if validation fails.
func (q ClassifyArtifactQuery) Validate() error {
	return q.guard.Validate(ErrClassifyArtifactQueryIsNotConstructed)
}

// Ref returns the artifact reference being classified.
func (q ClassifyArtifactQuery) Ref() string {
	return q.ref
}

// ClassifyArtifactQueryResponse carries the classified artifact together
// with the view defaults derived from its layout.
type ClassifyArtifactQueryResponse struct {
	// Artifact is the tagged union: artifact.Standard or artifact.Nesting.
	Artifact artifact.Artifact

	// ActiveTab is the sub-view that opens first for the layout.
	ActiveTab artifact.Tab

	// ActiveResultNo is the lowest resultNo present in a Nesting artifact,
	// zero for Standard artifacts.
	ActiveResultNo int
}
