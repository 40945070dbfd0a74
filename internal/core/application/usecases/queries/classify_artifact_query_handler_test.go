package queries_test

import (
	"context"
	"errors"
	"testing"

	"workshop/internal/core/application/usecases/queries"
	"workshop/internal/core/domain/model/artifact"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockExtractionClient struct{ mock.Mock }

func (m *MockExtractionClient) NestingResults(ctx context.Context, ref string) ([]artifact.ResultBlock, error) {
	args := m.Called(ctx, ref)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]artifact.ResultBlock), args.Error(1)
}

func (m *MockExtractionClient) NestingPlateInfo(ctx context.Context, ref string) ([]artifact.Row, error) {
	args := m.Called(ctx, ref)
	return rowsFrom(args.Get(0)), args.Error(1)
}

func (m *MockExtractionClient) NestingPartInfo(ctx context.Context, ref string) ([]artifact.Row, error) {
	args := m.Called(ctx, ref)
	return rowsFrom(args.Get(0)), args.Error(1)
}

func (m *MockExtractionClient) StandardSubnest(ctx context.Context, ref string) ([]artifact.Row, error) {
	args := m.Called(ctx, ref)
	return rowsFrom(args.Get(0)), args.Error(1)
}

func (m *MockExtractionClient) StandardParts(ctx context.Context, ref string) ([]artifact.Row, error) {
	args := m.Called(ctx, ref)
	return rowsFrom(args.Get(0)), args.Error(1)
}

func (m *MockExtractionClient) StandardMaterial(ctx context.Context, ref string) ([]artifact.Row, error) {
	args := m.Called(ctx, ref)
	return rowsFrom(args.Get(0)), args.Error(1)
}

func rowsFrom(value any) []artifact.Row {
	if value == nil {
		return nil
	}
	return value.([]artifact.Row)
}

func TestNewClassifyArtifactQuery(t *testing.T) {
	t.Run("should create query with a ref", func(t *testing.T) {
		query, err := queries.NewClassifyArtifactQuery("orders/42/design.pdf")

		require.NoError(t, err)
		assert.Equal(t, "orders/42/design.pdf", query.Ref())
		require.NoError(t, query.Validate())
	})

	t.Run("should reject empty ref", func(t *testing.T) {
		_, err := queries.NewClassifyArtifactQuery("")

		require.ErrorIs(t, err, queries.ErrArtifactRefIsRequired)
	})

	t.Run("should reject query not created via constructor", func(t *testing.T) {
		query := queries.ClassifyArtifactQuery{}

		assert.ErrorIs(t, query.Validate(), queries.ErrClassifyArtifactQueryIsNotConstructed)
	})
}

func TestClassifyArtifactQueryHandler_Handle(t *testing.T) {
	t.Run("should classify as Nesting when results are present", func(t *testing.T) {
		client := new(MockExtractionClient)
		client.On("NestingResults", mock.Anything, "a.pdf").
			Return([]artifact.ResultBlock{{ResultNo: 2}, {ResultNo: 1}}, nil).Once()
		client.On("NestingPlateInfo", mock.Anything, "a.pdf").
			Return([]artifact.Row{{RowNo: 1}}, nil).Once()
		client.On("NestingPartInfo", mock.Anything, "a.pdf").
			Return([]artifact.Row{}, nil).Once()

		query, err := queries.NewClassifyArtifactQuery("a.pdf")
		require.NoError(t, err)

		h := queries.NewClassifyArtifactQueryHandler(client)
		response, err := h.Handle(t.Context(), query)

		require.NoError(t, err)
		nesting, ok := response.Artifact.(artifact.Nesting)
		require.True(t, ok)
		assert.Len(t, nesting.ResultBlocks, 2)
		assert.Equal(t, artifact.TabResults, response.ActiveTab)
		assert.Equal(t, 1, response.ActiveResultNo, "lowest resultNo activates first")
		client.AssertExpectations(t)
		client.AssertNotCalled(t, "StandardSubnest", mock.Anything, mock.Anything)
	})

	t.Run("should fall back to Standard when results are empty", func(t *testing.T) {
		client := new(MockExtractionClient)
		client.On("NestingResults", mock.Anything, "b.pdf").Return([]artifact.ResultBlock{}, nil).Once()
		client.On("NestingPlateInfo", mock.Anything, "b.pdf").Return([]artifact.Row{}, nil).Once()
		client.On("NestingPartInfo", mock.Anything, "b.pdf").Return([]artifact.Row{}, nil).Once()
		client.On("StandardSubnest", mock.Anything, "b.pdf").
			Return([]artifact.Row{{RowNo: 1, Material: "SUS304"}}, nil).Once()
		client.On("StandardParts", mock.Anything, "b.pdf").Return([]artifact.Row{{RowNo: 5}}, nil).Once()
		client.On("StandardMaterial", mock.Anything, "b.pdf").Return([]artifact.Row{}, nil).Once()

		query, err := queries.NewClassifyArtifactQuery("b.pdf")
		require.NoError(t, err)

		h := queries.NewClassifyArtifactQueryHandler(client)
		response, err := h.Handle(t.Context(), query)

		require.NoError(t, err)
		standard, ok := response.Artifact.(artifact.Standard)
		require.True(t, ok)
		assert.Len(t, standard.SubnestRows, 1)
		assert.Equal(t, artifact.TabSubnest, response.ActiveTab)
		assert.Equal(t, 0, response.ActiveResultNo)
	})

	t.Run("should classify as Standard when the nesting probe fails", func(t *testing.T) {
		client := new(MockExtractionClient)
		client.On("NestingResults", mock.Anything, "c.pdf").
			Return(nil, errors.New("extraction service returned 502")).Once()
		client.On("NestingPlateInfo", mock.Anything, "c.pdf").Return(nil, errors.New("502")).Once()
		client.On("NestingPartInfo", mock.Anything, "c.pdf").Return(nil, errors.New("502")).Once()
		client.On("StandardSubnest", mock.Anything, "c.pdf").Return([]artifact.Row{{RowNo: 1}}, nil).Once()
		client.On("StandardParts", mock.Anything, "c.pdf").Return([]artifact.Row{}, nil).Once()
		client.On("StandardMaterial", mock.Anything, "c.pdf").Return([]artifact.Row{}, nil).Once()

		query, err := queries.NewClassifyArtifactQuery("c.pdf")
		require.NoError(t, err)

		h := queries.NewClassifyArtifactQueryHandler(client)
		response, err := h.Handle(t.Context(), query)

		require.NoError(t, err)
		assert.Equal(t, artifact.KindStandard, response.Artifact.Kind())
	})

	t.Run("should render with whatever standard fetches succeeded", func(t *testing.T) {
		client := new(MockExtractionClient)
		client.On("NestingResults", mock.Anything, "d.pdf").Return([]artifact.ResultBlock{}, nil).Once()
		client.On("NestingPlateInfo", mock.Anything, "d.pdf").Return([]artifact.Row{}, nil).Once()
		client.On("NestingPartInfo", mock.Anything, "d.pdf").Return([]artifact.Row{}, nil).Once()
		client.On("StandardSubnest", mock.Anything, "d.pdf").Return([]artifact.Row{{RowNo: 1}}, nil).Once()
		client.On("StandardParts", mock.Anything, "d.pdf").Return(nil, errors.New("timeout")).Once()
		client.On("StandardMaterial", mock.Anything, "d.pdf").Return([]artifact.Row{{RowNo: 2}}, nil).Once()

		query, err := queries.NewClassifyArtifactQuery("d.pdf")
		require.NoError(t, err)

		h := queries.NewClassifyArtifactQueryHandler(client)
		response, err := h.Handle(t.Context(), query)

		require.NoError(t, err)
		standard, ok := response.Artifact.(artifact.Standard)
		require.True(t, ok)
		assert.Len(t, standard.SubnestRows, 1)
		assert.Empty(t, standard.PartsRows, "failed fetch renders as an empty collection")
		assert.Len(t, standard.MaterialRows, 1)
	})

	t.Run("should reject query not created via constructor", func(t *testing.T) {
		client := new(MockExtractionClient)
		h := queries.NewClassifyArtifactQueryHandler(client)

		_, err := h.Handle(t.Context(), queries.ClassifyArtifactQuery{})

		require.Error(t, err)
		client.AssertNotCalled(t, "NestingResults", mock.Anything, mock.Anything)
	})
}
