// Package artifact models the machine-generated PDF artifacts attached to an
// order and the stable row identities used to track selections across them.
//
// An extracted artifact comes in one of two layouts: Standard (three flat row
// collections) or Nesting (ranked result blocks with nested part lists plus
// two auxiliary flat collections). The two layouts form a tagged union so
// downstream code is forced to handle both shapes.
package artifact

import "sort"

// Kind discriminates the two artifact layouts.
type Kind string

const (
	// KindStandard is the flat layout: subnest, parts and material collections.
	KindStandard Kind = "standard"

	// KindNesting is the hierarchical layout: ranked result blocks with
	// nested part lists, plus plate-info and part-info collections.
	KindNesting Kind = "nesting"
)

// Tab identifies one sub-view of an artifact. Bulk selection operations are
// scoped to the rows visible in the active tab, never the whole artifact.
type Tab string

const (
	TabSubnest   Tab = "subnest"
	TabParts     Tab = "parts"
	TabMaterial  Tab = "material"
	TabResults   Tab = "results"
	TabPlateInfo Tab = "plate-info"
	TabPartInfo  Tab = "part-info"
)

// Row is one flat row extracted from an artifact. The numeric fields inside
// the PDF (size, time, efficiency) are opaque to the workflow engine; only
// the natural key fields used for identity are modeled.
type Row struct {
	RowNo    int    `json:"rowNo"`
	Material string `json:"material"`
	Size     string `json:"size"`
}

// PartEntry is one nested part row inside a result block.
type PartEntry struct {
	RowNo int    `json:"rowNo"`
	Name  string `json:"name"`
	Qty   int    `json:"qty"`
}

// ResultBlock is one ranked nesting result. ResultNo is the join key across
// the result, plate and part collections within one artifact.
type ResultBlock struct {
	ResultNo        int         `json:"resultNo"`
	Material        string      `json:"material"`
	Thickness       float64     `json:"thickness"`
	PlateSize       string      `json:"plateSize"`
	PlanProcessTime float64     `json:"planProcessTime"`
	Parts           []PartEntry `json:"parts"`
}

// Artifact is the tagged union over the two extracted layouts.
type Artifact interface {
	// Kind returns the layout discriminator.
	Kind() Kind

	// DefaultTab returns the sub-view that opens first for this layout.
	DefaultTab() Tab
}

// Standard is the flat artifact layout.
type Standard struct {
	SubnestRows  []Row `json:"subnestRows"`
	PartsRows    []Row `json:"partsRows"`
	MaterialRows []Row `json:"materialRows"`
}

// Kind implements Artifact.
func (Standard) Kind() Kind { return KindStandard }

// DefaultTab implements Artifact. Standard artifacts open on the subnest view.
func (Standard) DefaultTab() Tab { return TabSubnest }

// Nesting is the hierarchical artifact layout.
type Nesting struct {
	ResultBlocks  []ResultBlock `json:"resultBlocks"`
	PlateInfoRows []Row         `json:"plateInfoRows"`
	PartInfoRows  []Row         `json:"partInfoRows"`
}

// Kind implements Artifact.
func (Nesting) Kind() Kind { return KindNesting }

// DefaultTab implements Artifact. Nesting artifacts open on the results view.
func (Nesting) DefaultTab() Tab { return TabResults }

// ActiveResultNo returns the lowest ResultNo present, the result block the
// view activates first. Returns 0 when the artifact has no result blocks.
func (n Nesting) ActiveResultNo() int {
	if len(n.ResultBlocks) == 0 {
		return 0
	}

	nos := make([]int, len(n.ResultBlocks))
	for i, block := range n.ResultBlocks {
		nos[i] = block.ResultNo
	}
	sort.Ints(nos)
	return nos[0]
}

// ResultByNo returns the result block with the given ResultNo.
func (n Nesting) ResultByNo(resultNo int) (ResultBlock, bool) {
	for _, block := range n.ResultBlocks {
		if block.ResultNo == resultNo {
			return block, true
		}
	}
	return ResultBlock{}, false
}
