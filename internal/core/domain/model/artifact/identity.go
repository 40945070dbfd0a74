package artifact

import (
	"fmt"
	"strconv"
)

// Row identities are the stable string keys used to track a row's selection
// state across renders and persistence round-trips.
//
// For flat collections where the natural key fields distinguish every row
// (general/subnest, plate-info, part-info, material) the identity is a
// composite of those fields, so collisions are impossible by construction.
// For parts collections the natural key (rowNo) may repeat; identity falls
// back to the positional index for duplicated keys only. Positional
// identities are stable only as long as the underlying collection's order
// and contents do not change between extractions: identifiers saved against
// one load are not guaranteed valid after the rows are re-fetched.

// CompositeIdentity derives the identity of a row whose natural key fields
// (material, size, sequence number) distinguish it from every other row in
// its collection.
func CompositeIdentity(row Row) string {
	return fmt.Sprintf("%s|%s|%d", row.Material, row.Size, row.RowNo)
}

// PartsIdentities derives identities for a parts collection where rowNo may
// repeat. A rowNo that occurs once yields "{rowNo}"; a repeated rowNo yields
// "{rowNo}-{index}" so every physical row stays individually addressable.
//
// The result is a pure function of the input slice: re-running over the same
// collection yields identical identities.
func PartsIdentities(rows []Row) []string {
	occurrences := make(map[int]int, len(rows))
	for _, row := range rows {
		occurrences[row.RowNo]++
	}

	ids := make([]string, len(rows))
	for i, row := range rows {
		if occurrences[row.RowNo] > 1 {
			ids[i] = fmt.Sprintf("%d-%d", row.RowNo, i)
		} else {
			ids[i] = strconv.Itoa(row.RowNo)
		}
	}
	return ids
}

// NestedPartIdentities derives identities for the part list nested inside one
// result block. The owning resultNo is incorporated so identical parts in
// different results do not collide; within the block the same duplicate rule
// as PartsIdentities applies.
func NestedPartIdentities(resultNo int, parts []PartEntry) []string {
	occurrences := make(map[int]int, len(parts))
	for _, part := range parts {
		occurrences[part.RowNo]++
	}

	ids := make([]string, len(parts))
	for i, part := range parts {
		if occurrences[part.RowNo] > 1 {
			ids[i] = fmt.Sprintf("%d:%d-%d", resultNo, part.RowNo, i)
		} else {
			ids[i] = fmt.Sprintf("%d:%d", resultNo, part.RowNo)
		}
	}
	return ids
}

// ResultIdentity derives the identity of a result block row on the results
// tab. ResultNo is unique within one artifact by construction.
func ResultIdentity(block ResultBlock) string {
	return strconv.Itoa(block.ResultNo)
}

// VisibleIdentities returns the identities of the rows visible on the given
// tab of an artifact, the scope of bulk select/clear operations. For the
// results tab of a Nesting artifact the expanded part list of activeResultNo
// is included alongside the result rows; pass 0 to leave every block
// collapsed.
func VisibleIdentities(a Artifact, tab Tab, activeResultNo int) []string {
	switch typed := a.(type) {
	case Standard:
		switch tab {
		case TabSubnest:
			return compositeIdentities(typed.SubnestRows)
		case TabParts:
			return PartsIdentities(typed.PartsRows)
		case TabMaterial:
			return compositeIdentities(typed.MaterialRows)
		}
	case Nesting:
		switch tab {
		case TabResults:
			ids := make([]string, 0, len(typed.ResultBlocks))
			for _, block := range typed.ResultBlocks {
				ids = append(ids, ResultIdentity(block))
			}
			if block, ok := typed.ResultByNo(activeResultNo); ok {
				ids = append(ids, NestedPartIdentities(block.ResultNo, block.Parts)...)
			}
			return ids
		case TabPlateInfo:
			return compositeIdentities(typed.PlateInfoRows)
		case TabPartInfo:
			return compositeIdentities(typed.PartInfoRows)
		}
	}
	return nil
}

func compositeIdentities(rows []Row) []string {
	ids := make([]string, len(rows))
	for i, row := range rows {
		ids[i] = CompositeIdentity(row)
	}
	return ids
}
