package fixtures

import "github.com/dtwclust/dtwclust/tsdata"

// Labelled pairs a group of dense sequences with deterministic ids
// derived from prefix, for assembly into a tsdata.Dataset.
type Labelled struct {
	Prefix string
	Seqs   [][]float64
}

// BuildDataset concatenates every group's sequences into a single
// tsdata.Dataset, ids generated as PrefixedIDFn(group.Prefix).
func BuildDataset(groups ...Labelled) tsdata.Dataset {
	var items []tsdata.Item
	for _, g := range groups {
		idFn := PrefixedIDFn(g.Prefix)
		for i, seq := range g.Seqs {
			items = append(items, tsdata.Item{
				ID:  idFn(i),
				Seq: tsdata.NewDense(seq),
			})
		}
	}
	return tsdata.NewDataset(items)
}
