package fixtures

import "strconv"

// IDFn generates an item identifier from its zero-based index within a
// generated group. It must be pure and deterministic: the same idx
// always yields the same string.
type IDFn func(idx int) string

// PrefixedIDFn returns an IDFn that concatenates prefix with the decimal
// index, e.g. PrefixedIDFn("sinA")(3) == "sinA-3".
func PrefixedIDFn(prefix string) IDFn {
	return func(idx int) string {
		return prefix + "-" + strconv.Itoa(idx)
	}
}

// SequentialIDs returns n ids, ids[i] == fn(i), for labelling a generated
// group of sequences.
func SequentialIDs(n int, fn IDFn) []string {
	out := make([]string, n)
	for i := 0; i < n; i++ {
		out[i] = fn(i)
	}
	return out
}
