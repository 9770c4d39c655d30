// Package preprocessing turns categorical table columns into numeric ones
// and transforms the response variable.
//
// Four encoding strategies are available:
//
//   - None drops the categorical information and leaves an all-zero column.
//   - OneHot replaces a column with k-1 indicator columns named
//     "<column>_<category>". The last category in sorted order is the
//     reference level.
//   - MeanTarget and MedianTarget replace each category with the mean or
//     median of the response over the rows in that category.
//
// Categories are always sorted lexicographically, so the same data yields
// the same columns on every run.
//
// Encoding learned on a training partition is captured in an
// EncodingState and replayed on held-out data with NewReplayEncoder, which
// never looks at the held-out response:
//
//	enc := preprocessing.NewCategoryEncoder(preprocessing.OneHot)
//	train, err := table.NewBuilder(table.WithEncoder(enc)).Build(header, trainRows)
//	replay := preprocessing.NewReplayEncoder(enc.State())
//	test, err := table.NewBuilder(table.WithEncoder(replay)).Build(header, testRows)
package preprocessing
