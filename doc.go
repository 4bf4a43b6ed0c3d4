// Package lvprep is a small in-memory toolkit for preparing tabular data
// before model training: named feature tables and a deterministic
// train/test splitter.
//
// Under the hood, everything is organized under three subpackages:
//
//	matrix/ — row-major float64 storage, gathers (Induced, SliceRows), HStack
//	frame/  — Frame (named columns, row labels) and Series (named target)
//	split/  — Splitter: size resolution, validation, seeded shuffle, partition
//
// Quick example:
//
//	x, _ := frame.New([]string{"a", "b"}, rows)
//	y, _ := frame.NewSeries("label", labels)
//	res, err := split.TrainTestSplit(split.Params{
//		X: x, Y: y,
//		TestSize:    split.Fraction(0.3),
//		RandomState: split.Seed(0),
//	})
//
//	go get github.com/katalvlaran/lvprep
package lvprep
