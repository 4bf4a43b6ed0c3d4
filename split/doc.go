// SPDX-License-Identifier: MIT

// Package split partitions a feature table into reproducible train and test
// subsets, optionally separating a target column.
//
// The package offers the following key components:
//
//   - Splitter: Configure (typed Params) or ConfigureBag (dynamic Bag), then
//     Validate and Split. Absent inputs keep their previous values.
//   - Size: a tagged union: Fraction(f) in [0,1] or Count(n) in [0,samples].
//     When only one of test/train is given, the other is its complement; when
//     both are given they must share a kind and add up to 1 or to the sample
//     count; when neither is given the Sizer decides (HeuristicSizer: 0.2
//     without a target, 1/√features with one).
//   - Result: XTrain/XTest/YTrain/YTest with a target, Train/Test without.
//     Every block is relabelled 0..len-1.
//   - Bag and Apply: the stage contract over string keys X, y, test_size,
//     train_size, random_state in; X_train, X_test, y_train, y_test (or
//     train, test) out.
//   - LoadConfig: sizes and seed from YAML and LVPREP_SPLIT_* variables.
//
// Algorithm:
//
//	joined  = X ⊕ y                       (column-wise, target last)
//	perm    = rand.New(rand.NewSource(random_state)).Perm(n)
//	shuffle = joined[perm], relabelled 0..n-1
//	cut     = ⌊test·n⌋ (fraction) or test (count)
//	test    = shuffle[0:cut], train = shuffle[cut:n]
//
// Guarantees:
//
//   - Fail-fast: all validation happens before shuffling; errors are the
//     sentinels in errors.go, matched with errors.Is.
//   - Determinism: the same inputs and random_state always give the same
//     permutation and partition. Default random_state is 69.
//   - Coverage: train and test are disjoint and together hold every row.
//
// A Splitter is not safe for concurrent use, and Apply mutates its Bag.
package split
