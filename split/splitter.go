// SPDX-License-Identifier: MIT

// Package split - the train/test Splitter.
//
// Purpose:
//   - Resolve test/train sizes from whatever subset the caller provided.
//   - Validate inputs before touching any data (fail-fast, no partial results).
//   - Shuffle rows with a seeded math/rand source and cut the shuffled table
//     into a leading test block and a trailing train block.
//   - Optionally separate a named target column from each block.
//
// Determinism:
//   - The permutation is rand.New(rand.NewSource(random_state)).Perm(n);
//     seeded math/rand sources are stable across Go releases, so identical
//     inputs and seed give identical partitions.
//
// Complexity quicksheet:
//   - Validate: O(1); Split: O(n*c) time and memory (join + gather + slices).

package split

import (
	"fmt"
	"math"
	"math/rand"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvprep/frame"
)

// Params is the typed request. Nil pointers and unset Sizes mean
// "not provided" and leave the Splitter's current value in place.
type Params struct {
	X           *frame.Frame  // feature table, required before Split
	Y           *frame.Series // optional target, row-aligned with X
	TestSize    Size
	TrainSize   Size
	RandomState *int64 // nil keeps the current seed (default 69)
}

// Seed returns a pointer to v, for Params.RandomState literals.
func Seed(v int64) *int64 { return &v }

// Result is the typed response. With a target, XTrain/XTest/YTrain/YTest are
// set; without one, Train/Test are. Every block is labelled 0..len-1.
type Result struct {
	XTrain, XTest *frame.Frame
	YTrain, YTest *frame.Series
	Train, Test   *frame.Frame

	TestSize, TrainSize Size  // resolved sizes actually used
	RandomState         int64 // seed actually used
	Permutation         []int // shuffled order of the original row positions
}

// Supervised reports whether the feature/target outputs are populated.
func (r *Result) Supervised() bool { return r.YTrain != nil }

// Splitter holds the inputs of one split between Configure and Split.
// It is not safe for concurrent use.
type Splitter struct {
	cfg config

	x                   *frame.Frame
	y                   *frame.Series
	testSize, trainSize Size // as provided by the caller
	randomState         int64

	// filled by Validate
	resolvedTest, resolvedTrain Size
}

// New returns a Splitter with no inputs and the default seed.
func New(opts ...Option) *Splitter {
	return &Splitter{
		cfg:         newConfig(opts...),
		randomState: DefaultRandomState,
	}
}

// Configure overwrites every provided field of p; absent fields keep their
// previous (or default) values.
func (s *Splitter) Configure(p Params) {
	if p.X != nil {
		s.x = p.X
	}
	if p.Y != nil {
		s.y = p.Y
	}
	if p.TestSize.IsSet() {
		s.testSize = p.TestSize
	}
	if p.TrainSize.IsSet() {
		s.trainSize = p.TrainSize
	}
	if p.RandomState != nil {
		s.randomState = *p.RandomState
	}
}

// Sizes returns the sizes resolved by the last successful Validate.
func (s *Splitter) Sizes() (test, train Size) { return s.resolvedTest, s.resolvedTrain }

// Validate checks the configured inputs and resolves both sizes.
//
// Implementation:
//   - Stage 1: X present (ErrMissingInput).
//   - Stage 2: y, when present, has X's sample count and a name that is not
//     already a feature column (ErrShapeMismatch).
//   - Stage 3: sizes. Both given: same kind (ErrTypeMismatch), in range and
//     adding up to 1 or n (ErrValueRange); one given: in range, the other is
//     its complement; none: the Sizer's fraction and its complement.
//
// Behavior highlights:
//   - The caller's sizes are never overwritten, so a later Configure that
//     provides only one size is resolved afresh.
//
// Complexity:
//   - Time O(1).
func (s *Splitter) Validate() error {
	err := s.validate()
	if err != nil {
		s.cfg.logger.Debug("split rejected", zap.Error(err))
		return err
	}

	return nil
}

func (s *Splitter) validate() error {
	s.resolvedTest, s.resolvedTrain = Size{}, Size{}

	if s.x == nil {
		return fieldErrorf("X", ErrMissingInput, "feature table is required")
	}
	n := frame.NumSamples(s.x)

	if s.y != nil {
		if m := frame.NumSamples(s.y); m != n {
			return fieldErrorf("y", ErrShapeMismatch, "target has %d samples, features have %d", m, n)
		}
		if s.y.Name() != "" && s.x.HasColumn(s.y.Name()) {
			return fieldErrorf("y", ErrShapeMismatch, "target name %q is already a feature column", s.y.Name())
		}
	}

	test, train, err := s.resolveSizes(n)
	if err != nil {
		return err
	}
	s.resolvedTest, s.resolvedTrain = test, train

	return nil
}

// resolveSizes applies the size rules to the configured sizes.
func (s *Splitter) resolveSizes(n int) (test, train Size, err error) {
	test, train = s.testSize, s.trainSize

	switch {
	case test.IsSet() && train.IsSet():
		if test.Kind() != train.Kind() {
			return Size{}, Size{}, fieldErrorf("test_size/train_size", ErrTypeMismatch,
				"test_size is a %s, train_size is a %s", test.Kind(), train.Kind())
		}
		if err = checkRange("test_size", test, n); err != nil {
			return Size{}, Size{}, err
		}
		if err = checkRange("train_size", train, n); err != nil {
			return Size{}, Size{}, err
		}
		if err = s.checkSum(test, train, n); err != nil {
			return Size{}, Size{}, err
		}

	case test.IsSet():
		if err = checkRange("test_size", test, n); err != nil {
			return Size{}, Size{}, err
		}
		train = test.complement(n)

	case train.IsSet():
		if err = checkRange("train_size", train, n); err != nil {
			return Size{}, Size{}, err
		}
		test = train.complement(n)

	default:
		f := s.cfg.sizer(s.x.NumCols(), s.y != nil)
		test = Fraction(f)
		if !test.inRange(n) {
			return Size{}, Size{}, fieldErrorf("test_size", ErrValueRange,
				"default for %d feature columns is %v, want [0,1]", s.x.NumCols(), f)
		}
		train = test.complement(n)
	}

	return test, train, nil
}

// checkRange rejects sizes outside [0,1] or [0,n].
func checkRange(field string, sz Size, n int) error {
	if sz.inRange(n) {
		return nil
	}
	if sz.Kind() == KindFraction {
		return fieldErrorf(field, ErrValueRange, "%s is not in [0, 1]", sz)
	}

	return fieldErrorf(field, ErrValueRange, "%s is not in [0, %d]", sz, n)
}

// checkSum enforces test+train == 1 (within eps) or == n.
func (s *Splitter) checkSum(test, train Size, n int) error {
	if f, ok := test.Fraction(); ok {
		g, _ := train.Fraction()
		if math.Abs(f+g-1) > s.cfg.eps {
			return fieldErrorf("test_size/train_size", ErrValueRange, "%s + %s should be equal to 1", test, train)
		}
		return nil
	}

	c, _ := test.Count()
	d, _ := train.Count()
	if c+d != uint64(n) {
		return fieldErrorf("test_size/train_size", ErrValueRange,
			"%s + %s should be equal to the number of samples %d", test, train, n)
	}

	return nil
}

// Split validates, shuffles and partitions.
//
// Implementation:
//   - Stage 1: Validate; an unnamed target fails with ErrMissingName.
//   - Stage 2: join X and y column-wise (y last) when a target is present.
//   - Stage 3: permute rows with the seeded source and reset labels.
//   - Stage 4: rows [0,cut) form the test block, [cut,n) the train block.
//   - Stage 5: with a target, split each block into features and target.
//
// Errors:
//   - ErrMissingInput, ErrShapeMismatch, ErrTypeMismatch, ErrValueRange,
//     ErrMissingName. Nothing is returned alongside an error.
//
// Complexity:
//   - Time O(n*c), Space O(n*c).
func (s *Splitter) Split() (*Result, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	supervised := s.y != nil
	if supervised && s.y.Name() == "" {
		err := fieldErrorf("y", ErrMissingName, "target column needs a name to be separated")
		s.cfg.logger.Debug("split rejected", zap.Error(err))
		return nil, err
	}

	n := frame.NumSamples(s.x)
	test, train := s.resolvedTest, s.resolvedTrain
	cut := test.cut(n)

	s.cfg.logger.Debug("split plan",
		zap.Int("samples", n),
		zap.Int("features", s.x.NumCols()),
		zap.Bool("supervised", supervised),
		zap.Stringer("kind", test.Kind()),
		zap.Stringer("test_size", test),
		zap.Stringer("train_size", train),
		zap.Int64("random_state", s.randomState),
		zap.Int("test_rows", cut),
		zap.Int("train_rows", n-cut),
	)

	joined := s.x
	if supervised {
		var err error
		if joined, err = s.x.Join(s.y); err != nil {
			return nil, fmt.Errorf("split: join target: %w", err)
		}
	}

	rng := rand.New(rand.NewSource(s.randomState))
	perm := rng.Perm(n)
	shuffled, err := joined.Take(perm)
	if err != nil {
		return nil, fmt.Errorf("split: shuffle: %w", err)
	}
	shuffled = shuffled.ResetIndex()

	testBlock, err := shuffled.Slice(0, cut)
	if err != nil {
		return nil, fmt.Errorf("split: test block: %w", err)
	}
	trainBlock, err := shuffled.Slice(cut, n)
	if err != nil {
		return nil, fmt.Errorf("split: train block: %w", err)
	}
	testBlock, trainBlock = testBlock.ResetIndex(), trainBlock.ResetIndex()

	res := &Result{
		TestSize:    test,
		TrainSize:   train,
		RandomState: s.randomState,
		Permutation: perm,
	}
	if !supervised {
		res.Train, res.Test = trainBlock, testBlock
		return res, nil
	}

	name := s.y.Name()
	if res.XTrain, res.YTrain, err = separate(trainBlock, name); err != nil {
		return nil, err
	}
	if res.XTest, res.YTest, err = separate(testBlock, name); err != nil {
		return nil, err
	}

	return res, nil
}

// separate splits a joined block into features (all but name) and the target.
func separate(block *frame.Frame, name string) (*frame.Frame, *frame.Series, error) {
	y, err := block.Column(name)
	if err != nil {
		return nil, nil, fmt.Errorf("split: target column: %w", err)
	}
	x, err := block.Drop(name)
	if err != nil {
		return nil, nil, fmt.Errorf("split: feature columns: %w", err)
	}

	return x, y, nil
}

// TrainTestSplit is the one-shot form: New(opts...), Configure(p), Split().
func TrainTestSplit(p Params, opts ...Option) (*Result, error) {
	s := New(opts...)
	s.Configure(p)

	return s.Split()
}
