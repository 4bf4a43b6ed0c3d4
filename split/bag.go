// SPDX-License-Identifier: MIT

package split

import (
	"math"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvprep/frame"
)

// Bag is the key/value context a preprocessing stage reads its inputs from
// and writes its outputs into. Apply mutates the Bag it is given.
type Bag map[string]any

// Input keys.
const (
	KeyX           = "X"
	KeyY           = "y"
	KeyTestSize    = "test_size"
	KeyTrainSize   = "train_size"
	KeyRandomState = "random_state"
)

// Output keys.
const (
	KeyXTrain = "X_train"
	KeyXTest  = "X_test"
	KeyYTrain = "y_train"
	KeyYTest  = "y_test"
	KeyTrain  = "train"
	KeyTest   = "test"
)

// ConfigureBag is Configure for a Bag. Present keys overwrite, absent keys
// keep the previous value; a nil X or y clears it. Value kinds are checked
// here and nothing is applied unless every present key decodes:
//   - X must be a *frame.Frame, y a *frame.Series;
//   - sizes: floats are fractions, integers are counts (negative: ErrValueRange),
//     Size values pass through, nil clears;
//   - random_state must be an integer.
func (s *Splitter) ConfigureBag(b Bag) error {
	next := *s

	if v, ok := b[KeyX]; ok {
		x, err := decodeFrame(v)
		if err != nil {
			return err
		}
		next.x = x
	}
	if v, ok := b[KeyY]; ok {
		y, err := decodeSeries(v)
		if err != nil {
			return err
		}
		next.y = y
	}
	if v, ok := b[KeyTestSize]; ok {
		sz, err := decodeSize(KeyTestSize, v)
		if err != nil {
			return err
		}
		next.testSize = sz
	}
	if v, ok := b[KeyTrainSize]; ok {
		sz, err := decodeSize(KeyTrainSize, v)
		if err != nil {
			return err
		}
		next.trainSize = sz
	}
	if v, ok := b[KeyRandomState]; ok {
		seed, err := decodeSeed(v)
		if err != nil {
			return err
		}
		next.randomState = seed
	}

	*s = next

	return nil
}

// Apply reads the input keys of b, splits, and writes the output keys into b.
// b is returned for chaining. On error b is left untouched.
func (s *Splitter) Apply(b Bag) (Bag, error) {
	if err := s.ConfigureBag(b); err != nil {
		s.cfg.logger.Debug("split rejected", zap.Error(err))
		return b, err
	}
	res, err := s.Split()
	if err != nil {
		return b, err
	}
	res.Into(b)

	return b, nil
}

// Apply is the one-shot Bag form: New(opts...).Apply(b).
func Apply(b Bag, opts ...Option) (Bag, error) {
	return New(opts...).Apply(b)
}

// Into writes the result under the output keys: X_train, X_test, y_train,
// y_test with a target; train, test without.
func (r *Result) Into(b Bag) {
	if r.Supervised() {
		b[KeyXTrain] = r.XTrain
		b[KeyXTest] = r.XTest
		b[KeyYTrain] = r.YTrain
		b[KeyYTest] = r.YTest
		return
	}
	b[KeyTrain] = r.Train
	b[KeyTest] = r.Test
}

func decodeFrame(v any) (*frame.Frame, error) {
	switch x := v.(type) {
	case nil:
		return nil, nil
	case *frame.Frame:
		return x, nil // typed nil included: reported as missing by Validate
	default:
		return nil, fieldErrorf(KeyX, ErrTypeMismatch, "got %T, want *frame.Frame", v)
	}
}

func decodeSeries(v any) (*frame.Series, error) {
	switch y := v.(type) {
	case nil:
		return nil, nil
	case *frame.Series:
		return y, nil
	default:
		return nil, fieldErrorf(KeyY, ErrTypeMismatch, "got %T, want *frame.Series", v)
	}
}

// decodeSize maps a dynamic value onto the Size union.
func decodeSize(field string, v any) (Size, error) {
	switch x := v.(type) {
	case nil:
		return Size{}, nil
	case Size:
		return x, nil
	case float64:
		return Fraction(x), nil
	case float32:
		return Fraction(float64(x)), nil
	case uint:
		return Count(uint64(x)), nil
	case uint8:
		return Count(uint64(x)), nil
	case uint16:
		return Count(uint64(x)), nil
	case uint32:
		return Count(uint64(x)), nil
	case uint64:
		return Count(x), nil
	}

	i, ok := signedInt(v)
	if !ok {
		return Size{}, fieldErrorf(field, ErrTypeMismatch, "got %T, want a float fraction or an integer count", v)
	}
	if i < 0 {
		return Size{}, fieldErrorf(field, ErrValueRange, "count %d is negative", i)
	}

	return Count(uint64(i)), nil
}

// decodeSeed accepts any integer type that fits int64.
func decodeSeed(v any) (int64, error) {
	if i, ok := signedInt(v); ok {
		return i, nil
	}
	switch x := v.(type) {
	case uint:
		if uint64(x) <= math.MaxInt64 {
			return int64(x), nil
		}
	case uint8:
		return int64(x), nil
	case uint16:
		return int64(x), nil
	case uint32:
		return int64(x), nil
	case uint64:
		if x <= math.MaxInt64 {
			return int64(x), nil
		}
	default:
		return 0, fieldErrorf(KeyRandomState, ErrTypeMismatch, "got %T, want an integer", v)
	}

	return 0, fieldErrorf(KeyRandomState, ErrValueRange, "%v does not fit in int64", v)
}

// signedInt widens signed integer kinds to int64.
func signedInt(v any) (int64, bool) {
	switch x := v.(type) {
	case int:
		return int64(x), true
	case int8:
		return int64(x), true
	case int16:
		return int64(x), true
	case int32:
		return int64(x), true
	case int64:
		return x, true
	default:
		return 0, false
	}
}
