package dataset

import (
	"fmt"
	"io"
	"math"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"gonum.org/v1/gonum/mat"

	"github.com/featdrift/featdrift/pkg/errors"
)

// MissingPolicy decides what happens to cells that cannot be parsed as
// numbers (empty cells, "NA", malformed values). The policy is an explicit
// loader configuration, never an implicit side effect of parsing.
type MissingPolicy int

const (
	// MissingReject fails loading on the first missing value.
	MissingReject MissingPolicy = iota
	// MissingFill replaces missing values with a configured constant.
	MissingFill
)

type csvConfig struct {
	policy    MissingPolicy
	fillValue float64
}

// CSVOption configures ReadCSV.
type CSVOption func(*csvConfig)

// WithFillValue makes the loader replace missing cells with v instead of
// rejecting the input.
func WithFillValue(v float64) CSVOption {
	return func(c *csvConfig) {
		c.policy = MissingFill
		c.fillValue = v
	}
}

// WithRejectMissing makes the loader fail on missing cells. This is the
// default.
func WithRejectMissing() CSVOption {
	return func(c *csvConfig) {
		c.policy = MissingReject
	}
}

// ReadCSV loads a delimited text file with a header row, splits off the named
// target column, and materializes the remaining columns as a numeric Table.
// Every non-target column is coerced to float64; cells that fail to parse are
// handled according to the configured MissingPolicy.
func ReadCSV(r io.Reader, target string, opts ...CSVOption) (*Table, *mat.VecDense, error) {
	cfg := csvConfig{policy: MissingReject}
	for _, opt := range opts {
		opt(&cfg)
	}

	df := dataframe.ReadCSV(r,
		dataframe.HasHeader(true),
		dataframe.DefaultType(series.Float),
		dataframe.DetectTypes(false),
	)
	if df.Err != nil {
		return nil, nil, errors.Wrap(df.Err, "dataset.ReadCSV: parsing failed")
	}
	if df.Nrow() == 0 || df.Ncol() == 0 {
		return nil, nil, errors.NewModelError("dataset.ReadCSV", "empty input", errors.ErrEmptyData)
	}

	hasTarget := false
	featureNames := make([]string, 0, df.Ncol()-1)
	for _, name := range df.Names() {
		if name == target {
			hasTarget = true
			continue
		}
		featureNames = append(featureNames, name)
	}
	if !hasTarget {
		return nil, nil, errors.NewValueError("dataset.ReadCSV", "target column not found: "+target)
	}
	if len(featureNames) == 0 {
		return nil, nil, errors.NewModelError("dataset.ReadCSV", "no feature columns besides target", errors.ErrEmptyData)
	}

	rows := df.Nrow()
	cols := make([][]float64, len(featureNames))
	for j, name := range featureNames {
		vals := df.Col(name).Float()
		if err := applyMissingPolicy(vals, name, cfg); err != nil {
			return nil, nil, err
		}
		cols[j] = vals
	}

	yVals := df.Col(target).Float()
	if err := applyMissingPolicy(yVals, target, cfg); err != nil {
		return nil, nil, err
	}

	table, err := FromColumns(featureNames, cols)
	if err != nil {
		return nil, nil, err
	}
	return table, mat.NewVecDense(rows, yVals), nil
}

func applyMissingPolicy(vals []float64, column string, cfg csvConfig) error {
	for i, v := range vals {
		if !math.IsNaN(v) {
			continue
		}
		if cfg.policy == MissingReject {
			return errors.Wrap(errors.ErrMissingValues,
				fmt.Sprintf("dataset.ReadCSV: column %q row %d", column, i))
		}
		vals[i] = cfg.fillValue
	}
	return nil
}
