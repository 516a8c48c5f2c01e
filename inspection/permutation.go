package inspection

import (
	"context"
	"fmt"
	"math/rand/v2"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"

	"github.com/featdrift/featdrift/core/model"
	"github.com/featdrift/featdrift/dataset"
	"github.com/featdrift/featdrift/pkg/errors"
	"github.com/featdrift/featdrift/pkg/log"
)

// ScorerDirection declares whether a scoring metric improves upward or
// downward. It must be given explicitly; it is never inferred from the
// scorer's behavior.
type ScorerDirection int

const (
	// HigherIsBetter marks quality metrics such as AUC or R².
	HigherIsBetter ScorerDirection = iota
	// LowerIsBetter marks error metrics such as RMSE or log loss.
	LowerIsBetter
)

func (d ScorerDirection) String() string {
	switch d {
	case HigherIsBetter:
		return "HigherIsBetter"
	case LowerIsBetter:
		return "LowerIsBetter"
	default:
		return fmt.Sprintf("ScorerDirection(%d)", int(d))
	}
}

// Scorer maps a target vector and aligned predictions to a single
// performance score. The functions in the metrics package satisfy this type
// directly.
type Scorer func(yTrue, yPred *mat.VecDense) (float64, error)

type config struct {
	ctx        context.Context
	maxWorkers int
}

// Option configures an Evaluate call.
type Option func(*config)

// WithContext attaches a context that is checked between feature
// evaluations, allowing cooperative cancellation of long evaluations.
func WithContext(ctx context.Context) Option {
	return func(c *config) {
		c.ctx = ctx
	}
}

// WithParallelism evaluates features on up to n concurrent workers. The
// model's Predict must be safe for concurrent read-only use. The resulting
// report is identical to sequential evaluation: every feature's permutation
// depends only on the seed and the feature's column index, never on
// execution order.
func WithParallelism(n int) Option {
	return func(c *config) {
		if n > 1 {
			c.maxWorkers = n
		}
	}
}

// Evaluate computes permutation importance for every feature column.
//
// The fitted predictor is treated as read-only: Evaluate performs one
// baseline prediction plus one prediction per feature and never retrains.
// For each feature the column's values are replaced by a uniformly random
// permutation of themselves, all other columns untouched, and drift is
// recorded as baseline score minus perturbed score, negated for
// LowerIsBetter scorers so that positive drift always means the feature
// matters.
//
// All precondition failures (shape mismatch, empty input, unknown
// direction) are reported before any prediction call; an error from the
// model or scorer aborts the whole evaluation rather than producing a
// partial report.
func Evaluate(predictor model.Predictor, features *dataset.Table, target *mat.VecDense,
	scorer Scorer, direction ScorerDirection, seed int64, opts ...Option) (*Report, error) {

	cfg := config{ctx: context.Background()}
	for _, opt := range opts {
		opt(&cfg)
	}

	if direction != HigherIsBetter && direction != LowerIsBetter {
		return nil, errors.NewValidationError("direction",
			"must be HigherIsBetter or LowerIsBetter", int(direction))
	}
	if predictor == nil {
		return nil, errors.NewValueError("inspection.Evaluate", "nil predictor")
	}
	if scorer == nil {
		return nil, errors.NewValueError("inspection.Evaluate", "nil scorer")
	}
	if features == nil || features.Rows() == 0 || features.Cols() == 0 {
		return nil, errors.NewModelError("inspection.Evaluate", "empty feature matrix", errors.ErrEmptyData)
	}

	n := features.Rows()
	if target == nil || target.Len() != n {
		got := 0
		if target != nil {
			got = target.Len()
		}
		return nil, errors.NewDimensionError("inspection.Evaluate", n, got, 0)
	}

	ev := &evaluation{
		predictor: predictor,
		features:  features,
		target:    target,
		scorer:    scorer,
		direction: direction,
		seed:      seed,
	}

	logger := log.GetLoggerWithName("inspection.permutation")
	logger.Debug("permutation importance started",
		"rows", n, "features", features.Cols(), "seed", seed, "direction", direction.String())

	baselinePreds, err := ev.predict(features, "")
	if err != nil {
		return nil, err
	}
	ev.baseline, err = ev.score(baselinePreds)
	if err != nil {
		return nil, errors.Wrap(err, "baseline scoring failed")
	}

	names := features.Names()
	drifts := make([]float64, len(names))

	if cfg.maxWorkers > 1 {
		g, ctx := errgroup.WithContext(cfg.ctx)
		g.SetLimit(cfg.maxWorkers)
		for j := range names {
			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				d, err := ev.driftFor(j, names[j])
				if err != nil {
					return err
				}
				drifts[j] = d
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
	} else {
		for j := range names {
			if err := cfg.ctx.Err(); err != nil {
				return nil, err
			}
			d, err := ev.driftFor(j, names[j])
			if err != nil {
				return nil, err
			}
			drifts[j] = d
		}
	}

	logger.Debug("permutation importance finished", "baseline", ev.baseline)

	return newReport(names, drifts), nil
}

type evaluation struct {
	predictor model.Predictor
	features  *dataset.Table
	target    *mat.VecDense
	scorer    Scorer
	direction ScorerDirection
	seed      int64
	baseline  float64
}

// driftFor evaluates one feature: permute its column, re-predict, re-score.
func (ev *evaluation) driftFor(j int, name string) (float64, error) {
	n := ev.features.Rows()

	perm := permutation(ev.seed, j, n)
	shuffled, err := ev.features.WithColumnPermuted(j, perm)
	if err != nil {
		return 0, err
	}

	preds, err := ev.predict(shuffled, name)
	if err != nil {
		return 0, err
	}
	score, err := ev.score(preds)
	if err != nil {
		return 0, errors.Wrapf(err, "scoring failed for feature %q", name)
	}

	drift := ev.baseline - score
	if ev.direction == LowerIsBetter {
		drift = -drift
	}
	return drift, nil
}

// predict runs the collaborator model, converting panics to errors and
// validating the prediction shape against the row count. For multi-column
// outputs the first column is taken, matching the probability-matrix
// convention of classification models.
func (ev *evaluation) predict(t *dataset.Table, feature string) (*mat.VecDense, error) {
	modelName := fmt.Sprintf("%T", ev.predictor)

	var preds mat.Matrix
	err := errors.SafeExecute(modelName+".Predict", func() error {
		var perr error
		preds, perr = ev.predictor.Predict(t.Matrix())
		return perr
	})
	if err != nil {
		return nil, err
	}

	n := t.Rows()
	if preds == nil {
		return nil, errors.NewPredictionShapeError(modelName, []int{n, 1}, nil, feature)
	}
	r, c := preds.Dims()
	if r != n || c < 1 {
		return nil, errors.NewPredictionShapeError(modelName, []int{n, 1}, []int{r, c}, feature)
	}

	out := mat.NewVecDense(n, nil)
	for i := 0; i < n; i++ {
		out.SetVec(i, preds.At(i, 0))
	}
	return out, nil
}

// score runs the collaborator scorer with panic protection.
func (ev *evaluation) score(preds *mat.VecDense) (float64, error) {
	var score float64
	err := errors.SafeExecute("scorer", func() error {
		var serr error
		score, serr = ev.scorer(ev.target, preds)
		return serr
	})
	return score, err
}

// permutation derives the random permutation for column j. Seeding the
// generator with (seed, column index) keeps every feature's shuffle
// independent of evaluation order, so parallel and sequential runs agree.
func permutation(seed int64, j, n int) []int {
	rng := rand.New(rand.NewPCG(uint64(seed), uint64(j)))
	return rng.Perm(n)
}
