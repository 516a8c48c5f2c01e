// Package featdrift provides permutation-importance feature selection for
// tabular machine learning models in Go.
//
// Given a fitted model, a feature matrix and a scoring metric, featdrift
// measures each feature's "drift": the loss of model performance when that
// feature's column is replaced by a random permutation of its own values.
// Features whose drift exceeds a threshold are the ones the model actually
// relies on.
//
// # Quick Start
//
//	features, target, err := dataset.ReadCSV(f, "label")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	model := linear.NewLinearRegression()
//	yMat := mat.NewDense(target.Len(), 1, target.RawVector().Data)
//	if err := model.Fit(features.Matrix(), yMat); err != nil {
//	    log.Fatal(err)
//	}
//
//	report, err := inspection.Evaluate(model, features, target,
//	    metrics.RMSE, inspection.LowerIsBetter, 42)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(report.Select(0))
//
// # Packages
//
//   - inspection: permutation importance evaluation and feature selection
//   - dataset: named-column feature tables and CSV loading
//   - metrics: regression and classification scoring functions
//   - linear: a reference least-squares regression model
//   - preprocessing: feature standardization
//   - core/model, core/parallel, pkg/errors, pkg/log: shared infrastructure
package featdrift
