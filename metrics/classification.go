package metrics

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/featdrift/featdrift/pkg/errors"
)

// AUC はROC曲線下面積（Area Under the ROC Curve）を計算する。
// yTrueは0/1の二値ラベル、yPredは確率的スコア。
// Mann-Whitney U統計量と等価なランクベースの計算を使い、
// 同点スコアは平均ランクで処理する。
//
// ターゲットが単一クラスしか含まない場合はAUCが定義できないため、
// UndefinedMetricWarningを発行して0.5を返す。
func AUC(yTrue, yPred *mat.VecDense) (float64, error) {
	n, err := checkPair("AUC", yTrue, yPred)
	if err != nil {
		return 0, err
	}

	nPos := 0
	for i := 0; i < n; i++ {
		switch yTrue.AtVec(i) {
		case 0:
			// negative
		case 1:
			nPos++
		default:
			return 0, errors.NewValueError("AUC", "yTrue must contain only binary labels 0 and 1")
		}
	}
	nNeg := n - nPos

	if nPos == 0 || nNeg == 0 {
		errors.Warn(errors.NewUndefinedMetricWarning("AUC", "only one class present in yTrue", 0.5))
		return 0.5, nil
	}

	// スコア昇順にランク付け（同点は平均ランク）
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool {
		return yPred.AtVec(order[a]) < yPred.AtVec(order[b])
	})

	ranks := make([]float64, n)
	for i := 0; i < n; {
		j := i
		for j < n && yPred.AtVec(order[j]) == yPred.AtVec(order[i]) {
			j++
		}
		// ランクは1始まり、同点グループは平均ランクを共有する
		avgRank := float64(i+j+1) / 2.0
		for k := i; k < j; k++ {
			ranks[order[k]] = avgRank
		}
		i = j
	}

	var rankSumPos float64
	for i := 0; i < n; i++ {
		if yTrue.AtVec(i) == 1 {
			rankSumPos += ranks[i]
		}
	}

	// AUC = (R⁺ - n⁺(n⁺+1)/2) / (n⁺ * n⁻)
	u := rankSumPos - float64(nPos)*float64(nPos+1)/2.0
	return u / (float64(nPos) * float64(nNeg)), nil
}

// AUCMatrix は行列形式の入力に対してAUCを計算する。
// 複数列の行列が渡された場合は先頭列をスコアとして使用する
// （分類モデルのPredictが返す確率行列の慣例に合わせる）。
func AUCMatrix(yTrue, yPred mat.Matrix) (float64, error) {
	yTrueVec, err := firstColumn("AUCMatrix", yTrue)
	if err != nil {
		return 0, err
	}
	yPredVec, err := firstColumn("AUCMatrix", yPred)
	if err != nil {
		return 0, err
	}
	return AUC(yTrueVec, yPredVec)
}

// BinaryLogLoss は二値分類の交差エントロピー損失を計算する。
// 予測確率はlog(0)を避けるためepsilonでクリップされる。
func BinaryLogLoss(yTrue, yPred *mat.VecDense) (float64, error) {
	n, err := checkPair("BinaryLogLoss", yTrue, yPred)
	if err != nil {
		return 0, err
	}

	const eps = 1e-15

	var sum float64
	for i := 0; i < n; i++ {
		yt := yTrue.AtVec(i)
		if yt != 0 && yt != 1 {
			return 0, errors.NewValueError("BinaryLogLoss", "yTrue must contain only binary labels 0 and 1")
		}
		p := math.Min(math.Max(yPred.AtVec(i), eps), 1-eps)
		if yt == 1 {
			sum -= math.Log(p)
		} else {
			sum -= math.Log(1 - p)
		}
	}
	return sum / float64(n), nil
}

// Accuracy は正解率（一致したラベルの割合）を計算する
func Accuracy(yTrue, yPred *mat.VecDense) (float64, error) {
	errRate, err := ClassificationError(yTrue, yPred)
	if err != nil {
		return 0, err
	}
	return 1 - errRate, nil
}

// ClassificationError は誤分類率（一致しなかったラベルの割合）を計算する
func ClassificationError(yTrue, yPred *mat.VecDense) (float64, error) {
	n, err := checkPair("ClassificationError", yTrue, yPred)
	if err != nil {
		return 0, err
	}

	wrong := 0
	for i := 0; i < n; i++ {
		if yTrue.AtVec(i) != yPred.AtVec(i) {
			wrong++
		}
	}
	return float64(wrong) / float64(n), nil
}

// firstColumn は行列の先頭列をVecDenseとして取り出す
func firstColumn(op string, m mat.Matrix) (*mat.VecDense, error) {
	if m == nil {
		return nil, errors.NewValueError(op, "nil matrix")
	}
	r, c := m.Dims()
	if r == 0 || c == 0 {
		return nil, errors.NewValueError(op, "empty matrix")
	}
	v := mat.NewVecDense(r, nil)
	for i := 0; i < r; i++ {
		v.SetVec(i, m.At(i, 0))
	}
	return v, nil
}
