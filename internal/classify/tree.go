package classify

import (
	"fmt"
	"math"
	"sort"

	"github.com/optistock/optistock-analytics-service/internal/model"
)

// MinTrainingItems is the smallest batch a tree can be fitted on. Below it
// the caller skips training and lets the true label stand in for the
// prediction.
const MinTrainingItems = 3

const numFeatures = 4

var categories = []string{model.CategoryA, model.CategoryB, model.CategoryC}

// featuresOf extracts the numeric feature vector the tree splits on, in
// fixed column order: annual usage, unit cost, lead time, past demand.
func featuresOf(it model.Item) [numFeatures]float64 {
	return [numFeatures]float64{it.AnnualUsage, it.UnitCost, it.LeadTime, it.PastDemand}
}

type sample struct {
	features [numFeatures]float64
	label    string
}

type node struct {
	// Leaf nodes carry a label and have nil children.
	label     string
	feature   int
	threshold float64
	left      *node
	right     *node
}

// TreeModel is a fitted decision tree over the four item features. Fitting
// has no random component: features are scanned in fixed order, candidate
// thresholds are midpoints of consecutive distinct values, and only a
// strictly lower Gini impurity replaces the current best split. The same
// training data therefore always produces the same tree.
type TreeModel struct {
	root *node
}

// Fit grows a tree until every leaf is pure or no split improves impurity.
// At this data scale (tens of rows) no depth limit or pruning is needed.
func Fit(items []model.EnrichedItem) (*TreeModel, error) {
	if len(items) < MinTrainingItems {
		return nil, fmt.Errorf("classifier training requires at least %d items, got %d", MinTrainingItems, len(items))
	}
	samples := make([]sample, len(items))
	for i, it := range items {
		samples[i] = sample{features: featuresOf(it.Item), label: it.ABCCategory}
	}
	return &TreeModel{root: grow(samples)}, nil
}

// Predict applies the fitted tree to each item, returning one label per
// item in input order.
func (m *TreeModel) Predict(items []model.Item) []string {
	labels := make([]string, len(items))
	for i, it := range items {
		labels[i] = m.root.classify(featuresOf(it))
	}
	return labels
}

func (n *node) classify(features [numFeatures]float64) string {
	for n.left != nil {
		if features[n.feature] <= n.threshold {
			n = n.left
		} else {
			n = n.right
		}
	}
	return n.label
}

func grow(samples []sample) *node {
	if isPure(samples) {
		return &node{label: samples[0].label}
	}

	bestFeature := -1
	var bestThreshold float64
	bestImpurity := math.Inf(1)

	for f := 0; f < numFeatures; f++ {
		values := distinctValues(samples, f)
		for i := 0; i+1 < len(values); i++ {
			threshold := (values[i] + values[i+1]) / 2
			impurity := splitImpurity(samples, f, threshold)
			if impurity < bestImpurity {
				bestFeature = f
				bestThreshold = threshold
				bestImpurity = impurity
			}
		}
	}

	// Mixed labels but indistinguishable features: settle on the majority.
	if bestFeature < 0 {
		return &node{label: majorityLabel(samples)}
	}

	var left, right []sample
	for _, s := range samples {
		if s.features[bestFeature] <= bestThreshold {
			left = append(left, s)
		} else {
			right = append(right, s)
		}
	}
	return &node{
		feature:   bestFeature,
		threshold: bestThreshold,
		left:      grow(left),
		right:     grow(right),
	}
}

func isPure(samples []sample) bool {
	for _, s := range samples[1:] {
		if s.label != samples[0].label {
			return false
		}
	}
	return true
}

func distinctValues(samples []sample, feature int) []float64 {
	values := make([]float64, 0, len(samples))
	for _, s := range samples {
		values = append(values, s.features[feature])
	}
	sort.Float64s(values)
	distinct := values[:1]
	for _, v := range values[1:] {
		if v != distinct[len(distinct)-1] {
			distinct = append(distinct, v)
		}
	}
	return distinct
}

// splitImpurity is the size-weighted Gini impurity of the two partitions
// induced by feature <= threshold.
func splitImpurity(samples []sample, feature int, threshold float64) float64 {
	var left, right []sample
	for _, s := range samples {
		if s.features[feature] <= threshold {
			left = append(left, s)
		} else {
			right = append(right, s)
		}
	}
	n := float64(len(samples))
	return float64(len(left))/n*gini(left) + float64(len(right))/n*gini(right)
}

func gini(samples []sample) float64 {
	if len(samples) == 0 {
		return 0
	}
	counts := labelCounts(samples)
	impurity := 1.0
	n := float64(len(samples))
	for _, c := range counts {
		p := float64(c) / n
		impurity -= p * p
	}
	return impurity
}

func labelCounts(samples []sample) map[string]int {
	counts := make(map[string]int, len(categories))
	for _, s := range samples {
		counts[s.label]++
	}
	return counts
}

// majorityLabel breaks count ties in category order A, B, C.
func majorityLabel(samples []sample) string {
	counts := labelCounts(samples)
	best := categories[0]
	for _, cat := range categories[1:] {
		if counts[cat] > counts[best] {
			best = cat
		}
	}
	return best
}
