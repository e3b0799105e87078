package classifier

import "sort"

// Sample is one labeled training example.
type Sample struct {
	Features []float64
	Itemize  bool
}

// TrainingSamples returns the fixed synthetic labeled set the tree is trained
// on at startup. Labels follow "itemizable total beats the standard
// deduction" for the 2025 amounts; the set is deliberately small and exists
// only to seed an advisory heuristic.
func TrainingSamples() []Sample {
	return []Sample{
		{[]float64{45000, 0, 500, 1000, 0}, false},
		{[]float64{52000, 3000, 1000, 0, 0}, false},
		{[]float64{75000, 12000, 2500, 5000, 0}, false},
		{[]float64{68000, 9000, 2000, 2500, 1}, false},
		{[]float64{80000, 16000, 3000, 4000, 0}, true},
		{[]float64{95000, 18000, 5000, 2000, 0}, true},
		{[]float64{110000, 22000, 4000, 9000, 1}, true},
		{[]float64{60000, 14000, 2000, 8000, 0}, true},
		{[]float64{120000, 8000, 3000, 5000, 2}, false},
		{[]float64{150000, 20000, 6000, 4000, 2}, false},
		{[]float64{180000, 26000, 8000, 6000, 2}, true},
		{[]float64{250000, 50000, 10000, 30000, 2}, true},
		{[]float64{90000, 0, 30000, 0, 0}, true},
		{[]float64{200000, 10000, 2000, 12000, 2}, false},
		{[]float64{130000, 24000, 1000, 20000, 1}, true},
		{[]float64{40000, 5000, 500, 3500, 0}, false},
	}
}

// Tree is a shallow decision tree trained in-process from a fixed labeled
// set. Depth is capped so the model stays a coarse heuristic rather than a
// lookup table over the training data.
type Tree struct {
	root *treeNode
}

type treeNode struct {
	feature     int
	split       float64
	left, right *treeNode
	leaf        bool
	itemize     bool
}

const maxTreeDepth = 2

// NewTree trains a decision tree on the given samples using Gini-impurity
// splits.
func NewTree(samples []Sample) *Tree {
	return &Tree{root: grow(samples, 0)}
}

// Name implements Predictor.
func (t *Tree) Name() string { return "tree" }

// Predict implements Predictor.
func (t *Tree) Predict(features []float64) (bool, error) {
	if err := checkFeatures(features); err != nil {
		return false, err
	}
	node := t.root
	for !node.leaf {
		if features[node.feature] < node.split {
			node = node.left
		} else {
			node = node.right
		}
	}
	return node.itemize, nil
}

func grow(samples []Sample, depth int) *treeNode {
	positives := countItemize(samples)
	if depth >= maxTreeDepth || positives == 0 || positives == len(samples) {
		return &treeNode{leaf: true, itemize: positives*2 >= len(samples)}
	}

	feature, split, ok := bestSplit(samples)
	if !ok {
		return &treeNode{leaf: true, itemize: positives*2 >= len(samples)}
	}

	var left, right []Sample
	for _, s := range samples {
		if s.Features[feature] < split {
			left = append(left, s)
		} else {
			right = append(right, s)
		}
	}
	return &treeNode{
		feature: feature,
		split:   split,
		left:    grow(left, depth+1),
		right:   grow(right, depth+1),
	}
}

// bestSplit scans every feature and every midpoint between adjacent distinct
// values, keeping the split with the lowest weighted Gini impurity.
func bestSplit(samples []Sample) (feature int, split float64, ok bool) {
	best := gini(countItemize(samples), len(samples))
	for f := 0; f < NumFeatures; f++ {
		values := make([]float64, 0, len(samples))
		for _, s := range samples {
			values = append(values, s.Features[f])
		}
		sort.Float64s(values)
		for i := 1; i < len(values); i++ {
			if values[i] == values[i-1] {
				continue
			}
			candidate := (values[i] + values[i-1]) / 2
			if impurity := splitImpurity(samples, f, candidate); impurity < best {
				best = impurity
				feature = f
				split = candidate
				ok = true
			}
		}
	}
	return feature, split, ok
}

func splitImpurity(samples []Sample, feature int, split float64) float64 {
	var leftTotal, leftPos, rightTotal, rightPos int
	for _, s := range samples {
		if s.Features[feature] < split {
			leftTotal++
			if s.Itemize {
				leftPos++
			}
		} else {
			rightTotal++
			if s.Itemize {
				rightPos++
			}
		}
	}
	if leftTotal == 0 || rightTotal == 0 {
		return 1
	}
	total := float64(leftTotal + rightTotal)
	return float64(leftTotal)/total*gini(leftPos, leftTotal) +
		float64(rightTotal)/total*gini(rightPos, rightTotal)
}

func gini(positives, total int) float64 {
	if total == 0 {
		return 0
	}
	p := float64(positives) / float64(total)
	return 2 * p * (1 - p)
}

func countItemize(samples []Sample) int {
	n := 0
	for _, s := range samples {
		if s.Itemize {
			n++
		}
	}
	return n
}
