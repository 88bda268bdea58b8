package ingestion

import (
	"math"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"
)

const (
	// wordGapRatio is the horizontal gap, relative to font size, that separates two words
	wordGapRatio = 0.25
	// rowTolerance groups words whose baselines differ by less than this many points
	rowTolerance = 3.0
	// minColumnGapRatio is the narrowest gutter, relative to page width, treated as a column break
	minColumnGapRatio = 0.08
)

// word is a run of glyphs on one baseline. Y grows upward, as in PDF space.
type word struct {
	X float64
	Y float64
	S string
}

func sortedByX(items pdf.TextHorizontal) []pdf.Text {
	out := make([]pdf.Text, len(items))
	copy(out, items)
	sort.SliceStable(out, func(i, j int) bool { return out[i].X < out[j].X })
	return out
}

func wordsExtent(words []word) float64 {
	var maxX float64
	for _, w := range words {
		maxX = math.Max(maxX, w.X+float64(len(w.S))*4)
	}
	return maxX
}

// layoutPage renders one page as text. A two-column page is emitted right
// column first, then left column, each top to bottom.
func layoutPage(words []word, width float64) string {
	threshold, ok := columnThreshold(words, width)
	if !ok {
		return wordsToLines(words)
	}

	var left, right []word
	for _, w := range words {
		if w.X < threshold {
			left = append(left, w)
		} else {
			right = append(right, w)
		}
	}
	return wordsToLines(right) + "\n" + wordsToLines(left)
}

// columnThreshold finds the widest gap between distinct word start positions
// whose midpoint falls in the central half of the page. The gap must be at
// least minColumnGapRatio of the page width.
func columnThreshold(words []word, width float64) (float64, bool) {
	if width <= 0 || len(words) == 0 {
		return 0, false
	}

	seen := make(map[float64]struct{})
	var xs []float64
	for _, w := range words {
		x := math.Round(w.X)
		if _, ok := seen[x]; ok {
			continue
		}
		seen[x] = struct{}{}
		xs = append(xs, x)
	}
	sort.Float64s(xs)

	lo, hi := width*0.25, width*0.75
	var bestGap, threshold float64
	for i := 1; i < len(xs); i++ {
		mid := (xs[i] + xs[i-1]) / 2
		if mid <= lo || mid >= hi {
			continue
		}
		if gap := xs[i] - xs[i-1]; gap > bestGap {
			bestGap, threshold = gap, mid
		}
	}

	if bestGap < width*minColumnGapRatio {
		return 0, false
	}
	return threshold, true
}

// wordsToLines groups words into lines by baseline and joins each line left to right
func wordsToLines(words []word) string {
	if len(words) == 0 {
		return ""
	}

	sorted := make([]word, len(words))
	copy(sorted, words)
	rowOf := func(w word) float64 { return math.Round(w.Y / rowTolerance) }
	sort.SliceStable(sorted, func(i, j int) bool {
		ri, rj := rowOf(sorted[i]), rowOf(sorted[j])
		if ri != rj {
			return ri > rj
		}
		return sorted[i].X < sorted[j].X
	})

	var lines []string
	var current []string
	currentRow := rowOf(sorted[0])
	for _, w := range sorted {
		if r := rowOf(w); r != currentRow {
			lines = append(lines, strings.Join(current, " "))
			current, currentRow = nil, r
		}
		current = append(current, w.S)
	}
	lines = append(lines, strings.Join(current, " "))

	return strings.Join(lines, "\n")
}
