package render

import (
	"strings"
	"unicode/utf8"

	"github.com/booltab/booltab/internal/ast"
)

// Unary and group nodes hang their single child straight down; binary nodes
// split into a left and right subtree.
func children(n ast.Node) (left, right ast.Node) {
	switch n := n.(type) {
	case *ast.SingleOp:
		return n.Operand, nil
	case *ast.DoubleOp:
		return n.Left, n.Right
	case *ast.Group:
		return n.Inner, nil
	default:
		return nil, nil
	}
}

// drawing is a rectangular block of text plus the column of its root label,
// so parents know where to attach connectors.
type drawing struct {
	lines   []string
	width   int
	rootCol int
}

// CompactTree renders the expression tree with box-drawing connectors,
// sizing each subtree to its contents.
func CompactTree(n ast.Node, extended bool) string {
	d := drawSubtree(n, extended)
	return strings.Join(d.lines, "\n")
}

func drawSubtree(n ast.Node, extended bool) drawing {
	label := ast.Label(n, extended)
	labelWidth := utf8.RuneCountInString(label)

	left, right := children(n)
	switch {
	case left == nil && right == nil:
		return drawing{lines: []string{label}, width: labelWidth, rootCol: labelWidth / 2}
	case right == nil:
		return combineSingle(label, labelWidth, drawSubtree(left, extended))
	default:
		return combineBoth(label, labelWidth,
			drawSubtree(left, extended), drawSubtree(right, extended))
	}
}

// combineBoth stacks the label over its two child drawings, joined by a
// ┌─┴─┐ connector between the child root columns.
func combineBoth(label string, labelWidth int, left, right drawing) drawing {
	const gap = 1

	totalWidth := left.width + gap + right.width
	leftRoot := left.rootCol
	rightRoot := left.width + gap + right.rootCol
	rootCol := (leftRoot + rightRoot) / 2

	pad := rootCol - labelWidth/2
	if pad < 0 {
		pad = 0
	}
	if pad+labelWidth > totalWidth {
		totalWidth = pad + labelWidth
	}

	lines := []string{padTo(strings.Repeat(" ", pad)+label, totalWidth)}

	var connector strings.Builder
	for i := 0; i < totalWidth; i++ {
		switch {
		case i == leftRoot:
			connector.WriteString("┌")
		case i == rightRoot:
			connector.WriteString("┐")
		case i == rootCol:
			connector.WriteString("┴")
		case i > leftRoot && i < rightRoot:
			connector.WriteString("─")
		default:
			connector.WriteByte(' ')
		}
	}
	lines = append(lines, connector.String())

	height := len(left.lines)
	if len(right.lines) > height {
		height = len(right.lines)
	}
	for i := 0; i < height; i++ {
		var line strings.Builder
		if i < len(left.lines) {
			line.WriteString(padTo(left.lines[i], left.width))
		} else {
			line.WriteString(strings.Repeat(" ", left.width))
		}
		line.WriteString(strings.Repeat(" ", gap))
		if i < len(right.lines) {
			line.WriteString(right.lines[i])
		}
		lines = append(lines, padTo(line.String(), totalWidth))
	}

	return drawing{lines: lines, width: totalWidth, rootCol: rootCol}
}

// combineSingle stacks the label over one child drawing with a vertical bar
// at the child's root column.
func combineSingle(label string, labelWidth int, child drawing) drawing {
	rootCol := child.rootCol

	pad := rootCol - labelWidth/2
	if pad < 0 {
		pad = 0
	}
	totalWidth := child.width
	if pad+labelWidth > totalWidth {
		totalWidth = pad + labelWidth
	}

	lines := []string{padTo(strings.Repeat(" ", pad)+label, totalWidth)}

	var bar strings.Builder
	for i := 0; i < totalWidth; i++ {
		if i == rootCol {
			bar.WriteString("│")
		} else {
			bar.WriteByte(' ')
		}
	}
	lines = append(lines, bar.String())

	for _, line := range child.lines {
		lines = append(lines, padTo(line, totalWidth))
	}

	return drawing{lines: lines, width: totalWidth, rootCol: rootCol}
}

// GridTree renders the tree as a level-order grid: level i of the tree gets
// 2^i equal-width slots on text row i, every label centered in its slot.
// The layout grows exponentially with depth; CompactTree is the cheaper
// choice for large trees.
func GridTree(n ast.Node, extended bool) string {
	depth := treeDepth(n)
	rows := make([][]string, depth)
	for i := range rows {
		rows[i] = make([]string, 1<<i)
	}
	fillGrid(rows, n, 0, 0, extended)

	cellWidth := 1
	for _, row := range rows {
		for _, label := range row {
			if w := utf8.RuneCountInString(label); w > cellWidth {
				cellWidth = w
			}
		}
	}

	totalWidth := (1 << (depth - 1)) * (cellWidth + 1)
	out := make([]string, 0, depth)
	for level, row := range rows {
		slotWidth := totalWidth / (1 << level)
		var b strings.Builder
		for _, label := range row {
			padding := slotWidth - utf8.RuneCountInString(label)
			leftPad := padding / 2
			b.WriteString(strings.Repeat(" ", leftPad))
			b.WriteString(label)
			b.WriteString(strings.Repeat(" ", padding-leftPad))
		}
		out = append(out, strings.TrimRight(b.String(), " "))
	}
	return strings.Join(out, "\n")
}

func fillGrid(rows [][]string, n ast.Node, level, pos int, extended bool) {
	rows[level][pos] = ast.Label(n, extended)
	left, right := children(n)
	if left != nil {
		fillGrid(rows, left, level+1, pos*2, extended)
	}
	if right != nil {
		fillGrid(rows, right, level+1, pos*2+1, extended)
	}
}

func treeDepth(n ast.Node) int {
	left, right := children(n)
	depth := 0
	if left != nil {
		depth = treeDepth(left)
	}
	if right != nil {
		if d := treeDepth(right); d > depth {
			depth = d
		}
	}
	return depth + 1
}

func padTo(s string, width int) string {
	if w := utf8.RuneCountInString(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}
