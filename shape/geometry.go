package shape

import (
	"strconv"
	"strings"
)

// num renders v in the shortest form that reads back as the same float64.
func num(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func rectPath(x, y, w, h float64) string {
	return "M" + num(x) + "," + num(y) +
		" H" + num(x+w) +
		" V" + num(y+h) +
		" H" + num(x) + " Z"
}

// ellipsePath draws two half arcs from the left extreme to the right and back.
func ellipsePath(cx, cy, rx, ry float64) string {
	left := num(cx-rx) + "," + num(cy)
	right := num(cx+rx) + "," + num(cy)
	arc := "A" + num(rx) + "," + num(ry) + " 0 0,0 "
	return "M" + left + " " + arc + right + " " + arc + left + " Z"
}

func linePath(x1, y1, x2, y2 float64) string {
	return "M" + num(x1) + "," + num(y1) + " L" + num(x2) + "," + num(y2)
}

// polylinePath turns every space of points into a line-to command. The points
// text is otherwise copied as is.
func polylinePath(points string) string {
	return "M" + strings.ReplaceAll(points, " ", " L")
}

func polygonPath(points string) string {
	return polylinePath(points) + " Z"
}
