// Package mapgen renders a run's level graph as a printable PDF campus map:
// every encounter as a door, the paths between them, and where the player
// stands.
package mapgen

import (
	"bytes"
	"errors"
	"fmt"
	"math"

	"github.com/jung-kurt/gofpdf/v2"

	"gradquest/internal/levelgraph"
)

const (
	pageW     = 595
	pageH     = 842
	margin    = 40
	doorW     = 26.0
	doorH     = 34.0
	fontSize  = 8
	titleSize = 16
	labelSize = 7

	plotTop    = margin + 90
	plotBottom = pageH - margin - 110
	plotLeft   = margin + 50
	plotRight  = pageW - margin - 50
)

// Generate returns PDF bytes for g. current is highlighted as the player's
// position; pass a negative id before the first node is entered.
func Generate(g *levelgraph.Graph, current levelgraph.NodeID, title string) ([]byte, error) {
	if g == nil || len(g.Nodes) == 0 {
		return nil, errors.New("mapgen: empty graph")
	}
	project := projection(g)

	pdf := gofpdf.New("P", "pt", "A4", "")
	pdf.SetMargins(margin, margin, margin)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	// Paper background
	pdf.SetFillColor(245, 240, 225)
	pdf.Rect(0, 0, pageW, pageH, "F")
	drawWavyBorder(pdf)

	pdf.SetDrawColor(40, 40, 70)
	pdf.SetTextColor(40, 40, 70)
	pdf.SetFont("Helvetica", "B", titleSize)
	pdf.SetXY(pageW-margin-200, margin+2)
	pdf.CellFormat(200, 14, "Campus Map", "", 0, "R", false, 0, "")
	if title != "" {
		pdf.SetFont("Helvetica", "", fontSize)
		pdf.SetXY(pageW-margin-200, margin+18)
		pdf.CellFormat(200, 10, title, "", 0, "R", false, 0, "")
	}
	drawCompassRose(pdf, margin+45, margin+45)

	// Paths: solid where the player can still go, dashed otherwise.
	for _, e := range g.Edges() {
		from, to := g.Node(e.From), g.Node(e.To)
		x1, y1 := project(from.Position.X, from.Position.Y)
		x2, y2 := project(to.Position.X, to.Position.Y)
		if from.Completed && to.Unlocked {
			pdf.SetDrawColor(40, 120, 60)
			pdf.SetLineWidth(2)
			pdf.SetDashPattern([]float64{}, 0)
		} else {
			pdf.SetDrawColor(120, 120, 140)
			pdf.SetLineWidth(1)
			pdf.SetDashPattern([]float64{6, 4}, 0)
		}
		pdf.Line(x1, y1, x2, y2)
	}
	pdf.SetDashPattern([]float64{}, 0)
	pdf.SetLineWidth(1)

	for i := range g.Nodes {
		n := &g.Nodes[i]
		x, y := project(n.Position.X, n.Position.Y)
		drawNode(pdf, x, y, n, g.IsTerminal(n.ID), n.ID == current)
	}

	drawLegend(pdf)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("mapgen: %w", err)
	}
	return buf.Bytes(), nil
}

// projection maps world coordinates (y up) into the plot area of the page
// (y down), keeping the aspect ratio.
func projection(g *levelgraph.Graph) func(x, y float64) (float64, float64) {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, n := range g.Nodes {
		minX, maxX = math.Min(minX, n.Position.X), math.Max(maxX, n.Position.X)
		minY, maxY = math.Min(minY, n.Position.Y), math.Max(maxY, n.Position.Y)
	}
	spanX, spanY := math.Max(maxX-minX, 1), math.Max(maxY-minY, 1)
	scale := math.Min((plotRight-plotLeft)/spanX, (plotBottom-plotTop)/spanY)
	offX := plotLeft + ((plotRight-plotLeft)-spanX*scale)/2
	offY := plotTop + ((plotBottom-plotTop)-spanY*scale)/2
	return func(x, y float64) (float64, float64) {
		return offX + (x-minX)*scale, offY + (maxY-y)*scale
	}
}

func drawNode(pdf *gofpdf.Fpdf, x, y float64, n *levelgraph.Node, boss, current bool) {
	if current {
		pdf.SetDrawColor(200, 60, 40)
		pdf.SetLineWidth(2)
		pdf.Circle(x, y, doorH/2+8, "D")
		pdf.SetFont("Helvetica", "I", labelSize)
		pdf.SetTextColor(200, 60, 40)
		pdf.SetXY(x-30, y+doorH/2+10)
		pdf.CellFormat(60, 8, "You are here", "", 0, "C", false, 0, "")
	}

	switch {
	case n.Special:
		pdf.SetFillColor(250, 215, 90)
	case n.Unlocked:
		pdf.SetFillColor(150, 210, 160)
	case n.Completed:
		pdf.SetFillColor(200, 200, 210)
	default:
		pdf.SetFillColor(150, 110, 80)
	}
	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(1.2)
	pdf.Rect(x-doorW/2, y-doorH/2, doorW, doorH, "FD")
	if n.Unlocked {
		// Open door: a leaf swung out to the right.
		pdf.Line(x+doorW/2, y-doorH/2, x+doorW/2+8, y-doorH/2+4)
		pdf.Line(x+doorW/2+8, y-doorH/2+4, x+doorW/2+8, y+doorH/2+4)
		pdf.Line(x+doorW/2+8, y+doorH/2+4, x+doorW/2, y+doorH/2)
	} else {
		pdf.Circle(x+doorW/4, y, 1.5, "F")
	}
	if n.Completed {
		drawCheckmark(pdf, x, y)
	}
	if boss {
		drawCrown(pdf, x, y-doorH/2-6)
	}

	label := fmt.Sprintf("%d enemies", n.NumEnemies)
	switch {
	case n.Special:
		label = "study group"
	case n.NumEnemies == 1:
		label = "1 enemy"
	}
	pdf.SetFont("Helvetica", "B", labelSize)
	pdf.SetTextColor(40, 40, 70)
	pdf.SetXY(x-30, y-doorH/2-14)
	if boss {
		pdf.SetXY(x-30, y-doorH/2-24)
		label = "final exam"
	}
	pdf.CellFormat(60, 8, label, "", 0, "C", false, 0, "")
	pdf.SetLineWidth(1)
}

func drawCheckmark(pdf *gofpdf.Fpdf, x, y float64) {
	pdf.SetDrawColor(30, 130, 50)
	pdf.SetLineWidth(2.5)
	pdf.Line(x-7, y, x-2, y+6)
	pdf.Line(x-2, y+6, x+8, y-8)
	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(1.2)
}

func drawCrown(pdf *gofpdf.Fpdf, x, y float64) {
	pdf.SetFillColor(230, 180, 40)
	pdf.Polygon([]gofpdf.PointType{
		{X: x - 10, Y: y + 4}, {X: x - 10, Y: y - 4}, {X: x - 5, Y: y},
		{X: x, Y: y - 6}, {X: x + 5, Y: y}, {X: x + 10, Y: y - 4}, {X: x + 10, Y: y + 4},
	}, "FD")
}

func drawLegend(pdf *gofpdf.Fpdf) {
	entries := []struct {
		r, g, b int
		label   string
	}{
		{150, 210, 160, "open"},
		{150, 110, 80, "locked"},
		{200, 200, 210, "cleared"},
		{250, 215, 90, "study group (+2 to every card)"},
	}
	y := float64(pageH - margin - 80)
	pdf.SetFont("Helvetica", "", fontSize)
	pdf.SetTextColor(40, 40, 70)
	for _, e := range entries {
		pdf.SetFillColor(e.r, e.g, e.b)
		pdf.SetDrawColor(0, 0, 0)
		pdf.Rect(margin+30, y, 10, 12, "FD")
		pdf.SetXY(margin+46, y+1)
		pdf.CellFormat(200, 10, e.label, "", 0, "L", false, 0, "")
		y += 16
	}
}

// drawWavyBorder draws a hand-drawn looking border around the page.
func drawWavyBorder(pdf *gofpdf.Fpdf) {
	pts := wavyRectPoints(margin, margin, pageW-2*margin, pageH-2*margin, 12, 4)
	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(2)
	pdf.Polygon(pts, "D")
	pdf.SetLineWidth(1)
}

// wavyRectPoints returns polygon points for a rectangle with sinusoidal wobble on each side.
func wavyRectPoints(x, y, w, h float64, steps int, amp float64) []gofpdf.PointType {
	pts := make([]gofpdf.PointType, 0, steps*4+1)
	side := func(x0, y0, dx, dy, fx, fy float64, from int) {
		for i := from; i <= steps; i++ {
			t := float64(i) / float64(steps)
			pts = append(pts, gofpdf.PointType{
				X: x0 + t*dx + amp*math.Sin(float64(i)*fx),
				Y: y0 + t*dy + amp*math.Cos(float64(i)*fy),
			})
		}
	}
	side(x, y, w, 0, 0.7, 0.5, 0)
	side(x+w, y, 0, h, 0.6, 0.4, 1)
	side(x+w, y+h, -w, 0, 0.8, 0.3, 1)
	side(x, y+h, 0, -h, 0.5, 0.6, 1)
	return pts
}

// drawCompassRose draws an eight-point compass rose with N/S/E/W labels.
func drawCompassRose(pdf *gofpdf.Fpdf, cx, cy float64) {
	const rad = 22.0
	pdf.SetDrawColor(40, 40, 70)
	pdf.SetLineWidth(1)
	pdf.Circle(cx, cy, rad, "D")
	for i := 0; i < 8; i++ {
		angle := float64(i)*45.0*math.Pi/180 - math.Pi/2 // 0 = N
		if i%2 == 0 {
			pdf.SetDrawColor(180, 40, 40)
			pdf.SetLineWidth(1.5)
		} else {
			pdf.SetDrawColor(120, 120, 160)
			pdf.SetLineWidth(1)
		}
		pdf.Line(cx, cy, cx+rad*math.Cos(angle), cy+rad*math.Sin(angle))
	}
	pdf.SetLineWidth(1)
	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetTextColor(40, 40, 70)
	for _, lab := range []struct {
		label  string
		dx, dy float64
	}{
		{"N", 0, -rad - 10},
		{"S", 0, rad + 10},
		{"E", rad + 8, 0},
		{"W", -rad - 8, 0},
	} {
		pdf.SetXY(cx+lab.dx-4, cy+lab.dy-3)
		pdf.CellFormat(8, 6, lab.label, "", 0, "C", false, 0, "")
	}
	pdf.SetFont("Helvetica", "", fontSize)
}
