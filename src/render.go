package src

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/gif"
	"image/png"
	"path/filepath"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// GIF/PNG rendering definitions, carried from the teacher unchanged in
// spirit: these draw a BaselineMaze run (the comparison bank), which is
// the one place a run still has the Squares/Explored/Solution shape the
// original renderer expects. The scoring-aware Solve/Astar engine works
// on the immutable Maze/Path types directly and is rendered by
// RenderPath below instead.
var (
	cellSize    = 20
	borderWidth = 2
	palette     = color.Palette{
		color.White,                    // 0: empty/background
		color.Black,                    // 1: wall
		color.RGBA{0, 255, 0, 255},     // 2: start (green)
		color.RGBA{255, 0, 0, 255},     // 3: goal (red)
		color.RGBA{128, 128, 128, 255}, // 4: visited (gray)
		color.RGBA{255, 255, 0, 255},   // 5: cursor (yellow)
		color.RGBA{255, 0, 255, 255},   // 6: solution path (magenta)
		color.RGBA{0, 0, 255, 255},     // 7: border (blue)
		color.RGBA{255, 165, 0, 255},   // 8: weighted squares (orange)
	}
)

// CreateGIF renders the full exploration of a comparison-solver run as an
// animated GIF: one frame per step of bm.ExperimentPath, plus a final
// frame with the solution path highlighted.
func CreateGIF(bm *BaselineMaze) (*bytes.Buffer, error) {
	width := bm.Width*cellSize + 2*borderWidth
	height := bm.Height*cellSize + 2*borderWidth

	g := &gif.GIF{LoopCount: 0}
	visited := make(map[Point]bool)

	for i := 0; i < len(bm.ExperimentPath); i++ {
		current := bm.ExperimentPath[i]
		visited[current] = true

		img := image.NewPaletted(image.Rect(0, 0, width, height), palette)
		draw.Draw(img, img.Bounds(), &image.Uniform{palette[0]}, image.Point{}, draw.Src)

		borderRect := image.Rect(borderWidth, borderWidth, width-borderWidth, height-borderWidth)
		draw.Draw(img, borderRect, &image.Uniform{palette[7]}, image.Point{}, draw.Over)

		drawBaselineGrid(img, bm)

		for p := range visited {
			draw.Draw(img, cellRect(p), &image.Uniform{palette[4]}, image.Point{}, draw.Over)
		}

		draw.Draw(img, cellRect(current), &image.Uniform{palette[5]}, image.Point{}, draw.Over)
		draw.Draw(img, cellRect(bm.Start), &image.Uniform{palette[2]}, image.Point{}, draw.Over)
		draw.Draw(img, cellRect(bm.Goal), &image.Uniform{palette[3]}, image.Point{}, draw.Over)

		g.Image = append(g.Image, img)
		g.Delay = append(g.Delay, 20)
		g.Disposal = append(g.Disposal, gif.DisposalBackground)
	}

	if len(bm.Solution.Path) > 0 {
		img := image.NewPaletted(image.Rect(0, 0, width, height), palette)
		draw.Draw(img, img.Bounds(), &image.Uniform{palette[0]}, image.Point{}, draw.Src)

		borderRect := image.Rect(borderWidth, borderWidth, width-borderWidth, height-borderWidth)
		draw.Draw(img, borderRect, &image.Uniform{palette[7]}, image.Point{}, draw.Over)

		drawBaselineGrid(img, bm)

		for p := range visited {
			draw.Draw(img, cellRect(p), &image.Uniform{palette[4]}, image.Point{}, draw.Over)
		}
		for _, p := range bm.Solution.Path {
			draw.Draw(img, cellRect(p), &image.Uniform{palette[6]}, image.Point{}, draw.Over)
		}
		draw.Draw(img, cellRect(bm.Start), &image.Uniform{palette[2]}, image.Point{}, draw.Over)
		draw.Draw(img, cellRect(bm.Goal), &image.Uniform{palette[3]}, image.Point{}, draw.Over)

		g.Image = append(g.Image, img)
		g.Delay = append(g.Delay, 300)
		g.Disposal = append(g.Disposal, gif.DisposalBackground)
	}

	buf := new(bytes.Buffer)
	if err := gif.EncodeAll(buf, g); err != nil {
		return nil, err
	}
	return buf, nil
}

// CreateSolutionImage renders a single PNG snapshot of a comparison-solver
// run: base grid, explored cells, solution path, start and goal markers.
func CreateSolutionImage(bm *BaselineMaze) (*bytes.Buffer, error) {
	width := bm.Width*cellSize + 2*borderWidth
	height := bm.Height*cellSize + 2*borderWidth

	img := image.NewPaletted(image.Rect(0, 0, width, height), palette)
	draw.Draw(img, img.Bounds(), &image.Uniform{palette[0]}, image.Point{}, draw.Src)

	borderRect := image.Rect(borderWidth, borderWidth, width-borderWidth, height-borderWidth)
	draw.Draw(img, borderRect, &image.Uniform{palette[7]}, image.Point{}, draw.Over)

	drawBaselineGrid(img, bm)

	for _, p := range bm.Explored {
		draw.Draw(img, cellRect(p), &image.Uniform{palette[4]}, image.Point{}, draw.Over)
	}
	for _, p := range bm.Solution.Path {
		draw.Draw(img, cellRect(p), &image.Uniform{palette[6]}, image.Point{}, draw.Over)
	}
	draw.Draw(img, cellRect(bm.Start), &image.Uniform{palette[2]}, image.Point{}, draw.Over)
	draw.Draw(img, cellRect(bm.Goal), &image.Uniform{palette[3]}, image.Point{}, draw.Over)

	buf := new(bytes.Buffer)
	if err := png.Encode(buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode PNG: %w", err)
	}
	return buf, nil
}

// RenderPath renders a single PNG snapshot of a Path found by the
// scoring-aware engine directly against its source Maze, with no
// intermediate BaselineMaze: walls are black, coin and drill tiles orange,
// every other tile (danger included) the background color; coin, drill
// and danger tiles carry a text label, and the path is drawn over it all
// in the solution color.
func RenderPath(m *Maze, p Path) (*bytes.Buffer, error) {
	width := m.Width*cellSize + 2*borderWidth
	height := m.Height*cellSize + 2*borderWidth

	img := image.NewPaletted(image.Rect(0, 0, width, height), palette)
	draw.Draw(img, img.Bounds(), &image.Uniform{palette[0]}, image.Point{}, draw.Src)

	borderRect := image.Rect(borderWidth, borderWidth, width-borderWidth, height-borderWidth)
	draw.Draw(img, borderRect, &image.Uniform{palette[7]}, image.Point{}, draw.Over)

	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			pt := Point{X: x, Y: y}
			colIdx := tileColorIndex(m.At(pt))
			draw.Draw(img, cellRect(pt), &image.Uniform{palette[colIdx]}, image.Point{}, draw.Src)
			if label := tileLabel(m.At(pt)); label != "" {
				drawLabel(img, pt, label)
			}
		}
	}

	for _, loc := range p {
		draw.Draw(img, cellRect(loc.Point), &image.Uniform{palette[6]}, image.Point{}, draw.Over)
	}
	draw.Draw(img, cellRect(m.Start), &image.Uniform{palette[2]}, image.Point{}, draw.Over)
	draw.Draw(img, cellRect(m.End), &image.Uniform{palette[3]}, image.Point{}, draw.Over)

	buf := new(bytes.Buffer)
	if err := png.Encode(buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode PNG: %w", err)
	}
	return buf, nil
}

func tileColorIndex(t Tile) int {
	switch t {
	case TileWall:
		return 1
	case TileCoin, TileDrill:
		return 8
	default:
		return 0
	}
}

func tileLabel(t Tile) string {
	switch t {
	case TileCoin:
		return "$"
	case TileDrill:
		return "T"
	case TileDanger:
		return "!"
	default:
		return ""
	}
}

func drawBaselineGrid(img *image.Paletted, bm *BaselineMaze) {
	for y := 0; y < bm.Height; y++ {
		for x := 0; x < bm.Width; x++ {
			p := Point{X: x, Y: y}
			sq := bm.Squares[y][x]
			colIdx := 0
			if sq.IsWall {
				colIdx = 1
			} else if sq.Cost > 1 {
				colIdx = 8
			}
			draw.Draw(img, cellRect(p), &image.Uniform{palette[colIdx]}, image.Point{}, draw.Src)
			if sq.Cost > 1 && !sq.IsWall {
				drawLabel(img, p, fmt.Sprintf("%d", sq.Cost))
			}
		}
	}
}

func cellRect(p Point) image.Rectangle {
	return image.Rect(
		p.X*cellSize+borderWidth,
		p.Y*cellSize+borderWidth,
		(p.X+1)*cellSize+borderWidth,
		(p.Y+1)*cellSize+borderWidth,
	)
}

func drawLabel(img *image.Paletted, p Point, text string) {
	x := p.X*cellSize + borderWidth + cellSize/4
	y := p.Y*cellSize + borderWidth + cellSize/2
	point := fixed.Point26_6{X: fixed.Int26_6(x * 64), Y: fixed.Int26_6(y * 64)}
	drawer := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.Black),
		Face: basicfont.Face7x13,
		Dot:  point,
	}
	drawer.DrawString(text)
}

// CreateResultFilename builds the "<input>_<algo>.<ext>" render filename
// the CLI's multi-algorithm fan-out writes one of per solver variant.
func CreateResultFilename(dir, input, algo, ext string) string {
	return filepath.Join(dir, fmt.Sprintf("%s_%s.%s", input, algo, ext))
}
