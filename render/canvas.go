package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"geotile/geom"
)

// Canvas is the abstract 2D drawing surface the renderer composites onto.
// The concrete drawing backend is an external collaborator; ImageCanvas
// below is this package's own default implementation, not the spec's
// "concrete 2D drawing library".
type Canvas interface {
	Fill(c color.Color)
	DrawLine(pts []geom.Coordinate, c color.Color, width float32, dashed bool)
	DrawPolygon(pts []geom.Coordinate, fill color.Color)
	DrawText(pt geom.Coordinate, text string, style TextStyle)
}

// TextStyle carries the (minimal, non-anti-aliased) parameters used to
// draw a PopulatedPlace label; anti-aliased typography is out of scope.
type TextStyle struct {
	Color color.Color
}

// ImageCanvas rasterizes onto a stdlib image.RGBA: filled polygons go
// through golang.org/x/image/vector, lines through a Bresenham stroker
// generalized from character-cell drawing to pixel spans, and labels
// through golang.org/x/image/font/basicfont (no anti-aliasing).
type ImageCanvas struct {
	img *image.RGBA
}

// NewImageCanvas allocates a width x height canvas.
func NewImageCanvas(width, height int) *ImageCanvas {
	return &ImageCanvas{img: image.NewRGBA(image.Rect(0, 0, width, height))}
}

// Image returns the underlying image. Valid only after rendering
// finishes; the renderer does not mutate it concurrently with readers.
func (c *ImageCanvas) Image() *image.RGBA { return c.img }

func (c *ImageCanvas) Fill(col color.Color) {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{}, draw.Src)
}

func (c *ImageCanvas) DrawPolygon(pts []geom.Coordinate, fill color.Color) {
	if len(pts) < 2 {
		return
	}
	b := c.img.Bounds()
	raster := vector.NewRasterizer(b.Dx(), b.Dy())
	raster.MoveTo(pts[0].X, pts[0].Y)
	for _, p := range pts[1:] {
		raster.LineTo(p.X, p.Y)
	}
	raster.ClosePath()

	mask := image.NewAlpha(image.Rect(0, 0, b.Dx(), b.Dy()))
	raster.Draw(mask, mask.Bounds(), image.NewUniform(color.Opaque), image.Point{})
	draw.DrawMask(c.img, b, image.NewUniform(fill), image.Point{}, mask, image.Point{}, draw.Over)
}

func (c *ImageCanvas) DrawLine(pts []geom.Coordinate, col color.Color, width float32, dashed bool) {
	if len(pts) < 2 {
		return
	}
	for i := 0; i < len(pts)-1; i++ {
		c.strokeSegment(pts[i], pts[i+1], col, width, dashed)
	}
}

// strokeSegment draws one segment of a polyline with Bresenham's
// algorithm, stamping a square pen 2*int(width/2)+1 pixels wide at each
// step (so width 1.5 gives 1 pixel and width 2 gives 3); generalized from the terminal
// map renderer's single-pixel character-cell line drawing to a filled
// pixel span.
func (c *ImageCanvas) strokeSegment(p0, p1 geom.Coordinate, col color.Color, width float32, dashed bool) {
	x0, y0 := int(math.Round(float64(p0.X))), int(math.Round(float64(p0.Y)))
	x1, y1 := int(math.Round(float64(p1.X))), int(math.Round(float64(p1.Y)))

	dx := abs(x1 - x0)
	dy := abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx - dy

	half := int(math.Max(0, float64(width)/2))
	step := 0
	for {
		if !dashed || (step/3)%2 == 0 {
			c.stampDot(x0, y0, half, col)
		}
		step++
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

func (c *ImageCanvas) stampDot(x, y, half int, col color.Color) {
	b := c.img.Bounds()
	for dy := -half; dy <= half; dy++ {
		for dx := -half; dx <= half; dx++ {
			px, py := x+dx, y+dy
			if image.Pt(px, py).In(b) {
				c.img.Set(px, py, col)
			}
		}
	}
}

func (c *ImageCanvas) DrawText(pt geom.Coordinate, text string, style TextStyle) {
	face := basicfont.Face7x13
	d := &font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(style.Color),
		Face: face,
		Dot:  fixed.P(int(pt.X), int(pt.Y)),
	}
	d.DrawString(text)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
