package ui

import (
	"fmt"
	"image"
	"image/png"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"golang.org/x/image/draw"
)

// ChartView shows the chart image scaled into a fixed viewport
type ChartView struct {
	path  string
	size  fyne.Size
	image *canvas.Image
}

// NewChartView creates an empty chart view for the image at path
func NewChartView(path string, size fyne.Size) *ChartView {
	img := canvas.NewImageFromImage(image.NewRGBA(image.Rect(0, 0, int(size.Width), int(size.Height))))
	img.FillMode = canvas.ImageFillStretch
	img.ScaleMode = canvas.ImageScaleSmooth
	img.Resize(size)

	return &ChartView{path: path, size: size, image: img}
}

// Object returns the canvas object to place in the window
func (v *ChartView) Object() fyne.CanvasObject {
	return v.image
}

// Image returns the currently displayed image
func (v *ChartView) Image() image.Image {
	return v.image.Image
}

// Reload decodes the chart file and swaps it in. On failure the current
// image stays.
func (v *ChartView) Reload() error {
	f, err := os.Open(v.path)
	if err != nil {
		return fmt.Errorf("open chart: %w", err)
	}
	defer f.Close()

	src, err := png.Decode(f)
	if err != nil {
		return fmt.Errorf("decode chart %s: %w", v.path, err)
	}

	v.image.Image = Rescale(src, int(v.size.Width), int(v.size.Height))
	return nil
}

// Rescale returns src smoothly resampled to w×h
func Rescale(src image.Image, w, h int) image.Image {
	if w <= 0 || h <= 0 {
		return src
	}
	if b := src.Bounds(); b.Dx() == w && b.Dy() == h {
		return src
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}
