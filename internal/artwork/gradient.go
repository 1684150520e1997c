package artwork

import (
	"hash/fnv"
	"image"
	_ "image/jpeg" // decoder registration
	_ "image/png"  // decoder registration
	"os"

	colorful "github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/draw"
)

// Gradient is a vertical two-stop gradient, top fading to bottom.
type Gradient struct {
	Top    string // hex, dominant tone
	Bottom string // hex, fixed dark neutral
}

// bottomStop is the shared dark anchor every gradient fades into.
const bottomStop = "#121212"

// DefaultGradient is returned when no image is available.
var DefaultGradient = Gradient{Top: "#535353", Bottom: bottomStop}

// presets are used when an image decodes but yields no usable pixels.
var presets = []Gradient{
	{Top: "#1d3a5f", Bottom: bottomStop},
	{Top: "#5f1d42", Bottom: bottomStop},
	{Top: "#3a5f1d", Bottom: bottomStop},
}

const (
	sampleSize    = 100 // downsample target, both axes
	sampleStride  = 4   // every 4th pixel
	minAlpha      = 128
	minChannelSum = 60  // near-black cutoff
	maxChannelSum = 700 // near-white cutoff

	lumUpper     = 160.0
	lumLower     = 40.0
	channelFloor = 20.0
	darkLift     = 40.0
	desatCeiling = 200.0
)

// Extract derives a gradient from the image at path. It never fails: a
// missing path or undecodable image produces DefaultGradient, and an image
// with no usable pixels (fully transparent, all near-black or near-white)
// produces one of the presets, chosen by a stable hash of the path.
func Extract(path string) Gradient {
	if path == "" {
		return DefaultGradient
	}

	file, err := os.Open(path)
	if err != nil {
		return DefaultGradient
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return DefaultGradient
	}

	return fromImage(img, path)
}

func fromImage(img image.Image, path string) Gradient {
	bounds := img.Bounds()
	if bounds.Empty() {
		return DefaultGradient
	}

	// Downsample for speed before pixel sampling.
	small := image.NewRGBA(image.Rect(0, 0, sampleSize, sampleSize))
	draw.CatmullRom.Scale(small, small.Bounds(), img, bounds, draw.Over, nil)

	r, g, b, ok := dominantColor(small)
	if !ok {
		return presets[presetIndex(path)]
	}

	r, g, b = correctLuminance(r, g, b)

	top := colorful.Color{R: r / 255, G: g / 255, B: b / 255}
	return Gradient{Top: top.Clamped().Hex(), Bottom: bottomStop}
}

// dominantColor buckets sampled pixels at 16 levels per channel and
// averages the most populated bucket.
func dominantColor(img *image.RGBA) (r, g, b float64, ok bool) {
	type bucket struct {
		count   int
		r, g, b int
	}
	buckets := map[[3]uint8]*bucket{}

	pix := img.Pix
	for i := 0; i+3 < len(pix); i += 4 * sampleStride {
		pr, pg, pb, pa := int(pix[i]), int(pix[i+1]), int(pix[i+2]), int(pix[i+3])
		if pa < minAlpha {
			continue
		}
		sum := pr + pg + pb
		if sum < minChannelSum || sum > maxChannelSum {
			continue
		}
		key := [3]uint8{uint8(pr >> 4), uint8(pg >> 4), uint8(pb >> 4)}
		bk := buckets[key]
		if bk == nil {
			bk = &bucket{}
			buckets[key] = bk
		}
		bk.count++
		bk.r += pr
		bk.g += pg
		bk.b += pb
	}

	var best *bucket
	for _, bk := range buckets {
		if best == nil || bk.count > best.count {
			best = bk
		}
	}
	if best == nil || best.count == 0 {
		return 0, 0, 0, false
	}

	n := float64(best.count)
	return float64(best.r) / n, float64(best.g) / n, float64(best.b) / n, true
}

// correctLuminance keeps the dominant tone inside a band that reads well
// behind text: too-bright tones are scaled down, too-dark tones lifted,
// and a single screaming channel is desaturated.
func correctLuminance(r, g, b float64) (float64, float64, float64) {
	lum := 0.299*r + 0.587*g + 0.114*b

	switch {
	case lum > lumUpper:
		scale := lumUpper / lum
		r = max(r*scale, channelFloor)
		g = max(g*scale, channelFloor)
		b = max(b*scale, channelFloor)
	case lum < lumLower:
		r = min(r+darkLift, 255)
		g = min(g+darkLift, 255)
		b = min(b+darkLift, 255)
	default:
		brightest := max(r, max(g, b))
		if brightest > desatCeiling {
			scale := desatCeiling / brightest
			r *= scale
			g *= scale
			b *= scale
		}
	}
	return r, g, b
}

// Blend returns the gradient color at position t in [0,1], top to bottom.
// Used to paint the vertical fade row by row.
func (g Gradient) Blend(t float64) string {
	if t <= 0 {
		return g.Top
	}
	if t >= 1 {
		return g.Bottom
	}
	top, err1 := colorful.Hex(g.Top)
	bot, err2 := colorful.Hex(g.Bottom)
	if err1 != nil || err2 != nil {
		return g.Bottom
	}
	return top.BlendLuv(bot, t).Clamped().Hex()
}

func presetIndex(path string) int {
	h := fnv.New32a()
	h.Write([]byte(path))
	return int(h.Sum32()) % len(presets)
}
