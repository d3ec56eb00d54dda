// Package placeholder renders deterministic stand-in card images for cards
// with no usable upstream image URL. The same (card, category) pair always
// produces byte-identical PNG output, so repeated renders never flicker.
package placeholder

import (
	"bytes"
	"fmt"
	"hash/fnv"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"go-scancollect-backend/internal/domain"
)

const (
	cardWidth  = 260
	cardHeight = 360
)

type gradient struct {
	top, bottom color.RGBA
}

// Background palettes keyed by rarity tier, matching the product's rarity
// colour conventions.
var rarityGradients = map[string]gradient{
	"rare":        {color.RGBA{0xff, 0xd7, 0x00, 0xff}, color.RGBA{0xff, 0xed, 0x4e, 0xff}},
	"super rare":  {color.RGBA{0xff, 0xd7, 0x00, 0xff}, color.RGBA{0xff, 0xed, 0x4e, 0xff}},
	"secret rare": {color.RGBA{0xff, 0xd7, 0x00, 0xff}, color.RGBA{0xff, 0xed, 0x4e, 0xff}},
	"epic":        {color.RGBA{0xff, 0x6b, 0x6b, 0xff}, color.RGBA{0xee, 0x5a, 0x52, 0xff}},
	"legendary":   {color.RGBA{0xff, 0x6b, 0x6b, 0xff}, color.RGBA{0xee, 0x5a, 0x52, 0xff}},
	"mythic":      {color.RGBA{0xa8, 0x55, 0xf7, 0xff}, color.RGBA{0x7c, 0x3a, 0xed, 0xff}},
}

var defaultGradient = gradient{color.RGBA{0x66, 0x7e, 0xea, 0xff}, color.RGBA{0x76, 0x4b, 0xa2, 0xff}}

// Synthesize renders a placeholder PNG for the given card. Empty fields
// degrade to defaults; the function never fails on card content.
func Synthesize(card domain.UnifiedCard, categoryHint string) ([]byte, error) {
	img := image.NewRGBA(image.Rect(0, 0, cardWidth, cardHeight))

	paintGradient(img, gradientFor(card.Rarity))
	drawFrame(img)
	drawIdenticon(img, identSeed(card, categoryHint))

	name := card.Name
	if name == "" {
		name = "Card"
	}
	rarity := card.Rarity
	if rarity == "" {
		rarity = "Common"
	}

	drawCenteredText(img, name, 60, color.White)
	if card.SetIdentifier != "" || card.Number != "" {
		drawCenteredText(img, strings.TrimSpace(card.SetIdentifier+" #"+card.Number), 90, color.White)
	}
	drawCenteredText(img, rarity, 118, color.White)
	if card.PriceSummary != nil {
		drawCenteredText(img, fmt.Sprintf("$%.2f", card.PriceSummary.Min), 310, color.White)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func gradientFor(rarity string) gradient {
	if g, ok := rarityGradients[strings.ToLower(rarity)]; ok {
		return g
	}
	return defaultGradient
}

func paintGradient(img *image.RGBA, g gradient) {
	for y := 0; y < cardHeight; y++ {
		t := float64(y) / float64(cardHeight-1)
		row := color.RGBA{
			R: lerp(g.top.R, g.bottom.R, t),
			G: lerp(g.top.G, g.bottom.G, t),
			B: lerp(g.top.B, g.bottom.B, t),
			A: 0xff,
		}
		draw.Draw(img, image.Rect(0, y, cardWidth, y+1), image.NewUniform(row), image.Point{}, draw.Src)
	}
}

func lerp(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*t)
}

// drawFrame paints the outer white border rectangle.
func drawFrame(img *image.RGBA) {
	white := image.NewUniform(color.White)
	// top, bottom, left, right edges of a 3px frame inset by 15px
	draw.Draw(img, image.Rect(15, 15, cardWidth-15, 18), white, image.Point{}, draw.Src)
	draw.Draw(img, image.Rect(15, cardHeight-18, cardWidth-15, cardHeight-15), white, image.Point{}, draw.Src)
	draw.Draw(img, image.Rect(15, 15, 18, cardHeight-15), white, image.Point{}, draw.Src)
	draw.Draw(img, image.Rect(cardWidth-18, 15, cardWidth-15, cardHeight-15), white, image.Point{}, draw.Src)
}

func identSeed(card domain.UnifiedCard, categoryHint string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(card.Name))
	_, _ = h.Write([]byte{0})
	_, _ = h.Write([]byte(card.Rarity))
	_, _ = h.Write([]byte{0})
	_, _ = h.Write([]byte(categoryHint))
	return h.Sum64()
}

// drawIdenticon fills the art box with a mirrored 5x5 block pattern derived
// from the placeholder seed, so distinct cards stay visually distinct.
func drawIdenticon(img *image.RGBA, seed uint64) {
	const (
		cells  = 5
		size   = 28
		startX = (cardWidth - cells*size) / 2
		startY = 160
	)
	block := image.NewUniform(color.RGBA{0xff, 0xff, 0xff, 0x59})

	bits := seed
	for col := 0; col < (cells+1)/2; col++ {
		for row := 0; row < cells; row++ {
			if bits&1 == 1 {
				x := startX + col*size
				y := startY + row*size
				draw.Draw(img, image.Rect(x, y, x+size, y+size), block, image.Point{}, draw.Over)
				// mirror across the vertical axis
				mx := startX + (cells-1-col)*size
				draw.Draw(img, image.Rect(mx, y, mx+size, y+size), block, image.Point{}, draw.Over)
			}
			bits >>= 1
		}
	}
}

func drawCenteredText(img *image.RGBA, text string, y int, col color.Color) {
	face := basicfont.Face7x13
	width := font.MeasureString(face, text).Ceil()
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  fixed.P((cardWidth-width)/2, y),
	}
	d.DrawString(text)
}
