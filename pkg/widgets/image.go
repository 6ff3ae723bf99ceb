package widgets

import (
	"github.com/go-drift/ggui/pkg/graphics"
	"github.com/go-drift/ggui/pkg/skin"
)

// Image draws a sprite stretched over its node.
type Image struct {
	// Sprite is the image asset. skin.MissingSprite marks a style that had
	// no image for this slot.
	Sprite skin.Sprite
	// Color tints the sprite.
	Color graphics.Color
	// Type is the draw mode.
	Type           skin.ImageType
	PreserveAspect bool
	FillCenter     bool
	Material       string
	// FillAmount is the drawn fraction for skin.ImageFilled images.
	FillAmount float64
	// TrailAmount is a fainter segment drawn from FillAmount to
	// FillAmount+TrailAmount. Negative values trail back over the fill.
	TrailAmount float64
}

// ImageFrom configures an image from a style slot.
func ImageFrom(s *skin.Style, sprite skin.Sprite, tint graphics.Color) *Image {
	return &Image{
		Sprite:         sprite,
		Color:          tint,
		Type:           s.ImageType,
		PreserveAspect: s.PreserveAspect,
		FillCenter:     s.FillCenter,
		Material:       s.Material,
		FillAmount:     1,
	}
}

// IsMissing reports whether the image shows the missing-asset placeholder.
func (i *Image) IsMissing() bool { return i.Sprite == skin.MissingSprite }
