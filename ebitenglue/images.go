package ebitenglue

import "image"

import "github.com/hajimehoshi/ebiten/v2"

import "github.com/jens-hj/imgfont"

// An ImageStore is an imgfont.ImageSink that uploads each composited
// text strip as an Ebitengine texture, keyed by the owning entity.
// Storing a new strip for an entity replaces the previous texture.
type ImageStore struct {
	textures map[imgfont.EntityID]*ebiten.Image
}

// Creates an empty image store.
func NewImageStore() *ImageStore {
	return &ImageStore{ textures: make(map[imgfont.EntityID]*ebiten.Image) }
}

// Store uploads the strip and retains it for the entity.
func (self *ImageStore) Store(owner imgfont.EntityID, img *image.RGBA) {
	self.textures[owner] = ebiten.NewImageFromImage(img)
}

// Texture returns the entity's current strip, or (nil, false) if
// nothing has been rendered for it yet.
func (self *ImageStore) Texture(owner imgfont.EntityID) (*ebiten.Image, bool) {
	texture, found := self.textures[owner]
	return texture, found
}

// Discard drops the entity's texture, if any.
func (self *ImageStore) Discard(owner imgfont.EntityID) {
	delete(self.textures, owner)
}

// Draw paints the entity's strip with its top-left corner at the
// given target position, sampling with nearest filtering. A missing
// strip draws nothing.
func (self *ImageStore) Draw(target *ebiten.Image, owner imgfont.EntityID, x, y float64) {
	texture, found := self.textures[owner]
	if !found { return }
	opts := ebiten.DrawImageOptions{ Filter: ebiten.FilterNearest }
	opts.GeoM.Translate(x, y)
	target.DrawImage(texture, &opts)
}
