// Package textures maps small integer identifiers to loaded images. The
// mapping is populated once at startup from a fixed table and is immutable
// afterwards; a lookup of an id outside the table is a collaborator bug.
package textures

import (
	"bytes"
	"io/fs"

	"github.com/burrowgames/gridface/shared/faults"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// table is the complete visual vocabulary. The ids are part of the sprite
// payload convention with the logic process.
var table = []struct {
	ID   uint8
	Path string
}{
	{0, "menu_background.png"},
	{10, "dungeon_ground.png"},
	{11, "dungeon_ground.png"},
	{12, "dungeon_ground.png"},
	{200, "warrior.png"},
	{201, "goblin.png"},
}

// Registry holds the id -> image mapping.
type Registry struct {
	images map[uint8]*ebiten.Image
}

// New returns an empty registry. Production code populates it through
// LoadAll; tests insert entries directly.
func New() *Registry {
	return &Registry{images: make(map[uint8]*ebiten.Image)}
}

// Insert registers an image under id, replacing any previous entry.
func (r *Registry) Insert(id uint8, img *ebiten.Image) {
	r.images[id] = img
}

// Get returns the image registered under id.
func (r *Registry) Get(id uint8) (*ebiten.Image, error) {
	img, ok := r.images[id]
	if !ok {
		return nil, faults.Contractf("textures.Get", "texture id %d not registered", id)
	}
	return img, nil
}

// LoadAll populates a registry from the fixed table, reading each path from
// assetSource. Any missing or undecodable file aborts construction: the
// session cannot start with a partial visual vocabulary.
func LoadAll(assetSource fs.FS) (*Registry, error) {
	r := New()
	for _, entry := range table {
		raw, err := fs.ReadFile(assetSource, entry.Path)
		if err != nil {
			return nil, faults.Configurationf("textures.LoadAll", "texture %d: read %s: %v", entry.ID, entry.Path, err)
		}
		img, _, err := ebitenutil.NewImageFromReader(bytes.NewReader(raw))
		if err != nil {
			return nil, faults.Configurationf("textures.LoadAll", "texture %d: decode %s: %v", entry.ID, entry.Path, err)
		}
		r.Insert(entry.ID, img)
	}
	return r, nil
}
