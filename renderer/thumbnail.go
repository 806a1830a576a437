package renderer

import rl "github.com/gen2brain/raylib-go/raylib"

// Thumbnail shows the frame currently on screen in a corner of the window.
// Textures are reloaded only when the path changes.
type Thumbnail struct {
	Width, Height int32
	Margin        int32

	path    string
	texture rl.Texture2D
	loaded  bool
}

// NewThumbnail creates a 160×120 thumbnail.
func NewThumbnail() *Thumbnail {
	return &Thumbnail{Width: 160, Height: 120, Margin: 10}
}

// Draw renders the image at path anchored to the bottom-right corner.
func (t *Thumbnail) Draw(path string, screenW, screenH int32) {
	if path == "" {
		return
	}
	if path != t.path {
		t.Unload()
		t.texture = rl.LoadTexture(path)
		t.loaded = t.texture.ID != 0
		t.path = path
	}
	if !t.loaded {
		return
	}

	src := rl.Rectangle{Width: float32(t.texture.Width), Height: float32(t.texture.Height)}
	dst := rl.Rectangle{
		X:      float32(screenW - t.Width - t.Margin),
		Y:      float32(screenH - t.Height - t.Margin),
		Width:  float32(t.Width),
		Height: float32(t.Height),
	}
	rl.DrawTexturePro(t.texture, src, dst, rl.Vector2{}, 0, rl.White)
}

// Unload frees the current texture.
func (t *Thumbnail) Unload() {
	if t.loaded {
		rl.UnloadTexture(t.texture)
		t.loaded = false
	}
	t.path = ""
}
