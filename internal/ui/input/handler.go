package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/mitchelldurbincs/CrystalCaves/internal/ui/dispatch"
)

// KeyBinding ties a physical key to a logical one
type KeyBinding struct {
	Key     ebiten.Key
	Binding dispatch.Key
}

// DefaultBindings are the keys shown in the side panel legend
var DefaultBindings = []KeyBinding{
	{Key: ebiten.KeyR, Binding: dispatch.KeySolve},
	{Key: ebiten.KeyC, Binding: dispatch.KeyClear},
	{Key: ebiten.KeyE, Binding: dispatch.KeyExport},
}

// Handler polls ebiten once per tick and records what happened
type Handler struct {
	bindings []KeyBinding
	frame    dispatch.Frame
}

func NewHandler() *Handler {
	return &Handler{bindings: DefaultBindings}
}

// Update polls the mouse and keyboard. Call it once per ebiten Update.
func (h *Handler) Update() dispatch.Frame {
	x, y := ebiten.CursorPosition()

	h.frame = dispatch.Frame{
		CursorX:    x,
		CursorY:    y,
		LeftClick:  inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		RightClick: inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight),
	}
	for _, b := range h.bindings {
		if inpututil.IsKeyJustPressed(b.Key) {
			h.frame.Keys = append(h.frame.Keys, b.Binding)
		}
	}
	return h.frame
}

// Frame returns the input recorded by the last Update
func (h *Handler) Frame() dispatch.Frame {
	return h.frame
}

// QuitRequested reports whether the player asked to close the window
func (h *Handler) QuitRequested() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEscape)
}
