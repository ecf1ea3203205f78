package storage

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"math"

	"image-board/board"
	"image-board/canvas"
)

// DefaultKey is the key the board is saved under.
const DefaultKey = "imageCanvasState"

// State is everything that survives a restart.
type State struct {
	Viewport canvas.Viewport
	Images   []board.PlacedImage
}

// DefaultState is an identity view over an empty board.
func DefaultState() State {
	return State{Viewport: canvas.DefaultViewport(), Images: []board.PlacedImage{}}
}

type blob struct {
	Scale   float64       `json:"scale"`
	OffsetX float64       `json:"offsetX"`
	OffsetY float64       `json:"offsetY"`
	Images  []imageRecord `json:"images"`
}

type imageRecord struct {
	Src string   `json:"src"`
	X   float64  `json:"x"`
	Y   float64  `json:"y"`
	ID  recordID `json:"id"`
}

// recordID accepts both strings and numbers; older saves used numeric ids.
type recordID string

func (id *recordID) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = recordID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("image id: %w", err)
	}
	*id = recordID(n.String())
	return nil
}

// Encode serialises a board state to its stored form.
func Encode(s State) ([]byte, error) {
	b := blob{
		Scale:   s.Viewport.Scale,
		OffsetX: s.Viewport.OffsetX,
		OffsetY: s.Viewport.OffsetY,
		Images:  make([]imageRecord, 0, len(s.Images)),
	}
	for _, img := range s.Images {
		b.Images = append(b.Images, imageRecord{
			Src: img.Src,
			X:   img.X,
			Y:   img.Y,
			ID:  recordID(img.ID),
		})
	}
	return json.Marshal(&b)
}

// Decode parses a stored board state. Missing or invalid view fields fall
// back to the identity view; images without an id get a fresh one.
func Decode(data []byte) (State, error) {
	var b blob
	if err := json.Unmarshal(data, &b); err != nil {
		return State{}, err
	}

	s := DefaultState()
	view := canvas.Viewport{Scale: b.Scale, OffsetX: b.OffsetX, OffsetY: b.OffsetY}
	if !view.Valid() {
		view = canvas.Viewport{Scale: 1, OffsetX: finiteOr(b.OffsetX, 0), OffsetY: finiteOr(b.OffsetY, 0)}
	}
	s.Viewport = view

	for _, r := range b.Images {
		id := string(r.ID)
		if id == "" {
			id = board.NewID()
		}
		s.Images = append(s.Images, board.PlacedImage{
			ID:  id,
			Src: r.Src,
			X:   finiteOr(r.X, 0),
			Y:   finiteOr(r.Y, 0),
		})
	}
	return s, nil
}

func finiteOr(v, fallback float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fallback
	}
	return v
}

// Adapter saves and loads the board under one key.
type Adapter struct {
	store Store
	key   string
}

func NewAdapter(store Store, key string) *Adapter {
	if key == "" {
		key = DefaultKey
	}
	return &Adapter{store: store, key: key}
}

// Save overwrites the stored board. Failures are logged and otherwise
// ignored; the next save cycle tries again.
func (a *Adapter) Save(view canvas.Viewport, images []board.PlacedImage) {
	if err := a.TrySave(view, images); err != nil {
		log.Println("save board:", err)
	}
}

// TrySave is Save with the error returned.
func (a *Adapter) TrySave(view canvas.Viewport, images []board.PlacedImage) error {
	data, err := Encode(State{Viewport: view, Images: images})
	if err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return a.store.Put(a.key, data)
}

// Load returns the stored board, or false when nothing usable is stored.
func (a *Adapter) Load() (State, bool) {
	data, err := a.store.Get(a.key)
	if errors.Is(err, ErrNotFound) {
		return State{}, false
	}
	if err != nil {
		log.Println("load board:", err)
		return State{}, false
	}
	s, err := Decode(data)
	if err != nil {
		log.Println("load board: discarding unreadable state:", err)
		return State{}, false
	}
	return s, true
}

// LoadOrDefault returns the stored board or DefaultState.
func (a *Adapter) LoadOrDefault() State {
	if s, ok := a.Load(); ok {
		return s
	}
	return DefaultState()
}

// Key is the storage key used by the adapter.
func (a *Adapter) Key() string {
	return a.key
}
