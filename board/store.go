// Package board holds the images placed on the canvas, independent of how
// they are drawn.
package board

// PlacedImage is one pasted image. X and Y are the world position of its
// top-left corner. W and H are its pixel size, known once Src is decoded;
// they are not persisted.
type PlacedImage struct {
	ID  string
	Src string
	X   float64
	Y   float64
	W   float64
	H   float64
}

// Contains reports whether the world point lies on the image.
func (p *PlacedImage) Contains(wx, wy float64) bool {
	return wx >= p.X && wx < p.X+p.W &&
		wy >= p.Y && wy < p.Y+p.H
}

// Store keeps placed images in creation order.
type Store struct {
	images []PlacedImage
	index  map[string]int
}

func NewStore() *Store {
	return &Store{index: make(map[string]int)}
}

// Append adds img after every existing image.
func (s *Store) Append(img PlacedImage) {
	s.index[img.ID] = len(s.images)
	s.images = append(s.images, img)
}

// UpdatePosition moves the image with the given id. Unknown ids are ignored.
func (s *Store) UpdatePosition(id string, x, y float64) bool {
	i, ok := s.index[id]
	if !ok {
		return false
	}
	s.images[i].X = x
	s.images[i].Y = y
	return true
}

// SetSize records the decoded pixel size of an image.
func (s *Store) SetSize(id string, w, h float64) bool {
	i, ok := s.index[id]
	if !ok {
		return false
	}
	s.images[i].W = w
	s.images[i].H = h
	return true
}

func (s *Store) Get(id string) (PlacedImage, bool) {
	i, ok := s.index[id]
	if !ok {
		return PlacedImage{}, false
	}
	return s.images[i], true
}

// All returns a copy of every image in creation order.
func (s *Store) All() []PlacedImage {
	out := make([]PlacedImage, len(s.images))
	copy(out, s.images)
	return out
}

func (s *Store) Len() int {
	return len(s.images)
}

// HitTest returns the id of the topmost image under the world point, or ""
// when the point is on empty canvas. Later images are drawn on top.
func (s *Store) HitTest(wx, wy float64) string {
	for i := len(s.images) - 1; i >= 0; i-- {
		if s.images[i].Contains(wx, wy) {
			return s.images[i].ID
		}
	}
	return ""
}
