package surface

import (
	"github.com/emirpasic/gods/stacks/arraystack"

	"github.com/gogpu/ggplot/geom"
)

type clipState struct {
	rect  geom.Rect
	empty bool
}

// ClipStack tracks nested rectangular clips. Each level holds the
// intersection of all the clips pushed so far with the surface bounds.
type ClipStack struct {
	bounds geom.Rect
	stack  *arraystack.Stack
}

// NewClipStack returns an empty stack over bounds.
func NewClipStack(bounds geom.Rect) *ClipStack {
	return &ClipStack{bounds: bounds, stack: arraystack.New()}
}

// Reset drops every level and sets new bounds.
func (c *ClipStack) Reset(bounds geom.Rect) {
	c.bounds = bounds
	c.stack.Clear()
}

// Push intersects the current clip with clip.
func (c *ClipStack) Push(clip *Clip) {
	cur := c.top()
	next := clipState{empty: true}
	if !cur.empty {
		if r, ok := cur.rect.Intersect(clip.bounds()); ok {
			next = clipState{rect: r}
		}
	}
	c.stack.Push(next)
}

// Pop restores the previous clip. It panics on an empty stack.
func (c *ClipStack) Pop() {
	if _, ok := c.stack.Pop(); !ok {
		panic("surface: PopClip without matching PushClip")
	}
}

// Current returns the visible area. ok is false when the clips exclude
// everything.
func (c *ClipStack) Current() (r geom.Rect, ok bool) {
	s := c.top()
	return s.rect, !s.empty
}

// Depth is the number of pushed clips.
func (c *ClipStack) Depth() int {
	return c.stack.Size()
}

func (c *ClipStack) top() clipState {
	if v, ok := c.stack.Peek(); ok {
		return v.(clipState)
	}
	return clipState{rect: c.bounds}
}
