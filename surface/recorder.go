package surface

import (
	"fmt"
	"math"

	"github.com/gogpu/ggplot/geom"
)

// CommandType identifies the type of a recorded command.
type CommandType uint8

const (
	CmdPrepare CommandType = iota
	CmdFill
	CmdDrawRect
	CmdDrawPath
	CmdDrawText
	CmdDrawTextLayout
	CmdPushClip
	CmdPopClip
)

var commandTypeNames = [...]string{
	CmdPrepare:        "Prepare",
	CmdFill:           "Fill",
	CmdDrawRect:       "DrawRect",
	CmdDrawPath:       "DrawPath",
	CmdDrawText:       "DrawText",
	CmdDrawTextLayout: "DrawTextLayout",
	CmdPushClip:       "PushClip",
	CmdPopClip:        "PopClip",
}

func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is a recorded Surface call. Commands hold copies of the draw
// items, so the caller may reuse its own after the call.
type Command interface {
	Type() CommandType
}

type PrepareCommand struct{ Size geom.Size }
type FillCommand struct{ Paint Paint }
type DrawRectCommand struct{ Rect Rect }
type DrawPathCommand struct{ Path Path }
type DrawTextCommand struct{ Text LineText }
type DrawTextLayoutCommand struct{ Text RichText }
type PushClipCommand struct{ Clip Clip }
type PopClipCommand struct{}

func (PrepareCommand) Type() CommandType        { return CmdPrepare }
func (FillCommand) Type() CommandType           { return CmdFill }
func (DrawRectCommand) Type() CommandType       { return CmdDrawRect }
func (DrawPathCommand) Type() CommandType       { return CmdDrawPath }
func (DrawTextCommand) Type() CommandType       { return CmdDrawText }
func (DrawTextLayoutCommand) Type() CommandType { return CmdDrawTextLayout }
func (PushClipCommand) Type() CommandType       { return CmdPushClip }
func (PopClipCommand) Type() CommandType        { return CmdPopClip }

// Recorder is a Surface that records the calls it receives. The recording
// can be inspected or replayed on another surface.
//
// With WithTextAsPaths, text is outlined when drawn and recorded as
// DrawPath commands.
type Recorder struct {
	opts     Options
	commands []Command
	clips    *ClipStack
}

// NewRecorder returns an empty recorder.
func NewRecorder(opts ...Option) *Recorder {
	return newRecorder(buildOptions(0, 0, opts))
}

func newRecorder(o Options) *Recorder {
	return &Recorder{opts: o, clips: NewClipStack(geom.Rect{})}
}

// Commands returns the recorded commands. The slice must not be modified.
func (r *Recorder) Commands() []Command { return r.commands }

// Types returns the type of every recorded command, in order.
func (r *Recorder) Types() []CommandType {
	out := make([]CommandType, len(r.commands))
	for i, c := range r.commands {
		out[i] = c.Type()
	}
	return out
}

// Reset drops the recording.
func (r *Recorder) Reset() {
	r.commands = r.commands[:0]
	r.clips.Reset(geom.Rect{})
}

func (r *Recorder) record(c Command) error {
	r.commands = append(r.commands, c)
	return nil
}

// Prepare records the frame size.
func (r *Recorder) Prepare(size geom.Size) error {
	if !(size.W > 0 && size.H > 0) || math.IsInf(size.W, 0) || math.IsInf(size.H, 0) {
		return fmt.Errorf("%w: %gx%g", ErrInvalidSize, size.W, size.H)
	}
	r.clips.Reset(geom.FromPS(geom.Point{}, size))
	return r.record(PrepareCommand{Size: size})
}

func (r *Recorder) Fill(p Paint) error {
	return r.record(FillCommand{Paint: p})
}

func (r *Recorder) DrawRect(rect *Rect) error {
	return r.record(DrawRectCommand{Rect: *rect})
}

func (r *Recorder) DrawPath(p *Path) error {
	return r.record(DrawPathCommand{Path: *p})
}

func (r *Recorder) DrawText(t *LineText) error {
	if !r.opts.TextAsPaths {
		return r.record(DrawTextCommand{Text: *t})
	}
	items, err := LineTextPaths(t, r.opts.fonts())
	if err != nil {
		return err
	}
	return drawPaths(r, items)
}

func (r *Recorder) DrawTextLayout(t *RichText) error {
	if !r.opts.TextAsPaths {
		return r.record(DrawTextLayoutCommand{Text: *t})
	}
	items, err := RichTextPaths(t, r.opts.fonts())
	if err != nil {
		return err
	}
	return drawPaths(r, items)
}

func (r *Recorder) PushClip(c *Clip) error {
	r.clips.Push(c)
	return r.record(PushClipCommand{Clip: *c})
}

// PopClip records the end of a clip. It panics when no clip was pushed.
func (r *Recorder) PopClip() error {
	r.clips.Pop()
	return r.record(PopClipCommand{})
}

// ClipDepth is the number of clips pushed and not yet popped.
func (r *Recorder) ClipDepth() int { return r.clips.Depth() }

// Replay issues the recorded calls on dst, stopping at the first error.
func (r *Recorder) Replay(dst Surface) error {
	for i, c := range r.commands {
		var err error
		switch c := c.(type) {
		case PrepareCommand:
			err = dst.Prepare(c.Size)
		case FillCommand:
			err = dst.Fill(c.Paint)
		case DrawRectCommand:
			err = dst.DrawRect(&c.Rect)
		case DrawPathCommand:
			err = dst.DrawPath(&c.Path)
		case DrawTextCommand:
			err = dst.DrawText(&c.Text)
		case DrawTextLayoutCommand:
			err = dst.DrawTextLayout(&c.Text)
		case PushClipCommand:
			err = dst.PushClip(&c.Clip)
		case PopClipCommand:
			err = dst.PopClip()
		}
		if err != nil {
			return fmt.Errorf("surface: replay command %d (%s): %w", i, c.Type(), err)
		}
	}
	return nil
}

var _ Surface = (*Recorder)(nil)
