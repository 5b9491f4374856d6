package pocketui

// ContentMode determines how a view's recorded content size maps into
// its current frame when the two differ.
type ContentMode int

const (
	ContentScaleToFill ContentMode = iota
	ContentScaleAspectFit
	ContentScaleAspectFill
	ContentRedraw
	ContentCenter
	ContentTop
	ContentBottom
	ContentLeft
	ContentRight
	ContentTopLeft
	ContentTopRight
	ContentBottomLeft
	ContentBottomRight
)

// BlendMode selects pixel compositing for drawing operations.
type BlendMode int

const (
	// BlendNormal is source-over alpha compositing.
	BlendNormal BlendMode = 0
	// BlendCopy replaces destination pixels outright.
	BlendCopy BlendMode = 17
)

// Alignment positions text horizontally inside its rectangle.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
	AlignJustified
	AlignNatural
)

// LineBreakMode controls wrapping and truncation of drawn text.
type LineBreakMode int

const (
	LineBreakWordWrap LineBreakMode = iota
	LineBreakCharWrap
	LineBreakClip
	LineBreakTruncateHead
	LineBreakTruncateTail
	LineBreakTruncateMiddle
)

// TouchPhase describes where a touch is in its lifecycle.
type TouchPhase string

const (
	TouchBegan      TouchPhase = "began"
	TouchMoved      TouchPhase = "moved"
	TouchStationary TouchPhase = "stationary"
	TouchEnded      TouchPhase = "ended"
	TouchCancelled  TouchPhase = "cancelled"
)

// MouseTouchID is the sentinel touch id used for the pointer device.
// Physical touches use non-negative ids.
const MouseTouchID = -1

// Line cap styles for stroked paths.
const (
	LineCapButt = iota
	LineCapRound
	LineCapSquare
)

// Line join styles for stroked paths.
const (
	LineJoinMiter = iota
	LineJoinRound
	LineJoinBevel
)
