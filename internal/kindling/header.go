package kindling

// HeaderKind selects the line type of a header.
type HeaderKind uint8

const (
	PlayerEvent HeaderKind = iota
	EntityEvent
	Function
	Process
)

var headerTags = [...]string{
	PlayerEvent: "player-event",
	EntityEvent: "entity-event",
	Function:    "def",
	Process:     "process",
}

func (k HeaderKind) String() string { return headerTags[k] }

// Header is one top-level line: `(def "name" (actions))`.
type Header struct {
	Kind HeaderKind
	Name string
	Code []Action
}

func (h Header) Value() Value {
	return tagged(h.Kind.String(), Text(h.Name), actionValues(h.Code))
}

// EmitHeader renders h as one text blob without a trailing newline.
func EmitHeader(h Header) string {
	return Emit(h.Value())
}
