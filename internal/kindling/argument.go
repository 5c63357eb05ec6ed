package kindling

// Argument is a code-block argument. Value lowers it to its list form.
type Argument interface {
	Value() Value
	argNode()
}

type TextArg struct {
	Text string
}

type NumberArg struct {
	Number float64
}

// Location is a world position with rotation.
type Location struct {
	X, Y, Z    float64
	Pitch, Yaw float64
}

type Vector struct {
	X, Y, Z float64
}

type Potion struct {
	Type      string
	Ticks     int
	Amplifier int
}

// Sound; Variant is omitted from the output when empty.
type Sound struct {
	Type    string
	Variant string
	Pitch   float64
	Volume  float64
}

type GameValue struct {
	Type     string
	Selector string
}

// BlockTag emits three elements, or four when Var is set.
type BlockTag struct {
	Type string
	Opt  string
	Var  Argument
}

// Item carries a raw NBT payload.
type Item struct {
	NBT string
}

// Переменные по областям видимости.
type (
	FunctionVar struct{ Name string } // var
	ThreadVar   struct{ Name string } // local
	GameVar     struct{ Name string } // global
	SaveVar     struct{ Name string } // save
)

// Param reads the parameter at Index.
type Param struct {
	Index int
}

// ReturnedValue reads the value left by the last call.
type ReturnedValue struct{}

func tagged(tag string, rest ...Value) List {
	return append(List{Identifier(tag)}, rest...)
}

// Value quotes with whichever delimiter the text lacks; see Quote.
func (a TextArg) Value() Value {
	v, _ := Quote(a.Text)
	return tagged("text", v)
}

func (a NumberArg) Value() Value { return tagged("number", Number(a.Number)) }

func (a Location) Value() Value {
	return tagged("loc", Number(a.X), Number(a.Y), Number(a.Z), Number(a.Pitch), Number(a.Yaw))
}

func (a Vector) Value() Value {
	return tagged("vec", Number(a.X), Number(a.Y), Number(a.Z))
}

func (a Potion) Value() Value {
	return tagged("pot", Identifier(a.Type), Number(a.Ticks), Number(a.Amplifier))
}

func (a Sound) Value() Value {
	out := tagged("sound", Identifier(a.Type))
	if a.Variant != "" {
		out = append(out, Identifier(a.Variant))
	}
	return append(out, Number(a.Pitch), Number(a.Volume))
}

func (a GameValue) Value() Value {
	return tagged("val", Text(a.Type), Identifier(a.Selector))
}

func (a BlockTag) Value() Value {
	out := tagged("tag", Identifier(a.Type), Text(a.Opt))
	if a.Var != nil {
		out = append(out, a.Var.Value())
	}
	return out
}

func (a Item) Value() Value          { return tagged("item", EscapedText(a.NBT)) }
func (a FunctionVar) Value() Value   { return tagged("var", Text(a.Name)) }
func (a ThreadVar) Value() Value     { return tagged("local", Text(a.Name)) }
func (a GameVar) Value() Value       { return tagged("global", Text(a.Name)) }
func (a SaveVar) Value() Value       { return tagged("save", Text(a.Name)) }
func (a Param) Value() Value         { return tagged("param", Number(a.Index)) }
func (a ReturnedValue) Value() Value { return tagged("ret") }

func (TextArg) argNode()       {}
func (NumberArg) argNode()     {}
func (Location) argNode()      {}
func (Vector) argNode()        {}
func (Potion) argNode()        {}
func (Sound) argNode()         {}
func (GameValue) argNode()     {}
func (BlockTag) argNode()      {}
func (Item) argNode()          {}
func (Particle) argNode()      {}
func (FunctionVar) argNode()   {}
func (ThreadVar) argNode()     {}
func (GameVar) argNode()       {}
func (SaveVar) argNode()       {}
func (Param) argNode()         {}
func (ReturnedValue) argNode() {}

func argValues(args []Argument) List {
	out := make(List, 0, len(args))
	for _, a := range args {
		out = append(out, a.Value())
	}
	return out
}

// IsVariable reports whether a names a storage slot (var, local, global or save).
func IsVariable(a Argument) bool {
	switch a.(type) {
	case FunctionVar, ThreadVar, GameVar, SaveVar:
		return true
	default:
		return false
	}
}
