package kindling

// Action is one code block inside a header.
type Action interface {
	Value() Value
	actionNode()
}

// Invert — флаг инверсии условия, печатается как `norm` или `not`.
type Invert bool

const (
	Norm Invert = false
	Not  Invert = true
)

func (i Invert) ident() Identifier {
	if i {
		return "not"
	}
	return "norm"
}

// BlockKind names the simple `(tag "type" "selector" (args))` blocks.
type BlockKind uint8

const (
	BlockPlayerAction BlockKind = iota
	BlockEntityAction
	BlockGameAction
	BlockSetVar
	BlockControl
	BlockCall
	BlockStart
)

var blockTags = [...]string{
	BlockPlayerAction: "player-action",
	BlockEntityAction: "entity-action",
	BlockGameAction:   "game-action",
	BlockSetVar:       "set-var",
	BlockControl:      "control",
	BlockCall:         "call",
	BlockStart:        "start",
}

func (k BlockKind) String() string { return blockTags[k] }

// Block covers player/entity/game actions, set-var, control, call and start.
type Block struct {
	Kind     BlockKind
	Type     string
	Selector string
	Args     []Argument
}

func PlayerAction(typ, selector string, args ...Argument) Block {
	return Block{BlockPlayerAction, typ, selector, args}
}

func EntityAction(typ, selector string, args ...Argument) Block {
	return Block{BlockEntityAction, typ, selector, args}
}

func GameAction(typ, selector string, args ...Argument) Block {
	return Block{BlockGameAction, typ, selector, args}
}

func SetVar(typ, selector string, args ...Argument) Block {
	return Block{BlockSetVar, typ, selector, args}
}

func Control(typ, selector string, args ...Argument) Block {
	return Block{BlockControl, typ, selector, args}
}

func Call(typ, selector string, args ...Argument) Block {
	return Block{BlockCall, typ, selector, args}
}

func Start(typ, selector string, args ...Argument) Block {
	return Block{BlockStart, typ, selector, args}
}

func (a Block) Value() Value {
	return tagged(a.Kind.String(), Text(a.Type), Text(a.Selector), argValues(a.Args))
}

// CondKind names the conditional blocks.
type CondKind uint8

const (
	IfPlayer CondKind = iota
	IfEntity
	IfVariable
	IfGame
)

var condTags = [...]string{
	IfPlayer:   "if-player",
	IfEntity:   "if-entity",
	IfVariable: "if-var",
	IfGame:     "if-game",
}

func (k CondKind) String() string { return condTags[k] }

// hasSelector: только if-player и if-entity печатают селектор.
func (k CondKind) hasSelector() bool {
	return k == IfPlayer || k == IfEntity
}

// If is a conditional block. Else == nil omits the else list;
// a non-nil empty Else prints `( )`.
type If struct {
	Kind     CondKind
	Type     string
	Selector string
	Invert   Invert
	Args     []Argument
	Code     []Action
	Else     []Action
}

func (a If) Value() Value {
	out := tagged(a.Kind.String(), Text(a.Type))
	if a.Kind.hasSelector() {
		out = append(out, Identifier(a.Selector))
	}
	out = append(out, a.Invert.ident(), argValues(a.Args), actionValues(a.Code))
	if a.Else != nil {
		out = append(out, actionValues(a.Else))
	}
	return out
}

type Repeat struct {
	Type   string
	Sub    string
	Invert Invert
	Args   []Argument
	Code   []Action
}

func (a Repeat) Value() Value {
	return tagged("repeat", Text(a.Type), Text(a.Sub), a.Invert.ident(), argValues(a.Args), actionValues(a.Code))
}

type SelectObject struct {
	Type   string
	Sub    string
	Invert Invert
	Args   []Argument
}

func (a SelectObject) Value() Value {
	return tagged("select-object", Text(a.Type), Text(a.Sub), a.Invert.ident(), argValues(a.Args))
}

// Return with a nil Arg prints `( ret )`.
type Return struct {
	Arg Argument
}

func (a Return) Value() Value {
	if a.Arg == nil {
		return tagged("ret")
	}
	return tagged("ret", a.Arg.Value())
}

type Yield struct {
	Arg Argument
}

func (a Yield) Value() Value {
	return tagged("yield", a.Arg.Value())
}

// Raw is text inserted verbatim by `__kindling`.
type Raw struct {
	Text string
}

func (a Raw) Value() Value { return Identifier(a.Text) }

func (Block) actionNode()        {}
func (If) actionNode()           {}
func (Repeat) actionNode()       {}
func (SelectObject) actionNode() {}
func (Return) actionNode()       {}
func (Yield) actionNode()        {}
func (Raw) actionNode()          {}

func actionValues(code []Action) List {
	out := make(List, 0, len(code))
	for _, a := range code {
		out = append(out, a.Value())
	}
	return out
}

// CountActions counts code blocks including nested bodies.
func CountActions(code []Action) int {
	n := 0
	for _, a := range code {
		n++
		switch a := a.(type) {
		case If:
			n += CountActions(a.Code) + CountActions(a.Else)
		case Repeat:
			n += CountActions(a.Code)
		}
	}
	return n
}
