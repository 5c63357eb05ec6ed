package kindling_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fire/internal/kindling"
)

func TestEmitValues(t *testing.T) {
	tests := []struct {
		name string
		in   kindling.Value
		want string
	}{
		{"empty list", kindling.List{}, "( )"},
		{"nil list", kindling.List(nil), "( )"},
		{"simple list", kindling.List{kindling.Identifier("a"), kindling.Number(1)}, "( a 1 )"},
		{"nested", kindling.List{kindling.List{}, kindling.List{kindling.Identifier("x")}}, "( ( ) ( x ) )"},
		{"text", kindling.Text(`say "hi"`), `"say "hi""`},
		{"escaped", kindling.EscapedText(`{"id":"stone"}`), `'{"id":"stone"}'`},
		{"integer number", kindling.Number(2), "2"},
		{"fraction", kindling.Number(2.5), "2.5"},
		{"negative", kindling.Number(-0.25), "-0.25"},
		{"big", kindling.Number(1e21), "1000000000000000000000"},
		{"identifier", kindling.Identifier("player-event"), "player-event"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, kindling.Emit(tt.in))
		})
	}
}

func TestQuote(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"plain", `"plain"`, true},
		{"it's", `"it's"`, true},
		{`say "hi"`, `'say "hi"'`, true},
		{`a"b'c`, `"a"b'c"`, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			v, ok := kindling.Quote(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, kindling.Emit(v))
		})
	}
}

func TestEmitArguments(t *testing.T) {
	tests := []struct {
		name string
		in   kindling.Argument
		want string
	}{
		{"text", kindling.TextArg{Text: "hi"}, `( text "hi" )`},
		{"text with double quotes", kindling.TextArg{Text: `say "hi"`}, `( text 'say "hi"' )`},
		{"text with apostrophe", kindling.TextArg{Text: "it's"}, `( text "it's" )`},
		{"number", kindling.NumberArg{Number: 3}, `( number 3 )`},
		{"location", kindling.Location{X: 1, Y: 2, Z: 3, Pitch: 0, Yaw: 90}, `( loc 1 2 3 0 90 )`},
		{"vector", kindling.Vector{X: 0.5, Y: 0, Z: -1}, `( vec 0.5 0 -1 )`},
		{"potion", kindling.Potion{Type: "speed", Ticks: 200, Amplifier: 1}, `( pot speed 200 1 )`},
		{"sound", kindling.Sound{Type: "pling", Pitch: 1, Volume: 2}, `( sound pling 1 2 )`},
		{"sound variant", kindling.Sound{Type: "pling", Variant: "high", Pitch: 1, Volume: 2}, `( sound pling high 1 2 )`},
		{"game value", kindling.GameValue{Type: "Location", Selector: "Default"}, `( val "Location" Default )`},
		{"tag", kindling.BlockTag{Type: "Mode", Opt: "Add"}, `( tag Mode "Add" )`},
		{"tag with var", kindling.BlockTag{Type: "Mode", Opt: "Add", Var: kindling.FunctionVar{Name: "m"}}, `( tag Mode "Add" ( var "m" ) )`},
		{"item", kindling.Item{NBT: `{"id":"stone"}`}, `( item '{"id":"stone"}' )`},
		{"var", kindling.FunctionVar{Name: "x"}, `( var "x" )`},
		{"local", kindling.ThreadVar{Name: "x"}, `( local "x" )`},
		{"global", kindling.GameVar{Name: "x"}, `( global "x" )`},
		{"save", kindling.SaveVar{Name: "x"}, `( save "x" )`},
		{"param", kindling.Param{Index: 2}, `( param 2 )`},
		{"returned", kindling.ReturnedValue{}, `( ret )`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, kindling.Emit(tt.in.Value()))
		})
	}
}

func TestBlockTagLength(t *testing.T) {
	bare := kindling.BlockTag{Type: "T", Opt: "v"}.Value().(kindling.List)
	require.Len(t, bare, 3)
	withVar := kindling.BlockTag{Type: "T", Opt: "v", Var: kindling.GameVar{Name: "g"}}.Value().(kindling.List)
	require.Len(t, withVar, 4)
}

func TestEmitActions(t *testing.T) {
	x := kindling.FunctionVar{Name: "x"}
	tests := []struct {
		name string
		in   kindling.Action
		want string
	}{
		{"player action", kindling.PlayerAction("SendMessage", "Default", kindling.TextArg{Text: "hi"}),
			`( player-action "SendMessage" "Default" ( ( text "hi" ) ) )`},
		{"entity action", kindling.EntityAction("Heal", "AllMobs"), `( entity-action "Heal" "AllMobs" ( ) )`},
		{"game action", kindling.GameAction("Explosion", ""), `( game-action "Explosion" "" ( ) )`},
		{"set var", kindling.SetVar("=", "", x, kindling.NumberArg{Number: 1}),
			`( set-var "=" "" ( ( var "x" ) ( number 1 ) ) )`},
		{"control", kindling.Control("StopRepeat", ""), `( control "StopRepeat" "" ( ) )`},
		{"call", kindling.Call("main::f", ""), `( call "main::f" "" ( ) )`},
		{"start", kindling.Start("main::p", ""), `( start "main::p" "" ( ) )`},
		{"if player", kindling.If{Kind: kindling.IfPlayer, Type: "IsSneaking", Selector: "Default"},
			`( if-player "IsSneaking" Default norm ( ) ( ) )`},
		{"if entity else", kindling.If{Kind: kindling.IfEntity, Type: "IsMob", Selector: "Default", Invert: kindling.Not,
			Else: []kindling.Action{}},
			`( if-entity "IsMob" Default not ( ) ( ) ( ) )`},
		{"if var", kindling.If{Kind: kindling.IfVariable, Type: "=", Args: []kindling.Argument{x, x},
			Code: []kindling.Action{kindling.Return{}}},
			`( if-var "=" norm ( ( var "x" ) ( var "x" ) ) ( ( ret ) ) )`},
		{"if game else", kindling.If{Kind: kindling.IfGame, Type: "HasPlayer", Else: []kindling.Action{kindling.Return{}}},
			`( if-game "HasPlayer" norm ( ) ( ) ( ( ret ) ) )`},
		{"repeat", kindling.Repeat{Type: "While", Sub: "=", Code: []kindling.Action{kindling.Control("Skip", "")}},
			`( repeat "While" "=" norm ( ) ( ( control "Skip" "" ( ) ) ) )`},
		{"select", kindling.SelectObject{Type: "PlayerName", Sub: "", Invert: kindling.Not},
			`( select-object "PlayerName" "" not ( ) )`},
		{"return value", kindling.Return{Arg: x}, `( ret ( var "x" ) )`},
		{"yield", kindling.Yield{Arg: kindling.NumberArg{Number: 5}}, `( yield ( number 5 ) )`},
		{"raw", kindling.Raw{Text: "( custom 1 )"}, `( custom 1 )`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, kindling.Emit(tt.in.Value()))
		})
	}
}

func TestConditionalElseOmitted(t *testing.T) {
	without := kindling.If{Kind: kindling.IfVariable, Type: "="}.Value().(kindling.List)
	with := kindling.If{Kind: kindling.IfVariable, Type: "=", Else: []kindling.Action{}}.Value().(kindling.List)
	require.Len(t, without, 5)
	require.Len(t, with, 6)
}

func TestEmitHeaders(t *testing.T) {
	code := []kindling.Action{kindling.Return{}}
	assert.Equal(t, `( def "main::f" ( ( ret ) ) )`,
		kindling.EmitHeader(kindling.Header{Kind: kindling.Function, Name: "main::f", Code: code}))
	assert.Equal(t, `( process "main::p" ( ) )`,
		kindling.EmitHeader(kindling.Header{Kind: kindling.Process, Name: "main::p"}))
	assert.Equal(t, `( player-event "Join" ( ) )`,
		kindling.EmitHeader(kindling.Header{Kind: kindling.PlayerEvent, Name: "Join"}))
	assert.Equal(t, `( entity-event "EntityDmg" ( ) )`,
		kindling.EmitHeader(kindling.Header{Kind: kindling.EntityEvent, Name: "EntityDmg"}))
}

func TestParticleBuilder(t *testing.T) {
	p := kindling.NewParticle("Cloud").Amount(3).Build()
	assert.Equal(t, `( "Cloud" ( amount 3 ) )`, kindling.Emit(p.Value()))

	full := kindling.NewParticle("Dust").
		Amount(1).
		Material("stone").
		Motion(1, 2, 3).
		Spread(4, 5).
		Roll(6).
		Size(7).
		Color(1, 2, 3).
		VariationColor(10).
		VariationSize(20).
		VariationMotion(30).
		Build()
	want := `( "Dust" ( amount 1 ) ( mat "stone" ) ( motion-x 1 ) ( motion-y 2 ) ( motion-z 3 )` +
		` ( spread-x 4 ) ( spread-y 5 ) ( roll 6 ) ( size 7 ) ( color 66051 )` +
		` ( material "stone" ) ( variation-color 10 ) ( variation-size 20 ) ( variation-motion 30 ) )`
	assert.Equal(t, want, kindling.Emit(full.Value()))

	sparse := kindling.NewParticle("Flame").MotionY(2).VariationSize(5).Build()
	assert.Equal(t, `( "Flame" ( amount 0 ) ( motion-y 2 ) ( variation-size 5 ) )`, kindling.Emit(sparse.Value()))
}

func TestParticleIsImmutable(t *testing.T) {
	b := kindling.NewParticle("Cloud").Amount(1)
	first := b.Build()
	b.Roll(9)
	second := b.Build()
	assert.Equal(t, `( "Cloud" ( amount 1 ) )`, kindling.Emit(first.Value()))
	assert.Equal(t, `( "Cloud" ( amount 1 ) ( roll 9 ) )`, kindling.Emit(second.Value()))

	v := first.Value().(kindling.List)
	v[0] = kindling.Identifier("mutated")
	assert.Equal(t, `( "Cloud" ( amount 1 ) )`, kindling.Emit(first.Value()))
}

func TestCountActions(t *testing.T) {
	code := []kindling.Action{
		kindling.SetVar("=", ""),
		kindling.If{Kind: kindling.IfVariable, Code: []kindling.Action{kindling.Return{}}, Else: []kindling.Action{kindling.Return{}}},
		kindling.Repeat{Type: "Forever", Code: []kindling.Action{kindling.Control("Wait", ""), kindling.Control("Skip", "")}},
	}
	require.Equal(t, 7, kindling.CountActions(code))
	require.Zero(t, kindling.CountActions(nil))
}
