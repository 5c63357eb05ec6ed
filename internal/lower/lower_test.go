package lower_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fire/internal/ast"
	"fire/internal/config"
	"fire/internal/diag"
	"fire/internal/kindling"
	"fire/internal/lexer"
	"fire/internal/lower"
	"fire/internal/parser"
	"fire/internal/program"
	"fire/internal/resource"
)

type file struct {
	path string
	src  string
}

func build(t *testing.T, files ...file) *program.Program {
	t.Helper()
	p := program.New()
	for _, f := range files {
		loc := resource.MustLocation(f.path)
		toks, err := lexer.Tokenize([]byte(f.src))
		require.NoError(t, err)
		parsed, err := parser.ParseFile(loc, toks)
		require.NoError(t, err)
		require.Empty(t, p.Register(program.Unit{Location: loc, File: parsed}))
	}
	return p
}

// lowerOne lowers the definition at path and returns its emitted headers.
func lowerOne(t *testing.T, p *program.Program, path string) []string {
	t.Helper()
	def, err := p.Resolve(resource.MustLocation(path))
	require.NoError(t, err)
	headers, err := lower.New(p, config.Default()).Definition(def)
	require.NoError(t, err)
	out := make([]string, 0, len(headers))
	for _, h := range headers {
		out = append(out, kindling.EmitHeader(h))
	}
	return out
}

func lowerErr(t *testing.T, p *program.Program, path string) *lower.Error {
	t.Helper()
	def, err := p.Resolve(resource.MustLocation(path))
	require.NoError(t, err)
	_, err = lower.New(p, config.Default()).Definition(def)
	require.Error(t, err)
	var le *lower.Error
	require.True(t, errors.As(err, &le), "got %T: %v", err, err)
	return le
}

const bindX = `( set-var "=" "" ( ( var "x" ) ( param 0 ) ) )`

func TestLowerAwesome(t *testing.T) {
	p := build(t, file{"test", "fn! awesome(param: Int): Output { let! a = 2; return a; }"})
	def, err := p.Resolve(resource.MustLocation("test::awesome"))
	require.NoError(t, err)
	headers, err := lower.New(p, config.Default()).Definition(def)
	require.NoError(t, err)
	require.Len(t, headers, 1)

	v, ok := headers[0].Value().(kindling.List)
	require.True(t, ok)
	require.Equal(t, kindling.Identifier("def"), v[0])
	require.Equal(t, kindling.Text("test::awesome"), v[1])

	assert.Equal(t,
		`( def "test::awesome" ( ( set-var "=" "" ( ( var "param" ) ( param 0 ) ) ) ( ret ( number 2 ) ) ) )`,
		kindling.EmitHeader(headers[0]))
}

func TestLowerFunctions(t *testing.T) {
	tests := []struct {
		name string
		src  string
		path string
		want string
	}{
		{
			"if",
			"fn f(x: Int) { if (x > 1) return; }",
			"m::f",
			`( def "m::f" ( ` + bindX + ` ( if-var ">" norm ( ( var "x" ) ( number 1 ) ) ( ( ret ) ) ) ) )`,
		},
		{
			"not",
			"fn f(x: Int) { if (!(x == 1)) return; }",
			"m::f",
			`( def "m::f" ( ` + bindX + ` ( if-var "=" not ( ( var "x" ) ( number 1 ) ) ( ( ret ) ) ) ) )`,
		},
		{
			"plain value condition",
			"fn f(x: Int) { if (x) return; }",
			"m::f",
			`( def "m::f" ( ` + bindX + ` ( if-var "=" norm ( ( var "x" ) ( number 1 ) ) ( ( ret ) ) ) ) )`,
		},
		{
			"while",
			"fn f() { let i = 0; while (i < 3) { i = i + 1; } }",
			"m::f",
			`( def "m::f" ( ( set-var "=" "" ( ( var "i" ) ( number 0 ) ) )` +
				` ( repeat "While" "<" norm ( ( var "i" ) ( number 3 ) )` +
				` ( ( set-var "+" "" ( ( var "_t0" ) ( var "i" ) ( number 1 ) ) )` +
				` ( set-var "=" "" ( ( var "i" ) ( var "_t0" ) ) ) ) ) ) )`,
		},
		{
			"for",
			"fn f(xs: List) { for (x in xs) { continue; } }",
			"m::f",
			`( def "m::f" ( ( set-var "=" "" ( ( var "xs" ) ( param 0 ) ) )` +
				` ( repeat "ForEach" "" norm ( ( var "x" ) ( var "xs" ) ) ( ( control "Skip" "" ( ) ) ) ) ) )`,
		},
		{
			"arithmetic",
			"fn f(x: Int): Int { return x * 2 - x % 3; }",
			"m::f",
			`( def "m::f" ( ` + bindX +
				` ( set-var "x" "" ( ( var "_t0" ) ( var "x" ) ( number 2 ) ) )` +
				` ( set-var "%" "" ( ( var "_t1" ) ( var "x" ) ( number 3 ) ) )` +
				` ( set-var "-" "" ( ( var "_t2" ) ( var "_t0" ) ( var "_t1" ) ) )` +
				` ( ret ( var "_t2" ) ) ) )`,
		},
		{
			"negative literal folds",
			"fn f(): Int { return -5; }",
			"m::f",
			`( def "m::f" ( ( ret ( number -5 ) ) ) )`,
		},
		{
			"and short circuit",
			"fn f(a: Int, b: Int) { if (a == 1 && b == 2) return; }",
			"m::f",
			`( def "m::f" ( ( set-var "=" "" ( ( var "a" ) ( param 0 ) ) )` +
				` ( set-var "=" "" ( ( var "b" ) ( param 1 ) ) )` +
				` ( set-var "=" "" ( ( var "_t0" ) ( number 0 ) ) )` +
				` ( if-var "=" norm ( ( var "a" ) ( number 1 ) )` +
				` ( ( if-var "=" norm ( ( var "b" ) ( number 2 ) ) ( ( set-var "=" "" ( ( var "_t0" ) ( number 1 ) ) ) ) ) ) )` +
				` ( if-var "=" norm ( ( var "_t0" ) ( number 1 ) ) ( ( ret ) ) ) ) )`,
		},
		{
			"kindling insert",
			`fn f() { __kindling '( control "End" "" ( ) )'; }`,
			"m::f",
			`( def "m::f" ( ( control "End" "" ( ) ) ) )`,
		},
		{
			"builtins",
			`fn f() { print("hi", 1); wait(20); }`,
			"m::f",
			`( def "m::f" ( ( player-action "SendMessage" "AllPlayers" ( ( text "hi" ) ( number 1 ) ) )` +
				` ( control "Wait" "" ( ( number 20 ) ) ) ) )`,
		},
		{
			"globals",
			"let! limit = 3; let counter = 0; fn f() { counter = limit; }",
			"m::f",
			`( def "m::f" ( ( set-var "=" "" ( ( global "m::counter" ) ( number 3 ) ) ) ) )`,
		},
		{
			"call value",
			"fn g(): Int { return 1; } fn f() { let v = g(); g(); }",
			"m::f",
			`( def "m::f" ( ( call "m::g" "" ( ) ) ( set-var "=" "" ( ( var "_t0" ) ( ret ) ) )` +
				` ( set-var "=" "" ( ( var "v" ) ( var "_t0" ) ) ) ( call "m::g" "" ( ) ) ) )`,
		},
		{
			"process start",
			"proc worker {} fn f() { worker(); }",
			"m::f",
			`( def "m::f" ( ( start "m::worker" "" ( ) ) ) )`,
		},
		{
			"process",
			"proc main { print(1); }",
			"m::main",
			`( process "m::main" ( ( player-action "SendMessage" "AllPlayers" ( ( number 1 ) ) ) ) )`,
		},
		{
			"player event",
			`@event fn Join() { print("hi"); }`,
			"m::Join",
			`( player-event "Join" ( ( player-action "SendMessage" "AllPlayers" ( ( text "hi" ) ) ) ) )`,
		},
		{
			"entity event",
			"@entity_event fn EntityDmg() {}",
			"m::EntityDmg",
			`( entity-event "EntityDmg" ( ) )`,
		},
		{
			"static method",
			"struct Point { fn make(): Int { return 0; } } fn f() { let p = Point.make(); }",
			"m::f",
			`( def "m::f" ( ( call "m::Point::make" "" ( ( text "m::Point" ) ) )` +
				` ( set-var "=" "" ( ( var "_t0" ) ( ret ) ) ) ( set-var "=" "" ( ( var "p" ) ( var "_t0" ) ) ) ) )`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := build(t, file{"m", tt.src})
			got := lowerOne(t, p, tt.path)
			require.Len(t, got, 1)
			assert.Equal(t, tt.want, got[0])
		})
	}
}

func TestLowerWhileRecomputesCondition(t *testing.T) {
	p := build(t, file{"m", "fn g(): Int { return 1; } fn f() { while (g() == 1) { break; } }"})
	def, err := p.Resolve(resource.MustLocation("m::f"))
	require.NoError(t, err)
	headers, err := lower.New(p, config.Default()).Definition(def)
	require.NoError(t, err)
	require.Len(t, headers, 1)
	require.Len(t, headers[0].Code, 1)

	loop, ok := headers[0].Code[0].(kindling.Repeat)
	require.True(t, ok)
	require.Equal(t, "Forever", loop.Type)
	require.Len(t, loop.Code, 4)
	assert.Equal(t, `( call "m::g" "" ( ) )`, kindling.Emit(loop.Code[0].Value()))
	stop, ok := loop.Code[2].(kindling.If)
	require.True(t, ok)
	require.Equal(t, kindling.Not, stop.Invert)
	require.Equal(t, []kindling.Action{kindling.Control("StopRepeat", "")}, stop.Code)
	require.Equal(t, kindling.Control("StopRepeat", ""), loop.Code[3])
}

func TestLowerMethods(t *testing.T) {
	p := build(t, file{"m", `
struct Counter {
	n: Int;
	fn get(): Int { return 1; }
	fn twice(): Int { return this.get(); }
}
trait Show { fn show(); fn hello() { print("hi"); } }
`})
	got := lowerOne(t, p, "m::Counter")
	require.Len(t, got, 2)
	bindThis := `( set-var "=" "" ( ( var "this" ) ( param 0 ) ) )`
	assert.Equal(t, `( def "m::Counter::get" ( `+bindThis+` ( ret ( number 1 ) ) ) )`, got[0])
	assert.Equal(t, `( def "m::Counter::twice" ( `+bindThis+
		` ( call "m::Counter::get" "" ( ( var "this" ) ) ) ( set-var "=" "" ( ( var "_t0" ) ( ret ) ) )`+
		` ( ret ( var "_t0" ) ) ) )`, got[1])

	// абстрактные методы заголовков не дают
	traits := lowerOne(t, p, "m::Show")
	require.Len(t, traits, 1)
	assert.Contains(t, traits[0], `"m::Show::hello"`)
}

func TestLowerCallThroughImport(t *testing.T) {
	p := build(t,
		file{"lib", "fn helper() {}"},
		file{"main", "import lib::helper; fn f() { helper(); }"},
	)
	got := lowerOne(t, p, "main::f")
	assert.Equal(t, []string{`( def "main::f" ( ( call "lib::helper" "" ( ) ) ) )`}, got)
}

func TestLowerGlobalsProduceNothing(t *testing.T) {
	p := build(t, file{"m", "let x = 1;"})
	assert.Empty(t, lowerOne(t, p, "m::x"))
}

func TestLowerErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		code diag.Code
	}{
		{"break outside loop", "fn f() { break; }", diag.LowerUnsupported},
		{"continue outside loop", "fn f() { continue; }", diag.LowerUnsupported},
		{"unknown variable", "fn f() { return y; }", diag.LowerUnknownVar},
		{"unknown function", "fn f() { nope(); }", diag.ResUnresolvedCall},
		{"event with params", "@event fn f(x: Int) {}", diag.LowerBadAnnotation},
		{"this outside method", "fn f() { return this; }", diag.LowerUnsupported},
		{"assign to const", "fn f() { let! c = 1; c = 2; }", diag.LowerUnsupported},
		{"assign to global const", "let! g = 1; fn f() { g = 2; }", diag.LowerUnsupported},
		{"builtin as value", "fn f() { let v = print(1); }", diag.LowerUnsupported},
		{"method on non-this", "fn f(x: Int) { x.foo(); }", diag.LowerUnsupported},
		{"process as value", "proc p {} fn f() { let v = p(); }", diag.LowerUnsupported},
		{"const used after its if block", "fn f(x: Int) { if (x > 1) { let! k = 1; } return k; }", diag.LowerUnknownVar},
		{"let used after its loop body", "fn f(x: Int) { while (x > 1) { let k = 1; } return k; }", diag.LowerUnknownVar},
		{"loop variable used after loop", "fn f(xs: List) { for (x in xs) { } return x; }", diag.LowerUnknownVar},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := build(t, file{"m", tt.src})
			le := lowerErr(t, p, "m::f")
			assert.Equal(t, tt.code, le.Code)
			assert.Equal(t, "m::f", le.Loc.String())
		})
	}
}

func TestLowerBlockScope(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{
			"inner const shadows outer",
			"fn f(x: Int) { let! k = 1; if (x > 1) { let! k = 2; } return k; }",
			"( ret ( number 1 ) )",
		},
		{
			"inner let shadows outer const",
			"fn f(x: Int) { let! k = 1; if (x > 1) { let k = 2; } return k; }",
			"( ret ( number 1 ) )",
		},
		{
			"assignment reaches outer variable",
			"fn f(x: Int) { let y = 0; if (x > 1) { y = 2; } return y; }",
			`( ret ( var "y" ) )`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := build(t, file{"m", tt.src})
			out := lowerOne(t, p, "m::f")
			require.Len(t, out, 1)
			assert.Contains(t, out[0], tt.want)
		})
	}
}

func TestLowerStringQuoting(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"plain", `fn f() { return "hi"; }`, `( def "m::f" ( ( ret ( text "hi" ) ) ) )`},
		{"apostrophe", `fn f() { return "it's"; }`, `( def "m::f" ( ( ret ( text "it's" ) ) ) )`},
		{"double quotes", `fn f() { return 'say "hi"'; }`, `( def "m::f" ( ( ret ( text 'say "hi"' ) ) ) )`},
		{"folded const", `fn f() { let! s = 'a"b'; return s; }`, `( def "m::f" ( ( ret ( text 'a"b' ) ) ) )`},
		{"global const", `let! g = 'a"b'; fn f() { return g; }`, `( def "m::f" ( ( ret ( text 'a"b' ) ) ) )`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := build(t, file{"m", tt.src})
			assert.Equal(t, []string{tt.want}, lowerOne(t, p, "m::f"))
		})
	}
}

func TestLowerStringWithBothQuotes(t *testing.T) {
	p := build(t, file{"m", `fn f() { return "x"; }`})
	def, err := p.Resolve(resource.MustLocation("m::f"))
	require.NoError(t, err)
	// в исходнике такую строку не записать, но AST может прийти не из парсера
	ret := def.(*ast.Function).Body.Stmts[0].(*ast.Return)
	ret.Value.(*ast.StringLit).Value = `a"b'c`

	le := lowerErr(t, p, "m::f")
	assert.Equal(t, diag.LowerUnsupported, le.Code)
	assert.Contains(t, le.Msg, "both")
}

func TestLowerTooLarge(t *testing.T) {
	p := build(t, file{"m", "fn f() { print(1); print(2); print(3); }"})
	def, err := p.Resolve(resource.MustLocation("m::f"))
	require.NoError(t, err)

	settings := config.Default()
	settings.MaxSize = 2
	_, err = lower.New(p, settings).Definition(def)
	var le *lower.Error
	require.True(t, errors.As(err, &le))
	assert.Equal(t, diag.LowerTooLarge, le.Code)

	settings.MaxSize = 3
	_, err = lower.New(p, settings).Definition(def)
	require.NoError(t, err)
}

func TestLowerProgramCollectsErrors(t *testing.T) {
	p := build(t, file{"m", "fn ok() {} fn bad() { break; } fn ok2() { ok(); }"})
	headers, errs := lower.New(p, config.Default()).Program()
	require.Len(t, errs, 1)
	require.Len(t, headers, 2)
	assert.Equal(t, "m::ok", headers[0].Name)
	assert.Equal(t, "m::ok2", headers[1].Name)
}
