package parser

import (
	"fmt"

	"fire/internal/ast"
	"fire/internal/diag"
	"fire/internal/resource"
	"fire/internal/token"
)

// defPrefix — то, что собирается перед определением: аннотации и private.
type defPrefix struct {
	annots  []ast.Annotation
	last    token.Token // последняя аннотация, для ошибки висячей аннотации
	private token.Token
}

func (d defPrefix) empty() bool {
	return len(d.annots) == 0 && d.private.Kind != token.KwPrivate
}

// defProduction is a production that also receives the already consumed prefix.
type defProduction struct {
	name  string
	can   func(*Cursor) bool
	parse func(*Parser, defPrefix) (ast.Definition, error)
}

var defAlts []defProduction

func init() {
	defAlts = []defProduction{
		{"function", canFunction, (*Parser).parseFunction},
		{"process", kindIs(token.KwProc), (*Parser).parseProcess},
		{"struct", kindIs(token.KwStruct), (*Parser).parseStruct},
		{"trait", kindIs(token.KwTrait), (*Parser).parseTrait},
		{"enum", kindIs(token.KwEnum), (*Parser).parseEnum},
		{"global variable", canGlobalVar, (*Parser).parseGlobalVar},
	}
}

func canFunction(cur *Cursor) bool {
	return cur.At(token.KwFn) || cur.At(token.KwFnBang)
}

func canGlobalVar(cur *Cursor) bool {
	return cur.At(token.KwLet) || cur.At(token.KwLetBang)
}

func canDefinition(cur *Cursor) bool {
	for _, alt := range defAlts {
		if alt.can(cur) {
			return true
		}
	}
	return false
}

func (p *Parser) parsePrefix() (defPrefix, error) {
	var pre defPrefix
	for p.cur.At(token.Annotation) {
		tok, err := p.cur.Next()
		if err != nil {
			return pre, err
		}
		pre.annots = append(pre.annots, ast.Annotation{Pos: tok.Pos(), Name: tok.Text})
		pre.last = tok
	}
	if p.cur.At(token.KwPrivate) {
		tok, err := p.cur.Next()
		if err != nil {
			return pre, err
		}
		pre.private = tok
	}
	return pre, nil
}

// danglingPrefix reports a prefix that has nothing to attach to.
func danglingPrefix(pre defPrefix) error {
	if pre.private.Kind == token.KwPrivate {
		return &ParseTokenError{
			Code:    diag.SynModifierNotAllowed,
			Message: "`private` must be followed by a definition",
			Token:   pre.private,
		}
	}
	return &ParseTokenError{
		Code:    diag.SynDanglingAnnotation,
		Message: fmt.Sprintf("annotation `@%s` is not followed by a definition", pre.last.Text),
		Token:   pre.last,
	}
}

func (p *Parser) header(pre defPrefix, loc resource.Location, pos token.Position) ast.DefHeader {
	return ast.DefHeader{
		Loc:     loc,
		Annots:  pre.annots,
		Pos:     pos,
		Private: pre.private.Kind == token.KwPrivate,
	}
}

// parseDefinition parses one top-level definition under p.file.
func (p *Parser) parseDefinition(pre defPrefix) (ast.Definition, error) {
	for _, alt := range defAlts {
		if alt.can(p.cur) {
			return alt.parse(p, pre)
		}
	}
	if !pre.empty() {
		return nil, danglingPrefix(pre)
	}
	return nil, p.unexpected(diag.SynExpectDefinition, "not a definition")
}

// parseDefName reads the defining identifier and validates it as a resource name.
func (p *Parser) parseDefName(what string) (token.Token, resource.Name, error) {
	tok, err := p.expectIdent(what)
	if err != nil {
		return tok, resource.Name{}, err
	}
	name, err := resourceName(tok)
	return tok, name, err
}

func (p *Parser) parseParams() ([]ast.Param, error) {
	if _, err := p.expect(token.LParen, "`(`"); err != nil {
		return nil, err
	}
	var params []ast.Param
	for !p.cur.At(token.RParen) {
		name, err := p.expectIdent("parameter name")
		if err != nil {
			return nil, err
		}
		if _, err = p.expect(token.Colon, "`:` after parameter name"); err != nil {
			return nil, err
		}
		typ, err := p.parseType()
		if err != nil {
			return nil, err
		}
		params = append(params, ast.Param{Pos: name.Pos(), Name: name.Text, Type: typ})
		if !p.eat(token.Comma) {
			break
		}
	}
	if _, err := p.expect(token.RParen, "`)`"); err != nil {
		return nil, err
	}
	return params, nil
}

// parseReturnType reads an optional `: T` or `-> T`.
func (p *Parser) parseReturnType() (*ast.TypeRef, error) {
	if !p.eat(token.Colon) && !p.eat(token.Arrow) {
		return nil, nil
	}
	typ, err := p.parseType()
	if err != nil {
		return nil, err
	}
	return &typ, nil
}

// signature is shared by functions and methods.
type signature struct {
	kw     token.Token
	name   token.Token
	rname  resource.Name
	params []ast.Param
	ret    *ast.TypeRef
}

func (p *Parser) parseSignature() (signature, error) {
	var sig signature
	var err error
	if sig.kw, err = p.cur.Next(); err != nil {
		return sig, err
	}
	if sig.name, sig.rname, err = p.parseDefName("function name"); err != nil {
		return sig, err
	}
	if sig.params, err = p.parseParams(); err != nil {
		return sig, err
	}
	sig.ret, err = p.parseReturnType()
	return sig, err
}

// fn! на верхнем уровне — обычная функция.
func (p *Parser) parseFunction(pre defPrefix) (ast.Definition, error) {
	sig, err := p.parseSignature()
	if err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &ast.Function{
		DefHeader: p.header(pre, p.file.Child(sig.rname), sig.kw.Pos()),
		Params:    sig.params,
		Return:    sig.ret,
		Body:      body,
	}, nil
}

func (p *Parser) parseMethod(pre defPrefix, owner resource.Location, abstractOK bool) (*ast.Method, token.Token, error) {
	sig, err := p.parseSignature()
	if err != nil {
		return nil, sig.name, err
	}
	m := &ast.Method{
		DefHeader: p.header(pre, owner.Child(sig.rname), sig.kw.Pos()),
		Mutable:   sig.kw.Kind == token.KwFnBang,
		Params:    sig.params,
		Return:    sig.ret,
	}
	if abstractOK && p.eat(token.Semicolon) {
		return m, sig.name, nil
	}
	if m.Body, err = p.parseBlock(); err != nil {
		return nil, sig.name, err
	}
	return m, sig.name, nil
}

func (p *Parser) parseProcess(pre defPrefix) (ast.Definition, error) {
	kw, err := p.expect(token.KwProc, "`proc`")
	if err != nil {
		return nil, err
	}
	_, name, err := p.parseDefName("process name")
	if err != nil {
		return nil, err
	}
	var params []ast.Param
	if p.cur.At(token.LParen) {
		if params, err = p.parseParams(); err != nil {
			return nil, err
		}
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &ast.Process{
		DefHeader: p.header(pre, p.file.Child(name), kw.Pos()),
		Params:    params,
		Body:      body,
	}, nil
}

func addMember(members *resource.Children[ast.Definition], nameTok token.Token, def ast.Definition) error {
	name, err := resourceName(nameTok)
	if err != nil {
		return err
	}
	if err := members.Add(name, def); err != nil {
		return &ParseTokenError{
			Code:    diag.SynDuplicateMember,
			Message: fmt.Sprintf("duplicate member `%s`", nameTok.Text),
			Token:   nameTok,
		}
	}
	return nil
}

func (p *Parser) parseStruct(pre defPrefix) (ast.Definition, error) {
	kw, err := p.expect(token.KwStruct, "`struct`")
	if err != nil {
		return nil, err
	}
	_, name, err := p.parseDefName("struct name")
	if err != nil {
		return nil, err
	}
	s := &ast.Struct{
		DefHeader: p.header(pre, p.file.Child(name), kw.Pos()),
		Members:   resource.NewChildren[ast.Definition](),
	}
	if p.eat(token.KwImpl) {
		for {
			typ, err := p.parseType()
			if err != nil {
				return nil, err
			}
			s.Impls = append(s.Impls, typ)
			if !p.eat(token.Comma) {
				break
			}
		}
	}
	if _, err = p.expect(token.LBrace, "`{`"); err != nil {
		return nil, err
	}
	for !p.eat(token.RBrace) {
		mpre, err := p.parsePrefix()
		if err != nil {
			return nil, err
		}
		switch {
		case canFunction(p.cur):
			m, nameTok, err := p.parseMethod(mpre, s.Loc, false)
			if err != nil {
				return nil, err
			}
			if err = addMember(s.Members, nameTok, m); err != nil {
				return nil, err
			}
			s.Methods = append(s.Methods, m)
		case p.cur.At(token.Ident):
			f, nameTok, err := p.parseField(mpre, s.Loc)
			if err != nil {
				return nil, err
			}
			if err = addMember(s.Members, nameTok, f); err != nil {
				return nil, err
			}
			s.Fields = append(s.Fields, f)
		default:
			if !mpre.empty() {
				return nil, danglingPrefix(mpre)
			}
			return nil, p.unexpected(diag.SynExpectDefinition, "not a struct member")
		}
	}
	return s, nil
}

func (p *Parser) parseField(pre defPrefix, owner resource.Location) (*ast.Field, token.Token, error) {
	nameTok, name, err := p.parseDefName("field name")
	if err != nil {
		return nil, nameTok, err
	}
	if _, err = p.expect(token.Colon, "`:` after field name"); err != nil {
		return nil, nameTok, err
	}
	typ, err := p.parseType()
	if err != nil {
		return nil, nameTok, err
	}
	if _, err = p.expect(token.Semicolon, "`;`"); err != nil {
		return nil, nameTok, err
	}
	return &ast.Field{
		DefHeader: p.header(pre, owner.Child(name), nameTok.Pos()),
		Type:      typ,
	}, nameTok, nil
}

func (p *Parser) parseTrait(pre defPrefix) (ast.Definition, error) {
	kw, err := p.expect(token.KwTrait, "`trait`")
	if err != nil {
		return nil, err
	}
	_, name, err := p.parseDefName("trait name")
	if err != nil {
		return nil, err
	}
	t := &ast.Trait{
		DefHeader: p.header(pre, p.file.Child(name), kw.Pos()),
		Members:   resource.NewChildren[ast.Definition](),
	}
	if _, err = p.expect(token.LBrace, "`{`"); err != nil {
		return nil, err
	}
	for !p.eat(token.RBrace) {
		mpre, err := p.parsePrefix()
		if err != nil {
			return nil, err
		}
		if !canFunction(p.cur) {
			if !mpre.empty() {
				return nil, danglingPrefix(mpre)
			}
			return nil, p.unexpected(diag.SynExpectDefinition, "not a trait method")
		}
		m, nameTok, err := p.parseMethod(mpre, t.Loc, true)
		if err != nil {
			return nil, err
		}
		if err = addMember(t.Members, nameTok, m); err != nil {
			return nil, err
		}
		t.Methods = append(t.Methods, m)
	}
	return t, nil
}

// parseEnum: варианты через запятую, методы в любом месте тела.
func (p *Parser) parseEnum(pre defPrefix) (ast.Definition, error) {
	kw, err := p.expect(token.KwEnum, "`enum`")
	if err != nil {
		return nil, err
	}
	_, name, err := p.parseDefName("enum name")
	if err != nil {
		return nil, err
	}
	e := &ast.Enum{
		DefHeader: p.header(pre, p.file.Child(name), kw.Pos()),
		Members:   resource.NewChildren[ast.Definition](),
	}
	if _, err = p.expect(token.LBrace, "`{`"); err != nil {
		return nil, err
	}
	for !p.eat(token.RBrace) {
		mpre, err := p.parsePrefix()
		if err != nil {
			return nil, err
		}
		switch {
		case canFunction(p.cur):
			m, nameTok, err := p.parseMethod(mpre, e.Loc, false)
			if err != nil {
				return nil, err
			}
			if err = addMember(e.Members, nameTok, m); err != nil {
				return nil, err
			}
			e.Methods = append(e.Methods, m)
		case p.cur.At(token.Ident):
			nameTok, vname, err := p.parseDefName("variant name")
			if err != nil {
				return nil, err
			}
			v := &ast.EnumVariant{
				DefHeader: p.header(mpre, e.Loc.Child(vname), nameTok.Pos()),
				Index:     len(e.Variants),
			}
			if err = addMember(e.Members, nameTok, v); err != nil {
				return nil, err
			}
			e.Variants = append(e.Variants, v)
			if !p.eat(token.Comma) {
				p.eat(token.Semicolon)
			}
		default:
			if !mpre.empty() {
				return nil, danglingPrefix(mpre)
			}
			return nil, p.unexpected(diag.SynExpectDefinition, "not an enum member")
		}
	}
	return e, nil
}

func (p *Parser) parseGlobalVar(pre defPrefix) (ast.Definition, error) {
	kw, err := p.cur.Next()
	if err != nil {
		return nil, err
	}
	nameTok, typ, value, err := p.parseBinding()
	if err != nil {
		return nil, err
	}
	name, err := resourceName(nameTok)
	if err != nil {
		return nil, err
	}
	return &ast.GlobalVar{
		DefHeader: p.header(pre, p.file.Child(name), kw.Pos()),
		Const:     kw.Kind == token.KwLetBang,
		Type:      typ,
		Value:     value,
	}, nil
}

// parseImport reads `import a::b;`. `::` arrives as two Colon tokens.
func (p *Parser) parseImport() (ast.Import, error) {
	kw, err := p.expect(token.KwImport, "`import`")
	if err != nil {
		return ast.Import{}, err
	}
	var names []resource.Name
	for {
		_, name, err := p.parseDefName("import path segment")
		if err != nil {
			return ast.Import{}, err
		}
		names = append(names, name)
		if !p.cur.At(token.Colon) {
			break
		}
		_, _ = p.cur.Next()
		if _, err = p.expect(token.Colon, "`::`"); err != nil {
			return ast.Import{}, err
		}
	}
	if _, err = p.expect(token.Semicolon, "`;`"); err != nil {
		return ast.Import{}, err
	}
	path, err := resource.NewLocation(names...)
	if err != nil {
		return ast.Import{}, err
	}
	return ast.Import{Pos: kw.Pos(), Path: path}, nil
}
