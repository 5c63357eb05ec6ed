package kindling

// Particle is immutable; build it with NewParticle(...).Build().
type Particle struct {
	list List
}

func (p Particle) Value() Value {
	out := make(List, len(p.list))
	copy(out, p.list)
	return out
}

// RGB is a particle color; packed as r*65536 + g*256 + b.
type RGB struct {
	R, G, B int
}

func (c RGB) Packed() int {
	return c.R*65536 + c.G*256 + c.B
}

type optInt struct {
	v   int
	set bool
}

// ParticleBuilder собирает настройки частицы; частичное состояние наружу не отдаётся.
type ParticleBuilder struct {
	typ      string
	amount   int
	material string
	hasMat   bool
	motion   [3]optInt
	spread   [2]optInt
	roll     optInt
	size     optInt
	color    *RGB
	varColor optInt
	varSize  optInt
	varMove  optInt
}

func NewParticle(typ string) *ParticleBuilder {
	return &ParticleBuilder{typ: typ}
}

func (b *ParticleBuilder) Amount(n int) *ParticleBuilder {
	b.amount = n
	return b
}

func (b *ParticleBuilder) Material(m string) *ParticleBuilder {
	b.material, b.hasMat = m, true
	return b
}

func (b *ParticleBuilder) Motion(x, y, z int) *ParticleBuilder {
	b.motion = [3]optInt{{x, true}, {y, true}, {z, true}}
	return b
}

func (b *ParticleBuilder) MotionX(v int) *ParticleBuilder { b.motion[0] = optInt{v, true}; return b }
func (b *ParticleBuilder) MotionY(v int) *ParticleBuilder { b.motion[1] = optInt{v, true}; return b }
func (b *ParticleBuilder) MotionZ(v int) *ParticleBuilder { b.motion[2] = optInt{v, true}; return b }

func (b *ParticleBuilder) Spread(x, y int) *ParticleBuilder {
	b.spread = [2]optInt{{x, true}, {y, true}}
	return b
}

func (b *ParticleBuilder) Roll(v int) *ParticleBuilder { b.roll = optInt{v, true}; return b }
func (b *ParticleBuilder) Size(v int) *ParticleBuilder { b.size = optInt{v, true}; return b }

func (b *ParticleBuilder) Color(r, g, bl int) *ParticleBuilder {
	b.color = &RGB{R: r, G: g, B: bl}
	return b
}

// Variation setters take a percentage in 1..100.
func (b *ParticleBuilder) VariationColor(v int) *ParticleBuilder {
	b.varColor = optInt{v, true}
	return b
}

func (b *ParticleBuilder) VariationSize(v int) *ParticleBuilder {
	b.varSize = optInt{v, true}
	return b
}

func (b *ParticleBuilder) VariationMotion(v int) *ParticleBuilder {
	b.varMove = optInt{v, true}
	return b
}

// Build freezes the settings. The builder may be reused afterwards.
func (b *ParticleBuilder) Build() Particle {
	list := List{Text(b.typ), setting("amount", Number(b.amount))}
	if b.hasMat {
		list = append(list, setting("mat", Text(b.material)))
	}
	list = appendOpt(list, "motion-x", b.motion[0])
	list = appendOpt(list, "motion-y", b.motion[1])
	list = appendOpt(list, "motion-z", b.motion[2])
	list = appendOpt(list, "spread-x", b.spread[0])
	list = appendOpt(list, "spread-y", b.spread[1])
	list = appendOpt(list, "roll", b.roll)
	list = appendOpt(list, "size", b.size)
	if b.color != nil {
		list = append(list, setting("color", Number(b.color.Packed())))
	}
	// материал повторяется под полным ключом
	if b.hasMat {
		list = append(list, setting("material", Text(b.material)))
	}
	list = appendOpt(list, "variation-color", b.varColor)
	list = appendOpt(list, "variation-size", b.varSize)
	list = appendOpt(list, "variation-motion", b.varMove)
	return Particle{list: list}
}

func setting(key string, v Value) List {
	return List{Identifier(key), v}
}

func appendOpt(list List, key string, o optInt) List {
	if !o.set {
		return list
	}
	return append(list, setting(key, Number(o.v)))
}
