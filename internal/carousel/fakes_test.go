package carousel

type fakeVisual struct {
	template *Template
	origin   Point
	pos      Point
	scale    float64
}

func (v *fakeVisual) Position() Point     { return v.pos }
func (v *fakeVisual) SetPosition(p Point) { v.pos = p }
func (v *fakeVisual) Scale() float64      { return v.scale }
func (v *fakeVisual) SetScale(s float64)  { v.scale = s }

type fakeHost struct {
	created   []*fakeVisual
	destroyed map[*fakeVisual]int
}

func newFakeHost() *fakeHost {
	return &fakeHost{destroyed: make(map[*fakeVisual]int)}
}

func (h *fakeHost) Materialize(t *Template, at Point) Visual {
	v := &fakeVisual{template: t, origin: at, pos: at}
	h.created = append(h.created, v)
	return v
}

func (h *fakeHost) Destroy(v Visual) {
	h.destroyed[v.(*fakeVisual)]++
}

// fakeAnimator applies targets immediately and holds evict callbacks until
// complete is called.
type fakeAnimator struct {
	pending []func()
	moves   int
	scales  int
}

func (a *fakeAnimator) Move(v Visual, to Point, _ Motion) {
	a.moves++
	v.SetPosition(to)
}

func (a *fakeAnimator) Scale(v Visual, to float64, _ Motion) {
	a.scales++
	v.SetScale(to)
}

func (a *fakeAnimator) MoveOut(v Visual, to Point, _ Motion, done func()) {
	v.SetPosition(to)
	a.pending = append(a.pending, done)
}

func (a *fakeAnimator) complete() {
	pending := a.pending
	a.pending = nil
	for _, done := range pending {
		done()
	}
}

func templates(names ...string) []*Template {
	ts := make([]*Template, len(names))
	for i, n := range names {
		ts[i] = &Template{Name: n}
	}
	return ts
}

func names(ts []*Template) []string {
	out := make([]string, len(ts))
	for i, t := range ts {
		if t == nil {
			out[i] = "<nil>"
			continue
		}
		out[i] = t.Name
	}
	return out
}
