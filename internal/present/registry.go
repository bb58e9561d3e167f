package present

// Tag groups elements for show/hide.
type Tag string

const (
	TagBackground Tag = "background"
	TagGameplay   Tag = "gameplay"
	TagOverlay    Tag = "overlay"
)

// Element names one presentable element.
type Element string

const (
	ElementBackground  Element = "background"
	ElementTitle       Element = "title"
	ElementSlots       Element = "slots"
	ElementScores      Element = "scores"
	ElementDescription Element = "description"
	ElementPreview     Element = "preview"
	ElementEndScreen   Element = "end_screen"
)

// Registry tracks every element with its tag and forwards visibility changes
// to the presenter. Only changes are forwarded.
type Registry struct {
	p       Presenter
	tags    map[Element]Tag
	order   []Element
	visible map[Element]bool
}

func NewRegistry(p Presenter) *Registry {
	return &Registry{
		p:       p,
		tags:    make(map[Element]Tag),
		visible: make(map[Element]bool),
	}
}

// NewDefaultRegistry registers the standard game layout.
func NewDefaultRegistry(p Presenter) *Registry {
	r := NewRegistry(p)
	r.Register(ElementBackground, TagBackground)
	r.Register(ElementTitle, TagGameplay)
	r.Register(ElementSlots, TagGameplay)
	r.Register(ElementScores, TagGameplay)
	r.Register(ElementDescription, TagGameplay)
	r.Register(ElementPreview, TagOverlay)
	r.Register(ElementEndScreen, TagOverlay)
	return r
}

// Register adds el under tag, or moves it to tag if already registered.
func (r *Registry) Register(el Element, tag Tag) {
	if _, ok := r.tags[el]; !ok {
		r.order = append(r.order, el)
	}
	r.tags[el] = tag
}

// Tag returns the tag el was registered with.
func (r *Registry) Tag(el Element) (Tag, bool) {
	t, ok := r.tags[el]
	return t, ok
}

// Elements lists the elements carrying tag, in registration order.
func (r *Registry) Elements(tag Tag) []Element {
	var out []Element
	for _, el := range r.order {
		if r.tags[el] == tag {
			out = append(out, el)
		}
	}
	return out
}

func (r *Registry) Show(els ...Element) {
	for _, el := range els {
		r.set(el, true)
	}
}

func (r *Registry) Hide(els ...Element) {
	for _, el := range els {
		r.set(el, false)
	}
}

func (r *Registry) ShowTag(tags ...Tag) {
	for _, el := range r.order {
		if hasTag(tags, r.tags[el]) {
			r.set(el, true)
		}
	}
}

func (r *Registry) HideTag(tags ...Tag) {
	for _, el := range r.order {
		if hasTag(tags, r.tags[el]) {
			r.set(el, false)
		}
	}
}

// HideExcept hides every element whose tag is not listed and shows the rest.
func (r *Registry) HideExcept(tags ...Tag) {
	for _, el := range r.order {
		r.set(el, hasTag(tags, r.tags[el]))
	}
}

// Visible reports the last visibility sent for el.
func (r *Registry) Visible(el Element) bool { return r.visible[el] }

func (r *Registry) set(el Element, visible bool) {
	if _, ok := r.tags[el]; !ok {
		return
	}
	if cur, known := r.visible[el]; known && cur == visible {
		return
	}
	r.visible[el] = visible
	r.p.SetVisible(el, visible)
}

func hasTag(tags []Tag, t Tag) bool {
	for _, x := range tags {
		if x == t {
			return true
		}
	}
	return false
}
