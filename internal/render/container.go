package render

import (
	"html/template"
	"io"
	"strings"

	"traincards/internal/model"
)

const (
	// CardClass is the class of every card element.
	CardClass = "card"
	// CardStyle is the inline style of every card element.
	CardStyle = "border: 1px solid #ccc; border-radius: 5px; padding: 10px; margin-bottom: 10px;"
)

// CardNode is one rendered card element. Field text is held exactly as received.
type CardNode struct {
	Class string
	Style string
	Card  model.Card
}

// Text is the node's text content: title, description, then the price line.
func (n CardNode) Text() string {
	return string(n.Card.Title) + string(n.Card.Description) + "Price: " + string(n.Card.Price)
}

// Container is an in-memory render target. It is not safe for concurrent use.
type Container struct {
	id       string
	children []CardNode
}

// NewContainer returns an empty container with the given element id.
func NewContainer(id string) *Container {
	return &Container{id: id}
}

func (c *Container) ID() string { return c.id }

// Clear removes every child.
func (c *Container) Clear() {
	c.children = nil
}

// Append adds one card element after the existing ones.
func (c *Container) Append(card model.Card) error {
	c.children = append(c.children, CardNode{Class: CardClass, Style: CardStyle, Card: card})
	return nil
}

// Children returns a copy of the container's card elements in order.
func (c *Container) Children() []CardNode {
	out := make([]CardNode, len(c.children))
	copy(out, c.children)
	return out
}

// Len is the number of card elements.
func (c *Container) Len() int { return len(c.children) }

// Text concatenates the text content of every child.
func (c *Container) Text() string {
	var b strings.Builder
	for _, n := range c.children {
		b.WriteString(n.Text())
	}
	return b.String()
}

const containerHTML = `<div id="{{.ID}}">
{{- range .Children}}
  <div class="{{.Class}}" style="{{css .Style}}">
    <h3>{{.Card.Title}}</h3>
    <p>{{.Card.Description}}</p>
    <p><strong>Price:</strong> {{.Card.Price}}</p>
  </div>
{{- end}}
</div>
`

var containerTmpl = template.Must(template.New("container").
	Funcs(template.FuncMap{"css": func(s string) template.CSS { return template.CSS(s) }}).
	Parse(containerHTML))

// WriteHTML writes the container and its cards as HTML markup.
// Field text is escaped on output so table content cannot inject markup;
// the nodes themselves keep it verbatim.
func (c *Container) WriteHTML(w io.Writer) error {
	return containerTmpl.Execute(w, struct {
		ID       string
		Children []CardNode
	}{ID: c.id, Children: c.children})
}

// Page is a Document made of named containers.
type Page struct {
	containers map[string]*Container
}

// NewPage returns a page holding one empty container per id.
func NewPage(ids ...string) *Page {
	p := &Page{containers: make(map[string]*Container, len(ids))}
	for _, id := range ids {
		p.containers[id] = NewContainer(id)
	}
	return p
}

// ElementByID implements Document.
func (p *Page) ElementByID(id string) (Target, bool) {
	c, ok := p.containers[id]
	if !ok {
		return nil, false
	}
	return c, true
}

// Container returns the container with the given id, or nil.
func (p *Page) Container(id string) *Container {
	return p.containers[id]
}
