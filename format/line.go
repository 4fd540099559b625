package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/nathanpc/pickle-go/picklist"
)

type LineEncoder struct {
	w   io.Writer
	doc *picklist.Document
}

func NewLineEncoder(w io.Writer) *LineEncoder {
	return &LineEncoder{w: w}
}

func (e *LineEncoder) Encode(doc *picklist.Document) error {
	e.doc = doc
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *LineEncoder) MarshalText() ([]byte, error) {
	var sb strings.Builder

	for _, p := range e.doc.Properties() {
		fmt.Fprintf(&sb, "property\t%s\t%s\n", p.Name, p.Value)
	}

	for _, c := range e.doc.Categories() {
		fmt.Fprintf(&sb, "category\t%s\n", c.Name)
	}

	for _, c := range e.doc.Components() {
		fmt.Fprintf(&sb, "component\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			c.Name,
			pickedStr(c),
			c.Value,
			c.Description,
			c.Package,
			strings.Join(c.RefDes, " "),
			categoryStr(c),
		)
	}

	return []byte(sb.String()), nil
}

func pickedStr(c *picklist.Component) string {
	if c.Picked {
		return "picked"
	}
	return "unpicked"
}

func categoryStr(c *picklist.Component) string {
	if c.Category == nil {
		return ""
	}
	return c.Category.Name
}
