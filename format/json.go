package format

import (
	"encoding/json"
	"io"

	"github.com/nathanpc/pickle-go/picklist"
)

type JSONEncoder struct {
	w   io.Writer
	doc *picklist.Document
}

func NewJSONEncoder(w io.Writer) *JSONEncoder {
	return &JSONEncoder{w: w}
}

func (e *JSONEncoder) Encode(doc *picklist.Document) error {
	e.doc = doc
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *JSONEncoder) MarshalText() ([]byte, error) {
	data := e.buildDocumentData()
	return json.MarshalIndent(data, "", "  ")
}

type jsonDocument struct {
	Properties []jsonProperty  `json:"properties"`
	Categories []string        `json:"categories"`
	Components []jsonComponent `json:"components"`
}

type jsonProperty struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type jsonComponent struct {
	Name        string   `json:"name"`
	Picked      bool     `json:"picked"`
	Value       string   `json:"value"`
	Description string   `json:"description,omitempty"`
	Package     string   `json:"package,omitempty"`
	RefDes      []string `json:"refdes,omitempty"`
	Category    string   `json:"category,omitempty"`
}

func (e *JSONEncoder) buildDocumentData() jsonDocument {
	doc := jsonDocument{
		Properties: []jsonProperty{},
		Categories: []string{},
		Components: []jsonComponent{},
	}
	for _, p := range e.doc.Properties() {
		doc.Properties = append(doc.Properties, jsonProperty{Name: p.Name, Value: p.Value})
	}
	for _, c := range e.doc.Categories() {
		doc.Categories = append(doc.Categories, c.Name)
	}
	for _, c := range e.doc.Components() {
		comp := jsonComponent{
			Name:        c.Name,
			Picked:      c.Picked,
			Value:       c.Value,
			Description: c.Description,
			Package:     c.Package,
			RefDes:      c.RefDes,
		}
		if c.Category != nil {
			comp.Category = c.Category.Name
		}
		doc.Components = append(doc.Components, comp)
	}
	return doc
}
