package picklist

// Document holds the parsed contents of a pick list file. All collections
// are in file order. A Document is populated by a single Parse call and is
// not safe for use while that call is running.
type Document struct {
	properties []*Property
	categories []*Category
	components []*Component
}

// NewDocument returns an empty document.
func NewDocument() *Document {
	return &Document{}
}

// Properties returns the header properties in file order. Names are not
// required to be unique.
func (d *Document) Properties() []*Property {
	return d.properties
}

// Categories returns the categories in file order.
func (d *Document) Categories() []*Category {
	return d.categories
}

// Components returns the components in file order, across all categories.
func (d *Document) Components() []*Component {
	return d.components
}

// Property reads the value of the first property with the given name.
// The second return value reports whether the property exists.
func (d *Document) Property(name string) (string, bool) {
	for _, p := range d.properties {
		if p.Name == name {
			return p.Value, true
		}
	}
	return "", false
}

// ComponentsOf returns the components belonging to the given category.
func (d *Document) ComponentsOf(cat *Category) []*Component {
	var comps []*Component
	for _, c := range d.components {
		if c.Category == cat {
			comps = append(comps, c)
		}
	}
	return comps
}

func (d *Document) addProperty(p *Property) {
	d.properties = append(d.properties, p)
}

func (d *Document) addCategory(c *Category) {
	d.categories = append(d.categories, c)
}

func (d *Document) addComponent(c *Component) {
	d.components = append(d.components, c)
}
