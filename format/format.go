// Package format renders parsed pick list documents for display.
package format

import (
	"encoding"

	"github.com/nathanpc/pickle-go/picklist"
)

type Encoder interface {
	encoding.TextMarshaler
	Encode(doc *picklist.Document) error
}
