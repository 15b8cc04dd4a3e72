package interact

import (
	"github.com/probehq/domsim/pkg/dom"
	"github.com/probehq/domsim/internal/errs"
)

// GetValue reads the current value of a control: the value property for
// inputs and textareas, the text content for contenteditable surfaces.
// ok is false for elements with no readable value.
func GetValue(el *dom.Element) (value string, ok bool) {
	switch {
	case IsInput(el), IsTextArea(el):
		return el.Value(), true
	case IsEditable(el):
		return el.TextContent(), true
	default:
		return "", false
	}
}

// SetValue writes the current value of a control. Non-editable elements
// fail with a failed_precondition error.
func SetValue(el *dom.Element, value string) error {
	switch {
	case IsInput(el), IsTextArea(el):
		el.SetValue(value)
		return nil
	case IsEditable(el):
		el.SetTextContent(value)
		return nil
	default:
		return errs.Newf(errs.FailedPrecondition, "element %s is not editable", describeElement(el))
	}
}

// assignFiles wraps the files in a DataTransfer to produce a realistic file
// list, then overrides the input's files property.
func assignFiles(el *dom.Element, files []dom.File) {
	dt := dom.NewDataTransfer()
	for _, f := range files {
		dt.AddFile(f)
	}
	el.SetFiles(dt.Files())
}
