package pdftty

import _ "embed"

// SamplePath opens the bundled sample description instead of a file on
// disk, so the viewer runs standalone without a PDF or pdfalto install.
const SamplePath = "pdftty:sample"

//go:embed testdata/sample.xml
var sampleDescription []byte

// SampleDescription returns a copy of the bundled sample ALTO description.
func SampleDescription() []byte {
	return append([]byte(nil), sampleDescription...)
}
