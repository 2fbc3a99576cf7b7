package alto

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pdftty/pdftty/model"
)

// Parse parses a positioned-text description and returns the document model.
// Fragment order mirrors the description's document order.
func Parse(data []byte) (*model.Document, error) {
	return ParseReader(bytes.NewReader(data))
}

// ParseReader parses a positioned-text description from r.
func ParseReader(r io.Reader) (*model.Document, error) {
	dec := xml.NewDecoder(r)
	dec.CharsetReader = charsetReader

	doc := model.NewDocument()
	var page *model.Page

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			if strings.Contains(err.Error(), "unsupported charset") {
				return nil, &ParseError{Kind: EncodingError, Err: err}
			}
			return nil, &ParseError{Kind: MalformedStructure, Err: err}
		}

		switch el := tok.(type) {
		case xml.StartElement:
			switch el.Name.Local {
			case "Page":
				p, err := startPage(el, doc.PageCount())
				if err != nil {
					return nil, err
				}
				page = p
				doc.AddPage(page)
			case "String":
				if page == nil {
					// Word node outside any page; tolerate and skip.
					continue
				}
				addString(page, el)
			}
		case xml.EndElement:
			if el.Name.Local == "Page" {
				page = nil
			}
		}
	}

	if doc.FragmentCount() == 0 {
		return nil, &ParseError{
			Kind: MalformedStructure,
			Err:  fmt.Errorf("no page yielded any fragment"),
		}
	}

	return doc, nil
}

// startPage builds a page from a Page element. A page must carry positive
// dimensions; without them the coordinate mapper has nothing to scale by.
func startPage(el xml.StartElement, index int) (*model.Page, error) {
	width := floatAttr(el, "WIDTH")
	height := floatAttr(el, "HEIGHT")

	if width <= 0 || height <= 0 {
		return nil, &ParseError{
			Kind: MissingGeometry,
			Err:  fmt.Errorf("page %d has dimensions %gx%g", index+1, width, height),
		}
	}

	return model.NewPage(index, width, height), nil
}

// addString extracts one word-level fragment from a String element. Missing
// or non-numeric geometry attributes default to zero; empty content is
// dropped. Unknown attributes are ignored.
func addString(page *model.Page, el xml.StartElement) {
	content := stringAttr(el, "CONTENT")
	if content == "" {
		return
	}

	bbox := model.NewBBox(
		floatAttr(el, "HPOS"),
		floatAttr(el, "VPOS"),
		floatAttr(el, "WIDTH"),
		floatAttr(el, "HEIGHT"),
	)
	page.AddFragment(bbox, content)
}

// stringAttr returns the value of the named attribute, or "".
func stringAttr(el xml.StartElement, name string) string {
	for _, attr := range el.Attr {
		if attr.Name.Local == name {
			return attr.Value
		}
	}
	return ""
}

// floatAttr returns the named attribute parsed as a float, or 0 when the
// attribute is absent or not numeric.
func floatAttr(el xml.StartElement, name string) float64 {
	v := stringAttr(el, name)
	if v == "" {
		return 0
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0
	}
	return f
}

// charsetReader handles non-UTF-8 encoding declarations. UTF-8 and its
// ASCII subset pass through; anything else is rejected so the failure can be
// classified as an encoding error rather than a structural one.
func charsetReader(charset string, input io.Reader) (io.Reader, error) {
	switch strings.ToLower(charset) {
	case "utf-8", "utf8", "us-ascii", "ascii":
		return input, nil
	}
	return nil, fmt.Errorf("unsupported charset %q", charset)
}
