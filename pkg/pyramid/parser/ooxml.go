// Package parser reads pyramid series from JSON documents and Excel workbooks.
package parser

import (
	"archive/zip"
	"encoding/xml"
	"io"
	"strings"
)

func readZipFile(r *zip.Reader, name string) ([]byte, error) {
	for _, f := range r.File {
		if f.Name == name {
			rc, err := f.Open()
			if err != nil {
				return nil, err
			}
			defer rc.Close()
			return io.ReadAll(rc)
		}
	}
	return nil, nil
}

// readElementText reads character data up to the end of the current element.
func readElementText(decoder *xml.Decoder) (string, error) {
	var text strings.Builder
	depth := 1
	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			return text.String(), err
		}
		switch t := token.(type) {
		case xml.CharData:
			text.Write(t)
		case xml.StartElement:
			depth++
		case xml.EndElement:
			depth--
		}
	}
	return text.String(), nil
}

// skipElement consumes tokens up to the end of the current element.
func skipElement(decoder *xml.Decoder) {
	depth := 1
	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			return
		}
		switch token.(type) {
		case xml.StartElement:
			depth++
		case xml.EndElement:
			depth--
		}
	}
}

func attrValue(se xml.StartElement, local string) string {
	for _, attr := range se.Attr {
		if attr.Name.Local == local {
			return attr.Value
		}
	}
	return ""
}

func resolveRelativePath(target, baseDir string) string {
	if strings.HasPrefix(target, "../") {
		clean := target
		for strings.HasPrefix(clean, "../") {
			clean = strings.TrimPrefix(clean, "../")
		}
		return "xl/" + clean
	}
	if strings.HasPrefix(target, "/") {
		return strings.TrimPrefix(target, "/")
	}
	return baseDir + "/" + target
}

// relsPathFor returns the relationships part of an OOXML part,
// e.g. xl/drawings/drawing1.xml -> xl/drawings/_rels/drawing1.xml.rels.
func relsPathFor(part string) string {
	idx := strings.LastIndex(part, "/")
	return part[:idx+1] + "_rels/" + part[idx+1:] + ".rels"
}

// relationship is a single entry of an OOXML .rels part.
type relationship struct {
	id      string
	target  string
	relType string
}

func parseRelationships(data []byte) []relationship {
	var rels []relationship
	decoder := xml.NewDecoder(strings.NewReader(string(data)))

	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}
		if se, ok := token.(xml.StartElement); ok && se.Name.Local == "Relationship" {
			rels = append(rels, relationship{
				id:      attrValue(se, "Id"),
				target:  attrValue(se, "Target"),
				relType: strings.ToLower(attrValue(se, "Type")),
			})
		}
	}

	return rels
}

// sheetRef is a worksheet entry of xl/workbook.xml.
type sheetRef struct {
	name string
	rID  string
}

func parseWorkbookSheets(data []byte) []sheetRef {
	var sheets []sheetRef
	decoder := xml.NewDecoder(strings.NewReader(string(data)))

	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}
		if se, ok := token.(xml.StartElement); ok && se.Name.Local == "sheet" {
			name, rID := attrValue(se, "name"), attrValue(se, "id")
			if name != "" && rID != "" {
				sheets = append(sheets, sheetRef{name: name, rID: rID})
			}
		}
	}

	return sheets
}
