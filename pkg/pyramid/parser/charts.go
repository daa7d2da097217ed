package parser

import (
	"archive/zip"
	"encoding/xml"
	"strconv"
	"strings"

	"github.com/ukaji3/pyramid-go/pkg/pyramid/models"
)

// ChartTypeMap maps OOXML chart element tags to chart type names.
var ChartTypeMap = map[string]string{
	"lineChart":      "Line",
	"line3DChart":    "3DLine",
	"barChart":       "Bar",
	"bar3DChart":     "3DBar",
	"areaChart":      "Area",
	"area3DChart":    "3DArea",
	"pieChart":       "Pie",
	"pie3DChart":     "3DPie",
	"doughnutChart":  "Doughnut",
	"scatterChart":   "XYScatter",
	"bubbleChart":    "Bubble",
	"radarChart":     "Radar",
	"surfaceChart":   "Surface",
	"surface3DChart": "3DSurface",
	"stockChart":     "Stock",
	"ofPieChart":     "PieOfPie",
}

// chartAnchor is a chart reference found in a drawing part.
type chartAnchor struct {
	name string
	rID  string
}

// ExtractCharts lists the charts of an xlsx file in sheet order.
func ExtractCharts(xlsxPath string) ([]models.ChartSource, error) {
	r, err := zip.OpenReader(xlsxPath)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	return extractCharts(&r.Reader)
}

func extractCharts(r *zip.Reader) ([]models.ChartSource, error) {
	workbookXML, err := readZipFile(r, "xl/workbook.xml")
	if err != nil || workbookXML == nil {
		return nil, err
	}
	wbRelsXML, err := readZipFile(r, "xl/_rels/workbook.xml.rels")
	if err != nil || wbRelsXML == nil {
		return nil, err
	}

	targets := make(map[string]string)
	for _, rel := range parseRelationships(wbRelsXML) {
		if strings.HasSuffix(rel.relType, "/worksheet") {
			targets[rel.id] = resolveRelativePath(rel.target, "xl")
		}
	}

	var result []models.ChartSource
	for _, sheet := range parseWorkbookSheets(workbookXML) {
		sheetPath, ok := targets[sheet.rID]
		if !ok {
			continue
		}
		drawingPath := findDrawing(r, sheetPath)
		if drawingPath == "" {
			continue
		}
		result = append(result, chartsFromDrawing(r, sheet.name, drawingPath)...)
	}

	return result, nil
}

// findDrawing returns the drawing part of a worksheet, if any.
func findDrawing(r *zip.Reader, sheetPath string) string {
	relsXML, err := readZipFile(r, relsPathFor(sheetPath))
	if err != nil || relsXML == nil {
		return ""
	}
	for _, rel := range parseRelationships(relsXML) {
		if strings.HasSuffix(rel.relType, "/drawing") {
			return resolveRelativePath(rel.target, "xl/drawings")
		}
	}
	return ""
}

// chartsFromDrawing parses every chart anchored in a drawing part.
func chartsFromDrawing(r *zip.Reader, sheetName, drawingPath string) []models.ChartSource {
	drawingXML, err := readZipFile(r, drawingPath)
	if err != nil || drawingXML == nil {
		return nil
	}
	anchors := parseDrawingForCharts(drawingXML)
	if len(anchors) == 0 {
		return nil
	}

	relsXML, err := readZipFile(r, relsPathFor(drawingPath))
	if err != nil || relsXML == nil {
		return nil
	}
	chartPaths := make(map[string]string)
	for _, rel := range parseRelationships(relsXML) {
		if strings.HasSuffix(rel.relType, "/chart") {
			chartPaths[rel.id] = resolveRelativePath(rel.target, "xl/charts")
		}
	}

	var charts []models.ChartSource
	for _, a := range anchors {
		chartPath, ok := chartPaths[a.rID]
		if !ok {
			continue
		}
		chartXML, err := readZipFile(r, chartPath)
		if err != nil || chartXML == nil {
			continue
		}
		chart := parseChartXML(chartXML)
		chart.Sheet = sheetName
		chart.Name = a.name
		charts = append(charts, chart)
	}
	return charts
}

// parseDrawingForCharts finds graphic frames holding charts, in document order.
func parseDrawingForCharts(data []byte) []chartAnchor {
	var result []chartAnchor
	decoder := xml.NewDecoder(strings.NewReader(string(data)))

	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		if se, ok := token.(xml.StartElement); ok && se.Name.Local == "graphicFrame" {
			if a := parseGraphicFrame(decoder); a.rID != "" {
				result = append(result, a)
			}
		}
	}

	return result
}

// parseGraphicFrame reads the object name and chart relationship id.
func parseGraphicFrame(decoder *xml.Decoder) chartAnchor {
	var a chartAnchor
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			switch t.Name.Local {
			case "cNvPr":
				a.name = attrValue(t, "name")
			case "chart":
				a.rID = attrValue(t, "id")
			}
		case xml.EndElement:
			depth--
		}
	}

	return a
}

// parseChartXML parses a chart part.
func parseChartXML(data []byte) models.ChartSource {
	var chart models.ChartSource
	decoder := xml.NewDecoder(strings.NewReader(string(data)))

	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		if se, ok := token.(xml.StartElement); ok && se.Name.Local == "chart" {
			parseChartElement(decoder, &chart)
		}
	}

	if chart.ChartType == "" {
		chart.ChartType = "unknown"
	}
	return chart
}

// parseChartElement parses c:chart.
func parseChartElement(decoder *xml.Decoder, chart *models.ChartSource) {
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "title":
				chart.Title = parseChartTitle(decoder)
			case "plotArea":
				parsePlotArea(decoder, chart)
			default:
				depth++
			}
		case xml.EndElement:
			depth--
		}
	}
}

// parseChartTitle concatenates the text runs of a title element.
func parseChartTitle(decoder *xml.Decoder) string {
	var title strings.Builder
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			if t.Name.Local == "t" {
				if txt, err := readElementText(decoder); err == nil {
					title.WriteString(txt)
				}
				continue
			}
			depth++
		case xml.EndElement:
			depth--
		}
	}

	return strings.TrimSpace(title.String())
}

// parsePlotArea parses c:plotArea. The first chart type element wins.
func parsePlotArea(decoder *xml.Decoder, chart *models.ChartSource) {
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			if ct, ok := ChartTypeMap[t.Name.Local]; ok && chart.ChartType == "" {
				chart.ChartType = ct
				parseChartGroup(decoder, chart)
			} else if t.Name.Local == "valAx" {
				chart.ValueAxisRange = parseValueAxis(decoder)
			} else {
				depth++
			}
		case xml.EndElement:
			depth--
		}
	}
}

// parseChartGroup parses the series and bar direction of a chart type element.
func parseChartGroup(decoder *xml.Decoder, chart *models.ChartSource) {
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "ser":
				chart.Series = append(chart.Series, parseSingleSeries(decoder))
			case "barDir":
				chart.BarDir = attrValue(t, "val")
				skipElement(decoder)
			default:
				depth++
			}
		case xml.EndElement:
			depth--
		}
	}
}

// parseSingleSeries parses c:ser.
func parseSingleSeries(decoder *xml.Decoder) models.ChartSeriesRef {
	var s models.ChartSeriesRef
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "tx":
				s.Name, s.NameRange = parseSeriesName(decoder)
			case "cat":
				s.CategoryRange = parseSeriesRange(decoder)
			case "val":
				s.ValueRange = parseSeriesRange(decoder)
			default:
				depth++
			}
		case xml.EndElement:
			depth--
		}
	}

	return s
}

// parseSeriesName parses the literal or referenced name in c:tx.
func parseSeriesName(decoder *xml.Decoder) (name, nameRange string) {
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "f":
				if txt, err := readElementText(decoder); err == nil {
					nameRange = strings.TrimSpace(txt)
				}
			case "v":
				if txt, err := readElementText(decoder); err == nil {
					name = strings.TrimSpace(txt)
				}
			default:
				depth++
			}
		case xml.EndElement:
			depth--
		}
	}

	return
}

// parseSeriesRange returns the formula reference in c:cat or c:val.
func parseSeriesRange(decoder *xml.Decoder) string {
	var ref string
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			if t.Name.Local == "f" && ref == "" {
				if txt, err := readElementText(decoder); err == nil {
					ref = strings.TrimSpace(txt)
				}
				continue
			}
			depth++
		case xml.EndElement:
			depth--
		}
	}

	return ref
}

// parseValueAxis returns the fixed [min, max] of c:valAx, if both are set.
func parseValueAxis(decoder *xml.Decoder) []float64 {
	var lo, hi *float64
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			switch t.Name.Local {
			case "min":
				if v, err := strconv.ParseFloat(attrValue(t, "val"), 64); err == nil {
					lo = &v
				}
			case "max":
				if v, err := strconv.ParseFloat(attrValue(t, "val"), 64); err == nil {
					hi = &v
				}
			}
		case xml.EndElement:
			depth--
		}
	}

	if lo != nil && hi != nil {
		return []float64{*lo, *hi}
	}
	return nil
}
