package quotepdf

import (
	"bytes"
	"strconv"
	"time"

	"mecanica_quotes/internal/domain/entities"

	"github.com/go-pdf/fpdf"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

type placementKind string

const (
	kindPageBreak placementKind = "page_break"
	kindText      placementKind = "text"
	kindRow       placementKind = "row"
	kindImage     placementKind = "image"
	kindShape     placementKind = "shape"
)

// placement is one drawn element, kept so a finished layout can be inspected
// without parsing the PDF.
type placement struct {
	Kind    placementKind
	Section string
	Page    int
	X, Y    float64
	Text    string
	Color   entities.RGB
}

// pageCursor is the mutable state of a single render: the document being
// built, the current vertical offset and the trace of everything drawn.
// It belongs to one Render call and is discarded when the call returns.
type pageCursor struct {
	pdf     *fpdf.Fpdf
	y       float64
	section string
	trace   []placement
	enc     *encoding.Encoder
	dec     *encoding.Decoder
}

func newPageCursor(title, author string, created time.Time) *pageCursor {
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           fpdf.SizeType{Wd: pageWidth, Ht: pageHeight},
	})
	pdf.SetMargins(margin, margin, margin)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetTitle(title, true)
	pdf.SetAuthor(author, true)
	pdf.SetCreator("mecanica_quotes", true)
	pdf.SetCreationDate(created)
	pdf.SetCatalogSort(true)
	pdf.AddPage()

	return &pageCursor{
		pdf: pdf,
		enc: encoding.ReplaceUnsupported(charmap.Windows1252.NewEncoder()),
		dec: charmap.Windows1252.NewDecoder(),
	}
}

func (c *pageCursor) page() int {
	return c.pdf.PageNo()
}

func (c *pageCursor) pages() int {
	return c.pdf.PageCount()
}

func (c *pageCursor) beginSection(name string) {
	c.section = name
}

// newPage continues the document on a fresh page with the cursor at the top
// margin.
func (c *pageCursor) newPage() {
	c.pdf.AddPage()
	c.y = margin
	c.record(placement{Kind: kindPageBreak, Y: c.y})
}

// breakIfBelow starts a new page when the cursor is past limit.
func (c *pageCursor) breakIfBelow(limit float64) {
	if c.y > limit {
		c.newPage()
	}
}

// breakUnlessFits starts a new page when a block of the given height,
// starting at the cursor, would end past limit.
func (c *pageCursor) breakUnlessFits(height, limit float64) {
	if c.y+height > limit {
		c.newPage()
	}
}

func (c *pageCursor) record(p placement) {
	p.Section = c.section
	p.Page = c.page()
	c.trace = append(c.trace, p)
}

// latin1 converts UTF-8 text to the Windows-1252 bytes the core fonts expect.
func (c *pageCursor) latin1(s string) string {
	out, err := c.enc.String(s)
	if err != nil {
		return s
	}
	return out
}

func (c *pageCursor) font(style string, size float64, color entities.RGB) {
	c.pdf.SetFont("Helvetica", style, size)
	c.pdf.SetTextColor(color.R, color.G, color.B)
}

// text draws s in a single-line cell of width w anchored at (x, y).
func (c *pageCursor) text(x, y, w, h float64, s, align string) {
	c.pdf.SetXY(x, y)
	c.pdf.CellFormat(w, h, c.latin1(s), "", 0, align, false, 0, "")
	r, g, b := c.pdf.GetTextColor()
	c.record(placement{Kind: kindText, X: x, Y: y, Text: s, Color: entities.RGB{R: r, G: g, B: b}})
}

// wrap splits s into lines that fit width w in the current font. Explicit
// newlines are kept.
func (c *pageCursor) wrap(s string, w float64) []string {
	raw := c.pdf.SplitLines([]byte(c.latin1(s)), w)
	lines := make([]string, 0, len(raw))
	for _, l := range raw {
		lines = append(lines, c.utf8(string(l)))
	}
	return lines
}

func (c *pageCursor) utf8(s string) string {
	out, err := c.dec.String(s)
	if err != nil {
		return s
	}
	return out
}

func (c *pageCursor) fillRect(x, y, w, h float64, color entities.RGB) {
	c.pdf.SetFillColor(color.R, color.G, color.B)
	c.pdf.Rect(x, y, w, h, "F")
	c.record(placement{Kind: kindShape, X: x, Y: y, Color: color})
}

func (c *pageCursor) strokeRect(x, y, w, h float64, color entities.RGB) {
	c.pdf.SetDrawColor(color.R, color.G, color.B)
	c.pdf.SetLineWidth(0.8)
	c.pdf.Rect(x, y, w, h, "D")
	c.record(placement{Kind: kindShape, X: x, Y: y, Color: color})
}

func (c *pageCursor) pill(x, y, w, h float64, color entities.RGB) {
	c.pdf.SetFillColor(color.R, color.G, color.B)
	c.pdf.RoundedRect(x, y, w, h, h/2, "1234", "F")
	c.record(placement{Kind: kindShape, X: x, Y: y, Color: color})
}

func (c *pageCursor) rule(y float64, color entities.RGB) {
	c.pdf.SetDrawColor(color.R, color.G, color.B)
	c.pdf.SetLineWidth(0.8)
	c.pdf.Line(margin, y, pageWidth-margin, y)
}

func (c *pageCursor) stringWidth(s string) float64 {
	return c.pdf.GetStringWidth(c.latin1(s))
}

// image places a JPEG at (x, y) scaled to w×h.
func (c *pageCursor) image(name string, jpeg []byte, x, y, w, h float64, label string) {
	opts := fpdf.ImageOptions{ImageType: "JPG"}
	c.pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(jpeg))
	c.pdf.ImageOptions(name, x, y, w, h, false, opts, 0, "")
	c.record(placement{Kind: kindImage, X: x, Y: y, Text: label})
}

// row records a table row; the cells themselves are drawn with text.
func (c *pageCursor) row(index int) {
	c.record(placement{Kind: kindRow, Y: c.y, Text: strconv.Itoa(index)})
}

func (c *pageCursor) err() error {
	return c.pdf.Error()
}

// finish serializes the document. The cursor must not be used afterwards.
func (c *pageCursor) finish() ([]byte, error) {
	if err := c.pdf.Error(); err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := c.pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
