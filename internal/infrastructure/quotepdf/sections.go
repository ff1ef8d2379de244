package quotepdf

import (
	"strconv"
	"strings"
	"time"

	"mecanica_quotes/internal/domain/entities"
)

const (
	quoteTitle     = "ORÇAMENTO DE SERVIÇO"
	minPillWidth   = 90.0
	pillHeight     = 20.0
	infoBoxPadding = 12.0
	obsLineHeight  = 14.0
)

// drawHeader paints the workshop banner. The banner has a fixed height;
// content that does not fit is drawn past it.
func drawHeader(c *pageCursor, w entities.Workshop) {
	c.fillRect(0, 0, pageWidth, headerBottom-15, colorPrimary)

	c.font("B", 18, colorWhite)
	c.text(margin, 22, contentWidth, 20, w.Name, "L")

	c.font("", 9, colorWhite)
	y := 46.0
	if strings.TrimSpace(w.Document) != "" {
		c.text(margin, y, contentWidth, 12, documentLabel(w.Document)+": "+FormatDocument(w.Document), "L")
		y += 14
	}

	var contacts []string
	for _, v := range []*string{w.Phone, w.Email} {
		if v != nil && strings.TrimSpace(*v) != "" {
			contacts = append(contacts, strings.TrimSpace(*v))
		}
	}
	if len(contacts) > 0 {
		c.text(margin, y, contentWidth, 12, strings.Join(contacts, " | "), "L")
		y += 14
	}

	if w.Address != nil && strings.TrimSpace(*w.Address) != "" {
		c.text(margin, y, contentWidth, 12, strings.TrimSpace(*w.Address), "L")
	}

	c.y = headerBottom
}

func drawQuoteInfo(c *pageCursor, q entities.QuoteRecord, issuedBy *string, loc *time.Location) {
	top := c.y
	c.strokeRect(margin, top, contentWidth, infoBoxHeight-15, colorBorder)

	c.font("B", 14, colorText)
	c.text(margin+infoBoxPadding, top+infoBoxPadding, contentWidth/2, 16, quoteTitle, "L")

	c.font("", 10, colorText)
	line := top + 36
	c.text(margin+infoBoxPadding, line, contentWidth/2, 12, "Data de emissão: "+FormatLongDate(q.CreatedAt.In(loc)), "L")
	line += 15
	if q.ExpiresAt != nil {
		c.text(margin+infoBoxPadding, line, contentWidth/2, 12, "Válido até: "+FormatLongDate(q.ExpiresAt.In(loc)), "L")
		line += 15
	}
	if issuedBy != nil && strings.TrimSpace(*issuedBy) != "" {
		c.text(margin+infoBoxPadding, line, contentWidth/2, 12, "Emitido por: "+strings.TrimSpace(*issuedBy), "L")
	}

	style := q.Status.Style()
	c.font("B", 9, colorWhite)
	pillWidth := c.stringWidth(style.Label) + 24
	if pillWidth < minPillWidth {
		pillWidth = minPillWidth
	}
	pillX := margin + contentWidth - infoBoxPadding - pillWidth
	c.pill(pillX, top+infoBoxPadding, pillWidth, pillHeight, style.Color)
	c.text(pillX, top+infoBoxPadding, pillWidth, pillHeight, style.Label, "C")

	c.y = top + infoBoxHeight
}

func drawHeading(c *pageCursor, title string) {
	c.font("B", 11, colorPrimary)
	c.text(margin, c.y, contentWidth, 14, title, "L")
	c.rule(c.y+18, colorBorder)
	c.y += headingHeight
}

func drawField(c *pageCursor, label, value string) {
	c.font("B", 10, colorMuted)
	c.text(margin, c.y, 80, 12, label+":", "L")
	c.font("", 10, colorText)
	c.text(margin+80, c.y, contentWidth-80, 12, value, "L")
	c.y += infoRowHeight
}

func drawVehicle(c *pageCursor, v entities.Vehicle) {
	drawHeading(c, "VEÍCULO")
	drawField(c, "Modelo", strings.TrimSpace(v.Brand+" "+v.Model))
	drawField(c, "Placa", strings.ToUpper(v.Plate))
	if v.Year != nil {
		drawField(c, "Ano", strconv.Itoa(*v.Year))
	}
	if v.Color != nil && strings.TrimSpace(*v.Color) != "" {
		drawField(c, "Cor", *v.Color)
	}
	c.y += sectionSpacing
}

func drawCustomer(c *pageCursor, cu entities.Customer) {
	drawHeading(c, "CLIENTE")
	drawField(c, "Nome", cu.Name)
	c.y += sectionSpacing
}

// drawItems renders the item table. A row is never split: when it would end
// below tableBreakY it moves, whole, to the next page. The total shown is the
// stored one.
func drawItems(c *pageCursor, items []entities.LineItem, total int64) {
	drawHeading(c, "ITENS DO ORÇAMENTO")

	c.fillRect(margin, c.y, contentWidth, rowHeight, colorPrimary)
	c.font("B", 10, colorWhite)
	drawItemCells(c, "Descrição", "Qtd", "Valor Unit.", "Subtotal")
	c.y += rowHeight

	for i, it := range items {
		c.breakUnlessFits(rowHeight, tableBreakY)
		if i%2 == 1 {
			c.fillRect(margin, c.y, contentWidth, rowHeight, colorZebra)
		}
		c.row(i)
		c.font("", 10, colorText)
		drawItemCells(c,
			truncateToWidth(c, it.Description, colDescWidth-2*cellPadding),
			strconv.Itoa(it.Quantity),
			FormatCurrency(it.UnitPrice),
			FormatCurrency(it.LineTotal()),
		)
		c.y += rowHeight
	}

	c.y += 4
	c.breakUnlessFits(totalBarHeight, tableBreakY)
	c.fillRect(margin, c.y, contentWidth, totalBarHeight, colorTotal)
	c.font("B", 12, colorPrimary)
	c.text(margin+cellPadding, c.y, contentWidth/2, totalBarHeight, "TOTAL", "L")
	c.text(margin+contentWidth/2, c.y, contentWidth/2-cellPadding, totalBarHeight, FormatCurrency(total), "R")
	c.y += totalBarHeight + sectionSpacing*2
}

func drawItemCells(c *pageCursor, desc, qty, unit, subtotal string) {
	x := margin
	c.text(x+cellPadding, c.y, colDescWidth-2*cellPadding, rowHeight, desc, "L")
	x += colDescWidth
	c.text(x, c.y, colQtyWidth, rowHeight, qty, "C")
	x += colQtyWidth
	c.text(x, c.y, colUnitWidth-cellPadding, rowHeight, unit, "R")
	x += colUnitWidth
	c.text(x, c.y, colSubtotalWidth-cellPadding, rowHeight, subtotal, "R")
}

// drawObservations flows the text line by line; a line that would end below
// tableBreakY continues at the top of the next page.
func drawObservations(c *pageCursor, obs *string) {
	if obs == nil || strings.TrimSpace(*obs) == "" {
		return
	}
	c.breakIfBelow(tableBreakY - headingHeight - obsLineHeight)
	drawHeading(c, "OBSERVAÇÕES")
	c.font("", 10, colorText)
	for _, line := range c.wrap(strings.TrimSpace(*obs), contentWidth) {
		c.breakUnlessFits(obsLineHeight, tableBreakY)
		c.text(margin, c.y, contentWidth, obsLineHeight, line, "L")
		c.y += obsLineHeight
	}
	c.y += sectionSpacing
}

// drawFooter is drawn once, at a fixed position on the last page.
func drawFooter(c *pageCursor, expiresAt *time.Time, now time.Time) {
	c.rule(footerTop, colorBorder)
	y := footerTop + 6

	if expiresAt != nil {
		exp := expiresAt.In(now.Location())
		if exp.Before(now) {
			c.font("B", 10, colorDanger)
			c.text(margin, y, contentWidth, 12, "ORÇAMENTO EXPIRADO em "+FormatLongDate(exp), "C")
		} else {
			c.font("B", 10, colorSuccess)
			c.text(margin, y, contentWidth, 12, "Orçamento válido até "+FormatLongDate(exp), "C")
		}
		y += 14
	}

	c.font("", 8, colorMuted)
	c.text(margin, y, contentWidth, 10, "Documento gerado em "+FormatDateTime(now), "C")
}
