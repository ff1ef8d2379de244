package quotepdf

import "mecanica_quotes/internal/domain/entities"

// Page geometry, in points. A4 portrait.
const (
	pageWidth    = 595.0
	pageHeight   = 842.0
	margin       = 50.0
	contentWidth = pageWidth - 2*margin
)

// Vertical budget. Every pagination threshold is derived from these values.
const (
	headerBottom   = 115.0
	infoBoxHeight  = 100.0
	headingHeight  = 26.0
	infoRowHeight  = 16.0
	sectionSpacing = 10.0

	footerHeight    = 32.0
	footerClearance = 40.0

	// footerTop is where the footer separator is drawn on the last page.
	footerTop = pageHeight - margin - footerHeight

	// tableBreakY is the lowest y an item row (or the total bar) may end at.
	tableBreakY = footerTop - footerClearance

	rowHeight      = 22.0
	totalBarHeight = 28.0
)

// Photo grid.
const (
	photosPerRow       = 3
	photoCellSize      = 120.0
	photoGap           = 15.0
	photoCaptionHeight = 10.0
	photoRowAdvance    = photoCellSize + photoCaptionHeight + photoGap

	// photoRowBreakY: a new row of thumbnails starting below this line goes to
	// the next page.
	photoRowBreakY = tableBreakY - photoCellSize/2 - photoCaptionHeight

	// photoSectionBreakY: the photo section starts on a fresh page when the
	// document has already grown past this line.
	photoSectionBreakY = photoRowBreakY - margin
)

// Item table columns.
const (
	colQtyWidth      = 50.0
	colUnitWidth     = 95.0
	colSubtotalWidth = 95.0
	colDescWidth     = contentWidth - colQtyWidth - colUnitWidth - colSubtotalWidth
	cellPadding      = 6.0
)

var (
	colorPrimary = entities.RGB{R: 30, G: 64, B: 175}
	colorText    = entities.RGB{R: 31, G: 41, B: 55}
	colorMuted   = entities.RGB{R: 107, G: 114, B: 128}
	colorBorder  = entities.RGB{R: 209, G: 213, B: 219}
	colorZebra   = entities.RGB{R: 243, G: 244, B: 246}
	colorWhite   = entities.RGB{R: 255, G: 255, B: 255}
	colorDanger  = entities.RGB{R: 220, G: 38, B: 38}
	colorSuccess = entities.RGB{R: 22, G: 163, B: 74}
	colorTotal   = entities.RGB{R: 219, G: 234, B: 254}
)
