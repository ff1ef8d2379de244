// Package quotepdf renders service order quotes as paginated A4 PDF documents.
//
// A render is a fixed pipeline of sections sharing one page cursor:
//
//	header → quote info → vehicle → customer → items → photos → observations → footer
//
// Photos are the only external input resolved during a render; they are
// loaded through an interfaces.IImageFetcher and a photo that cannot be
// loaded is left out of the grid instead of failing the document.
//
// Example usage:
//
//	renderer := quotepdf.NewRenderer(fetcher, quotepdf.WithLogger(logger))
//	content, pages, err := renderer.Render(ctx, quote, &issuer)
//	if err != nil {
//	    return err
//	}
//	name := quotepdf.SuggestedFilename(quote.Description, quote.PublicToken)
package quotepdf
