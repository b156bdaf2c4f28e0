package sink

import (
	"bytes"
	"image"

	"github.com/go-pdf/fpdf"

	"github.com/framery/framery/pkg/errors"
)

// pdfDPI maps bitmap pixels to PDF points. 150dpi keeps a 2x export of
// the 1200x800 canvas close to landscape A4.
const pdfDPI = 150.0

// RenderPDF embeds the bitmap full-bleed on a single page sized to the
// bitmap's aspect ratio.
func RenderPDF(img image.Image) ([]byte, error) {
	pngData, err := RenderPNG(img)
	if err != nil {
		return nil, err
	}

	b := img.Bounds()
	wPt := float64(b.Dx()) * 72 / pdfDPI
	hPt := float64(b.Dy()) * 72 / pdfDPI

	pdf := fpdf.NewCustom(&fpdf.InitType{
		UnitStr: "pt",
		Size:    fpdf.SizeType{Wd: wPt, Ht: hPt},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	opts := fpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("scene", opts, bytes.NewReader(pngData))
	pdf.ImageOptions("scene", 0, 0, wPt, hPt, false, opts, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeExportFailed, err, "pdf encode failed")
	}
	return buf.Bytes(), nil
}
