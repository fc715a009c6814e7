package pension

import (
	"context"
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"

	"github.com/user/pension-backend/apperror"
)

// WritePDF renders a snapshot of the default listing page into w as a PDF:
// one numbered block per record, mirroring what the listing endpoint returns.
func WritePDF(ctx context.Context, service Service, w io.Writer) error {
	page, err := service.Query(ctx, QueryFilter{})
	if err != nil {
		return err
	}

	doc := fpdf.New("P", "mm", "A4", "")
	doc.AddPage()
	doc.SetFont("Helvetica", "B", 14)
	doc.CellFormat(0, 10, "Pension records", "", 1, "L", false, 0, "")
	doc.SetFont("Helvetica", "", 11)

	for i, p := range page.Items {
		doc.SetFont("Helvetica", "B", 11)
		doc.CellFormat(0, 7, fmt.Sprintf("%d. %s", i+1, p.ID), "", 1, "L", false, 0, "")
		doc.SetFont("Helvetica", "", 11)

		writeField := func(label, value string) {
			if value == "" {
				return
			}
			doc.MultiCell(0, 6, fmt.Sprintf("    %s: %s", label, value), "", "L", false)
		}
		writeField("title", deref(p.Title))
		writeField("description", deref(p.Description))
		if p.Severity != nil {
			writeField("severity", fmt.Sprintf("%d", *p.Severity))
		}
		writeField("fullName", deref(p.FullName))
		writeField("createdAt", fmt.Sprintf("%d", p.CreatedAt.Year()))
		doc.Ln(2)
	}

	if err := doc.Output(w); err != nil {
		return apperror.NewInternalError("failed to render pension PDF", err)
	}
	return nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
