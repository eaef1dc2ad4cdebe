package build

import "github.com/vango-dev/domkit/pkg/dom"

// populateRecords writes one header row from the keys of the first record
// and one body row per record. Records missing a header key get an empty
// cell; extra keys are ignored.
func (b *Builder) populateRecords(head, body *dom.Node, records []Record) {
	if len(records) == 0 {
		return
	}
	headers := records[0].Keys()
	b.writeHeader(head, headers)

	for _, rec := range records {
		row := body.InsertRow()
		for _, h := range headers {
			cell := row.InsertCell()
			if v, ok := rec.Get(h); ok {
				cell.SetInnerHTML(formatCell(v))
			}
		}
	}
}

// populateFrame writes one header row from the frame columns and one body
// row per value vector. Vector lengths are not checked against the columns.
func (b *Builder) populateFrame(head, body *dom.Node, frame Frame) {
	b.writeHeader(head, frame.Cols)

	for _, vals := range frame.Vals {
		row := body.InsertRow()
		for _, v := range vals {
			row.InsertCell().SetInnerHTML(formatScalar(v))
		}
	}
}

func (b *Builder) writeHeader(head *dom.Node, headers []string) {
	row := head.InsertRow()
	for _, h := range headers {
		th := b.surface.CreateElement("th")
		th.SetInnerHTML(h)
		row.AppendChild(th)
	}
}
