package exchange

import (
	"encoding/csv"
	"io"
	"strings"
)

// rawDocument is the header-keyed view of one CSV file before schema
// validation. Records map canonical header names to raw cell values;
// whitespace-only lines are skipped the way the original exports expect.
type rawDocument struct {
	headers       []string
	records       []map[string]string
	structuralErr bool
}

// readDocument tokenizes CSV content and keys every data record by its
// canonicalized header. A tokenizer failure (e.g. broken quoting) stops
// reading and marks the document structurally broken; the records collected
// up to that point are kept so diagnostics can still report row counts.
func readDocument(content string, aliases map[string]string) rawDocument {
	content = strings.TrimPrefix(content, "\uFEFF")

	reader := csv.NewReader(strings.NewReader(content))
	reader.FieldsPerRecord = -1

	headerRecord, err := reader.Read()
	if err != nil {
		return rawDocument{structuralErr: err != io.EOF}
	}

	headers := make([]string, len(headerRecord))
	for i, cell := range headerRecord {
		headers[i] = canonicalizeHeader(cell, aliases)
	}

	doc := rawDocument{headers: headers}
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			doc.structuralErr = true
			break
		}
		if isEmptyRecord(record) {
			continue
		}

		cells := make(map[string]string, len(headers))
		for i, cell := range record {
			if i < len(headers) {
				cells[headers[i]] = cell
			}
		}
		doc.records = append(doc.records, cells)
	}

	return doc
}

func isEmptyRecord(record []string) bool {
	for _, cell := range record {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
