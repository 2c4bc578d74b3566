package invoice

import "strings"

// BuildRecords walks every page and every non-empty line of one document and
// materializes its full record set. The header is extracted once from the
// first page and broadcast onto every record. Lines that do not look like
// detail lines are silently skipped; an empty result is a valid outcome that
// the caller should surface as a per-document warning, not an error.
func BuildRecords(file string, pages []string) []LineRecord {
	var header Header
	if len(pages) > 0 {
		header = ParseHeader(pages[0])
	}

	var records []LineRecord
	for pageIdx, text := range pages {
		for _, raw := range strings.Split(text, "\n") {
			line := strings.TrimSpace(raw)
			if line == "" {
				continue
			}
			rec, ok := ExtractLine(line)
			if !ok {
				continue
			}
			rec.File = file
			rec.Page = pageIdx + 1
			rec.Header = header
			records = append(records, rec)
		}
	}
	return records
}
