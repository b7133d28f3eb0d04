package query

import (
	"github.com/kindex/ftsindex/docid"
	"github.com/kindex/ftsindex/record"
)

// Scorer is the stateless scoring contract from §4.7. Implementations
// must not retain the slices passed to Score beyond the call: search
// reuses their backing arrays across merge-loop iterations.
type Scorer interface {
	Score(
		id docid.ID,
		doc record.DocumentRecord,
		terms []string,
		termRecords []record.TermRecord,
		docTermRecords []record.DocumentTermRecord,
	) float32
}
