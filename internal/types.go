package internal

// DeckRecord is one line of a deck list. Quantity is kept verbatim as the
// token that preceded the first whitespace run on its source line.
type DeckRecord struct {
	Quantity string
	Name     string
}

type ExtractionStrategy string

const (
	ExtractTagSelector    ExtractionStrategy = "tagSelector"
	ExtractStructuralPath ExtractionStrategy = "structuralPath"
)

// TrimMode controls which edge characters are dropped from an extracted
// text block after double quotes are removed.
type TrimMode string

const (
	TrimBoth    TrimMode = "both"
	TrimLeading TrimMode = "leading"
	TrimNone    TrimMode = "none"
)

type MatchPolicy string

const (
	MatchExact     MatchPolicy = "exact"
	MatchSubstring MatchPolicy = "substring"
)

type SourceKind string

const (
	SourceNetwork SourceKind = "network"
	SourceFile    SourceKind = "file"
)

type RunState string

const (
	StateStart              RunState = "start"
	StateFetching           RunState = "fetching"
	StateReading            RunState = "reading"
	StateContentFound       RunState = "content_found"
	StateContentAbsent      RunState = "content_absent"
	StateTransportOrIOError RunState = "transport_or_io_error"
	StateWriting            RunState = "writing"
	StateReconciling        RunState = "reconciling"
	StateCleanupEmptyDir    RunState = "cleanup_empty_dir"
	StateDone               RunState = "done"
	StateReportedFailure    RunState = "reported_failure"
)

// ReconciliationResult partitions a deck list against a collection. Owned
// and NotOwned keep the input order; Skipped holds records without a name.
type ReconciliationResult struct {
	Owned    []DeckRecord
	NotOwned []DeckRecord
	Skipped  []DeckRecord
}

func (r ReconciliationResult) Total() int {
	return len(r.Owned) + len(r.NotOwned) + len(r.Skipped)
}
