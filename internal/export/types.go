package export

// Verdict classifies an export request by its preflight row count. Empty and
// blocked verdicts stop the pipeline before any fetch work starts.
type Verdict string

const (
	// VerdictEmpty means nothing matches the selection. No artifact.
	VerdictEmpty Verdict = "empty"
	// VerdictOK means the dataset exports without caveats.
	VerdictOK Verdict = "ok"
	// VerdictWarned means the export proceeds but the caller should expect
	// a slow fetch.
	VerdictWarned Verdict = "warned"
	// VerdictBlocked means the dataset is over the hard ceiling. No fetch,
	// no artifact, no override.
	VerdictBlocked Verdict = "blocked"
)

// Preflight is the guarded row count and its verdict, computed before any
// row is fetched.
type Preflight struct {
	Rows    int64   `json:"rows"`
	Verdict Verdict `json:"verdict"`
}

// Result is a completed export run. Empty and blocked outcomes carry the
// verdict and row count but no artifact; Rows is the preflight count for
// those and the actually fetched count otherwise.
type Result struct {
	JobID    string
	Filename string
	Payload  []byte
	Rows     int64
	Verdict  Verdict
}
