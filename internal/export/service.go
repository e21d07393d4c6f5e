package export

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/veyra-lab/project-veyra/internal/core/filter"
	"github.com/veyra-lab/project-veyra/internal/core/storage"
)

const (
	DefaultPageSize       = 50000
	DefaultWarnThreshold  = 500000
	DefaultBlockThreshold = 1000000
)

// ErrInvalidSelection marks selection validation errors that should return
// HTTP 400.
var ErrInvalidSelection = errors.New("invalid export selection")

// Service implements the export pipeline: guarded count, verdict, paged
// newest-first fetch, CSV render. A failed run returns an error and no
// artifact; there is no partial output and no automatic retry.
type Service struct {
	store          storage.FacetStore
	pageSize       int
	warnThreshold  int64
	blockThreshold int64
}

// Options tune the pipeline. Zero values fall back to defaults.
type Options struct {
	PageSize       int
	WarnThreshold  int64
	BlockThreshold int64
}

func (o Options) normalized() Options {
	if o.PageSize <= 0 {
		o.PageSize = DefaultPageSize
	}
	if o.WarnThreshold <= 0 {
		o.WarnThreshold = DefaultWarnThreshold
	}
	if o.BlockThreshold <= 0 {
		o.BlockThreshold = DefaultBlockThreshold
	}
	return o
}

// NewService creates an export service over the given store.
func NewService(store storage.FacetStore, opts Options) *Service {
	opts = opts.normalized()

	return &Service{
		store:          store,
		pageSize:       opts.PageSize,
		warnThreshold:  opts.WarnThreshold,
		blockThreshold: opts.BlockThreshold,
	}
}

// Preflight runs the guarded count for the selection and classifies it.
// The count runs under the short statement deadline, so a pathological
// filter fails here in seconds instead of stalling a fetch for minutes.
func (s *Service) Preflight(ctx context.Context, sel filter.FilterSelection) (*Preflight, error) {
	if err := sel.DateRange.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSelection, err)
	}

	count, err := s.store.Count(ctx, filter.ActiveConstraints(sel))
	if err != nil {
		return nil, fmt.Errorf("export preflight: %w", err)
	}

	return &Preflight{Rows: count, Verdict: s.verdictFor(count)}, nil
}

func (s *Service) verdictFor(rows int64) Verdict {
	switch {
	case rows == 0:
		return VerdictEmpty
	case rows <= s.warnThreshold:
		return VerdictOK
	case rows <= s.blockThreshold:
		return VerdictWarned
	default:
		return VerdictBlocked
	}
}

// Export runs the full pipeline for the selection. Empty and blocked
// verdicts return early with no artifact and no error; storage failures
// return an error and no artifact. progress may be nil; when set it receives
// fractions in [0, 1].
func (s *Service) Export(ctx context.Context, sel filter.FilterSelection, progress func(fraction float64)) (*Result, error) {
	jobID := uuid.NewString()

	pre, err := s.Preflight(ctx, sel)
	if err != nil {
		return nil, err
	}

	slog.Info("[Export] Preflight complete",
		"job", jobID,
		"range", sel.DateRange.Label(),
		"rows", pre.Rows,
		"verdict", pre.Verdict,
	)

	result := &Result{JobID: jobID, Rows: pre.Rows, Verdict: pre.Verdict}
	if pre.Verdict == VerdictEmpty || pre.Verdict == VerdictBlocked {
		return result, nil
	}

	columns, records, err := s.fetchAll(ctx, sel, pre.Rows, progress)
	if err != nil {
		return nil, fmt.Errorf("export fetch: %w", err)
	}

	report(progress, 0.95)
	payload, err := renderCSV(columns, records)
	if err != nil {
		return nil, fmt.Errorf("failed to render export artifact: %w", err)
	}
	report(progress, 1.0)

	result.Rows = int64(len(records))
	result.Filename = "billing_data_" + sel.DateRange.Label() + ".csv"
	result.Payload = payload

	slog.Info("[Export] Artifact rendered",
		"job", jobID,
		"rows", result.Rows,
		"bytes", len(payload),
	)
	return result, nil
}

// fetchAll drains the matching rows newest-first in fixed-size pages under
// the long fetch deadline. Progress is fed from the preflight count but
// capped at 0.9: the count can drift from what the fetch sees, and the last
// stretch belongs to serialization.
func (s *Service) fetchAll(
	ctx context.Context,
	sel filter.FilterSelection,
	total int64,
	progress func(float64),
) ([]string, []storage.FactRecord, error) {
	cons := filter.ActiveConstraints(sel)

	var (
		columns []string
		records []storage.FactRecord
	)
	for offset := 0; ; offset += s.pageSize {
		page, err := s.store.FetchPage(ctx, cons, storage.OrderDateDesc, offset, s.pageSize)
		if err != nil {
			return nil, nil, err
		}

		if columns == nil {
			columns = page.Columns
		}
		if len(page.Records) == 0 {
			break
		}

		records = append(records, page.Records...)
		report(progress, min(float64(len(records))/float64(total), 0.9))

		if len(page.Records) < s.pageSize {
			break
		}
	}

	return columns, records, nil
}

func report(progress func(float64), fraction float64) {
	if progress != nil {
		progress(fraction)
	}
}
