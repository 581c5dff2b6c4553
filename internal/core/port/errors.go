package port

import (
	"errors"
	"fmt"
	"strings"

	"campaign-roi/internal/core/domain"
)

var (
	// ErrLoad is wrapped by every *LoadError.
	ErrLoad = errors.New("dataset load failed")

	// ErrNotLoaded is returned when an aggregation is requested before a
	// dataset has been loaded.
	ErrNotLoaded = errors.New("dataset not loaded")

	// ErrZeroSpend is wrapped by every *ZeroSpendError.
	ErrZeroSpend = errors.New("zero marketing spend")
)

// LoadError describes missing or malformed input. Row is the 1-based data
// row (0 for the header) and Column the offending column, when known.
type LoadError struct {
	Source string
	Row    int
	Column string
	Err    error
}

func (e *LoadError) Error() string {
	var b strings.Builder
	b.WriteString("load ")
	b.WriteString(e.Source)
	if e.Row > 0 {
		fmt.Fprintf(&b, ": row %d", e.Row)
	}
	if e.Column != "" {
		fmt.Fprintf(&b, ": column %s", e.Column)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

// Is makes errors.Is(err, ErrLoad) hold for any LoadError.
func (e *LoadError) Is(target error) bool { return target == ErrLoad }

func (e *LoadError) Unwrap() error { return e.Err }

// TotalKey is the ZeroSpendError key used for the overall summary, which
// has no grouping dimension.
const TotalKey = "total"

// ZeroSpendError reports a group whose marketing spend is zero, for which
// ROI is undefined. Dimension is empty for the overall summary.
type ZeroSpendError struct {
	Dimension domain.Dimension
	Key       string

	// Records is the number of attributed sales behind the group.
	Records int
}

func (e *ZeroSpendError) Error() string {
	var b strings.Builder
	b.WriteString(ErrZeroSpend.Error())
	switch {
	case e.Dimension != "":
		fmt.Fprintf(&b, " for %s %q", e.Dimension, e.Key)
	case e.Key != "":
		fmt.Fprintf(&b, " for %s", e.Key)
	}
	if e.Records == 0 && e.Dimension == "" {
		b.WriteString(": no sale matched any campaign")
	}
	return b.String()
}

func (e *ZeroSpendError) Unwrap() error { return ErrZeroSpend }
