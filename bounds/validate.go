package bounds

import (
	"errors"
	"fmt"
	"iter"

	"github.com/amp-labs/amp-bounds/sortable"
)

// ErrInvertedRange is returned when a range's Start sorts after its End.
var ErrInvertedRange = errors.New("inverted range")

// Validate returns an error wrapping ErrInvertedRange if r is inverted.
func Validate[T sortable.Sortable[T]](r Range[T]) error {
	if IsInverted(r) {
		return fmt.Errorf("%w: start %v is after end %v", ErrInvertedRange, r.Start, r.End)
	}

	return nil
}

// ValidateAll validates every range and joins the failures, each tagged with its position
// in the sequence. It returns nil when all ranges are well formed.
func ValidateAll[T sortable.Sortable[T]](ranges iter.Seq[Range[T]]) error {
	var errs []error

	idx := 0

	for r := range ranges {
		if err := Validate(r); err != nil {
			errs = append(errs, fmt.Errorf("range %d: %w", idx, err))
		}

		idx++
	}

	return errors.Join(errs...)
}
