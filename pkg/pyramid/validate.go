package pyramid

import (
	"fmt"
	"strings"

	"github.com/ukaji3/pyramid-go/pkg/pyramid/models"
)

// Direction is the side of the zero axis a series grows toward.
type Direction int

const (
	// Right grows bars toward positive values. It is the default.
	Right Direction = iota
	// Left grows bars toward negative values.
	Left
)

func (d Direction) String() string {
	if d == Left {
		return "left"
	}
	return "right"
}

// Sign returns -1 for Left and +1 for Right.
func (d Direction) Sign() float64 {
	if d == Left {
		return -1
	}
	return 1
}

// ParseDirection resolves a direction token. Tokens are case-insensitive:
// L or W mean left, R or E mean right, and an empty token means right.
func ParseDirection(token string) (Direction, error) {
	switch strings.ToUpper(strings.TrimSpace(token)) {
	case "":
		return Right, nil
	case "L", "W":
		return Left, nil
	case "R", "E":
		return Right, nil
	default:
		return Right, fmt.Errorf("%w: got %q", ErrInvalidDirection, token)
	}
}

// ValidateDirection resolves the direction of the series at index.
func ValidateDirection(index int, s models.Series) (Direction, error) {
	dir, err := ParseDirection(s.Direction)
	if err != nil {
		return Right, NewSeriesError(index, s.Label, err)
	}
	return dir, nil
}

// ValidateLabels establishes the registry from the first series and checks
// every later series against it.
func ValidateLabels(reg *Registry, index int, s models.Series) error {
	if len(s.Data) == 0 {
		return NewSeriesError(index, s.Label, ErrEmptySeries)
	}

	labels := s.Labels()
	if reg.IsEmpty() {
		reg.Extract(labels)
		return nil
	}

	if pos, ok := reg.mismatch(labels); !ok {
		var err error
		if len(labels) != reg.Len() {
			err = fmt.Errorf("%w: expected %d categories, got %d", ErrInvalidData, reg.Len(), len(labels))
		} else {
			want, _ := reg.Label(pos)
			err = fmt.Errorf("%w: category %d is %q, expected %q", ErrInvalidData, pos, labels[pos], want)
		}
		return NewSeriesError(index, s.Label, err)
	}
	return nil
}
