package ram

import (
	"errors"
	"fmt"
	"strings"
)

// Technology is a memory technology label.
type Technology string

// The technologies the engine knows about.
const (
	DDR3   Technology = "DDR3"
	DDR4   Technology = "DDR4"
	DDR5   Technology = "DDR5"
	LPDDR4 Technology = "LPDDR4"
)

// DesktopTechnologies are the labels picked from on non-ARM hosts.
var DesktopTechnologies = []Technology{DDR3, DDR4, DDR5}

// ErrUnknownTechnology is returned when a label does not name a technology.
var ErrUnknownTechnology = errors.New("unknown memory technology")

// ParseTechnology converts a case-insensitive label into a Technology.
func ParseTechnology(label string) (Technology, error) {
	t := Technology(strings.ToUpper(strings.TrimSpace(label)))

	switch t {
	case DDR3, DDR4, DDR5, LPDDR4:
		return t, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownTechnology, label)
}

func (t Technology) String() string {
	return string(t)
}
