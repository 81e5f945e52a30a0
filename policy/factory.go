package policy

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/multierr"
)

var ErrUnknownKind = errors.New("unknown policy kind")

type Kind int

const (
	KindRandom Kind = iota
	KindCycling
)

var kindNames = map[Kind]string{
	KindRandom:  "random",
	KindCycling: "cycling",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

func ParseKind(s string) (Kind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for k, name := range kindNames {
		if name == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

func (k Kind) MarshalText() ([]byte, error) {
	if _, ok := kindNames[k]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, int(k))
	}
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// New builds a policy of the given kind. The seed is ignored by deterministic policies.
func New(kind Kind, seed uint64) (Policy, error) {
	switch kind {
	case KindRandom:
		return NewRandom(seed), nil
	case KindCycling:
		return NewCycling(), nil
	}
	return nil, fmt.Errorf("%w: %d", ErrUnknownKind, int(kind))
}

// Close releases every policy that holds resources.
func Close(policies ...Policy) error {
	var err error
	for _, p := range policies {
		if c, ok := p.(io.Closer); ok {
			err = multierr.Append(err, c.Close())
		}
	}
	return err
}
