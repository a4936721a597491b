package fixture

import (
	"errors"
	"fmt"
)

// Sentinel kinds for fixture errors.
var (
	ErrOpen  = errors.New("open fixture failed")
	ErrRead  = errors.New("read fixture failed")
	ErrParse = errors.New("fixture line is not valid JSON")
)

// ParseError reports the fixture line that could not be decoded.
type ParseError struct {
	Path string
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s:%d: %v", e.Path, e.Line, ErrParse)
	}
	return fmt.Sprintf("%s:%d: %v: %v", e.Path, e.Line, ErrParse, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Is matches ErrParse.
func (e *ParseError) Is(target error) bool { return target == ErrParse }
