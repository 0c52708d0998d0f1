package routing

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shandysiswandi/corpuseditor/internal/editor/entity"
	"github.com/shandysiswandi/corpuseditor/internal/pkg/pkgerror"
)

var (
	// ErrInvalidPattern indicates a route path pattern that cannot be compiled.
	ErrInvalidPattern = errors.New("invalid route pattern")
	// ErrUnresolvableDefault indicates a default path no concrete rule matches.
	ErrUnresolvableDefault = errors.New("default path does not resolve to a route")
	// ErrUnknownController indicates a route without a known controller.
	ErrUnknownController = errors.New("route has no known controller")
)

type segment struct {
	literal string
	param   string
}

// Pattern is a compiled route path pattern such as "/article/:articleId".
type Pattern struct {
	raw      string
	segments []segment
}

// ParsePattern compiles a path pattern. Segments starting with ':' capture a
// single path segment under the name that follows the colon.
func ParsePattern(raw string) (Pattern, error) {
	if !strings.HasPrefix(raw, "/") {
		return Pattern{}, invalidPattern(raw, "must start with '/'")
	}

	if raw == "/" {
		return Pattern{raw: raw, segments: []segment{{literal: ""}}}, nil
	}

	parts := strings.Split(raw[1:], "/")
	segments := make([]segment, 0, len(parts))
	seen := make(map[string]struct{}, len(parts))

	for _, part := range parts {
		if part == "" {
			return Pattern{}, invalidPattern(raw, "empty segment")
		}

		if !strings.HasPrefix(part, ":") {
			segments = append(segments, segment{literal: part})
			continue
		}

		name := part[1:]
		if name == "" {
			return Pattern{}, invalidPattern(raw, "parameter without a name")
		}
		if _, dup := seen[name]; dup {
			return Pattern{}, invalidPattern(raw, fmt.Sprintf("duplicate parameter %q", name))
		}
		seen[name] = struct{}{}
		segments = append(segments, segment{param: name})
	}

	return Pattern{raw: raw, segments: segments}, nil
}

func invalidPattern(raw, reason string) error {
	return pkgerror.NewInvalidInput(fmt.Errorf("%w %q: %s", ErrInvalidPattern, raw, reason))
}

// String returns the pattern as it was written.
func (p Pattern) String() string {
	return p.raw
}

// Match reports whether path matches the pattern and returns the captured
// parameters. Captured values are returned exactly as they appear in path.
func (p Pattern) Match(path string) (entity.Params, bool) {
	if !strings.HasPrefix(path, "/") {
		return nil, false
	}

	parts := strings.Split(path[1:], "/")
	if len(parts) != len(p.segments) {
		return nil, false
	}

	var params entity.Params
	for i, seg := range p.segments {
		if seg.param == "" {
			if parts[i] != seg.literal {
				return nil, false
			}
			continue
		}

		if parts[i] == "" {
			return nil, false
		}
		params = append(params, entity.Param{Key: seg.param, Value: parts[i]})
	}

	return params, true
}
