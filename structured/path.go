package structured

import (
	"strings"
)

const defaultSeparator = "/"

// Path separators within path segments are escaped according to the JSON
// Pointer format defined in RFC 6901: https://tools.ietf.org/html/rfc6901
var (
	rfc6901Decoder = strings.NewReplacer("~1", "/", "~0", "~")
	rfc6901Encoder = strings.NewReplacer("~", "~0", "/", "~1")
)

// Path is an ordered sequence of keys locating an element within a
// structured data value.
type Path []string

// NewPath returns a new path consisting of the given segments.
func NewPath(segments ...string) Path {
	return Path{}.CopyAppend(segments...)
}

// ParsePath parses the given path string into a Path, using the given
// optional path separator. If no separator is specified, the default
// separator '/' is used. Segments are unescaped according to RFC 6901.
func ParsePath(path string, separator ...string) Path {
	if path == "" {
		return nil
	}
	sep := resolveSeparator(separator)
	p := strings.Split(path, sep)
	if p[0] == "" {
		p = p[1:]
	}
	if len(p) > 0 && p[len(p)-1] == "" {
		p = p[:len(p)-1]
	}
	for idx, seg := range p {
		p[idx] = rfc6901Decoder.Replace(seg)
	}
	return p
}

func (p Path) String() string {
	return p.Format()
}

// Format formats this path as a string, using the given optional path
// separator. If no separator is specified, the default separator '/' is used.
func (p Path) Format(separator ...string) string {
	sep := resolveSeparator(separator)
	if len(p) == 0 {
		return sep
	}
	sb := strings.Builder{}
	for _, seg := range p {
		sb.WriteString(sep)
		sb.WriteString(rfc6901Encoder.Replace(seg))
	}
	return sb.String()
}

// CopyAppend makes a copy of this path, appends the given segments to the
// copy and returns the copy.
func (p Path) CopyAppend(segments ...string) Path {
	c := make(Path, len(p)+len(segments))
	copy(c, p)
	copy(c[len(p):], segments)
	return c
}

// IsEmpty returns true if the path is nil or empty, false otherwise.
func (p Path) IsEmpty() bool {
	return len(p) == 0
}

// Equals returns true if this path is identical to the given path, false
// otherwise.
func (p Path) Equals(other Path) bool {
	return len(p) == len(other) && p.Contains(other)
}

// StartsWith returns true if p starts with the given path. It's an alias for
// Contains().
func (p Path) StartsWith(other Path) bool {
	return p.Contains(other)
}

// Contains returns true if the given path is contained in p, i.e. p starts
// with the provided path.
func (p Path) Contains(other Path) bool {
	if len(p) < len(other) {
		return false
	}
	for idx, seg := range other {
		if p[idx] != seg {
			return false
		}
	}
	return true
}

// CommonRoot returns the common parent path of this path and the provided
// path.
func (p Path) CommonRoot(other Path) Path {
	if p == nil {
		return other
	}
	idx := 0
	for ; idx < len(p) && idx < len(other); idx++ {
		if p[idx] != other[idx] {
			break
		}
	}
	return p[:idx]
}

// Clone returns a copy of this path.
func (p Path) Clone() Path {
	return append(p[:0:0], p...)
}

// MarshalText implements custom marshaling using the string representation.
func (p Path) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements custom unmarshaling from the string
// representation.
func (p *Path) UnmarshalText(text []byte) error {
	*p = ParsePath(string(text))
	return nil
}

func resolveSeparator(separator []string) string {
	if len(separator) > 0 {
		return separator[0]
	}
	return defaultSeparator
}
