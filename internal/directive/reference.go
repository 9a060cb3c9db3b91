package directive

import (
	"bytes"
	"encoding"
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// Reference identifies a declared function or method.
type Reference struct {
	// Package is the import path of the package that declares the entity.
	Package string

	// Type is the package-local name of the receiver type for methods. Empty for free functions.
	Type string

	// Name is the declared identifier of the entity.
	Name string
}

var (
	_ encoding.TextMarshaler   = Reference{}
	_ encoding.TextUnmarshaler = (*Reference)(nil)
)

// UnmarshalText parses one of
//
//	"pkg/path".Name
//	"pkg/path".Type.Name
func (r *Reference) UnmarshalText(b []byte) error {
	s := string(bytes.TrimSpace(b))
	if s == "" {
		return errors.New("empty reference")
	}

	if !strings.HasPrefix(s, `"`) {
		return fmt.Errorf("reference must start with quoted package: %q", s)
	}
	end := strings.Index(s[1:], `"`)
	if end < 0 {
		return fmt.Errorf("unterminated quoted package in reference: %q", s)
	}
	end++

	pkg := s[1:end]
	if pkg == "" {
		return fmt.Errorf("package cannot be empty in reference: %q", s)
	}

	rest := s[end+1:]
	if !strings.HasPrefix(rest, ".") {
		return fmt.Errorf("reference must contain a name: %q", s)
	}
	rest = rest[1:]

	parts := strings.Split(rest, ".")
	if len(parts) > 2 {
		return fmt.Errorf("reference must have 1 or 2 identifiers after package: %q", s)
	}
	for _, p := range parts {
		if !isIdent(p) {
			return fmt.Errorf("invalid identifier %q in reference %q", p, s)
		}
	}

	r.Package = pkg
	switch len(parts) {
	case 1:
		r.Type = ""
		r.Name = parts[0]
	case 2:
		r.Type = parts[0]
		r.Name = parts[1]
	}

	return nil
}

func (r Reference) MarshalText() ([]byte, error) {
	if r.Package == "" {
		return nil, errors.New("cannot marshal Reference: empty Package")
	}
	if r.Name == "" {
		return nil, errors.New("cannot marshal Reference: empty Name")
	}

	return []byte(r.String()), nil
}

func (r Reference) String() string {
	var b strings.Builder
	b.WriteByte('"')
	b.WriteString(r.Package)
	b.WriteString(`".`)
	if r.Type != "" {
		b.WriteString(r.Type)
		b.WriteByte('.')
	}
	b.WriteString(r.Name)

	return b.String()
}

func isIdent(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if i == 0 && !unicode.IsLetter(r) && r != '_' {
			return false
		}
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
			return false
		}
	}
	return true
}
