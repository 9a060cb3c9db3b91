package directive

import (
	"testing"
)

func TestReference_UnmarshalText(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Reference
		wantErr string
	}{
		{
			name:  "free function",
			input: `"github.com/sirkon/irrelevant".Warn`,
			want:  Reference{Package: "github.com/sirkon/irrelevant", Name: "Warn"},
		},
		{
			name:  "method",
			input: ` "example.com/kitchen".Checker.Ignore `,
			want:  Reference{Package: "example.com/kitchen", Type: "Checker", Name: "Ignore"},
		},
		{
			name:    "empty",
			input:   "  ",
			wantErr: "empty reference",
		},
		{
			name:    "unquoted package",
			input:   "fmt.Println",
			wantErr: `reference must start with quoted package: "fmt.Println"`,
		},
		{
			name:    "no name",
			input:   `"fmt"`,
			wantErr: `reference must contain a name: "\"fmt\""`,
		},
		{
			name:    "too deep",
			input:   `"fmt".A.B.C`,
			wantErr: `reference must have 1 or 2 identifiers after package: "\"fmt\".A.B.C"`,
		},
		{
			name:    "bad identifier",
			input:   `"fmt".1st`,
			wantErr: `invalid identifier "1st" in reference "\"fmt\".1st"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got Reference
			err := got.UnmarshalText([]byte(tt.input))
			if tt.wantErr != "" {
				if err == nil {
					t.Fatalf("error %q was expected, got %+v", tt.wantErr, got)
				}
				if err.Error() != tt.wantErr {
					t.Fatalf("error mismatch: got %q, want %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %s", err)
			}
			if got != tt.want {
				t.Fatalf("reference mismatch: got %+v, want %+v", got, tt.want)
			}

			text, err := got.MarshalText()
			if err != nil {
				t.Fatalf("marshal back: %s", err)
			}
			var again Reference
			if err := again.UnmarshalText(text); err != nil || again != got {
				t.Fatalf("%s does not survive a round trip: %+v, %v", text, again, err)
			}
		})
	}
}

func TestEntry_UnmarshalText(t *testing.T) {
	tests := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{input: "discard", want: "discard"},
		{input: "narrow", want: "narrow"},
		{input: "warn", want: "warn"},
		{input: "abort", want: "abort"},
		{input: "debug", want: "debug"},
		{input: "panic", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			var e Entry
			err := e.UnmarshalText([]byte(tt.input))
			if tt.wantErr {
				if err == nil {
					t.Fatalf("error was expected, got %s", e)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %s", err)
			}
			if e.String() != tt.want {
				t.Fatalf("entry mismatch: got %s, want %s", e, tt.want)
			}
		})
	}
}

func TestKnown_CustomCannotOverridePredefined(t *testing.T) {
	warn := Reference{Package: RuntimePath, Name: "Warn"}
	custom := Reference{Package: "example.com/must", Name: "Ignore"}

	k := NewKnown(map[Reference]Entry{
		warn:   {Func: FuncDiscard},
		custom: {Func: FuncDiscard},
	}, nil)

	if e, ok := k.Directive(warn); !ok || e.Func != FuncEnforce {
		t.Errorf("predefined Warn was overridden: %s, %v", e, ok)
	}
	if e, ok := k.Directive(custom); !ok || e.Func != FuncDiscard {
		t.Errorf("custom directive was not registered: %s, %v", e, ok)
	}
	if q, ok := k.Qualifier(Reference{Package: RuntimePath, Name: "Holds"}); !ok || q != QualifierHolds {
		t.Errorf("Holds qualifier missing: %s, %v", q, ok)
	}
	if _, ok := k.Directive(Reference{Package: "fmt", Name: "Println"}); ok {
		t.Error("fmt.Println must not be a directive")
	}
}
