package installer

import (
	"errors"
	"strings"
	"testing"
)

func TestValidateItemName(t *testing.T) {
	cases := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "simple", input: "code-review", wantErr: false},
		{name: "underscore and digits", input: "skill_2", wantErr: false},
		{name: "empty", input: "", wantErr: true},
		{name: "path traversal", input: "../../etc/passwd", wantErr: true},
		{name: "forward slash", input: "foo/bar", wantErr: true},
		{name: "backslash", input: `foo\bar`, wantErr: true},
		{name: "dotdot only", input: "..", wantErr: true},
		{name: "leading dot", input: ".hidden", wantErr: true},
		{name: "embedded dotdot", input: "a..b", wantErr: true},
		{name: "space", input: "my skill", wantErr: true},
		{name: "shell metachar", input: "skill;rm", wantErr: true},
		{name: "too long", input: strings.Repeat("a", 129), wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateItemName(tc.input)
			if tc.wantErr {
				if !errors.Is(err, ErrInvalidItemName) {
					t.Fatalf("ValidateItemName(%q) = %v, want ErrInvalidItemName", tc.input, err)
				}
			} else if err != nil {
				t.Fatalf("ValidateItemName(%q) = %v, want nil", tc.input, err)
			}
		})
	}
}
