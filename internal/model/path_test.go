package model

import (
	"testing"
)

func TestPathString(t *testing.T) {
	tests := []struct {
		path     Path
		expected string
	}{
		{Path{}, "/"},
		{Path{0}, "/0"},
		{Path{0, 2, 11}, "/0/2/11"},
	}

	for _, tt := range tests {
		if got := tt.path.String(); got != tt.expected {
			t.Errorf("String() = %q, want %q", got, tt.expected)
		}
		parsed, err := ParsePath(tt.expected)
		if err != nil {
			t.Errorf("ParsePath(%q) failed: %v", tt.expected, err)
			continue
		}
		if !parsed.Equal(tt.path) {
			t.Errorf("ParsePath(%q) = %v, want %v", tt.expected, parsed, tt.path)
		}
	}
}

func TestParsePathErrors(t *testing.T) {
	for _, input := range []string{"0/1", "/a", "/1/-2", "/1//2"} {
		if _, err := ParsePath(input); err == nil {
			t.Errorf("ParsePath(%q) should fail", input)
		}
	}
}

func TestChildDoesNotAlias(t *testing.T) {
	parent := Path{1, 2}
	a := parent.Child(0)
	b := parent.Child(1)

	if !a.Equal(Path{1, 2, 0}) || !b.Equal(Path{1, 2, 1}) {
		t.Errorf("Child paths alias each other: %v %v", a, b)
	}

	up := a.Parent()
	c := append(up, 9)
	if !a.Equal(Path{1, 2, 0}) {
		t.Errorf("appending to Parent() modified the child path: %v (%v)", a, c)
	}
}

func TestRootIsOwnParent(t *testing.T) {
	if !(Path{}).Parent().IsRoot() {
		t.Error("root's parent should be the root")
	}
}
