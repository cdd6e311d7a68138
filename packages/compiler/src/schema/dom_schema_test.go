package schema

import (
	"testing"
)

func TestIsBuiltinTag(t *testing.T) {
	cases := []struct {
		name string
		want bool
	}{
		{"div", true},
		{"my-element", true},
		{"button", true},
		{"Button", false},
		{"MyElement", false},
		{"Ns.Comp", false},
		{"ns.comp", false},
		{"", false},
		{"_private", false},
	}
	for _, tc := range cases {
		if got := IsBuiltinTag(tc.name); got != tc.want {
			t.Errorf("IsBuiltinTag(%q) = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestCheckNesting(t *testing.T) {
	cases := []struct {
		parent  string
		child   string
		wantErr bool
	}{
		{"div", "p", false},
		{"p", "div", true},
		{"p", "span", false},
		{"p", "p", true},
		{"ul", "li", false},
		{"ol", "li", false},
		{"div", "li", true},
		{"li", "li", true},
		{"table", "tr", false},
		{"tr", "td", false},
		{"div", "td", true},
		{"td", "td", true},
		{"br", "span", true},
		{"img", "div", true},
		{"select", "option", false},
		{"option", "option", true},
	}
	for _, tc := range cases {
		err := CheckNesting(tc.parent, tc.child, nil)
		if (err != nil) != tc.wantErr {
			t.Errorf("CheckNesting(%q, %q) error = %v, wantErr %v", tc.parent, tc.child, err, tc.wantErr)
		}
	}
}

func TestCheckNestingSkipsComponents(t *testing.T) {
	// Nesting rules do not apply when either side is a component tag.
	cases := []struct {
		parent string
		child  string
	}{
		{"p", "BlockQuote"},
		{"MyList", "li"},
		{"br", "Anything"},
		{"Outer.Inner", "td"},
	}
	for _, tc := range cases {
		if err := CheckNesting(tc.parent, tc.child, nil); err != nil {
			t.Errorf("CheckNesting(%q, %q) = %v, want nil", tc.parent, tc.child, err)
		}
	}
}

func TestTagDefinitions(t *testing.T) {
	if !GetTagDefinition("br").IsVoid() {
		t.Error("br should be void")
	}
	if GetTagDefinition("div").IsVoid() {
		t.Error("div should not be void")
	}
	if !GetTagDefinition("p").IsClosedByChild("table") {
		t.Error("p should be closed by table")
	}
	if GetTagDefinition("p").IsClosedByChild("em") {
		t.Error("p should not be closed by em")
	}
	if !GetTagDefinition("li").ClosedByParent() {
		t.Error("li should be closed by its parent")
	}
	if GetTagDefinition("div").ClosedByParent() {
		t.Error("div should not be closed by its parent")
	}
	// Unknown tags get the permissive default.
	def := GetTagDefinition("custom-thing")
	if def.IsVoid() || def.IsClosedByChild("div") {
		t.Error("unknown tags should use the default definition")
	}
}
