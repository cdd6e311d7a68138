package schema

import (
	"fmt"
	"strings"

	"github.com/arcmantle/lit-jsx/packages/compiler/src/util"
)

// TagDefinition describes the nesting behavior of one built-in markup tag
type TagDefinition struct {
	closedByChildren map[string]bool
	requiredParents  map[string]bool
	closedByParent   bool
	isVoid           bool
}

// TagDefinitionOptions are options for creating a TagDefinition
type TagDefinitionOptions struct {
	ClosedByChildren []string
	RequiredParents  []string
	ClosedByParent   bool
	IsVoid           bool
}

// NewTagDefinition creates a new TagDefinition
func NewTagDefinition(opts TagDefinitionOptions) *TagDefinition {
	closedByChildren := make(map[string]bool)
	for _, tagName := range opts.ClosedByChildren {
		closedByChildren[tagName] = true
	}
	var requiredParents map[string]bool
	if len(opts.RequiredParents) > 0 {
		requiredParents = make(map[string]bool)
		for _, tagName := range opts.RequiredParents {
			requiredParents[tagName] = true
		}
	}
	return &TagDefinition{
		closedByChildren: closedByChildren,
		requiredParents:  requiredParents,
		closedByParent:   opts.ClosedByParent || opts.IsVoid,
		isVoid:           opts.IsVoid,
	}
}

// IsVoid returns whether this tag is a void element
func (t *TagDefinition) IsVoid() bool {
	return t.isVoid
}

// ClosedByParent returns whether this tag is closed by its parent
func (t *TagDefinition) ClosedByParent() bool {
	return t.closedByParent
}

// IsClosedByChild returns whether a child tag would implicitly close this tag
func (t *TagDefinition) IsClosedByChild(name string) bool {
	return t.isVoid || t.closedByChildren[strings.ToLower(name)]
}

// RequiresParent returns whether this tag may only appear under a fixed set
// of parents, and whether the given parent is one of them.
func (t *TagDefinition) RequiresParent(parent string) (restricted, ok bool) {
	if t.requiredParents == nil {
		return false, true
	}
	return true, t.requiredParents[strings.ToLower(parent)]
}

var (
	defaultTagDefinition *TagDefinition
	tagDefinitions       map[string]*TagDefinition
)

// GetTagDefinition returns the tag definition for a built-in tag name
func GetTagDefinition(tagName string) *TagDefinition {
	if tagDefinitions == nil {
		initTagDefinitions()
	}
	if def, exists := tagDefinitions[strings.ToLower(tagName)]; exists {
		return def
	}
	return defaultTagDefinition
}

func initTagDefinitions() {
	defaultTagDefinition = NewTagDefinition(TagDefinitionOptions{})
	tagDefinitions = make(map[string]*TagDefinition)

	voidTags := []string{
		"base", "meta", "area", "embed", "link", "img", "input", "param",
		"hr", "br", "source", "track", "wbr", "col",
	}
	for _, tag := range voidTags {
		tagDefinitions[tag] = NewTagDefinition(TagDefinitionOptions{IsVoid: true})
	}

	tagDefinitions["p"] = NewTagDefinition(TagDefinitionOptions{
		ClosedByChildren: []string{
			"address", "article", "aside", "blockquote", "div", "dl", "fieldset",
			"footer", "form", "h1", "h2", "h3", "h4", "h5", "h6", "header",
			"hgroup", "hr", "main", "nav", "ol", "p", "pre", "section", "table", "ul",
		},
		ClosedByParent: true,
	})

	tagDefinitions["thead"] = NewTagDefinition(TagDefinitionOptions{
		ClosedByChildren: []string{"tbody", "tfoot"},
		RequiredParents:  []string{"table"},
	})
	tagDefinitions["tbody"] = NewTagDefinition(TagDefinitionOptions{
		ClosedByChildren: []string{"tbody", "tfoot"},
		RequiredParents:  []string{"table"},
		ClosedByParent:   true,
	})
	tagDefinitions["tfoot"] = NewTagDefinition(TagDefinitionOptions{
		ClosedByChildren: []string{"tbody"},
		RequiredParents:  []string{"table"},
		ClosedByParent:   true,
	})
	tagDefinitions["tr"] = NewTagDefinition(TagDefinitionOptions{
		ClosedByChildren: []string{"tr"},
		RequiredParents:  []string{"table", "thead", "tbody", "tfoot"},
		ClosedByParent:   true,
	})
	tagDefinitions["td"] = NewTagDefinition(TagDefinitionOptions{
		ClosedByChildren: []string{"td", "th"},
		RequiredParents:  []string{"tr"},
		ClosedByParent:   true,
	})
	tagDefinitions["th"] = NewTagDefinition(TagDefinitionOptions{
		ClosedByChildren: []string{"td", "th"},
		RequiredParents:  []string{"tr"},
		ClosedByParent:   true,
	})
	tagDefinitions["col"] = NewTagDefinition(TagDefinitionOptions{
		RequiredParents: []string{"colgroup"},
		IsVoid:          true,
	})

	tagDefinitions["li"] = NewTagDefinition(TagDefinitionOptions{
		ClosedByChildren: []string{"li"},
		RequiredParents:  []string{"ul", "ol", "menu"},
		ClosedByParent:   true,
	})
	tagDefinitions["dt"] = NewTagDefinition(TagDefinitionOptions{
		ClosedByChildren: []string{"dt", "dd"},
	})
	tagDefinitions["dd"] = NewTagDefinition(TagDefinitionOptions{
		ClosedByChildren: []string{"dt", "dd"},
		ClosedByParent:   true,
	})

	tagDefinitions["rb"] = NewTagDefinition(TagDefinitionOptions{
		ClosedByChildren: []string{"rb", "rt", "rtc", "rp"},
		ClosedByParent:   true,
	})
	tagDefinitions["rt"] = NewTagDefinition(TagDefinitionOptions{
		ClosedByChildren: []string{"rb", "rt", "rtc", "rp"},
		ClosedByParent:   true,
	})
	tagDefinitions["rtc"] = NewTagDefinition(TagDefinitionOptions{
		ClosedByChildren: []string{"rb", "rtc", "rp"},
		ClosedByParent:   true,
	})
	tagDefinitions["rp"] = NewTagDefinition(TagDefinitionOptions{
		ClosedByChildren: []string{"rb", "rt", "rtc", "rp"},
		ClosedByParent:   true,
	})

	tagDefinitions["optgroup"] = NewTagDefinition(TagDefinitionOptions{
		ClosedByChildren: []string{"optgroup"},
		ClosedByParent:   true,
	})
	tagDefinitions["option"] = NewTagDefinition(TagDefinitionOptions{
		ClosedByChildren: []string{"option", "optgroup"},
		ClosedByParent:   true,
	})
}

// IsBuiltinTag reports whether a tag name refers to built-in markup rather
// than a component: the first character is a lowercase letter and the name
// contains no `.`.
func IsBuiltinTag(name string) bool {
	if name == "" {
		return false
	}
	first := name[0]
	if first < 'a' || first > 'z' {
		return false
	}
	return !strings.Contains(name, ".")
}

// CheckNesting validates that a built-in child may be nested inside a
// built-in parent. Nesting rules are skipped entirely when either side is a
// component tag: components may legally contain anything.
func CheckNesting(parent, child string, span *util.ParseSourceSpan) *util.ParseError {
	if !IsBuiltinTag(parent) || !IsBuiltinTag(child) {
		return nil
	}
	parentDef := GetTagDefinition(parent)
	if parentDef.IsVoid() {
		return util.NewParseError(span, fmt.Sprintf("void element <%s> cannot have children", parent))
	}
	if parentDef.IsClosedByChild(child) {
		return util.NewParseError(span, fmt.Sprintf("<%s> cannot be nested inside <%s>", child, parent))
	}
	childDef := GetTagDefinition(child)
	if restricted, ok := childDef.RequiresParent(parent); restricted && !ok {
		return util.NewParseError(span, fmt.Sprintf("<%s> is not a valid parent for <%s>", parent, child))
	}
	return nil
}
