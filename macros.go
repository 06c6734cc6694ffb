// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/cakedoc

package cakedoc

import (
	"fmt"
	"strings"
)

const (
	// headerRoot is the include root of every documented header.
	headerRoot = "CakeIO"
	// blueprintHeaderDir holds headers of Blueprint-exposed types.
	blueprintHeaderDir = "Blueprint"
	// blueprintImageDir is the image directory of Blueprint screenshots.
	blueprintImageDir = "img/bp"
	// tablesDir is the site directory of exported error-code tables.
	tablesDir = "tables"
	// policyTypePrefix prefixes policy enum type names.
	policyTypePrefix = "ECakePolicy"
	// queryFlagSnippet is included after Blueprint file query screenshots.
	queryFlagSnippet = "bp-warn-query-flag.md"
	// missingContentMarker opens every missing content admonition.
	missingContentMarker = `??? failure "Missing Content:`
)

// Blueprint image sections.
const (
	SectionPath           = "path"
	SectionFileExt        = "file-ext"
	SectionFile           = "file"
	SectionDir            = "dir"
	SectionErrorHandling  = "error-handling"
	SectionCakeMixLibrary = "cake-mix-library"
	SectionAsync          = "async"
	SectionExtFilter      = "ext-filter"
)

// Base paths of site link helpers.
const (
	CoreAPIBase             = "/core-api"
	AdvancedBase            = "/advanced"
	CoreAPISpecialTypesBase = CoreAPIBase + "/special-types"
	AdvancedSpecialTypeBase = AdvancedBase + "/special-types"
)

// StripTypePrefix removes a single Unreal type prefix letter (T, U, C, F, E).
func StripTypePrefix(typeID string) string {
	if typeID == "" {
		return typeID
	}

	switch typeID[0] {
	case 'T', 'U', 'C', 'F', 'E':
		return typeID[1:]
	default:
		return typeID
	}
}

// HeaderPath builds the include path of a header file, optionally below relLoc.
func HeaderPath(fileName, relLoc string) string {
	var out strings.Builder
	out.WriteString(headerRoot)
	out.WriteByte('/')
	if relLoc != "" {
		out.WriteString(relLoc)
		out.WriteByte('/')
	}

	out.WriteString(fileName)
	out.WriteString(".h")
	return out.String()
}

// SourceBlock renders a collapsible info admonition with an include directive.
func SourceBlock(title, body, headerPath string) string {
	return fmt.Sprintf(`
??? info "Source Location: %s"
    %s
    `+"```c++"+`
    #include "%s"
    `+"```"+`
`, title, body, headerPath)
}

// SourceLocSingle renders the source location of one type whose header is named after it.
func SourceLocSingle(typeID, relLoc string) string {
	headerPath := HeaderPath(StripTypePrefix(typeID), relLoc)
	body := fmt.Sprintf("%s is defined in `%s`", typeID, headerPath)
	return SourceBlock(typeID, body, headerPath)
}

// SourceLocSingleBlueprint is SourceLocSingle for headers under the Blueprint directory.
func SourceLocSingleBlueprint(typeID, relLoc string) string {
	bpPath := blueprintHeaderDir
	if relLoc != "" {
		bpPath += "/" + relLoc
	}

	return SourceLocSingle(typeID, bpPath)
}

// SourceLocCustom renders a source location block with caller supplied body text.
func SourceLocCustom(id, fileName, body, relLoc string) string {
	return SourceBlock(id, body, HeaderPath(fileName, relLoc))
}

// SourceLocGroup renders a source location block for types sharing one header.
func SourceLocGroup(groupID, fileName, relLoc string) string {
	return SourceLocCustom(groupID, fileName, "The following types are all defined in the following header:", relLoc)
}

// MissingContent renders a failure admonition marking documentation that must still be written.
func MissingContent(contentID, note string) string {
	out := fmt.Sprintf("\n%s [%s]\"\n"+
		"    Content __[%s]__ must be added before the docs are considered complete.\n"+
		"    ", missingContentMarker, contentID, contentID)

	if note != "" {
		out += fmt.Sprintf("\n\n    NOTE: _%s_\n", note)
	}

	return out
}

// ImageName derives an image file name from its label.
func ImageName(label string) string {
	return strings.ReplaceAll(strings.ToLower(label), " ", "-")
}

// BlueprintImage renders a markdown image of a Blueprint screenshot.
func BlueprintImage(label, section string) string {
	return fmt.Sprintf("![%s](%s/%s/%s.png)", label, blueprintImageDir, section, ImageName(label))
}

// BlueprintFileQueryImage renders a file query screenshot followed by the query flag warning snippet.
func BlueprintFileQueryImage(label string) string {
	return fmt.Sprintf(`
    %s
    --8<-- "%s"
`, BlueprintImage(label, SectionFile), queryFlagSnippet)
}

// SiteLink renders a relative link to the page named by label under base.
// Non-empty anchor selects a sub-section of that page.
func SiteLink(base, label, anchor string) string {
	target := strings.TrimSuffix(base, "/") + "/" + markdownHeadingAnchor(label) + "/"
	if anchor != "" {
		target += "#" + markdownHeadingAnchor(anchor)
	}

	return fmt.Sprintf("[%s](%s)", label, target)
}

// CoreAPILink links a core API page.
func CoreAPILink(label, anchor string) string {
	return SiteLink(CoreAPIBase, label, anchor)
}

// AdvancedLink links an advanced topic page.
func AdvancedLink(label, anchor string) string {
	return SiteLink(AdvancedBase, label, anchor)
}

// CoreAPISpecialTypeLink links a core API special type page.
func CoreAPISpecialTypeLink(label, anchor string) string {
	return SiteLink(CoreAPISpecialTypesBase, label, anchor)
}

// AdvancedSpecialTypeLink links an advanced special type page.
func AdvancedSpecialTypeLink(label, anchor string) string {
	return SiteLink(AdvancedSpecialTypeBase, label, anchor)
}

// CSVPathByTypeName returns the site path of the exported error table of a type.
func CSVPathByTypeName(typeName string) string {
	return TablePath(typeName, ExportFormatCSV)
}

// CSVPolicyPath returns the site path of the exported table of a policy enum.
func CSVPolicyPath(id string) string {
	return CSVPathByTypeName(policyTypePrefix + id)
}

// TablePath returns the site path of an exported table in the selected format.
func TablePath(typeName string, format ExportFormat) string {
	return tablesDir + "/" + TableFileName(typeName, format)
}

// TableFileName returns the file name of an exported table.
func TableFileName(typeName string, format ExportFormat) string {
	return fmt.Sprintf("csvmap_%s.%s", typeName, format)
}

// TypeHeader renders a type id line followed by a rendered block, usually a source location.
func TypeHeader(typeID, block string) string {
	return fmt.Sprintf("%s\n%s\n", typeID, block)
}
