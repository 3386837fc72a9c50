package header

import (
	"fmt"
	"strings"
)

// AliasOptions parameterize the generated file's text. Every field is
// documentation or wording only; none affects which headers are processed.
type AliasOptions struct {
	// Product names the project in the disclaimer banner.
	Product string
	// SourceExt and DeprecatedExt name the two conventions in the
	// disclaimer and drive the target path's extension swap.
	SourceExt     string
	DeprecatedExt string
	// Warning is the text inside the #pragma message directive.
	Warning string
	// Generator names this tool in the disclaimer.
	Generator string
	// DetailsURL, when non-empty, adds a "See <url> for extra details."
	// line to the disclaimer.
	DetailsURL string
}

// Alias is a deprecated alias header ready to be written. It is built once
// per processed Source and discarded after the write.
type Alias struct {
	// Path is the source path with the deprecated extension substituted.
	Path string
	// Content is the complete file text, ending in a single newline.
	Content string
}

// BuildAlias composes the alias for a parsed header: disclaimer, preserved
// pretext, warning pragma, and the forwarding include directive, each on
// its own line. Pure function of its inputs.
func BuildAlias(src *Source, opts AliasOptions) Alias {
	warn := `#pragma message("` + opts.Warning + `")`
	parts := []string{disclaimer(opts), src.Pretext, warn, src.Include}
	return Alias{
		Path:    strings.TrimSuffix(src.Path, opts.SourceExt) + opts.DeprecatedExt,
		Content: strings.Join(parts, "\n") + "\n",
	}
}

const disclaimerRule = "*********************************************************************"

func disclaimer(opts AliasOptions) string {
	var b strings.Builder
	b.WriteString("/" + disclaimerRule + "\n")
	fmt.Fprintf(&b, " * All %s headers have been updated to use the %s extension.\n", opts.Product, opts.SourceExt)
	b.WriteString(" *\n")
	fmt.Fprintf(&b, " * %s headers are now autogenerated via %s,\n", opts.DeprecatedExt, opts.Generator)
	fmt.Fprintf(&b, " * and will import the corresponding %s with a deprecation warning.\n", opts.SourceExt)
	b.WriteString(" *\n")
	fmt.Fprintf(&b, " * imports via %s files may be removed in future releases, so please\n", opts.DeprecatedExt)
	fmt.Fprintf(&b, " * modify your imports to use the corresponding %s imports.\n", opts.SourceExt)
	if opts.DetailsURL != "" {
		b.WriteString(" *\n")
		fmt.Fprintf(&b, " * See %s for extra details.\n", opts.DetailsURL)
	}
	b.WriteString(" " + disclaimerRule + "/")
	return b.String()
}
