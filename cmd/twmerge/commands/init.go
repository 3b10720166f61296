package commands

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/agiangrant/twmerge/tw"
)

// Init implements the 'twmerge init' command
func Init(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("init", flag.ContinueOnError)
	output := fs.String("o", tw.DefaultConfigFile, "Path of the file to write")
	force := fs.Bool("force", false, "Overwrite an existing file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if _, err := os.Stat(*output); err == nil && !*force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", *output)
	}

	if err := os.WriteFile(*output, []byte(defaultConfigToml), 0644); err != nil {
		return fmt.Errorf("failed to create %s: %w", *output, err)
	}
	fmt.Fprintf(stdout, "  ✓ Created %s\n", *output)
	fmt.Fprintln(stdout, "")
	fmt.Fprintln(stdout, "Next steps:")
	fmt.Fprintln(stdout, "  twmerge config                  # Show the effective configuration")
	fmt.Fprintln(stdout, `  twmerge merge "p-2 p-4"         # Merge a class list`)
	fmt.Fprintln(stdout, "  twmerge lint index.html         # Find redundant classes")
	return nil
}

const defaultConfigToml = `# twmerge configuration
# Tailwind CSS v4 defaults apply; the sections below adjust them.

# Namespace every utility class must carry, e.g. "tw" for "tw:hover:p-2".
# Classes without it are passed through untouched.
# prefix = "tw"

# Entries kept per cache generation. 0 disables the result cache.
cache_size = 500

# Class group items:
#   "glow"         literal class suffix
#   "$number"      built-in validator (see 'twmerge config' for the list)
#   "@spacing"     theme scale
#   { shadow = [...] }   nested part, here "shadow-..."

# [override] replaces whole entries.
[override]

[override.theme]
# spacing = ["px", "$number"]

# [extend] appends to entries, creating them when missing.
[extend]
# order_sensitive_modifiers = ["scrollbar"]

[extend.theme]
# color = ["brand", "accent"]

[extend.class_groups]
# shadow = [{ shadow = ["glow"] }]
# "text-stroke" = [{ "text-stroke" = ["", "$number", "@color"] }]

[extend.conflicting_class_groups]
# "text-stroke" = ["text-color"]

[extend.conflicting_class_group_modifiers]
# "font-size" = ["leading"]
`
