package commands

import (
	"flag"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

// Classify implements the 'twmerge classify' command
func Classify(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("classify", flag.ContinueOnError)
	var ef engineFlags
	ef.register(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		return fmt.Errorf("no classes given")
	}

	s, err := ef.setup()
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "CLASS\tMODIFIERS\tIMPORTANT\tBASE\tGROUP\tCONFLICT KEY\tOVERRIDES")
	for _, arg := range fs.Args() {
		for _, token := range strings.Fields(arg) {
			info := s.engine.Classify(token)
			group := info.GroupID
			switch {
			case info.External:
				group = "(external)"
			case group == "":
				group = "(unknown)"
			}
			fmt.Fprintf(w, "%s\t%s\t%t\t%s\t%s\t%s\t%s\n",
				info.Token,
				dash(strings.Join(info.Modifiers, ":")),
				info.Important,
				info.BaseClassName,
				group,
				dash(info.ConflictKey),
				dash(strings.Join(info.Conflicts, ",")),
			)
		}
	}
	return w.Flush()
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
