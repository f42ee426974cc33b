package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/roach88/hackathon/internal/hackathon"
)

// renderReport writes the checksum block for one run. Durations and
// timestamps are left out so the block is reproducible.
func renderReport(w io.Writer, r *hackathon.Report) error {
	c := r.Config
	var b strings.Builder
	fmt.Fprintf(&b, "Run %s\n", r.RunID)
	fmt.Fprintf(&b, "Config: ideas=%d idea_gen=%d pkgs=%d pkg_gen=%d students=%d termination=%s\n",
		c.Ideas, c.IdeaGenerators, c.Packages, c.PackageGenerators, c.Students, c.Termination)
	b.WriteString("Global checksums:\n")
	fmt.Fprintf(&b, "Idea Generator: %s\n", r.ProducerIdea)
	fmt.Fprintf(&b, "Student Idea: %s\n", r.StudentIdea)
	fmt.Fprintf(&b, "Package Downloader: %s\n", r.ProducerPackage)
	fmt.Fprintf(&b, "Student Package: %s\n", r.StudentPackage)
	fmt.Fprintf(&b, "Built %d ideas from %d packages; %d termination tokens sent\n",
		r.IdeasBuilt, r.PackagesUsed, r.TokensSent)
	if r.IdeasStranded > 0 || r.PackagesStranded > 0 {
		fmt.Fprintf(&b, "Stranded: %d ideas, %d packages\n", r.IdeasStranded, r.PackagesStranded)
	}
	fmt.Fprintf(&b, "Verified: ideas=%s packages=%s\n", verdict(r.IdeasMatch()), verdict(r.PackagesMatch()))

	_, err := io.WriteString(w, b.String())
	return err
}

// renderRunTable writes one line per run.
func renderRunTable(w io.Writer, runs []*hackathon.Report) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "RUN\tSTARTED\tIDEAS\tPKGS\tSTUDENTS\tTERMINATION\tVERIFIED")
	for _, r := range runs {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%d\t%s\t%s\n",
			r.RunID,
			r.StartedAt.UTC().Format("2006-01-02 15:04:05"),
			r.Config.Ideas,
			r.Config.Packages,
			r.Config.Students,
			r.Config.Termination,
			verdict(r.Verified()))
	}
	return tw.Flush()
}

func verdict(ok bool) string {
	if ok {
		return "ok"
	}
	return "MISMATCH"
}

func mismatchMessage(r *hackathon.Report) string {
	var parts []string
	if !r.IdeasMatch() {
		parts = append(parts, "idea checksums differ")
	}
	if !r.PackagesMatch() {
		parts = append(parts, "package checksums differ")
	}
	return strings.Join(parts, "; ")
}
