package report

import (
	"fmt"
	"io"

	internal "github.com/ZanzyTHEbar/lsha/lsha"
	"github.com/ZanzyTHEbar/lsha/lsha/config"
	"github.com/ZanzyTHEbar/lsha/lsha/trees"
)

// Reporter writes the line oriented report. Each directory is printed as its path, its
// sub-directory entries, its file entries and a blank line.
type Reporter struct {
	out    io.Writer
	config config.Config
	lines  int64
}

// NewReporter creates a reporter writing to out
func NewReporter(out io.Writer, cfg config.Config) *Reporter {
	return &Reporter{
		out:    out,
		config: cfg,
	}
}

// HandleDirectory prints a directory listing
func (r *Reporter) HandleDirectory(node *trees.DirectoryNode) error {
	if err := r.println(node.Path); err != nil {
		return err
	}
	for _, entry := range node.Entries() {
		if err := r.println(FormatEntry(entry, r.config)); err != nil {
			return err
		}
	}
	return r.println("")
}

// HandleFile prints a single entry without header or trailing blank line
func (r *Reporter) HandleFile(node *trees.FileNode) error {
	return r.println(FormatEntry(node, r.config))
}

// Complete prints the completion sentinel
func (r *Reporter) Complete() error {
	return r.println(internal.CompletionSentinel)
}

// Lines returns how many lines were written so far
func (r *Reporter) Lines() int64 {
	return r.lines
}

func (r *Reporter) println(line string) error {
	if _, err := fmt.Fprintln(r.out, line); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	r.lines++
	return nil
}
