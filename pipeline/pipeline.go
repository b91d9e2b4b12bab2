package pipeline

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/Haufan/annotator-analysis/config"
	"github.com/Haufan/annotator-analysis/rst"
)

// Runner sequences the analysis over a directory tree: discover
// annotation files, then for each one parse it, build the discourse
// tree, tally the relations and write the report next to the input.
type Runner struct {
	Extension    string
	ReportSuffix string
}

func New(cfg config.Config) *Runner {
	return &Runner{
		Extension:    cfg.Extension,
		ReportSuffix: cfg.ReportSuffix,
	}
}

// Summary counts the outcome of one directory run.
type Summary struct {
	Files   int
	Written int
	Failed  int
}

// Run processes every matching file under dir, one at a time in
// discovery order. A failing file is logged and skipped; only an
// unusable directory argument aborts the run.
func (r *Runner) Run(dir string) (*Summary, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("cannot access directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", dir)
	}

	files, err := r.Discover(dir)
	if err != nil {
		return nil, err
	}

	summary := &Summary{Files: len(files)}
	for _, file := range files {
		if err := r.ProcessFile(file); err != nil {
			summary.Failed++
			log.WithFields(log.Fields{"file": file}).WithError(err).Error("Skipping file")
			continue
		}
		summary.Written++
	}
	return summary, nil
}

// Discover returns all regular files under dir carrying the configured
// extension, in walk order.
func (r *Runner) Discover(dir string) ([]string, error) {
	var files []string
	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			log.WithFields(log.Fields{"path": path}).WithError(err).Warn("Unable to scan path")
			return nil
		}
		if !info.IsDir() && strings.HasSuffix(info.Name(), r.Extension) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("unable to scan directory: %w", err)
	}
	return files, nil
}

// ProcessFile runs the pipeline for a single input file and writes the
// report to <path><suffix>. The report is composed fully in memory
// first, so a failing stage never leaves a partial output file behind.
func (r *Runner) ProcessFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	doc, err := rst.ParseDocument(f)
	if err != nil {
		return fmt.Errorf("failed to parse document: %w", err)
	}

	root, err := rst.BuildTree(doc)
	if err != nil {
		return fmt.Errorf("invalid tree structure: %w", err)
	}

	analysis := rst.Analyze(root)
	log.WithFields(log.Fields{
		"file":          path,
		"records":       len(doc.Records),
		"mononuclear":   len(doc.Schema.Mononuclear),
		"multinuclear":  len(doc.Schema.Multinuclear),
		"relations":     analysis.TotalRelations(),
		"right_to_left": analysis.RightToLeft,
		"left_to_right": analysis.LeftToRight,
	}).Debug("Analyzed document")

	var buf bytes.Buffer
	WriteReport(&buf, root, analysis)

	outPath := path + r.ReportSuffix
	if err := os.WriteFile(outPath, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	log.WithFields(log.Fields{"file": path, "report": outPath}).Info("Analysis written")
	return nil
}
