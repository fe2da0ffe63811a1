package app

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/haytac/readme-emoji-fix/internal/config"
	"github.com/haytac/readme-emoji-fix/internal/document"
	"github.com/haytac/readme-emoji-fix/internal/logging"
	"github.com/haytac/readme-emoji-fix/internal/metrics"
	"github.com/haytac/readme-emoji-fix/internal/repair"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// SuccessMessage is printed after the document has been rewritten.
const SuccessMessage = "Emoji placeholders replaced successfully"

// ErrPlaceholdersRemain is returned by Check when the document still needs fixing.
var ErrPlaceholdersRemain = errors.New("placeholder(s) remain")

// Application holds all dependencies for a repair run.
type Application struct {
	Config  *config.AppConfig
	Store   *document.Store
	Pass    *repair.Pass
	Metrics *metrics.Recorder

	out    io.Writer
	logger zerolog.Logger
}

// NewApplication wires the document store, the repair pass and metrics.
// Console output (confirmation and reports) goes to out.
func NewApplication(cfg *config.AppConfig, fsys afero.Fs, out io.Writer) (*Application, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	store, err := document.NewStore(fsys, cfg.Encoding)
	if err != nil {
		return nil, err
	}

	pairs := repair.DefaultPairs()
	for _, p := range cfg.ExtraPairs {
		pairs = append(pairs, repair.Pair{
			Name:        p.Name,
			Pattern:     p.Pattern,
			Replacement: repair.ExpandShortcodes(p.Replacement),
		})
	}
	pass, err := repair.NewPass(pairs...)
	if err != nil {
		return nil, fmt.Errorf("failed to build repair pass: %w", err)
	}

	return &Application{
		Config:  cfg,
		Store:   store,
		Pass:    pass,
		Metrics: metrics.NewRecorder(),
		out:     out,
		logger: logging.ContextualLogger(map[string]interface{}{
			"target":   cfg.Target,
			"encoding": store.Encoding(),
		}),
	}, nil
}

// Fix reads the target, applies the pass and writes the result back.
// In dry-run mode the target is left untouched and a summary is printed.
func (a *Application) Fix(ctx context.Context) (res repair.Result, err error) {
	defer func() { a.finish("fix", err) }()

	text, err := a.Store.Read(a.Config.Target)
	if err != nil {
		return repair.Result{}, err
	}

	res = a.Pass.Apply(text)
	a.Metrics.ObserveFix(a.Pass.Pairs(), res)
	a.logger.Debug().Int("replacements", res.Total()).Msg("Repair pass applied")

	if a.Config.DryRun {
		a.logger.Info().Int("replacements", res.Total()).Msg("Dry run, target not written")
		fmt.Fprintf(a.out, "Dry run: %d placeholder(s) would be replaced in %s\n", res.Total(), a.Config.Target)
		return res, nil
	}

	if err := ctx.Err(); err != nil {
		return res, fmt.Errorf("aborted before write: %w", err)
	}
	if err := a.Store.Write(a.Config.Target, res.Text); err != nil {
		return res, err
	}

	a.logger.Info().Int("replacements", res.Total()).Msg("Target rewritten")
	fmt.Fprintln(a.out, SuccessMessage)
	return res, nil
}

// Report lists pairs whose patterns are still present in the target.
type Report struct {
	Pending []repair.Match
}

// Total returns the number of pending placeholders.
func (r Report) Total() int {
	total := 0
	for _, m := range r.Pending {
		total += m.Count
	}
	return total
}

// Check scans the target without modifying it. It returns
// ErrPlaceholdersRemain when any pattern is found.
func (a *Application) Check(ctx context.Context) (rep Report, err error) {
	defer func() { a.finish("check", err) }()

	text, err := a.Store.Read(a.Config.Target)
	if err != nil {
		return Report{}, err
	}

	if err := ctx.Err(); err != nil {
		return Report{}, fmt.Errorf("aborted before scan: %w", err)
	}

	matches := a.Pass.Scan(text)
	a.Metrics.ObserveCheck(matches)
	for _, m := range matches {
		if m.Count > 0 {
			rep.Pending = append(rep.Pending, m)
			fmt.Fprintf(a.out, "%s: %d pending\n", m.Pair.Name, m.Count)
		}
	}

	if len(rep.Pending) > 0 {
		return rep, fmt.Errorf("%s: %d %w", a.Config.Target, rep.Total(), ErrPlaceholdersRemain)
	}
	fmt.Fprintf(a.out, "%s: no placeholders found\n", a.Config.Target)
	return rep, nil
}

func (a *Application) finish(command string, err error) {
	status := "success"
	switch {
	case errors.Is(err, ErrPlaceholdersRemain):
		status = "pending"
	case err != nil:
		status = "error"
		a.logger.Error().Err(err).Str("command", command).Msg("Run failed")
	}
	a.Metrics.Finish(command, status)

	if werr := a.Metrics.WriteTextfile(a.Config.MetricsTextfile); werr != nil {
		a.logger.Warn().Err(werr).Str("path", a.Config.MetricsTextfile).Msg("Failed to write metrics textfile")
	}
}
