// Package batch runs a manifest through sign-in and sequential uploads.
//
// A run moves Unauthenticated -> Authenticated -> Uploading* -> Done | Failed.
// It signs in exactly once, uploads entries in manifest order, and stops at the first failure.
package batch

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"golang.org/x/time/rate"

	"github.com/genotet/uploadbatch/manifest"
	"github.com/genotet/uploadbatch/tool"
	"github.com/genotet/uploadbatch/transfer"
	"github.com/genotet/uploadbatch/types"
)

// Uploader is the service side of a run. *transfer.Client implements it.
type Uploader interface {
	Authenticate(ctx context.Context, username, password string) (types.Session, error)
	UploadEntry(ctx context.Context, entry types.ManifestEntry, session types.Session) error
}

// PasswordPrompter reads the password interactively. *tool.Prompter implements it.
type PasswordPrompter interface {
	PromptPassword(message string) (string, error)
}

// Runner drives one batch.
type Runner struct {
	Uploader Uploader
	Prompter PasswordPrompter
	Out      io.Writer     // user facing messages
	Limiter  *rate.Limiter // optional pacing between uploads
	Logger   *log.Logger
	DryRun   bool
}

// ErrAuth is matched by errors.Is for every sign-in failure of a run.
var ErrAuth = errors.New("username/password not correct")

// ErrInterrupted is matched by errors.Is when the run is cancelled at the prompt or during sign-in.
var ErrInterrupted = errors.New("interrupted")

// Run parses manifestPath, signs in as username and uploads every entry in order.
// The returned Report always carries the first error, if any.
func (r *Runner) Run(ctx context.Context, manifestPath, username string) types.Report {
	logger := r.logger()

	entries, err := manifest.ParseFile(manifestPath)
	if err != nil {
		fmt.Fprintf(r.out(), "invalid manifest %s: %v\n", manifestPath, err)
		return types.Report{Err: err}
	}
	report := types.Report{Total: len(entries)}
	logger.Debugf("Parsed %d entries from %s", len(entries), manifestPath)

	if r.DryRun {
		for _, e := range entries {
			fmt.Fprintf(r.out(), "%d\t%s\t%s\t%s\t%s\n", e.Line, e.FilePath, e.DataName, e.FileType, e.Description)
		}
		return report
	}

	password, err := r.Prompter.PromptPassword("Password:")
	if ctx.Err() != nil {
		return r.interrupted(ctx, report)
	}
	if err != nil {
		report.Err = fmt.Errorf("failed to read password: %w", err)
		return report
	}

	session, err := r.Uploader.Authenticate(ctx, username, password)
	if ctx.Err() != nil {
		return r.interrupted(ctx, report)
	}
	if err != nil {
		logger.Debugf("Sign-in failed: %v", err)
		fmt.Fprintln(r.out(), ErrAuth.Error())
		report.Err = fmt.Errorf("%w: %w", ErrAuth, err)
		return report
	}
	fmt.Fprintln(r.out(), "sign in success")

	for _, entry := range entries {
		if r.Limiter != nil {
			if err := r.Limiter.Wait(ctx); err != nil {
				return r.fail(report, entry, &transfer.UploadError{Path: entry.FilePath, Err: err})
			}
		}
		if err := r.Uploader.UploadEntry(ctx, entry, session); err != nil {
			return r.fail(report, entry, err)
		}
		report.Uploaded++
		logger.Debugf("Uploaded %d/%d: %s", report.Uploaded, report.Total, entry.FilePath)
	}

	logger.Infof("Uploaded %d files", report.Uploaded)
	return report
}

func (r *Runner) fail(report types.Report, entry types.ManifestEntry, err error) types.Report {
	r.logger().Errorf("Manifest line %d: %v", entry.Line, err)
	fmt.Fprintf(r.out(), "failed to upload %s\n", entry.FilePath)
	report.Failed = entry.FilePath
	report.Err = err
	return report
}

// interrupted reports a run cancelled before any upload started.
func (r *Runner) interrupted(ctx context.Context, report types.Report) types.Report {
	fmt.Fprintln(r.out(), "interrupted")
	report.Err = fmt.Errorf("%w: %w", ErrInterrupted, context.Cause(ctx))
	return report
}

func (r *Runner) out() io.Writer {
	if r.Out != nil {
		return r.Out
	}
	return io.Discard
}

func (r *Runner) logger() *log.Logger {
	if r.Logger != nil {
		return r.Logger
	}
	return tool.DefaultLogger
}
