// Package clirunner performs one-shot extractions from the command line.
package clirunner

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/gosom/google-maps-coordinates/extractor"
	"github.com/gosom/google-maps-coordinates/geocoder"
	"github.com/gosom/google-maps-coordinates/history"
	"github.com/gosom/google-maps-coordinates/resolver"
	"github.com/gosom/google-maps-coordinates/runner"
	"github.com/gosom/google-maps-coordinates/tlmt"
)

type cliRunner struct {
	cfg     *runner.Config
	svc     *resolver.Service
	kv      history.KV
	input   io.Reader
	out     io.Writer
	outfile *os.File
}

func New(cfg *runner.Config) (runner.Runner, error) {
	if cfg.RunMode != runner.RunModeCLI {
		return nil, fmt.Errorf("%w: %d", runner.ErrInvalidRunMode, cfg.RunMode)
	}

	ans := &cliRunner{
		cfg: cfg,
	}

	if err := ans.setInput(); err != nil {
		return nil, err
	}

	if err := ans.setOutput(); err != nil {
		return nil, err
	}

	if err := ans.setService(); err != nil {
		return nil, err
	}

	return ans, nil
}

func (r *cliRunner) Run(ctx context.Context) error {
	var processed, failed int

	t0 := time.Now().UTC()

	defer func() {
		params := map[string]any{
			"input_count": processed,
			"error_count": failed,
			"duration":    time.Now().UTC().Sub(t0).String(),
		}

		evt := tlmt.NewEvent("cli_runner", params)

		_ = runner.Telemetry().Send(ctx, evt)
	}()

	mode := extractor.PreferViewport
	if r.cfg.PreferExact {
		mode = extractor.PreferExact
	}

	scanner := bufio.NewScanner(r.input)

	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}

		line := scanner.Text()
		if line == "" {
			continue
		}

		processed++

		outcome, err := r.svc.Resolve(ctx, line, mode)
		if err != nil {
			failed++

			r.writeError(line, err)

			continue
		}

		r.writeOutcome(outcome)
	}

	return scanner.Err()
}

func (r *cliRunner) Close(context.Context) error {
	if closer, ok := r.kv.(io.Closer); ok {
		if err := closer.Close(); err != nil {
			return err
		}
	}

	if closer, ok := r.input.(io.Closer); ok && r.input != os.Stdin {
		if err := closer.Close(); err != nil {
			return err
		}
	}

	if r.outfile != nil {
		return r.outfile.Close()
	}

	return nil
}

type jsonLine struct {
	Input string            `json:"input"`
	Error string            `json:"error,omitempty"`
	Data  *resolver.Outcome `json:"data,omitempty"`
}

func (r *cliRunner) writeOutcome(outcome resolver.Outcome) {
	if r.cfg.JSON {
		line := jsonLine{Input: outcome.Input, Data: &outcome}

		_ = json.NewEncoder(r.out).Encode(line)

		return
	}

	if outcome.PlaceName != "" {
		fmt.Fprintf(r.out, "%s\t%s\n", outcome.Coordinates, outcome.PlaceName)

		return
	}

	fmt.Fprintln(r.out, outcome.Coordinates)
}

func (r *cliRunner) writeError(raw string, err error) {
	if r.cfg.JSON {
		line := jsonLine{Input: raw, Error: err.Error()}

		_ = json.NewEncoder(r.out).Encode(line)

		return
	}

	fmt.Fprintf(os.Stderr, "error: %v\n", err)
}

func (r *cliRunner) setInput() error {
	if r.cfg.Query != "" {
		r.input = strings.NewReader(r.cfg.Query + "\n")

		return nil
	}

	switch r.cfg.InputFile {
	case "stdin":
		r.input = os.Stdin
	default:
		f, err := os.Open(r.cfg.InputFile)
		if err != nil {
			return err
		}

		r.input = f
	}

	return nil
}

func (r *cliRunner) setOutput() error {
	switch r.cfg.ResultsFile {
	case "stdout":
		r.out = os.Stdout
	default:
		f, err := os.Create(r.cfg.ResultsFile)
		if err != nil {
			return err
		}

		r.outfile = f
		r.out = f
	}

	return nil
}

func (r *cliRunner) setService() error {
	logger, err := runner.NewLogger(r.cfg.Debug)
	if err != nil {
		return err
	}

	kv, err := runner.NewKV(context.Background(), r.cfg)
	if err != nil {
		return err
	}

	r.kv = kv

	store := history.NewStore(context.Background(), kv, logger)

	r.svc = resolver.NewService(store, geocoder.New(r.cfg.APIKey), logger)

	return nil
}
