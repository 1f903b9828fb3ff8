package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"fsdc/internal/trace"
)

// setupTracing inspects trace-related flags and attaches a tracer to the
// command context. Closing the tracer is registered as a cleanup.
func setupTracing(cmd *cobra.Command) error {
	flags := cmd.Root().PersistentFlags()

	traceOutput, err := flags.GetString("trace")
	if err != nil {
		return fmt.Errorf("failed to get trace flag: %w", err)
	}
	levelStr, err := flags.GetString("trace-level")
	if err != nil {
		return fmt.Errorf("failed to get trace-level flag: %w", err)
	}
	modeStr, err := flags.GetString("trace-mode")
	if err != nil {
		return fmt.Errorf("failed to get trace-mode flag: %w", err)
	}
	formatStr, err := flags.GetString("trace-format")
	if err != nil {
		return fmt.Errorf("failed to get trace-format flag: %w", err)
	}
	ringSize, err := flags.GetInt("trace-ring-size")
	if err != nil {
		return fmt.Errorf("failed to get trace-ring-size flag: %w", err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	level, err := trace.ParseLevel(levelStr)
	if err != nil {
		return err
	}
	// --trace без уровня включает фазы
	if level == trace.LevelOff && traceOutput != "" {
		level = trace.LevelPhase
	}
	if level == trace.LevelOff {
		cmd.SetContext(trace.WithTracer(ctx, trace.Nop))
		return nil
	}
	if traceOutput == "" {
		traceOutput = "-"
	}

	mode, err := trace.ParseMode(modeStr)
	if err != nil {
		return err
	}
	format, err := trace.ParseFormat(formatStr)
	if err != nil {
		return err
	}

	tracer, err := trace.New(trace.Config{
		Level:      level,
		Mode:       mode,
		Format:     format,
		OutputPath: traceOutput,
		RingSize:   ringSize,
	})
	if err != nil {
		return fmt.Errorf("failed to create tracer: %w", err)
	}

	cmd.SetContext(trace.WithTracer(ctx, tracer))
	addCleanup(func(cmdErr error) {
		errOut := cmd.ErrOrStderr()
		if cmdErr != nil {
			if err := dumpRecordedTrace(tracer, mode, format, traceOutput, errOut); err != nil {
				fmt.Fprintf(errOut, "trace: dump error: %v\n", err)
			}
		}
		if err := tracer.Flush(); err != nil {
			fmt.Fprintf(errOut, "trace: flush error: %v\n", err)
		}
		if err := tracer.Close(); err != nil {
			fmt.Fprintf(errOut, "trace: close error: %v\n", err)
		}
	})
	return nil
}

// dumpRecordedTrace writes the ring of a failed command. In ring mode the
// events go to the --trace output; in both mode the stream already holds
// them, so the tail is repeated on stderr unless the stream is stderr.
func dumpRecordedTrace(tracer trace.Tracer, mode trace.StorageMode, format trace.Format, output string, errOut io.Writer) error {
	switch {
	case mode == trace.ModeRing && output != "-":
		f, err := os.Create(output)
		if err != nil {
			return err
		}
		_, err = trace.DumpRecorded(tracer, f, trace.ResolveFormat(format, output))
		if closeErr := f.Close(); err == nil {
			err = closeErr
		}
		return err
	case mode == trace.ModeRing:
		_, err := trace.DumpRecorded(tracer, errOut, trace.ResolveFormat(format, ""))
		return err
	case mode == trace.ModeBoth && output != "-":
		fmt.Fprintln(errOut, "trace: events before the failure:")
		_, err := trace.DumpRecorded(tracer, errOut, trace.ResolveFormat(format, ""))
		return err
	}
	return nil
}
