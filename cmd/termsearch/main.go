package main

import (
	"benefits-portal-service/internal/app/config"
	"benefits-portal-service/internal/app/drivers/logger"
	"benefits-portal-service/internal/app/models"
	"benefits-portal-service/internal/app/services/shared/medicalterms"
	"benefits-portal-service/internal/pkg/constvars"
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
)

// Version is set at build time with -ldflags.
var Version = "develop"

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "termsearch",
		Short: "Type-ahead search against the medical terms API",
		Long: "Reads one query per line from stdin, as if each line were the current contents of a search box,\n" +
			"and prints every state the debounced searcher goes through.",
		Version: Version,
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, _ := cmd.Flags().GetString("kind")
			delay, _ := cmd.Flags().GetDuration("delay")
			interval, _ := cmd.Flags().GetDuration("interval")

			driverConfig := config.NewDriverConfig()
			internalConfig := config.NewInternalConfig()
			zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
			defer zapLogger.Sync()

			client := medicalterms.NewClient(medicalterms.ClientConfig{
				BaseUrl:       internalConfig.MedicalTerms.BaseUrl,
				Timeout:       internalConfig.MedicalTerms.Timeout,
				MaxResults:    internalConfig.MedicalTerms.MaxResults,
				CacheCapacity: internalConfig.MedicalTerms.CacheCapacity,
				CacheTTL:      internalConfig.MedicalTerms.CacheTTL,
				AbortPrevious: true,
			}, zapLogger)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			opts := runOptions{
				in:       cmd.InOrStdin(),
				out:      cmd.OutOrStdout(),
				delay:    delay,
				interval: interval,
				settle:   delay + internalConfig.MedicalTerms.Timeout + time.Second,
			}

			switch kind {
			case constvars.MedicalTermKindMedications:
				return run(ctx, opts, client.SearchMedications, formatMedication)
			case constvars.MedicalTermKindAllergies:
				return run(ctx, opts, client.SearchAllergies, formatTerm)
			case constvars.MedicalTermKindConditions:
				return run(ctx, opts, client.SearchConditions, formatTerm)
			default:
				return fmt.Errorf("unknown kind %q, expected medications, allergies or conditions", kind)
			}
		},
	}

	cmd.Flags().String("kind", constvars.MedicalTermKindMedications, "Term list to search")
	cmd.Flags().Duration("delay", medicalterms.DefaultDebounceDelay, "Debounce delay before a lookup fires")
	cmd.Flags().Duration("interval", 0, "Pause between input lines, to simulate typing speed")
	return cmd
}

type runOptions struct {
	in       io.Reader
	out      io.Writer
	delay    time.Duration
	interval time.Duration
	settle   time.Duration
}

func run[T any](ctx context.Context, opts runOptions, lookup medicalterms.LookupFunc[T], format func(T) string) error {
	searcher := medicalterms.NewSearcher(ctx, lookup, medicalterms.SearcherConfig[T]{
		Delay: opts.delay,
		OnChange: func(state medicalterms.SearchState[T]) {
			printState(opts.out, state, format)
		},
	})
	defer searcher.Close()

	scanner := bufio.NewScanner(opts.in)
	for scanner.Scan() {
		searcher.Search(strings.TrimRight(scanner.Text(), "\r"))
		if opts.interval > 0 {
			select {
			case <-ctx.Done():
				return nil
			case <-time.After(opts.interval):
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	return waitSettled(ctx, searcher, opts.settle)
}

// waitSettled blocks until the last query has finished or the settle window runs out.
func waitSettled[T any](ctx context.Context, searcher *medicalterms.Searcher[T], settle time.Duration) error {
	deadline := time.NewTimer(settle)
	defer deadline.Stop()
	ticker := time.NewTicker(20 * time.Millisecond)
	defer ticker.Stop()

	for {
		switch searcher.State().Status {
		case medicalterms.StatusPending, medicalterms.StatusLoading:
		default:
			return nil
		}
		select {
		case <-ctx.Done():
			return nil
		case <-deadline.C:
			return fmt.Errorf("search did not settle within %s", settle)
		case <-ticker.C:
		}
	}
}

func printState[T any](out io.Writer, state medicalterms.SearchState[T], format func(T) string) {
	switch state.Status {
	case medicalterms.StatusSuccess:
		fmt.Fprintf(out, "[%s] %q: %d results\n", state.Status, state.Query, len(state.Results))
		for _, result := range state.Results {
			fmt.Fprintf(out, "  - %s\n", format(result))
		}
	case medicalterms.StatusFailed:
		fmt.Fprintf(out, "[%s] %q: %v\n", state.Status, state.Query, state.Err)
	default:
		fmt.Fprintf(out, "[%s] %q\n", state.Status, state.Query)
	}
}

func formatMedication(result models.MedicationResult) string {
	if len(result.Strengths) == 0 {
		return result.Name
	}
	return fmt.Sprintf("%s (%s)", result.Name, strings.Join(result.Strengths, ", "))
}

func formatTerm(result models.TermResult) string {
	return result.Name
}
