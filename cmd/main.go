package main

import (
	"fmt"
	"log"
	"os"

	flags "github.com/jessevdk/go-flags"
	"github.com/jonboulle/clockwork"

	"github.com/ErronZrz/flow-rank/config"
	"github.com/ErronZrz/flow-rank/internal/experiment"
)

type options struct {
	Alg         string `short:"a" long:"alg" description:"algorithm to use (none|baseline|ranked)"`
	QueueSize   int    `short:"q" long:"queue" description:"maximum queue size in items"`
	FlowCount   int    `short:"f" long:"flows" description:"number of flows to use"`
	SeqSize     int    `short:"s" long:"seqsize" description:"number of items to process"`
	K           int    `short:"k" long:"k" description:"number of heaviest hitters to query"`
	Seed        uint64 `short:"r" long:"rng" description:"seed for the random number generator"`
	Validate    bool   `short:"v" long:"validate" description:"validate ranked results against the baseline after every update"`
	Repetitions int    `short:"n" long:"numexec" description:"number of identical sequential executions to perform"`
	ExpNum      int    `short:"e" long:"expnum" description:"experiment number"`
	Dist        string `long:"dist" description:"flow distribution (uniform|zipf)"`
	Results     string `long:"results" description:"append per-run stats to this JSONL file"`
	Sweep       string `long:"sweep" description:"run a parameter sweep instead of a single experiment (queue|flows)"`
	Summary     string `long:"summary" description:"write the sweep summary JSON to this path"`
}

func defaultOptions(cfg config.Config) options {
	return options{
		Alg:         cfg.Alg,
		QueueSize:   cfg.QueueSize,
		FlowCount:   cfg.FlowCount,
		SeqSize:     cfg.SeqSize,
		K:           cfg.K,
		Seed:        cfg.Seed,
		Repetitions: cfg.Repetitions,
		ExpNum:      1,
		Dist:        cfg.Dist,
		Results:     cfg.ResultsPath,
		Summary:     cfg.SummaryPath,
	}
}

func (o options) params() experiment.Params {
	return experiment.Params{
		Number:    o.ExpNum,
		SeqSize:   o.SeqSize,
		FlowCount: o.FlowCount,
		QueueSize: o.QueueSize,
		K:         o.K,
		Seed:      o.Seed,
		Alg:       experiment.AlgType(o.Alg),
		Dist:      experiment.Dist(o.Dist),
		Validate:  o.Validate,
	}
}

func main() {
	opts := defaultOptions(config.Load())
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flags.WroteHelp(err) {
			return
		}
		os.Exit(2)
	}
	if err := run(opts, clockwork.NewRealClock()); err != nil {
		log.Fatalf("flowrank: %v", err)
	}
}

func run(opts options, clock clockwork.Clock) error {
	p := opts.params()
	if err := p.Check(); err != nil {
		return err
	}
	if opts.Sweep != "" {
		return runSweep(opts, p, clock)
	}

	var writer *experiment.ResultWriter
	if opts.Results != "" {
		w, err := experiment.NewResultWriter(opts.Results)
		if err != nil {
			return err
		}
		writer = w
		defer func() {
			if err := writer.Close(); err != nil {
				log.Printf("results close error: %v", err)
			}
		}()
	}

	stats, err := experiment.RunRepeated(p, opts.Repetitions, clock)
	if err != nil {
		return err
	}
	if writer != nil {
		return writer.Write(stats)
	}
	return nil
}

func runSweep(opts options, p experiment.Params, clock clockwork.Clock) error {
	var (
		cells []experiment.RunStats
		err   error
	)
	switch opts.Sweep {
	case "queue":
		cells, err = experiment.SweepQueueSizes(p, opts.Repetitions, experiment.DefaultQueueLadder, clock)
	case "flows":
		cells, err = experiment.SweepFlowCounts(p, opts.Repetitions, experiment.DefaultFlowLadder, experiment.DefaultSweepQueueLadder, clock)
	default:
		return fmt.Errorf("unknown sweep %q (want queue or flows)", opts.Sweep)
	}
	if err != nil {
		return err
	}
	if opts.Summary != "" {
		if err := experiment.WriteSummary(opts.Summary, cells); err != nil {
			return err
		}
		log.Printf("sweep summary saved: path=%s cells=%d", opts.Summary, len(cells))
	}
	return nil
}
