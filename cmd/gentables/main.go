// Command gentables builds the standard band-limited table set and
// optionally dumps every table to disk as raw little-endian float64 samples.
// The dump is for inspection and plotting; it carries no header or metadata
// and is not a stable interchange format.
//
// Usage:
//
//	gentables                         # print a summary
//	gentables -out tables/            # write tables/<name>.f64
//	gentables -size 4096 -workers 4   # larger waveforms, bounded concurrency
//	gentables -sinc-window kaiser     # Kaiser-tapered sinc_kernel
package main

import (
	"bufio"
	"encoding/binary"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"

	bandlimited "github.com/tphakala/go-bandlimited"
)

const (
	tableExt         = ".f64"
	writerBufferSize = 256 * 1024
	dirPerm          = 0o755
	tabPadding       = 2

	outUsage = "Directory to dump tables into as raw little-endian float64 for inspection; " +
		"not a stable format, with no header or metadata (summary only when empty)"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	out := flag.String("out", "", outUsage)
	size := flag.Int("size", 0, "Waveform table size (0 keeps the default)")
	harmonics := flag.Int("harmonics", 0, "Highest harmonic per waveform (0 fills to Nyquist)")
	duty := flag.Float64("duty", 0, "Pulse duty cycle (0 keeps the default)")
	noPrefilter := flag.Bool("no-prefilter", false, "Disable the treble prefilter on waveforms")
	sincWindow := flag.String("sinc-window", "blackman", "sinc_kernel taper: blackman, kaiser")
	sincBeta := flag.Float64("sinc-beta", 0, "Kaiser beta of the sinc_kernel taper (0 keeps the default)")
	workers := flag.Int("workers", 0, "Concurrent table builders (0 uses GOMAXPROCS)")
	verbose := flag.Bool("v", false, "Verbose output")
	flag.Parse()

	cfg := bandlimited.DefaultConfig()
	if *size > 0 {
		cfg.WaveformSize = *size
		cfg.WaveformHarmonics = *size / 2
	}
	if *harmonics > 0 {
		cfg.WaveformHarmonics = *harmonics
	}
	if *duty > 0 {
		cfg.PulseDuty = *duty
	}
	cfg.Prefilter = !*noPrefilter
	window, err := bandlimited.ParseSincWindow(*sincWindow)
	if err != nil {
		return err
	}
	cfg.SincKernelWindow = window
	if *sincBeta > 0 {
		cfg.SincKernelBeta = *sincBeta
	}
	cfg.Workers = *workers

	start := time.Now()
	set, err := bandlimited.Generate(cfg)
	if err != nil {
		return fmt.Errorf("failed to generate tables: %w", err)
	}
	if *verbose {
		log.Printf("Generated %d tables in %v", len(set.Names()), time.Since(start).Round(time.Millisecond))
	}

	if err := printSummary(set); err != nil {
		return err
	}

	if *out == "" {
		return nil
	}
	if err := os.MkdirAll(*out, dirPerm); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	for _, name := range set.Names() {
		table, _ := set.Lookup(name)
		path := filepath.Join(*out, name+tableExt)
		if err := writeTable(path, table.Data); err != nil {
			return err
		}
		if *verbose {
			log.Printf("Wrote %s (%s)", path, humanize.Bytes(uint64(table.Bytes())))
		}
	}
	return nil
}

func printSummary(set *bandlimited.TableSet) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, tabPadding, ' ', 0)
	fmt.Fprintln(w, "NAME\tKIND\tSAMPLES\tSIZE\tRANGE\tDETAIL")

	var total uint64
	for _, name := range set.Names() {
		table, _ := set.Lookup(name)
		total += uint64(table.Bytes())
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			table.Name,
			table.Kind,
			humanize.Comma(int64(len(table.Data))),
			humanize.Bytes(uint64(table.Bytes())),
			formatRange(table.Meta),
			formatDetail(table.Meta),
		)
	}
	fmt.Fprintf(w, "TOTAL\t\t\t%s\t\t\n", humanize.Bytes(total))
	return w.Flush()
}

func formatRange(m bandlimited.Meta) string {
	if m.InputMin == 0 && m.InputMax == 0 {
		return "-"
	}
	r := fmt.Sprintf("[%g, %g]", m.InputMin, m.InputMax)
	if m.Periodic {
		r += " periodic"
	}
	return r
}

func formatDetail(m bandlimited.Meta) string {
	if m.Resolution == 0 {
		return "-"
	}
	return fmt.Sprintf("%d taps/sample over %d samples", m.Resolution, m.Intervals)
}

// writeTable dumps samples as raw little-endian float64 with no header.
func writeTable(path string, data []float64) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	bw := bufio.NewWriterSize(f, writerBufferSize)
	if err := binary.Write(bw, binary.LittleEndian, data); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return bw.Flush()
}
