package bandlimited

import (
	"fmt"
	"runtime"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/tphakala/go-bandlimited/internal/filter"
	"github.com/tphakala/go-bandlimited/internal/harmonic"
	"github.com/tphakala/go-bandlimited/internal/kernel"
	"github.com/tphakala/go-bandlimited/internal/lut"
)

// TableKind classifies a generated table.
type TableKind int

const (
	// KindKernel is an interpolation kernel stored as one wing, centre first.
	KindKernel TableKind = iota
	// KindStep is a band-limited step.
	KindStep
	// KindFilter is a full symmetric FIR filter.
	KindFilter
	// KindWaveform is one period of a band-limited waveform.
	KindWaveform
	// KindLookup is a function sampled over an input range.
	KindLookup
)

// String returns the kind name.
func (k TableKind) String() string {
	switch k {
	case KindKernel:
		return "kernel"
	case KindStep:
		return "step"
	case KindFilter:
		return "filter"
	case KindWaveform:
		return "waveform"
	case KindLookup:
		return "lookup"
	default:
		return fmt.Sprintf("TableKind(%d)", int(k))
	}
}

// Meta is the scalar metadata consumers need alongside a table's samples.
type Meta struct {
	Size     int
	InputMin float64
	InputMax float64
	Periodic bool

	// Resolution and Intervals are set for kernels and steps: taps per
	// source sample and span in source samples.
	Resolution int
	Intervals  int
}

// Table is one named numeric table.
type Table struct {
	Name string
	Kind TableKind
	Data []float64
	Meta Meta
}

// Bytes returns the in-memory size of the samples.
func (t *Table) Bytes() int {
	return len(t.Data) * bytesPerSample
}

// Lookup wraps the table as an interpolating lookup over its input range.
func (t *Table) Lookup() (*LookupTable, error) {
	return lut.NewTable(t.Data, t.Meta.InputMin, t.Meta.InputMax, t.Meta.Periodic)
}

// TableSet is the result of Generate. It is read-only and safe for
// concurrent use.
type TableSet struct {
	tables  map[string]*Table
	online  kernel.HalfKernel
	offline kernel.HalfKernel
}

// Lookup returns the named table.
func (s *TableSet) Lookup(name string) (*Table, bool) {
	t, ok := s.tables[name]
	return t, ok
}

// Names returns the table names in sorted order.
func (s *TableSet) Names() []string {
	names := make([]string, 0, len(s.tables))
	for name := range s.tables {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Kernels returns the online and offline BLIMP half-kernels.
func (s *TableSet) Kernels() (online, offline kernel.HalfKernel) {
	return s.online, s.offline
}

type builder struct {
	name  string
	build func() (*Table, error)
}

// Generate builds every table described by cfg. Independent tables are built
// concurrently.
func Generate(cfg Config) (*TableSet, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	workers := cfg.Workers
	if workers == 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	set := &TableSet{tables: make(map[string]*Table)}
	builders := []builder{
		{NameBlimpOnline, func() (*Table, error) {
			b, err := kernel.BuildBlimp(cfg.Online)
			if err != nil {
				return nil, err
			}
			set.online = b.Half
			return kernelTable(NameBlimpOnline, b.Half), nil
		}},
		{NameBlimpOffline, func() (*Table, error) {
			b, err := kernel.BuildBlimp(cfg.Offline)
			if err != nil {
				return nil, err
			}
			set.offline = b.Half
			return kernelTable(NameBlimpOffline, b.Half), nil
		}},
		{NameMinBLEP, func() (*Table, error) {
			m, err := kernel.BuildMinBLEP(cfg.MinBLEPZeroCrossings, cfg.MinBLEPOversampling)
			if err != nil {
				return nil, err
			}
			return &Table{
				Name: NameMinBLEP,
				Kind: KindStep,
				Data: m.Step,
				Meta: Meta{
					Size:       len(m.Step),
					InputMax:   1,
					Resolution: m.Oversampling,
					Intervals:  m.Samples(),
				},
			}, nil
		}},
		{NameSincKernel, func() (*Table, error) {
			taps, err := filter.DesignLowPassFilter(filter.FilterParams{
				NumTaps:    cfg.SincKernelTaps,
				CutoffFreq: cfg.SincKernelCutoff,
				Window:     cfg.SincKernelWindow,
				Beta:       cfg.SincKernelBeta,
				Gain:       1,
			})
			if err != nil {
				return nil, err
			}
			return &Table{
				Name: NameSincKernel,
				Kind: KindFilter,
				Data: taps,
				Meta: Meta{Size: len(taps), InputMax: 1},
			}, nil
		}},
		lookupBuilder(NameSine, 0, 1, true, func() []float64 {
			return lut.Sine(cfg.SineSize)
		}),
		lookupBuilder(NameSinSquared, 0, 1, false, func() []float64 {
			return lut.SinSquared(cfg.SinSquaredSize)
		}),
		lookupBuilder(NamePitch, cfg.PitchMin, cfg.PitchMax, false, func() []float64 {
			return lut.Pitch(cfg.PitchMin, cfg.PitchMax, cfg.PitchSize)
		}),
		{NameInvPitch, func() (*Table, error) {
			inv, step, err := lut.InvPitch(lut.Pitch(cfg.PitchMin, cfg.PitchMax, cfg.PitchSize))
			if err != nil {
				return nil, err
			}
			return &Table{
				Name: NameInvPitch,
				Kind: KindLookup,
				Data: inv,
				Meta: Meta{Size: len(inv), InputMin: step, InputMax: step * float64(len(inv))},
			}, nil
		}},
		lookupBuilder(NameDecibel, cfg.DecibelMin, cfg.DecibelMax, false, func() []float64 {
			return lut.Decibel(cfg.DecibelMin, cfg.DecibelMax, cfg.DecibelSize)
		}),
	}
	for _, kind := range cfg.Waveforms {
		builders = append(builders, waveformBuilder(cfg, kind))
	}

	tables := make([]*Table, len(builders))
	var g errgroup.Group
	g.SetLimit(workers)
	for i, b := range builders {
		g.Go(func() error {
			t, err := b.build()
			if err != nil {
				return fmt.Errorf("building %s: %w", b.name, err)
			}
			tables[i] = t
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for _, t := range tables {
		set.tables[t.Name] = t
	}
	return set, nil
}

func kernelTable(name string, h kernel.HalfKernel) *Table {
	return &Table{
		Name: name,
		Kind: KindKernel,
		Data: h.Taps,
		Meta: Meta{
			Size:       h.Len(),
			InputMax:   1,
			Resolution: h.Resolution,
			Intervals:  h.Intervals,
		},
	}
}

func lookupBuilder(name string, inputMin, inputMax float64, periodic bool, sample func() []float64) builder {
	return builder{name, func() (*Table, error) {
		data := sample()
		return &Table{
			Name: name,
			Kind: KindLookup,
			Data: data,
			Meta: Meta{Size: len(data), InputMin: inputMin, InputMax: inputMax, Periodic: periodic},
		}, nil
	}}
}

func waveformBuilder(cfg Config, kind harmonic.Kind) builder {
	return builder{kind.String(), func() (*Table, error) {
		wave, err := harmonic.Synthesize(harmonic.Spec{
			Kind:      kind,
			Size:      cfg.WaveformSize,
			Harmonics: cfg.WaveformHarmonics,
			Duty:      cfg.PulseDuty,
			Prefilter: cfg.Prefilter,
		})
		if err != nil {
			return nil, err
		}
		return &Table{
			Name: kind.String(),
			Kind: KindWaveform,
			Data: wave,
			Meta: Meta{Size: len(wave), InputMax: 1, Periodic: true},
		}, nil
	}}
}
