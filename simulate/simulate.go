// SPDX-License-Identifier: MIT

package simulate

import (
	"errors"
	"fmt"
	"math"
	"sync"

	"github.com/katalvlaran/quantcore/noise"
	"github.com/katalvlaran/quantcore/process"
	"github.com/katalvlaran/quantcore/sequence"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"
)

// Simulate advances paths copies of the initial state x0 along the time
// grid times, driven by st. It returns the full trajectory batch and a
// diagnostics Report.
//
// The per-step draw budget is p.Factors(), plus 2 when p is a
// JumpDiffuser (thinning uniform and jump-size normal). Two stream
// shapes are accepted:
//
//   - Dim() == budget: st is split into one leapfrogged sub-stream per
//     path; each path consumes len(times)-1 points of its sub-stream.
//   - Dim() == (len(times)-1) × budget: one stream point per path, with
//     path p taking absolute index Index()+p. This is the quasi-random
//     allocation — a Sobol point covers a whole trajectory, so the full
//     low-discrepancy structure survives, and st is advanced past the
//     consumed block.
//
// Any other dimension fails with ErrStreamDim. Trajectories are
// bit-identical for any Parallel setting under both shapes.
func Simulate(p process.Process, x0 []float64, st sequence.Stream, times []float64, paths int, opts *Options) (*PathBatch, *Report, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}

	cfg, err := validate(p, x0, st, times, paths, &o)
	if err != nil {
		return nil, nil, err
	}

	var bridge *noise.Bridge
	if o.Bridge {
		if bridge, err = noise.NewBridge(times); err != nil {
			return nil, nil, err
		}
	}

	batch := newPathBatch(times, paths, p.Dim())
	rep := &Report{Requested: o.Scheme, Used: cfg.scheme, Downgraded: cfg.downgraded}

	workers := o.Parallel
	if workers < 1 {
		workers = 1
	}
	if workers > paths {
		workers = paths
	}

	// Per-path stream assignment: leapfrogged sub-streams in split mode,
	// index-addressed per-worker cursors in point-per-path mode. Both are
	// fixed before any goroutine starts, so the partition cannot leak
	// into the draws.
	var subs []sequence.Stream
	var heads []sequence.Stream
	if cfg.pointMode {
		heads = make([]sequence.Stream, workers)
		for w := 0; w < workers; w++ {
			h := st.Clone()
			if err := h.Skip(uint64(w * paths / workers)); err != nil {
				return nil, nil, err
			}
			heads[w] = h
		}
		if err := st.Skip(uint64(paths)); err != nil {
			return nil, nil, err
		}
	} else {
		if subs, err = st.Split(paths); err != nil {
			return nil, nil, err
		}
	}

	var mu sync.Mutex
	var g errgroup.Group
	for w := 0; w < workers; w++ {
		w := w
		lo := w * paths / workers
		hi := (w + 1) * paths / workers
		g.Go(func() error {
			wk := newWorker(p, cfg, &o, times, bridge)
			for pth := lo; pth < hi; pth++ {
				rows, err := nextRows(cfg, subs, heads, w, pth, len(times)-1)
				if err != nil {
					return fmt.Errorf("path %d: %w", pth, err)
				}
				if err := wk.run(rows, batch, pth, x0); err != nil {
					return fmt.Errorf("path %d: %w", pth, err)
				}
			}
			mu.Lock()
			rep.DomainFixes += wk.fixes
			rep.Jumps += wk.jumps
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return batch, rep, nil
}

// nextRows yields the steps×budget uniform block driving path pth: the
// path's sub-stream in split mode, or one flat stream point reshaped
// row-major (step-major) in point-per-path mode.
func nextRows(cfg *config, subs, heads []sequence.Stream, w, pth, steps int) ([][]float64, error) {
	if !cfg.pointMode {
		return subs[pth].Next(steps)
	}
	pt, err := heads[w].Next(1)
	if err != nil {
		return nil, err
	}
	rows := make([][]float64, steps)
	for i := range rows {
		rows[i] = pt[0][i*cfg.budget : (i+1)*cfg.budget]
	}
	return rows, nil
}

// config is the validated, immutable run plan.
type config struct {
	scheme     Scheme
	downgraded bool
	dim        int
	factors    int
	budget     int  // uniforms per step
	pointMode  bool // one stream point per path (dim = steps × budget)

	exact process.ExactStepper // non-nil iff scheme == Exact
	deriv process.DiffusionDeriver
	jump  process.JumpDiffuser
}

// validate performs every ConfigurationError check up front; nothing
// fails mid-run except domain violations under DomainFail.
func validate(p process.Process, x0 []float64, st sequence.Stream, times []float64, paths int, o *Options) (*config, error) {
	if len(times) < 2 {
		return nil, ErrBadTimes
	}
	for i := 1; i < len(times); i++ {
		if times[i] <= times[i-1] {
			return nil, ErrBadTimes
		}
	}
	if len(x0) != p.Dim() {
		return nil, ErrBadInitial
	}
	if paths < 1 {
		return nil, ErrBadPaths
	}
	if o.Scheme < EulerMaruyama || o.Scheme > Exact {
		return nil, fmt.Errorf("scheme %d: %w", o.Scheme, ErrBadOptions)
	}
	if o.Policy < DomainFail || o.Policy > DomainReflect {
		return nil, fmt.Errorf("policy %d: %w", o.Policy, ErrBadOptions)
	}
	if o.Transform != noise.InverseCDF && o.Transform != noise.BoxMuller {
		return nil, fmt.Errorf("transform %d: %w", o.Transform, ErrBadOptions)
	}

	cfg := &config{
		scheme:  o.Scheme,
		dim:     p.Dim(),
		factors: p.Factors(),
	}
	cfg.jump, _ = p.(process.JumpDiffuser)
	cfg.budget = cfg.factors
	if cfg.jump != nil {
		cfg.budget += 2
	}
	steps := len(times) - 1
	switch st.Dim() {
	case cfg.budget:
	case steps * cfg.budget:
		cfg.pointMode = steps > 1
	default:
		return nil, fmt.Errorf("stream dim %d, need %d (per step) or %d (per path): %w",
			st.Dim(), cfg.budget, steps*cfg.budget, ErrStreamDim)
	}

	switch o.Scheme {
	case Exact:
		es, ok := p.(process.ExactStepper)
		if !ok {
			return nil, fmt.Errorf("exact transition not exposed: %w", ErrSchemeUnsupported)
		}
		cfg.exact = es
	case Milstein:
		d, ok := p.(process.DiffusionDeriver)
		if ok && cfg.dim == cfg.factors {
			cfg.deriv = d
		} else {
			// Observable downgrade, reported — never silent.
			cfg.scheme = EulerMaruyama
			cfg.downgraded = true
		}
	}
	return cfg, nil
}

// worker holds per-goroutine scratch buffers; one worker serves a
// contiguous block of paths.
type worker struct {
	p      process.Process
	cfg    *config
	opts   *Options
	times  []float64
	bridge *noise.Bridge

	mu    []float64
	sig   *mat.Dense
	der   []float64
	x     []float64
	xNext []float64
	zbuf  []float64
	wbuf  []float64
	col   []float64

	fixes int
	jumps int
}

func newWorker(p process.Process, cfg *config, o *Options, times []float64, bridge *noise.Bridge) *worker {
	steps := len(times) - 1
	return &worker{
		p: p, cfg: cfg, opts: o, times: times, bridge: bridge,
		mu:    make([]float64, cfg.dim),
		sig:   mat.NewDense(cfg.dim, cfg.factors, nil),
		der:   make([]float64, cfg.dim),
		x:     make([]float64, cfg.dim),
		xNext: make([]float64, cfg.dim),
		zbuf:  make([]float64, cfg.factors),
		wbuf:  make([]float64, steps),
		col:   make([]float64, steps),
	}
}

// run simulates one path into batch row pth from its uniform block.
func (w *worker) run(rows [][]float64, batch *PathBatch, pth int, x0 []float64) error {
	steps := len(w.times) - 1

	// Uniforms → per-step Brownian increments dW[i][j], j < factors.
	dW, err := w.increments(rows)
	if err != nil {
		return err
	}

	copy(w.x, x0)
	copy(batch.At(pth, 0), x0)

	for i := 0; i < steps; i++ {
		t := w.times[i]
		dt := w.times[i+1] - t

		if err := w.step(t, dt, dW[i]); err != nil {
			return fmt.Errorf("step %d (t=%g): %w", i, t, err)
		}
		if w.cfg.jump != nil {
			if err := w.thinJump(t, dt, rows[i]); err != nil {
				return fmt.Errorf("step %d (t=%g): %w", i, t, err)
			}
		}
		w.x, w.xNext = w.xNext, w.x
		copy(batch.At(pth, i+1), w.x)
	}
	return nil
}

// increments converts raw uniform rows into Brownian increments, with
// optional bridge reordering per factor.
func (w *worker) increments(rows [][]float64) ([][]float64, error) {
	steps := len(rows)
	um := make([][]float64, steps)
	for i, r := range rows {
		um[i] = r[:w.cfg.factors]
	}
	z, err := noise.Gaussian(um, w.opts.Transform)
	if err != nil {
		return nil, err
	}
	if w.bridge == nil {
		for i := range z {
			sdt := math.Sqrt(w.times[i+1] - w.times[i])
			for j := range z[i] {
				z[i][j] *= sdt
			}
		}
		return z, nil
	}
	for j := 0; j < w.cfg.factors; j++ {
		for i := 0; i < steps; i++ {
			w.col[i] = z[i][j]
		}
		w.bridge.Transform(w.col, w.wbuf)
		w.bridge.Increments(w.wbuf)
		for i := 0; i < steps; i++ {
			z[i][j] = w.wbuf[i]
		}
	}
	return z, nil
}

// step advances w.x into w.xNext over [t, t+dt] with increment dw.
func (w *worker) step(t, dt float64, dw []float64) error {
	if w.cfg.exact != nil {
		sdt := math.Sqrt(dt)
		for j := range dw {
			w.zbuf[j] = dw[j] / sdt
		}
		return w.cfg.exact.ExactStep(t, dt, w.x, w.zbuf, w.xNext)
	}

	if err := w.coefficients(t); err != nil {
		return err
	}
	for k := 0; k < w.cfg.dim; k++ {
		v := w.x[k] + w.mu[k]*dt
		for j := 0; j < w.cfg.factors; j++ {
			v += w.sig.At(k, j) * dw[j]
		}
		if w.cfg.deriv != nil {
			v += 0.5 * w.sig.At(k, k) * w.der[k] * (dw[k]*dw[k] - dt)
		}
		w.xNext[k] = v
	}
	return nil
}

// coefficients evaluates drift, diffusion (and the Milstein derivative)
// at (t, w.x), applying the domain policy on ErrStateDomain.
func (w *worker) coefficients(t float64) error {
	for attempt := 0; ; attempt++ {
		err := w.p.Drift(t, w.x, w.mu)
		if err == nil {
			err = w.p.Diffusion(t, w.x, w.sig)
		}
		if err == nil && w.cfg.deriv != nil {
			err = w.cfg.deriv.DiffusionDeriv(t, w.x, w.der)
		}
		if err == nil {
			return nil
		}
		if !errors.Is(err, process.ErrStateDomain) {
			return err
		}
		if w.opts.Policy == DomainFail || attempt > 0 {
			return fmt.Errorf("%v: %w", err, ErrDomainViolation)
		}
		w.sanitize()
	}
}

// sanitize applies the clip/reflect policy to out-of-domain components.
// Both policies target positivity domains (variance, square-root and
// intensity processes) — the only domain kind the bundled models carry.
func (w *worker) sanitize() {
	w.fixes++
	for k, v := range w.x {
		if v < 0 {
			if w.opts.Policy == DomainClip {
				w.x[k] = 0
			} else {
				w.x[k] = -v
			}
		}
	}
}

// thinJump applies at most one jump per step: the arrival is thinned
// with probability λ(t,x)·dt and the size driven by one extra normal.
func (w *worker) thinJump(t, dt float64, row []float64) error {
	uThin := row[w.cfg.factors]
	zJump := noise.Quantile(row[w.cfg.factors+1])
	if uThin >= w.cfg.jump.JumpIntensity(t, w.x)*dt {
		return nil
	}
	w.jumps++
	return w.cfg.jump.ApplyJump(t, w.xNext, zJump, w.xNext)
}
