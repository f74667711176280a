package services

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/zineb0v0/viaCargo/internal/adapters/fleet"
	"github.com/zineb0v0/viaCargo/internal/domain"
	"github.com/zineb0v0/viaCargo/internal/ports"
)

// WorkflowState is the lifecycle of one optimization workflow as the
// console exposes it.
type WorkflowState string

const (
	StateIdle      WorkflowState = "idle"
	StateLoading   WorkflowState = "loading"
	StateSucceeded WorkflowState = "succeeded"
	StateFailed    WorkflowState = "failed"
)

// Status is a point-in-time snapshot of a workflow. Result is non-nil
// only in StateSucceeded, Err only in StateFailed.
type Status[T any] struct {
	State  WorkflowState
	Result *T
	Err    error
}

// workflow is the single-flight lifecycle cell shared by both
// optimization workflows.
//
// Transitions: Idle -> Loading (begin), Loading -> Succeeded|Failed
// (finish), Succeeded|Failed -> Loading (begin again, clearing the
// prior outcome). begin while Loading is refused, which is what makes
// invocations single-flight. Each begin bumps a generation counter;
// finish carries the generation it was started with and is dropped when
// it no longer matches, so a response that arrives after a timeout
// already failed the workflow (or after a newer invocation started)
// cannot clobber the current state.
type workflow[T any] struct {
	mu      sync.Mutex
	state   WorkflowState
	gen     uint64
	result  *T
	failure error
}

func (w *workflow[T]) begin() (uint64, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.state == StateLoading {
		return 0, false
	}

	w.gen++
	w.state = StateLoading
	w.result = nil
	w.failure = nil
	return w.gen, true
}

func (w *workflow[T]) finish(gen uint64, result *T, err error) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.gen != gen || w.state != StateLoading {
		// Late completion of an abandoned invocation; drop silently.
		return false
	}

	if err != nil {
		w.state = StateFailed
		w.failure = err
		return true
	}

	w.state = StateSucceeded
	w.result = result
	return true
}

func (w *workflow[T]) snapshot() Status[T] {
	w.mu.Lock()
	defer w.mu.Unlock()

	state := w.state
	if state == "" {
		state = StateIdle
	}
	return Status[T]{State: state, Result: w.result, Err: w.failure}
}

// RoutingResult pairs the raw tour with its labeled stop sequence.
type RoutingResult struct {
	Tour  domain.Tour
	Stops []StopView
}

// Orchestrator drives the two optimization workflows as controlled
// async operations. It is the only component that talks to the
// optimization endpoints, and it owns the single-flight discipline:
// at most one in-flight invocation per workflow, concurrent invokes
// rejected as no-ops rather than queued.
type Orchestrator struct {
	parcels ports.ParcelSource
	trucks  ports.TruckSource
	history ports.HistorySource
	loader  ports.LoadOptimizer
	router  ports.RouteOptimizer

	routingTimeout time.Duration

	loading workflow[domain.LoadPlan]
	routing workflow[RoutingResult]

	// Routing preliminaries, refreshed best-effort on page load and
	// consulted locally before any routing network call.
	prepMu        sync.Mutex
	clientIndex   ClientIndex
	assignedCount map[string]int
}

// NewOrchestrator wires the orchestrator onto its backend ports.
// routingTimeout bounds the routing-optimization call; zero or negative
// falls back to the 30 second default the workflow was designed around.
func NewOrchestrator(
	parcels ports.ParcelSource,
	trucks ports.TruckSource,
	history ports.HistorySource,
	loader ports.LoadOptimizer,
	router ports.RouteOptimizer,
	routingTimeout time.Duration,
) *Orchestrator {
	if routingTimeout <= 0 {
		routingTimeout = 30 * time.Second
	}

	return &Orchestrator{
		parcels:        parcels,
		trucks:         trucks,
		history:        history,
		loader:         loader,
		router:         router,
		routingTimeout: routingTimeout,
		clientIndex:    ClientIndex{},
		assignedCount:  map[string]int{},
	}
}

// StartLoading invokes the loading-optimization workflow. The return
// value reports whether the invocation was accepted; false means an
// invocation is already in flight and this one was a no-op.
func (o *Orchestrator) StartLoading(ctx context.Context) bool {
	gen, ok := o.loading.begin()
	if !ok {
		return false
	}

	// The workflow outlives the triggering request: detach from its
	// cancellation but keep its values (session cookie, logger).
	go o.runLoading(context.WithoutCancel(ctx), gen)
	return true
}

func (o *Orchestrator) runLoading(ctx context.Context, gen uint64) {
	log := zerolog.Ctx(ctx)

	plan, err := o.loader.RunLoadOptimization(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("loading optimization failed")
		o.loading.finish(gen, nil, err)
		return
	}

	// Capacity metrics need the current stock and fleet snapshots.
	// Their failures degrade the annotation, not the plan itself.
	parcels, perr := o.parcels.ListParcels(ctx)
	if perr != nil {
		log.Warn().Err(perr).Msg("parcel snapshot unavailable, load plan metrics degraded")
	}
	trucks, terr := o.trucks.ListTrucks(ctx)
	if terr != nil {
		log.Warn().Err(terr).Msg("truck snapshot unavailable, load plan metrics degraded")
	}
	AnnotateLoadPlan(&plan, parcels, trucks)

	if o.loading.finish(gen, &plan, nil) {
		log.Info().Str("executed_at", plan.ExecutedAt).Int("trucks", len(plan.Trucks)).Msg("loading optimization succeeded")
	}
}

// LoadingStatus snapshots the loading workflow.
func (o *Orchestrator) LoadingStatus() Status[domain.LoadPlan] {
	return o.loading.snapshot()
}

// PrepareRouting refreshes the routing preliminaries: the fleet for the
// truck selector, the parcel->client index for stop labels and the
// per-truck assigned-parcel counts for the local invocation guard.
// Every fetch is best-effort and failure-isolated: a failing resource
// degrades to empty and must not block the page (or the other fetches).
func (o *Orchestrator) PrepareRouting(ctx context.Context) []domain.Truck {
	log := zerolog.Ctx(ctx)

	var (
		wg       sync.WaitGroup
		trucks   []domain.Truck
		refs     []domain.ClientRef
		parcels  []domain.Parcel
		assigned []domain.Assignment
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		var err error
		if trucks, err = o.trucks.ListTrucks(ctx); err != nil {
			log.Warn().Err(err).Msg("truck fetch failed, routing page degraded")
			trucks = []domain.Truck{}
		}
	}()
	go func() {
		defer wg.Done()
		var err error
		if refs, err = o.router.ListTourClients(ctx); err != nil || len(refs) == 0 {
			// Roster endpoint is flaky across backend revisions; fall
			// back to deriving the index from the parcel stock.
			if parcels, err = o.parcels.ListParcels(ctx); err != nil {
				log.Warn().Err(err).Msg("client index unavailable, stop labels will be synthetic")
			}
		}
	}()
	go func() {
		defer wg.Done()
		var err error
		if assigned, err = o.history.ListAssignments(ctx); err != nil {
			log.Warn().Err(err).Msg("assignment history unavailable, routing preconditions relaxed to empty")
			assigned = nil
		}
	}()
	wg.Wait()

	index := BuildClientIndex(refs)
	if len(index) == 0 {
		index = IndexFromParcels(parcels)
	}

	counts := make(map[string]int)
	for _, a := range assigned {
		if a.TruckID != "" {
			counts[a.TruckID]++
		}
	}

	o.prepMu.Lock()
	o.clientIndex = index
	o.assignedCount = counts
	o.prepMu.Unlock()

	return trucks
}

// StartRouting invokes the routing-optimization workflow for one truck.
// Preconditions are checked locally, before any network call: a missing
// selection or a truck with no assigned parcels fails immediately with
// InvalidSelection. The returned bool reports single-flight acceptance,
// mirroring StartLoading.
func (o *Orchestrator) StartRouting(ctx context.Context, truckID string) (bool, error) {
	if truckID == "" {
		return false, &fleet.Error{ErrKind: fleet.KindInvalidSelection, Msg: "no truck selected"}
	}

	o.prepMu.Lock()
	count := o.assignedCount[truckID]
	index := o.clientIndex
	o.prepMu.Unlock()

	if count == 0 {
		return false, &fleet.Error{ErrKind: fleet.KindInvalidSelection, Msg: "selected truck has no assigned parcels"}
	}

	gen, ok := o.routing.begin()
	if !ok {
		return false, nil
	}

	go o.runRouting(context.WithoutCancel(ctx), gen, truckID, index)
	return true, nil
}

func (o *Orchestrator) runRouting(ctx context.Context, gen uint64, truckID string, index ClientIndex) {
	log := zerolog.Ctx(ctx)

	// Hard bound on the TSP call. On expiry the workflow fails with
	// Timeout; whether the transport managed to abort the request is
	// irrelevant because a late completion carries a stale generation
	// and is dropped in finish.
	ctx, cancel := context.WithTimeout(ctx, o.routingTimeout)
	defer cancel()

	tour, err := o.router.RunRouteOptimization(ctx, truckID)
	if err != nil {
		if o.routing.finish(gen, nil, err) {
			log.Warn().Err(err).Str("truck_id", truckID).Msg("routing optimization failed")
		}
		return
	}

	result := RoutingResult{
		Tour:  tour,
		Stops: LabelStops(tour.Stops, index),
	}

	if o.routing.finish(gen, &result, nil) {
		log.Info().
			Str("truck_id", truckID).
			Str("tour_id", tour.ID).
			Float64("distance_km", tour.TotalDistanceKm).
			Msg("routing optimization succeeded")
	}
}

// RoutingStatus snapshots the routing workflow.
func (o *Orchestrator) RoutingStatus() Status[RoutingResult] {
	return o.routing.snapshot()
}
