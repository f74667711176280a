package services

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/zineb0v0/viaCargo/internal/domain"
	"github.com/zineb0v0/viaCargo/internal/ports"
)

// Overview is the dashboard's derived state: stock totals plus the
// grouped loading history. Degraded flags mark resources whose fetch
// failed and fell back to empty, so the page can hint at partial data
// instead of failing outright.
type Overview struct {
	Parcels       []domain.Parcel
	ParcelCount   int
	TotalWeightKg float64
	Runs          []domain.Run

	ParcelsDegraded bool
	HistoryDegraded bool
}

// BuildOverview fetches parcels and assignment history concurrently and
// derives the dashboard values. The two fetches are failure-isolated:
// either resource failing degrades to an empty collection without
// aborting the other or the page.
func BuildOverview(ctx context.Context, parcels ports.ParcelSource, history ports.HistorySource) Overview {
	log := zerolog.Ctx(ctx)

	var (
		wg          sync.WaitGroup
		stock       []domain.Parcel
		assignments []domain.Assignment
		stockErr    error
		historyErr  error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		stock, stockErr = parcels.ListParcels(ctx)
	}()
	go func() {
		defer wg.Done()
		assignments, historyErr = history.ListAssignments(ctx)
	}()
	wg.Wait()

	out := Overview{}

	if stockErr != nil {
		log.Warn().Err(stockErr).Msg("parcel fetch failed, dashboard stock degraded to empty")
		out.ParcelsDegraded = true
		stock = []domain.Parcel{}
	}
	if historyErr != nil {
		log.Warn().Err(historyErr).Msg("history fetch failed, dashboard runs degraded to empty")
		out.HistoryDegraded = true
		assignments = nil
	}

	out.Parcels = stock
	out.ParcelCount = len(stock)
	out.TotalWeightKg = TotalWeight(stock)
	out.Runs = GroupRuns(assignments)

	return out
}
