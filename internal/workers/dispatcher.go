// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/ptp-tester/internal/adapter"
	"github.com/MKhiriev/ptp-tester/internal/logger"
	"github.com/MKhiriev/ptp-tester/models"
)

// ErrBusy is returned by [Dispatcher.Dispatch] while a request is in flight.
var ErrBusy = errors.New("a request is already in flight")

// Dispatcher sends requests through a [adapter.PaymentAdapter] one at a
// time.
type Dispatcher struct {
	adapter adapter.PaymentAdapter
	busy    atomic.Bool

	logger *logger.Logger
}

// NewDispatcher constructs a [Dispatcher] over a.
func NewDispatcher(a adapter.PaymentAdapter, logger *logger.Logger) *Dispatcher {
	return &Dispatcher{
		adapter: a,
		logger:  logger.WithComponent("dispatcher"),
	}
}

// Busy reports whether a request is in flight.
func (d *Dispatcher) Busy() bool {
	return d.busy.Load()
}

// Dispatch starts req on a new goroutine. The returned channel receives
// exactly one outcome and is then closed. While a request is in flight
// Dispatch returns [ErrBusy] and starts nothing.
func (d *Dispatcher) Dispatch(ctx context.Context, req models.DirectRequest) (<-chan models.DirectOutcome, error) {
	if !d.busy.CompareAndSwap(false, true) {
		d.logger.Warn().Str("ptp", req.PTP).Msg("dispatch rejected, request in flight")
		return nil, ErrBusy
	}

	done := make(chan models.DirectOutcome, 1)
	job := &dispatchJob{
		ctx:     ctx,
		req:     req,
		adapter: d.adapter,
		done:    done,
		release: func() { d.busy.Store(false) },
	}

	go job.Run()
	return done, nil
}

// dispatchJob is one request.
type dispatchJob struct {
	ctx     context.Context
	req     models.DirectRequest
	adapter adapter.PaymentAdapter

	done    chan<- models.DirectOutcome
	release func()
}

// Run implements [Worker].
func (j *dispatchJob) Run() {
	defer close(j.done)

	resp, err := j.adapter.Direct(j.ctx, j.req)

	// free the dispatcher before the caller can observe the outcome
	j.release()
	j.done <- models.DirectOutcome{
		Request:  j.req,
		Response: resp,
		Err:      err,
		Finished: time.Now(),
	}
}
