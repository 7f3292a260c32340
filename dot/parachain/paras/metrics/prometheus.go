// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package metrics

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "paras"

// Prometheus records the paras state machine activity with Prometheus counters.
type Prometheus struct {
	upgradesScheduled  prometheus.Counter
	upgradesSuperseded prometheus.Counter
	upgradesApplied    prometheus.Counter
	pastCodePruned     prometheus.Counter
	actionsQueued      prometheus.Counter
	actionsFlushed     prometheus.Counter
}

// NewPrometheus creates the paras counters and registers them with the registerer.
// Counters already registered are reused.
func NewPrometheus(registerer prometheus.Registerer) (metrics *Prometheus, err error) {
	metrics = new(Prometheus)

	collectors := []struct {
		name    string
		counter *prometheus.Counter
		opts    prometheus.CounterOpts
	}{
		{"upgrades scheduled counter", &metrics.upgradesScheduled, prometheus.CounterOpts{
			Name: "code_upgrades_scheduled_total",
			Help: "number of code upgrades scheduled",
		}},
		{"upgrades superseded counter", &metrics.upgradesSuperseded, prometheus.CounterOpts{
			Name: "code_upgrades_superseded_total",
			Help: "number of scheduled code upgrades discarded by a newer schedule",
		}},
		{"upgrades applied counter", &metrics.upgradesApplied, prometheus.CounterOpts{
			Name: "code_upgrades_applied_total",
			Help: "number of code upgrades applied",
		}},
		{"past code pruned counter", &metrics.pastCodePruned, prometheus.CounterOpts{
			Name: "past_code_pruned_total",
			Help: "number of past code entries pruned",
		}},
		{"actions queued counter", &metrics.actionsQueued, prometheus.CounterOpts{
			Name: "actions_queued_total",
			Help: "number of session actions queued",
		}},
		{"actions flushed counter", &metrics.actionsFlushed, prometheus.CounterOpts{
			Name: "actions_flushed_total",
			Help: "number of session actions flushed",
		}},
	}

	for _, collector := range collectors {
		collector.opts.Namespace = namespace
		counter := prometheus.NewCounter(collector.opts)

		err = registerer.Register(counter)
		if err != nil {
			alreadyRegisteredErr := prometheus.AlreadyRegisteredError{}
			if !errors.As(err, &alreadyRegisteredErr) {
				return nil, fmt.Errorf("cannot register %s: %w", collector.name, err)
			}

			existing, ok := alreadyRegisteredErr.ExistingCollector.(prometheus.Counter)
			if !ok {
				return nil, fmt.Errorf("cannot register %s: %w", collector.name, err)
			}
			counter = existing
		}

		*collector.counter = counter
	}

	return metrics, nil
}

// UpgradeScheduled increments the scheduled upgrades counter, and the
// superseded upgrades counter if a previous schedule was discarded.
func (p *Prometheus) UpgradeScheduled(superseded bool) {
	p.upgradesScheduled.Inc()
	if superseded {
		p.upgradesSuperseded.Inc()
	}
}

// UpgradeApplied increments the applied upgrades counter.
func (p *Prometheus) UpgradeApplied() {
	p.upgradesApplied.Inc()
}

// PastCodePruned adds the number of pruned past code entries.
func (p *Prometheus) PastCodePruned(count int) {
	p.pastCodePruned.Add(float64(count))
}

// ActionQueued increments the queued actions counter.
func (p *Prometheus) ActionQueued() {
	p.actionsQueued.Inc()
}

// ActionsFlushed adds the number of flushed actions.
func (p *Prometheus) ActionsFlushed(count int) {
	p.actionsFlushed.Add(float64(count))
}
