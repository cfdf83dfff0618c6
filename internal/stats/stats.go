package stats

import (
	"encoding/json"
	"expvar"
	"net/http"
	"time"
)

type StatsProvider interface {
	Incr(name string)
	Decr(name string)
	RegisterMetric(name string)
	Run()
}

// StatsUpdater publishes game-server counters through expvar. Callers queue
// deltas on a channel so hot paths never block on the metrics map.
type StatsUpdater struct {
	vars   *expvar.Map
	deltas chan counterDelta
}

type counterDelta struct {
	metric string
	delta  int64
}

// NewStatsUpdater registers the kinoquiz-stats expvar map and its debug
// handler on mux. The map name is process-global, so construct at most one
// updater per binary.
func NewStatsUpdater(mux *http.ServeMux) *StatsUpdater {
	su := &StatsUpdater{
		vars:   expvar.NewMap("kinoquiz-stats"),
		deltas: make(chan counterDelta, 512),
	}
	mux.HandleFunc("GET /debug/vars", su.serveVars)

	startTime := time.Now()
	su.vars.Set("Uptime", expvar.Func(func() any {
		return time.Since(startTime).Milliseconds()
	}))

	return su
}

func (su *StatsUpdater) serveVars(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")

	out := make(map[string]any)
	su.vars.Do(func(kv expvar.KeyValue) {
		var value any
		json.Unmarshal([]byte(kv.Value.String()), &value)
		out[kv.Key] = value
	})

	json.NewEncoder(w).Encode(out)
}

func (su *StatsUpdater) applyDeltas() {
	for d := range su.deltas {
		metric := su.vars.Get(d.metric)
		if metric == nil {
			panic("unregistered metric: " + d.metric)
		}

		metric.(*expvar.Int).Add(d.delta)
	}
}

func (su *StatsUpdater) Incr(name string) {
	su.deltas <- counterDelta{metric: name, delta: 1}
}

func (su *StatsUpdater) Decr(name string) {
	su.deltas <- counterDelta{metric: name, delta: -1}
}

func (su *StatsUpdater) RegisterMetric(name string) {
	su.vars.Set(name, new(expvar.Int))
}

func (su *StatsUpdater) Run() {
	go su.applyDeltas()
}

func (su *StatsUpdater) Stop() {
	close(su.deltas)
}
