// Command treebench runs a seeded random insert/probe/drain workload
// against the llrb container and a standard B-tree, and reports how the
// two compare.
package main

import (
	"flag"
	"math/rand"
	"os"
	"time"

	"github.com/bnclabs/golog"
	s "github.com/bnclabs/gosettings"
	humanize "github.com/dustin/go-humanize"
	"github.com/jinzhu/copier"
	"github.com/pkg/errors"

	"github.com/qwtsc/yarb-tree/ordered"
)

// Defaultsettings returns the default workload settings.
//
//	"count"    number of values to insert
//	"keyspace" values are drawn from [0, keyspace)
//	"probes"   number of membership probes after the insert phase
//	"seed"     rng seed, 0 seeds from the clock
func Defaultsettings() s.Settings {
	return s.Settings{
		"count":    int64(100000),
		"keyspace": int64(100000),
		"probes":   int64(100000),
		"seed":     int64(0),
	}
}

type workload struct {
	Name     string
	Count    int64
	Keyspace int64
	Probes   int64
	Seed     int64
}

func main() {
	setts, err := settingsFromArgs(os.Args[1:])
	if err != nil {
		log.Errorf("treebench: %v\n", err)
		os.Exit(1)
	}

	base := workload{
		Count:    setts.Int64("count"),
		Keyspace: setts.Int64("keyspace"),
		Probes:   setts.Int64("probes"),
		Seed:     setts.Int64("seed"),
	}
	if base.Seed == 0 {
		base.Seed = time.Now().UnixNano()
	}
	log.Infof("treebench: count=%v keyspace=%v probes=%v seed=%v\n",
		humanize.Comma(base.Count), humanize.Comma(base.Keyspace),
		humanize.Comma(base.Probes), base.Seed)

	trees := []struct {
		name string
		cont ordered.Container[int64]
	}{
		{"llrb", ordered.NewLLRB[int64]()},
		{"btree", ordered.NewBTree[int64]()},
	}
	for _, tree := range trees {
		run := workload{}
		if err := copier.Copy(&run, &base); err != nil {
			log.Fatalf("treebench: cloning workload: %v\n", err)
		}
		run.Name = tree.name
		runWorkload(run, tree.cont)
	}
}

func settingsFromArgs(args []string) (s.Settings, error) {
	f := flag.NewFlagSet("treebench", flag.ContinueOnError)
	count := f.Int64("count", 0, "number of values to insert")
	keyspace := f.Int64("keyspace", 0, "values are drawn from [0, keyspace)")
	probes := f.Int64("probes", -1, "number of membership probes")
	seed := f.Int64("seed", 0, "rng seed, 0 seeds from the clock")
	if err := f.Parse(args); err != nil {
		return nil, errors.Wrap(err, "parsing arguments")
	}

	setts := make(s.Settings)
	if *count != 0 {
		setts["count"] = *count
	}
	if *keyspace != 0 {
		setts["keyspace"] = *keyspace
	}
	if *probes >= 0 {
		setts["probes"] = *probes
	}
	if *seed != 0 {
		setts["seed"] = *seed
	}
	setts = make(s.Settings).Mixin(Defaultsettings(), setts)
	return setts, validatesettings(setts)
}

func validatesettings(setts s.Settings) error {
	if count := setts.Int64("count"); count <= 0 {
		return errors.Errorf("count must be positive, got %d", count)
	}
	if keyspace := setts.Int64("keyspace"); keyspace <= 0 {
		return errors.Errorf("keyspace must be positive, got %d", keyspace)
	}
	if probes := setts.Int64("probes"); probes < 0 {
		return errors.Errorf("probes must not be negative, got %d", probes)
	}
	return nil
}

func runWorkload(run workload, cont ordered.Container[int64]) {
	rnd := rand.New(rand.NewSource(run.Seed))
	values := make([]int64, run.Count)
	for i := range values {
		values[i] = rnd.Int63n(run.Keyspace)
	}

	start := time.Now()
	cont.InsertAll(values)
	insertTook := time.Since(start)

	start = time.Now()
	hits := int64(0)
	for i := int64(0); i < run.Probes; i++ {
		if cont.Contains(rnd.Int63n(run.Keyspace)) {
			hits++
		}
	}
	probeTook := time.Since(start)

	start = time.Now()
	sorted := cont.Drain()
	drainTook := time.Since(start)

	log.Infof("%v: inserted %v values in %v, %v ns/op\n",
		run.Name, humanize.Comma(run.Count), insertTook,
		insertTook.Nanoseconds()/run.Count)
	if run.Probes > 0 {
		log.Infof("%v: probed %v values (%v hits) in %v, %v ns/op\n",
			run.Name, humanize.Comma(run.Probes), humanize.Comma(hits),
			probeTook, probeTook.Nanoseconds()/run.Probes)
	}
	log.Infof("%v: drained %v distinct values in %v\n",
		run.Name, humanize.Comma(int64(len(sorted))), drainTook)
}
