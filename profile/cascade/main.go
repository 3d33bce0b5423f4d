// Profiling:
// go build ./profile/cascade
// go tool pprof -http=":8000" -nodefraction=0.001 ./cascade mem.pprof

package main

import (
	"github.com/edwinsyarief/arbor"
	"github.com/pkg/profile"
)

type transform struct {
	X, Y, Rotation float64
}

type health struct {
	Current, Max int
}

var (
	transformKind = arbor.RegisterKind[transform]("transform")
	healthKind    = arbor.RegisterKind[health]("health")
)

func main() {
	rounds := 50
	iters := 100
	entities := 10000
	p := profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook)
	run(rounds, iters, entities)
	p.Stop()
}

// run builds a tree of numEntities nodes under one root, each with two
// components, and tears it down again with a single Dispose.
func run(rounds, iters, numEntities int) {
	for range rounds {
		w := arbor.NewWorld(arbor.WithInitialCapacity(numEntities * 3))
		for range iters {
			root := w.NewEntity()
			parents := []arbor.Entity{root}
			for i := range numEntities {
				e, err := w.NewChild(parents[i/4])
				if err != nil {
					panic(err)
				}
				t, _ := arbor.AddComponent(w, e, transformKind)
				t.Data.X = float64(i)
				h, _ := arbor.AddComponent(w, e, healthKind)
				h.Data.Max = 100
				parents = append(parents, e)
			}
			w.Dispose(root)
		}
	}
}
