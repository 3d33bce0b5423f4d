// Profiling:
// go build ./profile/reparent
// go tool pprof -http=":8000" -nodefraction=0.001 ./reparent cpu.pprof

package main

import (
	"github.com/edwinsyarief/arbor"
	"github.com/pkg/profile"
)

func main() {
	rounds := 20
	iters := 1000
	entities := 10000
	p := profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook)
	run(rounds, iters, entities)
	p.Stop()
}

// run shuffles numEntities leaves between a handful of parents, walking the
// tree after every pass.
func run(rounds, iters, numEntities int) {
	for range rounds {
		w := arbor.NewWorld(arbor.WithInitialCapacity(numEntities + 8))
		root := w.NewEntity()
		parents := make([]arbor.Entity, 7)
		for i := range parents {
			parents[i], _ = w.NewChild(root)
		}
		leaves := make([]arbor.Entity, numEntities)
		for i := range leaves {
			leaves[i] = w.NewEntity()
		}
		for it := range iters {
			for i, e := range leaves {
				if err := w.SetParent(e, parents[(i+it)%len(parents)]); err != nil {
					panic(err)
				}
			}
			count := 0
			w.Walk(root, func(arbor.Entity) bool {
				count++
				return true
			})
			if count != len(parents)+len(leaves)+1 {
				panic("reparent: tree lost entities")
			}
		}
		w.DisposeAll()
	}
}
