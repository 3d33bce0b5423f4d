package arbor_test

import (
	"errors"
	"fmt"

	"github.com/edwinsyarief/arbor"
)

type Stats struct {
	HP int
}

var statsKind = arbor.RegisterKind[Stats]("stats")

func Example() {
	w := arbor.NewWorld()
	destroyed := 0
	arbor.Subscribe(w.Events(), func(arbor.EntityDestroyed) { destroyed++ })

	player := w.NewEntity()
	weapon, _ := w.NewChild(player)
	stats, _ := arbor.AddComponent(w, player, statsKind)
	stats.Data.HP = 100

	_, err := arbor.AddComponent(w, player, statsKind)
	fmt.Println(errors.Is(err, arbor.ErrDuplicateKind))

	got, _ := arbor.GetComponent(w, player, statsKind)
	fmt.Println(len(w.Children(player)), got.Data.HP)

	w.Dispose(player)
	fmt.Println(w.IsDisposed(weapon), w.IsDisposed(stats.Entity), destroyed, w.Len())
	// Output:
	// true
	// 2 100
	// true true 3 0
}
