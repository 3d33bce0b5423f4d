package arbor

import (
	"fmt"
	"testing"
)

func benchSizes() []int { return []int{1000, 10000, 100000} }

func sizeName(size int) string {
	return fmt.Sprintf("%dK", size/1000)
}

// buildTree creates a root with size entities below it: a fan-out of eight
// children per node, each carrying a Position component.
func buildTree(b *testing.B, w *World, size int) Entity {
	root := w.NewEntity()
	queue := []Entity{root}
	made := 0
	for made < size {
		p := queue[0]
		queue = queue[1:]
		for i := 0; i < 8 && made < size; i++ {
			c, err := w.NewChild(p)
			if err != nil {
				b.Fatal(err)
			}
			if _, err := AddComponent(w, c, positionKind); err != nil {
				b.Fatal(err)
			}
			queue = append(queue, c)
			made++
		}
	}
	return root
}

func BenchmarkWorldNewEntity(b *testing.B) {
	for _, size := range benchSizes() {
		b.Run(sizeName(size), func(b *testing.B) {
			for b.Loop() {
				b.StopTimer()
				w := NewWorld(WithInitialCapacity(size))
				b.StartTimer()
				for range size {
					w.NewEntity()
				}
			}
			b.ReportAllocs()
		})
	}
}

func BenchmarkSetParent(b *testing.B) {
	for _, size := range benchSizes() {
		b.Run(sizeName(size), func(b *testing.B) {
			w := NewWorld(WithInitialCapacity(size + 2))
			a, c := w.NewEntity(), w.NewEntity()
			ents := make([]Entity, size)
			for j := range ents {
				ents[j] = w.NewEntity()
			}
			for b.Loop() {
				for j, e := range ents {
					if j%2 == 0 {
						_ = w.SetParent(e, a)
					} else {
						_ = w.SetParent(e, c)
					}
				}
			}
			b.ReportAllocs()
		})
	}
}

func BenchmarkAddComponent(b *testing.B) {
	for _, size := range benchSizes() {
		b.Run(sizeName(size), func(b *testing.B) {
			for b.Loop() {
				b.StopTimer()
				w := NewWorld(WithInitialCapacity(size * 2))
				ents := make([]Entity, size)
				for j := range ents {
					ents[j] = w.NewEntity()
				}
				b.StartTimer()
				for _, e := range ents {
					_, _ = AddComponent(w, e, positionKind)
				}
			}
			b.ReportAllocs()
		})
	}
}

func BenchmarkGetComponent(b *testing.B) {
	for _, size := range benchSizes() {
		b.Run(sizeName(size), func(b *testing.B) {
			w := NewWorld(WithInitialCapacity(size * 2))
			ents := make([]Entity, size)
			for j := range ents {
				ents[j] = w.NewEntity()
				_, _ = AddComponent(w, ents[j], positionKind)
			}
			for b.Loop() {
				for _, e := range ents {
					GetComponent(w, e, positionKind)
				}
			}
			b.ReportAllocs()
		})
	}
}

func BenchmarkHasComponent(b *testing.B) {
	for _, size := range benchSizes() {
		b.Run(sizeName(size), func(b *testing.B) {
			w := NewWorld(WithInitialCapacity(size * 2))
			ents := make([]Entity, size)
			for j := range ents {
				ents[j] = w.NewEntity()
				_, _ = AddComponent(w, ents[j], positionKind)
			}
			for b.Loop() {
				for _, e := range ents {
					HasComponent(w, e, velocityKind)
				}
			}
			b.ReportAllocs()
		})
	}
}

func BenchmarkDisposeCascade(b *testing.B) {
	for _, size := range benchSizes() {
		b.Run(sizeName(size), func(b *testing.B) {
			for b.Loop() {
				b.StopTimer()
				w := NewWorld(WithInitialCapacity(size*2 + 1))
				root := buildTree(b, w, size)
				b.StartTimer()
				w.Dispose(root)
			}
			b.ReportAllocs()
		})
	}
}

func BenchmarkWalk(b *testing.B) {
	for _, size := range benchSizes() {
		b.Run(sizeName(size), func(b *testing.B) {
			w := NewWorld(WithInitialCapacity(size*2 + 1))
			root := buildTree(b, w, size)
			for b.Loop() {
				n := 0
				w.Walk(root, func(Entity) bool {
					n++
					return true
				})
				if n != 2*size+1 {
					b.Fatalf("expected %d entities, walked %d", 2*size+1, n)
				}
			}
			b.ReportAllocs()
		})
	}
}
