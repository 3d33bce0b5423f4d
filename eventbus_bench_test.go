package arbor

import (
	"testing"
)

func BenchmarkEventBusSubscribe(b *testing.B) {
	for _, size := range []int{1000, 10000} {
		b.Run(sizeName(size), func(b *testing.B) {
			for b.Loop() {
				bus := &EventBus{}
				for i := 0; i < size; i++ {
					Subscribe(bus, func(e TestEvent) {})
				}
			}
			b.ReportAllocs()
		})
	}
}

func BenchmarkEventBusPublishNoHandlers(b *testing.B) {
	bus := &EventBus{}
	event := EntityDestroyed{Entity: Entity{ID: 1}}
	b.ReportAllocs()
	for b.Loop() {
		Publish(bus, event)
	}
}

func BenchmarkEventBusPublishOneHandler(b *testing.B) {
	bus := &EventBus{}
	Subscribe(bus, func(e EntityDestroyed) {})
	event := EntityDestroyed{Entity: Entity{ID: 1}}
	b.ReportAllocs()
	for b.Loop() {
		Publish(bus, event)
	}
}

func BenchmarkEventBusPublishManyHandlers(b *testing.B) {
	for _, size := range []int{1000, 10000} {
		b.Run(sizeName(size), func(b *testing.B) {
			bus := &EventBus{}
			for i := 0; i < size; i++ {
				Subscribe(bus, func(e ComponentAdded) {})
			}
			event := ComponentAdded{Owner: Entity{ID: 1}, Component: Entity{ID: 2}}
			b.ReportAllocs()
			for b.Loop() {
				Publish(bus, event)
			}
		})
	}
}
