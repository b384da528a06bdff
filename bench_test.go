package execq_test

import (
	"testing"

	eq "github.com/azargarov/execq"
)

func BenchmarkSubmit(b *testing.B) {
	for _, st := range storeTypes {
		st := st
		b.Run(st.String(), func(b *testing.B) {
			q := eq.NewWithOptions(eq.Options{Store: st})
			task := eq.Task(func() {})

			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_ = q.Submit(i&0x3f, task)
			}
		})
	}
}

func BenchmarkSubmitDrainAll(b *testing.B) {
	const batch = 1024

	for _, st := range storeTypes {
		st := st
		b.Run(st.String(), func(b *testing.B) {
			q := eq.NewWithOptions(eq.Options{Store: st})
			task := eq.Task(func() {})

			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				for j := 0; j < batch; j++ {
					_ = q.Submit(j&0x3f, task)
				}
				q.DrainAll()
			}
		})
	}
}

func BenchmarkExecutorPost(b *testing.B) {
	q := eq.New()
	ex := q.Executor(eq.PriorityMedium)
	task := eq.Task(func() {})

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = ex.Post(task)
	}
}

func BenchmarkSubmitParallel(b *testing.B) {
	for _, st := range storeTypes {
		st := st
		b.Run(st.String(), func(b *testing.B) {
			q := eq.NewWithOptions(eq.Options{Store: st})
			task := eq.Task(func() {})

			b.ReportAllocs()
			b.ResetTimer()
			b.RunParallel(func(pb *testing.PB) {
				for pb.Next() {
					_ = q.Submit(eq.PriorityMedium, task)
				}
			})
		})
	}
}
