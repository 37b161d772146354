// Package threading demonstrates unsynchronized concurrent access. Build
// with `go build -race` so the race detector can report it.
package threading

import (
	"fmt"
	"sync"
)

// Process-wide shared state. Unsynchronized on purpose: the missing lock is
// the subject of the demonstration. Each routine resets its state before
// spawning the racing goroutines.
var (
	counter int
	seq     []int
)

func incrementWorker(n *int, wg *sync.WaitGroup) {
	defer wg.Done()
	for i := 0; i < 100000; i++ {
		*n++ // unsynchronized read-modify-write
	}
}

func appendWorker(s *[]int, wg *sync.WaitGroup) {
	defer wg.Done()
	for i := 0; i < 1000; i++ {
		*s = append(*s, i)
	}
}

// RacingIncrement runs two goroutines that each increment the shared counter
// 100000 times with no synchronization, then joins both and prints the final
// value. The result is racy: anything between 100000 and 200000 can come out.
func RacingIncrement() {
	counter = 0
	var wg sync.WaitGroup
	wg.Add(2)
	go incrementWorker(&counter, &wg)
	go incrementWorker(&counter, &wg)
	wg.Wait()
	fmt.Println("Counter value:", counter)
}

// RacingAppend runs two goroutines that each append 1000 elements to the
// shared slice with no synchronization. Concurrent appends race on the slice
// header as well as the backing array; the final length is unspecified.
func RacingAppend() {
	seq = nil
	var wg sync.WaitGroup
	wg.Add(2)
	go appendWorker(&seq, &wg)
	go appendWorker(&seq, &wg)
	wg.Wait()
	fmt.Println("Sequence length:", len(seq))
}
