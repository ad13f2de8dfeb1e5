package main

import (
	"reflect"

	"github.com/aabizri/lindraw/interchange/job"
)

const (
	sequencerQueueSize = 5
	orderInQueueSize   = 5
	orderOutQueueSize  = 0
	outQueueSize       = 5
)

// order is a job travelling through the pipeline, with its result once rendered
type order struct {
	job *job.Job
	seq int

	lines int
	err   error
}

// buildPipeline starts the sequencer, workers rendering jobs, and the resolver
// putting the results back in input order. Closing in drains and closes out.
func buildPipeline(workers int) (in chan<- *job.Job, out <-chan *order) {
	sequencerQueue := make(chan *job.Job, sequencerQueueSize)
	orderInQueue := make(chan *order, orderInQueueSize)
	outQueue := make(chan *order, outQueueSize)
	orderOutQueues := make([]<-chan *order, workers)

	go sequence(sequencerQueue, orderInQueue)
	for i := range orderOutQueues {
		q := make(chan *order, orderOutQueueSize)
		go run(orderInQueue, q)
		orderOutQueues[i] = q
	}
	go resolve(orderOutQueues, outQueue)

	return sequencerQueue, outQueue
}

func sequence(in <-chan *job.Job, orderInQueue chan<- *order) {
	seq := 0
	for j := range in {
		orderInQueue <- &order{
			job: j,
			seq: seq,
		}
		seq++
	}
	close(orderInQueue)
}

func run(orderInQueue <-chan *order, orderOutQueue chan<- *order) {
	for o := range orderInQueue {
		o.lines, o.err = renderJob(o.job)
		orderOutQueue <- o
	}
	close(orderOutQueue)
}

// resolve forwards the orders coming out of the workers in sequence order.
//
// Every queue has a single buffer slot. An order arriving ahead of its turn
// takes its queue's slot, and the queue is not selected on until the slot is
// released. Workers take orders in sequence, so the order due next is never
// behind a full slot.
func resolve(orderOutQueues []<-chan *order, out chan<- *order) {
	next := 0
	buffer := make([]*order, len(orderOutQueues))

	// The mask marks closed queues, which are not selected on anymore
	mask := make([]bool, len(orderOutQueues))

	flush := func() {
		for flushed := true; flushed; {
			flushed = false
			for i, buffered := range buffer {
				if buffered != nil && buffered.seq == next {
					out <- buffered
					next++
					buffer[i] = nil
					flushed = true
				}
			}
		}
	}

	selectCases := make([]reflect.SelectCase, len(orderOutQueues))
	for i, q := range orderOutQueues {
		selectCases[i] = reflect.SelectCase{
			Dir:  reflect.SelectRecv,
			Chan: reflect.ValueOf(q),
		}
	}

	subSelectCases := make([]reflect.SelectCase, 0, len(orderOutQueues))
	// Map of subselected case index to queue index
	subSelectCaseToQueueIndex := make([]int, 0, len(orderOutQueues))

	for {
		allMasked := true
		for _, masked := range mask {
			if !masked {
				allMasked = false
				break
			}
		}
		if allMasked {
			flush()
			close(out)
			return
		}

		subSelectCases = subSelectCases[:0]
		subSelectCaseToQueueIndex = subSelectCaseToQueueIndex[:0]
		for i, sc := range selectCases {
			if buffer[i] == nil && !mask[i] {
				subSelectCases = append(subSelectCases, sc)
				subSelectCaseToQueueIndex = append(subSelectCaseToQueueIndex, i)
			}
		}
		if len(subSelectCases) == 0 {
			panic("no queue to select on, are the sequence numbers contiguous?")
		}

		chosen, recv, ok := reflect.Select(subSelectCases)
		queue := subSelectCaseToQueueIndex[chosen]
		if !ok {
			mask[queue] = true
			flush()
			continue
		}

		o := recv.Interface().(*order)
		if o.seq == next {
			out <- o
			next++
			flush()
		} else {
			buffer[queue] = o
		}
	}
}
