// Package hackathon implements the idea/package production pipeline and its
// retrospective exactly-once verification.
//
// ARCHITECTURE:
//
// Idea Producers and Package Producers push items onto three shared
// unbounded queues (ideas, packages, termination tokens). Students (consumer
// workers) drain the idea queue, gather enough packages for the idea they
// hold, and "build" it. Four checksum accumulators record what was produced
// and what was consumed; after all workers join, matching pairs must be
// equal.
//
// Work is split at spawn time with Partition. Every producer receives an
// immutable start offset and count, so there is no shared cursor.
//
// Student state machine:
//
//	Idle -> HoldingIdea -> Building -> Idle
//	Idle -> Terminated
//
// Students block on queue signals instead of busy-polling. The observable
// transitions are those of the polling loop.
//
// TERMINATION:
//
// A student terminates when the idea queue is empty and it takes a
// termination token. Under TerminationBestEffort those are two separate
// observations, and a student can leave while another Idea Producer is
// still mid-batch. TerminationBarrier (the default) additionally requires
// that every Idea Producer has returned, which makes "idea queue empty"
// final.
package hackathon
