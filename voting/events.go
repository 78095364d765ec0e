// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

import (
	"strconv"
	"time"

	"github.com/GianlucaGuarini/go-observable"
)

type EventKind string

const (
	EventVoterRegistered      EventKind = "VoterRegistered"
	EventProposalRegistered   EventKind = "ProposalRegistered"
	EventVoted                EventKind = "Voted"
	EventWorkflowStatusChange EventKind = "WorkflowStatusChange"
)

const topicPrefix = "election-sub-"

// Event is a notification emitted by a successful mutation. Which fields are
// meaningful depends on Kind:
//
//	VoterRegistered       Voter
//	ProposalRegistered    ProposalID, Voter (submitter), Description
//	Voted                 Voter, ProposalID
//	WorkflowStatusChange  Previous, Next
//
// Description is journaled but never encoded: proposal text is voter-only.
type Event struct {
	Seq         uint64         `json:"seq"`
	Kind        EventKind      `json:"kind"`
	Voter       Identity       `json:"voter,omitempty"`
	ProposalID  int            `json:"proposal_id"`
	Description string         `json:"-"`
	Previous    WorkflowStatus `json:"previous"`
	Next        WorkflowStatus `json:"next"`
	At          time.Time      `json:"at"`
}

// Public returns the part of ev anyone may see. A ProposalRegistered
// notification discloses only the new index.
func (ev Event) Public() Event {
	ev.Description = ""
	if ev.Kind == EventProposalRegistered {
		ev.Voter = ""
	}
	return ev
}

// EventEmitter keeps the ordered notification log and fans every event out
// to subscribers. Subscribers run synchronously, in emission order.
type EventEmitter struct {
	log []Event
	ob  *observable.Observable

	// one observer topic per subscriber, in subscription order
	topics []string
	nextID int
}

func NewEventEmitter() *EventEmitter {
	return &EventEmitter{ob: observable.New()}
}

// NextSeq is the sequence number the next emitted event will carry.
func (e *EventEmitter) NextSeq() uint64 {
	return uint64(len(e.log)) + 1
}

// Since returns the events with Seq > after.
func (e *EventEmitter) Since(after uint64) []Event {
	if after >= uint64(len(e.log)) {
		return []Event{}
	}
	out := make([]Event, len(e.log)-int(after))
	copy(out, e.log[after:])
	return out
}

// Subscribe registers fn for every future event and returns a func that
// removes it.
func (e *EventEmitter) Subscribe(fn func(Event)) func() {
	cb := func(args ...interface{}) {
		for _, arg := range args {
			if ev, ok := arg.(Event); ok {
				fn(ev)
			}
		}
	}
	e.nextID++
	topic := topicPrefix + strconv.Itoa(e.nextID)
	e.ob.On(topic, cb)
	e.topics = append(e.topics, topic)
	return func() {
		e.ob.Off(topic, cb)
		for i, t := range e.topics {
			if t == topic {
				e.topics = append(e.topics[:i], e.topics[i+1:]...)
				break
			}
		}
	}
}

func (e *EventEmitter) emit(ev Event) {
	e.log = append(e.log, ev)
	for _, topic := range e.topics {
		e.ob.Trigger(topic, ev)
	}
}
