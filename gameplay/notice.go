package gameplay

import (
	"github.com/lixenwraith/void-trader/core"
	"github.com/lixenwraith/void-trader/vmath"
)

// NoticeKind classifies gameplay outcomes surfaced to audio and HUD
type NoticeKind uint8

const (
	NoticeCargoHit NoticeKind = iota
	NoticeShieldHit
	NoticeHullHit
	NoticeSectionDestroyed
	NoticePickup
	NoticeJammerDeployed
	NoticeShipDestroyed
)

var noticeNames = [...]string{
	NoticeCargoHit:         "cargo_hit",
	NoticeShieldHit:        "shield_hit",
	NoticeHullHit:          "hull_hit",
	NoticeSectionDestroyed: "section_destroyed",
	NoticePickup:           "pickup",
	NoticeJammerDeployed:   "jammer_deployed",
	NoticeShipDestroyed:    "ship_destroyed",
}

func (k NoticeKind) String() string {
	if int(k) < len(noticeNames) {
		return noticeNames[k]
	}
	return "unknown"
}

// Notice records one outcome of a frame
type Notice struct {
	Kind   NoticeKind
	Entity core.Entity // Entity the outcome happened to
	Point  vmath.Vec2
}

// Notices is a frame-owned list, reset before every simulation tick
type Notices struct {
	list []Notice
}

func (n *Notices) Reset() {
	n.list = n.list[:0]
}

func (n *Notices) Push(kind NoticeKind, e core.Entity, p vmath.Vec2) {
	n.list = append(n.list, Notice{Kind: kind, Entity: e, Point: p})
}

// All returns the frame's notices, valid until the next Reset
func (n *Notices) All() []Notice {
	return n.list
}

// Count returns the number of notices of kind
func (n *Notices) Count(kind NoticeKind) int {
	c := 0
	for _, nt := range n.list {
		if nt.Kind == kind {
			c++
		}
	}
	return c
}
