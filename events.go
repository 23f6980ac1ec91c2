// Copyright (c) 2026 The Nanocube Authors
// SPDX-License-Identifier: MIT

package nanocube

import "go.uber.org/zap"

// Color is the finite palette a visualization tool uses to highlight nodes
// and links during an insertion.
type Color uint8

const (
	ColorClear Color = iota
	ColorMain
	ColorParallel
	ColorUpstreamCheck
)

func (c Color) String() string {
	switch c {
	case ColorMain:
		return "MAIN"
	case ColorParallel:
		return "PARALLEL"
	case ColorUpstreamCheck:
		return "UPSTREAM_CHECK"
	default:
		return "CLEAR"
	}
}

// EventSink receives the hooks the core emits at well-defined points during
// insertion. The core invokes these hooks but never depends on their
// observable state; a visualization tool, serializer, or test probe can all
// implement EventSink without the Inserter knowing which. Node/content
// identities are passed as the arena-stamped uuid string (see
// internal/arena) so a hook implementation never needs to know node
// internals.
type EventSink interface {
	NewNode(id string, dim, layer int)
	SetChildLink(parent, child string, label Label, linkType LinkType)
	SetContentLink(node, content string, linkType LinkType)
	Store(summaryID string, object any)
	HighlightNode(id string, color Color)
	HighlightChildLink(parentID string, label Label, color Color)
	HighlightContentLink(nodeID string, color Color)
}

// zapEventSink emits every hook as a structured zap.Debug record. It is the
// default EventSink; with a nop logger (the default Nanocube construction)
// every call is effectively free.
type zapEventSink struct {
	log *zap.Logger
}

// NewZapEventSink adapts a *zap.Logger into an EventSink.
func NewZapEventSink(log *zap.Logger) EventSink {
	return &zapEventSink{log: log.Named("nanocube.events")}
}

func (s *zapEventSink) NewNode(id string, dim, layer int) {
	s.log.Debug("new-node", zap.String("id", id), zap.Int("dim", dim), zap.Int("layer", layer))
}

func (s *zapEventSink) SetChildLink(parent, child string, label Label, linkType LinkType) {
	s.log.Debug("set-child-link",
		zap.String("parent", parent), zap.String("child", child),
		zap.Int("label", int(label)), zap.Stringer("link_type", linkType))
}

func (s *zapEventSink) SetContentLink(node, content string, linkType LinkType) {
	s.log.Debug("set-content-link",
		zap.String("node", node), zap.String("content", content), zap.Stringer("link_type", linkType))
}

func (s *zapEventSink) Store(summaryID string, object any) {
	s.log.Debug("store", zap.String("summary", summaryID), zap.Any("object", object))
}

func (s *zapEventSink) HighlightNode(id string, color Color) {
	s.log.Debug("highlight-node", zap.String("id", id), zap.Stringer("color", color))
}

func (s *zapEventSink) HighlightChildLink(parentID string, label Label, color Color) {
	s.log.Debug("highlight-child-link",
		zap.String("parent", parentID), zap.Int("label", int(label)), zap.Stringer("color", color))
}

func (s *zapEventSink) HighlightContentLink(nodeID string, color Color) {
	s.log.Debug("highlight-content-link", zap.String("node", nodeID), zap.Stringer("color", color))
}
