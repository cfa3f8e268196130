// Package ast holds the arena-backed program tree of one glassful source file.
//
// Nodes are addressed by 1-based typed IDs; kind-specific data lives in
// per-kind payload arenas reached through the node's Payload field.
// The Walk* functions dispatch nodes to visitor interfaces that enumerate
// every kind, so consumers that implement them handle all variants.
package ast
