// Package gloss provides a CLI-based English dictionary lookup tool.
// It fetches definitions and etymologies from remote sources, converts
// them to clean plain text via pandoc, and caches results locally so a
// repeated lookup never touches the network.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, goquery/, pandoc/).
package gloss
