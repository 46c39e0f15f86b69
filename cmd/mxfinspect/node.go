package main

import (
	"fmt"

	"github.com/ugparu/mxfheader/header"
)

// node is one flattened row of the object-graph tree: Preface ->
// ContentStorage -> packages -> tracks -> sequences -> clips. depth is
// shown in the detail pane (rows are not indented); label is what the
// list and fuzzy filter show.
type node struct {
	label    string
	depth    int
	detail   string
}

// FilterValue satisfies bubbles/list.Item — the string fuzzy-matched
// against the "/" filter.
func (n node) FilterValue() string { return n.label }

// Title and Description satisfy bubbles/list.DefaultItem.
func (n node) Title() string       { return n.label }
func (n node) Description() string { return n.detail }

// buildTree flattens hp's resolved object graph into a slice of rows,
// one per rich object, grouped by class in a fixed order (Preface,
// ContentStorage, MaterialPackage, SourcePackage, TimelineTrack,
// Sequence, SourceClip, EssenceContainerData, then the essence
// descriptors); within a group, rows follow the facade's construction
// order.
func buildTree(hp *header.HeaderPartition) []node {
	var rows []node

	if p := hp.Preface(); p != nil {
		rows = append(rows, node{
			label:  fmt.Sprintf("Preface %s", short(p.InstanceUID().Hex())),
			depth:  0,
			detail: "root of the object graph",
		})
	}

	for _, cs := range hp.ContentStorageList() {
		rows = append(rows, node{
			label:  fmt.Sprintf("ContentStorage %s", short(cs.InstanceUID().Hex())),
			depth:  1,
			detail: fmt.Sprintf("%d packages, %d essence container entries", len(cs.Packages), len(cs.EssenceContainerData)),
		})
	}

	for _, mp := range hp.MaterialPackages() {
		rows = append(rows, node{
			label:  fmt.Sprintf("MaterialPackage %s", short(mp.InstanceUID().Hex())),
			depth:  2,
			detail: fmt.Sprintf("package UID %s, %d tracks", short(mp.PackageUID().Hex()), len(mp.Tracks)),
		})
	}

	for _, sp := range hp.SourcePackages() {
		rows = append(rows, node{
			label:  fmt.Sprintf("SourcePackage %s", short(sp.InstanceUID().Hex())),
			depth:  2,
			detail: fmt.Sprintf("package UID %s, %d tracks", short(sp.PackageUID().Hex()), len(sp.Tracks)),
		})
	}

	for _, t := range hp.TimelineTracks() {
		rows = append(rows, node{
			label:  fmt.Sprintf("TimelineTrack %s", short(t.InstanceUID().Hex())),
			depth:  3,
			detail: "track",
		})
	}

	for _, s := range hp.Sequences() {
		rows = append(rows, node{
			label:  fmt.Sprintf("Sequence %s", short(s.InstanceUID().Hex())),
			depth:  4,
			detail: fmt.Sprintf("%d structural components", len(s.Components)),
		})
	}

	for _, clip := range hp.SourceClips() {
		rows = append(rows, node{
			label:  fmt.Sprintf("SourceClip %s", short(clip.InstanceUID().Hex())),
			depth:  5,
			detail: "structural component",
		})
	}

	for _, ecd := range hp.EssenceContainerDataList() {
		rows = append(rows, node{
			label:  fmt.Sprintf("EssenceContainerData %s", short(ecd.InstanceUID().Hex())),
			depth:  1,
			detail: "essence container data",
		})
	}

	for _, d := range hp.CDCIPictureEssenceDescriptors() {
		rows = append(rows, node{
			label:  fmt.Sprintf("CDCIPictureEssenceDescriptor %s", short(d.InstanceUID().Hex())),
			depth:  3,
			detail: "picture essence descriptor",
		})
	}
	for _, d := range hp.RGBAPictureEssenceDescriptors() {
		rows = append(rows, node{
			label:  fmt.Sprintf("RGBAPictureEssenceDescriptor %s", short(d.InstanceUID().Hex())),
			depth:  3,
			detail: "picture essence descriptor",
		})
	}
	for _, d := range hp.WaveAudioEssenceDescriptors() {
		rows = append(rows, node{
			label:  fmt.Sprintf("WaveAudioEssenceDescriptor %s", short(d.InstanceUID().Hex())),
			depth:  3,
			detail: "sound essence descriptor",
		})
	}

	return rows
}

func short(hex string) string {
	if len(hex) <= 12 {
		return hex
	}
	return hex[:12] + "…"
}
