// Package segment: authoritative registry of editor commands.
//
// This file mirrors the commands implemented in ApplyCommand in
// pkg/segment/engine.go. Keep this list up-to-date when you add or modify
// commands so callers (CLI, docs, help text) can read a single source of
// truth.

package segment

// ArgSpec describes a single argument for a command. Fields are textual and
// intended for help/validation UI rather than machine-enforced typing.
type ArgSpec struct {
	Name        string // human name
	Type        string // "int", "bool", "string", "points", etc.
	Required    bool
	Default     string // textual default (for help only)
	Description string
}

// CommandSpec defines a single command and its expected arguments.
type CommandSpec struct {
	Name        string
	Args        []ArgSpec
	Usage       string // short usage string
	Description string // brief description
}

// Commands is the authoritative list of commands implemented by the editor
// engine. Keep this synchronized with ApplyCommand in pkg/segment/engine.go.
var Commands = []CommandSpec{
	{
		Name:        "removeBackground",
		Args:        []ArgSpec{{"tolerance", "int", false, "60", "color tolerance 0-200"}},
		Usage:       "removeBackground [tolerance]",
		Description: "Flood-fill background from the four corners and cut it transparent.",
	},
	{
		Name: "seedCrop",
		Args: []ArgSpec{
			{"x", "int", true, "", "seed pixel x"},
			{"y", "int", true, "", "seed pixel y"},
			{"tolerance", "int", false, "60", "color tolerance 0-200"},
		},
		Usage:       "seedCrop <x> <y> [tolerance]",
		Description: "Keep the connected region around the seed pixel; everything else turns transparent.",
	},
	{
		Name: "shapeCrop",
		Args: []ArgSpec{
			{"points", "points", true, "", "closed path as x,y pairs, e.g. \"10,10 60,12 55,70\""},
			{"tolerance", "int", false, "60", "color tolerance 0-200"},
		},
		Usage:       "shapeCrop <points> [tolerance]",
		Description: "Rasterize a drawn closed path; edge pixels inside it seed refining flood fills.",
	},
	{
		Name: "restrict",
		Args: []ArgSpec{
			{"x", "int", true, "", "region x"},
			{"y", "int", true, "", "region y"},
			{"width", "int", true, "", "region width (0 = no constraint)"},
			{"height", "int", true, "", "region height (0 = no constraint)"},
		},
		Usage:       "restrict <x> <y> <width> <height>",
		Description: "Confine the current result to a rectangle; outside it the source shows through.",
	},
	{
		Name:        "detectSeeds",
		Args:        []ArgSpec{},
		Usage:       "detectSeeds",
		Description: "Scan a coarse grid and report high-contrast candidate seed points.",
	},
	{
		Name:        "maskAlpha",
		Args:        []ArgSpec{},
		Usage:       "maskAlpha",
		Description: "Render the most recent mask as an alpha cut-out of the source (non-destructive).",
	},
	{
		Name:        "maskDebug",
		Args:        []ArgSpec{},
		Usage:       "maskDebug",
		Description: "Render the most recent mask translucent red/green for inspection (non-destructive).",
	},
	{
		Name:        "revert",
		Args:        []ArgSpec{},
		Usage:       "revert",
		Description: "Show the untouched source image again (undoable).",
	},
	{
		Name:        "undo",
		Args:        []ArgSpec{},
		Usage:       "undo",
		Description: "Step back one edit (up to 15).",
	},
	{
		Name:        "redo",
		Args:        []ArgSpec{},
		Usage:       "redo",
		Description: "Step forward one undone edit.",
	},
}
