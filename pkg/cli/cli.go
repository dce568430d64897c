package cli

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/kyzipstar6/imageeditor/pkg/segment"
)

func usage() {
	fmt.Println("Commands available:")
	fmt.Println("  /  - select and apply an editing command")
	fmt.Println("  o  - open another image at runtime")
	fmt.Println("  s  - save current image")
	fmt.Println("  m  - preview the last mask (red background / green foreground)")
	fmt.Println("  z  - undo")
	fmt.Println("  y  - redo")
	fmt.Println("  u  - check for updates")
	fmt.Println("  h  - show this help message")
	fmt.Println("  q  - quit")
}

// pickCommand resolves a command name, preferring fzf and falling back to a
// numbered textual list. Returns "" when the user cancels.
func pickCommand() string {
	name, err := SelectCommandWithFzf(segment.Commands)
	if err == nil && name != "" {
		return name
	}
	fmt.Println("Command selection (fallback):")
	for i, c := range segment.Commands {
		fmt.Printf("  %d) %s - %s\n", i+1, c.Name, c.Description)
	}
	selection, _ := PromptLine("Enter number or command name (leave empty to cancel): ")
	if selection == "" {
		return ""
	}
	if idx, perr := strconv.Atoi(selection); perr == nil {
		if idx < 1 || idx > len(segment.Commands) {
			fmt.Println("invalid selection")
			return ""
		}
		return segment.Commands[idx-1].Name
	}
	selLower := strings.ToLower(selection)
	for _, c := range segment.Commands {
		if strings.ToLower(c.Name) == selLower {
			return c.Name
		}
	}
	var matches []string
	for _, c := range segment.Commands {
		if strings.HasPrefix(strings.ToLower(c.Name), selLower) {
			matches = append(matches, c.Name)
		}
	}
	if len(matches) == 1 {
		return matches[0]
	}
	if len(matches) > 1 {
		fmt.Println("ambiguous selection, candidates:")
		for _, m := range matches {
			fmt.Println("  " + m)
		}
		return ""
	}
	fmt.Printf("unknown command: %s\n", selection)
	return ""
}

// openInto loads a file into the editor, resetting session history.
func openInto(ed *segment.Editor, path string) (string, error) {
	img, format, err := LoadImage(path)
	if err != nil {
		return "", err
	}
	if err := ed.Load(img); err != nil {
		return "", err
	}
	return format, nil
}

// RunCLI drives the interactive background-removal session. An optional
// image path may be given as the first program argument.
func RunCLI() {
	var inputImagePath string
	if len(os.Args) >= 2 {
		inputImagePath = os.Args[1]
	}

	store := NewMetaStore(segment.Commands)
	ed := segment.NewEditor()
	var currentFormat string

	if inputImagePath != "" {
		format, err := openInto(ed, inputImagePath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to read image %s: %v\n", inputImagePath, err)
			os.Exit(1)
		}
		currentFormat = format
		// Preview is optional; ignore errors in terminals without support.
		_ = PreviewImage(ed.Current(), currentFormat)
		if info, ierr := GetImageInfo(ed.Current(), currentFormat); ierr == nil {
			fmt.Println(info)
		}
	}

	fmt.Println("Interactive Background Remover")
	usage()

	reader := bufio.NewReader(os.Stdin)
	for {
		fmt.Print("> ")
		r, _, err := reader.ReadRune()
		if err != nil {
			fmt.Fprintf(os.Stderr, "read input error: %v\n", err)
			continue
		}

		switch r {
		case '/':
			if ed.Current() == nil {
				fmt.Println("No image loaded. Press 'o' to open an image first, or provide an image path as the first argument.")
				continue
			}
			commandName := pickCommand()
			if commandName == "" {
				continue
			}

			tooltip, terr := store.GetTooltip(commandName)
			if terr != nil {
				fmt.Fprintf(os.Stderr, "%v\n", terr)
				continue
			}
			fmt.Println("\n" + tooltip + "\n")

			c := store.byName[commandName]
			rawArgs := make([]string, len(c.Args))
			for i, p := range c.Args {
				prompt := fmt.Sprintf("%s (%s): ", p.Name, p.Type)
				val, perr := PromptLine(prompt)
				if perr != nil {
					fmt.Fprintf(os.Stderr, "input error: %v\n", perr)
					val = ""
				}
				rawArgs[i] = val
			}

			normArgs, err := NormalizeArgs(store, commandName, rawArgs)
			if err != nil {
				fmt.Fprintf(os.Stderr, "input validation error: %v\n", err)
				fmt.Println("aborting command due to input errors")
				continue
			}

			out, status, err := segment.ApplyCommand(ed, commandName, normArgs)
			if err != nil {
				fmt.Fprintf(os.Stderr, "apply command error: %v\n", err)
				continue
			}
			fmt.Println(status)
			if out != nil {
				_ = PreviewImage(out, currentFormat)
			}
			continue

		case 's':
			if ed.Current() == nil {
				fmt.Println("no image loaded")
				continue
			}
			out, _ := PromptLine("Enter output filename: ")
			if out == "" {
				fmt.Println("no filename provided")
				continue
			}
			if err := SaveImage(out, ed.Current()); err != nil {
				fmt.Fprintf(os.Stderr, "failed to write image: %v\n", err)
				continue
			}
			fmt.Printf("Saved to %s\n", out)

		case 'o':
			newPath, perr := PromptLineOrFzf("Enter path to image to open (or '/' to use fzf, leave empty to cancel): ")
			if perr != nil || newPath == "" {
				fmt.Println("open cancelled")
				continue
			}
			format, err := openInto(ed, newPath)
			if err != nil {
				fmt.Fprintf(os.Stderr, "failed to read image %s: %v\n", newPath, err)
				continue
			}
			currentFormat = format
			fmt.Printf("Opened %s\n", newPath)
			_ = PreviewImage(ed.Current(), currentFormat)
			if info, ierr := GetImageInfo(ed.Current(), currentFormat); ierr == nil {
				fmt.Println(info)
			}
			continue

		case 'm':
			dbg, err := ed.MaskDebug()
			if err != nil {
				fmt.Fprintf(os.Stderr, "mask preview error: %v\n", err)
				continue
			}
			_ = PreviewImage(dbg, "png")
			continue

		case 'z':
			if !ed.Undo() {
				fmt.Println("nothing to undo")
				continue
			}
			fmt.Println("undid last edit")
			_ = PreviewImage(ed.Current(), currentFormat)
			continue

		case 'y':
			if !ed.Redo() {
				fmt.Println("nothing to redo")
				continue
			}
			fmt.Println("redid last undone edit")
			_ = PreviewImage(ed.Current(), currentFormat)
			continue

		case 'u':
			if err := CheckForUpdates(); err != nil {
				fmt.Fprintf(os.Stderr, "update check error: %v\n", err)
			}
			continue

		case 'h':
			usage()
			continue

		case 'q':
			fmt.Println("Exiting...")
			return

		default:
			// ignore other keys
		}
	}
}
