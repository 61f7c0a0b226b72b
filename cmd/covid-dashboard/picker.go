package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"

	"golang.org/x/term"
)

// pickLocation lets the user move through the locations with arrow keys and press Enter to
// show the selected location. Esc or Ctrl-C quits.
func pickLocation(locations []string, show func(string)) error {
	if len(locations) == 0 {
		return errors.New("the dataset contains no locations")
	}

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("interactive selection not supported on this terminal: %w", err)
	}
	defer func() { _ = term.Restore(fd, oldState) }()

	reader := bufio.NewReader(os.Stdin)
	selected := 0

	redraw := func() {
		// leave room for the help line
		visible := len(locations)
		if _, height, err := term.GetSize(fd); err == nil && height > 1 && height-1 < visible {
			visible = height - 1
		}
		first := selected - visible/2
		if first < 0 {
			first = 0
		}
		if first+visible > len(locations) {
			first = len(locations) - visible
		}

		// Clear screen (ANSI reset to top + clear screen)
		fmt.Print("\033[H\033[2J")
		for i := first; i < first+visible; i++ {
			prefix := "  "
			if i == selected {
				prefix = "> "
			}
			// raw mode needs an explicit carriage return
			fmt.Print(prefix + locations[i] + "\r\n")
		}
		fmt.Print("(↑/↓ to navigate, Enter to show, Esc to quit)")
	}

	move := func(delta int) {
		next := selected + delta
		if next >= 0 && next < len(locations) {
			selected = next
			redraw()
		}
	}

	choose := func() error {
		// restore cooked mode before rendering
		_ = term.Restore(fd, oldState)
		fmt.Print("\033[H\033[2J")
		show(locations[selected])

		fmt.Print("\n(press Enter to return)")
		_, _ = reader.ReadBytes('\n')

		oldState, err = term.MakeRaw(fd)
		if err != nil {
			return err
		}
		reader = bufio.NewReader(os.Stdin)
		redraw()
		return nil
	}

	redraw()

	for {
		b1, err := reader.ReadByte()
		if err != nil {
			return nil
		}

		switch b1 {
		case 27: // ESC or ANSI sequence
			if reader.Buffered() == 0 {
				fmt.Print("\r\n")
				return nil
			}
			b2, _ := reader.ReadByte()
			if b2 != '[' || reader.Buffered() == 0 {
				continue
			}
			b3, _ := reader.ReadByte()
			switch b3 {
			case 'A': // up
				move(-1)
			case 'B': // down
				move(1)
			case '5': // page up, ESC [ 5 ~
				_, _ = reader.ReadByte()
				move(-10)
			case '6': // page down
				_, _ = reader.ReadByte()
				move(10)
			}
		case '\r', '\n': // Enter
			if err := choose(); err != nil {
				return err
			}
		case 3: // Ctrl-C
			fmt.Print("\r\n")
			return nil
		}
	}
}
