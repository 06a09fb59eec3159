package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/youruser/certgen/internal/batch"
	"github.com/youruser/certgen/internal/render"
)

const usage = `Usage:
  certgen <image> <names_file> <x> <y> [font_path] [font_size]
  certgen <image> <names_file> <name_x> <name_y> <name_size> <event_text> <event_x> <event_y> <event_size> <rank_text> <rank_x> <rank_y> <rank_size>

Example:
  certgen template.jpg names.txt 500 300 Arial.ttf 36`

func main() {
	p, ok := parseArgs(os.Args[1:])
	if !ok {
		fmt.Println(usage)
		return
	}
	if _, err := batch.Run(p); err != nil {
		fmt.Println("Error processing names file:", err)
	}
}

func parseArgs(args []string) (batch.Params, bool) {
	switch {
	case len(args) == 13:
		return parseThreeFieldForm(args)
	case len(args) >= 4 && len(args) <= 6:
		return parseSingleFieldForm(args)
	}
	return batch.Params{}, false
}

// parseSingleFieldForm handles the original form: one text field (the
// recipient name) with an optional font path and size.
func parseSingleFieldForm(args []string) (batch.Params, bool) {
	x, errX := strconv.Atoi(args[2])
	y, errY := strconv.Atoi(args[3])
	if errX != nil || errY != nil {
		return batch.Params{}, false
	}

	p := batch.Params{
		TemplatePath: args[0],
		NamesPath:    args[1],
		Name:         batch.Placement{X: x, Y: y, Size: 30},
	}
	if len(args) >= 5 {
		p.FontPath = args[4]
	}
	if len(args) >= 6 {
		size, err := strconv.Atoi(args[5])
		if err != nil {
			return batch.Params{}, false
		}
		p.Name.Size = float64(size)
		fmt.Printf("Using font size: %d\n", size)
	}
	return p, true
}

// parseThreeFieldForm handles the extended form: the recipient name plus an
// event label and a rank label, each with its own position and size.
func parseThreeFieldForm(args []string) (batch.Params, bool) {
	ints := make(map[int]int)
	for _, i := range []int{2, 3, 4, 6, 7, 8, 10, 11, 12} {
		v, err := strconv.Atoi(args[i])
		if err != nil {
			return batch.Params{}, false
		}
		ints[i] = v
	}

	return batch.Params{
		TemplatePath: args[0],
		NamesPath:    args[1],
		Name:         batch.Placement{X: ints[2], Y: ints[3], Size: float64(ints[4])},
		Extras: []render.Label{
			{Text: args[5], X: ints[6], Y: ints[7], Size: float64(ints[8])},
			{Text: args[9], X: ints[10], Y: ints[11], Size: float64(ints[12])},
		},
	}, true
}
