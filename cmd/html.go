package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/EmirMurat6606/SuguruMeister/internal/generator"
	"github.com/EmirMurat6606/SuguruMeister/internal/grid"
)

// writeHTML renders puzzles (and their solutions) into a printable HTML
// booklet, one puzzle per page. Region boundaries are drawn as thick cell
// borders, computed per cell from the layout.
func writeHTML(filename string, puzzles []*generator.Puzzle) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create HTML file: %w", err)
	}
	defer file.Close()

	_, err = fmt.Fprint(file, `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Suguru Puzzles</title>
    <style>
        body {
            font-family: Arial, sans-serif;
            max-width: 800px;
            margin: 0 auto;
            padding: 20px;
            background-color: #f5f5f5;
        }
        .page {
            page-break-after: always;
            background-color: white;
            padding: 40px;
            margin-bottom: 20px;
            box-shadow: 0 2px 4px rgba(0,0,0,0.1);
        }
        .page:last-child {
            page-break-after: auto;
        }
        h1 {
            color: #333;
            margin-bottom: 30px;
            text-align: center;
        }
        h2 {
            color: #666;
            margin-top: 20px;
            margin-bottom: 15px;
            font-size: 1.2em;
        }
        .suguru-grid {
            display: inline-block;
            border: 3px solid #000;
            margin: 20px auto;
            font-size: 24px;
        }
        .suguru-grid table {
            border-collapse: collapse;
            margin: 0 auto;
        }
        .suguru-grid td {
            width: 40px;
            height: 40px;
            text-align: center;
            vertical-align: middle;
            padding: 0;
        }
        .suguru-grid td.blank {
            color: #ccc;
        }
        @media print {
            body {
                background-color: white;
            }
            .page {
                margin-bottom: 0;
                box-shadow: none;
            }
        }
    </style>
</head>
<body>
`)
	if err != nil {
		return err
	}

	for i, p := range puzzles {
		_, err = fmt.Fprintf(file, `    <div class="page">
        <h1>Suguru #%d — %s (%s)</h1>
        <h2>Puzzle</h2>
        %s
        <h2>Solution</h2>
        %s
    </div>
`, i+1, fmt.Sprintf("%dx%d", p.Rows(), p.Cols()), p.Difficulty(), puzzleToHTML(p, false), puzzleToHTML(p, true))
		if err != nil {
			return err
		}
	}

	_, err = fmt.Fprint(file, "</body>\n</html>\n")
	return err
}

// puzzleToHTML renders one grid as an HTML table. Borders between cells of
// different regions (and on the grid rim) are thick; borders within a
// region are thin.
func puzzleToHTML(p *generator.Puzzle, solution bool) string {
	layout := p.Layout()
	var sb strings.Builder
	sb.WriteString("<div class=\"suguru-grid\"><table>")

	for row := 0; row < layout.Rows; row++ {
		sb.WriteString("<tr>")
		for col := 0; col < layout.Cols; col++ {
			pos := layout.Pos(row, col)

			val := p.Value(pos)
			cellClass := ""
			if solution {
				val = p.Solution(pos)
			} else if val == grid.EmptyCell {
				cellClass = "blank"
			}
			content := "&nbsp;"
			if val != grid.EmptyCell {
				content = fmt.Sprintf("%d", val)
			}

			sb.WriteString(fmt.Sprintf("<td class=%q style=%q>%s</td>",
				cellClass, cellBorders(layout, row, col), content))
		}
		sb.WriteString("</tr>")
	}

	sb.WriteString("</table></div>")
	return sb.String()
}

// cellBorders builds the inline border style of a cell: thick where the
// neighbor belongs to a different region or lies outside the grid.
func cellBorders(layout *grid.Layout, row, col int) string {
	region := layout.Region(layout.Pos(row, col))
	width := func(nbRow, nbCol int) string {
		nb := layout.Pos(nbRow, nbCol)
		if nb < 0 || layout.Region(nb) != region {
			return "2px"
		}
		return "1px"
	}
	return fmt.Sprintf("border-top:%s solid #000;border-bottom:%s solid #000;border-left:%s solid #000;border-right:%s solid #000",
		width(row-1, col), width(row+1, col), width(row, col-1), width(row, col+1))
}
