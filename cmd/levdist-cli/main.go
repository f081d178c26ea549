// Command levdist-cli prints the edit distance between two texts.
//
// Usage:
//
//	levdist-cli kitten sitting
//	levdist-cli -fast -json kitten sitting
//	levdist-cli -f pairs.tsv
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/Alfex4936/levdist/internal/util"
	"github.com/Alfex4936/levdist/levdist"
)

func main() {
	file := flag.String("f", "", "tab-separated pairs file to read instead of args")
	fast := flag.Bool("fast", false, "byte-wise comparison (overcounts multi-byte characters)")
	asJSON := flag.Bool("json", false, "print the full result as JSON")
	flag.Parse()

	if *file != "" {
		runPairs(*file, *fast)
		return
	}

	args := flag.Args()
	if len(args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: levdist-cli [-fast] [-json] A B   |   levdist-cli [-fast] -f pairs.tsv")
		os.Exit(2)
	}

	res := levdist.Compute(args[0], args[1], *fast)
	if *asJSON {
		out, err := util.MarshalIndent(res)
		must(err)
		fmt.Println(string(out))
		return
	}
	fmt.Println(res.Distance)
}

// runPairs reads one a<TAB>b pair per line and renders a distance table.
func runPairs(path string, fast bool) {
	f, err := os.Open(path)
	must(err)
	defer f.Close()

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"a", "b", "distance"})
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 3, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})

	sc := bufio.NewScanner(f)
	line := 0
	for sc.Scan() {
		line++
		raw := sc.Text()
		if raw == "" {
			continue
		}
		a, b, ok := strings.Cut(raw, "\t")
		if !ok {
			fmt.Fprintf(os.Stderr, "levdist-cli: %s:%d: expected a<TAB>b\n", path, line)
			os.Exit(1)
		}
		tw.AppendRow(table.Row{a, b, levdist.Distance(a, b, fast)})
	}
	must(sc.Err())

	fmt.Println(tw.Render())
}

func must(err error) {
	if err != nil {
		fmt.Fprintln(os.Stderr, "levdist-cli:", err)
		os.Exit(1)
	}
}
