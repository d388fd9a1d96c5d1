package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	j "github.com/goccy/go-json"

	treema "github.com/reoring/treema"
	"github.com/reoring/treema/source"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	sub := os.Args[1]
	switch sub {
	case "leaves":
		leavesCmd(os.Args[2:])
	case "count":
		countCmd(os.Args[2:])
	case "zip":
		zipCmd(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "treema CLI\n\nUsage:\n  treema leaves -in doc.(json|yaml)\n  treema count -in doc.(json|yaml)\n  treema zip -left a.json -right b.json\n\nNotes:\n  - zip pairs the two documents leaf by leaf into [left, right] tuples,\n    keeping the left document's shape, and prints the result as JSON.")
}

func leavesCmd(args []string) {
	fs := flag.NewFlagSet("leaves", flag.ExitOnError)
	var in string
	fs.StringVar(&in, "in", "", "input document (json or yaml)")
	_ = fs.Parse(args)
	if in == "" {
		fs.Usage()
		os.Exit(2)
	}
	tree := loadTree(in)
	ls, err := treema.Leaves(tree)
	if err != nil {
		fatal(err)
	}
	for _, leaf := range ls {
		b, err := j.Marshal(leaf)
		if err != nil {
			fatal(err)
		}
		fmt.Println(string(b))
	}
}

func countCmd(args []string) {
	fs := flag.NewFlagSet("count", flag.ExitOnError)
	var in string
	fs.StringVar(&in, "in", "", "input document (json or yaml)")
	_ = fs.Parse(args)
	if in == "" {
		fs.Usage()
		os.Exit(2)
	}
	tree := loadTree(in)
	n, err := treema.Reduce(tree, 0, func(_ any, acc int) (int, error) { return acc + 1, nil })
	if err != nil {
		fatal(err)
	}
	fmt.Println(n)
}

func zipCmd(args []string) {
	fs := flag.NewFlagSet("zip", flag.ExitOnError)
	var left, right string
	fs.StringVar(&left, "left", "", "left document (json or yaml)")
	fs.StringVar(&right, "right", "", "right document (json or yaml)")
	_ = fs.Parse(args)
	if left == "" || right == "" {
		fs.Usage()
		os.Exit(2)
	}
	lt := loadTree(left)
	rt := loadTree(right)
	out, err := treema.ZipWith(lt, rt, func(l, r any) (any, error) {
		return []any{l, r}, nil
	})
	if err != nil {
		fatal(err)
	}
	b, err := j.Marshal(out)
	if err != nil {
		fatal(err)
	}
	fmt.Println(string(b))
}

func loadTree(path string) any {
	data, err := os.ReadFile(path)
	if err != nil {
		fatal(err)
	}
	var tree any
	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		tree, err = source.YAMLBytes(data)
	} else {
		tree, err = source.JSONBytes(data)
	}
	if err != nil {
		fatal(err)
	}
	return tree
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "treema:", err)
	os.Exit(1)
}
