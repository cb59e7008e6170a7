package main

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/e11jah/bst"
)

type options struct {
	count   int
	max     int
	inserts int
	seed    int64
	plain   bool
}

func defaultOptions() *options {
	return &options{
		count:   15,
		max:     100,
		inserts: 5,
	}
}

func (o *options) validate() error {
	if o.count < 0 {
		return fmt.Errorf("--count must not be negative, got %d", o.count)
	}
	if o.max < 1 {
		return fmt.Errorf("--max must be at least 1, got %d", o.max)
	}
	if o.inserts < 0 {
		return fmt.Errorf("--inserts must not be negative, got %d", o.inserts)
	}
	return nil
}

func run(w io.Writer, opts *options) error {
	seed := opts.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	values := make([]int, opts.count)
	for i := range values {
		values[i] = rng.Intn(opts.max) + 1
	}

	p := newPrinter(w, opts.plain)
	tree := bst.New(values...)
	p.heading(fmt.Sprintf("Tree of %d values (seed %d)", tree.Size(), seed))
	p.report(tree, true)

	for i := 0; i < opts.inserts; i++ {
		tree.Insert(opts.max + 1 + rng.Intn(opts.max))
	}
	p.heading(fmt.Sprintf("After %d inserts above %d", opts.inserts, opts.max))
	p.report(tree, false)

	tree.Rebalance()
	p.heading("Rebalanced")
	p.report(tree, true)

	if p.err != nil {
		return fmt.Errorf("writing output: %w", p.err)
	}
	return nil
}

// printer keeps the first write error so the report reads top to bottom.
type printer struct {
	w     io.Writer
	title lipgloss.Style
	label lipgloss.Style
	plain bool
	err   error
}

func newPrinter(w io.Writer, plain bool) *printer {
	return &printer{
		w:     w,
		title: lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true),
		label: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		plain: plain,
	}
}

func (p *printer) style(s lipgloss.Style, text string) string {
	if p.plain {
		return text
	}
	return s.Render(text)
}

func (p *printer) printf(format string, args ...interface{}) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (p *printer) heading(text string) {
	p.printf("\n%s\n", p.style(p.title, text))
}

func (p *printer) report(tree bst.Tree[int], traversals bool) {
	if p.err == nil {
		p.err = tree.Fprint(p.w)
	}
	p.printf("%s %t\n", p.style(p.label, "Balanced?"), tree.Balanced())
	p.printf("%s %d\n", p.style(p.label, "Height:"), tree.Height())
	if !traversals {
		return
	}

	for _, order := range []bst.Order{bst.LevelOrder, bst.PreOrder, bst.PostOrder, bst.InOrder} {
		p.printf("%s", p.style(p.label, order.String()+":"))
		tree.Walk(order, func(n bst.Node[int]) bool {
			p.printf(" %d", n.Value())
			return p.err == nil
		})
		p.printf("\n")
	}
}
