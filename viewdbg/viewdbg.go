/*
Package viewdbg implements helpers to debug a view tree.

Print renders a tree as indented text, ToGraphViz as a GraphViz (DOT) diagram.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>


*/
package viewdbg

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"testing"
	"text/template"

	"github.com/npillmayer/viewsfrom/view"
	"github.com/xlab/treeprint"
)

// Print renders the tree under root, one line per view, showing identifier,
// tag, visibility and runtime type of each view.
func Print(root view.View) string {
	if view.IsNil(root) {
		return "<nil>\n"
	}
	tree := treeprint.NewWithRoot(label(root))
	printChildren(tree, root)
	return tree.String()
}

func printChildren(branch treeprint.Tree, v view.View) {
	g, ok := v.(view.Group)
	if !ok {
		return
	}
	for i := 0; i < g.ChildCount(); i++ {
		ch := g.ChildAt(i)
		if view.IsNil(ch) {
			continue
		}
		if _, isGroup := ch.(view.Group); isGroup {
			printChildren(branch.AddBranch(label(ch)), ch)
		} else {
			branch.AddNode(label(ch))
		}
	}
}

func label(v view.View) string {
	return fmt.Sprintf("#%d %v %s %s", v.ID(), v.Tag(), v.Visibility(), view.TypeOf(v))
}

// Parameters for GraphViz drawing.
type graphParamsType struct {
	Fontname string
	NodeTmpl *template.Template
	EdgeTmpl *template.Template
}

// ToGraphViz outputs a diagram for a view tree. The diagram is in
// GraphViz (DOT) format. Groups are drawn as ellipses, leaves as boxes;
// views which are not visible are drawn with dashed outlines.
func ToGraphViz(root view.View, w io.Writer) error {
	if view.IsNil(root) {
		return view.InvalidArgument("root", "cannot be nil")
	}
	tmpl, err := template.New("views").Parse(graphHeadTmpl)
	if err != nil {
		return err
	}
	gparams := graphParamsType{Fontname: "Helvetica"}
	gparams.NodeTmpl = template.Must(template.New("viewnode").Funcs(
		template.FuncMap{
			"shortstring": shortText,
		}).Parse(viewNodeTmpl))
	gparams.EdgeTmpl = template.Must(template.New("viewedge").Parse(viewEdgeTmpl))
	if err = tmpl.Execute(w, gparams); err != nil {
		return err
	}
	cnt := 0
	if _, err = nodes(root, w, &cnt, &gparams); err != nil {
		return err
	}
	_, err = w.Write([]byte("}\n"))
	return err
}

// Dotty is a helper for testing. Given a view and a testing.T, it will
// create a GraphViz image of the tree under root and write it to a file in
// the current folder, choosing a unique file name.
// The image is in SVG format.
//
// If an error occurs, t.Error(…) will be set, causing the test to fail.
func Dotty(root view.View, t *testing.T) {
	tmpfile, err := os.CreateTemp(".", "views.*.dot")
	if err != nil {
		t.Error(err)
		return
	}
	defer func() {
		tmpfile.Close()
		os.Remove(tmpfile.Name()) // clean up
	}()
	t.Logf("writing view digraph to %s\n", tmpfile.Name())
	if err = ToGraphViz(root, tmpfile); err != nil {
		t.Error(err)
		return
	}
	outOption := fmt.Sprintf("-o%s.svg", tmpfile.Name())
	cmd := exec.Command("dot", "-Tsvg", outOption, tmpfile.Name())
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	t.Logf("writing view tree image to %s.svg\n", tmpfile.Name())
	if err := cmd.Run(); err != nil {
		t.Error(err.Error())
	}
}

type node struct {
	V      view.View
	Name   string
	Group  bool
	Hidden bool
}

type edge struct {
	N1, N2 string
}

// nodes writes v and its subtree and returns the name of v's node.
func nodes(v view.View, w io.Writer, cnt *int, gparams *graphParamsType) (string, error) {
	*cnt++
	name := fmt.Sprintf("node%05d", *cnt)
	g, isGroup := v.(view.Group)
	if err := gparams.NodeTmpl.Execute(w, &node{v, name, isGroup, v.Visibility() != view.Visible}); err != nil {
		return name, err
	}
	if !isGroup {
		return name, nil
	}
	for i := 0; i < g.ChildCount(); i++ {
		ch := g.ChildAt(i)
		if view.IsNil(ch) {
			continue
		}
		chname, err := nodes(ch, w, cnt, gparams)
		if err != nil {
			return name, err
		}
		if err = gparams.EdgeTmpl.Execute(w, edge{name, chname}); err != nil {
			return name, err
		}
	}
	return name, nil
}

func shortText(v view.View) string {
	s := fmt.Sprintf("#%d %v", v.ID(), v.Tag())
	if r := []rune(s); len(r) > 24 {
		s = string(r[:24]) + "..."
	}
	s = strings.ReplaceAll(s, "\n", `\n`)
	s = strings.ReplaceAll(s, "\t", `\t`)
	return fmt.Sprintf("%q", s)
}

// --- Templates --------------------------------------------------------

const graphHeadTmpl = `digraph g {
  graph [labelloc="t" label="" splines=true overlap=false rankdir = "LR"];
  graph [fontname = "{{ .Fontname }}" fontsize=14] ;
   node [fontname = "{{ .Fontname }}" fontsize=14] ;
   edge [fontname = "{{ .Fontname }}" fontsize=14] ;
`

const viewNodeTmpl = `{{ if .Group }}
{{ .Name }}	[ label={{ shortstring .V }} shape=ellipse style="filled{{ if .Hidden }},dashed{{ end }}" fillcolor=lightblue3 ] ;
{{ else }}
{{ .Name }}	[ label={{ shortstring .V }} shape=box style="filled{{ if .Hidden }},dashed{{ end }}" fillcolor=grey95 fontname="Courier" fontsize=11.0 ] ;
{{ end }}
`

const viewEdgeTmpl = `{{ .N1 }} -> {{ .N2 }} [weight=1] ;
`
