package bintree

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestPrintSideways(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arbin.bintree")
	defer teardown()
	//
	tree := createTreeForTest()
	defer tree.Release()
	expected := "==== Tree =====\n" +
		"    4\n" +
		" 5\n" +
		"    3\n" +
		"        1\n" +
		"===============\n"
	if s := tree.String(); s != expected {
		t.Errorf("unexpected rendering:\n%s\nexpected:\n%s", s, expected)
	}
}

func TestPrintEmpty(t *testing.T) {
	expected := "==== Tree =====\n===============\n"
	if s := Empty[int]().String(); s != expected {
		t.Errorf("unexpected rendering of empty tree: %q", s)
	}
	if s := Empty[int]().Sketch(); s != "∅\n" {
		t.Errorf("unexpected sketch of empty tree: %q", s)
	}
}

func TestPrintSketch(t *testing.T) {
	tree := createTreeForTest()
	defer tree.Release()
	s := tree.Sketch()
	t.Logf("tree =\n%s", s)
	for _, v := range []string{"5", "3", "1", "4", emptyMark} {
		if !strings.Contains(s, v) {
			t.Errorf("expected sketch to contain %q", v)
		}
	}
}
