package main

import (
	"fmt"
	"strings"
	"testing"

	"github.com/configurik/go-configurik/format"
	"github.com/configurik/go-configurik/gomap"
	"github.com/configurik/go-configurik/parse"

	jsonpatch "github.com/evanphx/json-patch"
)

func loadString(t *testing.T, in string) any {
	t.Helper()
	doc, err := parse.ParseString(in)
	if err != nil {
		t.Fatal(err)
	}
	v, err := gomap.FromIR(doc)
	if err != nil {
		t.Fatal(err)
	}
	return v
}

func TestEvalQuery(t *testing.T) {
	v := loadString(t, "a: 1, b: [x, tag 2], name: \"n\"")
	qts := []struct {
		q    string
		want string
	}{
		{q: "a + 1", want: "2"},
		{q: "len(b)", want: "2"},
		{q: "b[1].tag", want: "2"},
		{q: "name + \"!\"", want: "n!"},
	}
	for _, qt := range qts {
		res, err := evalQuery(qt.q, v)
		if err != nil {
			t.Errorf("%s: %v", qt.q, err)
			continue
		}
		if got := fmt.Sprint(res); got != qt.want {
			t.Errorf("%s: got %s want %s", qt.q, got, qt.want)
		}
	}
}

func TestEvalQuerySuggestion(t *testing.T) {
	v := loadString(t, "name: \"n\", other: 1")
	_, err := evalQuery("nme", v)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), `did you mean "name"?`) {
		t.Errorf("no suggestion in %v", err)
	}
}

func TestClosestKey(t *testing.T) {
	keys := []string{"timeout", "retries", "name"}
	for in, want := range map[string]string{
		"tmout": "timeout",
		"naem":  "name",
		"zzzzz": "",
	} {
		if got := closestKey(in, keys); got != want {
			t.Errorf("%s: got %q want %q", in, got, want)
		}
	}
}

func TestApplyPatch(t *testing.T) {
	v := loadString(t, "a: 1, b: x")
	ops, err := jsonpatch.DecodePatch([]byte(`[{"op": "replace", "path": "/a", "value": 2}]`))
	if err != nil {
		t.Fatal(err)
	}
	before, after, err := applyPatch(ops, v, format.JSONFormat)
	if err != nil {
		t.Fatal(err)
	}
	if want := "{\n  \"a\": 1,\n  \"b\": \"x\"\n}\n"; string(before) != want {
		t.Errorf("before %q", before)
	}
	if want := "{\n  \"a\": 2,\n  \"b\": \"x\"\n}\n"; string(after) != want {
		t.Errorf("after %q", after)
	}
}
