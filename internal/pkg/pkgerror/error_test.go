package pkgerror

import (
	"errors"
	"net/http"
	"strconv"
	"testing"
)

func TestNewDefaults(t *testing.T) {
	err := New("boom")
	if got := GetType(err); got != Unclassified {
		t.Fatalf("expected unclassified type, got %q", got)
	}
	if _, ok := GetContext(err); ok {
		t.Fatalf("expected no context on fresh error")
	}
	if got := err.Error(); got != "boom" {
		t.Fatalf("unexpected message: %q", got)
	}
}

func TestTypedNew(t *testing.T) {
	err := NotFound.New("missing")
	if got := GetType(err); got != NotFound {
		t.Fatalf("expected not found type, got %q", got)
	}

	err = Newf("count %d", 3)
	if got := err.Error(); got != "count 3" {
		t.Fatalf("unexpected formatted message: %q", got)
	}
}

func TestWrapKeepsType(t *testing.T) {
	err := Wrap(Conflict.New("dup"), "saving user")
	if got := GetType(err); got != Conflict {
		t.Fatalf("expected sticky conflict type, got %q", got)
	}
	if got := err.Error(); got != "saving user: dup" {
		t.Fatalf("unexpected cumulative message: %q", got)
	}
}

func TestWrapForeignIsUnclassified(t *testing.T) {
	root := errors.New("disk full")
	err := Wrapf(root, "persisting result %d", 7)
	if got := GetType(err); got != Unclassified {
		t.Fatalf("expected unclassified type, got %q", got)
	}
	if got := err.Error(); got != "persisting result 7: disk full" {
		t.Fatalf("unexpected cumulative message: %q", got)
	}
	if !errors.Is(err, root) {
		t.Fatalf("expected wrapped root to remain reachable")
	}
}

func TestTypedWrapOverridesType(t *testing.T) {
	err := BadRequest.Wrap(NotFound.New("missing"), "validating")
	if got := GetType(err); got != BadRequest {
		t.Fatalf("expected override to bad request, got %q", got)
	}
}

func TestWrapDoesNotMutateWrapped(t *testing.T) {
	inner := NotFound.New("missing")
	_ = BadRequest.Wrap(inner, "outer")
	_ = AddContext(inner, "id", "nope")

	if got := GetType(inner); got != NotFound {
		t.Fatalf("inner type changed: %q", got)
	}
	if _, ok := GetContext(inner); ok {
		t.Fatalf("inner grew a context record")
	}
	if got := inner.Error(); got != "missing" {
		t.Fatalf("inner message changed: %q", got)
	}
}

func TestCauseStability(t *testing.T) {
	root := errors.New("root")
	err := Wrap(Wrap(root, "a"), "b")
	if got := Cause(err); got != root {
		t.Fatalf("expected root cause, got %v", got)
	}
	if got := Cause(Wrap(err, "c")); got != root {
		t.Fatalf("expected root cause after extra wrap, got %v", got)
	}
}

func TestCauseOfLeaf(t *testing.T) {
	leaf := errors.New("leaf")
	if got := Cause(leaf); got != leaf {
		t.Fatalf("expected leaf unchanged, got %v", got)
	}

	inner := Cause(New("made here"))
	if inner.Error() != "made here" {
		t.Fatalf("unexpected innermost error: %v", inner)
	}
	if _, ok := inner.(Causer); ok {
		t.Fatalf("expected innermost to be a plain error")
	}
}

func TestCauseDeepChain(t *testing.T) {
	root := errors.New("deep root")
	err := error(root)
	for i := 0; i < 1000; i++ {
		err = Wrap(err, strconv.Itoa(i))
	}
	if Cause(err) != root {
		t.Fatalf("expected deep root cause")
	}
}

func TestContextOverwrite(t *testing.T) {
	err := AddContext(AddContext(New("boom"), "f1", "m1"), "f2", "m2")

	c, ok := GetContext(err)
	if !ok {
		t.Fatalf("expected context record")
	}
	if c.Field != "f2" || c.Message != "m2" {
		t.Fatalf("expected last record to win, got %+v", c)
	}
}

func TestContextSurvivesWrap(t *testing.T) {
	err := AddContext(BadRequest.New("bad"), "id", "must be numeric")
	err = Wrap(err, "handler")

	if got := GetType(err); got != BadRequest {
		t.Fatalf("unexpected type: %q", got)
	}
	c, ok := GetContext(err)
	if !ok || c.Field != "id" {
		t.Fatalf("expected context to survive wrap, got %+v ok=%v", c, ok)
	}
}

func TestAddContextKeepsMessage(t *testing.T) {
	err := NotFound.Wrap(errors.New("no rows"), "getting result")
	withCtx := AddContext(err, "id", "unknown id")

	if withCtx.Error() != err.Error() {
		t.Fatalf("message changed: %q vs %q", withCtx.Error(), err.Error())
	}
	if got := GetType(withCtx); got != NotFound {
		t.Fatalf("type changed: %q", got)
	}
}

func TestForeignErrorDefaults(t *testing.T) {
	foreign := errors.New("from elsewhere")
	if got := GetType(foreign); got != Unclassified {
		t.Fatalf("expected unclassified, got %q", got)
	}
	if _, ok := GetContext(foreign); ok {
		t.Fatalf("expected no context")
	}
	if got := Cause(foreign); got != foreign {
		t.Fatalf("expected foreign error unchanged, got %v", got)
	}
}

func TestAddContextOnForeign(t *testing.T) {
	foreign := errors.New("raw")
	err := AddContext(foreign, "field", "msg")

	if got := GetType(err); got != Unclassified {
		t.Fatalf("expected unclassified, got %q", got)
	}
	if got := Cause(err); got != foreign {
		t.Fatalf("expected foreign cause, got %v", got)
	}
	if got := err.Error(); got != "raw" {
		t.Fatalf("unexpected message: %q", got)
	}
}

func TestScenarioMissingResult(t *testing.T) {
	err := NotFound.Newf("result %d missing", 10)
	if got := err.Error(); got != "result 10 missing" {
		t.Fatalf("unexpected message: %q", got)
	}
	if got := GetType(err); got != NotFound {
		t.Fatalf("unexpected type: %q", got)
	}
}

func TestScenarioBadIDFormat(t *testing.T) {
	_, e0 := strconv.Atoi("abc")
	if e0 == nil {
		t.Fatalf("expected parse failure")
	}

	e1 := BadRequest.Wrapf(e0, "interactor converting id to int")
	e2 := AddContext(e1, "id", "wrong id format, should be an integer")

	if got := GetType(e2); got != BadRequest {
		t.Fatalf("unexpected type: %q", got)
	}
	c, ok := GetContext(e2)
	if !ok {
		t.Fatalf("expected context record")
	}
	if c.Field != "id" || c.Message != "wrong id format, should be an integer" {
		t.Fatalf("unexpected context: %+v", c)
	}
	if !errors.Is(e2, e0) {
		t.Fatalf("expected original parse error in chain")
	}
}

func TestScenarioNoRows(t *testing.T) {
	noRows := errors.New("no rows in result set")
	err := NotFound.Wrapf(noRows, "error getting result with id %d", 10)

	if got := Cause(err); got != noRows {
		t.Fatalf("expected dependency error as cause, got %v", got)
	}
	if got := GetType(err); got != NotFound {
		t.Fatalf("unexpected type: %q", got)
	}
	if got := err.Error(); got != "error getting result with id 10: no rows in result set" {
		t.Fatalf("unexpected cumulative message: %q", got)
	}
}

func TestHTTPStatus(t *testing.T) {
	if got := BadRequest.HTTPStatus(); got != http.StatusBadRequest {
		t.Fatalf("unexpected status: %d", got)
	}
	if got := NotFound.HTTPStatus(); got != http.StatusNotFound {
		t.Fatalf("unexpected status: %d", got)
	}
	if got := Unclassified.HTTPStatus(); got != http.StatusInternalServerError {
		t.Fatalf("unexpected status: %d", got)
	}
	if got := ErrorType("ERROR_TYPE_CUSTOM").HTTPStatus(); got != http.StatusInternalServerError {
		t.Fatalf("unexpected status for unknown tag: %d", got)
	}
}
