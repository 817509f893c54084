package repository

import "testing"

func TestBuildWhereScopesCollection(t *testing.T) {
	coll := &documentCollection{name: "tickets"}

	query, args, err := coll.buildWhere("SELECT COUNT(*) FROM documents", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if query != "SELECT COUNT(*) FROM documents WHERE collection=$1" {
		t.Fatalf("unexpected query: %s", query)
	}
	if len(args) != 1 || args[0] != "tickets" {
		t.Fatalf("unexpected args: %v", args)
	}
}

func TestBuildWhereAddsContainmentClause(t *testing.T) {
	coll := &documentCollection{name: "knowledge_base"}

	query, args, err := coll.buildWhere("SELECT doc FROM documents", Filter{"title": "VPN Connection Setup Guide"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if query != "SELECT doc FROM documents WHERE collection=$1 AND doc @> $2" {
		t.Fatalf("unexpected query: %s", query)
	}
	if len(args) != 2 {
		t.Fatalf("expected 2 args, got %d", len(args))
	}
	if string(args[1].([]byte)) != `{"title":"VPN Connection Setup Guide"}` {
		t.Fatalf("unexpected filter encoding: %s", args[1])
	}
}

func TestIsNotFoundOnlyMatchesNoRows(t *testing.T) {
	if IsNotFound(nil) {
		t.Fatal("nil error is not a not-found")
	}
	_, err := decodeDocument([]byte("not json"))
	if err == nil || IsNotFound(err) {
		t.Fatal("decode failure must not be classified as not-found")
	}
}
